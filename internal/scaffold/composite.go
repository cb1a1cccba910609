package scaffold

import (
	"fmt"

	"github.com/agentx-labs/cratekit/internal/logging"
	"github.com/agentx-labs/cratekit/internal/style"
)

// Composite runs its members in order and stops at the first failure, which
// it returns unchanged. The member list is fixed at construction.
type Composite struct {
	name    string
	members []Strategy
}

// NewComposite creates a composite strategy over members.
func NewComposite(name string, members ...Strategy) *Composite {
	return &Composite{
		name:    name,
		members: append([]Strategy(nil), members...),
	}
}

// DefaultComposite returns the scaffold run after "init": editor settings,
// formatter config, readme, ignore file.
func DefaultComposite() *Composite {
	return NewComposite(NameDefaults, VSCode{}, Formatter{}, Readme{}, GitIgnore{})
}

func (c *Composite) Name() string { return c.name }

// Members returns the member names in execution order.
func (c *Composite) Members() []string {
	names := make([]string, len(c.members))
	for i, m := range c.members {
		names[i] = m.Name()
	}
	return names
}

func (c *Composite) Handle(store Renderer, sc *Context) error {
	logger := logging.GetLogger("scaffold")
	for _, m := range c.members {
		fmt.Fprintln(sc.Out(), style.Step(m.Name()))
		if err := m.Handle(store, sc); err != nil {
			logger.Debug().Str("composite", c.name).Str("strategy", m.Name()).Err(err).Msg("strategy failed, stopping")
			return err
		}
	}
	return nil
}
