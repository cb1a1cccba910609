package registry

import (
	"sort"

	"github.com/agentx-labs/cratekit/internal/errors"
	"github.com/agentx-labs/cratekit/internal/logging"
	"github.com/agentx-labs/cratekit/internal/scaffold"
)

// DefaultAction runs when no action is given.
const DefaultAction = scaffold.NameInit

// Registry is an immutable name -> strategy table.
type Registry struct {
	strategies map[string]scaffold.Strategy
}

// New builds a registry keyed by each strategy's Name. Duplicate names are
// rejected.
func New(strategies ...scaffold.Strategy) (*Registry, error) {
	r := &Registry{strategies: make(map[string]scaffold.Strategy, len(strategies))}
	for _, s := range strategies {
		name := s.Name()
		if name == "" {
			return nil, errors.Custom("strategy with empty name")
		}
		if _, dup := r.strategies[name]; dup {
			return nil, errors.Customf("duplicate strategy %q", name)
		}
		r.strategies[name] = s
	}
	return r, nil
}

// Default returns the built-in strategies. The composite shares its members
// with the individually registered ones.
func Default(creator scaffold.ProjectCreator) *Registry {
	composite := scaffold.DefaultComposite()
	r, err := New(
		scaffold.NewInit(creator, composite),
		scaffold.Readme{},
		scaffold.License{},
		scaffold.VSCode{},
		scaffold.Formatter{},
		scaffold.GitIgnore{},
		composite,
	)
	if err != nil {
		// Built-in names are constants; a clash is a programming error.
		panic(err)
	}
	return r
}

// Get returns the strategy registered under name.
func (r *Registry) Get(name string) (scaffold.Strategy, bool) {
	s, ok := r.strategies[name]
	return s, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run looks up name and runs it. An unknown name is a custom error and
// touches nothing.
func (r *Registry) Run(name string, store scaffold.Renderer, sc *scaffold.Context) error {
	s, ok := r.Get(name)
	if !ok {
		return errors.Customf("unknown action %q", name)
	}
	done := logging.LogOperationStart(logging.GetLogger("registry").With().Str("strategy", name).Logger(), "run")
	defer done()
	return s.Handle(store, sc)
}
