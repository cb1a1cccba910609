package scaffold

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/cratekit/internal/errors"
	"github.com/agentx-labs/cratekit/internal/logging"
)

// VCSMode says whether the new crate gets version control.
type VCSMode int

const (
	VCSEnabled VCSMode = iota
	VCSDisabled
)

func (m VCSMode) String() string {
	if m == VCSDisabled {
		return "vcs-disabled"
	}
	return "vcs-enabled"
}

// NoVCS is the only second positional value that disables version control.
const NoVCS = "n"

// InitArgs are the validated inputs of the init strategy.
type InitArgs struct {
	Name string
	VCS  VCSMode
}

// ParseInitArgs validates the raw positional values. The first value is the
// project name with surrounding double quotes removed. The second value
// disables version control only when it is exactly NoVCS; anything else,
// including its absence, leaves it enabled.
func ParseInitArgs(values []string) (InitArgs, error) {
	if len(values) == 0 {
		return InitArgs{}, errors.Custom("project name is required")
	}
	name := strings.Trim(values[0], `"`)
	if name == "" {
		return InitArgs{}, errors.Custom("project name is required")
	}

	args := InitArgs{Name: name, VCS: VCSEnabled}
	if len(values) > 1 && strings.Trim(values[1], `"`) == NoVCS {
		args.VCS = VCSDisabled
	}
	return args, nil
}

// ProjectCreator runs the external project-creation step. It creates the
// project directory named name inside dir (the working directory when dir is
// empty). Implementations report a non-zero exit with an error that has an
// ExitCode() int method.
type ProjectCreator interface {
	CreateProject(dir, name string, vcs bool) error
}

// Init creates a new crate and, unless version control is disabled,
// scaffolds it with the composite strategy.
type Init struct {
	creator   ProjectCreator
	composite Strategy
}

// NewInit returns the init strategy. A nil composite means DefaultComposite.
func NewInit(creator ProjectCreator, composite Strategy) *Init {
	if composite == nil {
		composite = DefaultComposite()
	}
	return &Init{creator: creator, composite: composite}
}

func (i *Init) Name() string { return NameInit }

func (i *Init) Handle(store Renderer, sc *Context) error {
	logger := logging.GetLogger("init")

	values, err := initValues(sc)
	if err != nil {
		return err
	}
	args, err := ParseInitArgs(values)
	if err != nil {
		return err
	}
	logger.Debug().Str("project", args.Name).Stringer("vcs", args.VCS).Msg("parsed init arguments")

	fmt.Fprintf(sc.Out(), "Creating project: %s\n", args.Name)
	if err := i.creator.CreateProject(sc.Root(), args.Name, args.VCS == VCSEnabled); err != nil {
		var exit interface{ ExitCode() int }
		if stderrors.As(err, &exit) {
			return &errors.Error{
				Kind:    errors.KindCustom,
				Message: fmt.Sprintf("failed to create project '%s'", args.Name),
				Wrapped: err,
			}
		}
		return errors.IO(err, "running project creation for '%s'", args.Name)
	}
	fmt.Fprintf(sc.Out(), "Project '%s' created successfully!\n", args.Name)

	// Every later write in this invocation lands inside the new project.
	sc.SetRoot(filepath.Join(sc.Root(), args.Name))
	sc.Set(VarProject, args.Name)

	if args.VCS == VCSDisabled {
		return nil
	}

	fmt.Fprintln(sc.Out(), "Adding init files...")
	if err := i.composite.Handle(store, sc); err != nil {
		return err
	}
	fmt.Fprintln(sc.Out(), "Init files added.")
	return nil
}

func initValues(sc *Context) ([]string, error) {
	raw, ok := sc.Get(InitValuesKey)
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.Customf("%s must be a list of strings", InitValuesKey)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, errors.Customf("%s must be a list of strings", InitValuesKey)
	}
}
