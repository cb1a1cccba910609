package scaffold

import (
	"fmt"

	"github.com/agentx-labs/cratekit/internal/errors"
	"github.com/agentx-labs/cratekit/internal/logging"
	"github.com/agentx-labs/cratekit/internal/platform"
	"github.com/agentx-labs/cratekit/internal/style"
)

// Renderer renders a named template against a set of variables.
type Renderer interface {
	Render(name string, vars map[string]any) (string, error)
}

// Strategy is one named file-generation behavior.
type Strategy interface {
	// Name is the registry key and CLI action token.
	Name() string
	// Handle renders and writes the strategy's files. Files written before a
	// failure are left in place.
	Handle(store Renderer, sc *Context) error
}

// Strategy names.
const (
	NameInit      = "init"
	NameReadme    = "md"
	NameLicense   = "lic"
	NameVSCode    = "vscode"
	NameFormatter = "fmt"
	NameGitIgnore = "gi"
	NameDefaults  = "defaults"
)

// renderTo renders tmpl and replaces the file at target with the result.
func renderTo(store Renderer, sc *Context, tmpl, target string) error {
	content, err := store.Render(tmpl, sc.Vars())
	if err != nil {
		return err
	}
	path := sc.Path(target)
	if err := platform.WriteFile(sc.FS(), path, []byte(content)); err != nil {
		return errors.IO(err, "writing %s", target)
	}
	logger := logging.GetLogger("scaffold")
	logger.Debug().Str("template", tmpl).Str("path", path).Msg("wrote file")
	fmt.Fprintln(sc.Out(), style.Created(target))
	return nil
}

// renderAppend renders tmpl and appends the result to the file at target.
func renderAppend(store Renderer, sc *Context, tmpl, target string) error {
	content, err := store.Render(tmpl, sc.Vars())
	if err != nil {
		return err
	}
	path := sc.Path(target)
	if err := platform.AppendFile(sc.FS(), path, []byte(content)); err != nil {
		return errors.IO(err, "appending to %s", target)
	}
	logger := logging.GetLogger("scaffold")
	logger.Debug().Str("template", tmpl).Str("path", path).Msg("appended to file")
	fmt.Fprintln(sc.Out(), style.Appended(target))
	return nil
}
