package scaffold

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agentx-labs/cratekit/internal/platform"
	"github.com/spf13/afero"
)

// Well-known context variables.
const (
	VarYear    = "year"
	VarAuthor  = "author"
	VarProject = "project"
	VarVersion = "version"
	VarEdition = "edition"

	// InitValuesKey holds the raw positional values ([]string) consumed by
	// the init strategy.
	InitValuesKey = "init_values"
)

// Context is the mutable state of one command invocation: the variables
// templates render against, the directory files are written under, the
// progress writer, and the filesystem used for writes.
type Context struct {
	vars map[string]any
	root string
	out  io.Writer
	fs   afero.Fs
}

// Options configures a new Context.
type Options struct {
	// Root is the directory files are written under. Empty means the
	// working directory at the time each strategy runs.
	Root string
	// Out receives progress lines. Defaults to io.Discard.
	Out io.Writer
	// FS is the filesystem written to. Defaults to the OS filesystem.
	FS afero.Fs
	// Author fills the "author" variable.
	Author string
	// Version fills the "version" variable.
	Version string
	// Edition fills the "edition" variable.
	Edition string
	// Now fixes the clock for the "year" variable. Defaults to time.Now.
	Now func() time.Time
}

// NewContext creates a Context populated with the fixed variables (year,
// author, version, edition, project). The project defaults to the base name
// of the root, or of the working directory when the root is empty.
func NewContext(opts Options) *Context {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = platform.OS()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	c := &Context{
		vars: make(map[string]any),
		root: opts.Root,
		out:  out,
		fs:   fsys,
	}
	c.Set(VarYear, now().Year())
	c.Set(VarAuthor, opts.Author)
	c.Set(VarVersion, opts.Version)
	c.Set(VarEdition, opts.Edition)
	c.Set(VarProject, projectName(opts.Root))
	return c
}

func projectName(root string) string {
	dir := root
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Base(dir)
	}
	return filepath.Base(abs)
}

// Set stores a variable, replacing any previous value.
func (c *Context) Set(key string, value any) {
	c.vars[key] = value
}

// Get returns a variable and whether it was set.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.vars[key]
	return v, ok
}

// Vars returns a copy of the variables for rendering.
func (c *Context) Vars() map[string]any {
	out := make(map[string]any, len(c.vars))
	for k, v := range c.vars {
		out[k] = v
	}
	return out
}

// Root returns the directory files are written under.
func (c *Context) Root() string { return c.root }

// SetRoot moves every later write under dir.
func (c *Context) SetRoot(dir string) { c.root = dir }

// Path resolves a strategy-relative path against the root.
func (c *Context) Path(rel string) string {
	if c.root == "" {
		return filepath.FromSlash(rel)
	}
	return filepath.Join(c.root, filepath.FromSlash(rel))
}

// Out returns the progress writer.
func (c *Context) Out() io.Writer { return c.out }

// FS returns the filesystem strategies write to.
func (c *Context) FS() afero.Fs { return c.fs }
