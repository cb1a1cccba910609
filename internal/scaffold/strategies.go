package scaffold

// TemplateNames lists every template the built-in strategies render.
var TemplateNames = []string{
	"README.md",
	"LICENSE-APACHE",
	"LICENSE-MIT",
	"LICENSE.md",
	"vscode/settings.json",
	"vscode/tasks.json",
	"rustfmt.toml",
	".gitignore",
}

// Readme writes README.md, replacing any existing file.
type Readme struct{}

func (Readme) Name() string { return NameReadme }

func (Readme) Handle(store Renderer, sc *Context) error {
	return renderTo(store, sc, "README.md", "README.md")
}

// License writes the Apache and MIT license files and appends the license
// section to README.md. Running it twice appends the section twice.
type License struct{}

func (License) Name() string { return NameLicense }

func (License) Handle(store Renderer, sc *Context) error {
	if err := renderTo(store, sc, "LICENSE-APACHE", "LICENSE-APACHE"); err != nil {
		return err
	}
	if err := renderTo(store, sc, "LICENSE-MIT", "LICENSE-MIT"); err != nil {
		return err
	}
	return renderAppend(store, sc, "LICENSE.md", "README.md")
}

// VSCode writes the editor settings and tasks under .vscode/.
type VSCode struct{}

func (VSCode) Name() string { return NameVSCode }

func (VSCode) Handle(store Renderer, sc *Context) error {
	if err := renderTo(store, sc, "vscode/settings.json", ".vscode/settings.json"); err != nil {
		return err
	}
	return renderTo(store, sc, "vscode/tasks.json", ".vscode/tasks.json")
}

// Formatter writes the rustfmt configuration.
type Formatter struct{}

func (Formatter) Name() string { return NameFormatter }

func (Formatter) Handle(store Renderer, sc *Context) error {
	return renderTo(store, sc, "rustfmt.toml", "rustfmt.toml")
}

// GitIgnore writes .gitignore.
type GitIgnore struct{}

func (GitIgnore) Name() string { return NameGitIgnore }

func (GitIgnore) Handle(store Renderer, sc *Context) error {
	return renderTo(store, sc, ".gitignore", ".gitignore")
}
