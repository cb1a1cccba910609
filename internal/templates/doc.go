// Package templates holds the named template bodies rendered by the
// scaffolding strategies. A Store is built either by scanning a directory tree
// at runtime or from the table baked into the binary by cmd/templategen; both
// produce the same name -> body mapping and the same rendering behavior.
//
// Template names are slash-separated paths relative to the source root, for
// example "README.md" or "vscode/settings.json". Bodies use text/template
// syntax and execute with missingkey=error, so a variable the context does not
// provide fails the render instead of printing "<no value>".
//
//go:generate go run ../../cmd/templategen --src files --out baked_templates.go
package templates
