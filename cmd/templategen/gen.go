package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/agentx-labs/cratekit/internal/templates"
)

type entry struct {
	Name  string // slash-separated path relative to the source root
	Ident string
	Body  string
}

// collect reads every regular file under dir, sorted by name.
func collect(dir string) ([]entry, error) {
	var entries []entry
	seen := make(map[string]string)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		ident := templates.Identifier(name)
		if ident[0] >= '0' && ident[0] <= '9' {
			ident = "_" + ident
		}
		if other, dup := seen[ident]; dup {
			return fmt.Errorf("templates %q and %q both map to identifier %s", other, name, ident)
		}
		seen[ident] = name

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		entries = append(entries, entry{Name: name, Ident: ident, Body: string(data)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// render produces the gofmt-ed source of the baked table.
func render(pkg, srcDir string, entries []entry) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by templategen from %s/; DO NOT EDIT.\n\n", filepath.ToSlash(srcDir))
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	for _, e := range entries {
		fmt.Fprintf(&buf, "const %s = %s\n\n", e.Ident, goString(e.Body))
	}

	buf.WriteString("var bakedTemplates = map[string]string{\n")
	for _, e := range entries {
		fmt.Fprintf(&buf, "\t%q: %s,\n", e.Name, e.Ident)
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

// goString quotes s as a raw string literal when it can, and as an
// interpreted literal otherwise.
func goString(s string) string {
	if strings.ContainsAny(s, "`\r") {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}
