package templates

import (
	"bytes"
	stderrors "errors"
	"sort"
	"strings"
	"text/template"

	"github.com/agentx-labs/cratekit/internal/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNotFound is the cause attached when a template name is not in the store.
var ErrNotFound = stderrors.New("template not found")

// Store is a read-only set of parsed templates. Each template is parsed into
// its own tree, so a {{ define }} in one body never reaches another.
type Store struct {
	bodies map[string]string
	parsed map[string]*template.Template
}

// New parses every body in bodies and returns a store serving them. A body
// that fails to parse fails the whole store.
func New(bodies map[string]string) (*Store, error) {
	s := &Store{
		bodies: make(map[string]string, len(bodies)),
		parsed: make(map[string]*template.Template, len(bodies)),
	}
	funcs := funcMap()

	names := make([]string, 0, len(bodies))
	for name := range bodies {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		body := bodies[name]
		t, err := template.New(name).Option("missingkey=error").Funcs(funcs).Parse(body)
		if err != nil {
			return nil, errors.Template(err, "parsing template %q", name)
		}
		s.bodies[name] = body
		s.parsed[name] = t
	}
	return s, nil
}

// Render executes the named template against vars.
func (s *Store) Render(name string, vars map[string]any) (string, error) {
	t, ok := s.parsed[name]
	if !ok {
		return "", errors.Template(ErrNotFound, "template %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, vars); err != nil {
		return "", errors.Template(err, "rendering %q", name)
	}
	return buf.String(), nil
}

// Names returns the template names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.bodies))
	for name := range s.bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the store holds a template called name.
func (s *Store) Has(name string) bool {
	_, ok := s.bodies[name]
	return ok
}

// Body returns the raw source of the named template.
func (s *Store) Body(name string) (string, bool) {
	body, ok := s.bodies[name]
	return body, ok
}

// Bodies returns a copy of the name -> body table.
func (s *Store) Bodies() map[string]string {
	out := make(map[string]string, len(s.bodies))
	for k, v := range s.bodies {
		out[k] = v
	}
	return out
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		// cases.Caser keeps state, so each call gets a fresh one.
		"title": func(s string) string {
			return cases.Title(language.English).String(s)
		},
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"replace": func(old, repl, s string) string {
			return strings.ReplaceAll(s, old, repl)
		},
	}
}
