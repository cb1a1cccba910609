package templates

import (
	stderrors "errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/agentx-labs/cratekit/internal/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullVars() map[string]any {
	return map[string]any{
		"project": "demo-app",
		"author":  "Ferris",
		"year":    2026,
		"version": "0.1.0",
		"edition": "2021",
	}
}

func TestRender(t *testing.T) {
	s, err := New(map[string]string{"hello.txt": "Hello {{ .name }}!"})
	require.NoError(t, err)

	out, err := s.Render("hello.txt", map[string]any{"name": "World"})
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", out)
}

func TestRenderUnknownTemplate(t *testing.T) {
	s, err := New(map[string]string{"a": "x"})
	require.NoError(t, err)

	_, err = s.Render("missing.md", nil)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrTemplate))
	assert.True(t, stderrors.Is(err, ErrNotFound))
}

func TestRenderMissingVariable(t *testing.T) {
	s, err := New(map[string]string{"a": "{{ .absent }}"})
	require.NoError(t, err)

	_, err = s.Render("a", map[string]any{})
	require.Error(t, err)
	assert.Equal(t, errors.KindTemplate, errors.KindOf(err))
}

func TestNewRejectsMalformedTemplate(t *testing.T) {
	_, err := New(map[string]string{"bad": "{{ .unclosed "})
	require.Error(t, err)
	assert.Equal(t, errors.KindTemplate, errors.KindOf(err))
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestDefineDoesNotLeakAcrossTemplates(t *testing.T) {
	s, err := New(map[string]string{
		"README.md":     "# {{ .project }}\n",
		"partials.tmpl": `{{ define "README.md" }}HIJACKED{{ end }}{{ template "README.md" }}`,
	})
	require.NoError(t, err)

	out, err := s.Render("README.md", map[string]any{"project": "demo"})
	require.NoError(t, err)
	assert.Equal(t, "# demo\n", out)

	body, _ := s.Body("README.md")
	assert.Equal(t, "# {{ .project }}\n", body)

	out, err = s.Render("partials.tmpl", nil)
	require.NoError(t, err)
	assert.Equal(t, "HIJACKED", out)
}

func TestTemplateFuncs(t *testing.T) {
	s, err := New(map[string]string{
		"f": `{{ .p | title }}|{{ .p | upper }}|{{ .p | lower }}|{{ .p | replace "-" "_" }}`,
	})
	require.NoError(t, err)

	out, err := s.Render("f", map[string]any{"p": "demo-App"})
	require.NoError(t, err)
	assert.Equal(t, "Demo-App|DEMO-APP|demo-app|demo_App", out)
}

func TestAccessors(t *testing.T) {
	s, err := New(map[string]string{"b": "2", "a": "1", "vscode/settings.json": "{}"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "vscode/settings.json"}, s.Names())
	assert.True(t, s.Has("vscode/settings.json"))
	assert.False(t, s.Has("vscode"))

	body, ok := s.Body("a")
	assert.True(t, ok)
	assert.Equal(t, "1", body)

	bodies := s.Bodies()
	bodies["a"] = "changed"
	body, _ = s.Body("a")
	assert.Equal(t, "1", body, "Bodies must return a copy")
}

func TestLoadFS(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "tpl/README.md", []byte("# {{ .project }}"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "tpl/vscode/settings.json", []byte("{}"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "tpl/.gitignore", []byte("/target"), 0644))

	s, err := LoadFS(fsys, "tpl")
	require.NoError(t, err)
	assert.Equal(t, []string{".gitignore", "README.md", "vscode/settings.json"}, s.Names())
}

func TestLoadFSMissingDir(t *testing.T) {
	_, err := LoadFS(afero.NewMemMapFs(), "nope")
	require.Error(t, err)
	assert.Equal(t, errors.KindIO, errors.KindOf(err))
}

func TestLoadFSNotADirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "file", []byte("x"), 0644))

	_, err := LoadFS(fsys, "file")
	require.Error(t, err)
	assert.Equal(t, errors.KindCustom, errors.KindOf(err))
}

func TestBakedAndDirModesMatch(t *testing.T) {
	baked, err := LoadBaked()
	require.NoError(t, err)
	dir, err := LoadDir("files")
	require.NoError(t, err)

	assert.Equal(t, dir.Bodies(), baked.Bodies())
}

func TestBakedTemplatesRender(t *testing.T) {
	s, err := LoadBaked()
	require.NoError(t, err)

	for _, name := range []string{
		"README.md", "LICENSE-APACHE", "LICENSE-MIT", "LICENSE.md",
		"vscode/settings.json", "vscode/tasks.json", "rustfmt.toml", ".gitignore",
	} {
		t.Run(name, func(t *testing.T) {
			out, err := s.Render(name, fullVars())
			require.NoError(t, err)
			assert.NotEmpty(t, out)
			assert.NotContains(t, out, "<no value>")
		})
	}

	readme, err := s.Render("README.md", fullVars())
	require.NoError(t, err)
	assert.Contains(t, readme, "# demo-app")
	assert.Contains(t, readme, "use demo_app;")
}

func TestBakedIdentifiers(t *testing.T) {
	for name, body := range bakedTemplates {
		switch Identifier(name) {
		case "README_MD":
			assert.Equal(t, README_MD, body)
		case "VSCODE_SETTINGS_JSON":
			assert.Equal(t, VSCODE_SETTINGS_JSON, body)
		case "_GITIGNORE":
			assert.Equal(t, _GITIGNORE, body)
		}
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"README.md", "README_MD"},
		{"vscode/settings.json", "VSCODE_SETTINGS_JSON"},
		{".gitignore", "_GITIGNORE"},
		{"LICENSE-APACHE", "LICENSE_APACHE"},
		{"rustfmt.toml", "RUSTFMT_TOML"},
		{"héllo", "H_LLO"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Identifier(tt.name), tt.name)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeBaked, m)

	m, err = ParseMode(" DIR ")
	require.NoError(t, err)
	assert.Equal(t, ModeDir, m)

	_, err = ParseMode("embed")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	s, err := Load(ModeDir, filepath.Join(".", "files"))
	require.NoError(t, err)
	assert.True(t, s.Has("README.md"))

	_, err = Load(Mode("zip"), "")
	assert.Equal(t, errors.KindCustom, errors.KindOf(err))
}

func TestDefaultLoadsOnce(t *testing.T) {
	defaultOnce = sync.Once{}
	defaultStore, defaultErr = nil, nil
	t.Cleanup(func() { defaultOnce = sync.Once{} })

	var wg sync.WaitGroup
	stores := make([]*Store, 8)
	for i := range stores {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := Default(ModeBaked, "")
			assert.NoError(t, err)
			stores[i] = s
		}(i)
	}
	wg.Wait()

	for _, s := range stores {
		assert.Same(t, stores[0], s)
	}

	// Later arguments are ignored once loaded.
	s, err := Default(ModeDir, "does-not-exist")
	require.NoError(t, err)
	assert.Same(t, stores[0], s)
}
