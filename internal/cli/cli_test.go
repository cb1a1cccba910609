package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/agentx-labs/cratekit/internal/config"
	"github.com/agentx-labs/cratekit/internal/errors"
	"github.com/agentx-labs/cratekit/internal/scaffold"
	"github.com/agentx-labs/cratekit/internal/templates"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Test Helpers ──────────────────────────────────────────────────

type recordingCreator struct {
	calls []string
}

func (r *recordingCreator) CreateProject(dir, name string, vcs bool) error {
	r.calls = append(r.calls, fmt.Sprintf("%s|%v", name, vcs))
	return os.MkdirAll(filepath.Join(dir, name, "src"), 0755)
}

// setup isolates HOME, the log directory, viper and the working directory,
// and swaps in a recording project creator.
func setup(t *testing.T) (work string, creator *recordingCreator) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("USER", "ferris")
	viper.Reset()
	t.Cleanup(viper.Reset)

	work = t.TempDir()
	t.Chdir(work)

	creator = &recordingCreator{}
	orig := newCreator
	newCreator = func(string, io.Writer, io.Writer) scaffold.ProjectCreator { return creator }
	t.Cleanup(func() { newCreator = orig })

	verbosity, templatesDir, useBaked = 0, "", false
	listJSON, templatesShow = false, ""
	versionShort, versionJSON = false, false
	return work, creator
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ─── add ───────────────────────────────────────────────────────────

func TestAddInitScaffoldsProject(t *testing.T) {
	work, creator := setup(t)

	out, err := execute("add", "init", "demo-app")
	require.NoError(t, err)

	assert.Equal(t, []string{"demo-app|true"}, creator.calls)
	for _, f := range []string{".vscode/settings.json", ".vscode/tasks.json", "rustfmt.toml", "README.md", ".gitignore"} {
		assert.True(t, exists(filepath.Join(work, "demo-app", filepath.FromSlash(f))), f)
	}
	assert.Contains(t, out, "Project 'demo-app' created successfully!")

	settings, err := os.ReadFile(filepath.Join(work, "demo-app", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(settings), "# demo-app")
}

func TestAddInitWithoutVCS(t *testing.T) {
	work, creator := setup(t)

	_, err := execute("add", "init", "demo-app", "n")
	require.NoError(t, err)

	assert.Equal(t, []string{"demo-app|false"}, creator.calls)
	assert.False(t, exists(filepath.Join(work, "demo-app", "README.md")))
	assert.False(t, exists(filepath.Join(work, "demo-app", ".vscode")))
}

func TestAddDefaultsToInit(t *testing.T) {
	_, creator := setup(t)

	_, err := execute("add")
	require.Error(t, err)
	assert.Equal(t, errors.KindCustom, errors.KindOf(err))
	assert.Contains(t, err.Error(), "project name is required")
	assert.Empty(t, creator.calls)
}

func TestAddUnknownAction(t *testing.T) {
	work, creator := setup(t)

	_, err := execute("add", "demo-app")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")
	assert.Empty(t, creator.calls)

	entries, err := os.ReadDir(work)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAddSingleStrategyInWorkingDir(t *testing.T) {
	work, _ := setup(t)

	_, err := execute("add", "md")
	require.NoError(t, err)

	readme, err := os.ReadFile(filepath.Join(work, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "# "+filepath.Base(work))
}

func TestAddLicenseUsesConfiguredAuthor(t *testing.T) {
	work, _ := setup(t)
	t.Setenv("CRATEKIT_AUTHOR", "Ada Lovelace")

	_, err := execute("add", "lic")
	require.NoError(t, err)

	mit, err := os.ReadFile(filepath.Join(work, "LICENSE-MIT"))
	require.NoError(t, err)
	assert.Contains(t, string(mit), "Ada Lovelace")
}

// ─── list / templates ──────────────────────────────────────────────

func TestList(t *testing.T) {
	setup(t)

	out, err := execute("list")
	require.NoError(t, err)
	for _, name := range []string{"init *", "md", "lic", "vscode", "fmt", "gi", "defaults"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "vscode → fmt → md → gi")
}

func TestListJSON(t *testing.T) {
	setup(t)

	out, err := execute("list", "--json")
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 7)
	assert.Equal(t, "defaults", entries[0].Name)
	assert.Equal(t, []string{"vscode", "fmt", "md", "gi"}, entries[0].Members)
}

func TestTemplates(t *testing.T) {
	setup(t)

	out, err := execute("templates")
	require.NoError(t, err)
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, "vscode/tasks.json")

	out, err = execute("templates", "--show", "rustfmt.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "edition")

	templatesShow = ""
	_, err = execute("templates", "--show", "nope")
	assert.Error(t, err)
}

// ─── config / version ──────────────────────────────────────────────

func TestConfigSetGet(t *testing.T) {
	setup(t)

	out, err := execute("config", "set", "author", "Grace")
	require.NoError(t, err)
	assert.Contains(t, out, "Set author = Grace")

	out, err = execute("config", "get", "author")
	require.NoError(t, err)
	assert.Equal(t, "Grace\n", out)

	_, err = execute("config", "set", "templates.mode", "zip")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	setup(t)
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-10-16"

	out, err := execute("version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	versionShort = false
	out, err = execute("version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "abc123", info["commit"])
}

// ─── doctor ────────────────────────────────────────────────────────

func fakeCargo(t *testing.T, version string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "fake-cargo")
	script := "#!/bin/sh\necho \"cargo " + version + " (ffa9cf99a 2024-06-03)\"\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestDoctorPasses(t *testing.T) {
	setup(t)
	t.Setenv("CRATEKIT_CREATE_COMMAND", fakeCargo(t, "1.79.0"))

	out, err := execute("doctor")
	require.NoError(t, err, out)
	assert.Contains(t, out, "using defaults")
	assert.Contains(t, out, "version 1.79.0 (minimum 1.62.0)")
	assert.Contains(t, out, "All checks passed.")
}

func TestDoctorReportsOldToolchain(t *testing.T) {
	setup(t)
	t.Setenv("CRATEKIT_CREATE_COMMAND", fakeCargo(t, "1.50.0"))

	out, err := execute("doctor")
	require.Error(t, err)
	assert.Equal(t, errors.KindCustom, errors.KindOf(err))
	assert.Contains(t, out, "[FAIL]")
}

func TestDoctorReportsSchemaIssues(t *testing.T) {
	setup(t)
	t.Setenv("CRATEKIT_CREATE_COMMAND", fakeCargo(t, "1.79.0"))
	home := os.Getenv("HOME")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".cratekit"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".cratekit", "config.yaml"), []byte("colour: blue\n"), 0644))

	out, err := execute("doctor")
	require.Error(t, err)
	assert.Contains(t, out, "1 issue(s)")
}

// ─── shared state ──────────────────────────────────────────────────

func TestActionRegistryBuiltOnce(t *testing.T) {
	setup(t)
	first := actionRegistry()

	_, err := execute("list")
	require.NoError(t, err)
	_, err = execute("add", "gi")
	require.NoError(t, err)

	assert.Same(t, first, actionRegistry())
}

func TestAddBindsCreateCommandAndWriters(t *testing.T) {
	setup(t)
	t.Setenv("CRATEKIT_CREATE_COMMAND", "cross")

	var gotCommand string
	var gotOut io.Writer
	newCreator = func(command string, stdout, _ io.Writer) scaffold.ProjectCreator {
		gotCommand, gotOut = command, stdout
		return &recordingCreator{}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"add", "init", "demo-app", "n"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "cross", gotCommand)
	assert.Same(t, &out, gotOut)
}

func TestStoreSource(t *testing.T) {
	settings := config.Settings{TemplatesMode: templates.ModeDir, TemplatesDir: "from-config"}

	tests := []struct {
		name     string
		baked    bool
		dir      string
		settings config.Settings
		wantMode templates.Mode
		wantDir  string
	}{
		{"config only", false, "", settings, templates.ModeDir, "from-config"},
		{"config baked", false, "", config.Settings{TemplatesMode: templates.ModeBaked}, templates.ModeBaked, ""},
		{"--baked wins over config", true, "", settings, templates.ModeBaked, ""},
		{"--templates-dir wins over config", false, "from-flag", config.Settings{TemplatesMode: templates.ModeBaked}, templates.ModeDir, "from-flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useBaked, templatesDir = tt.baked, tt.dir
			t.Cleanup(func() { useBaked, templatesDir = false, "" })

			mode, dir := storeSource(tt.settings)
			assert.Equal(t, tt.wantMode, mode)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}
