//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/agentx-labs/cratekit/internal/scaffold"
	"github.com/agentx-labs/cratekit/internal/toolchain"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	WorkDir  string // where "add" runs
	CargoBin string // fake cargo script
}

// fakeCargo mimics "cargo new <name> [--vcs none]" and "cargo --version".
// Without --vcs none it also creates .git, as cargo does.
const fakeCargo = `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "cargo 1.79.0 (ffa9cf99a 2024-06-03)"
  exit 0
fi
if [ "$1" != "new" ]; then
  exit 2
fi
if [ -e "$2" ]; then
  echo "error: destination $2 already exists" >&2
  exit 101
fi
mkdir -p "$2/src"
printf '[package]\nname = "%s"\n' "$2" > "$2/Cargo.toml"
if [ "$3" != "--vcs" ]; then
  mkdir -p "$2/.git"
fi
exit 0
`

// setupTestEnv creates an isolated work directory and a fake cargo binary.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake cargo is a shell script")
	}

	env := &testEnv{WorkDir: t.TempDir()}
	env.CargoBin = filepath.Join(t.TempDir(), "cargo")
	if err := os.WriteFile(env.CargoBin, []byte(fakeCargo), 0755); err != nil {
		t.Fatalf("writing fake cargo: %v", err)
	}
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	return env
}

func (e *testEnv) cargo() *toolchain.Cargo {
	c := toolchain.NewCargo(e.CargoBin)
	c.Stdout = &strings.Builder{}
	c.Stderr = &strings.Builder{}
	return c
}

func (e *testEnv) context(out *strings.Builder, values ...string) *scaffold.Context {
	sc := scaffold.NewContext(scaffold.Options{
		Root:    e.WorkDir,
		Out:     out,
		Author:  "Ferris",
		Version: "0.1.0",
		Edition: "2021",
	})
	sc.Set(scaffold.InitValuesKey, values)
	return sc
}

// writeFile creates a file and any missing parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected %s not to exist", path)
	}
}
