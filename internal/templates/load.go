package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/agentx-labs/cratekit/internal/errors"
	"github.com/spf13/afero"
)

// Mode selects where the template bodies come from.
type Mode string

const (
	// ModeBaked uses the table compiled into the binary.
	ModeBaked Mode = "baked"
	// ModeDir scans a directory tree at startup.
	ModeDir Mode = "dir"
)

// ParseMode converts a config value to a Mode. The empty string means baked.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeBaked, "":
		return ModeBaked, nil
	case ModeDir:
		return ModeDir, nil
	default:
		return "", fmt.Errorf("unknown template mode %q: must be %q or %q", s, ModeBaked, ModeDir)
	}
}

// LoadBaked builds a store from the generated table.
func LoadBaked() (*Store, error) {
	return New(bakedTemplates)
}

// LoadDir builds a store from every regular file under dir on the local disk.
func LoadDir(dir string) (*Store, error) {
	return LoadFS(afero.NewOsFs(), dir)
}

// LoadFS builds a store from every regular file under dir on fsys. Names are
// the slash-separated paths relative to dir.
func LoadFS(fsys afero.Fs, dir string) (*Store, error) {
	info, err := fsys.Stat(dir)
	if err != nil {
		return nil, errors.IO(err, "reading template directory %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Customf("template source %s is not a directory", dir)
	}

	bodies := make(map[string]string)
	err = afero.Walk(fsys, dir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		bodies[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		return nil, errors.IO(err, "scanning template directory %s", dir)
	}
	return New(bodies)
}

// Load builds a store for the given mode. dir is only used by ModeDir.
func Load(mode Mode, dir string) (*Store, error) {
	switch mode {
	case ModeBaked, "":
		return LoadBaked()
	case ModeDir:
		return LoadDir(dir)
	default:
		return nil, errors.Customf("unknown template mode %q", mode)
	}
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the process-wide store, loading it on the first call. Later
// calls return the first result, including its error, whatever their arguments.
func Default(mode Mode, dir string) (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = Load(mode, dir)
	})
	return defaultStore, defaultErr
}

// Identifier returns the Go constant name used for a template in the baked
// table: every character that is not an ASCII letter or digit becomes an
// underscore and the result is upper-cased.
func Identifier(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
