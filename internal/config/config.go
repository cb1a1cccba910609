package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentx-labs/cratekit/internal/branding"
	"github.com/agentx-labs/cratekit/internal/templates"
	"github.com/agentx-labs/cratekit/internal/toolchain"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyAuthor           = "author"
	KeyEdition          = "edition"
	KeyCrateVersion     = "crate_version"
	KeyTemplatesMode    = "templates.mode"
	KeyTemplatesDir     = "templates.dir"
	KeyCreateCommand    = "create.command"
	KeyCreateMinVersion = "create.min_version"
)

var defaults = map[string]string{
	KeyAuthor:           "",
	KeyEdition:          "2021",
	KeyCrateVersion:     "0.1.0",
	KeyTemplatesMode:    string(templates.ModeBaked),
	KeyTemplatesDir:     "templates",
	KeyCreateCommand:    "cargo",
	KeyCreateMinVersion: "1.62.0",
}

// Keys returns every supported key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Settings is the resolved configuration for one invocation.
type Settings struct {
	Author           string
	Edition          string
	CrateVersion     string
	TemplatesMode    templates.Mode
	TemplatesDir     string
	CreateCommand    string
	CreateMinVersion string
}

// Dir returns the path to the config directory (~/.cratekit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.cratekit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error.
func Load() error {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if _, err := os.Stat(FilePath()); os.IsNotExist(err) {
		return nil
	}
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if _, ok := defaults[key]; !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := checkValue(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Current resolves and validates the settings. An empty author falls back
// to $USER.
func Current() (Settings, error) {
	mode, err := templates.ParseMode(viper.GetString(KeyTemplatesMode))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyTemplatesMode, err)
	}
	s := Settings{
		Author:           viper.GetString(KeyAuthor),
		Edition:          viper.GetString(KeyEdition),
		CrateVersion:     viper.GetString(KeyCrateVersion),
		TemplatesMode:    mode,
		TemplatesDir:     viper.GetString(KeyTemplatesDir),
		CreateCommand:    viper.GetString(KeyCreateCommand),
		CreateMinVersion: viper.GetString(KeyCreateMinVersion),
	}
	if s.Author == "" {
		s.Author = os.Getenv("USER")
	}
	if err := checkValue(KeyCrateVersion, s.CrateVersion); err != nil {
		return Settings{}, err
	}
	if err := checkValue(KeyCreateMinVersion, s.CreateMinVersion); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func checkValue(key, value string) error {
	switch key {
	case KeyCrateVersion, KeyCreateMinVersion:
		if err := toolchain.ValidVersion(value); err != nil {
			return fmt.Errorf("%s: %q is not a semantic version: %w", key, value, err)
		}
	case KeyTemplatesMode:
		if _, err := templates.ParseMode(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	case KeyCreateCommand:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	return nil
}
