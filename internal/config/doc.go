// Package config manages user-level settings stored at ~/.cratekit/config.yaml.
// Values resolve from CRATEKIT_* environment variables, then the config file,
// then built-in defaults. The file itself can be checked against an embedded
// JSON schema before use.
package config
