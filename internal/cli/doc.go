// Package cli defines the Cobra command tree for the cratekit CLI. Each file
// registers one top-level command with the root command. Commands resolve
// configuration and the template store, then delegate to the registry and
// scaffold packages; they only handle flags, output, and exit status.
package cli
