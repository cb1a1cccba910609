// Package toolchain runs the external Rust toolchain: creating a new crate
// with "cargo new" and probing the installed cargo version. The command name
// is configurable so tests and alternative toolchains can stand in for cargo.
package toolchain
