// Package scaffold implements the file-generation strategies behind the
// "cratekit add" command. Each Strategy renders named templates against a
// per-invocation Context and writes the results below the context's root.
// The Composite runs a fixed list of strategies in order and stops at the
// first failure; the Init strategy creates a new crate with the external
// toolchain and then runs the default composite inside it.
package scaffold
