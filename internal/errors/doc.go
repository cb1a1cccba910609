// Package errors defines the error type shared by the template store and the
// scaffolding strategies. Every failure is tagged with one of three kinds
// (template, io, custom) and may carry the underlying cause, so callers can
// match with errors.Is/As and print the whole chain.
package errors
