// Package registry maps action names to scaffold strategies. The CLI resolves
// the user's action token here and runs the matching strategy against the
// active template store and execution context.
package registry
