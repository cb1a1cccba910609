// Package platform provides the filesystem writes used by scaffolding
// strategies. All operations go through an afero.Fs so the same code writes
// to disk in production and to an in-memory filesystem in tests. Parent
// directories are created on demand.
package platform
