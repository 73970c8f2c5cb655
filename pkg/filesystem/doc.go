// Package filesystem provides implementations of the types.FS interface:
// the real OS filesystem used by the CLI, and an afero-backed variant for
// tests that do not depend on real symlink semantics.
package filesystem
