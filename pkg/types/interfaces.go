package types

import (
	"io/fs"
)

// FS abstracts filesystem operations for testability
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error

	// Lstat reports on the entry itself, never following a symlink.
	// Test implementations may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
}

// CommandRunner abstracts external command execution so collaborator
// features (package install, asset fetch, compositor reload) can be
// exercised in tests without the real tools present.
type CommandRunner interface {
	// LookPath reports the resolved path of a tool, or an error if the
	// tool is not installed.
	LookPath(tool string) (string, error)

	// Run executes tool with args and returns its combined output.
	Run(tool string, args ...string) ([]byte, error)
}
