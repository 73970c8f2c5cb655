package types

import (
	"path/filepath"
	"strings"
)

// ManagedPath is one (source, destination) pair under hyprkit's control.
// Source is relative to the repository root; Destination may use a
// leading "~/" for the user's home directory.
type ManagedPath struct {
	// Name identifies the entry in config and in user-facing output.
	Name string `toml:"name"`

	// Source is the path inside the repository, relative to its root.
	Source string `toml:"source"`

	// Destination is where the symlink is created.
	Destination string `toml:"destination"`

	// Optional entries are skipped with a message when the source is
	// absent; required entries abort the run.
	Optional bool `toml:"optional"`

	// Executable marks helper scripts that must carry the execute bit.
	Executable bool `toml:"executable"`
}

// SourcePath resolves the entry's source against the repository root.
func (m ManagedPath) SourcePath(repoRoot string) string {
	return filepath.Join(repoRoot, m.Source)
}

// DestinationPath resolves a leading "~/" against the given home directory.
func (m ManagedPath) DestinationPath(home string) string {
	if m.Destination == "~" {
		return home
	}
	if strings.HasPrefix(m.Destination, "~/") {
		return filepath.Join(home, m.Destination[2:])
	}
	return m.Destination
}
