// Package cli assembles the runtime pieces shared by all commands:
// repository resolution, configuration loading and the provisioner
// wired against the real filesystem.
package cli

import (
	"fmt"
	"os"

	"github.com/hyprkit/hyprkit/pkg/config"
	"github.com/hyprkit/hyprkit/pkg/external"
	"github.com/hyprkit/hyprkit/pkg/filesystem"
	"github.com/hyprkit/hyprkit/pkg/paths"
	"github.com/hyprkit/hyprkit/pkg/provision"
)

// Runtime is everything a command needs for one invocation.
type Runtime struct {
	Paths       paths.Paths
	Config      *config.Config
	Provisioner *provision.Provisioner
}

// NewRuntime resolves the repository root, loads the repository
// configuration and wires a Provisioner. An empty repoRoot triggers
// the usual resolution chain (HYPRKIT_REPO, enclosing git checkout,
// current directory).
func NewRuntime(repoRoot string) (*Runtime, error) {
	p, err := paths.New(repoRoot)
	if err != nil {
		return nil, err
	}
	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, "Warning: no repository found, using current directory: %s\n", p.RepoRoot())
	}

	fs := filesystem.NewOS()
	cfg, err := config.Load(fs, p.RepoConfigPath())
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Paths:       p,
		Config:      cfg,
		Provisioner: provision.New(fs, p, cfg, external.NewRunner()),
	}, nil
}
