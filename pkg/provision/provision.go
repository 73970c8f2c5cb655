// Package provision holds the install and uninstall orchestrators. They
// compose the linker, the marker-block editor and the backup registry
// into the two user-facing operations, both safely re-runnable.
package provision

import (
	"github.com/hyprkit/hyprkit/pkg/config"
	"github.com/hyprkit/hyprkit/pkg/external"
	"github.com/hyprkit/hyprkit/pkg/linker"
	"github.com/hyprkit/hyprkit/pkg/logging"
	"github.com/hyprkit/hyprkit/pkg/paths"
	"github.com/hyprkit/hyprkit/pkg/textblock"
	"github.com/hyprkit/hyprkit/pkg/types"
)

// DefaultWallpaperRepo is the asset repository fetched best-effort
// during install.
const DefaultWallpaperRepo = "https://github.com/hyprkit/wallpapers"

// DefaultPackages are the desktop packages the managed configs depend
// on. Installation is a best-effort collaborator feature.
var DefaultPackages = []string{
	"hyprland", "waybar", "mako", "wofi", "swww", "wlogout", "grim", "slurp", "wl-clipboard",
}

// Options adjusts a run.
type Options struct {
	// DryRun previews the run without touching the filesystem.
	DryRun bool

	// SkipExternal disables the collaborator features (package install,
	// asset fetch, compositor reload) even when the tools are present.
	SkipExternal bool
}

// Provisioner wires the engines together for one repository.
type Provisioner struct {
	fs     types.FS
	paths  paths.Paths
	cfg    *config.Config
	editor *textblock.Editor
	linker *linker.Linker
	collab *external.Collaborators
}

var log = logging.GetLogger("provision")

// New creates a Provisioner.
func New(fs types.FS, p paths.Paths, cfg *config.Config, runner types.CommandRunner) *Provisioner {
	return &Provisioner{
		fs:     fs,
		paths:  p,
		cfg:    cfg,
		editor: textblock.New(fs),
		linker: linker.New(fs, p),
		collab: external.New(runner),
	}
}
