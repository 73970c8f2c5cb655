// Package external wraps the out-of-scope collaborators: the system
// package manager, the wallpaper asset repository, and compositor
// runtime control. Every feature here is best-effort; a missing tool
// degrades the feature with a warning and never fails the run.
package external

import (
	"os/exec"

	"github.com/hyprkit/hyprkit/pkg/errors"
	"github.com/hyprkit/hyprkit/pkg/logging"
	"github.com/hyprkit/hyprkit/pkg/types"
)

var log = logging.GetLogger("external")

// execRunner implements types.CommandRunner with os/exec.
type execRunner struct{}

// NewRunner returns the real command runner.
func NewRunner() types.CommandRunner {
	return execRunner{}
}

func (execRunner) LookPath(tool string) (string, error) {
	return exec.LookPath(tool)
}

func (execRunner) Run(tool string, args ...string) ([]byte, error) {
	return exec.Command(tool, args...).CombinedOutput()
}

// Collaborators exposes the external features behind an injectable
// runner so tests never need the real tools.
type Collaborators struct {
	runner types.CommandRunner
}

// New creates Collaborators over the given runner.
func New(runner types.CommandRunner) *Collaborators {
	return &Collaborators{runner: runner}
}

// ReloadCompositor asks a running Hyprland instance to reload its
// configuration.
func (c *Collaborators) ReloadCompositor() error {
	return c.run("hyprctl", "reload")
}

// RestartWallpaperDaemon brings the wallpaper daemon up so the wallpaper
// wiring takes effect without a relogin.
func (c *Collaborators) RestartWallpaperDaemon() error {
	return c.run("swww", "init")
}

// FetchWallpapers clones the wallpaper asset repository into dir, or
// updates it when already present.
func (c *Collaborators) FetchWallpapers(repoURL, dir string) error {
	if _, err := c.runner.LookPath("git"); err != nil {
		return errors.Wrap(err, errors.ErrExternalTool, "git is not installed")
	}
	if out, err := c.runner.Run("git", "-C", dir, "pull", "--ff-only"); err == nil {
		log.Debug().Str("dir", dir).Msg("updated wallpaper assets")
		return nil
	} else {
		log.Debug().Err(err).Bytes("output", out).Msg("pull failed, trying fresh clone")
	}
	if out, err := c.runner.Run("git", "clone", "--depth=1", repoURL, dir); err != nil {
		return errors.Wrapf(err, errors.ErrExternalTool,
			"cannot fetch wallpaper assets: %s", string(out))
	}
	return nil
}

// InstallPackages installs the desktop packages the configs depend on
// via pacman.
func (c *Collaborators) InstallPackages(pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	if _, err := c.runner.LookPath("pacman"); err != nil {
		return errors.Wrap(err, errors.ErrExternalTool, "pacman is not installed")
	}
	args := append([]string{"pacman", "-S", "--needed", "--noconfirm"}, pkgs...)
	if out, err := c.runner.Run("sudo", args...); err != nil {
		return errors.Wrapf(err, errors.ErrExternalTool,
			"package installation failed: %s", string(out))
	}
	return nil
}

func (c *Collaborators) run(tool string, args ...string) error {
	if _, err := c.runner.LookPath(tool); err != nil {
		return errors.Wrapf(err, errors.ErrExternalTool, "%s is not installed", tool)
	}
	if out, err := c.runner.Run(tool, args...); err != nil {
		return errors.Wrapf(err, errors.ErrExternalTool, "%s failed: %s", tool, string(out))
	}
	log.Debug().Str("tool", tool).Strs("args", args).Msg("ran external tool")
	return nil
}
