// Package paths provides centralized path handling for hyprkit.
// It resolves the dotfiles repository root, the user's home directory,
// and every well-known location the tool reads or writes: the backup
// root, the backup marker file, the shared wiring file, and the XDG
// state/log locations.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/hyprkit/hyprkit/pkg/errors"
)

// Environment variable names
const (
	// EnvRepoRoot is the primary environment variable for the repository location
	EnvRepoRoot = "HYPRKIT_REPO"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// IMPORTANT: these constants define hyprkit's on-disk layout and are NOT
// user-configurable. Changing them orphans existing backups.
const (
	// HyprkitDirName is the directory name for hyprkit-specific XDG files
	HyprkitDirName = "hyprkit"

	// RepoConfigFile is the optional per-repository configuration file
	RepoConfigFile = "hyprkit.toml"

	// BackupDirName is the directory under the repo root holding backup registries
	BackupDirName = "backups"

	// MarkerFileName is the pointer file naming the most recent backup registry.
	// Its entire contents is the absolute path of that registry.
	MarkerFileName = ".latest-backup"

	// ConfigsDirName is the directory under the repo root holding config sources
	ConfigsDirName = "configs"

	// WiringFileRel is the shared wiring file, relative to the repo root.
	// Marker blocks for wallpaper automation, menus and binds land here.
	WiringFileRel = "configs/hypr/hyprland.conf"

	// LogFileName is the name of the log file
	LogFileName = "hyprkit.log"
)

// Paths provides centralized path management for hyprkit
type Paths interface {
	RepoRoot() string
	UsedFallback() bool
	Home() string
	BackupRoot() string
	MarkerPath() string
	WiringFile() string
	RepoConfigPath() string
	LocalBinDir() string
	StateDir() string
	LogFilePath() string
	ExpandHome(path string) string
	// InRepo reports whether path, after resolving symlinks, lies inside
	// the repository root. Used as the link-ownership check.
	InRepo(path string) (bool, error)
}

type paths struct {
	repoRoot     string
	home         string
	xdgState     string
	usedFallback bool
}

// New creates a Paths instance rooted at repoRoot. If repoRoot is empty
// it is determined from HYPRKIT_REPO, then the enclosing git repository,
// then the current working directory as a last resort.
func New(repoRoot string) (Paths, error) {
	p := &paths{}

	if repoRoot == "" {
		root, usedFallback, err := findRepoRoot()
		if err != nil {
			return nil, err
		}
		p.repoRoot = root
		p.usedFallback = usedFallback
	} else {
		p.repoRoot = expandHome(repoRoot)
	}

	absRoot, err := filepath.Abs(p.repoRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for repo root")
	}
	p.repoRoot = absRoot

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv(EnvHome)
	}
	if home == "" {
		return nil, errors.New(errors.ErrFileAccess, "cannot determine home directory")
	}
	p.home = home

	// xdg resolves its dirs at package init, so honor a runtime override
	// of XDG_STATE_HOME explicitly (tests rely on it).
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, HyprkitDirName)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, HyprkitDirName)
	}

	return p, nil
}

func (p *paths) RepoRoot() string     { return p.repoRoot }
func (p *paths) UsedFallback() bool   { return p.usedFallback }
func (p *paths) Home() string         { return p.home }
func (p *paths) StateDir() string     { return p.xdgState }
func (p *paths) LogFilePath() string  { return filepath.Join(p.xdgState, LogFileName) }
func (p *paths) BackupRoot() string   { return filepath.Join(p.repoRoot, BackupDirName) }
func (p *paths) MarkerPath() string   { return filepath.Join(p.repoRoot, MarkerFileName) }
func (p *paths) WiringFile() string   { return filepath.Join(p.repoRoot, filepath.FromSlash(WiringFileRel)) }
func (p *paths) RepoConfigPath() string { return filepath.Join(p.repoRoot, RepoConfigFile) }
func (p *paths) LocalBinDir() string  { return filepath.Join(p.home, ".local", "bin") }

// ExpandHome expands a leading ~ against the user's home directory.
func (p *paths) ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if path == "~" {
			return p.home
		}
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(p.home, path[2:])
		}
	}
	return path
}

// InRepo resolves symlinks in path and reports whether the result lies
// inside the repository root. The repo root itself is also resolved, so
// a repo reached through a symlinked parent still owns its links.
func (p *paths) InRepo(path string) (bool, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false, err
	}
	root, err := filepath.EvalSymlinks(p.repoRoot)
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(root, resolved)
	if err != nil {
		return false, nil
	}
	if rel == "." {
		return true, nil
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && rel != "..", nil
}

// findRepoRoot determines the repository root using the following priority:
// 1. HYPRKIT_REPO environment variable
// 2. Git repository root ('git rev-parse --show-toplevel')
// 3. Current working directory (fallback, flagged for a warning)
func findRepoRoot() (string, bool, error) {
	if root := os.Getenv(EnvRepoRoot); root != "" {
		return expandHome(root), false, nil
	}

	if gitRoot, err := findGitRoot(); err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}
	gitRoot := strings.TrimSpace(string(out))
	if gitRoot == "" {
		return "", errors.New(errors.ErrRepoNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}
	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
