// Package linker installs and removes the symlinks for managed paths.
//
// Install is idempotent: a destination that already is the intended link
// is recognized and left alone, without generating a backup entry for
// our own link. Anything else occupying a destination is handed to the
// backup registry before the link is created. Removal only ever deletes
// a link that resolves into the repository; real files and directories
// are never touched.
package linker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hyprkit/hyprkit/pkg/backup"
	"github.com/hyprkit/hyprkit/pkg/errors"
	"github.com/hyprkit/hyprkit/pkg/logging"
	"github.com/hyprkit/hyprkit/pkg/paths"
	"github.com/hyprkit/hyprkit/pkg/types"
)

// Linker installs managed paths as symlinks into the home directory.
type Linker struct {
	fs    types.FS
	paths paths.Paths
}

// New creates a Linker.
func New(fs types.FS, p paths.Paths) *Linker {
	return &Linker{fs: fs, paths: p}
}

var log = logging.GetLogger("linker")

// Install makes the destination of mp a symlink to its source, backing
// up whatever the link displaces through reg. A required source that is
// absent fails with CONFIG_MISSING; an optional one is skipped.
func (l *Linker) Install(mp types.ManagedPath, reg *backup.Registry) (types.LinkResult, error) {
	result := types.LinkResult{Path: mp}

	source := mp.SourcePath(l.paths.RepoRoot())
	destination := mp.DestinationPath(l.paths.Home())

	srcInfo, err := l.fs.Lstat(source)
	if err != nil {
		if os.IsNotExist(err) {
			if mp.Optional {
				log.Info().Str("source", source).Str("name", mp.Name).Msg("optional source absent, skipping")
				result.State = types.LinkSkipped
				return result, nil
			}
			return result, errors.Newf(errors.ErrConfigMissing,
				"required source %s does not exist, repository checkout looks broken", source).
				WithDetail("name", mp.Name)
		}
		return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", source)
	}

	if mp.Executable && srcInfo.Mode()&0111 == 0 {
		log.Warn().Str("source", source).Msg("helper script is not executable")
	}

	// Destination already is the intended link: a true no-op. Our own
	// link from a previous run must not end up in the backup registry.
	if target, err := l.fs.Readlink(destination); err == nil && target == source {
		log.Debug().Str("destination", destination).Msg("link already satisfied")
		result.State = types.LinkSatisfied
		return result, nil
	}

	if err := l.fs.MkdirAll(filepath.Dir(destination), 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent of %s", destination)
	}

	// Backup before replace. A failed move is fatal and leaves the
	// occupant in place; we never create the link over lost data.
	key, displaced, err := reg.Record(destination)
	if err != nil {
		return result, err
	}

	if err := l.fs.Symlink(source, destination); err != nil {
		return result, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"cannot link %s to %s", destination, source)
	}

	if displaced {
		result.State = types.LinkReplaced
		result.Backup = key
	} else {
		result.State = types.LinkCreated
	}
	log.Info().Str("source", source).Str("destination", destination).
		Str("state", string(result.State)).Msg("installed link")
	return result, nil
}

// Owns reports whether destination is currently a symlink resolving into
// the repository root. A dangling link is still owned when its raw
// target points into the repository.
func (l *Linker) Owns(destination string) (bool, error) {
	info, err := l.fs.Lstat(destination)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", destination)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return false, nil
	}

	if ok, err := l.paths.InRepo(destination); err == nil {
		return ok, nil
	}

	// Dangling link, fall back to a lexical check of the raw target.
	target, err := l.fs.Readlink(destination)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", destination)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(destination), target)
	}
	root := l.paths.RepoRoot()
	target = filepath.Clean(target)
	return target == root || strings.HasPrefix(target, root+string(filepath.Separator)), nil
}

// RemoveOwned deletes the link entry at destination if this tool owns
// it. Anything else is classified not-managed and left untouched.
func (l *Linker) RemoveOwned(destination string) (types.RemoveResult, error) {
	result := types.RemoveResult{Destination: destination}

	if _, err := l.fs.Lstat(destination); err != nil {
		if os.IsNotExist(err) {
			result.State = types.RemoveAbsent
			return result, nil
		}
		return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", destination)
	}

	owned, err := l.Owns(destination)
	if err != nil {
		return result, err
	}
	if !owned {
		log.Info().Str("destination", destination).Msg("not a link into the repository, leaving untouched")
		result.State = types.NotManaged
		return result, nil
	}

	// Remove deletes the link entry, never what it points to.
	if err := l.fs.Remove(destination); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot remove link %s", destination)
	}

	log.Info().Str("destination", destination).Msg("removed link")
	result.State = types.Removed
	return result, nil
}
