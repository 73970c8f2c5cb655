package backup

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hyprkit/hyprkit/pkg/errors"
	"github.com/hyprkit/hyprkit/pkg/types"
)

// LatestBackup is the value of the single-slot marker pointer, read once
// and handed to the uninstaller. A zero value means no backup exists.
type LatestBackup struct {
	Dir string
}

// ReadLatest reads the marker file. An absent marker is not an error;
// it yields a zero LatestBackup.
func ReadLatest(fs types.FS, markerPath string) (LatestBackup, error) {
	content, err := fs.ReadFile(markerPath)
	if err != nil {
		if os.IsNotExist(err) {
			return LatestBackup{}, nil
		}
		return LatestBackup{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot read backup marker %s", markerPath)
	}
	return LatestBackup{Dir: strings.TrimSpace(string(content))}, nil
}

// Restorer moves displaced entries back out of the registry named by a
// LatestBackup value.
type Restorer struct {
	fs     types.FS
	home   string
	latest LatestBackup
}

// NewRestorer creates a Restorer for the given marker value.
func NewRestorer(fs types.FS, home string, latest LatestBackup) *Restorer {
	return &Restorer{fs: fs, home: home, latest: latest}
}

// Restore brings back the backup entry for destination, if one exists.
// It never overwrites: an occupied destination is reported as skipped,
// not an error. Key schemes are tried newest first, so backups written
// under the legacy basename scheme are still found.
func (r *Restorer) Restore(destination string) (types.RestoreResult, error) {
	result := types.RestoreResult{Destination: destination, State: types.RestoreSkipped}

	if r.latest.Dir == "" {
		result.Reason = "no backup marker"
		return result, nil
	}
	if _, err := r.fs.Lstat(r.latest.Dir); err != nil {
		if os.IsNotExist(err) {
			result.Reason = "backup registry gone"
			return result, nil
		}
		return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect backup registry %s", r.latest.Dir)
	}

	// Never clobber: anything currently at the destination wins, even a
	// dangling symlink.
	if _, err := r.fs.Lstat(destination); err == nil {
		result.Reason = "destination occupied"
		return result, nil
	} else if !os.IsNotExist(err) {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", destination)
	}

	for _, key := range Keys(r.home, destination) {
		candidate := filepath.Join(r.latest.Dir, key)
		if _, err := r.fs.Lstat(candidate); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect backup entry %s", candidate)
		}

		if err := r.fs.MkdirAll(filepath.Dir(destination), 0755); err != nil {
			return result, errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent of %s", destination)
		}
		if err := r.fs.Rename(candidate, destination); err != nil {
			return result, errors.Wrapf(err, errors.ErrDisplacedMove,
				"cannot move backup entry back to %s", destination)
		}

		log.Info().Str("from", candidate).Str("to", destination).Msg("restored backup entry")
		result.State = types.Restored
		result.From = candidate
		return result, nil
	}

	result.Reason = "no backup entry"
	return result, nil
}
