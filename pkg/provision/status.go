package provision

import (
	"os"

	"github.com/hyprkit/hyprkit/pkg/backup"
	"github.com/hyprkit/hyprkit/pkg/errors"
	"github.com/hyprkit/hyprkit/pkg/types"
	"github.com/hyprkit/hyprkit/pkg/wiring"
)

// PathState classifies what currently occupies a managed destination.
type PathState string

const (
	// StateLinked means the destination is our link.
	StateLinked PathState = "linked"

	// StateForeign means a link points somewhere outside the repository.
	StateForeign PathState = "foreign link"

	// StateOccupied means a real file or directory sits there.
	StateOccupied PathState = "occupied"

	// StateAbsent means nothing exists at the destination.
	StateAbsent PathState = "absent"
)

// StatusEntry is the current state of one managed path.
type StatusEntry struct {
	Path        types.ManagedPath
	Destination string
	State       PathState
}

// Status is a read-only snapshot of everything hyprkit manages.
type Status struct {
	Entries      []StatusEntry
	Blocks       map[string]bool // wiring block name -> present
	LatestBackup string          // empty when no marker exists
}

// Status inspects every managed destination, the wiring file and the
// backup marker without changing anything.
func (pr *Provisioner) Status() (*Status, error) {
	status := &Status{Blocks: make(map[string]bool)}

	for _, mp := range pr.cfg.Paths {
		destination := mp.DestinationPath(pr.paths.Home())
		entry := StatusEntry{Path: mp, Destination: destination}

		if _, err := pr.fs.Lstat(destination); err != nil {
			if !os.IsNotExist(err) {
				return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", destination)
			}
			entry.State = StateAbsent
		} else {
			owned, err := pr.linker.Owns(destination)
			if err != nil {
				return nil, err
			}
			switch {
			case owned:
				entry.State = StateLinked
			case isSymlink(pr.fs, destination):
				entry.State = StateForeign
			default:
				entry.State = StateOccupied
			}
		}
		status.Entries = append(status.Entries, entry)
	}

	for _, block := range wiring.Blocks() {
		present, err := pr.editor.Has(pr.paths.WiringFile(), block.Name)
		if err != nil {
			return nil, err
		}
		status.Blocks[block.Name] = present
	}

	latest, err := backup.ReadLatest(pr.fs, pr.paths.MarkerPath())
	if err != nil {
		return nil, err
	}
	status.LatestBackup = latest.Dir

	return status, nil
}

func isSymlink(fs types.FS, path string) bool {
	info, err := fs.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}
