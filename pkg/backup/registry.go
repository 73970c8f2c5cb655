package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hyprkit/hyprkit/pkg/errors"
	"github.com/hyprkit/hyprkit/pkg/logging"
	"github.com/hyprkit/hyprkit/pkg/types"
)

// ManifestName is the audit file written into every registry directory.
const ManifestName = "manifest.yaml"

// registryTimeFormat names registry directories. One registry per run.
const registryTimeFormat = "20060102-150405"

// ManifestEntry describes one displaced filesystem entry for auditing.
type ManifestEntry struct {
	Key      string `yaml:"key"`
	Original string `yaml:"original"`
	Kind     string `yaml:"kind"` // file, directory or symlink
}

// Manifest is the audit record of one install run's displacements.
type Manifest struct {
	Created time.Time       `yaml:"created"`
	Entries []ManifestEntry `yaml:"entries"`
}

// Registry is the handle for one install run's backup directory. Records
// accumulate under the directory; Publish makes the run visible through
// the marker file only after everything succeeded.
type Registry struct {
	fs   types.FS
	home string
	dir  string

	manifest Manifest
}

// NewRegistry allocates a fresh, uniquely named registry directory path
// under backupRoot. Nothing is created on disk until the first record.
func NewRegistry(fs types.FS, backupRoot, home string) (*Registry, error) {
	name := time.Now().Format(registryTimeFormat)
	dir := filepath.Join(backupRoot, name)
	// Two runs inside the same second get distinct directories.
	for i := 2; ; i++ {
		if _, err := fs.Lstat(dir); os.IsNotExist(err) {
			break
		}
		dir = filepath.Join(backupRoot, fmt.Sprintf("%s-%d", name, i))
	}
	return &Registry{
		fs:       fs,
		home:     home,
		dir:      dir,
		manifest: Manifest{Created: time.Now()},
	}, nil
}

// Dir returns the registry directory path.
func (r *Registry) Dir() string {
	return r.dir
}

// Count returns how many entries were recorded so far.
func (r *Registry) Count() int {
	return len(r.manifest.Entries)
}

// Record moves whatever occupies destination into the registry under the
// stable key, preserving the entry type: a symlink is relocated as a
// link, not its target. Nothing existing at destination is a no-op. The
// move either completes or leaves the destination untouched; a failed
// move is fatal for the run.
func (r *Registry) Record(destination string) (string, bool, error) {
	info, err := r.fs.Lstat(destination)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", destination)
	}

	key := StableKey(r.home, destination)
	target := filepath.Join(r.dir, key)

	if err := r.fs.MkdirAll(r.dir, 0755); err != nil {
		return "", false, errors.Wrapf(err, errors.ErrBackupCreate, "cannot create backup registry %s", r.dir)
	}

	// Rename is atomic on the same filesystem: it either relocates the
	// whole entry or fails with the destination untouched.
	if err := r.fs.Rename(destination, target); err != nil {
		return "", false, errors.Wrapf(err, errors.ErrDisplacedMove,
			"cannot move %s into backup registry", destination).
			WithDetail("destination", destination).
			WithDetail("backup", target)
	}

	r.manifest.Entries = append(r.manifest.Entries, ManifestEntry{
		Key:      key,
		Original: destination,
		Kind:     entryKind(info),
	})

	log.Info().Str("from", destination).Str("to", target).Msg("backed up displaced entry")
	return key, true, nil
}

// Publish writes the manifest into the registry and points the marker
// file at it, overwriting any previous marker. Call only after every
// record for the run succeeded.
func (r *Registry) Publish(markerPath string) error {
	data, err := yaml.Marshal(&r.manifest)
	if err != nil {
		return errors.Wrap(err, errors.ErrBackupCreate, "cannot encode backup manifest")
	}
	if err := r.fs.MkdirAll(r.dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrBackupCreate, "cannot create backup registry %s", r.dir)
	}
	if err := r.fs.WriteFile(filepath.Join(r.dir, ManifestName), data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrBackupCreate, "cannot write backup manifest")
	}
	if err := r.fs.WriteFile(markerPath, []byte(r.dir), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrMarkerWrite, "cannot write backup marker %s", markerPath)
	}
	log.Info().Str("registry", r.dir).Str("marker", markerPath).Msg("published backup registry")
	return nil
}

var log = logging.GetLogger("backup")

func entryKind(info os.FileInfo) string {
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return "symlink"
	case info.IsDir():
		return "directory"
	default:
		return "file"
	}
}
