package backup_test

import (
	"path/filepath"
	"testing"

	"github.com/hyprkit/hyprkit/pkg/backup"
	"github.com/hyprkit/hyprkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLatestAbsentMarker(t *testing.T) {
	e := setup(t)
	latest, err := backup.ReadLatest(e.fs, e.marker)
	require.NoError(t, err)
	assert.Empty(t, latest.Dir)
}

func TestReadLatestTrimsWhitespace(t *testing.T) {
	e := setup(t)
	require.NoError(t, e.fs.WriteFile(e.marker, []byte("/some/registry\n"), 0644))
	latest, err := backup.ReadLatest(e.fs, e.marker)
	require.NoError(t, err)
	assert.Equal(t, "/some/registry", latest.Dir)
}

func TestRestoreRoundTrip(t *testing.T) {
	e := setup(t)
	dest := filepath.Join(e.home, ".config", "hypr")
	require.NoError(t, e.fs.MkdirAll(dest, 0755))
	require.NoError(t, e.fs.WriteFile(filepath.Join(dest, "foo.conf"), []byte("user content"), 0644))

	reg, err := backup.NewRegistry(e.fs, e.backupRoot, e.home)
	require.NoError(t, err)
	_, _, err = reg.Record(dest)
	require.NoError(t, err)
	require.NoError(t, reg.Publish(e.marker))

	latest, err := backup.ReadLatest(e.fs, e.marker)
	require.NoError(t, err)
	result, err := backup.NewRestorer(e.fs, e.home, latest).Restore(dest)
	require.NoError(t, err)

	assert.Equal(t, types.Restored, result.State)
	content, err := e.fs.ReadFile(filepath.Join(dest, "foo.conf"))
	require.NoError(t, err)
	assert.Equal(t, "user content", string(content))
}

func TestRestoreNeverClobbers(t *testing.T) {
	e := setup(t)
	dest := filepath.Join(e.home, ".config", "hypr")
	require.NoError(t, e.fs.MkdirAll(dest, 0755))

	reg, err := backup.NewRegistry(e.fs, e.backupRoot, e.home)
	require.NoError(t, err)
	_, _, err = reg.Record(dest)
	require.NoError(t, err)
	require.NoError(t, reg.Publish(e.marker))

	// the user recreates the destination between install and uninstall
	require.NoError(t, e.fs.MkdirAll(dest, 0755))
	require.NoError(t, e.fs.WriteFile(filepath.Join(dest, "mine.conf"), []byte("recreated"), 0644))

	latest, err := backup.ReadLatest(e.fs, e.marker)
	require.NoError(t, err)
	result, err := backup.NewRestorer(e.fs, e.home, latest).Restore(dest)
	require.NoError(t, err)

	assert.Equal(t, types.RestoreSkipped, result.State)
	assert.Equal(t, "destination occupied", result.Reason)
	content, err := e.fs.ReadFile(filepath.Join(dest, "mine.conf"))
	require.NoError(t, err)
	assert.Equal(t, "recreated", string(content))
}

func TestRestoreLegacyKeyFallback(t *testing.T) {
	e := setup(t)
	dest := filepath.Join(e.home, ".config", "hypr")

	// a registry written by the old generation: basename key only
	registryDir := filepath.Join(e.backupRoot, "20200101-000000")
	require.NoError(t, e.fs.MkdirAll(filepath.Join(registryDir, "hypr"), 0755))
	require.NoError(t, e.fs.WriteFile(filepath.Join(registryDir, "hypr", "old.conf"), []byte("from legacy backup"), 0644))
	require.NoError(t, e.fs.WriteFile(e.marker, []byte(registryDir), 0644))

	latest, err := backup.ReadLatest(e.fs, e.marker)
	require.NoError(t, err)
	result, err := backup.NewRestorer(e.fs, e.home, latest).Restore(dest)
	require.NoError(t, err)

	assert.Equal(t, types.Restored, result.State)
	content, err := e.fs.ReadFile(filepath.Join(dest, "old.conf"))
	require.NoError(t, err)
	assert.Equal(t, "from legacy backup", string(content))
}

func TestRestoreStableKeyWinsOverLegacy(t *testing.T) {
	e := setup(t)
	dest := filepath.Join(e.home, ".config", "hypr")

	registryDir := filepath.Join(e.backupRoot, "20250101-000000")
	stable := backup.StableKey(e.home, dest)
	require.NoError(t, e.fs.MkdirAll(filepath.Join(registryDir, stable), 0755))
	require.NoError(t, e.fs.WriteFile(filepath.Join(registryDir, stable, "new.conf"), []byte("stable"), 0644))
	require.NoError(t, e.fs.MkdirAll(filepath.Join(registryDir, "hypr"), 0755))
	require.NoError(t, e.fs.WriteFile(filepath.Join(registryDir, "hypr", "old.conf"), []byte("legacy"), 0644))
	require.NoError(t, e.fs.WriteFile(e.marker, []byte(registryDir), 0644))

	latest, err := backup.ReadLatest(e.fs, e.marker)
	require.NoError(t, err)
	result, err := backup.NewRestorer(e.fs, e.home, latest).Restore(dest)
	require.NoError(t, err)

	assert.Equal(t, types.Restored, result.State)
	_, err = e.fs.Lstat(filepath.Join(dest, "new.conf"))
	assert.NoError(t, err)
}

func TestRestoreNoMarkerIsSkipped(t *testing.T) {
	e := setup(t)
	result, err := backup.NewRestorer(e.fs, e.home, backup.LatestBackup{}).
		Restore(filepath.Join(e.home, ".config", "hypr"))
	require.NoError(t, err)
	assert.Equal(t, types.RestoreSkipped, result.State)
	assert.Equal(t, "no backup marker", result.Reason)
}

func TestRestoreRegistryGoneIsSkipped(t *testing.T) {
	e := setup(t)
	latest := backup.LatestBackup{Dir: filepath.Join(e.backupRoot, "vanished")}
	result, err := backup.NewRestorer(e.fs, e.home, latest).
		Restore(filepath.Join(e.home, ".config", "hypr"))
	require.NoError(t, err)
	assert.Equal(t, types.RestoreSkipped, result.State)
	assert.Equal(t, "backup registry gone", result.Reason)
}

func TestRestoreNoEntryIsSkipped(t *testing.T) {
	e := setup(t)
	registryDir := filepath.Join(e.backupRoot, "20250101-000000")
	require.NoError(t, e.fs.MkdirAll(registryDir, 0755))
	require.NoError(t, e.fs.WriteFile(e.marker, []byte(registryDir), 0644))

	latest, err := backup.ReadLatest(e.fs, e.marker)
	require.NoError(t, err)
	result, err := backup.NewRestorer(e.fs, e.home, latest).
		Restore(filepath.Join(e.home, ".config", "never-backed-up"))
	require.NoError(t, err)
	assert.Equal(t, types.RestoreSkipped, result.State)
	assert.Equal(t, "no backup entry", result.Reason)
}
