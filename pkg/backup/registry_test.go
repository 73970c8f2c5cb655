package backup_test

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/hyprkit/hyprkit/pkg/backup"
	"github.com/hyprkit/hyprkit/pkg/filesystem"
	"github.com/hyprkit/hyprkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	fs         types.FS
	home       string
	backupRoot string
	marker     string
}

func setup(t *testing.T) env {
	t.Helper()
	tmp := t.TempDir()
	e := env{
		fs:         filesystem.NewOS(),
		home:       filepath.Join(tmp, "home"),
		backupRoot: filepath.Join(tmp, "repo", "backups"),
		marker:     filepath.Join(tmp, "repo", ".latest-backup"),
	}
	require.NoError(t, e.fs.MkdirAll(e.home, 0755))
	require.NoError(t, e.fs.MkdirAll(filepath.Join(tmp, "repo"), 0755))
	return e
}

func TestRecordMovesFile(t *testing.T) {
	e := setup(t)
	dest := filepath.Join(e.home, ".config", "mako", "config")
	require.NoError(t, e.fs.MkdirAll(filepath.Dir(dest), 0755))
	require.NoError(t, e.fs.WriteFile(dest, []byte("user mako config"), 0644))

	reg, err := backup.NewRegistry(e.fs, e.backupRoot, e.home)
	require.NoError(t, err)

	key, displaced, err := reg.Record(dest)
	require.NoError(t, err)
	assert.True(t, displaced)
	assert.Equal(t, "HOME%%.config%%mako%%config", key)

	// original location is vacated, content lives under the key
	_, err = e.fs.Lstat(dest)
	assert.True(t, os.IsNotExist(err))
	content, err := e.fs.ReadFile(filepath.Join(reg.Dir(), key))
	require.NoError(t, err)
	assert.Equal(t, "user mako config", string(content))
}

func TestRecordMovesDirectory(t *testing.T) {
	e := setup(t)
	dest := filepath.Join(e.home, ".config", "hypr")
	require.NoError(t, e.fs.MkdirAll(dest, 0755))
	require.NoError(t, e.fs.WriteFile(filepath.Join(dest, "foo.conf"), []byte("foo"), 0644))

	reg, err := backup.NewRegistry(e.fs, e.backupRoot, e.home)
	require.NoError(t, err)

	key, displaced, err := reg.Record(dest)
	require.NoError(t, err)
	assert.True(t, displaced)

	moved := filepath.Join(reg.Dir(), key, "foo.conf")
	content, err := e.fs.ReadFile(moved)
	require.NoError(t, err)
	assert.Equal(t, "foo", string(content))
}

func TestRecordMovesSymlinkItself(t *testing.T) {
	e := setup(t)
	target := filepath.Join(e.home, "real-dir")
	require.NoError(t, e.fs.MkdirAll(target, 0755))
	dest := filepath.Join(e.home, ".config", "wofi")
	require.NoError(t, e.fs.MkdirAll(filepath.Dir(dest), 0755))
	require.NoError(t, e.fs.Symlink(target, dest))

	reg, err := backup.NewRegistry(e.fs, e.backupRoot, e.home)
	require.NoError(t, err)

	key, displaced, err := reg.Record(dest)
	require.NoError(t, err)
	assert.True(t, displaced)

	// the link itself was relocated, its target is untouched
	moved := filepath.Join(reg.Dir(), key)
	linkTarget, err := e.fs.Readlink(moved)
	require.NoError(t, err)
	assert.Equal(t, target, linkTarget)
	_, err = e.fs.Lstat(target)
	assert.NoError(t, err)
}

func TestRecordNothingThereIsNoop(t *testing.T) {
	e := setup(t)
	reg, err := backup.NewRegistry(e.fs, e.backupRoot, e.home)
	require.NoError(t, err)

	key, displaced, err := reg.Record(filepath.Join(e.home, ".config", "absent"))
	require.NoError(t, err)
	assert.False(t, displaced)
	assert.Empty(t, key)
	assert.Zero(t, reg.Count())

	// an empty run never creates the registry directory
	_, err = e.fs.Lstat(reg.Dir())
	assert.True(t, os.IsNotExist(err))
}

func TestPublishWritesMarkerAndManifest(t *testing.T) {
	e := setup(t)
	dest := filepath.Join(e.home, ".config", "waybar")
	require.NoError(t, e.fs.MkdirAll(dest, 0755))

	reg, err := backup.NewRegistry(e.fs, e.backupRoot, e.home)
	require.NoError(t, err)
	_, _, err = reg.Record(dest)
	require.NoError(t, err)

	require.NoError(t, reg.Publish(e.marker))

	// marker holds the registry path as its entire contents
	markerContent, err := e.fs.ReadFile(e.marker)
	require.NoError(t, err)
	assert.Equal(t, reg.Dir(), string(markerContent))

	// manifest records the displaced entry
	data, err := e.fs.ReadFile(filepath.Join(reg.Dir(), backup.ManifestName))
	require.NoError(t, err)
	var m backup.Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	require.Len(t, m.Entries, 1)
	assert.Equal(t, dest, m.Entries[0].Original)
	assert.Equal(t, "directory", m.Entries[0].Kind)
	assert.Equal(t, "HOME%%.config%%waybar", m.Entries[0].Key)
}

func TestPublishOverwritesPreviousMarker(t *testing.T) {
	e := setup(t)
	require.NoError(t, e.fs.WriteFile(e.marker, []byte("/stale/registry"), 0644))

	reg, err := backup.NewRegistry(e.fs, e.backupRoot, e.home)
	require.NoError(t, err)
	require.NoError(t, reg.Publish(e.marker))

	markerContent, err := e.fs.ReadFile(e.marker)
	require.NoError(t, err)
	assert.Equal(t, reg.Dir(), string(markerContent))
}

func TestTwoRegistriesGetDistinctDirs(t *testing.T) {
	e := setup(t)

	first, err := backup.NewRegistry(e.fs, e.backupRoot, e.home)
	require.NoError(t, err)
	require.NoError(t, e.fs.MkdirAll(first.Dir(), 0755))

	second, err := backup.NewRegistry(e.fs, e.backupRoot, e.home)
	require.NoError(t, err)
	assert.NotEqual(t, first.Dir(), second.Dir())
}
