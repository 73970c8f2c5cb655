package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureRepo lays out a complete checkout and points HOME and
// HYPRKIT_REPO at temp directories.
func fixtureRepo(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	repo := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	t.Setenv("HYPRKIT_REPO", repo)

	for _, dir := range []string{"configs/hypr", "configs/waybar", "configs/mako", "configs/wofi", "bin"} {
		require.NoError(t, os.MkdirAll(filepath.Join(repo, filepath.FromSlash(dir)), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(repo, "configs", "hypr", "hyprland.conf"), []byte("monitor=,preferred,auto,1\n"), 0o644))
	for _, script := range []string{"wallpaper-cycle", "powermenu"} {
		require.NoError(t, os.WriteFile(filepath.Join(repo, "bin", script), []byte("#!/bin/sh\n"), 0o755))
	}
	return repo
}

func execute(t *testing.T, args ...string) error {
	t.Helper()

	rootCmd := NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestNoSubcommandFails(t *testing.T) {
	assert.Error(t, execute(t))
}

func TestVersionCmd(t *testing.T) {
	assert.NoError(t, execute(t, "version"))
}

func TestTopicsCmd(t *testing.T) {
	assert.NoError(t, execute(t, "topics"))
	assert.NoError(t, execute(t, "topics", "backups"))
	assert.Error(t, execute(t, "topics", "nonsense"))
}

func TestDryRunInstallCmd(t *testing.T) {
	repo := fixtureRepo(t)

	require.NoError(t, execute(t, "install", "--dry-run", "--no-external"))

	// Dry run must not create a backup marker
	_, err := os.Lstat(filepath.Join(repo, ".latest-backup"))
	assert.True(t, os.IsNotExist(err))
}

func TestInstallStatusUninstallCmds(t *testing.T) {
	fixtureRepo(t)

	require.NoError(t, execute(t, "install", "--no-external"))
	assert.NoError(t, execute(t, "status"))
	assert.NoError(t, execute(t, "uninstall"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	_, err = os.Lstat(filepath.Join(home, ".config", "hypr"))
	assert.True(t, os.IsNotExist(err))
}
