package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Provision a Hyprland desktop from a dotfiles repository"
	MsgRootLong  = `hyprkit installs a Hyprland desktop configuration from a dotfiles
repository: it symlinks the managed config directories and scripts into
place, wires keybindings and autostart entries into hyprland.conf, and
backs up anything it displaces so uninstall can put it back.`

	MsgInstallShort = "Link configs into place and wire hyprland.conf"
	MsgInstallLong  = `Install symlinks every managed path from the repository into your home
directory and maintains the hyprkit-owned blocks in the repository's
hyprland.conf. Anything already occupying a destination is moved into a
timestamped backup directory first.

Install is safe to re-run: links that already point at the repository
are left alone and blocks are rewritten in place.`
	MsgInstallExample = `  # Install from the enclosing repository
  hyprkit install

  # Preview without touching anything
  hyprkit install --dry-run

  # Skip package installation, wallpaper fetch and compositor reload
  hyprkit install --no-external`

	MsgUninstallShort = "Remove managed links and restore backups"
	MsgUninstallLong  = `Uninstall removes the hyprkit blocks from hyprland.conf, deletes the
symlinks hyprkit owns, and moves the most recent backups back into
place. Destinations that are occupied by anything else are left
untouched.`
	MsgUninstallExample = `  # Undo the last install
  hyprkit uninstall

  # See what would be removed and restored
  hyprkit uninstall --dry-run`

	MsgStatusShort = "Show the state of every managed path and block"
	MsgStatusLong  = `Status reports each managed destination (linked, foreign link, occupied
or absent), which wiring blocks are present in hyprland.conf, and the
location of the latest backup directory.`

	MsgTopicsShort = "List documentation topics or show one"
	MsgTopicsLong  = "Display built-in documentation beyond command help: backups, wiring and layout."

	MsgVersionShort = "Print version information"

	// Status messages
	MsgDryRunNotice = "\nDRY RUN MODE - No changes were made"

	// Error messages
	MsgErrRuntime   = "failed to initialize: %w"
	MsgErrInstall   = "install failed: %w"
	MsgErrUninstall = "uninstall failed: %w"
	MsgErrStatus    = "status failed: %w"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Preview changes without executing them"
	MsgFlagRepo       = "Repository root (default: $HYPRKIT_REPO, then the enclosing git checkout)"
	MsgFlagNoExternal = "Skip package installation, wallpaper fetch and compositor reload"
)
