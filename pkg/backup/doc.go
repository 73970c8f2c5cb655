// Package backup implements the backup registry: a timestamped directory
// under the repository's backup root holding everything one install run
// displaced, plus the marker file pointing at the most recent registry.
//
// Displaced entries are stored under a key derived from their destination
// path. Two key schemes exist: the stable scheme (home prefix replaced by
// a fixed token, separators replaced by a multi-character delimiter) and
// the legacy basename-only scheme from an earlier generation. Restore
// tries the schemes newest first, so backups created by either generation
// remain recoverable.
//
// The marker file is a single-slot persistent pointer: written once per
// install run (and only after every record succeeded), read once at the
// start of uninstall. It is never deleted, so uninstall works across
// program restarts.
package backup
