package types

// LinkState describes what install did for one managed path.
type LinkState string

const (
	// LinkCreated means a new symlink now points at the source.
	LinkCreated LinkState = "created"

	// LinkReplaced means an occupant was backed up and replaced.
	LinkReplaced LinkState = "replaced"

	// LinkSatisfied means the destination already was the intended link
	// and nothing was touched.
	LinkSatisfied LinkState = "satisfied"

	// LinkSkipped means an optional source was absent.
	LinkSkipped LinkState = "skipped"
)

// LinkResult reports the outcome of installing one managed path.
type LinkResult struct {
	Path   ManagedPath
	State  LinkState
	Backup string // backup key used, empty when nothing was displaced
}

// RestoreState classifies the outcome of one restore attempt.
type RestoreState string

const (
	// Restored means the displaced entry was moved back.
	Restored RestoreState = "restored"

	// RestoreSkipped means nothing was restored; Reason says why.
	RestoreSkipped RestoreState = "skipped"
)

// RestoreResult reports one restore attempt during uninstall.
type RestoreResult struct {
	Destination string
	State       RestoreState
	Reason      string // "no backup", "destination occupied", ...
	From        string // backup entry the content came from, when restored
}

// RemoveState classifies the outcome of one link removal during uninstall.
type RemoveState string

const (
	// Removed means the link entry was deleted.
	Removed RemoveState = "removed"

	// NotManaged means the destination is not a link into the repository
	// and was left untouched. This is a classification, not an error.
	NotManaged RemoveState = "not-managed"

	// RemoveAbsent means nothing existed at the destination.
	RemoveAbsent RemoveState = "absent"
)

// RemoveResult reports one link removal attempt during uninstall.
type RemoveResult struct {
	Destination string
	State       RemoveState
}

// InstallResult accumulates everything one install run did.
type InstallResult struct {
	Links      []LinkResult
	Blocks     []string // wiring blocks upserted
	BackupRoot string   // registry directory, empty when nothing was displaced
	Warnings   []string // degraded collaborator features
}

// UninstallResult accumulates everything one uninstall run did.
type UninstallResult struct {
	Blocks   []string // wiring blocks removed
	Removals []RemoveResult
	Restores []RestoreResult
}
