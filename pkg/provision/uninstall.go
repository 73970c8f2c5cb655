package provision

import (
	"path/filepath"

	"github.com/hyprkit/hyprkit/pkg/backup"
	"github.com/hyprkit/hyprkit/pkg/types"
	"github.com/hyprkit/hyprkit/pkg/wiring"
)

// Uninstall reverses an install run using only evidence this tool
// produced: wiring blocks are removed first (the edit lands in the
// repository's backing file even when reached through a link), then only
// owned links are deleted, then backups are restored into the vacated
// destinations. Every step is individually safe to re-run.
func (pr *Provisioner) Uninstall(opts Options) (*types.UninstallResult, error) {
	result := &types.UninstallResult{}

	latest, err := backup.ReadLatest(pr.fs, pr.paths.MarkerPath())
	if err != nil {
		return nil, err
	}
	restorer := backup.NewRestorer(pr.fs, pr.paths.Home(), latest)

	if opts.DryRun {
		return pr.previewUninstall(result, latest)
	}

	// 1. wiring blocks, including legacy-tagged lines from old releases
	wiringFile := pr.paths.WiringFile()
	for _, block := range wiring.Blocks() {
		if err := pr.editor.Remove(wiringFile, block.Name); err != nil {
			return nil, err
		}
		if err := pr.editor.RemoveLinesContaining(wiringFile, block.LegacySubstring); err != nil {
			return nil, err
		}
		result.Blocks = append(result.Blocks, block.Name)
	}

	// 2. links, ownership-checked per destination
	for _, mp := range pr.cfg.Paths {
		removeResult, err := pr.linker.RemoveOwned(mp.DestinationPath(pr.paths.Home()))
		if err != nil {
			return nil, err
		}
		result.Removals = append(result.Removals, removeResult)
	}

	// 3. backups, never overwriting anything that reappeared
	for _, mp := range pr.cfg.Paths {
		restoreResult, err := restorer.Restore(mp.DestinationPath(pr.paths.Home()))
		if err != nil {
			return nil, err
		}
		result.Restores = append(result.Restores, restoreResult)
	}

	log.Info().Int("links", len(result.Removals)).Int("restores", len(result.Restores)).
		Msg("uninstall finished")
	return result, nil
}

// previewUninstall classifies every destination without mutating
// anything.
func (pr *Provisioner) previewUninstall(result *types.UninstallResult, latest backup.LatestBackup) (*types.UninstallResult, error) {
	for _, block := range wiring.Blocks() {
		present, err := pr.editor.Has(pr.paths.WiringFile(), block.Name)
		if err != nil {
			return nil, err
		}
		if present {
			result.Blocks = append(result.Blocks, block.Name)
		}
	}

	for _, mp := range pr.cfg.Paths {
		destination := mp.DestinationPath(pr.paths.Home())
		removeResult := types.RemoveResult{Destination: destination}

		owned, err := pr.linker.Owns(destination)
		if err != nil {
			return nil, err
		}
		switch {
		case owned:
			removeResult.State = types.Removed
		default:
			if _, lerr := pr.fs.Lstat(destination); lerr != nil {
				removeResult.State = types.RemoveAbsent
			} else {
				removeResult.State = types.NotManaged
			}
		}
		result.Removals = append(result.Removals, removeResult)

		// restore preview: after an owned link is gone the destination is
		// vacant, so a matching backup entry would move back
		restoreResult := types.RestoreResult{Destination: destination, State: types.RestoreSkipped}
		vacated := owned || removeResult.State == types.RemoveAbsent
		switch {
		case latest.Dir == "":
			restoreResult.Reason = "no backup marker"
		case !vacated:
			restoreResult.Reason = "destination occupied"
		default:
			restoreResult.Reason = "no backup entry"
			for _, key := range backup.Keys(pr.paths.Home(), destination) {
				candidate := filepath.Join(latest.Dir, key)
				if _, err := pr.fs.Lstat(candidate); err == nil {
					restoreResult.State = types.Restored
					restoreResult.From = candidate
					restoreResult.Reason = ""
					break
				}
			}
		}
		result.Restores = append(result.Restores, restoreResult)
	}
	return result, nil
}
