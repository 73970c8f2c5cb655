package provision

import (
	"os"
	"path/filepath"

	"github.com/hyprkit/hyprkit/pkg/backup"
	"github.com/hyprkit/hyprkit/pkg/errors"
	"github.com/hyprkit/hyprkit/pkg/types"
	"github.com/hyprkit/hyprkit/pkg/wiring"
)

// Install links every managed path into the home directory, upserts the
// wiring blocks, and publishes the backup registry when anything was
// displaced. An empty run leaves the previous marker in place, so the
// backups of the first run stay restorable across re-runs.
func (pr *Provisioner) Install(opts Options) (*types.InstallResult, error) {
	result := &types.InstallResult{}

	if opts.DryRun {
		return pr.previewInstall(result)
	}

	reg, err := backup.NewRegistry(pr.fs, pr.paths.BackupRoot(), pr.paths.Home())
	if err != nil {
		return nil, err
	}

	for _, mp := range pr.cfg.Paths {
		linkResult, err := pr.linker.Install(mp, reg)
		if err != nil {
			// a broken checkout or a failed displacement move aborts the
			// run before any further destination is touched
			return nil, err
		}
		result.Links = append(result.Links, linkResult)
	}

	wiringFile := pr.paths.WiringFile()
	for _, block := range wiring.Blocks() {
		if pr.cfg.BlockDisabled(block.Name) {
			log.Debug().Str("block", block.Name).Msg("wiring block disabled by config")
			continue
		}
		if err := pr.editor.Upsert(wiringFile, block.Name, block.Body); err != nil {
			return nil, err
		}
		result.Blocks = append(result.Blocks, block.Name)
	}

	if reg.Count() > 0 {
		if err := reg.Publish(pr.paths.MarkerPath()); err != nil {
			return nil, err
		}
		result.BackupRoot = reg.Dir()
	}

	if !opts.SkipExternal {
		pr.runCollaborators(result)
	}

	log.Info().Int("links", len(result.Links)).Int("blocks", len(result.Blocks)).
		Str("backup", result.BackupRoot).Msg("install finished")
	return result, nil
}

// runCollaborators executes the best-effort external features. Failures
// degrade to warnings, never to a failed run.
func (pr *Provisioner) runCollaborators(result *types.InstallResult) {
	steps := []struct {
		name string
		run  func() error
	}{
		{"package install", func() error { return pr.collab.InstallPackages(DefaultPackages) }},
		{"wallpaper assets", func() error {
			dir := filepath.Join(pr.paths.RepoRoot(), "assets", "wallpapers")
			return pr.collab.FetchWallpapers(DefaultWallpaperRepo, dir)
		}},
		{"wallpaper daemon", pr.collab.RestartWallpaperDaemon},
		{"compositor reload", pr.collab.ReloadCompositor},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Warn().Err(err).Str("feature", step.name).Msg("collaborator feature degraded")
			result.Warnings = append(result.Warnings, step.name+": "+err.Error())
		}
	}
}

// previewInstall reports what a real run would do without mutating
// anything.
func (pr *Provisioner) previewInstall(result *types.InstallResult) (*types.InstallResult, error) {
	for _, mp := range pr.cfg.Paths {
		linkResult, err := pr.previewLink(mp)
		if err != nil {
			return nil, err
		}
		result.Links = append(result.Links, linkResult)
	}
	for _, block := range wiring.Blocks() {
		if !pr.cfg.BlockDisabled(block.Name) {
			result.Blocks = append(result.Blocks, block.Name)
		}
	}
	return result, nil
}

func (pr *Provisioner) previewLink(mp types.ManagedPath) (types.LinkResult, error) {
	result := types.LinkResult{Path: mp}
	source := mp.SourcePath(pr.paths.RepoRoot())
	destination := mp.DestinationPath(pr.paths.Home())

	if _, err := pr.fs.Lstat(source); err != nil {
		if os.IsNotExist(err) {
			if mp.Optional {
				result.State = types.LinkSkipped
				return result, nil
			}
			return result, errors.Newf(errors.ErrConfigMissing,
				"required source %s does not exist, repository checkout looks broken", source)
		}
		return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", source)
	}

	if target, err := pr.fs.Readlink(destination); err == nil && target == source {
		result.State = types.LinkSatisfied
		return result, nil
	}
	if _, err := pr.fs.Lstat(destination); err == nil {
		result.State = types.LinkReplaced
		result.Backup = backup.StableKey(pr.paths.Home(), destination)
		return result, nil
	}
	result.State = types.LinkCreated
	return result, nil
}
