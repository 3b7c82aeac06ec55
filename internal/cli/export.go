package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/upmkit/upmkit/internal/builder"
	"github.com/upmkit/upmkit/internal/deps"
	"github.com/upmkit/upmkit/internal/metadata"
	"github.com/upmkit/upmkit/internal/models"
	"github.com/upmkit/upmkit/internal/pack"
	"github.com/upmkit/upmkit/internal/utils"
)

// Fixed layout inside the target root
const (
	runtimeDir = "Runtime"
	pluginsDir = "Runtime/Plugins"
	docsDir    = "Documentation~"
)

// runExport drives the whole pipeline. It is the only place that
// sequences steps; every failure escaping a step ends the run here.
func runExport(ctx context.Context, config *models.Config) error {
	// Step 1: Clean/reset prior state
	if config.Clean || config.Reset {
		logrus.Infof("Cleaning target tree: %s", config.TargetDir)
		if err := utils.RemoveDir(config.TargetDir); err != nil {
			return &models.ExportError{Type: models.ErrFileOp, Path: config.TargetDir, Err: err}
		}
	}
	if config.Reset {
		logrus.Infof("Cleaning download cache: %s", config.CacheDir)
		if err := utils.RemoveDir(config.CacheDir); err != nil {
			return &models.ExportError{Type: models.ErrFileOp, Path: config.CacheDir, Err: err}
		}
		logrus.Info("Reset complete")
		return nil
	}

	// Step 2: Validate inputs before any build or network activity
	if err := validateInputs(config); err != nil {
		return err
	}

	// Step 3: Prepare directories. The targets are disjoint, so the
	// creations run concurrently.
	var g errgroup.Group
	for _, dir := range []string{
		filepath.Join(config.TargetDir, runtimeDir),
		filepath.Join(config.TargetDir, pluginsDir),
		filepath.Join(config.TargetDir, docsDir),
		config.PackageDir,
		config.CacheDir,
	} {
		dir := dir
		g.Go(func() error { return utils.EnsureDir(dir) })
	}
	if err := g.Wait(); err != nil {
		return &models.ExportError{Type: models.ErrFileOp, Err: err}
	}

	// Step 4: Build, unless cached output is usable
	if config.Rebuild || utils.DirEmpty(config.BuildOutputDir) {
		if _, err := builder.Build(ctx, config.Solution); err != nil {
			return err
		}
	} else {
		logrus.Infof("Build output present, skipping build (use --rebuild to force)")
	}
	if utils.DirEmpty(config.BuildOutputDir) {
		return &models.ExportError{
			Type: models.ErrBuild,
			Path: config.BuildOutputDir,
			Err:  fmt.Errorf("expected build output directory is missing or empty"),
		}
	}

	// Step 5: Copy build output into the payload folder
	if err := copyBuildOutput(config); err != nil {
		return err
	}

	// Step 6: Fetch dependency archives (parallel), then extract them
	// one by one into the plugins folder.
	if err := deps.DownloadAll(ctx, deps.Table, config.CacheDir); err != nil {
		return err
	}
	if err := deps.ExtractAll(deps.Table, config.CacheDir, filepath.Join(config.TargetDir, pluginsDir)); err != nil {
		return err
	}

	// Step 7: Finalize metadata and write the manifest
	manifestPath := filepath.Join(config.TargetDir, pack.ManifestName)
	record, err := metadata.Assemble(config, manifestPath)
	if err != nil {
		return err
	}

	resolver := pack.NewResolver(record, record.Derived(), configLayer(config))

	if err := pack.WriteManifest(record, manifestPath); err != nil {
		return err
	}

	// Step 8: Package assets
	if err := pack.CopyResources(config.ResourcesDir, config.TargetDir, resolver); err != nil {
		return err
	}
	if err := pack.WriteStubs(config.TargetDir, resolver); err != nil {
		return err
	}
	if err := pack.WriteNotices(config.TargetDir, deps.Table); err != nil {
		return err
	}

	// Step 9: Sidecars, strictly after all payload files are final
	if err := pack.GenerateSidecars(config.TargetDir); err != nil {
		return err
	}

	// Step 10: No unresolved placeholder may reach the archive
	if err := pack.VerifyPlaceholders(config.TargetDir); err != nil {
		return err
	}

	// Step 11: Archive
	artifact, err := pack.Archive(ctx, config.TargetDir, config.PackageDir, record)
	if err != nil {
		return err
	}

	logrus.Infof("Export completed successfully: %s", artifact)
	return nil
}

func validateInputs(config *models.Config) error {
	if !utils.FileExists(config.Solution) {
		return &models.ExportError{
			Type: models.ErrInvalidConfig,
			Path: config.Solution,
			Err:  fmt.Errorf("solution file not found"),
		}
	}
	if !utils.DirExists(config.ProjectDir) {
		return &models.ExportError{
			Type: models.ErrInvalidConfig,
			Path: config.ProjectDir,
			Err:  fmt.Errorf("expected project folder not found"),
		}
	}
	return nil
}

// copyBuildOutput collects the compiled assemblies and XML doc files
// from the build output directory into the payload folder.
func copyBuildOutput(config *models.Config) error {
	entries, err := os.ReadDir(config.BuildOutputDir)
	if err != nil {
		return &models.ExportError{Type: models.ErrFileOp, Path: config.BuildOutputDir, Err: err}
	}

	copied := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".dll" && ext != ".xml" {
			continue
		}

		src := filepath.Join(config.BuildOutputDir, entry.Name())
		dst := filepath.Join(config.TargetDir, runtimeDir, entry.Name())
		if err := utils.CopyFileIfChanged(src, dst); err != nil {
			return &models.ExportError{Type: models.ErrFileOp, Path: dst, Err: err}
		}
		copied++
	}

	if copied == 0 {
		return &models.ExportError{
			Type: models.ErrBuild,
			Path: config.BuildOutputDir,
			Err:  fmt.Errorf("no assemblies found in build output"),
		}
	}

	logrus.Infof("Copied %d build output file(s)", copied)
	return nil
}

// configLayer exposes raw configuration values to templates for keys
// the metadata record does not carry.
func configLayer(config *models.Config) map[string]string {
	return map[string]string{
		"solutionName": config.SolutionName,
		"targetDir":    config.TargetDir,
	}
}
