package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/upmkit/upmkit/internal/models"
	"github.com/upmkit/upmkit/internal/utils"
)

// SidecarExt is the suffix of per-entry sidecar metadata files
const SidecarExt = ".meta"

// SidecarContent renders the fixed two-line sidecar record for an
// entry's forward-slash relative path. The guid is a stable digest of
// that path, so an unchanged tree always produces identical sidecars.
func SidecarContent(relPath string) string {
	guid := utils.HashBytes([]byte(relPath))
	return fmt.Sprintf("fileFormatVersion: 2\nguid: %s\n", guid)
}

// GenerateSidecars ensures every file and directory under targetRoot
// has exactly one sidecar, then removes sidecars whose payload entry is
// gone. Sidecars are written last in the pipeline, once all payload
// files are final.
func GenerateSidecars(targetRoot string) error {
	logrus.Info("Generating sidecar files...")

	if err := writeSidecars(targetRoot); err != nil {
		return err
	}
	return removeOrphans(targetRoot)
}

func writeSidecars(targetRoot string) error {
	return filepath.Walk(targetRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == targetRoot || strings.HasSuffix(path, SidecarExt) {
			return nil
		}

		rel, err := filepath.Rel(targetRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if err := utils.WriteTextIfChanged(path+SidecarExt, SidecarContent(rel)); err != nil {
			return &models.ExportError{Type: models.ErrFileOp, Path: path + SidecarExt, Err: err}
		}
		return nil
	})
}

func removeOrphans(targetRoot string) error {
	return filepath.Walk(targetRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, SidecarExt) {
			return nil
		}

		payload := strings.TrimSuffix(path, SidecarExt)
		if kind, err := utils.Probe(payload); err == nil && kind != utils.PathMissing {
			return nil
		}

		logrus.Debugf("Removing orphaned sidecar: %s", path)
		if err := utils.RemoveFile(path); err != nil {
			return &models.ExportError{Type: models.ErrFileOp, Path: path, Err: err}
		}
		return nil
	})
}
