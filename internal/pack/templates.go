package pack

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/upmkit/upmkit/internal/models"
	"github.com/upmkit/upmkit/internal/utils"
)

// CopyResources copies the template/resources tree into the target
// root. Text files are run through placeholder substitution; binary
// files are copied byte-for-byte and never overwrite an existing
// destination. A missing resources tree is not an error.
func CopyResources(resourcesDir, targetDir string, resolver *Resolver) error {
	if !utils.DirExists(resourcesDir) {
		logrus.Debugf("No resources directory at %s, skipping", resourcesDir)
		return nil
	}

	return filepath.Walk(resourcesDir, func(src string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(resourcesDir, src)
		if err != nil {
			return err
		}
		dst := filepath.Join(targetDir, rel)

		if err := copyResource(src, dst, resolver); err != nil {
			return &models.ExportError{Type: models.ErrFileOp, Path: dst, Err: err}
		}
		return nil
	})
}

func copyResource(src, dst string, resolver *Resolver) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	if !utils.IsTextData(data) {
		// Binary resources are written once and left alone afterwards.
		if utils.FileExists(dst) {
			return nil
		}
		if err := utils.EnsureDir(filepath.Dir(dst)); err != nil {
			return err
		}
		return os.WriteFile(dst, data, 0644)
	}

	// When a text file already exists at the destination, substitution
	// re-runs on the destination copy so values updated between runs
	// still take effect.
	if existing, err := os.ReadFile(dst); err == nil && utils.IsTextData(existing) {
		data = existing
	}

	return utils.WriteTextIfChanged(dst, resolver.Substitute(string(data)))
}
