package pack

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/upmkit/upmkit/internal/metadata"
	"github.com/upmkit/upmkit/internal/models"
	"github.com/upmkit/upmkit/internal/utils"
)

// ManifestName is the package descriptor file at the target root
const ManifestName = "package.json"

// WriteManifest serializes the metadata record as pretty-printed JSON.
// Map keys marshal in sorted order, so the output is deterministic
// across runs.
func WriteManifest(record metadata.Record, path string) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return &models.ExportError{Type: models.ErrAssemble, Path: path, Err: err}
	}

	if err := utils.WriteTextIfChanged(path, string(data)+"\n"); err != nil {
		return &models.ExportError{Type: models.ErrFileOp, Path: path, Err: err}
	}

	logrus.Infof("Manifest written: %s", path)
	return nil
}
