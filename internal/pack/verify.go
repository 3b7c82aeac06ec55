package pack

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/upmkit/upmkit/internal/models"
	"github.com/upmkit/upmkit/internal/utils"
)

// VerifyPlaceholders scans every text file under targetRoot for
// unresolved ${key} tokens. Each occurrence is reported individually;
// scanning continues so the user sees the full list in one run. A
// non-zero count blocks the archiving step.
func VerifyPlaceholders(targetRoot string) error {
	count := 0

	err := filepath.Walk(targetRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return &models.ExportError{Type: models.ErrFileOp, Path: path, Err: err}
		}
		if !utils.IsTextData(data) {
			return nil
		}

		for _, match := range placeholderPattern.FindAllStringSubmatch(string(data), -1) {
			logrus.Errorf("Unresolved placeholder ${%s} in %s", match[1], path)
			count++
		}
		return nil
	})
	if err != nil {
		return err
	}

	if count > 0 {
		return &models.PlaceholderError{Count: count}
	}
	return nil
}
