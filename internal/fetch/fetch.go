// Package fetch downloads dependency archives from the package
// registry. Downloads are idempotent: a file that already exists
// locally is never re-fetched, so repeated runs stay cheap.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/upmkit/upmkit/internal/models"
	"github.com/upmkit/upmkit/internal/utils"
)

// Download streams url into targetPath. If targetPath already exists
// the download is skipped.
func Download(ctx context.Context, url, targetPath string) error {
	if utils.FileExists(targetPath) {
		logrus.Debugf("Already downloaded, skipping: %s", filepath.Base(targetPath))
		return nil
	}

	logrus.Infof("Downloading %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &models.ExportError{Type: models.ErrFetch, Path: url, Err: err}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return &models.ExportError{Type: models.ErrFetch, Path: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &models.ExportError{
			Type: models.ErrFetch,
			Path: url,
			Err:  fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	if err := utils.EnsureDir(filepath.Dir(targetPath)); err != nil {
		return &models.ExportError{Type: models.ErrFileOp, Path: targetPath, Err: err}
	}

	out, err := os.Create(targetPath)
	if err != nil {
		return &models.ExportError{Type: models.ErrFileOp, Path: targetPath, Err: err}
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		// Leave no partial file behind; the next run must re-fetch.
		os.Remove(targetPath)
		return &models.ExportError{Type: models.ErrFetch, Path: targetPath, Err: err}
	}

	return out.Close()
}
