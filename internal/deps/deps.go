package deps

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/upmkit/upmkit/internal/archive"
	"github.com/upmkit/upmkit/internal/fetch"
	"github.com/upmkit/upmkit/internal/models"
)

// DownloadAll fetches every dependency archive into cacheDir. Downloads
// run in parallel; each targets a distinct file, so no coordination
// beyond the joint wait is needed. The first failure cancels the rest.
func DownloadAll(ctx context.Context, table []models.Dependency, cacheDir string) error {
	logrus.Infof("Fetching %d dependency archive(s)...", len(table))

	g, ctx := errgroup.WithContext(ctx)
	for _, dep := range table {
		dep := dep
		g.Go(func() error {
			return fetch.Download(ctx, dep.URL, dep.ArchivePath(cacheDir))
		})
	}
	return g.Wait()
}

// ExtractAll extracts the selected entries of every downloaded archive
// into outputDir. Extraction is sequential: all archives flatten into
// the same directory and rely on per-file existence checks that must
// not race.
func ExtractAll(table []models.Dependency, cacheDir, outputDir string) error {
	for _, dep := range table {
		logrus.Infof("Extracting %s", dep.Name)
		if err := archive.Extract(dep.ArchivePath(cacheDir), dep.Pattern, outputDir); err != nil {
			return err
		}
	}
	return nil
}
