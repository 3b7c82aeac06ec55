package pack

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"

	"github.com/upmkit/upmkit/internal/metadata"
	"github.com/upmkit/upmkit/internal/models"
	"github.com/upmkit/upmkit/internal/runner"
	"github.com/upmkit/upmkit/internal/utils"
)

// Archive invokes the external packaging tool on the target root and
// verifies the resulting artifact. The artifact name follows the
// packager's convention: <name>-<version>.tgz in packageDir.
func Archive(ctx context.Context, targetRoot, packageDir string, record metadata.Record) (string, error) {
	if err := utils.EnsureDir(packageDir); err != nil {
		return "", &models.ExportError{Type: models.ErrFileOp, Path: packageDir, Err: err}
	}

	logrus.Info("Packing archive...")
	result, err := runner.Run(ctx, "npm", "pack", targetRoot, "--pack-destination", packageDir)
	if err != nil {
		return "", &models.ExportError{Type: models.ErrArchive, Path: targetRoot, Err: err}
	}
	if result.ExitCode != 0 {
		return "", &models.ExportError{
			Type: models.ErrArchive,
			Path: targetRoot,
			Err: fmt.Errorf("packager exited with code %d\nstdout:\n%s\nstderr:\n%s",
				result.ExitCode, result.Stdout, result.Stderr),
		}
	}

	artifact := filepath.Join(packageDir, fmt.Sprintf("%s-%s.tgz", record["name"], record["version"]))
	if err := VerifyArtifact(artifact); err != nil {
		return "", err
	}

	logrus.Infof("Package created: %s", artifact)
	return artifact, nil
}

// VerifyArtifact checks that the produced archive exists and is a
// well-formed gzip'd tar containing the package manifest.
func VerifyArtifact(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &models.ExportError{Type: models.ErrArchive, Path: path, Err: err}
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return &models.ExportError{Type: models.ErrArchive, Path: path, Err: fmt.Errorf("not a gzip archive: %w", err)}
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &models.ExportError{Type: models.ErrArchive, Path: path, Err: fmt.Errorf("corrupt tar stream: %w", err)}
		}
		if filepath.ToSlash(hdr.Name) == "package/"+ManifestName {
			return nil
		}
	}

	return &models.ExportError{
		Type: models.ErrArchive,
		Path: path,
		Err:  fmt.Errorf("archive does not contain package/%s", ManifestName),
	}
}
