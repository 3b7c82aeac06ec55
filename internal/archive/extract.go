// Package archive extracts selected entries from downloaded dependency
// archives. Registry packages are zip containers; entries are selected
// with a small glob dialect and flattened into the output directory.
package archive

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/upmkit/upmkit/internal/models"
	"github.com/upmkit/upmkit/internal/utils"
)

// Extract copies every file entry of archivePath whose forward-slash
// path matches globPattern into outputDir. The archive's internal
// directory structure is discarded: each match lands at
// outputDir/<base name>. An entry whose target already exists is
// skipped, so extraction is idempotent across runs.
func Extract(archivePath, globPattern, outputDir string) error {
	matcher, err := CompileGlob(globPattern)
	if err != nil {
		return &models.ExportError{Type: models.ErrExtract, Path: archivePath, Err: err}
	}

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return &models.ExportError{Type: models.ErrExtract, Path: archivePath, Err: err}
	}
	defer reader.Close()

	if err := utils.EnsureDir(outputDir); err != nil {
		return &models.ExportError{Type: models.ErrFileOp, Path: outputDir, Err: err}
	}

	extracted := 0
	for _, entry := range reader.File {
		name := strings.ReplaceAll(entry.Name, "\\", "/")
		if entry.FileInfo().IsDir() || !matcher.MatchString(name) {
			continue
		}

		target := filepath.Join(outputDir, path.Base(name))
		if utils.FileExists(target) {
			logrus.Debugf("Already extracted, skipping: %s", path.Base(name))
			continue
		}

		if err := writeEntry(entry, target); err != nil {
			return &models.ExportError{Type: models.ErrExtract, Path: target, Err: err}
		}
		extracted++
	}

	logrus.Debugf("Extracted %d file(s) from %s", extracted, filepath.Base(archivePath))
	return nil
}

func writeEntry(entry *zip.File, target string) error {
	in, err := entry.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(target)
		return err
	}

	return out.Close()
}

// CompileGlob translates a glob pattern into an anchored regular
// expression. `*` matches any run of characters, `?` matches a single
// character; everything else is literal.
func CompileGlob(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return regexp.Compile(sb.String())
}
