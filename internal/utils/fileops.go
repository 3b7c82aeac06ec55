package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// PathKind classifies what a path points at
type PathKind int

const (
	PathMissing PathKind = iota
	PathFile
	PathDir
)

// Probe reports whether a path exists and what it is. It never returns
// an error for a path that simply does not exist.
func Probe(path string) (PathKind, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return PathMissing, nil
		}
		return PathMissing, err
	}
	if info.IsDir() {
		return PathDir, nil
	}
	return PathFile, nil
}

// FileExists reports whether path exists and is a regular file
func FileExists(path string) bool {
	kind, err := Probe(path)
	return err == nil && kind == PathFile
}

// DirExists reports whether path exists and is a directory
func DirExists(path string) bool {
	kind, err := Probe(path)
	return err == nil && kind == PathDir
}

// DirEmpty reports whether a directory is missing or contains no entries
func DirEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil {
		return true
	}
	return len(entries) == 0
}

// EnsureDir ensures a directory exists, creating it if necessary
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// RemoveFile deletes a file if it exists. Deleting a missing path is a
// no-op; deleting a directory through this function is an error.
func RemoveFile(path string) error {
	kind, err := Probe(path)
	if err != nil {
		return err
	}
	switch kind {
	case PathMissing:
		return nil
	case PathDir:
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return os.Remove(path)
}

// RemoveDir deletes a directory tree if it exists. Deleting a missing
// path is a no-op; deleting a file through this function is an error.
func RemoveDir(path string) error {
	kind, err := Probe(path)
	if err != nil {
		return err
	}
	switch kind {
	case PathMissing:
		return nil
	case PathFile:
		return fmt.Errorf("%s is a file, not a directory", path)
	}
	return os.RemoveAll(path)
}

// CopyFile copies src to dst unconditionally, creating parent
// directories as needed.
func CopyFile(src, dst string) error {
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}

	return dstFile.Sync()
}

// CopyFileIfChanged copies src to dst unless the destination already
// holds byte-identical content. A skipped copy leaves the destination
// timestamp untouched, which keeps repeated runs stable.
func CopyFileIfChanged(src, dst string) error {
	same, err := filesEqual(src, dst)
	if err != nil {
		return err
	}
	if same {
		logrus.Debugf("Unchanged, skipping copy: %s", dst)
		return nil
	}
	logrus.Debugf("Copying %s -> %s", src, dst)
	return CopyFile(src, dst)
}

// WriteTextIfChanged writes content to path only when it differs from
// what is already on disk. Writing identical content is a silent no-op.
func WriteTextIfChanged(path, content string) error {
	if existing, err := os.ReadFile(path); err == nil && string(existing) == content {
		return nil
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	logrus.Debugf("Writing %s", path)
	return os.WriteFile(path, []byte(content), 0644)
}

// filesEqual reports whether dst exists and carries the same content as
// src. Sizes are compared first, checksums only when sizes match.
func filesEqual(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, fmt.Errorf("cannot stat source: %w", err)
	}

	dstInfo, err := os.Stat(dst)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("cannot stat destination: %w", err)
	}

	if srcInfo.Size() != dstInfo.Size() {
		return false, nil
	}

	srcSum, err := HashFile(src)
	if err != nil {
		return false, err
	}
	dstSum, err := HashFile(dst)
	if err != nil {
		return false, err
	}
	return srcSum == dstSum, nil
}
