package models

import "path/filepath"

// Dependency describes one binary dependency fetched from the package
// registry. The table of dependencies is static and compiled in; a
// Dependency is never mutated at run time.
type Dependency struct {
	// Core metadata
	Name    string // Display name, e.g. "Newtonsoft.Json"
	Origin  string // Human-facing registry page
	URL     string // Direct download URL for the archive
	License string // SPDX-style license identifier, for the notices file

	// Archive handling
	Filename string // Local archive file name inside the download cache
	Pattern  string // Glob selecting entries to extract, e.g. "lib/netstandard2.0/*"
}

// ArchivePath returns the local path of the downloaded archive inside
// the given cache directory.
func (d Dependency) ArchivePath(cacheDir string) string {
	return filepath.Join(cacheDir, d.Filename)
}
