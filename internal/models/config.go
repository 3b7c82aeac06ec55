package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Config contains the resolved configuration for a package export run
type Config struct {
	// Input/Output
	Solution     string // Path to the .sln file (required)
	TargetDir    string // Root of the generated package tree
	PackageDir   string // Directory receiving the final .tgz artifact
	ResourcesDir string // Template/resources source tree

	// Behavior flags
	Rebuild bool // Force a build even if build output is present
	Clean   bool // Delete the target tree and ignore prior manifest state
	Reset   bool // Clean and exit without building or packaging

	// Verbosity
	Verbose bool
	Debug   bool
	Quiet   bool

	// Manifest overrides, applied last in the metadata merge
	Name             string
	Version          string
	Company          string
	DisplayName      string
	Description      string
	Author           string
	License          string
	ChangelogURL     string
	DocumentationURL string

	// Derived during Resolve
	SolutionDir    string
	SolutionName   string // Solution base name without extension
	ProjectDir     string
	BuildOutputDir string
	CacheDir       string // Download cache for dependency archives
}

// Resolve validates the required inputs and computes absolute and
// derived paths. It is called once, before any pipeline step runs.
func (c *Config) Resolve() error {
	if c.Solution == "" {
		return &ExportError{
			Type: ErrInvalidConfig,
			Err:  fmt.Errorf("--sln is required"),
		}
	}

	abs, err := filepath.Abs(c.Solution)
	if err != nil {
		return &ExportError{Type: ErrInvalidConfig, Path: c.Solution, Err: err}
	}
	c.Solution = abs
	c.SolutionDir = filepath.Dir(abs)
	c.SolutionName = strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))

	if c.TargetDir == "" {
		c.TargetDir = filepath.Join(c.SolutionDir, "Package")
	}
	if c.PackageDir == "" {
		c.PackageDir = filepath.Join(c.SolutionDir, "dist")
	}
	if c.ResourcesDir == "" {
		c.ResourcesDir = filepath.Join(c.SolutionDir, "resources")
	}

	for _, p := range []*string{&c.TargetDir, &c.PackageDir, &c.ResourcesDir} {
		if abs, err := filepath.Abs(*p); err == nil {
			*p = abs
		}
	}

	c.ProjectDir = filepath.Join(c.SolutionDir, c.SolutionName)
	c.BuildOutputDir = filepath.Join(c.ProjectDir, "bin", "Release", "netstandard2.0")
	// The cache lives outside the target tree so --clean does not force
	// re-downloads.
	c.CacheDir = filepath.Join(c.SolutionDir, ".upmkit", "downloads")

	return nil
}

// Overrides returns the manifest keys set explicitly on the command
// line. Unset flags produce no key, so they never shadow lower layers.
func (c *Config) Overrides() map[string]string {
	out := make(map[string]string)
	set := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	set("name", c.Name)
	set("version", c.Version)
	set("company", c.Company)
	set("displayName", c.DisplayName)
	set("description", c.Description)
	set("author", c.Author)
	set("license", c.License)
	set("changelogUrl", c.ChangelogURL)
	set("documentationUrl", c.DocumentationURL)
	return out
}
