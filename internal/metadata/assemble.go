// Package metadata builds the final manifest record from layered
// sources. Each source contributes only the keys it actually resolves;
// later layers override earlier ones, so precedence stays auditable.
package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/upmkit/upmkit/internal/models"
)

// Record is the finalized manifest metadata. Keys with no resolved
// value are absent, never empty, so template resolution can detect
// unresolved placeholders.
type Record map[string]string

// Source is one layer of the metadata merge
type Source struct {
	Name string
	Load func() (map[string]string, error)
}

// Assemble merges all metadata layers in increasing priority:
// solution-derived defaults, the prior on-disk manifest (skipped when
// a clean run was requested), then explicit command line overrides.
func Assemble(cfg *models.Config, manifestPath string) (Record, error) {
	sources := []Source{
		{Name: "defaults", Load: func() (map[string]string, error) {
			return defaults(cfg), nil
		}},
		{Name: "manifest", Load: func() (map[string]string, error) {
			if cfg.Clean || cfg.Reset {
				// Clean means "do not trust previous state".
				return nil, nil
			}
			return fromManifest(manifestPath)
		}},
		{Name: "overrides", Load: func() (map[string]string, error) {
			return cfg.Overrides(), nil
		}},
	}

	record := make(Record)
	for _, src := range sources {
		layer, err := src.Load()
		if err != nil {
			return nil, &models.ExportError{Type: models.ErrAssemble, Path: src.Name, Err: err}
		}
		for key, value := range layer {
			if value == "" {
				continue
			}
			record[key] = value
		}
		logrus.Debugf("Metadata layer %q contributed %d key(s)", src.Name, len(layer))
	}

	return record, nil
}

// defaults are the lowest-priority layer. The default package
// identifier is derived from the configured company and the solution
// base name, so a run with no prior manifest and no --name still
// produces a valid manifest.
func defaults(cfg *models.Config) map[string]string {
	company := cfg.Company
	if company == "" {
		company = "default"
	}
	return map[string]string{
		"name":        fmt.Sprintf("com.%s.%s", sanitize(company), sanitize(cfg.SolutionName)),
		"version":     "0.1.0",
		"displayName": cfg.SolutionName,
		"company":     company,
		"license":     "MIT",
	}
}

// fromManifest loads string-valued keys from a previously written
// manifest file. A missing manifest contributes nothing.
func fromManifest(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	out := make(map[string]string)
	for key, value := range raw {
		if s, ok := value.(string); ok {
			out[key] = s
		}
	}
	return out, nil
}

// Derived returns the computed template-only keys: a registry-safe
// package name and the scope portion of the reverse-DNS name. These
// are available to templates but never written into the manifest.
func (r Record) Derived() map[string]string {
	out := make(map[string]string)
	name, ok := r["name"]
	if !ok {
		return out
	}
	safe := strings.ToLower(name)
	out["packageName"] = safe
	if i := strings.LastIndex(safe, "."); i > 0 {
		out["scope"] = safe[:i]
	}
	return out
}

// sanitize lowers a name fragment and strips everything that is not a
// letter, digit or hyphen, matching registry naming rules.
func sanitize(s string) string {
	s = strings.ToLower(s)
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
		case r == ' ' || r == '_':
			sb.WriteRune('-')
		}
	}
	return sb.String()
}
