package pack

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/upmkit/upmkit/internal/models"
	"github.com/upmkit/upmkit/internal/utils"
)

// Standard file names inside the target root
const (
	LicenseName   = "LICENSE.md"
	ChangelogName = "CHANGELOG.md"
	NoticesName   = "Third Party Notices.md"
)

const licenseStub = `# License

Copyright (c) ${company}

All rights reserved. Replace this stub with the actual license text.
`

const changelogStub = `# Changelog

## [${version}]

- Initial release.
`

// WriteStubs creates placeholder license and changelog files. A file
// that already exists is never touched; user-authored content wins.
func WriteStubs(targetDir string, resolver *Resolver) error {
	stubs := map[string]string{
		LicenseName:   licenseStub,
		ChangelogName: changelogStub,
	}

	for name, stub := range stubs {
		path := filepath.Join(targetDir, name)
		if utils.FileExists(path) {
			logrus.Debugf("Keeping existing %s", name)
			continue
		}
		if err := utils.WriteTextIfChanged(path, resolver.Substitute(stub)); err != nil {
			return &models.ExportError{Type: models.ErrFileOp, Path: path, Err: err}
		}
		logrus.Infof("Wrote stub %s", name)
	}
	return nil
}

// WriteNotices regenerates the third-party notices file from the
// dependency table. Unlike the stubs it is generated output and is
// rewritten whenever the table changes.
func WriteNotices(targetDir string, table []models.Dependency) error {
	var sb strings.Builder
	sb.WriteString("# Third Party Notices\n\n")
	sb.WriteString("This package bundles the following third-party components.\n")

	for _, dep := range table {
		fmt.Fprintf(&sb, "\n## %s\n\n", dep.Name)
		fmt.Fprintf(&sb, "- Source: %s\n", dep.Origin)
		fmt.Fprintf(&sb, "- License: %s\n", dep.License)
	}

	path := filepath.Join(targetDir, NoticesName)
	if err := utils.WriteTextIfChanged(path, sb.String()); err != nil {
		return &models.ExportError{Type: models.ErrFileOp, Path: path, Err: err}
	}
	return nil
}
