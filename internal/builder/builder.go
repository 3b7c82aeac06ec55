// Package builder drives the external compiler toolchain.
package builder

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/upmkit/upmkit/internal/models"
	"github.com/upmkit/upmkit/internal/runner"
)

// Build compiles the solution in Release configuration. A non-zero
// compiler exit is fatal and surfaces the full compiler output so
// diagnostics reach the user verbatim.
func Build(ctx context.Context, solutionPath string) (*runner.Result, error) {
	logrus.Infof("Building %s", solutionPath)

	result, err := runner.Run(ctx, "dotnet", "build", solutionPath, "-c", "Release", "--nologo")
	if err != nil {
		return nil, &models.ExportError{Type: models.ErrBuild, Path: solutionPath, Err: err}
	}

	if result.ExitCode != 0 {
		return nil, &models.ExportError{
			Type: models.ErrBuild,
			Path: solutionPath,
			Err: fmt.Errorf("compiler exited with code %d\nstdout:\n%s\nstderr:\n%s",
				result.ExitCode, result.Stdout, result.Stderr),
		}
	}

	logrus.Info("Build succeeded")
	return result, nil
}
