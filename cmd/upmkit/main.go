package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/upmkit/upmkit/internal/cli"
	"github.com/upmkit/upmkit/internal/models"
)

func main() {
	// Setup logging format
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a run failure to the process exit code: the unresolved
// placeholder count when that is what stopped the run, otherwise 1.
func exitCode(err error) int {
	var placeholders *models.PlaceholderError
	if errors.As(err, &placeholders) && placeholders.Count > 0 {
		return placeholders.Count
	}
	return 1
}
