package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/upmkit/upmkit/internal/models"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var config models.Config

	rootCmd := &cobra.Command{
		Use:   "upmkit --sln <solution>",
		Short: "Export a compiled library solution as a UPM package",
		Long: `Upmkit builds a .NET library solution, bundles its compiled output
together with a fixed set of registry dependencies, lays out a package
manager compliant directory tree with manifest and sidecar metadata,
and packs the result into a distributable archive.

The pipeline is idempotent: downloads, extractions and file writes all
skip work that is already done, so re-running after a partial failure
is safe and cheap.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case config.Debug:
				logrus.SetLevel(logrus.TraceLevel)
			case config.Verbose:
				logrus.SetLevel(logrus.DebugLevel)
			case config.Quiet:
				logrus.SetLevel(logrus.ErrorLevel)
			default:
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Resolve(); err != nil {
				return err
			}
			logrus.Debugf("Configuration: %+v", config)
			return runExport(cmd.Context(), &config)
		},
	}

	// Input/Output flags
	rootCmd.Flags().StringVar(&config.Solution, "sln", "", "Path to the solution file (required)")
	rootCmd.Flags().StringVar(&config.TargetDir, "target", "", "Target package tree root (default: <solution dir>/Package)")
	rootCmd.Flags().StringVar(&config.PackageDir, "package", "", "Output directory for the final archive (default: <solution dir>/dist)")
	rootCmd.Flags().StringVar(&config.ResourcesDir, "resources", "", "Template resources tree (default: <solution dir>/resources)")

	// Behavior flags
	rootCmd.Flags().BoolVar(&config.Rebuild, "rebuild", false, "Force a build even if build output exists")
	rootCmd.Flags().BoolVar(&config.Clean, "clean", false, "Delete the target tree and ignore prior manifest state")
	rootCmd.Flags().BoolVar(&config.Reset, "reset", false, "Clean all generated state and exit")

	// Verbosity flags
	rootCmd.Flags().BoolVar(&config.Verbose, "verbose", false, "Enable verbose logging")
	rootCmd.Flags().BoolVar(&config.Debug, "debug", false, "Enable debug logging (implies --verbose)")
	rootCmd.Flags().BoolVar(&config.Quiet, "quiet", false, "Only log errors")

	// Manifest override flags
	rootCmd.Flags().StringVar(&config.Name, "name", "", "Package identifier, e.g. com.acme.widget")
	rootCmd.Flags().StringVar(&config.Version, "version", "", "Package version")
	rootCmd.Flags().StringVar(&config.Company, "company", "", "Company name used for defaults and templates")
	rootCmd.Flags().StringVar(&config.DisplayName, "displayName", "", "Human-facing package name")
	rootCmd.Flags().StringVar(&config.Description, "description", "", "Package description")
	rootCmd.Flags().StringVar(&config.Author, "author", "", "Package author")
	rootCmd.Flags().StringVar(&config.License, "license", "", "License identifier")
	rootCmd.Flags().StringVar(&config.ChangelogURL, "changelogUrl", "", "Changelog URL")
	rootCmd.Flags().StringVar(&config.DocumentationURL, "documentationUrl", "", "Documentation URL")

	return rootCmd
}
