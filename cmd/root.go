package cmd

import (
	"fmt"
	"os"

	"catalog-pipeline/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "catalog-pipeline",
	Short: "Catalog Transformation Pipeline",
	Long: `Catalog Pipeline compiles tabletop wargame catalogue documents into
normalized relational records and bulk-loads them into a destination database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format with debug level gives ISO8601 timestamps, which
		// reads better for a CLI tool than the production epoch format.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
