// Package cli wires the cobra command surface of the importer.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/aruiz-labs/nominas-cli/internal/logger"
)

var version = "dev"

var (
	cfgPath     string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "nominas",
	Short: "Import payslip PDFs into Drive and Notion",
	Long: `nominas reads a folder of payslip PDFs, extracts the salary amounts
from each document's text layout, uploads the file to a per-year Google
Drive folder and records a summary row in a Notion database.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"config file path (default ~/.nominas/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}
