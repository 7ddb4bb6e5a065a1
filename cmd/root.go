// Package cmd holds the action-notes command line.
package cmd

import (
	"action-notes/config"
	"action-notes/config/setup"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "action-notes",
	Short: "Notes and action items with language model extraction",
	Long: `action-notes stores notes and action items in SQLite and serves them over HTTP.
Action items can be pulled out of free text by a local Ollama model or Gemini.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if verbose {
			config.AppConfig.LogLevel = "debug"
		}

		logger = setup.SetupLogger(config.AppConfig)
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
