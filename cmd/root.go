// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "repo-analysis",
	Short: "Analyze GitHub repository popularity and trends.",
	Long: `repo-analysis fetches repositories from the GitHub search API for a
query, computes popularity statistics (raw and log-transformed stars, forks
and watchers), and renders the results as metrics, a table, and charts in an
interactive terminal dashboard.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}

// newLogger builds the shared logger. Logs are discarded unless verbose is
// set, in which case debug logging goes to standard error so the dashboard
// and the plain report on stdout stay clean.
func newLogger(verbose bool) *charmlog.Logger {
	if !verbose {
		return charmlog.New(io.Discard)
	}
	return charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           charmlog.DebugLevel,
	})
}
