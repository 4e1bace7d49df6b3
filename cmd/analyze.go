// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Joel-GJA/Github-Repo-analysis/internal/config"
	"github.com/Joel-GJA/Github-Repo-analysis/internal/gateway"
	"github.com/Joel-GJA/Github-Repo-analysis/internal/tui"
	"github.com/Joel-GJA/Github-Repo-analysis/internal/usecase"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Fetch repositories and explore popularity statistics",
	Long: `Fetches repositories matching a search query and analyzes their
popularity: raw and log-transformed averages of stars, forks and watchers,
plus language, creation-trend and popularity-over-time charts.

By default an interactive dashboard opens with the flags as initial form
values. With --plain, one fetch-and-analyze pass runs and the report is
printed to standard output.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := newLogger(verbose)

		params := tui.Params{}
		params.Query, _ = cmd.Flags().GetString("query")
		params.Limit, _ = cmd.Flags().GetInt("limit")
		params.Sort, _ = cmd.Flags().GetString("sort")
		params.Order, _ = cmd.Flags().GetString("order")
		if err := validateParams(params); err != nil {
			return err
		}

		cfg := config.Load()
		if !cfg.HasToken() {
			logger.Warn("GITHUB_TOKEN not found in environment or .env file")
		}

		// Build the gateway only when a credential exists; the dashboard
		// treats a nil searcher as the missing-credential state.
		var searcher gateway.Searcher
		if cfg.HasToken() {
			g, err := gateway.NewGitHubGateway(cfg, logger)
			if err != nil {
				return fmt.Errorf("create GitHub gateway: %w", err)
			}
			searcher = g
		}
		analyzer := usecase.NewAnalyzer(logger)

		plain, _ := cmd.Flags().GetBool("plain")
		if plain {
			return runPlain(cmd.Context(), searcher, analyzer, cfg, params)
		}
		return tui.Run(searcher, analyzer, logger, cfg.HTTPTimeout, params)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	defaults := tui.DefaultParams()
	analyzeCmd.Flags().StringP("query", "q", defaults.Query, "Search query (e.g. language:Python)")
	analyzeCmd.Flags().IntP("limit", "n", defaults.Limit, "Number of repositories to fetch (5-50)")
	analyzeCmd.Flags().StringP("sort", "s", defaults.Sort, "Sort key: stars, forks or updated")
	analyzeCmd.Flags().StringP("order", "o", defaults.Order, "Sort order: desc or asc")
	analyzeCmd.Flags().Bool("plain", false, "Print a one-shot report instead of opening the dashboard")
}

// validateParams rejects bad inputs before any network call. The provider
// answers unknown sort keys with an opaque 422, so checking here gives a
// usable message instead.
func validateParams(p tui.Params) error {
	if p.Query == "" {
		return fmt.Errorf("query must not be empty")
	}
	if p.Limit < 5 || p.Limit > 50 {
		return fmt.Errorf("limit must be between 5 and 50, got %d", p.Limit)
	}
	switch p.Sort {
	case gateway.SortStars, gateway.SortForks, gateway.SortUpdated:
	default:
		return fmt.Errorf("sort must be one of stars, forks, updated; got %q", p.Sort)
	}
	switch p.Order {
	case gateway.OrderDesc, gateway.OrderAsc:
	default:
		return fmt.Errorf("order must be desc or asc, got %q", p.Order)
	}
	return nil
}
