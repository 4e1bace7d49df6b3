package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/Joel-GJA/Github-Repo-analysis/internal/config"
	"github.com/Joel-GJA/Github-Repo-analysis/internal/gateway"
	"github.com/Joel-GJA/Github-Repo-analysis/internal/tui"
	"github.com/Joel-GJA/Github-Repo-analysis/internal/usecase"
)

// runPlain performs one fetch-and-analyze pass without the dashboard and
// prints the report to stdout. It walks the same states as the dashboard:
// missing credential, failure, empty result, or a full report.
func runPlain(ctx context.Context, searcher gateway.Searcher, analyzer *usecase.Analyzer, cfg config.Config, params tui.Params) error {
	if searcher == nil {
		return gateway.ErrMissingToken
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.HTTPTimeout)
	defer cancel()

	records, err := searcher.SearchRepositories(ctx, params.Query, params.Sort, params.Order, params.Limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No repositories found for this query.")
		return nil
	}

	report, err := analyzer.Analyze(records)
	if err != nil {
		return err
	}
	return printReport(report, params)
}

func printReport(report *usecase.Report, params tui.Params) error {
	fmt.Printf("Successfully analyzed %d repositories.\n\n", len(report.Dataset))

	fmt.Println("Summary Statistics")
	fmt.Println("  Raw averages (may be skewed):")
	fmt.Printf("    Avg. Stars:       %.1f\n", report.Stats.AvgStars)
	fmt.Printf("    Avg. Forks:       %.1f\n", report.Stats.AvgForks)
	fmt.Printf("    Avg. Watchers:    %.1f\n", report.Stats.AvgWatchers)
	fmt.Println("  Log-transformed averages (normalized popularity):")
	fmt.Printf("    Log(Stars) Mean:  %.2f\n", report.Stats.AvgLogStars)
	fmt.Printf("    Log(Forks) Mean:  %.2f\n", report.Stats.AvgLogForks)
	fmt.Printf("    Equivalent Stars: %d\n\n", report.Stats.EquivalentStars)

	fmt.Printf("Showing the top %d results sorted by %s (%s):\n", len(report.Dataset), params.Sort, params.Order)
	if err := printDatasetTable(report); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(tui.RenderBarChart(report.Languages, reportWidth))
	fmt.Println(tui.RenderLineChart(report.Creation, reportWidth))
	fmt.Println(tui.RenderScatterChart(report.Popularity, reportWidth))
	return nil
}

// reportWidth is the fixed column budget of the plain report.
const reportWidth = 78

func printDatasetTable(report *usecase.Report) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Name", "Stars", "Forks", "Watchers", "Language", "Created"})

	var data [][]string
	for _, r := range report.Dataset {
		data = append(data, []string{
			r.Name,
			strconv.Itoa(r.Stars),
			strconv.Itoa(r.Forks),
			strconv.Itoa(r.Watchers),
			r.Language,
			r.CreatedAt.Format("2006-01-02"),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
