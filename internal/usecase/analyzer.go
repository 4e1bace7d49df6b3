// Package usecase contains the business logic of the application.
package usecase

import (
	"errors"
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v62/github"
	"github.com/montanaflynn/stats"

	"github.com/Joel-GJA/Github-Repo-analysis/internal/domain"
)

// ErrEmptyDataset is returned by Summarize when there are no rows to
// average. Callers must branch on zero results before summarizing.
var ErrEmptyDataset = errors.New("dataset is empty")

// Analyzer turns raw search results into a normalized dataset with
// summary statistics and chart values.
type Analyzer struct {
	logger *log.Logger
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer(logger *log.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Report is the complete result of one analysis run.
type Report struct {
	Dataset    domain.Dataset
	Stats      domain.SummaryStats
	Languages  domain.BarChart
	Creation   domain.LineChart
	Popularity domain.ScatterChart
}

// Analyze runs the full pipeline over a non-empty result set: normalize,
// summarize, build charts. Empty input yields ErrEmptyDataset; presenters
// handle that case before calling.
func (a *Analyzer) Analyze(records []*github.Repository) (*Report, error) {
	ds := a.Normalize(records)
	summary, err := a.Summarize(ds)
	if err != nil {
		return nil, err
	}
	return &Report{
		Dataset:    ds,
		Stats:      summary,
		Languages:  BuildLanguageTrends(ds),
		Creation:   BuildCreationTrend(ds),
		Popularity: BuildTimeSeries(ds),
	}, nil
}

// Normalize converts raw repository records into a Dataset. Row order
// mirrors input order; nothing is sorted or filtered here. A record with
// no primary language is labeled domain.OtherLanguage, and absent counts
// read as zero.
func (a *Analyzer) Normalize(records []*github.Repository) domain.Dataset {
	rows := make(domain.Dataset, 0, len(records))
	for _, repo := range records {
		stars := repo.GetStargazersCount()
		forks := repo.GetForksCount()
		language := repo.GetLanguage()
		if language == "" {
			language = domain.OtherLanguage
		}
		rows = append(rows, domain.RepoRow{
			Name:      repo.GetFullName(),
			Stars:     stars,
			Forks:     forks,
			Watchers:  repo.GetWatchersCount(),
			Language:  language,
			CreatedAt: repo.GetCreatedAt().Time,
			LogStars:  logScale(stars),
			LogForks:  logScale(forks),
		})
	}
	a.logger.Debug("normalized records", "rows", len(rows))
	return rows
}

// Summarize reduces the dataset to scalar summary metrics. Raw means are
// arithmetic means of the untransformed counts; log means average the
// per-row log values, which is a distinct, outlier-damped view rather
// than log(mean(raw)).
func (a *Analyzer) Summarize(ds domain.Dataset) (domain.SummaryStats, error) {
	if len(ds) == 0 {
		return domain.SummaryStats{}, ErrEmptyDataset
	}

	summary := domain.SummaryStats{
		AvgStars:    roundTo(mean(ds, func(r domain.RepoRow) float64 { return float64(r.Stars) }), 1),
		AvgForks:    roundTo(mean(ds, func(r domain.RepoRow) float64 { return float64(r.Forks) }), 1),
		AvgWatchers: roundTo(mean(ds, func(r domain.RepoRow) float64 { return float64(r.Watchers) }), 1),
		AvgLogStars: roundTo(mean(ds, func(r domain.RepoRow) float64 { return r.LogStars }), 2),
		AvgLogForks: roundTo(mean(ds, func(r domain.RepoRow) float64 { return r.LogForks }), 2),
	}
	summary.EquivalentStars = int(math.Pow(10, summary.AvgLogStars) - 1)

	a.logger.Debug("summarized dataset",
		"rows", len(ds),
		"avg_stars", summary.AvgStars,
		"avg_log_stars", summary.AvgLogStars,
	)
	return summary, nil
}

// logScale compresses the long right tail of popularity counts.
// A zero count maps to exactly 0.
func logScale(count int) float64 {
	return math.Log10(1 + float64(count))
}

// mean is the arithmetic mean of one dataset column. Callers guarantee a
// non-empty dataset, so stats.Mean cannot fail.
func mean(ds domain.Dataset, column func(domain.RepoRow) float64) float64 {
	values := make([]float64, len(ds))
	for i, r := range ds {
		values[i] = column(r)
	}
	m, _ := stats.Mean(values)
	return m
}

// roundTo rounds for display, leaving non-finite values untouched.
func roundTo(v float64, places int) float64 {
	r, err := stats.Round(v, places)
	if err != nil {
		return v
	}
	return r
}
