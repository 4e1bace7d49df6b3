package usecase

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joel-GJA/Github-Repo-analysis/internal/domain"
)

func testAnalyzer() *Analyzer {
	return NewAnalyzer(log.New(io.Discard))
}

// rawRepo builds a raw search record. An empty language maps to a nil
// field, like the provider's JSON null.
func rawRepo(name string, stars, forks, watchers int, language string, created time.Time) *github.Repository {
	repo := &github.Repository{
		FullName:        github.String(name),
		StargazersCount: github.Int(stars),
		ForksCount:      github.Int(forks),
		WatchersCount:   github.Int(watchers),
		CreatedAt:       &github.Timestamp{Time: created},
	}
	if language != "" {
		repo.Language = github.String(language)
	}
	return repo
}

func TestAnalyzer_Normalize(t *testing.T) {
	a := testAnalyzer()

	t.Run("maps fields and derives log metrics", func(t *testing.T) {
		records := []*github.Repository{
			rawRepo("org/popular", 150, 10, 150, "", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			rawRepo("org/niche", 5, 0, 5, "Go", time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)),
		}

		ds := a.Normalize(records)
		require.Len(t, ds, 2)

		assert.Equal(t, "org/popular", ds[0].Name)
		assert.Equal(t, domain.OtherLanguage, ds[0].Language)
		assert.Equal(t, "Go", ds[1].Language)
		assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), ds[0].CreatedAt)
		assert.InDelta(t, 2.179, ds[0].LogStars, 0.001)
		assert.InDelta(t, 1.041, ds[0].LogForks, 0.001)
		assert.InDelta(t, 0.778, ds[1].LogStars, 0.001)
		assert.Zero(t, ds[1].LogForks)
	})

	t.Run("row order mirrors input order", func(t *testing.T) {
		records := []*github.Repository{
			rawRepo("org/c", 1, 0, 0, "Go", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			rawRepo("org/a", 3, 0, 0, "Go", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			rawRepo("org/b", 2, 0, 0, "Go", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		}

		ds := a.Normalize(records)
		require.Len(t, ds, 3)
		assert.Equal(t, "org/c", ds[0].Name)
		assert.Equal(t, "org/a", ds[1].Name)
		assert.Equal(t, "org/b", ds[2].Name)
	})

	t.Run("absent counts read as zero", func(t *testing.T) {
		ds := a.Normalize([]*github.Repository{{
			FullName:  github.String("org/bare"),
			CreatedAt: &github.Timestamp{Time: time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)},
		}})
		require.Len(t, ds, 1)
		assert.Zero(t, ds[0].Stars)
		assert.Zero(t, ds[0].Forks)
		assert.Zero(t, ds[0].Watchers)
		assert.Zero(t, ds[0].LogStars)
		assert.Equal(t, domain.OtherLanguage, ds[0].Language)
	})
}

func TestLogScale(t *testing.T) {
	// log10(1+0) must be exactly 0; log10(1+99) is log10(100) = 2.
	assert.Zero(t, logScale(0))
	assert.InDelta(t, 2.0, logScale(99), 1e-12)
}

func TestAnalyzer_Summarize(t *testing.T) {
	a := testAnalyzer()

	t.Run("empty dataset is rejected", func(t *testing.T) {
		_, err := a.Summarize(domain.Dataset{})
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("raw and log means for the reference example", func(t *testing.T) {
		ds := a.Normalize([]*github.Repository{
			rawRepo("org/popular", 150, 10, 150, "", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			rawRepo("org/niche", 5, 0, 5, "Go", time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)),
		})

		summary, err := a.Summarize(ds)
		require.NoError(t, err)

		assert.InDelta(t, 77.5, summary.AvgStars, 1e-9)
		assert.InDelta(t, 5.0, summary.AvgForks, 1e-9)
		assert.InDelta(t, 77.5, summary.AvgWatchers, 1e-9)
		// mean(2.1790, 0.7782) = 1.4786, displayed with two decimals
		assert.InDelta(t, 1.48, summary.AvgLogStars, 1e-9)
		assert.Equal(t, 29, summary.EquivalentStars)
	})

	t.Run("raw means match sum over N", func(t *testing.T) {
		ds := domain.Dataset{
			{Stars: 12, Forks: 3, Watchers: 7},
			{Stars: 40, Forks: 11, Watchers: 2},
			{Stars: 9, Forks: 0, Watchers: 30},
		}
		summary, err := a.Summarize(ds)
		require.NoError(t, err)

		assert.InDelta(t, float64(12+40+9)/3, summary.AvgStars, 0.05)
		assert.InDelta(t, float64(3+11+0)/3, summary.AvgForks, 0.05)
		assert.InDelta(t, float64(7+2+30)/3, summary.AvgWatchers, 0.05)
	})

	t.Run("equivalent stars is never negative", func(t *testing.T) {
		ds := a.Normalize([]*github.Repository{
			rawRepo("org/zero", 0, 0, 0, "Go", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)),
		})
		summary, err := a.Summarize(ds)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, summary.EquivalentStars, 0)
	})
}

func TestAnalyzer_Analyze(t *testing.T) {
	a := testAnalyzer()

	t.Run("empty input yields ErrEmptyDataset", func(t *testing.T) {
		_, err := a.Analyze(nil)
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("full pipeline produces dataset, stats and charts", func(t *testing.T) {
		report, err := a.Analyze([]*github.Repository{
			rawRepo("org/a", 100, 20, 100, "Go", time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)),
			rawRepo("org/b", 50, 5, 50, "Rust", time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)),
		})
		require.NoError(t, err)

		assert.Len(t, report.Dataset, 2)
		assert.Equal(t, []string{"Go", "Rust"}, report.Languages.Labels)
		assert.Len(t, report.Creation.Points, 2)
		assert.Len(t, report.Popularity.Series, 2)
		assert.InDelta(t, 75.0, report.Stats.AvgStars, 1e-9)
	})
}
