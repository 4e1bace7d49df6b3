package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joel-GJA/Github-Repo-analysis/internal/domain"
)

func row(name string, stars, forks int, language string, created time.Time) domain.RepoRow {
	return domain.RepoRow{
		Name:      name,
		Stars:     stars,
		Forks:     forks,
		Language:  language,
		CreatedAt: created,
		LogStars:  logScale(stars),
		LogForks:  logScale(forks),
	}
}

func TestBuildLanguageTrends(t *testing.T) {
	jan2020 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("groups by language with summed counts, sorted by stars", func(t *testing.T) {
		ds := domain.Dataset{
			row("org/a", 10, 1, "Go", jan2020),
			row("org/b", 5, 2, "Python", jan2020),
			row("org/c", 20, 3, "Go", jan2020),
			row("org/d", 7, 0, domain.OtherLanguage, jan2020),
		}

		chart := BuildLanguageTrends(ds)

		assert.Equal(t, []string{"Go", "Python"}, chart.Labels)
		require.Len(t, chart.Series, 2)
		assert.Equal(t, "Stars", chart.Series[0].Name)
		assert.Equal(t, []float64{30, 5}, chart.Series[0].Values)
		assert.Equal(t, "Forks", chart.Series[1].Name)
		assert.Equal(t, []float64{4, 2}, chart.Series[1].Values)
	})

	t.Run("never includes the unnamed-language group", func(t *testing.T) {
		ds := domain.Dataset{
			row("org/a", 100, 10, domain.OtherLanguage, jan2020),
		}
		chart := BuildLanguageTrends(ds)
		assert.Empty(t, chart.Labels)
		assert.NotContains(t, chart.Labels, domain.OtherLanguage)
	})

	t.Run("caps the chart at ten groups", func(t *testing.T) {
		var ds domain.Dataset
		for i := 0; i < 14; i++ {
			ds = append(ds, row(fmt.Sprintf("org/r%d", i), 100-i, i, fmt.Sprintf("Lang%02d", i), jan2020))
		}

		chart := BuildLanguageTrends(ds)

		require.Len(t, chart.Labels, 10)
		// Top group has the highest summed stars, and values descend.
		assert.Equal(t, "Lang00", chart.Labels[0])
		for i := 1; i < len(chart.Series[0].Values); i++ {
			assert.LessOrEqual(t, chart.Series[0].Values[i], chart.Series[0].Values[i-1])
		}
	})

	t.Run("fewer than ten languages all appear", func(t *testing.T) {
		ds := domain.Dataset{
			row("org/a", 1, 0, "Go", jan2020),
			row("org/b", 2, 0, "Rust", jan2020),
			row("org/c", 3, 0, "Zig", jan2020),
		}
		chart := BuildLanguageTrends(ds)
		assert.Equal(t, []string{"Zig", "Rust", "Go"}, chart.Labels)
	})
}

func TestBuildCreationTrend(t *testing.T) {
	t.Run("groups strictly by calendar year, ascending", func(t *testing.T) {
		ds := domain.Dataset{
			row("org/a", 0, 0, "Go", time.Date(2021, 12, 31, 23, 0, 0, 0, time.UTC)),
			row("org/b", 0, 0, "Go", time.Date(2022, 1, 1, 1, 0, 0, 0, time.UTC)),
			row("org/c", 0, 0, "Go", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)),
		}

		chart := BuildCreationTrend(ds)

		// Two rows a few hours apart across new year land in different points.
		assert.Equal(t, []domain.LinePoint{{Year: 2021, Count: 2}, {Year: 2022, Count: 1}}, chart.Points)
	})

	t.Run("years without repositories are absent", func(t *testing.T) {
		ds := domain.Dataset{
			row("org/a", 0, 0, "Go", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)),
			row("org/b", 0, 0, "Go", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)),
		}
		chart := BuildCreationTrend(ds)
		assert.Equal(t, []domain.LinePoint{{Year: 2018, Count: 1}, {Year: 2022, Count: 1}}, chart.Points)
	})
}

func TestBuildTimeSeries(t *testing.T) {
	ds := domain.Dataset{
		row("org/a", 99, 9, "Go", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		row("org/b", 0, 0, "Go", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	chart := BuildTimeSeries(ds)

	require.Len(t, chart.Series, 2)
	assert.Equal(t, "Log(Stars)", chart.Series[0].Name)
	assert.Equal(t, "Log(Forks)", chart.Series[1].Name)
	require.Len(t, chart.Series[0].Points, 2)
	require.Len(t, chart.Series[1].Points, 2)
	assert.Equal(t, ds[0].CreatedAt, chart.Series[0].Points[0].At)
	assert.InDelta(t, ds[0].LogStars, chart.Series[0].Points[0].Value, 1e-12)
	assert.InDelta(t, ds[1].LogForks, chart.Series[1].Points[1].Value, 1e-12)
}

func TestChartBuildersAreIdempotent(t *testing.T) {
	ds := domain.Dataset{
		row("org/a", 10, 1, "Go", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		row("org/b", 5, 2, "Python", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	before := make(domain.Dataset, len(ds))
	copy(before, ds)

	assert.Equal(t, BuildLanguageTrends(ds), BuildLanguageTrends(ds))
	assert.Equal(t, BuildCreationTrend(ds), BuildCreationTrend(ds))
	assert.Equal(t, BuildTimeSeries(ds), BuildTimeSeries(ds))
	assert.Equal(t, before, ds)
}
