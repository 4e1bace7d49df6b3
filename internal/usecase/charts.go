package usecase

import (
	"sort"

	"github.com/Joel-GJA/Github-Repo-analysis/internal/domain"
)

// maxLanguageGroups caps the language bar chart at the ten most-starred groups.
const maxLanguageGroups = 10

// Chart builders are pure functions over the dataset: no shared state,
// nothing mutated, and repeated calls on the same dataset produce
// equivalent charts.

// BuildLanguageTrends groups rows by language, summing stars and forks per
// group, and keeps the top groups by summed stars. Rows with no named
// language are excluded.
func BuildLanguageTrends(ds domain.Dataset) domain.BarChart {
	type langTotals struct {
		language string
		stars    int
		forks    int
	}

	totals := make(map[string]*langTotals)
	for _, r := range ds {
		if r.Language == domain.OtherLanguage {
			continue
		}
		t, ok := totals[r.Language]
		if !ok {
			t = &langTotals{language: r.Language}
			totals[r.Language] = t
		}
		t.stars += r.Stars
		t.forks += r.Forks
	}

	groups := make([]*langTotals, 0, len(totals))
	for _, t := range totals {
		groups = append(groups, t)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].stars != groups[j].stars {
			return groups[i].stars > groups[j].stars
		}
		return groups[i].language < groups[j].language
	})
	if len(groups) > maxLanguageGroups {
		groups = groups[:maxLanguageGroups]
	}

	chart := domain.BarChart{
		Title:  "Top 10 Languages: Total Stars and Forks",
		Series: []domain.BarSeries{{Name: "Stars"}, {Name: "Forks"}},
	}
	for _, g := range groups {
		chart.Labels = append(chart.Labels, g.language)
		chart.Series[0].Values = append(chart.Series[0].Values, float64(g.stars))
		chart.Series[1].Values = append(chart.Series[1].Values, float64(g.forks))
	}
	return chart
}

// BuildCreationTrend counts rows per calendar year of creation, years
// ascending. Years with no repositories in the dataset are simply absent.
func BuildCreationTrend(ds domain.Dataset) domain.LineChart {
	counts := make(map[int]int)
	for _, r := range ds {
		counts[r.CreatedAt.Year()]++
	}

	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	chart := domain.LineChart{
		Title:  "Repository Creation Trend Over Years",
		XLabel: "Year",
		YLabel: "Number of Repositories",
	}
	for _, year := range years {
		chart.Points = append(chart.Points, domain.LinePoint{Year: year, Count: counts[year]})
	}
	return chart
}

// BuildTimeSeries plots log stars and log forks as two overlaid scatter
// series against the raw creation timestamps.
func BuildTimeSeries(ds domain.Dataset) domain.ScatterChart {
	chart := domain.ScatterChart{
		Title:  "Log-Transformed Popularity (Stars & Forks) Over Time",
		XLabel: "Repository Creation Date",
		YLabel: "log10(1 + Count)",
		Series: []domain.ScatterSeries{{Name: "Log(Stars)"}, {Name: "Log(Forks)"}},
	}
	for _, r := range ds {
		chart.Series[0].Points = append(chart.Series[0].Points, domain.ScatterPoint{At: r.CreatedAt, Value: r.LogStars})
		chart.Series[1].Points = append(chart.Series[1].Points, domain.ScatterPoint{At: r.CreatedAt, Value: r.LogForks})
	}
	return chart
}
