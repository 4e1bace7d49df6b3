// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// OtherLanguage is the label assigned to repositories whose primary
// language is absent in the provider record.
const OtherLanguage = "Other/None"

// RepoRow is one normalized repository record. It is created once from a
// raw search result and never mutated afterwards.
type RepoRow struct {
	Name      string    `json:"name"`
	Stars     int       `json:"stars"`
	Forks     int       `json:"forks"`
	Watchers  int       `json:"watchers"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	LogStars  float64   `json:"log_stars"`
	LogForks  float64   `json:"log_forks"`
}

// Dataset is an ordered sequence of rows, in API response order.
type Dataset []RepoRow

// SummaryStats is the scalar summary of one dataset. Raw averages are
// rounded to one decimal, log-space averages to two. The log-space means
// average the transformed per-row values and are deliberately not equal to
// log(mean(raw)): they form a normalized view that dampens outlier repos.
type SummaryStats struct {
	AvgStars    float64 `json:"avg_stars"`
	AvgForks    float64 `json:"avg_forks"`
	AvgWatchers float64 `json:"avg_watchers"`
	AvgLogStars float64 `json:"avg_log_stars"`
	AvgLogForks float64 `json:"avg_log_forks"`

	// EquivalentStars is 10^AvgLogStars - 1 truncated to an integer,
	// a "typical" popularity figure robust to outliers.
	EquivalentStars int `json:"equivalent_stars"`
}
