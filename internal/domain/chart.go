package domain

import "time"

// Chart values describe what to draw, not how to draw it. A presentation
// layer turns them into terminal output; the builders in usecase stay
// testable without any rendering surface.

// BarSeries is one series of a grouped bar chart. Values is parallel to
// the chart's Labels slice.
type BarSeries struct {
	Name   string
	Values []float64
}

// BarChart is a grouped bar chart, one group per label.
type BarChart struct {
	Title  string
	Labels []string
	Series []BarSeries
}

// LinePoint is one marker on a line chart.
type LinePoint struct {
	Year  int
	Count int
}

// LineChart is a line chart with point markers, points in ascending x order.
type LineChart struct {
	Title  string
	XLabel string
	YLabel string
	Points []LinePoint
}

// ScatterPoint is one marker of a scatter series.
type ScatterPoint struct {
	At    time.Time
	Value float64
}

// ScatterSeries is one overlaid series of a scatter chart.
type ScatterSeries struct {
	Name   string
	Points []ScatterPoint
}

// ScatterChart plots series against raw timestamps on the x axis.
type ScatterChart struct {
	Title  string
	XLabel string
	YLabel string
	Series []ScatterSeries
}
