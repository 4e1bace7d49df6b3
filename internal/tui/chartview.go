package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Joel-GJA/Github-Repo-analysis/internal/domain"
)

// Chart values are rendered to plain terminal text here so that both the
// dashboard and the --plain report share one presentation. Width is the
// total column budget; each renderer degrades gracefully below it.

const (
	scatterHeight  = 10
	minPlotWidth   = 20
	glyphStars     = "●"
	glyphForks     = "×"
	glyphOverlap   = "◆"
	glyphGridline  = "·"
	timeAxisFormat = "Jan 2006"
)

// RenderBarChart draws a grouped horizontal bar chart: two bars per label,
// scaled against the largest value of any series.
func RenderBarChart(c domain.BarChart, width int) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(c.Title))
	b.WriteString("\n")

	if len(c.Labels) == 0 {
		b.WriteString(styleDim.Render("  (no named languages in this result)"))
		b.WriteString("\n")
		return b.String()
	}

	labelWidth := 0
	for _, label := range c.Labels {
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}
	maxVal := 0.0
	for _, s := range c.Series {
		for _, v := range s.Values {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	barWidth := width - labelWidth - 14
	if barWidth < minPlotWidth {
		barWidth = minPlotWidth
	}

	seriesStyles := barSeriesStyles(len(c.Series))
	for i, label := range c.Labels {
		for si, s := range c.Series {
			name := ""
			if si == 0 {
				name = label
			}
			b.WriteString(fmt.Sprintf("  %-*s %s %s\n",
				labelWidth, name,
				seriesStyles[si].Render(bar(s.Values[i], maxVal, barWidth)),
				styleDim.Render(fmt.Sprintf("%.0f", s.Values[i])),
			))
		}
	}

	b.WriteString("\n  ")
	for si, s := range c.Series {
		if si > 0 {
			b.WriteString("  ")
		}
		b.WriteString(seriesStyles[si].Render("█") + " " + styleLabel.Render(s.Name))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderLineChart draws one row per point with a scaled rule ending in a
// marker, x ascending top to bottom.
func RenderLineChart(c domain.LineChart, width int) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(c.Title))
	b.WriteString("\n")

	if len(c.Points) == 0 {
		b.WriteString(styleDim.Render("  (no data)"))
		b.WriteString("\n")
		return b.String()
	}

	maxCount := 0
	for _, p := range c.Points {
		if p.Count > maxCount {
			maxCount = p.Count
		}
	}
	ruleWidth := width - 14
	if ruleWidth < minPlotWidth {
		ruleWidth = minPlotWidth
	}

	for _, p := range c.Points {
		n := 0
		if maxCount > 0 {
			n = p.Count * ruleWidth / maxCount
		}
		b.WriteString(fmt.Sprintf("  %d %s %s\n",
			p.Year,
			styleStars.Render(strings.Repeat("─", n)+glyphStars),
			styleValue.Render(fmt.Sprintf("%d", p.Count)),
		))
	}
	b.WriteString("  " + styleDim.Render(c.XLabel+" / "+c.YLabel) + "\n")
	return b.String()
}

// RenderScatterChart plots every series on one character grid, raw
// timestamps on the x axis. Overlapping markers collapse into a distinct
// glyph, the terminal stand-in for translucent overplotting.
func RenderScatterChart(c domain.ScatterChart, width int) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(c.Title))
	b.WriteString("\n")

	points := 0
	for _, s := range c.Series {
		points += len(s.Points)
	}
	if points == 0 {
		b.WriteString(styleDim.Render("  (no data)"))
		b.WriteString("\n")
		return b.String()
	}

	minAt := c.Series[0].Points[0].At
	maxAt := minAt
	maxVal := 0.0
	for _, s := range c.Series {
		for _, p := range s.Points {
			if p.At.Before(minAt) {
				minAt = p.At
			}
			if p.At.After(maxAt) {
				maxAt = p.At
			}
			if p.Value > maxVal {
				maxVal = p.Value
			}
		}
	}

	plotWidth := width - 9
	if plotWidth < minPlotWidth {
		plotWidth = minPlotWidth
	}
	span := maxAt.Sub(minAt)

	// Cell bitmask: bit 0 first series, bit 1 second series.
	grid := make([][]int, scatterHeight)
	for i := range grid {
		grid[i] = make([]int, plotWidth)
	}
	for si, s := range c.Series {
		for _, p := range s.Points {
			col := 0
			if span > 0 {
				col = int(float64(p.At.Sub(minAt)) / float64(span) * float64(plotWidth-1))
			}
			rowIdx := scatterHeight - 1
			if maxVal > 0 {
				rowIdx = scatterHeight - 1 - int(p.Value/maxVal*float64(scatterHeight-1))
			}
			grid[rowIdx][col] |= 1 << si
		}
	}

	for i, gridRow := range grid {
		label := "     "
		switch i {
		case 0:
			label = fmt.Sprintf("%5.1f", maxVal)
		case scatterHeight - 1:
			label = "  0.0"
		}
		b.WriteString(styleLabel.Render(label) + " " + styleDim.Render("│"))
		for j, cell := range gridRow {
			switch cell {
			case 0:
				if j%8 == 0 {
					b.WriteString(styleDim.Render(glyphGridline))
				} else {
					b.WriteString(" ")
				}
			case 1:
				b.WriteString(styleStars.Render(glyphStars))
			case 2:
				b.WriteString(styleForks.Render(glyphForks))
			default:
				b.WriteString(styleBoth.Render(glyphOverlap))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("      " + styleDim.Render("└"+strings.Repeat("─", plotWidth)) + "\n")
	left := minAt.Format(timeAxisFormat)
	right := maxAt.Format(timeAxisFormat)
	gap := plotWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString("       " + styleLabel.Render(left) + strings.Repeat(" ", gap) + styleLabel.Render(right) + "\n")

	b.WriteString("  ")
	glyphs := []string{styleStars.Render(glyphStars), styleForks.Render(glyphForks)}
	for si, s := range c.Series {
		if si > 0 {
			b.WriteString("  ")
		}
		if si < len(glyphs) {
			b.WriteString(glyphs[si] + " ")
		}
		b.WriteString(styleLabel.Render(s.Name))
	}
	b.WriteString("\n")
	return b.String()
}

func bar(value, maxVal float64, width int) string {
	n := 0
	if maxVal > 0 {
		n = int(value / maxVal * float64(width))
	}
	if n < 1 && value > 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// barSeriesStyles assigns the shared series colors, cycling for any
// series beyond the usual stars/forks pair.
func barSeriesStyles(n int) []lipgloss.Style {
	base := []lipgloss.Style{styleStars, styleForks}
	styles := make([]lipgloss.Style, n)
	for i := range styles {
		styles[i] = base[i%len(base)]
	}
	return styles
}
