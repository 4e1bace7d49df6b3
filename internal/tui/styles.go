package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader   = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel    = lipgloss.NewStyle().Foreground(colorGray)
	styleValue    = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber   = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess  = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning  = lipgloss.NewStyle().Foreground(colorYellow)
	styleError    = lipgloss.NewStyle().Foreground(colorRed)
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// Series styles shared by the bar and scatter charts: stars cyan,
	// forks red, matching marker colors in the legends.
	styleStars = lipgloss.NewStyle().Foreground(colorCyan)
	styleForks = lipgloss.NewStyle().Foreground(colorRed)
	styleBoth  = lipgloss.NewStyle().Foreground(colorYellow)
)
