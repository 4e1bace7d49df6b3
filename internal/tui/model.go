// Package tui implements the interactive analysis dashboard.
//
// The dashboard is a bubbletea program: an input form for the search
// parameters, and a single analysis run per trigger that moves through
// fetching into one of the analyzed, empty, or failed states. Runs are
// independent; only the user-editable inputs carry over between them.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"

	"github.com/Joel-GJA/Github-Repo-analysis/internal/gateway"
	"github.com/Joel-GJA/Github-Repo-analysis/internal/usecase"
)

// phase is the presenter state for one analysis run.
type phase int

const (
	phaseIdle phase = iota
	phaseFetching
	phaseEmpty
	phaseAnalyzed
	phaseFailed
)

// Input form fields, in display order.
const (
	fieldQuery = iota
	fieldLimit
	fieldSort
	fieldOrder
	fieldCount
)

// Result limit bounds exposed in the form.
const (
	limitMin  = 5
	limitMax  = 50
	limitStep = 5
)

var (
	sortKeys      = []string{gateway.SortStars, gateway.SortForks, gateway.SortUpdated}
	sortOrders    = []string{gateway.OrderDesc, gateway.OrderAsc}
	spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
)

// Params are the user-supplied search parameters.
type Params struct {
	Query string
	Limit int
	Sort  string
	Order string
}

// DefaultParams returns the initial form values.
func DefaultParams() Params {
	return Params{
		Query: "language:Python",
		Limit: 20,
		Sort:  gateway.SortStars,
		Order: gateway.OrderDesc,
	}
}

type resultMsg struct{ report *usecase.Report }

type emptyMsg struct{}

type errMsg struct{ err error }

type tickMsg time.Time

// Model is the bubbletea model for the dashboard.
type Model struct {
	searcher gateway.Searcher // nil when no credential is configured
	analyzer *usecase.Analyzer
	logger   *log.Logger
	timeout  time.Duration

	params Params
	focus  int
	phase  phase
	frame  int
	width  int

	report *usecase.Report
	err    error
}

// NewModel creates the dashboard model. A nil searcher marks the
// missing-credential state: the form still works, but triggering an
// analysis fails without a network call.
func NewModel(searcher gateway.Searcher, analyzer *usecase.Analyzer, logger *log.Logger, timeout time.Duration, params Params) Model {
	return Model{
		searcher: searcher,
		analyzer: analyzer,
		logger:   logger,
		timeout:  timeout,
		params:   params,
		width:    80,
	}
}

// Run starts the dashboard and blocks until the user quits.
func Run(searcher gateway.Searcher, analyzer *usecase.Analyzer, logger *log.Logger, timeout time.Duration, params Params) error {
	m := NewModel(searcher, analyzer, logger, timeout, params)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		if m.phase == phaseFetching {
			m.frame++
			return m, tick()
		}
	case resultMsg:
		m.report = msg.report
		m.err = nil
		m.phase = phaseAnalyzed
	case emptyMsg:
		m.report = nil
		m.err = nil
		m.phase = phaseEmpty
	case errMsg:
		m.report = nil
		m.err = msg.err
		m.phase = phaseFailed
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		if m.phase == phaseFetching {
			return m, nil
		}
		m.phase = phaseFetching
		m.frame = 0
		return m, tea.Batch(m.fetchCmd(), tick())
	case "up", "shift+tab":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	case "down", "tab":
		m.focus = (m.focus + 1) % fieldCount
	case "left":
		m.adjustField(-1)
	case "right":
		m.adjustField(1)
	case "backspace":
		if m.focus == fieldQuery && m.params.Query != "" {
			runes := []rune(m.params.Query)
			m.params.Query = string(runes[:len(runes)-1])
		}
	default:
		if m.focus == fieldQuery && msg.Type == tea.KeyRunes {
			m.params.Query += string(msg.Runes)
		}
	}
	return m, nil
}

// adjustField steps the focused field: limit moves in slider steps, sort
// and order cycle through their option lists.
func (m *Model) adjustField(dir int) {
	switch m.focus {
	case fieldLimit:
		m.params.Limit += dir * limitStep
		if m.params.Limit < limitMin {
			m.params.Limit = limitMin
		} else if m.params.Limit > limitMax {
			m.params.Limit = limitMax
		}
	case fieldSort:
		m.params.Sort = cycle(sortKeys, m.params.Sort, dir)
	case fieldOrder:
		m.params.Order = cycle(sortOrders, m.params.Order, dir)
	}
}

func cycle(options []string, current string, dir int) string {
	for i, opt := range options {
		if opt == current {
			return options[(i+dir+len(options))%len(options)]
		}
	}
	return options[0]
}

// fetchCmd runs one fetch-and-analyze pass off the update loop. The
// whole pipeline happens here so the resulting message is terminal for
// the run: analyzed, empty, or failed.
func (m Model) fetchCmd() tea.Cmd {
	searcher := m.searcher
	analyzer := m.analyzer
	params := m.params
	timeout := m.timeout

	return func() tea.Msg {
		if searcher == nil {
			return errMsg{gateway.ErrMissingToken}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		records, err := searcher.SearchRepositories(ctx, params.Query, params.Sort, params.Order, params.Limit)
		if err != nil {
			return errMsg{err}
		}
		if len(records) == 0 {
			return emptyMsg{}
		}
		report, err := analyzer.Analyze(records)
		if err != nil {
			return errMsg{err}
		}
		return resultMsg{report}
	}
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("GitHub Repository Popularity & Trends Analyzer"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("Fetch and analyze trending repositories for a search query."))
	b.WriteString("\n\n")

	if m.searcher == nil {
		b.WriteString(styleWarning.Render("! GITHUB_TOKEN not configured — set it in your environment or .env file"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.viewForm())
	b.WriteString("\n")

	switch m.phase {
	case phaseFetching:
		frame := spinnerFrames[m.frame%len(spinnerFrames)]
		b.WriteString(styleNumber.Render(frame) + " " + styleDim.Render("Fetching and analyzing repositories..."))
		b.WriteString("\n")
	case phaseEmpty:
		b.WriteString(styleDim.Render("› No repositories found or an error occurred during fetching."))
		b.WriteString("\n")
	case phaseFailed:
		b.WriteString(styleError.Render("✗ " + failureDetail(m.err)))
		b.WriteString("\n")
	case phaseAnalyzed:
		b.WriteString(m.viewReport())
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ field  ←/→ adjust  type to edit query  ⏎ analyze  esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewForm() string {
	rows := []struct {
		label string
		value string
	}{
		{"Query", m.params.Query},
		{"Limit", strconv.Itoa(m.params.Limit)},
		{"Sort", m.params.Sort},
		{"Order", m.params.Order},
	}

	var b strings.Builder
	for i, row := range rows {
		cursor := "  "
		value := styleValue.Render(row.value)
		label := styleLabel.Render(fmt.Sprintf("%-6s", row.label))
		if i == m.focus {
			cursor = styleSelected.Render("▸ ")
			value = styleSelected.Render(row.value)
			if i == fieldQuery {
				value += styleDim.Render("▏")
			}
		}
		b.WriteString(cursor + label + " " + value + "\n")
	}
	return b.String()
}

// failureDetail maps the error taxonomy to user-facing messages.
func failureDetail(err error) string {
	if errors.Is(err, gateway.ErrMissingToken) {
		return "GITHUB_TOKEN is missing. Analysis cannot proceed."
	}
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Failed to fetch repos. Status code: %d — %s", apiErr.StatusCode, apiErr.Message)
	}
	return fmt.Sprintf("Analysis failed: %v", err)
}

func (m Model) viewReport() string {
	r := m.report
	var b strings.Builder

	b.WriteString(styleSuccess.Render(fmt.Sprintf("✓ Successfully analyzed %d repositories.", len(r.Dataset))))
	b.WriteString("\n\n")

	b.WriteString(styleHeader.Render("Summary Statistics"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("Raw averages (may be skewed)"))
	b.WriteString("\n")
	b.WriteString(metricLine("Avg. Stars", fmt.Sprintf("%.1f", r.Stats.AvgStars)))
	b.WriteString(metricLine("Avg. Forks", fmt.Sprintf("%.1f", r.Stats.AvgForks)))
	b.WriteString(metricLine("Avg. Watchers", fmt.Sprintf("%.1f", r.Stats.AvgWatchers)))
	b.WriteString(styleDim.Render("Log-transformed averages (normalized popularity)"))
	b.WriteString("\n")
	b.WriteString(metricLine("Log(Stars) Mean", fmt.Sprintf("%.2f", r.Stats.AvgLogStars)))
	b.WriteString(metricLine("Log(Forks) Mean", fmt.Sprintf("%.2f", r.Stats.AvgLogForks)))
	b.WriteString(metricLine("Equivalent Stars", strconv.Itoa(r.Stats.EquivalentStars)))
	b.WriteString("\n")

	b.WriteString(styleHeader.Render("Fetched Data"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("Showing the top %d results sorted by %s (%s):", len(r.Dataset), m.params.Sort, m.params.Order)))
	b.WriteString("\n")
	b.WriteString(m.viewTable())
	b.WriteString("\n\n")

	b.WriteString(RenderBarChart(r.Languages, m.width))
	b.WriteString("\n")
	b.WriteString(RenderLineChart(r.Creation, m.width))
	b.WriteString("\n")
	b.WriteString(RenderScatterChart(r.Popularity, m.width))
	return b.String()
}

func metricLine(label, value string) string {
	return styleLabel.Render(fmt.Sprintf("  %-17s", label)) + " " + styleNumber.Render(value) + "\n"
}

func (m Model) viewTable() string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(m.report.Dataset))
	for _, r := range m.report.Dataset {
		rows = append(rows, []string{
			r.Name,
			strconv.Itoa(r.Stars),
			strconv.Itoa(r.Forks),
			strconv.Itoa(r.Watchers),
			r.Language,
			r.CreatedAt.Format("2006-01-02"),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Stars", "Forks", "Watchers", "Language", "Created").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}
