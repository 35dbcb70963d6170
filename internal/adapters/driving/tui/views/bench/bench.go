// Package bench provides the benchmark progress view for the TUI.
package bench

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/legible/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/legible/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/legible/internal/core/domain"
)

const (
	columnWidth = 16

	// chromeHeight is the number of lines used around the table.
	chromeHeight = 8
)

// View shows a progress bar and the rows measured so far.
type View struct {
	styles   *styles.Styles
	config   domain.BenchmarkConfig
	progress progress.Model

	rows      []domain.BenchmarkRow
	fraction  float64
	showTable bool

	width  int
	height int
}

// NewView creates a benchmark view for cfg.
func NewView(s *styles.Styles, cfg domain.BenchmarkConfig) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:    s,
		config:    cfg,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		showTable: true,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles progress and resize messages.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.BenchProgress:
		v.rows = append(v.rows, msg.Progress.Row)
		v.fraction = msg.Progress.Fraction()
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	}
	return v, nil
}

// View renders the view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("legible bench"))
	b.WriteString(" ")
	b.WriteString(v.styles.Muted.Render(v.config.Path))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf(
		"%d trials, %d steps from %d chars (+%d)",
		v.config.Trials, v.config.Steps, v.config.Start, v.config.Increment,
	)))
	b.WriteString("\n\n")
	b.WriteString(v.progress.ViewAs(v.fraction))
	b.WriteString("\n\n")

	if v.showTable {
		b.WriteString(v.renderTable())
	}

	return b.String()
}

// renderTable renders the header and the most recent rows that fit.
func (v *View) renderTable() string {
	cell := lipgloss.NewStyle().Width(columnWidth)

	headers := []string{cell.Render("NumberOfChars")}
	for _, name := range v.config.Strategies {
		headers = append(headers, cell.Render(name))
	}

	lines := []string{v.styles.Header.Render(lipgloss.JoinHorizontal(lipgloss.Top, headers...))}

	rows := v.rows
	if limit := v.height - chromeHeight; v.height > 0 && limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}

	for _, row := range rows {
		chars := fmt.Sprintf("%d", row.Chars)
		if row.Loaded < row.Chars {
			chars = fmt.Sprintf("%d (%d)", row.Chars, row.Loaded)
		}
		cells := []string{cell.Render(chars)}
		for _, avg := range row.Averages {
			cells = append(cells, cell.Render(formatDuration(avg)))
		}
		lines = append(lines, v.styles.Normal.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...)))
	}

	return strings.Join(lines, "\n")
}

// formatDuration rounds d for display.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.String()
	}
}

// ToggleTable shows or hides the row table.
func (v *View) ToggleTable() {
	v.showTable = !v.showTable
}

// ShowTable reports whether the row table is visible.
func (v *View) ShowTable() bool {
	return v.showTable
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	barWidth := width - 4
	if barWidth > 80 {
		barWidth = 80
	}
	if barWidth > 10 {
		v.progress.Width = barWidth
	}
}

// Rows returns the rows received so far.
func (v *View) Rows() []domain.BenchmarkRow {
	return v.rows
}

// Fraction returns the completion shown by the progress bar.
func (v *View) Fraction() float64 {
	return v.fraction
}
