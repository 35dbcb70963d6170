package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/legible/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/legible/internal/core/domain"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// resolveFormat picks the output format: the flag when set, then the
// configured default, then fallback.
func resolveFormat(flag string, fallback domain.OutputFormat) (domain.OutputFormat, error) {
	format := domain.OutputFormat(strings.ToLower(flag))
	if flag == "" {
		format = fallback
		if settingsService != nil {
			// Settings come back even when invalid; a bad format is reported below.
			if settings, _ := settingsService.Get(); settings != nil {
				format = settings.Output.Format
			}
		}
	}
	if !format.IsValid() {
		return "", fmt.Errorf("%w: unknown output format %q", domain.ErrInvalidInput, format)
	}
	return format, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeJSONLine writes v as one compact JSON line.
func writeJSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return enc.Close()
}

// textRenderer applies lipgloss styles only when writing to a terminal.
type textRenderer struct {
	styles *styles.Styles
	color  bool
}

func newTextRenderer(w io.Writer) *textRenderer {
	return &textRenderer{styles: styles.DefaultStyles(), color: isTerminal(w)}
}

func (r *textRenderer) render(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

func (r *textRenderer) score(stats domain.Stats) string {
	text := formatScore(stats)
	return r.render(r.styles.Score(stats.Score, stats.ScoreDefined()), text)
}

func formatScore(stats domain.Stats) string {
	if !stats.ScoreDefined() {
		return "n/a"
	}
	return strconv.FormatFloat(stats.Score, 'f', 2, 64)
}

// writeReports renders analysis reports in format.
func writeReports(w io.Writer, reports []domain.Report, format domain.OutputFormat) error {
	switch format {
	case domain.OutputJSON:
		return writeJSON(w, reports)
	case domain.OutputYAML:
		return writeYAML(w, reports)
	case domain.OutputTSV:
		return writeReportsTSV(w, reports)
	default:
		return writeReportsText(w, reports)
	}
}

func writeReportsText(w io.Writer, reports []domain.Report) error {
	r := newTextRenderer(w)
	var b strings.Builder

	for i := range reports {
		rep := &reports[i]
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.render(r.styles.Title, reportName(rep)))
		b.WriteString(" ")
		b.WriteString(r.render(r.styles.Muted, "("+rep.Strategy+")"))
		b.WriteString("\n")

		fmt.Fprintf(&b, "  %-10s %d\n", "Words", rep.Stats.Words)
		fmt.Fprintf(&b, "  %-10s %d\n", "Sentences", rep.Stats.Sentences)
		fmt.Fprintf(&b, "  %-10s %d\n", "Syllables", rep.Stats.Syllables)
		fmt.Fprintf(&b, "  %-10s %s\n", "Score", r.score(rep.Stats))
		fmt.Fprintf(&b, "  %-10s %d\n", "Chars", rep.Chars)
		fmt.Fprintf(&b, "  %-10s %s\n", "Elapsed", r.render(r.styles.Muted, rep.Elapsed.String()))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeReportsTSV(w io.Writer, reports []domain.Report) error {
	var b strings.Builder
	b.WriteString("Path\tStrategy\tChars\tWords\tSentences\tSyllables\tScore\tElapsedSeconds\n")
	for i := range reports {
		rep := &reports[i]
		fmt.Fprintf(&b, "%s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			reportName(rep), rep.Strategy, rep.Chars,
			rep.Stats.Words, rep.Stats.Sentences, rep.Stats.Syllables,
			formatScore(rep.Stats), seconds(rep.Elapsed))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func reportName(rep *domain.Report) string {
	switch {
	case rep.URI != "":
		return rep.URI
	case rep.Title != "":
		return rep.Title
	default:
		return "text"
	}
}

// writeBenchmark renders a benchmark result. Text output falls back to TSV.
func writeBenchmark(w io.Writer, result *domain.BenchmarkResult, format domain.OutputFormat) error {
	switch format {
	case domain.OutputJSON:
		return writeJSON(w, result)
	case domain.OutputYAML:
		return writeYAML(w, result)
	default:
		return writeBenchmarkTSV(w, result)
	}
}

// writeBenchmarkTSV writes the NumberOfChars table: one column per
// strategy holding the mean seconds per call.
func writeBenchmarkTSV(w io.Writer, result *domain.BenchmarkResult) error {
	var b strings.Builder

	b.WriteString("NumberOfChars")
	for _, name := range result.Config.Strategies {
		b.WriteString("\t")
		b.WriteString(timeColumn(name))
	}
	b.WriteString("\n")

	for _, row := range result.Rows {
		b.WriteString(strconv.Itoa(row.Chars))
		for _, avg := range row.Averages {
			b.WriteString("\t")
			b.WriteString(seconds(avg))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// timeColumn turns a strategy name into its column header: basic -> BasicTime.
func timeColumn(name string) string {
	if name == "" {
		return "Time"
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes) + "Time"
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
