package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legible/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/legible/internal/core/domain"
)

var (
	compareText     string
	compareFormat   string
	compareMaxChars int
)

var compareCmd = &cobra.Command{
	Use:   "compare [files...]",
	Short: "Check that every strategy agrees",
	Long: `Runs every registered counting strategy over the same input and
reports their counts side by side. Exits with an error when any strategy
disagrees with the others.`,
	Example: `  legible compare README.md
  legible compare --text "Wait... What?"`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareText, "text", "t", "", "compare on this text instead of files")
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "", "output format: text, tsv, json or yaml")
	compareCmd.Flags().IntVar(&compareMaxChars, "max-chars", 0, "read at most this many characters per file")
	rootCmd.AddCommand(compareCmd)
}

// comparison holds every strategy's counts for one input.
type comparison struct {
	Input   string                  `json:"input" yaml:"input"`
	Agree   bool                    `json:"agree" yaml:"agree"`
	Results map[string]domain.Stats `json:"results" yaml:"results"`
}

func runCompare(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	format, err := resolveFormat(compareFormat, domain.OutputText)
	if err != nil {
		return err
	}

	var comparisons []comparison
	if cmd.Flags().Changed("text") {
		if len(args) > 0 {
			return fmt.Errorf("%w: --text cannot be combined with file arguments", domain.ErrInvalidInput)
		}
		c, err := newComparison("text", func() (map[string]domain.Stats, error) {
			return analysisService.Compare(compareText)
		})
		if err != nil {
			return err
		}
		comparisons = append(comparisons, c)
	} else {
		if len(args) == 0 {
			return fmt.Errorf("%w: pass files, - for stdin, or --text", domain.ErrInvalidInput)
		}
		paths, err := filesystem.Expand(args)
		if err != nil {
			return err
		}
		ctx := commandContext(cmd)
		for _, path := range paths {
			c, err := newComparison(path, func() (map[string]domain.Stats, error) {
				return analysisService.CompareFile(ctx, path, compareMaxChars)
			})
			if err != nil {
				return err
			}
			comparisons = append(comparisons, c)
		}
	}

	if err := writeComparisons(cmd.OutOrStdout(), comparisons, format); err != nil {
		return err
	}

	var disagree []string
	for _, c := range comparisons {
		if !c.Agree {
			disagree = append(disagree, c.Input)
		}
	}
	if len(disagree) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrStrategyMismatch, strings.Join(disagree, ", "))
	}
	return nil
}

// newComparison runs fn and keeps its results when the only failure is
// a strategy mismatch.
func newComparison(input string, fn func() (map[string]domain.Stats, error)) (comparison, error) {
	results, err := fn()
	switch {
	case err == nil:
		return comparison{Input: input, Agree: true, Results: results}, nil
	case errors.Is(err, domain.ErrStrategyMismatch) && results != nil:
		return comparison{Input: input, Results: results}, nil
	default:
		return comparison{}, fmt.Errorf("compare %s: %w", input, err)
	}
}

func writeComparisons(w io.Writer, comparisons []comparison, format domain.OutputFormat) error {
	switch format {
	case domain.OutputJSON:
		return writeJSON(w, comparisons)
	case domain.OutputYAML:
		return writeYAML(w, comparisons)
	}

	names := analysisService.Strategies()
	var b strings.Builder

	if format == domain.OutputTSV {
		b.WriteString("Input\tStrategy\tWords\tSentences\tSyllables\tScore\tAgree\n")
		for _, c := range comparisons {
			for _, name := range names {
				s := c.Results[name]
				fmt.Fprintf(&b, "%s\t%s\t%d\t%d\t%d\t%s\t%t\n",
					c.Input, name, s.Words, s.Sentences, s.Syllables, formatScore(s), c.Agree)
			}
		}
		_, err := io.WriteString(w, b.String())
		return err
	}

	r := newTextRenderer(w)
	for i, c := range comparisons {
		if i > 0 {
			b.WriteString("\n")
		}
		verdict := r.render(r.styles.Success, "agree")
		if !c.Agree {
			verdict = r.render(r.styles.Error, "MISMATCH")
		}
		b.WriteString(r.render(r.styles.Title, c.Input))
		b.WriteString(": ")
		b.WriteString(verdict)
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %-10s %6s %10s %10s %8s\n", "Strategy", "Words", "Sentences", "Syllables", "Score")
		for _, name := range names {
			s := c.Results[name]
			fmt.Fprintf(&b, "  %-10s %6d %10d %10d %8s\n", name, s.Words, s.Sentences, s.Syllables, formatScore(s))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
