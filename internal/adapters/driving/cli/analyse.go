package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legible/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driving"
)

var (
	analyseStrategy string
	analyseText     string
	analyseFormat   string
	analyseMaxChars int
	analyseWorkers  int
)

var analyseCmd = &cobra.Command{
	Use:     "analyse [files...]",
	Aliases: []string{"analyze"},
	Short:   "Compute readability statistics",
	Long: `Counts words, sentences and syllables and computes the Flesch
Reading Ease score for each input.

Inputs are file paths, glob patterns (doublestar syntax, e.g. "docs/**/*.md")
or "-" for standard input. Markdown files are reduced to their prose before
counting. Use --text to analyse a literal string instead.`,
	Example: `  legible analyse README.md
  legible analyse "docs/**/*.md" --format json
  echo "Short text." | legible analyse -
  legible analyse --text "This is a test." --strategy basic`,
	RunE: runAnalyse,
}

func init() {
	analyseCmd.Flags().StringVarP(&analyseStrategy, "strategy", "s", "", "counting strategy (default from settings)")
	analyseCmd.Flags().StringVarP(&analyseText, "text", "t", "", "analyse this text instead of files")
	analyseCmd.Flags().StringVarP(&analyseFormat, "format", "f", "", "output format: text, tsv, json or yaml")
	analyseCmd.Flags().IntVar(&analyseMaxChars, "max-chars", 0, "read at most this many characters per file")
	analyseCmd.Flags().IntVarP(&analyseWorkers, "workers", "w", 0, "files analysed concurrently")
	rootCmd.AddCommand(analyseCmd)
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	format, err := resolveFormat(analyseFormat, domain.OutputText)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	if cmd.Flags().Changed("text") {
		if len(args) > 0 {
			return fmt.Errorf("%w: --text cannot be combined with file arguments", domain.ErrInvalidInput)
		}
		doc := &domain.Document{Content: analyseText}
		report, err := analysisService.AnalyseDocument(ctx, doc, analyseStrategy)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		return writeReports(cmd.OutOrStdout(), []domain.Report{*report}, format)
	}

	if len(args) == 0 {
		return fmt.Errorf("%w: pass files, - for stdin, or --text", domain.ErrInvalidInput)
	}

	paths, err := filesystem.Expand(args)
	if err != nil {
		return err
	}

	reports, err := analysisService.AnalyseFiles(ctx, paths, driving.AnalyseOptions{
		Strategy: analyseStrategy,
		MaxChars: analyseMaxChars,
		Workers:  analyseWorkers,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return writeReports(cmd.OutOrStdout(), reports, format)
}
