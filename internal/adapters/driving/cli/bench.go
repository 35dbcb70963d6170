package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/logger"
)

var (
	benchTrials      int
	benchStart       int
	benchIncrement   int
	benchSteps       int
	benchStrategies  []string
	benchFormat      string
	benchInteractive bool
)

var benchCmd = &cobra.Command{
	Use:   "bench <file>",
	Short: "Time counting strategies over growing prefixes of a file",
	Long: `Times each counting strategy over prefixes of the file. Step i reads
the first start+i*increment characters afresh, then runs every strategy
"trials" times on it and reports the mean time per call.

The default output is a tab-separated table:

  NumberOfChars	BasicTime	EfficientTime

with times in seconds. Unset flags take their values from settings.`,
	Example: `  legible bench book.txt
  legible bench book.txt --trials 10 --start 1000 --increment 1000 --steps 5
  legible bench book.txt --strategy efficient --format json
  legible bench book.txt --interactive`,
	Args: cobra.ExactArgs(1),
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchTrials, "trials", 0, "runs per strategy per step")
	benchCmd.Flags().IntVar(&benchStart, "start", 0, "characters in the first prefix")
	benchCmd.Flags().IntVar(&benchIncrement, "increment", 0, "characters added per step")
	benchCmd.Flags().IntVar(&benchSteps, "steps", 0, "number of prefix sizes")
	benchCmd.Flags().StringSliceVarP(&benchStrategies, "strategy", "s", nil, "strategy to time (repeatable)")
	benchCmd.Flags().StringVarP(&benchFormat, "format", "f", "", "output format: tsv, json or yaml")
	benchCmd.Flags().BoolVarP(&benchInteractive, "interactive", "i", false, "show a live progress view")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchmarkService == nil {
		return errors.New("benchmark service not configured")
	}

	cfg, err := benchConfig(cmd, args[0])
	if err != nil {
		return err
	}

	format, err := resolveFormat(benchFormat, domain.OutputTSV)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	var result *domain.BenchmarkResult
	if benchInteractive && isTerminal(cmd.OutOrStdout()) {
		result, err = runBenchTUI(ctx, cfg)
	} else {
		if benchInteractive {
			logger.Notice("--interactive needs a terminal, printing results only")
		}
		result, err = benchmarkService.Run(ctx, cfg, nil)
	}
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	return writeBenchmark(cmd.OutOrStdout(), result, format)
}

// benchConfig merges flags over the configured benchmark defaults.
func benchConfig(cmd *cobra.Command, path string) (domain.BenchmarkConfig, error) {
	defaults := domain.DefaultAppSettings().Benchmark
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return domain.BenchmarkConfig{}, fmt.Errorf("failed to get settings: %w", err)
		}
		defaults = settings.Benchmark
	}

	cfg := domain.NewBenchmarkConfig(path, defaults)

	flags := cmd.Flags()
	if flags.Changed("trials") {
		cfg.Trials = benchTrials
	}
	if flags.Changed("start") {
		cfg.Start = benchStart
	}
	if flags.Changed("increment") {
		cfg.Increment = benchIncrement
	}
	if flags.Changed("steps") {
		cfg.Steps = benchSteps
	}
	if flags.Changed("strategy") {
		cfg.Strategies = append([]string(nil), benchStrategies...)
	}

	return cfg, cfg.Validate()
}
