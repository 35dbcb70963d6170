package domain

import (
	"fmt"
	"runtime"
)

const unknownDescription = "Unknown"

// Built-in counting strategy names.
const (
	// StrategyBasic counts with one regular expression per rule.
	StrategyBasic = "basic"

	// StrategyEfficient counts with a single byte scan.
	StrategyEfficient = "efficient"
)

// OutputFormat selects how results are rendered.
type OutputFormat string

// Available output formats.
const (
	// OutputText is a human-readable table.
	OutputText OutputFormat = "text"

	// OutputTSV is tab-separated values, one row per record.
	OutputTSV OutputFormat = "tsv"

	// OutputJSON is indented JSON.
	OutputJSON OutputFormat = "json"

	// OutputYAML is YAML.
	OutputYAML OutputFormat = "yaml"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputText, OutputTSV, OutputJSON, OutputYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputText:
		return "Text (aligned table)"
	case OutputTSV:
		return "TSV (tab-separated)"
	case OutputJSON:
		return "JSON"
	case OutputYAML:
		return "YAML"
	default:
		return unknownDescription
	}
}

// AllOutputFormats returns all available output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{OutputText, OutputTSV, OutputJSON, OutputYAML}
}

// AnalysisSettings holds document analysis configuration.
type AnalysisSettings struct {
	// Strategy is the default counting strategy name.
	Strategy string

	// Workers bounds how many documents are analysed concurrently.
	Workers int

	// MaxChars limits how many characters are read per file (0 = all).
	MaxChars int
}

// BenchmarkSettings holds the defaults for benchmark runs.
type BenchmarkSettings struct {
	// Trials is how many times each strategy runs per step.
	Trials int

	// Start is the prefix size of the first step, in characters.
	Start int

	// Increment is added to the prefix size after each step.
	Increment int

	// Steps is the number of prefix sizes measured.
	Steps int

	// Strategies lists the strategies to compare.
	Strategies []string
}

// OutputSettings holds rendering configuration.
type OutputSettings struct {
	// Format is the default output format.
	Format OutputFormat
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Analysis holds analysis settings.
	Analysis AnalysisSettings

	// Benchmark holds benchmark defaults.
	Benchmark BenchmarkSettings

	// Output holds output settings.
	Output OutputSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Analysis: AnalysisSettings{
			Strategy: StrategyEfficient,
			Workers:  runtime.GOMAXPROCS(0),
			MaxChars: 0,
		},
		Benchmark: BenchmarkSettings{
			Trials:     50,
			Start:      50000,
			Increment:  20000,
			Steps:      20,
			Strategies: []string{StrategyBasic, StrategyEfficient},
		},
		Output: OutputSettings{
			Format: OutputText,
		},
	}
}

// Validate checks that every setting is within range.
func (s AppSettings) Validate() error {
	if s.Analysis.Strategy == "" {
		return fmt.Errorf("%w: analysis.strategy must not be empty", ErrInvalidSetting)
	}
	if s.Analysis.Workers < 1 {
		return fmt.Errorf("%w: analysis.workers must be at least 1, got %d", ErrInvalidSetting, s.Analysis.Workers)
	}
	if s.Analysis.MaxChars < 0 {
		return fmt.Errorf("%w: analysis.max_chars must not be negative, got %d", ErrInvalidSetting, s.Analysis.MaxChars)
	}
	if !s.Output.Format.IsValid() {
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidSetting, s.Output.Format)
	}
	cfg := BenchmarkConfig{
		Path:       "-",
		Trials:     s.Benchmark.Trials,
		Start:      s.Benchmark.Start,
		Increment:  s.Benchmark.Increment,
		Steps:      s.Benchmark.Steps,
		Strategies: s.Benchmark.Strategies,
	}
	return cfg.Validate()
}
