package domain

import (
	"fmt"
	"time"
)

// BenchmarkConfig describes one benchmark run: every strategy is timed
// over growing prefixes of the same file.
type BenchmarkConfig struct {
	// Path is the file whose prefixes are measured.
	Path string `json:"path" yaml:"path"`

	// Trials is how many times each strategy runs per step.
	Trials int `json:"trials" yaml:"trials"`

	// Start is the prefix size of the first step, in characters.
	Start int `json:"start" yaml:"start"`

	// Increment is added to the prefix size after each step.
	Increment int `json:"increment" yaml:"increment"`

	// Steps is the number of prefix sizes measured.
	Steps int `json:"steps" yaml:"steps"`

	// Strategies lists the strategy names to time, in output order.
	Strategies []string `json:"strategies" yaml:"strategies"`
}

// NewBenchmarkConfig builds a config for path from benchmark settings.
func NewBenchmarkConfig(path string, s BenchmarkSettings) BenchmarkConfig {
	return BenchmarkConfig{
		Path:       path,
		Trials:     s.Trials,
		Start:      s.Start,
		Increment:  s.Increment,
		Steps:      s.Steps,
		Strategies: append([]string(nil), s.Strategies...),
	}
}

// Validate checks the config is runnable.
func (c BenchmarkConfig) Validate() error {
	switch {
	case c.Path == "":
		return fmt.Errorf("%w: benchmark path is required", ErrInvalidInput)
	case c.Trials < 1:
		return fmt.Errorf("%w: benchmark.trials must be at least 1, got %d", ErrInvalidSetting, c.Trials)
	case c.Start < 1:
		return fmt.Errorf("%w: benchmark.start must be at least 1, got %d", ErrInvalidSetting, c.Start)
	case c.Increment < 0:
		return fmt.Errorf("%w: benchmark.increment must not be negative, got %d", ErrInvalidSetting, c.Increment)
	case c.Steps < 1:
		return fmt.Errorf("%w: benchmark.steps must be at least 1, got %d", ErrInvalidSetting, c.Steps)
	case len(c.Strategies) == 0:
		return fmt.Errorf("%w: at least one benchmark strategy is required", ErrInvalidSetting)
	}
	return nil
}

// Sizes returns the prefix size of every step.
func (c BenchmarkConfig) Sizes() []int {
	if c.Steps < 1 {
		return nil
	}
	sizes := make([]int, c.Steps)
	for i := range sizes {
		sizes[i] = c.Start + i*c.Increment
	}
	return sizes
}

// BenchmarkRow holds the averages measured for one prefix size.
type BenchmarkRow struct {
	// Chars is the requested prefix size.
	Chars int `json:"chars" yaml:"chars"`

	// Loaded is the number of characters actually read.
	// It is smaller than Chars when the file is shorter.
	Loaded int `json:"loaded" yaml:"loaded"`

	// Averages holds the mean time per call, aligned with BenchmarkConfig.Strategies.
	Averages []time.Duration `json:"averages_ns" yaml:"averages"`
}

// BenchmarkResult is the full output of a benchmark run.
type BenchmarkResult struct {
	Config BenchmarkConfig `json:"config" yaml:"config"`
	Rows   []BenchmarkRow  `json:"rows" yaml:"rows"`
}

// BenchmarkProgress is reported after each completed step.
type BenchmarkProgress struct {
	// Step is the 1-based index of the completed step.
	Step int

	// Steps is the total number of steps.
	Steps int

	// Row is the row produced by the step.
	Row BenchmarkRow
}

// Fraction returns completion in the range [0, 1].
func (p BenchmarkProgress) Fraction() float64 {
	if p.Steps <= 0 {
		return 0
	}
	return float64(p.Step) / float64(p.Steps)
}
