package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
	"github.com/custodia-labs/legible/internal/core/ports/driving"
	"github.com/custodia-labs/legible/internal/logger"
)

// Ensure BenchmarkService implements the interface.
var _ driving.BenchmarkService = (*BenchmarkService)(nil)

// progressLogInterval throttles verbose progress lines on long runs.
const progressLogInterval = 2 * time.Second

// BenchmarkService times counting strategies over growing prefixes of a file.
type BenchmarkService struct {
	counters driven.CounterRegistry
	loader   driven.DocumentLoader
}

// NewBenchmarkService creates a new benchmark service.
func NewBenchmarkService(counters driven.CounterRegistry, loader driven.DocumentLoader) *BenchmarkService {
	return &BenchmarkService{
		counters: counters,
		loader:   loader,
	}
}

// Run executes the benchmark. Each step loads a fresh prefix of the file
// and times every strategy cfg.Trials times, interleaving strategies
// within a trial. The raw file text is measured, without normalisation.
func (s *BenchmarkService) Run(
	ctx context.Context,
	cfg domain.BenchmarkConfig,
	progress driving.ProgressFunc,
) (*domain.BenchmarkResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	counters := make([]driven.Counter, len(cfg.Strategies))
	for i, name := range cfg.Strategies {
		c, err := s.counters.Get(name)
		if err != nil {
			return nil, err
		}
		counters[i] = c
	}

	logger.Section("Benchmark")
	logger.Debug("%s: %d steps from %d chars (+%d), %d trials, strategies %v",
		cfg.Path, cfg.Steps, cfg.Start, cfg.Increment, cfg.Trials, cfg.Strategies)
	defer logger.Elapsed("benchmark", time.Now())

	progressLog := rate.Sometimes{Interval: progressLogInterval}
	result := &domain.BenchmarkResult{Config: cfg}

	for i, size := range cfg.Sizes() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		loaded, err := s.loader.Load(ctx, cfg.Path, size)
		if err != nil {
			return nil, fmt.Errorf("benchmark step %d (%d chars): %w", i+1, size, err)
		}

		row := domain.BenchmarkRow{
			Chars:    size,
			Loaded:   loaded.Chars,
			Averages: timeStrategies(counters, string(loaded.Raw.Content), cfg.Trials),
		}
		result.Rows = append(result.Rows, row)

		p := domain.BenchmarkProgress{Step: i + 1, Steps: cfg.Steps, Row: row}
		progressLog.Do(func() {
			logger.Info("step %d/%d: %d chars %v", p.Step, p.Steps, row.Chars, row.Averages)
		})
		if progress != nil {
			progress(p)
		}
	}

	return result, nil
}

// timeStrategies returns the mean duration of one Stats computation per
// counter, aligned with counters.
func timeStrategies(counters []driven.Counter, text string, trials int) []time.Duration {
	totals := make([]time.Duration, len(counters))
	for trial := 0; trial < trials; trial++ {
		for j, c := range counters {
			start := time.Now()
			_ = computeStats(c, text)
			totals[j] += time.Since(start)
		}
	}

	averages := make([]time.Duration, len(counters))
	for j, total := range totals {
		averages[j] = total / time.Duration(trials)
	}
	return averages
}
