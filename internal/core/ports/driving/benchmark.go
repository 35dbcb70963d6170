package driving

import (
	"context"

	"github.com/custodia-labs/legible/internal/core/domain"
)

// ProgressFunc receives benchmark progress after each step.
type ProgressFunc func(domain.BenchmarkProgress)

// BenchmarkService times counting strategies over growing prefixes of a file.
type BenchmarkService interface {
	// Run executes the benchmark. progress may be nil.
	// A load failure aborts the run.
	Run(ctx context.Context, cfg domain.BenchmarkConfig, progress ProgressFunc) (*domain.BenchmarkResult, error)
}
