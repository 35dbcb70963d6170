// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/legible/internal/core/domain"
)

// BenchProgress carries one completed benchmark step.
type BenchProgress struct {
	Progress domain.BenchmarkProgress
}

// BenchDone is sent once the benchmark has returned.
type BenchDone struct {
	Result *domain.BenchmarkResult
	Err    error
}
