// Package tui provides the interactive benchmark view for legible.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/legible/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Benchmark runs the timed strategy comparison.
	Benchmark driving.BenchmarkService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(benchmark driving.BenchmarkService) *Ports {
	return &Ports{Benchmark: benchmark}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Benchmark == nil {
		return ErrMissingBenchmarkService
	}
	return nil
}
