package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/legible/internal/adapters/driving/tui"
	"github.com/custodia-labs/legible/internal/core/domain"
)

// runBenchTUI runs the benchmark behind the interactive progress view.
func runBenchTUI(
	ctx context.Context, cfg domain.BenchmarkConfig, opts ...tea.ProgramOption,
) (result *domain.BenchmarkResult, err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	result, err = tui.RunBenchmark(ctx, benchmarkService, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("TUI error: %w", err)
	}
	return result, nil
}
