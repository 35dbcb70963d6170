package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legible/internal/adapters/driving/tui"
	"github.com/custodia-labs/legible/internal/core/domain"
)

func headless(out *bytes.Buffer) []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithInput(nil), tea.WithOutput(out), tea.WithoutRenderer()}
}

func TestRunBenchTUI(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeFile(t, "book.txt", strings.Repeat("Like a tree. ", 10))

	cfg := domain.BenchmarkConfig{
		Path: path, Trials: 1, Start: 10, Increment: 10, Steps: 2,
		Strategies: []string{"basic", "efficient"},
	}

	var out bytes.Buffer
	result, err := runBenchTUI(context.Background(), cfg, headless(&out)...)

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, 10, result.Rows[0].Chars)
	assert.Equal(t, 20, result.Rows[1].Chars)
}

func TestRunBenchTUI_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	cfg := domain.BenchmarkConfig{
		Path: "/does/not/exist.txt", Trials: 1, Start: 10, Steps: 1,
		Strategies: []string{"efficient"},
	}

	var out bytes.Buffer
	result, err := runBenchTUI(context.Background(), cfg, headless(&out)...)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "TUI error")
	assert.Nil(t, result)
}

func TestRunBenchTUI_NoService(t *testing.T) {
	cleanup := setupServices(&Services{})
	defer cleanup()
	benchmarkService = nil

	var out bytes.Buffer
	_, err := runBenchTUI(context.Background(), domain.BenchmarkConfig{}, headless(&out)...)

	assert.ErrorIs(t, err, tui.ErrMissingBenchmarkService)
}
