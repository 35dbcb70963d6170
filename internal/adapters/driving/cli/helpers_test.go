package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legible/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/legible/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driving"
	"github.com/custodia-labs/legible/internal/core/services"
	"github.com/custodia-labs/legible/internal/counters"
	"github.com/custodia-labs/legible/internal/counters/efficient"
	"github.com/custodia-labs/legible/internal/normalisers"
)

const sampleText = "This is a test.  How many???  Senteeeeeeeeeences are here... there should be 5!  Right?"

// setupTestServices wires real services over in-memory stores and
// returns a function restoring the previous ones.
func setupTestServices() func() {
	return setupServices(&Services{})
}

// setupServices wires real services, replacing any non-nil field of
// overrides, and returns a cleanup function.
func setupServices(overrides *Services) func() {
	prev := &Services{
		Analysis:  analysisService,
		Benchmark: benchmarkService,
		Settings:  settingsService,
		Watch:     watchService,
	}

	registry := counters.NewDefaultRegistry()
	loader := filesystem.NewLoader()
	settings := services.NewSettingsService(memory.NewConfigStore(), registry)
	defaults := settings.GetDefaults()
	analysis := services.NewAnalysisService(registry, normalisers.NewDefaultRegistry(), loader, defaults.Analysis)

	s := &Services{
		Analysis:  analysis,
		Benchmark: services.NewBenchmarkService(registry, loader),
		Settings:  settings,
		Watch:     services.NewWatchService(analysis, filesystem.NewWatcher(filesystem.DefaultWatchInterval), memory.NewReportStore(10)),
	}
	if overrides.Analysis != nil {
		s.Analysis = overrides.Analysis
	}
	if overrides.Benchmark != nil {
		s.Benchmark = overrides.Benchmark
	}
	if overrides.Settings != nil {
		s.Settings = overrides.Settings
	}
	if overrides.Watch != nil {
		s.Watch = overrides.Watch
	}
	SetServices(s)

	return func() { SetServices(prev) }
}

// execute runs the root command with args and returns everything written.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(bytes.NewBufferString(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so tests do not leak
// values into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// brokenCounter disagrees with every real strategy on syllables.
type brokenCounter struct{}

func (brokenCounter) Name() string                   { return "broken" }
func (brokenCounter) CountWords(text string) int     { return efficient.New().CountWords(text) }
func (brokenCounter) CountSentences(text string) int { return efficient.New().CountSentences(text) }
func (brokenCounter) CountSyllables(string) int      { return 0 }

// fakeWatchService replays fixed updates, then returns err.
type fakeWatchService struct {
	updates []domain.WatchUpdate
	err     error
	path    string
	opts    driving.AnalyseOptions
}

func (f *fakeWatchService) Watch(
	_ context.Context, path string, opts driving.AnalyseOptions, fn driving.UpdateFunc,
) error {
	f.path = path
	f.opts = opts
	for _, u := range f.updates {
		fn(u)
	}
	return f.err
}

func writeTo(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}
