// Package cli provides the cobra command tree for legible.
// It is a driving adapter: commands translate flags into calls on the
// driving ports and render the results.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legible/internal/core/ports/driving"
	"github.com/custodia-labs/legible/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services aggregates the driving ports the commands call.
type Services struct {
	Analysis  driving.AnalysisService
	Benchmark driving.BenchmarkService
	Settings  driving.SettingsService
	Watch     driving.WatchService
}

// Options carries the global flags needed to build the services.
type Options struct {
	// ConfigDir overrides the directory holding config.toml.
	ConfigDir string

	// NoConfig selects an in-memory config store.
	NoConfig bool
}

// Builder constructs the services once global flags are parsed.
type Builder func(Options) (*Services, error)

var (
	analysisService  driving.AnalysisService
	benchmarkService driving.BenchmarkService
	settingsService  driving.SettingsService
	watchService     driving.WatchService

	builder Builder
)

var (
	verbose   bool
	configDir string
	noConfig  bool
)

var rootCmd = &cobra.Command{
	Use:   "legible",
	Short: "Readability statistics for plain-text documents",
	Long: `legible counts words, sentences and syllables and computes the
Flesch Reading Ease score of plain-text, Markdown and HTML documents.

Two interchangeable counting strategies are available: "basic" uses one
regular expression per rule, "efficient" counts in a single byte scan.
Use "legible bench" to time them against each other.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.toml (default ~/.legible)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "ignore the config file and use defaults")
}

// SetServices installs the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	analysisService = s.Analysis
	benchmarkService = s.Benchmark
	settingsService = s.Settings
	watchService = s.Watch
}

// SetBuilder installs the function that builds services after flag parsing.
func SetBuilder(b Builder) {
	builder = b
}

// Execute runs the root command. ctx is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if builder == nil {
		return nil
	}

	services, err := builder(Options{ConfigDir: configDir, NoConfig: noConfig})
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
