// Command legible computes readability statistics for text documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/legible/internal/adapters/driven/config/file"
	"github.com/custodia-labs/legible/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/legible/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/legible/internal/adapters/driving/cli"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
	"github.com/custodia-labs/legible/internal/core/services"
	"github.com/custodia-labs/legible/internal/counters"
	"github.com/custodia-labs/legible/internal/logger"
	"github.com/custodia-labs/legible/internal/normalisers"
)

// reportHistory is how many watch reports are kept per file.
const reportHistory = 100

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetBuilder(buildServices)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// buildServices wires adapters into the core services.
func buildServices(opts cli.Options) (*cli.Services, error) {
	configStore, err := newConfigStore(opts)
	if err != nil {
		return nil, err
	}

	registry := counters.NewDefaultRegistry()
	loader := filesystem.NewLoader()

	settings := services.NewSettingsService(configStore, registry)
	current, err := settings.Get()
	if err != nil {
		// Keep going with what could be read; settings commands can repair it.
		logger.Notice("invalid settings: %v", err)
		defaults := settings.GetDefaults()
		current = &defaults
	}

	analysis := services.NewAnalysisService(registry, normalisers.NewDefaultRegistry(), loader, current.Analysis)

	return &cli.Services{
		Analysis:  analysis,
		Benchmark: services.NewBenchmarkService(registry, loader),
		Settings:  settings,
		Watch: services.NewWatchService(
			analysis,
			filesystem.NewWatcher(filesystem.DefaultWatchInterval),
			memory.NewReportStore(reportHistory),
		),
	}, nil
}

func newConfigStore(opts cli.Options) (driven.ConfigStore, error) {
	if opts.NoConfig {
		return memory.NewConfigStore(), nil
	}

	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	return store, nil
}
