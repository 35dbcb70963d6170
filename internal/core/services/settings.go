package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
	"github.com/custodia-labs/legible/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyAnalysisStrategy = "analysis.strategy"
	keyAnalysisWorkers  = "analysis.workers"
	keyAnalysisMaxChars = "analysis.max_chars"
	keyBenchTrials      = "benchmark.trials"
	keyBenchStart       = "benchmark.start"
	keyBenchIncrement   = "benchmark.increment"
	keyBenchSteps       = "benchmark.steps"
	keyBenchStrategies  = "benchmark.strategies"
	keyOutputFormat     = "output.format"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	counters    driven.CounterRegistry
}

// NewSettingsService creates a new settings service. When counters is not
// nil, strategy names are checked against it.
func NewSettingsService(configStore driven.ConfigStore, counters driven.CounterRegistry) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		counters:    counters,
	}
}

// Get retrieves current application settings. Missing keys take their
// defaults. The settings are returned even when they fail validation, so
// callers can show them alongside the error.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := s.load()
	if err := s.validate(settings); err != nil {
		return settings, fmt.Errorf("%s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := s.validate(settings); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyAnalysisStrategy, settings.Analysis.Strategy},
		{keyAnalysisWorkers, settings.Analysis.Workers},
		{keyAnalysisMaxChars, settings.Analysis.MaxChars},
		{keyBenchTrials, settings.Benchmark.Trials},
		{keyBenchStart, settings.Benchmark.Start},
		{keyBenchIncrement, settings.Benchmark.Increment},
		{keyBenchSteps, settings.Benchmark.Steps},
		{keyBenchStrategies, append([]string(nil), settings.Benchmark.Strategies...)},
		{keyOutputFormat, settings.Output.Format.String()},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single setting from its string form. The resulting
// settings must validate before anything is persisted.
func (s *SettingsService) Set(key, value string) error {
	settings := s.load()
	value = strings.TrimSpace(value)

	var stored any
	switch key {
	case keyAnalysisStrategy:
		settings.Analysis.Strategy = value
		stored = value
	case keyAnalysisWorkers, keyAnalysisMaxChars, keyBenchTrials, keyBenchStart, keyBenchIncrement, keyBenchSteps:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidSetting, key, value)
		}
		*intField(settings, key) = n
		stored = n
	case keyBenchStrategies:
		names := splitList(value)
		settings.Benchmark.Strategies = names
		stored = names
	case keyOutputFormat:
		settings.Output.Format = domain.OutputFormat(value)
		stored = value
	default:
		return fmt.Errorf("%w: unknown key %q (known: %s)",
			domain.ErrInvalidSetting, key, strings.Join(s.Keys(), ", "))
	}

	if err := s.validate(settings); err != nil {
		return err
	}
	return s.configStore.Set(key, stored)
}

// Keys returns every settable key, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{
		keyAnalysisStrategy, keyAnalysisWorkers, keyAnalysisMaxChars,
		keyBenchTrials, keyBenchStart, keyBenchIncrement, keyBenchSteps, keyBenchStrategies,
		keyOutputFormat,
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns where settings are persisted.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func (s *SettingsService) load() *domain.AppSettings {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Analysis: domain.AnalysisSettings{
			Strategy: s.getString(keyAnalysisStrategy, defaults.Analysis.Strategy),
			Workers:  s.getInt(keyAnalysisWorkers, defaults.Analysis.Workers),
			MaxChars: s.getInt(keyAnalysisMaxChars, defaults.Analysis.MaxChars),
		},
		Benchmark: domain.BenchmarkSettings{
			Trials:     s.getInt(keyBenchTrials, defaults.Benchmark.Trials),
			Start:      s.getInt(keyBenchStart, defaults.Benchmark.Start),
			Increment:  s.getInt(keyBenchIncrement, defaults.Benchmark.Increment),
			Steps:      s.getInt(keyBenchSteps, defaults.Benchmark.Steps),
			Strategies: s.getStrings(keyBenchStrategies, defaults.Benchmark.Strategies),
		},
		Output: domain.OutputSettings{
			Format: domain.OutputFormat(s.getString(keyOutputFormat, defaults.Output.Format.String())),
		},
	}
}

func (s *SettingsService) validate(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if s.counters == nil {
		return nil
	}

	names := append([]string{settings.Analysis.Strategy}, settings.Benchmark.Strategies...)
	var errs []error
	for _, name := range names {
		if _, err := s.counters.Get(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func intField(settings *domain.AppSettings, key string) *int {
	switch key {
	case keyAnalysisWorkers:
		return &settings.Analysis.Workers
	case keyAnalysisMaxChars:
		return &settings.Analysis.MaxChars
	case keyBenchTrials:
		return &settings.Benchmark.Trials
	case keyBenchStart:
		return &settings.Benchmark.Start
	case keyBenchIncrement:
		return &settings.Benchmark.Increment
	default:
		return &settings.Benchmark.Steps
	}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getInt distinguishes a stored zero from a missing key.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getStrings(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return append([]string(nil), defaultVal...)
	}
	return val
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
