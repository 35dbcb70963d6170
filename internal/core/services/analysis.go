package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
	"github.com/custodia-labs/legible/internal/core/ports/driving"
	"github.com/custodia-labs/legible/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService computes readability statistics for text and files.
type AnalysisService struct {
	counters    driven.CounterRegistry
	normalisers driven.NormaliserRegistry
	loader      driven.DocumentLoader
	defaults    domain.AnalysisSettings
}

// NewAnalysisService creates a new analysis service. defaults supplies the
// strategy, worker count and read limit when AnalyseOptions leaves them zero.
func NewAnalysisService(
	counters driven.CounterRegistry,
	normalisers driven.NormaliserRegistry,
	loader driven.DocumentLoader,
	defaults domain.AnalysisSettings,
) *AnalysisService {
	return &AnalysisService{
		counters:    counters,
		normalisers: normalisers,
		loader:      loader,
		defaults:    defaults,
	}
}

// Stats counts text with the named strategy and composes the score.
func (s *AnalysisService) Stats(text, strategy string) (domain.Stats, error) {
	c, err := s.counter(strategy)
	if err != nil {
		return domain.Stats{}, err
	}
	return computeStats(c, text), nil
}

// AnalyseDocument analyses an already loaded document.
func (s *AnalysisService) AnalyseDocument(
	_ context.Context,
	doc *domain.Document,
	strategy string,
) (*domain.Report, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}
	c, err := s.counter(strategy)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	stats := computeStats(c, doc.Content)
	elapsed := time.Since(start)

	logger.Debug("%s: %s via %s in %s", displayName(doc), stats, c.Name(), elapsed)

	return &domain.Report{
		ID:       uuid.New().String(),
		URI:      doc.URI,
		Title:    doc.Title,
		Strategy: c.Name(),
		Chars:    doc.Chars(),
		Stats:    stats,
		Elapsed:  elapsed,
	}, nil
}

// AnalyseFile loads, normalises and analyses one file.
func (s *AnalysisService) AnalyseFile(
	ctx context.Context,
	path string,
	opts driving.AnalyseOptions,
) (*domain.Report, error) {
	opts = s.withDefaults(opts)

	// Resolve the strategy before touching the disk
	if _, err := s.counter(opts.Strategy); err != nil {
		return nil, err
	}

	doc, err := s.loadDocument(ctx, path, opts.MaxChars)
	if err != nil {
		return nil, err
	}
	return s.AnalyseDocument(ctx, doc, opts.Strategy)
}

// CompareFile loads and normalises path once, then compares every
// strategy on the resulting text.
func (s *AnalysisService) CompareFile(
	ctx context.Context,
	path string,
	maxChars int,
) (map[string]domain.Stats, error) {
	if maxChars == 0 {
		maxChars = s.defaults.MaxChars
	}
	doc, err := s.loadDocument(ctx, path, maxChars)
	if err != nil {
		return nil, err
	}
	return s.Compare(doc.Content)
}

func (s *AnalysisService) loadDocument(ctx context.Context, path string, maxChars int) (*domain.Document, error) {
	loaded, err := s.loader.Load(ctx, path, maxChars)
	if err != nil {
		return nil, err
	}

	doc, err := s.normalisers.Normalise(ctx, &loaded.Raw)
	if err != nil {
		return nil, fmt.Errorf("normalise %s: %w", path, err)
	}
	return doc, nil
}

// AnalyseFiles analyses several files concurrently, at most opts.Workers
// at a time. The first failure cancels the remaining work.
func (s *AnalysisService) AnalyseFiles(
	ctx context.Context,
	paths []string,
	opts driving.AnalyseOptions,
) ([]domain.Report, error) {
	opts = s.withDefaults(opts)
	if _, err := s.counter(opts.Strategy); err != nil {
		return nil, err
	}

	logger.Section("Analysis")
	logger.Debug("%d files, strategy %s, %d workers", len(paths), opts.Strategy, opts.Workers)
	defer logger.Elapsed("analysis", time.Now())

	reports := make([]domain.Report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, path := range paths {
		g.Go(func() error {
			report, err := s.AnalyseFile(ctx, path, opts)
			if err != nil {
				return err
			}
			reports[i] = *report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Compare runs every registered strategy over the same text. The map is
// always returned; the error wraps domain.ErrStrategyMismatch when any
// strategy disagrees with the first one by name.
func (s *AnalysisService) Compare(text string) (map[string]domain.Stats, error) {
	names := s.counters.Names()
	results := make(map[string]domain.Stats, len(names))

	var reference string
	var mismatched []string
	for _, name := range names {
		c, err := s.counters.Get(name)
		if err != nil {
			return nil, err
		}
		stats := computeStats(c, text)
		results[name] = stats

		if reference == "" {
			reference = name
			continue
		}
		if stats != results[reference] {
			mismatched = append(mismatched, name)
		}
	}

	if len(mismatched) > 0 {
		return results, fmt.Errorf("%w: %v differ from %s (%s)",
			domain.ErrStrategyMismatch, mismatched, reference, results[reference])
	}
	return results, nil
}

// Strategies returns the names of all registered strategies.
func (s *AnalysisService) Strategies() []string {
	return s.counters.Names()
}

func (s *AnalysisService) counter(strategy string) (driven.Counter, error) {
	if strategy == "" {
		strategy = s.defaults.Strategy
	}
	if strategy == "" {
		strategy = domain.StrategyEfficient
	}
	return s.counters.Get(strategy)
}

func (s *AnalysisService) withDefaults(opts driving.AnalyseOptions) driving.AnalyseOptions {
	if opts.Strategy == "" {
		opts.Strategy = s.defaults.Strategy
	}
	if opts.MaxChars == 0 {
		opts.MaxChars = s.defaults.MaxChars
	}
	if opts.Workers <= 0 {
		opts.Workers = s.defaults.Workers
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return opts
}

func displayName(doc *domain.Document) string {
	switch {
	case doc.Title != "":
		return doc.Title
	case doc.URI != "":
		return doc.URI
	default:
		return "text"
	}
}
