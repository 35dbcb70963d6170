package driving

import (
	"context"

	"github.com/custodia-labs/legible/internal/core/domain"
)

// AnalysisService computes readability statistics.
type AnalysisService interface {
	// Stats counts text with the named strategy and composes the score.
	Stats(text, strategy string) (domain.Stats, error)

	// AnalyseDocument analyses an already loaded document.
	AnalyseDocument(ctx context.Context, doc *domain.Document, strategy string) (*domain.Report, error)

	// AnalyseFile loads, normalises and analyses one file.
	// opts.MaxChars bounds how much of the file is read.
	AnalyseFile(ctx context.Context, path string, opts AnalyseOptions) (*domain.Report, error)

	// AnalyseFiles analyses several files concurrently.
	// Reports are returned in the order of paths.
	AnalyseFiles(ctx context.Context, paths []string, opts AnalyseOptions) ([]domain.Report, error)

	// Compare runs every registered strategy over the same text and
	// returns domain.ErrStrategyMismatch if any two disagree.
	Compare(text string) (map[string]domain.Stats, error)

	// CompareFile is Compare over the normalised content of a file.
	CompareFile(ctx context.Context, path string, maxChars int) (map[string]domain.Stats, error)

	// Strategies returns the names of all registered strategies.
	Strategies() []string
}

// AnalyseOptions tunes a file analysis.
type AnalyseOptions struct {
	// Strategy is the counting strategy name. Empty uses the configured default.
	Strategy string

	// MaxChars limits the characters read per file. 0 reads everything.
	MaxChars int

	// Workers bounds concurrency for AnalyseFiles. 0 uses the configured default.
	Workers int
}
