package driven

import (
	"context"

	"github.com/custodia-labs/legible/internal/core/domain"
)

// ReportStore keeps analysis reports for the lifetime of a process, so a
// watch session can show how a document's readability moves between saves.
type ReportStore interface {
	// Save appends a report to the history of its URI.
	Save(ctx context.Context, report *domain.Report) error

	// Latest returns the most recent report for a URI.
	// Returns domain.ErrNotFound if none exists.
	Latest(ctx context.Context, uri string) (*domain.Report, error)

	// History returns all reports for a URI, oldest first.
	History(ctx context.Context, uri string) ([]domain.Report, error)

	// Clear drops the history for a URI.
	Clear(ctx context.Context, uri string) error
}
