package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

// ReportStore is an in-memory implementation of driven.ReportStore.
// Each URI keeps at most limit reports; older ones are dropped.
type ReportStore struct {
	mu      sync.RWMutex
	limit   int
	reports map[string][]domain.Report
}

// NewReportStore creates a report store keeping up to limit reports per URI.
// A limit <= 0 keeps everything.
func NewReportStore(limit int) *ReportStore {
	return &ReportStore{
		limit:   limit,
		reports: make(map[string][]domain.Report),
	}
}

// Save appends a report to the history of its URI.
func (s *ReportStore) Save(_ context.Context, report *domain.Report) error {
	if report == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	history := append(s.reports[report.URI], *report)
	if s.limit > 0 && len(history) > s.limit {
		history = append([]domain.Report(nil), history[len(history)-s.limit:]...)
	}
	s.reports[report.URI] = history
	return nil
}

// Latest returns the most recent report for a URI.
func (s *ReportStore) Latest(_ context.Context, uri string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := s.reports[uri]
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: no report for %s", domain.ErrNotFound, uri)
	}
	report := history[len(history)-1]
	return &report, nil
}

// History returns all reports for a URI, oldest first.
func (s *ReportStore) History(_ context.Context, uri string) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Report(nil), s.reports[uri]...), nil
}

// Clear drops the history for a URI.
func (s *ReportStore) Clear(_ context.Context, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reports, uri)
	return nil
}
