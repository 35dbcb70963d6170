package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
	"github.com/custodia-labs/legible/internal/core/ports/driving"
	"github.com/custodia-labs/legible/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService re-analyses a file each time the watcher reports a change,
// keeping the session's reports in a report store.
type WatchService struct {
	analysis driving.AnalysisService
	watcher  driven.FileWatcher
	reports  driven.ReportStore
}

// NewWatchService creates a new watch service.
func NewWatchService(
	analysis driving.AnalysisService,
	watcher driven.FileWatcher,
	reports driven.ReportStore,
) *WatchService {
	return &WatchService{
		analysis: analysis,
		watcher:  watcher,
		reports:  reports,
	}
}

// Watch analyses path once, then after every change until ctx is done.
// The initial analysis must succeed; later failures (a file briefly
// missing while an editor saves it) are reported and skipped.
func (s *WatchService) Watch(
	ctx context.Context,
	path string,
	opts driving.AnalyseOptions,
	fn driving.UpdateFunc,
) error {
	if fn == nil {
		return fmt.Errorf("%w: update callback is required", domain.ErrInvalidInput)
	}

	if err := s.analyse(ctx, path, opts, fn); err != nil {
		return err
	}

	changes, err := s.watcher.Watch(ctx, path)
	if err != nil {
		return err
	}
	logger.Debug("watching %s", path)

	for range changes {
		if err := s.analyse(ctx, path, opts, fn); err != nil {
			if ctx.Err() != nil {
				break
			}
			logger.Notice("%v", err)
		}
	}

	history, _ := s.reports.History(context.Background(), path)
	logger.Debug("stopped watching %s after %d analyses", path, len(history))
	return nil
}

func (s *WatchService) analyse(
	ctx context.Context,
	path string,
	opts driving.AnalyseOptions,
	fn driving.UpdateFunc,
) error {
	report, err := s.analysis.AnalyseFile(ctx, path, opts)
	if err != nil {
		return err
	}
	// Key the history by the watched path rather than the loader's URI
	report.URI = path

	update := domain.WatchUpdate{Current: *report}
	previous, err := s.reports.Latest(ctx, path)
	switch {
	case err == nil:
		update.Previous = previous
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}

	if err := s.reports.Save(ctx, report); err != nil {
		return err
	}
	fn(update)
	return nil
}
