package driving

import (
	"context"

	"github.com/custodia-labs/legible/internal/core/domain"
)

// UpdateFunc receives a report each time a watched file is re-analysed.
type UpdateFunc func(domain.WatchUpdate)

// WatchService re-analyses a file whenever it changes.
type WatchService interface {
	// Watch analyses path once, then again after every change, until ctx
	// is done. Load errors after the first analysis are reported and the
	// watch continues.
	Watch(ctx context.Context, path string, opts AnalyseOptions, fn UpdateFunc) error
}
