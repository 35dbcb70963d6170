package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/legible/internal/core/ports/driven"
	"github.com/custodia-labs/legible/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// DefaultWatchInterval is the minimum gap between two change signals.
const DefaultWatchInterval = 500 * time.Millisecond

// Watcher watches files with fsnotify. Signals are rate limited so an
// editor writing a file in several steps triggers one re-analysis.
type Watcher struct {
	interval time.Duration
}

// NewWatcher creates a watcher emitting at most one signal per interval.
func NewWatcher(interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &Watcher{interval: interval}
}

// Watch starts watching path. The parent directory is watched so that
// editors replacing the file by rename are still seen.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	path = ResolvePath(path)
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	abs = filepath.Clean(abs)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)
	limiter := rate.NewLimiter(rate.Every(w.interval), 1)

	go func() {
		defer close(changes)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if !isChange(event, abs) {
					continue
				}
				if err := limiter.Wait(ctx); err != nil {
					return
				}
				drain(fsw.Events)
				logger.Debug("change detected: %s (%s)", event.Name, event.Op)
				select {
				case changes <- struct{}{}:
				default:
					// A signal is already pending
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}

// isChange reports whether event modifies the watched file.
func isChange(event fsnotify.Event, path string) bool {
	if event.Name == "" || filepath.Clean(event.Name) != path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}

// drain discards events queued while waiting on the limiter.
func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
