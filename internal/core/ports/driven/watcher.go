package driven

import "context"

// FileWatcher reports changes to a single file.
type FileWatcher interface {
	// Watch signals on the returned channel each time path changes.
	// Bursts of changes may be coalesced into one signal. The channel is
	// closed when ctx is done or the watch fails.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
