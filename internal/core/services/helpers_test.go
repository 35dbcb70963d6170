package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legible/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/counters"
	"github.com/custodia-labs/legible/internal/normalisers"
)

const sampleText = "This is a test.  How many???  Senteeeeeeeeeences are here... there should be 5!  Right?"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newTestAnalysisService() *AnalysisService {
	return NewAnalysisService(
		counters.NewDefaultRegistry(),
		normalisers.NewDefaultRegistry(),
		filesystem.NewLoader(),
		domain.AnalysisSettings{Strategy: domain.StrategyEfficient, Workers: 2},
	)
}

// failingLoader fails on the given call (1-based) and records requested sizes.
type failingLoader struct {
	mu     sync.Mutex
	failOn int
	calls  []int
	inner  *filesystem.Loader
}

var errDiskGone = errors.New("disk gone")

func (l *failingLoader) Load(ctx context.Context, path string, maxChars int) (*domain.LoadResult, error) {
	l.mu.Lock()
	l.calls = append(l.calls, maxChars)
	n := len(l.calls)
	l.mu.Unlock()

	if n == l.failOn {
		return nil, errDiskGone
	}
	return l.inner.Load(ctx, path, maxChars)
}

// chanWatcher signals whatever the test pushes into ch.
type chanWatcher struct {
	ch  chan struct{}
	err error
}

func (w *chanWatcher) Watch(ctx context.Context, _ string) (<-chan struct{}, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make(chan struct{})
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-w.ch:
				if !ok {
					return
				}
				select {
				case out <- struct{}{}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// mismatchCounter agrees with nothing: it reports one extra word.
type mismatchCounter struct{}

func (mismatchCounter) Name() string                   { return "broken" }
func (mismatchCounter) CountWords(text string) int     { return len(text) + 1 }
func (mismatchCounter) CountSentences(text string) int { return 1 }
func (mismatchCounter) CountSyllables(text string) int { return 0 }
