package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatchUpdate_FirstUpdateHasNoDelta(t *testing.T) {
	u := WatchUpdate{Current: Report{Stats: NewStats(10, 2, 12)}}

	assert.Zero(t, u.ScoreDelta())
	assert.Zero(t, u.WordDelta())
}

func TestWatchUpdate_Deltas(t *testing.T) {
	prev := Report{Stats: NewStats(10, 2, 12)}
	u := WatchUpdate{Current: Report{Stats: NewStats(12, 3, 13)}, Previous: &prev}

	assert.Equal(t, 2, u.WordDelta())
	assert.InDelta(t, u.Current.Stats.Score-prev.Stats.Score, u.ScoreDelta(), 1e-9)
}

func TestWatchUpdate_UndefinedScoreHasNoDelta(t *testing.T) {
	prev := Report{Stats: NewStats(0, 0, 0)}
	u := WatchUpdate{Current: Report{Stats: NewStats(12, 3, 13)}, Previous: &prev}

	assert.Zero(t, u.ScoreDelta())
	assert.Equal(t, 12, u.WordDelta())
}
