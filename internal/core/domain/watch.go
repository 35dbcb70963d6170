package domain

// WatchUpdate is emitted each time a watched document is re-analysed.
type WatchUpdate struct {
	// Current is the report for the latest content.
	Current Report `json:"current" yaml:"current"`

	// Previous is the report before the change, nil on the first update.
	Previous *Report `json:"previous,omitempty" yaml:"previous,omitempty"`
}

// ScoreDelta returns how much the score moved since the previous report.
// It is 0 on the first update or when either score is undefined.
func (u WatchUpdate) ScoreDelta() float64 {
	if u.Previous == nil || !u.Previous.Stats.ScoreDefined() || !u.Current.Stats.ScoreDefined() {
		return 0
	}
	return u.Current.Stats.Score - u.Previous.Stats.Score
}

// WordDelta returns the change in word count since the previous report.
func (u WatchUpdate) WordDelta() int {
	if u.Previous == nil {
		return 0
	}
	return u.Current.Stats.Words - u.Previous.Stats.Words
}
