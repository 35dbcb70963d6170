package domain

import (
	"fmt"
	"time"
)

// Flesch Reading Ease coefficients.
const (
	fleschBase           = 206.835
	fleschSentenceWeight = 1.015
	fleschSyllableWeight = 84.6
)

// FleschScore combines the three counts into a Flesch Reading Ease score:
//
//	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//
// When words or sentences is zero the score is not defined and 0 is
// returned. Callers that need to tell the two apart use Stats.ScoreDefined.
func FleschScore(words, sentences, syllables int) float64 {
	if words <= 0 || sentences <= 0 {
		return 0
	}
	w := float64(words)
	return fleschBase -
		fleschSentenceWeight*(w/float64(sentences)) -
		fleschSyllableWeight*(float64(syllables)/w)
}

// Stats holds the readability counts for one text.
type Stats struct {
	Words     int     `json:"words" yaml:"words"`
	Sentences int     `json:"sentences" yaml:"sentences"`
	Syllables int     `json:"syllables" yaml:"syllables"`
	Score     float64 `json:"score" yaml:"score"`
}

// NewStats builds Stats from raw counts and fills in the score.
func NewStats(words, sentences, syllables int) Stats {
	return Stats{
		Words:     words,
		Sentences: sentences,
		Syllables: syllables,
		Score:     FleschScore(words, sentences, syllables),
	}
}

// ScoreDefined reports whether Score came from the formula rather than
// the zero-denominator fallback.
func (s Stats) ScoreDefined() bool {
	return s.Words > 0 && s.Sentences > 0
}

// String returns a compact one-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("words=%d sentences=%d syllables=%d score=%.2f",
		s.Words, s.Sentences, s.Syllables, s.Score)
}

// Report is the result of analysing one document with one strategy.
type Report struct {
	// ID is the unique identifier for this analysis run.
	ID string `json:"id" yaml:"id"`

	// URI is the analysed document's location.
	URI string `json:"uri,omitempty" yaml:"uri,omitempty"`

	// Title is the analysed document's title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Strategy is the name of the counting strategy used.
	Strategy string `json:"strategy" yaml:"strategy"`

	// Chars is the number of characters analysed.
	Chars int `json:"chars" yaml:"chars"`

	// Stats holds the counts and score.
	Stats Stats `json:"stats" yaml:"stats"`

	// Elapsed is the wall-clock time spent counting.
	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed"`
}
