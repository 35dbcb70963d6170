package driven

import "github.com/custodia-labs/legible/internal/core/domain"

// Counter counts the readability units of a text.
// Implementations must be pure: the same text always yields the same
// counts, and no state survives between calls. Counters are therefore safe
// for concurrent use.
type Counter interface {
	// Name returns the strategy name the counter is registered under.
	Name() string

	// CountWords returns the number of maximal runs of ASCII letters.
	CountWords(text string) int

	// CountSentences returns the number of runs of '.', '!' or '?', plus
	// one if the text is non-empty and does not end in one of them.
	CountSentences(text string) int

	// CountSyllables returns the number of vowel runs per word, summed,
	// with a lone trailing 'e' dropped from words that have other runs.
	CountSyllables(text string) int
}

// CounterRegistry looks up counting strategies by name.
type CounterRegistry interface {
	// Get returns the counter registered under name.
	// Returns domain.ErrUnknownStrategy if none is registered.
	Get(name string) (Counter, error)

	// Names returns all registered strategy names, sorted.
	Names() []string
}

// SinglePassCounter is implemented by counters that can produce all three
// counts from one scan. Callers should prefer Count when it is available.
type SinglePassCounter interface {
	Counter

	// Count returns words, sentences and syllables in one pass, with the
	// score composed.
	Count(text string) domain.Stats
}
