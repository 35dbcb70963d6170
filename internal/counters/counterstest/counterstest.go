// Package counterstest provides a conformance suite that every
// driven.Counter implementation must pass.
//
// Strategy packages call Run from their own tests; the registry tests use
// Agree to check that all strategies return identical counts.
package counterstest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
)

// Case is a text with its expected counts.
type Case struct {
	Name      string
	Text      string
	Words     int
	Sentences int
	Syllables int
}

// Cases are the reference inputs shared by all strategies.
var Cases = []Case{
	{
		Name:      "empty",
		Text:      "",
		Words:     0,
		Sentences: 0,
		Syllables: 0,
	},
	{
		Name:      "mixed punctuation",
		Text:      "This is a test.  How many???  Senteeeeeeeeeences are here... there should be 5!  Right?",
		Words:     13,
		Sentences: 5,
		Syllables: 16,
	},
	{
		Name:      "commas and brackets",
		Text:      "sentence, with, lots, of, commas.!  (And some poaren)).  The output is: 7.5.",
		Words:     11,
		Sentences: 4,
		Syllables: 15,
	},
	{
		Name:      "unterminated fragment",
		Text:      "many???  Senteeeeeeeeeences are",
		Words:     3,
		Sentences: 2,
		Syllables: 6,
	},
	{
		Name: "three sentences",
		Text: "Here is a series of test sentences. Your program should " +
			"find 3 sentences, 33 words, and 49 syllables. Not every word will have " +
			"the correct amount of syllables (example, for example), but most of them will.",
		Words:     33,
		Sentences: 3,
		Syllables: 49,
	},
	{
		Name:      "segue",
		Text:      "Segue",
		Words:     1,
		Sentences: 1,
		Syllables: 2,
	},
	{
		Name:      "sentence",
		Text:      "Sentence",
		Words:     1,
		Sentences: 1,
		Syllables: 2,
	},
	{
		Name:      "collapsed terminators",
		Text:      "Sentences?!",
		Words:     1,
		Sentences: 1,
		Syllables: 3,
	},
	{
		Name:      "latin",
		Text:      "Lorem ipsum dolor sit amet, qui ex choro quodsi moderatius, nam dolores explicari forensibus ad.",
		Words:     15,
		Sentences: 1,
		Syllables: 32,
	},
	{
		Name:      "silent e",
		Text:      "like",
		Words:     1,
		Sentences: 1,
		Syllables: 1,
	},
	{
		Name:      "single double-e run",
		Text:      "tree",
		Words:     1,
		Sentences: 1,
		Syllables: 1,
	},
	{
		Name:      "lone e is kept",
		Text:      "e",
		Words:     1,
		Sentences: 1,
		Syllables: 1,
	},
	{
		Name:      "uppercase silent e",
		Text:      "THE CAKE IS A LIE",
		Words:     5,
		Sentences: 1,
		Syllables: 5,
	},
	{
		Name:      "ellipsis",
		Text:      "Wait... What?",
		Words:     2,
		Sentences: 2,
		Syllables: 2,
	},
	{
		Name:      "punctuation only",
		Text:      "???",
		Words:     0,
		Sentences: 1,
		Syllables: 0,
	},
	{
		Name:      "newline separates words",
		Text:      "hello\nworld",
		Words:     2,
		Sentences: 1,
		Syllables: 3,
	},
	{
		Name:      "leading terminators",
		Text:      "...Hi",
		Words:     1,
		Sentences: 2,
		Syllables: 1,
	},
	{
		Name:      "digits split nothing",
		Text:      "3.14 is pi",
		Words:     2,
		Sentences: 2,
		Syllables: 2,
	},
	{
		Name:      "vowel cluster",
		Text:      "queue",
		Words:     1,
		Sentences: 1,
		Syllables: 1,
	},
	{
		Name:      "non-ascii letters are separators",
		Text:      "Café au lait",
		Words:     3,
		Sentences: 1,
		Syllables: 3,
	},
}

// Run checks c against Cases and the general counting properties.
func Run(t *testing.T, c driven.Counter) {
	t.Helper()

	require.NotNil(t, c)
	require.NotEmpty(t, c.Name())

	for _, tc := range Cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Words, c.CountWords(tc.Text), "words")
			assert.Equal(t, tc.Sentences, c.CountSentences(tc.Text), "sentences")
			assert.Equal(t, tc.Syllables, c.CountSyllables(tc.Text), "syllables")
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		for _, tc := range Cases {
			assert.Equal(t, c.CountWords(tc.Text), c.CountWords(tc.Text))
			assert.Equal(t, c.CountSentences(tc.Text), c.CountSentences(tc.Text))
			assert.Equal(t, c.CountSyllables(tc.Text), c.CountSyllables(tc.Text))
		}
	})

	t.Run("non-empty text has a sentence", func(t *testing.T) {
		for _, text := range []string{" ", "a", "1", "\n", "word word", "!", "(", "é"} {
			assert.GreaterOrEqual(t, c.CountSentences(text), 1, "text %q", text)
		}
	})

	if sp, ok := c.(driven.SinglePassCounter); ok {
		t.Run("single pass matches", func(t *testing.T) {
			for _, tc := range Cases {
				want := domain.NewStats(tc.Words, tc.Sentences, tc.Syllables)
				assert.Equal(t, want, sp.Count(tc.Text), "text %q", tc.Text)
			}
		})
	}
}

// Agree asserts that every counter returns the same counts for text.
func Agree(t testing.TB, text string, counters ...driven.Counter) {
	t.Helper()

	if len(counters) < 2 {
		return
	}
	ref := counters[0]
	want := statsOf(ref, text)
	for _, c := range counters[1:] {
		got := statsOf(c, text)
		if got != want {
			t.Errorf("%s and %s disagree on %q: %v vs %v", ref.Name(), c.Name(), text, want, got)
		}
	}
}

func statsOf(c driven.Counter, text string) domain.Stats {
	return domain.NewStats(c.CountWords(text), c.CountSentences(text), c.CountSyllables(text))
}
