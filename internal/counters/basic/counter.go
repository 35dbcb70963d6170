// Package basic implements the regular-expression counting strategy.
//
// Each rule is expressed as the pattern that defines it, and counts are
// the number of non-overlapping matches. It is the reference strategy:
// simple to audit, but it scans the text once per rule and allocates the
// word list when counting syllables.
package basic

import (
	"regexp"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
)

// Ensure Counter implements the interface.
var _ driven.Counter = (*Counter)(nil)

var (
	wordPattern       = regexp.MustCompile(`[a-zA-Z]+`)
	terminatorPattern = regexp.MustCompile(`[.!?]+`)
	vowelRunPattern   = regexp.MustCompile(`[aeiouyAEIOUY]+`)
)

// Counter counts with regular expressions. The zero value is ready to use.
type Counter struct{}

// New creates a regular-expression counter.
func New() *Counter {
	return &Counter{}
}

// Name returns the strategy name.
func (c *Counter) Name() string {
	return domain.StrategyBasic
}

// CountWords counts maximal runs of ASCII letters.
func (c *Counter) CountWords(text string) int {
	return countMatches(wordPattern, text)
}

// CountSentences counts runs of terminators, plus a trailing fragment.
func (c *Counter) CountSentences(text string) int {
	count := countMatches(terminatorPattern, text)
	if text != "" && !isTerminator(text[len(text)-1]) {
		count++
	}
	return count
}

// CountSyllables sums the syllables of every word.
// Words are re-tokenised here so vowel runs never cross a word boundary.
func (c *Counter) CountSyllables(text string) int {
	total := 0
	for _, word := range wordPattern.FindAllString(text, -1) {
		total += syllablesInWord(word)
	}
	return total
}

func syllablesInWord(word string) int {
	runs := vowelRunPattern.FindAllStringIndex(word, -1)
	n := len(runs)
	if n > 1 && endsInE(word) {
		last := runs[n-1]
		if last[1]-last[0] == 1 {
			n--
		}
	}
	return n
}

func countMatches(re *regexp.Regexp, text string) int {
	return len(re.FindAllStringIndex(text, -1))
}

func endsInE(word string) bool {
	last := word[len(word)-1]
	return last == 'e' || last == 'E'
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}
