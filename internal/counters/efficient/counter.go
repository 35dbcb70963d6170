// Package efficient implements the single-pass counting strategy.
//
// The text is scanned byte by byte with a byte-class table; words,
// terminator runs and vowel runs are tracked by a small state machine, so
// every count is produced in one pass without allocation.
package efficient

import (
	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
)

// Ensure Counter implements the interfaces.
var (
	_ driven.Counter           = (*Counter)(nil)
	_ driven.SinglePassCounter = (*Counter)(nil)
)

const (
	classLetter uint8 = 1 << iota
	classVowel
	classTerminator
)

var classes = buildClasses()

func buildClasses() [256]uint8 {
	var t [256]uint8
	for b := 'a'; b <= 'z'; b++ {
		t[b] |= classLetter
		t[b-'a'+'A'] |= classLetter
	}
	for _, v := range "aeiouyAEIOUY" {
		t[v] |= classVowel
	}
	for _, p := range ".!?" {
		t[p] |= classTerminator
	}
	return t
}

// Counter counts with a single byte scan. The zero value is ready to use.
type Counter struct{}

// New creates a single-pass counter.
func New() *Counter {
	return &Counter{}
}

// Name returns the strategy name.
func (c *Counter) Name() string {
	return domain.StrategyEfficient
}

// CountWords counts maximal runs of ASCII letters.
func (c *Counter) CountWords(text string) int {
	words := 0
	inWord := false
	for i := 0; i < len(text); i++ {
		if classes[text[i]]&classLetter != 0 {
			if !inWord {
				words++
				inWord = true
			}
		} else {
			inWord = false
		}
	}
	return words
}

// CountSentences counts runs of terminators, plus a trailing fragment.
func (c *Counter) CountSentences(text string) int {
	sentences := 0
	inRun := false
	for i := 0; i < len(text); i++ {
		if classes[text[i]]&classTerminator != 0 {
			if !inRun {
				sentences++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	if len(text) > 0 && !inRun {
		sentences++
	}
	return sentences
}

// CountSyllables sums the syllables of every word.
func (c *Counter) CountSyllables(text string) int {
	return c.Count(text).Syllables
}

// Count produces all three counts in one pass and composes the score.
func (c *Counter) Count(text string) domain.Stats {
	var s scanner
	for i := 0; i < len(text); i++ {
		s.step(text[i])
	}
	return s.finish(len(text) > 0)
}

// scanner holds the state of one Count call.
type scanner struct {
	words, sentences, syllables int

	inWord, inVowel, inTerm bool

	// Per-word state, valid while inWord.
	vowelRuns  int
	lastRunLen int
	lastLetter byte
}

func (s *scanner) step(b byte) {
	class := classes[b]

	if class&classLetter != 0 {
		if !s.inWord {
			s.words++
			s.inWord = true
			s.vowelRuns = 0
		}
		if class&classVowel != 0 {
			if !s.inVowel {
				s.vowelRuns++
				s.lastRunLen = 0
				s.inVowel = true
			}
			s.lastRunLen++
		} else {
			s.inVowel = false
		}
		s.lastLetter = b
	} else {
		if s.inWord {
			s.endWord()
		}
		s.inVowel = false
	}

	if class&classTerminator != 0 {
		if !s.inTerm {
			s.sentences++
			s.inTerm = true
		}
	} else {
		s.inTerm = false
	}
}

func (s *scanner) endWord() {
	n := s.vowelRuns
	// A lone trailing e is silent when the word has another vowel run.
	if n > 1 && (s.lastLetter == 'e' || s.lastLetter == 'E') && s.lastRunLen == 1 {
		n--
	}
	s.syllables += n
	s.inWord = false
}

func (s *scanner) finish(nonEmpty bool) domain.Stats {
	if s.inWord {
		s.endWord()
	}
	if nonEmpty && !s.inTerm {
		s.sentences++
	}
	return domain.NewStats(s.words, s.sentences, s.syllables)
}
