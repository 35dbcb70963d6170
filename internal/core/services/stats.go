package services

import (
	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
)

// computeStats runs c over text. Counters that can produce all three
// counts in one scan do so; others run each count independently.
func computeStats(c driven.Counter, text string) domain.Stats {
	if sp, ok := c.(driven.SinglePassCounter); ok {
		return sp.Count(text)
	}
	return domain.NewStats(
		c.CountWords(text),
		c.CountSentences(text),
		c.CountSyllables(text),
	)
}
