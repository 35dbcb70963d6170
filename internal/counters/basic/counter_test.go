package basic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/counters/counterstest"
)

func TestCounter_Conformance(t *testing.T) {
	counterstest.Run(t, New())
}

func TestCounter_Name(t *testing.T) {
	assert.Equal(t, domain.StrategyBasic, New().Name())
}

func TestCounter_ZeroValue(t *testing.T) {
	var c Counter
	assert.Equal(t, 2, c.CountWords("zero value"))
}

func TestSyllablesInWord(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"like", 1},
		{"tree", 1},
		{"the", 1},
		{"e", 1},
		{"Segue", 2},
		{"rhythm", 1},
		{"bcd", 0},
		{"queue", 1},
		{"CAKE", 1},
		{"poaren", 2},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, syllablesInWord(tt.word))
		})
	}
}

func BenchmarkCounter(b *testing.B) {
	text := strings.Repeat(counterstest.Cases[1].Text+" ", 500)
	c := New()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = domain.NewStats(c.CountWords(text), c.CountSentences(text), c.CountSyllables(text))
	}
}
