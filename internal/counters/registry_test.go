package counters

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
	"github.com/custodia-labs/legible/internal/counters/counterstest"
)

type stubCounter struct{ name string }

func (s stubCounter) Name() string              { return s.name }
func (s stubCounter) CountWords(string) int     { return 0 }
func (s stubCounter) CountSentences(string) int { return 0 }
func (s stubCounter) CountSyllables(string) int { return 0 }

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(stubCounter{name: "stub"})

	c, err := r.Get("stub")
	require.NoError(t, err)
	assert.Equal(t, "stub", c.Name())
	assert.True(t, r.Has("stub"))
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()

	c, err := r.Get("missing")

	assert.Nil(t, c)
	assert.ErrorIs(t, err, domain.ErrUnknownStrategy)
	assert.Contains(t, err.Error(), `"missing"`)
	assert.False(t, r.Has("missing"))
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(stubCounter{name: "zeta"})
	r.Register(stubCounter{name: "alpha"})
	r.Register(stubCounter{name: "mid"})

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}

func TestRegistry_ReplaceSameName(t *testing.T) {
	r := NewRegistry()
	r.Register(stubCounter{name: "dup"})
	r.Register(stubCounter{name: "dup"})

	assert.Len(t, r.Names(), 1)
}

func TestRegisterDefaults(t *testing.T) {
	r := NewDefaultRegistry()

	assert.Equal(t, []string{domain.StrategyBasic, domain.StrategyEfficient}, r.Names())
}

func defaultCounters(t testing.TB) []driven.Counter {
	t.Helper()
	r := NewDefaultRegistry()
	out := make([]driven.Counter, 0, len(r.Names()))
	for _, name := range r.Names() {
		c, err := r.Get(name)
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestStrategiesAgree_ReferenceCases(t *testing.T) {
	counters := defaultCounters(t)
	for _, tc := range counterstest.Cases {
		counterstest.Agree(t, tc.Text, counters...)
	}
}

// The alphabet is weighted towards the characters the rules care about.
const agreementAlphabet = "aeiouyAEIOUYbcdstzBXe e.!?..,;:- \n\t0123456789()'\"é"

func TestStrategiesAgree_RandomText(t *testing.T) {
	counters := defaultCounters(t)
	rng := rand.New(rand.NewPCG(1, 2))
	alphabet := []rune(agreementAlphabet)

	for i := 0; i < 2000; i++ {
		var b strings.Builder
		n := rng.IntN(64)
		for j := 0; j < n; j++ {
			b.WriteRune(alphabet[rng.IntN(len(alphabet))])
		}
		counterstest.Agree(t, b.String(), counters...)
	}
}

func FuzzStrategiesAgree(f *testing.F) {
	for _, tc := range counterstest.Cases {
		f.Add(tc.Text)
	}
	counters := defaultCounters(f)

	f.Fuzz(func(t *testing.T, text string) {
		counterstest.Agree(t, text, counters...)
		for _, c := range counters {
			if text != "" {
				assert.GreaterOrEqual(t, c.CountSentences(text), 1)
			}
			assert.GreaterOrEqual(t, c.CountWords(text), 0)
			assert.LessOrEqual(t, c.CountSyllables(text), len(text))
		}
	})
}
