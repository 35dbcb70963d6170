package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legible/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driving"
	"github.com/custodia-labs/legible/internal/counters"
	"github.com/custodia-labs/legible/internal/counters/basic"
	"github.com/custodia-labs/legible/internal/normalisers"
)

func TestAnalysisService_Stats(t *testing.T) {
	service := newTestAnalysisService()

	for _, strategy := range []string{domain.StrategyBasic, domain.StrategyEfficient, ""} {
		t.Run("strategy="+strategy, func(t *testing.T) {
			stats, err := service.Stats(sampleText, strategy)
			require.NoError(t, err)

			assert.Equal(t, 13, stats.Words)
			assert.Equal(t, 5, stats.Sentences)
			assert.Equal(t, 16, stats.Syllables)
			assert.InDelta(t, domain.FleschScore(13, 5, 16), stats.Score, 1e-9)
		})
	}
}

func TestAnalysisService_Stats_EmptyText(t *testing.T) {
	stats, err := newTestAnalysisService().Stats("", domain.StrategyBasic)
	require.NoError(t, err)

	assert.Equal(t, domain.Stats{}, stats)
	assert.False(t, stats.ScoreDefined())
}

func TestAnalysisService_Stats_UnknownStrategy(t *testing.T) {
	_, err := newTestAnalysisService().Stats("text", "quantum")
	assert.ErrorIs(t, err, domain.ErrUnknownStrategy)
}

func TestAnalysisService_AnalyseDocument(t *testing.T) {
	doc := &domain.Document{URI: "/tmp/x.txt", Title: "x", Content: "Segue"}

	report, err := newTestAnalysisService().AnalyseDocument(context.Background(), doc, domain.StrategyBasic)
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "/tmp/x.txt", report.URI)
	assert.Equal(t, "x", report.Title)
	assert.Equal(t, domain.StrategyBasic, report.Strategy)
	assert.Equal(t, 5, report.Chars)
	assert.Equal(t, domain.NewStats(1, 1, 2), report.Stats)
	assert.GreaterOrEqual(t, int64(report.Elapsed), int64(0))

	// The document is not mutated
	assert.Equal(t, "Segue", doc.Content)
}

func TestAnalysisService_AnalyseDocument_Nil(t *testing.T) {
	_, err := newTestAnalysisService().AnalyseDocument(context.Background(), nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnalysisService_AnalyseDocument_UsesDefaultStrategy(t *testing.T) {
	service := NewAnalysisService(
		counters.NewDefaultRegistry(), normalisers.NewDefaultRegistry(), filesystem.NewLoader(),
		domain.AnalysisSettings{Strategy: domain.StrategyBasic},
	)

	report, err := service.AnalyseDocument(context.Background(), &domain.Document{Content: "hi"}, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyBasic, report.Strategy)
}

func TestAnalysisService_AnalyseFile(t *testing.T) {
	path := writeFile(t, "sample.txt", sampleText)

	report, err := newTestAnalysisService().AnalyseFile(context.Background(), path, driving.AnalyseOptions{})
	require.NoError(t, err)

	assert.Equal(t, path, report.URI)
	assert.Equal(t, "sample", report.Title)
	assert.Equal(t, domain.StrategyEfficient, report.Strategy)
	assert.Equal(t, domain.NewStats(13, 5, 16), report.Stats)
}

func TestAnalysisService_AnalyseFile_MaxChars(t *testing.T) {
	path := writeFile(t, "sample.txt", sampleText)

	report, err := newTestAnalysisService().AnalyseFile(context.Background(), path,
		driving.AnalyseOptions{MaxChars: 15})
	require.NoError(t, err)

	// "This is a test."
	assert.Equal(t, 15, report.Chars)
	assert.Equal(t, domain.NewStats(4, 1, 4), report.Stats)
}

func TestAnalysisService_AnalyseFile_Markdown(t *testing.T) {
	path := writeFile(t, "notes.md", "# Notes\n\nRead the [manual](https://example.com/a.b.c).\n")

	report, err := newTestAnalysisService().AnalyseFile(context.Background(), path, driving.AnalyseOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Notes", report.Title)
	// Notes, Read, the, manual; the URL does not count
	assert.Equal(t, 4, report.Stats.Words)
	assert.Equal(t, 1, report.Stats.Sentences)
}

func TestAnalysisService_AnalyseFile_UnknownStrategyFailsBeforeLoad(t *testing.T) {
	loader := &failingLoader{inner: filesystem.NewLoader()}
	service := NewAnalysisService(counters.NewDefaultRegistry(), normalisers.NewDefaultRegistry(), loader,
		domain.AnalysisSettings{})

	_, err := service.AnalyseFile(context.Background(), "whatever.txt", driving.AnalyseOptions{Strategy: "nope"})

	assert.ErrorIs(t, err, domain.ErrUnknownStrategy)
	assert.Empty(t, loader.calls)
}

func TestAnalysisService_AnalyseFile_Missing(t *testing.T) {
	_, err := newTestAnalysisService().AnalyseFile(context.Background(), "/does/not/exist.txt",
		driving.AnalyseOptions{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnalysisService_AnalyseFiles_PreservesOrder(t *testing.T) {
	texts := []string{"One.", "Two words.", "Three words here.", "Four words are here.", "Segue"}
	var paths []string
	for i, text := range texts {
		paths = append(paths, writeFile(t, strings.Repeat("f", i+1)+".txt", text))
	}

	reports, err := newTestAnalysisService().AnalyseFiles(context.Background(), paths,
		driving.AnalyseOptions{Workers: 3})
	require.NoError(t, err)
	require.Len(t, reports, len(paths))

	for i, report := range reports {
		assert.Equal(t, paths[i], report.URI)
	}
	assert.Equal(t, 1, reports[0].Stats.Words)
	assert.Equal(t, 4, reports[3].Stats.Words)
}

func TestAnalysisService_AnalyseFiles_FailsFast(t *testing.T) {
	good := writeFile(t, "good.txt", "fine.")

	reports, err := newTestAnalysisService().AnalyseFiles(context.Background(),
		[]string{good, "/does/not/exist.txt"}, driving.AnalyseOptions{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, reports)
}

func TestAnalysisService_AnalyseFiles_Empty(t *testing.T) {
	reports, err := newTestAnalysisService().AnalyseFiles(context.Background(), nil, driving.AnalyseOptions{})
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestAnalysisService_Compare_Agree(t *testing.T) {
	results, err := newTestAnalysisService().Compare(sampleText)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, results[domain.StrategyBasic], results[domain.StrategyEfficient])
}

func TestAnalysisService_Compare_Mismatch(t *testing.T) {
	registry := counters.NewRegistry()
	registry.Register(basic.New())
	registry.Register(mismatchCounter{})
	service := NewAnalysisService(registry, normalisers.NewDefaultRegistry(), filesystem.NewLoader(),
		domain.AnalysisSettings{})

	results, err := service.Compare("hello")

	assert.ErrorIs(t, err, domain.ErrStrategyMismatch)
	assert.Contains(t, err.Error(), "broken")
	assert.Len(t, results, 2)
}

func TestAnalysisService_CompareFile(t *testing.T) {
	path := writeFile(t, "notes.md", "# Notes\n\nShort `code` here. Then more!\n")

	results, err := newTestAnalysisService().CompareFile(context.Background(), path, 0)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, domain.NewStats(5, 2, 6), results[domain.StrategyEfficient])
	assert.Equal(t, results[domain.StrategyBasic], results[domain.StrategyEfficient])
}

func TestAnalysisService_CompareFile_Missing(t *testing.T) {
	_, err := newTestAnalysisService().CompareFile(context.Background(), "/no/such/file.txt", 0)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnalysisService_Strategies(t *testing.T) {
	assert.Equal(t, []string{"basic", "efficient"}, newTestAnalysisService().Strategies())
}

func TestComputeStats_PlainCounter(t *testing.T) {
	stats := computeStats(basic.New(), "Sentences?!")
	assert.Equal(t, domain.NewStats(1, 1, 3), stats)
}
