package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
	"github.com/custodia-labs/legible/internal/counters/efficient"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestSupportedMIMETypes(t *testing.T) {
	mimeTypes := New().SupportedMIMETypes()

	assert.Contains(t, mimeTypes, "text/markdown")
	assert.Contains(t, mimeTypes, "text/x-markdown")
	assert.Len(t, mimeTypes, 2)
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 50, New().Priority())
}

func TestNormalise_Success(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/path/to/document.md",
		MIMEType: "text/markdown",
		Content:  []byte("# Hello World\n\nThis is a test."),
	}

	doc, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, raw.URI, doc.URI)
	assert.Equal(t, "Hello World", doc.Title) // Title from first H1
	assert.Equal(t, "Hello World\n\nThis is a test.", doc.Content)
	assert.Equal(t, "text/markdown", doc.Metadata["mime_type"])
	assert.Equal(t, "markdown", doc.Metadata["format"])
}

func TestNormalise_NilDocument(t *testing.T) {
	doc, err := New().Normalise(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, doc)
}

func TestNormalise_EmptyContent(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/path/to/empty.md",
		MIMEType: "text/markdown",
		Content:  []byte(""),
	}

	doc, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Empty(t, doc.Content)
	assert.Equal(t, "empty", doc.Title)
}

func TestNormalise_TitleExtraction(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		uri           string
		expectedTitle string
	}{
		{
			name:          "H1 heading",
			content:       "# My Document\n\nContent here.",
			uri:           "/doc.md",
			expectedTitle: "My Document",
		},
		{
			name:          "H1 with extra spaces",
			content:       "#   Spaced Title   \n\nContent",
			uri:           "/doc.md",
			expectedTitle: "Spaced Title",
		},
		{
			name:          "no heading - fallback to filename",
			content:       "Just some content without heading.",
			uri:           "/my_document.md",
			expectedTitle: "my document",
		},
		{
			name:          "H2 first - fallback to filename",
			content:       "## Second Level\n\nNo H1.",
			uri:           "/readme.md",
			expectedTitle: "readme",
		},
		{
			name:          "emphasis inside heading",
			content:       "# The *Real* Title",
			uri:           "/doc.md",
			expectedTitle: "The Real Title",
		},
	}

	normaliser := New()
	ctx := context.Background()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := &domain.RawDocument{
				URI:      tc.uri,
				MIMEType: "text/markdown",
				Content:  []byte(tc.content),
			}

			doc, err := normaliser.Normalise(ctx, raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedTitle, doc.Title)
		})
	}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "headings become blocks",
			input:    "# Title\n## Subtitle\n### Third",
			expected: "Title\n\nSubtitle\n\nThird",
		},
		{
			name:     "bold removed",
			input:    "This is **bold** text",
			expected: "This is bold text",
		},
		{
			name:     "links keep their label",
			input:    "Click [here](https://example.com)",
			expected: "Click here",
		},
		{
			name:     "images removed",
			input:    "See ![alt text](image.png) here",
			expected: "See  here",
		},
		{
			name:     "code blocks removed",
			input:    "Before\n```go\ncode here\n```\nAfter",
			expected: "Before\n\nAfter",
		},
		{
			name:     "inline code removed",
			input:    "Use `code` here",
			expected: "Use  here",
		},
		{
			name:     "blockquotes cleaned",
			input:    "> This is a quote",
			expected: "This is a quote",
		},
		{
			name:     "list markers removed",
			input:    "- Item 1\n- Item 2",
			expected: "Item 1\n\nItem 2",
		},
		{
			name:     "numbered list markers removed",
			input:    "1. First\n2. Second",
			expected: "First\n\nSecond",
		},
		{
			name:     "raw html dropped",
			input:    "<div>\nhidden\n</div>\n\nShown.",
			expected: "Shown.",
		},
		{
			name:     "soft line breaks kept as whitespace",
			input:    "line one\nline two",
			expected: "line one\nline two",
		},
	}

	md := goldmark.New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			source := []byte(tc.input)
			root := md.Parser().Parse(text.NewReader(source))
			content, _ := ExtractText(root, source)
			assert.Equal(t, tc.expected, content)
		})
	}
}

func TestNormalise_MarkupDoesNotInflateCounts(t *testing.T) {
	markdown := "# Intro\n\n" +
		"Read the *docs*. Then [try it](https://example.com/a.b.c)!\n\n" +
		"```sh\nmake build. make test.\n```\n"

	raw := &domain.RawDocument{URI: "/intro.md", MIMEType: "text/markdown", Content: []byte(markdown)}

	doc, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)

	stats := efficient.New().Count(doc.Content)
	// The URL and the code block contribute no words or terminators.
	assert.Equal(t, 7, stats.Words)
	assert.Equal(t, 2, stats.Sentences)
}

func TestNormalise_MetadataPreserved(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/path/to/document.md",
		MIMEType: "text/markdown",
		Content:  []byte("Some content"),
		Metadata: map[string]any{"author": "someone"},
	}

	doc, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "someone", doc.Metadata["author"])
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = (*Normaliser)(nil)
}

func BenchmarkNormalise(b *testing.B) {
	normaliser := New()
	ctx := context.Background()
	raw := &domain.RawDocument{
		URI:      "/bench.md",
		MIMEType: "text/markdown",
		Content:  []byte("# Title\n\nSome **bold** prose with a [link](http://x).\n\n- one\n- two\n"),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = normaliser.Normalise(ctx, raw)
	}
}
