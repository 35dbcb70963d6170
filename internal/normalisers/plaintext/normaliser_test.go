package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestSupportedMIMETypes(t *testing.T) {
	mimeTypes := New().SupportedMIMETypes()

	require.NotEmpty(t, mimeTypes)
	assert.Contains(t, mimeTypes, "text/plain")
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 5, New().Priority())
}

func TestNormalise_Success(t *testing.T) {
	normaliser := New()
	ctx := context.Background()

	raw := &domain.RawDocument{
		URI:      "/path/to/document.txt",
		MIMEType: "text/plain",
		Content:  []byte("This is plain text content."),
	}

	doc, err := normaliser.Normalise(ctx, raw)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, raw.URI, doc.URI)
	assert.Equal(t, "document", doc.Title)
	assert.Equal(t, "This is plain text content.", doc.Content)
	assert.Equal(t, "text/plain", doc.Metadata["mime_type"])
	assert.False(t, doc.CreatedAt.IsZero())
}

func TestNormalise_NilDocument(t *testing.T) {
	doc, err := New().Normalise(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, doc)
}

func TestNormalise_EmptyContent(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/path/to/empty.txt",
		MIMEType: "text/plain",
		Content:  []byte(""),
	}

	doc, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Empty(t, doc.Content)
}

func TestNormalise_ContentUnchanged(t *testing.T) {
	content := "  Odd   spacing...\n\n\tand tabs?!  "
	raw := &domain.RawDocument{URI: "x.txt", MIMEType: "text/plain", Content: []byte(content)}

	doc, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, content, doc.Content)
}

func TestTitleFromURI(t *testing.T) {
	tests := []struct {
		name          string
		uri           string
		expectedTitle string
	}{
		{"simple filename", "/path/to/document.txt", "document"},
		{"underscores to spaces", "/path/my_document_name.txt", "my document name"},
		{"dashes to spaces", "/path/war-and-peace.txt", "war and peace"},
		{"stdin has no title", "-", ""},
		{"literal text has no title", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedTitle, TitleFromURI(tc.uri))
		})
	}
}

func TestNormalise_MetadataPreserved(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/path/to/document.txt",
		MIMEType: "text/plain",
		Content:  []byte("content"),
		Metadata: map[string]any{
			"title":      "Custom Title",
			"line_count": 100,
		},
	}

	doc, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, "Custom Title", doc.Title)
	assert.Equal(t, 100, doc.Metadata["line_count"])
	assert.Equal(t, "text/plain", doc.Metadata["mime_type"])
	// The raw metadata map is not shared.
	assert.NotContains(t, raw.Metadata, "mime_type")
}

func TestCopyMetadata_Nil(t *testing.T) {
	assert.Nil(t, CopyMetadata(nil))
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = (*Normaliser)(nil)
}
