// Package markdown implements a normaliser that extracts readable prose
// from Markdown, so markup characters do not inflate the counts.
package markdown

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
	"github.com/custodia-labs/legible/internal/normalisers/plaintext"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Markdown documents.
type Normaliser struct {
	md goldmark.Markdown
}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{md: goldmark.New()}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Format-specific, higher than plaintext
}

// Normalise parses the Markdown and keeps only prose: headings,
// paragraphs, list items and block quotes. Code, images and raw HTML are
// dropped. Blocks are separated by blank lines.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	root := n.md.Parser().Parse(text.NewReader(raw.Content))
	content, heading := ExtractText(root, raw.Content)

	title := heading
	if title == "" {
		title = plaintext.TitleFromMetadataOrURI(raw)
	}

	doc := &domain.Document{
		ID:        uuid.New().String(),
		URI:       raw.URI,
		Title:     title,
		Content:   content,
		Metadata:  plaintext.CopyMetadata(raw.Metadata),
		CreatedAt: time.Now(),
	}

	if doc.Metadata == nil {
		doc.Metadata = make(map[string]any)
	}
	doc.Metadata["mime_type"] = raw.MIMEType
	doc.Metadata["format"] = "markdown"

	return doc, nil
}

// ExtractText walks a parsed Markdown tree and returns its prose and the
// text of the first level-1 heading, if any.
func ExtractText(root ast.Node, source []byte) (content, title string) {
	var blocks []string
	var buf bytes.Buffer

	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock,
			ast.KindRawHTML, ast.KindAutoLink, ast.KindCodeSpan, ast.KindImage:
			return ast.WalkSkipChildren, nil
		}

		switch n := node.(type) {
		case *ast.Text:
			if entering {
				buf.Write(n.Segment.Value(source))
				if n.SoftLineBreak() || n.HardLineBreak() {
					buf.WriteByte('\n')
				}
			}
		case *ast.String:
			if entering {
				buf.Write(n.Value)
			}
		case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
			if !entering {
				block := strings.TrimSpace(buf.String())
				buf.Reset()
				if block == "" {
					break
				}
				if h, ok := n.(*ast.Heading); ok && h.Level == 1 && title == "" {
					title = block
				}
				blocks = append(blocks, block)
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(blocks, "\n\n"), title
}
