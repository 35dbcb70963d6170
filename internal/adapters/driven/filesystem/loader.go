package filesystem

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
	"github.com/custodia-labs/legible/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// ctxCheckInterval is how many characters are read between context checks.
const ctxCheckInterval = 1 << 14

// Loader reads document prefixes from the filesystem.
// Standard input is read once and later loads of "-" are served from
// that copy, so repeated prefixes of a pipe see the same text.
type Loader struct {
	stdin io.Reader

	mu        sync.Mutex
	stdinData []byte
	stdinErr  error
	stdinRead bool
}

// NewLoader creates a loader that reads "-" from os.Stdin.
func NewLoader() *Loader {
	return &Loader{stdin: os.Stdin}
}

// NewLoaderWithStdin creates a loader that reads "-" from r.
func NewLoaderWithStdin(r io.Reader) *Loader {
	return &Loader{stdin: r}
}

// Load reads at most maxChars characters from path.
func (l *Loader) Load(ctx context.Context, path string, maxChars int) (*domain.LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path = ResolvePath(path)
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	var r io.Reader
	if path == StdinPath {
		data, err := l.readStdin()
		if err != nil {
			return nil, fmt.Errorf("load stdin: %w", err)
		}
		r = bytes.NewReader(data)
	} else {
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %w", domain.ErrNotFound, err)
			}
			return nil, fmt.Errorf("load document: %w", err)
		}
		defer f.Close()
		r = f
	}

	content, chars, err := readChars(ctx, bufio.NewReader(r), maxChars)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	result := &domain.LoadResult{
		Raw: domain.RawDocument{
			URI:      path,
			MIMEType: DetectMIMEType(path),
			Content:  content,
			Metadata: map[string]any{
				"bytes": len(content),
				"chars": chars,
			},
		},
		Chars:     chars,
		Requested: maxChars,
		Short:     maxChars > 0 && chars < maxChars,
	}

	if result.Short {
		logger.Notice("end of file reached at %d characters (%s)", chars, path)
	}
	logger.Debug("loaded %d characters (%d bytes) from %s", chars, len(content), path)
	return result, nil
}

// readStdin returns the whole of standard input, reading it on first use.
func (l *Loader) readStdin() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.stdinRead {
		l.stdinData, l.stdinErr = io.ReadAll(l.stdin)
		l.stdinRead = true
	}
	return l.stdinData, l.stdinErr
}

// readChars reads up to maxChars runes, or everything when maxChars <= 0.
// Invalid UTF-8 bytes count as one character each and are kept as-is.
func readChars(ctx context.Context, br *bufio.Reader, maxChars int) ([]byte, int, error) {
	var buf bytes.Buffer
	chars := 0
	for maxChars <= 0 || chars < maxChars {
		if chars%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, chars, err
			}
		}

		r, size, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, chars, err
		}

		if r == utf8.RuneError && size == 1 {
			_ = br.UnreadRune()
			b, err := br.ReadByte()
			if err != nil {
				return nil, chars, err
			}
			buf.WriteByte(b)
		} else {
			buf.WriteRune(r)
		}
		chars++
	}
	return buf.Bytes(), chars, nil
}

// ResolvePath converts a file:// URI to a local path.
// Bare paths pass through unchanged.
func ResolvePath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		return strings.TrimPrefix(uri, "file://")
	}
	return uri
}

// DetectMIMEType maps a file extension to the MIME type normalisers key on.
func DetectMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown", ".mkd":
		return "text/markdown"
	case ".html", ".htm", ".xhtml":
		return "text/html"
	case ".csv":
		return "text/csv"
	case ".log":
		return "text/x-log"
	default:
		return "text/plain"
	}
}
