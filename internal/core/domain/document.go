package domain

import "time"

// Document is a text document ready for analysis.
// It is the canonical representation after normalisation and is never
// mutated by the counters.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location (file path, "-" for stdin, "" for literal text).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full text content after normalisation.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was loaded.
	CreatedAt time.Time
}

// Chars returns the number of characters (runes) in the content.
func (d *Document) Chars() int {
	n := 0
	for range d.Content {
		n++
	}
	return n
}
