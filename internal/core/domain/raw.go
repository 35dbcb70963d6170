package domain

// RawDocument represents bytes read by a loader.
// It is the loader's output before normalisation.
type RawDocument struct {
	// URI is the original location (file path or "-").
	URI string

	// MIMEType is the content type (e.g., "text/markdown").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains loader-specific key-value pairs.
	Metadata map[string]any
}

// LoadResult is the outcome of reading a bounded prefix of a file.
type LoadResult struct {
	// Raw holds the bytes that were read.
	Raw RawDocument

	// Chars is the number of characters actually read.
	Chars int

	// Requested is the number of characters asked for (0 = whole file).
	Requested int

	// Short is true when end of file arrived before Requested characters.
	Short bool
}
