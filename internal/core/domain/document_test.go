package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Chars(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{"empty", "", 0},
		{"ascii", "Hello.", 6},
		{"multibyte counts runes", "café!", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Document{Content: tt.content}
			assert.Equal(t, tt.expected, doc.Chars())
		})
	}
}
