package normalisers

import (
	"github.com/custodia-labs/legible/internal/normalisers/html"
	"github.com/custodia-labs/legible/internal/normalisers/markdown"
	"github.com/custodia-labs/legible/internal/normalisers/plaintext"
)

// RegisterDefaults registers all built-in normalisers with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(plaintext.New())
	r.Register(markdown.New())
	r.Register(html.New())
}

// NewDefaultRegistry returns a registry holding the built-in normalisers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
