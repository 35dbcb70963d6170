package counters

import (
	"github.com/custodia-labs/legible/internal/counters/basic"
	"github.com/custodia-labs/legible/internal/counters/efficient"
)

// RegisterDefaults registers all built-in strategies with the registry.
// Call this during application initialisation.
func RegisterDefaults(r *Registry) {
	r.Register(basic.New())
	r.Register(efficient.New())
}

// NewDefaultRegistry returns a registry holding the built-in strategies.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
