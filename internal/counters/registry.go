package counters

import (
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/legible/internal/core/domain"
	"github.com/custodia-labs/legible/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.CounterRegistry = (*Registry)(nil)

// Registry maps strategy names to counters.
// It allows callers to select a counting strategy by name at runtime.
type Registry struct {
	mu       sync.RWMutex
	counters map[string]driven.Counter
}

// NewRegistry creates an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]driven.Counter),
	}
}

// Register adds a counter under its Name. A later registration with the
// same name replaces the earlier one.
func (r *Registry) Register(c driven.Counter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[c.Name()] = c
}

// Get returns the counter registered under name.
func (r *Registry) Get(name string) (driven.Counter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.counters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, name)
	}
	return c, nil
}

// Has returns true if a counter with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.counters[name]
	return ok
}

// Names returns all registered strategy names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.counters))
	for name := range r.counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
