package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/espalier/pkg/ports"
)

// Factory builds a renderer instance for a format.
type Factory func() ports.SystemRenderer

// Registry manages the available output formats.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Factory),
	}
}

// Register adds a format to the registry.
// If a format with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formats[name] = fn
}

// Resolve looks up a format by name and builds its renderer.
// Returns an error if the format is not found.
func (r *Registry) Resolve(name string) (ports.SystemRenderer, error) {
	r.mu.RLock()
	fn, ok := r.formats[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("format not found: %s", name)
	}

	return fn(), nil
}

// Names returns the registered format names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
