package tool

import (
	"sort"
	"strings"
	"sync"
)

// Registry is the closed mapping from capability name to capability, built
// once per session. Lookup is case-insensitive. All operations are safe for
// concurrent use.
type Registry struct {
	mu           sync.RWMutex
	capabilities map[string]Capability
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		capabilities: make(map[string]Capability),
	}
}

// NewRegistryWith creates a registry pre-populated with the given
// capabilities, keyed by each capability's Info().Name.
func NewRegistryWith(capabilities ...Capability) *Registry {
	r := NewRegistry()
	r.Register(capabilities...)
	return r
}

// Register adds capabilities to the registry. Names are stored lowercase;
// registering an existing name replaces the previous capability.
func (r *Registry) Register(capabilities ...Capability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range capabilities {
		r.capabilities[strings.ToLower(c.Info().Name)] = c
	}
}

// Get retrieves a capability by name (case-insensitive).
func (r *Registry) Get(name string) (Capability, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.capabilities[strings.ToLower(name)]
	return c, ok
}

// Has reports whether a capability with the given name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Remove deletes a capability by name. Returns true if it was present.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(name)
	if _, ok := r.capabilities[key]; ok {
		delete(r.capabilities, key)
		return true
	}
	return false
}

// Names returns the registered names, sorted, for prompt assembly and
// not-found observations.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.capabilities))
	for name := range r.capabilities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of registered capabilities.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.capabilities)
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clone := NewRegistry()
	for name, c := range r.capabilities {
		clone.capabilities[name] = c
	}
	return clone
}
