package fieldkit

import (
	"slices"
	"sync"
)

// Registry is the catalog of field types and field definitions. It is meant
// to be created once at bootstrap, populated during initialization (core
// fields first, extension fields whenever their module loads) and treated as
// read-mostly afterwards. Registration is idempotent and last-write-wins so
// extension modules may re-register names without conflict.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	types    map[string]Type
	defs     map[string]Definition
	defOrder []string
}

// NewRegistry creates an empty registry, optionally pre-populated with the
// given field types.
func NewRegistry(types ...Type) *Registry {
	r := &Registry{
		types: make(map[string]Type),
		defs:  make(map[string]Definition),
	}

	for _, t := range types {
		if t == nil {
			continue
		}
		r.types[t.Name()] = t
	}

	return r
}

// RegisterType registers a field type under its Name key, replacing any
// previous registration. A nil type is ignored.
func (r *Registry) RegisterType(t Type) {
	if t == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[t.Name()] = t
}

// RegisterDefinition registers a field definition under its Name, replacing
// any previous registration while keeping the original position in the
// enumeration order. Definitions with an empty name are ignored.
func (r *Registry) RegisterDefinition(def Definition) {
	if def.Name == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[def.Name]; !exists {
		r.defOrder = append(r.defOrder, def.Name)
	}
	r.defs[def.Name] = def
}

// Type looks up a field type by key. A miss returns (nil, false).
func (r *Registry) Type(name string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[name]
	return t, ok
}

// Definition looks up a field definition by field name.
func (r *Registry) Definition(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[name]
	return def, ok
}

// Definitions returns all registered definitions in registration order.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Definition, 0, len(r.defOrder))
	for _, name := range r.defOrder {
		out = append(out, r.defs[name])
	}
	return out
}

// TypeNames returns the keys of all registered field types, sorted.
func (r *Registry) TypeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reset clears both catalogs. It exists to isolate test cases and to support
// full reconfiguration when extension modules load after core boot.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.types = make(map[string]Type)
	r.defs = make(map[string]Definition)
	r.defOrder = nil
}
