package filters

import (
	"encoding/json"
	"sort"
	"sync"
)

// Registry maps filter kind names to factories. The zero value is not usable;
// construct one with NewRegistry or DefaultRegistry.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry with every built-in filter kind
// registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	builtins := map[string]Factory{
		KindBoolean:    newBooleanFilter,
		KindPercentage: newPercentageFilter,
		KindTimeWindow: newTimeWindowFilter,
		KindTargeting:  newTargetingFilter,
		KindLanguage:   newLanguageFilter,
		KindVersion:    newVersionFilter,
		KindJSONLogic:  newJSONLogicFilter,
	}
	for kind, factory := range builtins {
		// cannot collide, the registry is empty
		_ = r.Register(kind, factory)
	}
	return r
}

// Register adds a factory for a filter kind. Registering the same kind twice
// is an error.
func (r *Registry) Register(kind string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[kind]; exists {
		return &DuplicateFilterKindError{Kind: kind}
	}
	r.factories[kind] = factory
	return nil
}

// Resolve returns the factory registered for kind.
func (r *Registry) Resolve(kind string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, exists := r.factories[kind]
	if !exists {
		return nil, &UnknownFilterKindError{Kind: kind}
	}
	return factory, nil
}

// New resolves kind and builds a filter from the given raw parameters.
func (r *Registry) New(kind string, parameters json.RawMessage) (Filter, error) {
	factory, err := r.Resolve(kind)
	if err != nil {
		return nil, err
	}
	return factory(parameters)
}

// Kinds returns the registered kind names, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
