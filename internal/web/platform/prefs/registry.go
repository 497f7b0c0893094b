package prefs

import "sync"

// ScopeID identifies one page render. One store lives per scope from Begin
// until End.
type ScopeID string

// Registry maps render scopes to their preference stores. Scope teardown
// releases the entry so abandoned renders do not accumulate.
type Registry struct {
	mu     sync.RWMutex
	stores map[ScopeID]*Store
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[ScopeID]*Store)}
}

// Begin creates the store for a scope. Beginning an already-active scope
// returns the existing store so a render never sees two instances.
func (r *Registry) Begin(scope ScopeID) *Store {
	if r == nil {
		return NewStore()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stores == nil {
		r.stores = make(map[ScopeID]*Store)
	}
	if store, ok := r.stores[scope]; ok {
		return store
	}
	store := NewStore()
	r.stores[scope] = store
	return store
}

// Lookup resolves the live store for a scope.
func (r *Registry) Lookup(scope ScopeID) (*Store, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	store, ok := r.stores[scope]
	return store, ok
}

// End tears the scope down and releases its entry.
func (r *Registry) End(scope ScopeID) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, scope)
}
