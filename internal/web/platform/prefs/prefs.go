// Package prefs holds the per-render UI preference store and the context
// distribution machinery that makes one store instance reachable anywhere in
// a render tree.
package prefs

import (
	"context"
	"sync"
)

// Theme is a named visual preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// DefaultTheme is the safe server-side default baked into first render.
const DefaultTheme = ThemeLight

// known reports whether the value is one of the enumerated themes.
func known(theme Theme) bool {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Store is an observable preference cell. Exactly one instance exists per
// page render; descendants share it by reference through the render context.
type Store struct {
	mu          sync.Mutex
	theme       Theme
	subscribers []func(Theme)
}

// NewStore returns a store initialized to the server default.
func NewStore() *Store {
	return &Store{theme: DefaultTheme}
}

// Theme returns the raw stored value. It may be outside the enumerated set,
// or empty when hydration found no persisted preference.
func (s *Store) Theme() Theme {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// EffectiveTheme maps unset or unrecognized values to the default. Consumers
// must branch on this, never on the raw value; it is the single place the
// pass-through policy is clamped.
func (s *Store) EffectiveTheme() Theme {
	theme := s.Theme()
	if !known(theme) {
		return DefaultTheme
	}
	return theme
}

// Set replaces the stored value verbatim and notifies every subscriber
// exactly once. An empty value unsets the preference.
func (s *Store) Set(theme Theme) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.theme = theme
	subscribers := make([]func(Theme), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, notify := range subscribers {
		notify(theme)
	}
}

// Subscribe registers a callback invoked on every write. Callbacks run on
// the writer's goroutine, after the store already holds the new value.
func (s *Store) Subscribe(notify func(Theme)) {
	if s == nil || notify == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, notify)
}

type contextKey struct{}

// WithStore returns a context carrying the store. The store travels by
// reference: every resolution observes the same instance.
func WithStore(ctx context.Context, store *Store) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if store == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, store)
}

// FromContext resolves the store distributed through the render context.
func FromContext(ctx context.Context) (*Store, bool) {
	if ctx == nil {
		return nil, false
	}
	store, ok := ctx.Value(contextKey{}).(*Store)
	return store, ok
}
