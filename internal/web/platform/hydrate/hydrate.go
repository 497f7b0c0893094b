// Package hydrate models the page lifecycle between server render and
// client interactivity, and runs the one-shot reconciliation that overwrites
// the preference store with the user's persisted choice.
package hydrate

import (
	"sync"

	"github.com/pietrodev07/RoadPlan/internal/web/platform/prefs"
)

// State is the position of a page instance in its render lifecycle.
type State int

const (
	// StateServerDefault: the store holds the baked-in server default.
	StateServerDefault State = iota
	// StateRendered: markup has been composed with the default value.
	StateRendered
	// StateHydrating: the client owns the instance but reconciliation has
	// not run yet.
	StateHydrating
	// StateReconciled: terminal; the store reflects the persisted value or
	// its absence until navigation restarts the cycle.
	StateReconciled
)

// String returns the lifecycle state name.
func (s State) String() string {
	switch s {
	case StateServerDefault:
		return "server-default"
	case StateRendered:
		return "rendered"
	case StateHydrating:
		return "hydrating"
	case StateReconciled:
		return "reconciled"
	}
	return "unknown"
}

// Storage is a synchronous durable store for the persisted theme. The read
// reports absence through the second return; it cannot fail.
type Storage interface {
	ReadTheme() (string, bool)
}

// Page tracks one render lifecycle. The reconcile task registered with
// OnInteractive runs at most once, strictly after MarkRendered, and is
// discarded without side effect when the page is torn down first.
type Page struct {
	mu       sync.Mutex
	state    State
	store    *prefs.Store
	storage  Storage
	tornDown bool
}

// NewPage returns a page instance in the server-default state.
func NewPage(store *prefs.Store) *Page {
	return &Page{store: store}
}

// State returns the current lifecycle state.
func (p *Page) State() State {
	if p == nil {
		return StateServerDefault
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// MarkRendered records that markup was composed with the store's current
// value. It is a no-op once the page has moved past the server default.
func (p *Page) MarkRendered() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.tornDown || p.state != StateServerDefault {
		return
	}
	p.state = StateRendered
}

// OnInteractive registers the reconcile task against the became-interactive
// barrier. Registering again replaces the pending storage; the one-shot
// guard is the lifecycle state, not the registration.
func (p *Page) OnInteractive(storage Storage) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.tornDown || p.state == StateReconciled {
		return
	}
	p.storage = storage
	if p.state == StateRendered {
		p.state = StateHydrating
	}
}

// Interactive fires the hydration barrier. The pending reconcile task runs
// exactly once, and never before the page was rendered; later calls are
// no-ops. A page with no usable storage skips reconciliation entirely and
// stays short of the terminal state.
func (p *Page) Interactive() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.tornDown || p.state == StateReconciled || p.state == StateServerDefault {
		p.mu.Unlock()
		return
	}
	if p.state == StateRendered {
		p.state = StateHydrating
	}
	storage := p.storage
	store := p.store
	if storage == nil {
		p.mu.Unlock()
		return
	}
	p.state = StateReconciled
	p.mu.Unlock()

	Reconcile(store, storage)
}

// Teardown discards the page instance. A pending reconcile task is dropped
// and will never run.
func (p *Page) Teardown() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tornDown = true
	p.storage = nil
}

// Reconcile copies the persisted theme into the store verbatim. No
// validation happens here: an unrecognized value is stored as-is, and an
// absent value unsets the field rather than preserving the server default.
// Consumers clamp through prefs.Store.EffectiveTheme.
func Reconcile(store *prefs.Store, storage Storage) {
	if store == nil || storage == nil {
		return
	}
	value, ok := storage.ReadTheme()
	if !ok {
		store.Set("")
		return
	}
	store.Set(prefs.Theme(value))
}
