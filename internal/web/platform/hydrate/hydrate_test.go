package hydrate

import (
	"testing"

	"github.com/pietrodev07/RoadPlan/internal/web/platform/prefs"
)

type fakeStorage struct {
	value   string
	present bool
	reads   int
}

func (s *fakeStorage) ReadTheme() (string, bool) {
	s.reads++
	return s.value, s.present
}

func TestReconcileCopiesPersistedValueVerbatim(t *testing.T) {
	t.Parallel()

	store := prefs.NewStore()
	var notified []prefs.Theme
	store.Subscribe(func(theme prefs.Theme) {
		notified = append(notified, theme)
	})

	Reconcile(store, &fakeStorage{value: "dark", present: true})

	if got := store.Theme(); got != prefs.ThemeDark {
		t.Fatalf("theme = %q, want %q", got, prefs.ThemeDark)
	}
	if len(notified) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notified))
	}
}

func TestReconcileAbsentValueUnsetsTheme(t *testing.T) {
	t.Parallel()

	store := prefs.NewStore()
	Reconcile(store, &fakeStorage{present: false})

	// The store must not silently keep the server default.
	if got := store.Theme(); got != "" {
		t.Fatalf("theme = %q, want unset", got)
	}
	if got := store.EffectiveTheme(); got != prefs.ThemeLight {
		t.Fatalf("effective theme = %q, want %q", got, prefs.ThemeLight)
	}
}

func TestReconcilePassesUnknownValuesThrough(t *testing.T) {
	t.Parallel()

	store := prefs.NewStore()
	Reconcile(store, &fakeStorage{value: "sepia", present: true})

	if got := store.Theme(); got != "sepia" {
		t.Fatalf("theme = %q, want %q", got, "sepia")
	}
	if got := store.EffectiveTheme(); got != prefs.ThemeLight {
		t.Fatalf("effective theme = %q, want %q", got, prefs.ThemeLight)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	t.Parallel()

	store := prefs.NewStore()
	storage := &fakeStorage{value: "dark", present: true}
	Reconcile(store, storage)
	once := store.Theme()
	Reconcile(store, storage)
	if got := store.Theme(); got != once {
		t.Fatalf("theme after second reconcile = %q, want %q", got, once)
	}
}

func TestPageRunsTaskExactlyOnce(t *testing.T) {
	t.Parallel()

	store := prefs.NewStore()
	storage := &fakeStorage{value: "dark", present: true}
	page := NewPage(store)
	page.MarkRendered()
	page.OnInteractive(storage)

	if got := page.State(); got != StateHydrating {
		t.Fatalf("state = %v, want %v", got, StateHydrating)
	}

	page.Interactive()
	page.Interactive()

	if storage.reads != 1 {
		t.Fatalf("storage reads = %d, want 1", storage.reads)
	}
	if got := page.State(); got != StateReconciled {
		t.Fatalf("state = %v, want %v", got, StateReconciled)
	}
	if got := store.Theme(); got != prefs.ThemeDark {
		t.Fatalf("theme = %q, want %q", got, prefs.ThemeDark)
	}
}

func TestPageSkipsReconcileWithoutStorage(t *testing.T) {
	t.Parallel()

	store := prefs.NewStore()
	page := NewPage(store)
	page.MarkRendered()
	page.Interactive()

	// No storage context exists, so reconciliation is skipped entirely
	// rather than failing the render.
	if got := store.Theme(); got != prefs.ThemeLight {
		t.Fatalf("theme = %q, want %q", got, prefs.ThemeLight)
	}
	if got := page.State(); got == StateReconciled {
		t.Fatalf("state = %v, want pre-reconcile state", got)
	}
}

func TestPageNeverReconcilesBeforeRender(t *testing.T) {
	t.Parallel()

	store := prefs.NewStore()
	storage := &fakeStorage{value: "dark", present: true}
	page := NewPage(store)
	page.OnInteractive(storage)
	page.Interactive()

	if storage.reads != 0 {
		t.Fatalf("storage reads = %d, want 0 before render", storage.reads)
	}
	if got := page.State(); got != StateServerDefault {
		t.Fatalf("state = %v, want %v", got, StateServerDefault)
	}
}

func TestPageTeardownDiscardsPendingTask(t *testing.T) {
	t.Parallel()

	store := prefs.NewStore()
	storage := &fakeStorage{value: "dark", present: true}
	page := NewPage(store)
	page.MarkRendered()
	page.OnInteractive(storage)
	page.Teardown()
	page.Interactive()

	if storage.reads != 0 {
		t.Fatalf("storage reads = %d, want 0 after teardown", storage.reads)
	}
	if got := store.Theme(); got != prefs.ThemeLight {
		t.Fatalf("theme = %q, want untouched default %q", got, prefs.ThemeLight)
	}
}

func TestLifecycleStateOrder(t *testing.T) {
	t.Parallel()

	page := NewPage(prefs.NewStore())
	if got := page.State(); got != StateServerDefault {
		t.Fatalf("state = %v, want %v", got, StateServerDefault)
	}
	page.MarkRendered()
	if got := page.State(); got != StateRendered {
		t.Fatalf("state = %v, want %v", got, StateRendered)
	}
	page.OnInteractive(&fakeStorage{present: false})
	if got := page.State(); got != StateHydrating {
		t.Fatalf("state = %v, want %v", got, StateHydrating)
	}
	page.Interactive()
	if got := page.State(); got != StateReconciled {
		t.Fatalf("state = %v, want %v", got, StateReconciled)
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	cases := map[State]string{
		StateServerDefault: "server-default",
		StateRendered:      "rendered",
		StateHydrating:     "hydrating",
		StateReconciled:    "reconciled",
		State(42):          "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestNilPageIsSafe(t *testing.T) {
	t.Parallel()

	var page *Page
	page.MarkRendered()
	page.OnInteractive(nil)
	page.Interactive()
	page.Teardown()
	if got := page.State(); got != StateServerDefault {
		t.Fatalf("nil page state = %v, want %v", got, StateServerDefault)
	}
}
