package web

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/a-h/templ"
	webi18n "github.com/pietrodev07/RoadPlan/internal/web/i18n"
	"github.com/pietrodev07/RoadPlan/internal/web/platform/httpx"
	"github.com/pietrodev07/RoadPlan/internal/web/platform/hydrate"
	"github.com/pietrodev07/RoadPlan/internal/web/platform/prefs"
	"github.com/pietrodev07/RoadPlan/internal/web/platform/themecookie"
	"github.com/pietrodev07/RoadPlan/internal/web/templates"
)

type handler struct {
	appName           string
	loadingBarEnabled bool
	registry          *prefs.Registry
	scopeCounter      atomic.Uint64
}

// renderScope derives the render scope id for one page instance. The
// request id from the middleware chain doubles as the scope when present.
func (h *handler) renderScope(r *http.Request) prefs.ScopeID {
	if r != nil {
		if rid := strings.TrimSpace(r.Header.Get("X-Request-ID")); rid != "" {
			return prefs.ScopeID(rid)
		}
	}
	return prefs.ScopeID(fmt.Sprintf("render-%d-%d", time.Now().UnixNano(), h.scopeCounter.Add(1)))
}

// writeShellPage runs one full page lifecycle: the store begins at the
// server default, markup is composed and written, and only then does the
// hydration reconciler copy the request's persisted theme into the store.
func (h *handler) writeShellPage(w http.ResponseWriter, r *http.Request, titleKey string, content func(templates.PageContext) templ.Component) {
	if w == nil {
		return
	}

	scope := h.renderScope(r)
	store := h.registry.Begin(scope)
	defer h.registry.End(scope)

	page := hydrate.NewPage(store)
	defer page.Teardown()

	loc, lang := webi18n.Localizer(w, r)
	pageCtx := templates.PageContext{
		Lang:        lang,
		Loc:         loc,
		CurrentPath: requestPath(r),
		AppName:     h.appName,
	}
	title := templates.T(loc, titleKey) + " | " + h.appName

	ctx := prefs.WithStore(httpx.RequestContext(r), store)
	if content != nil {
		ctx = templ.WithChildren(ctx, content(pageCtx))
	}

	shell := templates.AppShell(templates.ShellOptions{
		Title:             title,
		Page:              pageCtx,
		LoadingBarEnabled: h.loadingBarEnabled,
	})
	var buf bytes.Buffer
	if err := shell.Render(ctx, &buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := httpx.WriteHTML(w, http.StatusOK, buf.String()); err != nil {
		return
	}
	page.MarkRendered()

	// Markup is out the door; ownership moves to the client side. The
	// durable theme cookie stands in for browser storage here, so the
	// reconciled store reflects what the interactive page will show.
	page.OnInteractive(themecookie.Storage{Request: r})
	page.Interactive()
}

func (h *handler) handleHome(w http.ResponseWriter, r *http.Request) {
	if requestPath(r) != "/" {
		http.NotFound(w, r)
		return
	}
	h.writeShellPage(w, r, "layout.home", templates.HomePage)
}

func (h *handler) handleAbout(w http.ResponseWriter, r *http.Request) {
	h.writeShellPage(w, r, "layout.about", templates.AboutPage)
}

// handleThemeUpdate persists the picker selection. The value is stored
// verbatim; validation happens consumer-side when the store is read.
func (h *handler) handleThemeUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	theme := strings.TrimSpace(r.PostFormValue("theme"))
	if theme == "" {
		themecookie.Clear(w)
	} else {
		themecookie.Write(w, theme)
	}

	redirect := strings.TrimSpace(r.Referer())
	if redirect == "" {
		redirect = "/"
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

func (h *handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
