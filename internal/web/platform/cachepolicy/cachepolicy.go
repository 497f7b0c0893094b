// Package cachepolicy decides HTTP caching semantics for page responses.
// It is the only place the directives are set; downstream handlers must not
// override them.
package cachepolicy

import (
	"fmt"
	"net/http"
)

// Directives is the ephemeral per-response cache directive pair.
type Directives struct {
	// MaxAge is how many seconds a cached copy is served without
	// revalidation.
	MaxAge int
	// StaleWhileRevalidate is how many seconds an expired copy may still be
	// served while a background revalidation runs.
	StaleWhileRevalidate int
}

// Default returns the page cache policy: revalidate after 5 seconds, serve
// stale for up to seven days while revalidating.
func Default() Directives {
	return Directives{
		MaxAge:               5,
		StaleWhileRevalidate: 604800,
	}
}

// Value renders the Cache-Control header value.
func (d Directives) Value() string {
	return fmt.Sprintf("max-age=%d, stale-while-revalidate=%d", d.MaxAge, d.StaleWhileRevalidate)
}

// Apply sets the directives on an outgoing response. Setting headers cannot
// fail; the only side effect is response header state.
func (d Directives) Apply(w http.ResponseWriter) {
	if w == nil {
		return
	}
	w.Header().Set("Cache-Control", d.Value())
}

// Middleware applies the directives before any rendering work runs.
func Middleware(d Directives) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d.Apply(w)
			next.ServeHTTP(w, r)
		})
	}
}
