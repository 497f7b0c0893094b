// Package themecookie centralizes the durable theme preference cookie.
package themecookie

import (
	"net/http"
	"strings"
	"time"
)

// Name is the persisted storage key for the theme preference. The value is
// a raw string, not JSON-encoded, and is not validated on read.
const Name = "theme"

const maxAge = int(365 * 24 * time.Hour / time.Second)

// Read returns the raw persisted theme and whether one exists.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write persists the theme selection on the response.
func Write(w http.ResponseWriter, value string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(value),
		Path:     "/",
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the theme cookie.
func Clear(w http.ResponseWriter) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}

// Storage adapts a request's theme cookie to the hydration storage contract.
type Storage struct {
	Request *http.Request
}

// ReadTheme performs the single synchronous storage read.
func (s Storage) ReadTheme() (string, bool) {
	return Read(s.Request)
}
