package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	applog "doroga/internal/log"
	"doroga/internal/theme"
)

const (
	// colorSchemeHint is the client hint carrying the browser's
	// prefers-color-scheme match state.
	colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
	clientIDCookie  = "doroga_client"
	clientIDMaxAge  = 400 * 24 * time.Hour
)

// sessionHost is the theme host for one request: the session is the
// browser-scoped storage, the request carries the OS preference and the
// rendered page is the document.
type sessionHost struct {
	*theme.SheetDocument

	w      http.ResponseWriter
	r      *http.Request
	scheme *theme.MediaQuery
}

var _ theme.Host = (*sessionHost)(nil)

func newSessionHost(w http.ResponseWriter, r *http.Request) *sessionHost {
	h := &sessionHost{
		w:      w,
		r:      r,
		scheme: theme.NewMediaQuery(theme.DarkSchemeQuery, requestPrefersDark(r)),
	}
	h.SheetDocument = theme.NewSheetDocument(tokenSheet, h.scheme.Matches)
	return h
}

// Item reads the session first. A browser whose session expired still has
// its client cookie, so the database mirror answers next.
func (h *sessionHost) Item(key string) (string, bool) {
	ctx := h.r.Context()
	if sessionManager != nil && sessionManager.Exists(ctx, sessionStoragePrefix+key) {
		return sessionManager.GetString(ctx, sessionStoragePrefix+key), true
	}

	clientID := readClientID(h.r)
	if preferences == nil || clientID == "" {
		return "", false
	}
	value, found, err := preferences.Get(ctx, clientID, key)
	if err != nil {
		applog.Error(ctx, "failed to load persisted preference", "key", key, "error", err)
		return "", false
	}
	if found && sessionManager != nil {
		sessionManager.Put(ctx, sessionStoragePrefix+key, value)
	}
	return value, found
}

// SetItem writes the session and, when a database is configured, the mirror
// row. Mirror failures are logged; the session write stands.
func (h *sessionHost) SetItem(key, value string) {
	ctx := h.r.Context()
	if sessionManager != nil {
		sessionManager.Put(ctx, sessionStoragePrefix+key, value)
	}
	if preferences == nil {
		applog.Debug(ctx, "database not configured; skipping preference mirror", "key", key)
		return
	}
	clientID := ensureClientID(h.w, h.r)
	if err := preferences.Put(ctx, clientID, key, value); err != nil {
		applog.Error(ctx, "failed to mirror preference", "key", key, "error", err)
	}
}

func (h *sessionHost) PrefersDark() bool {
	return h.scheme.Matches()
}

func (h *sessionHost) SubscribeColorScheme(fn func(dark bool)) func() {
	return h.scheme.Subscribe(fn)
}

// reportColorScheme records a change the browser observed on its media query
// and delivers it to the listeners subscribed during this request.
func (h *sessionHost) reportColorScheme(dark bool) {
	if sessionManager != nil {
		sessionManager.Put(h.r.Context(), sessionColorSchemeKey, dark)
	}
	h.scheme.Dispatch(dark)
}

// requestPrefersDark prefers the client hint, then the last value the
// browser reported, then light.
func requestPrefersDark(r *http.Request) bool {
	if hint := strings.Trim(strings.TrimSpace(r.Header.Get(colorSchemeHint)), `"`); hint != "" {
		return strings.EqualFold(hint, "dark")
	}
	if sessionManager != nil && sessionManager.Exists(r.Context(), sessionColorSchemeKey) {
		return sessionManager.GetBool(r.Context(), sessionColorSchemeKey)
	}
	return false
}

func readClientID(r *http.Request) string {
	cookie, err := r.Cookie(clientIDCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func ensureClientID(w http.ResponseWriter, r *http.Request) string {
	if id := readClientID(r); id != "" {
		return id
	}
	id := uuid.NewString()
	secure := true
	if sessionManager != nil {
		secure = sessionManager.Cookie.Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     clientIDCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(clientIDMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	r.AddCookie(&http.Cookie{Name: clientIDCookie, Value: id})
	return id
}

// mountTheme builds a controller for the request and mounts it. The caller
// defers the returned teardown.
func mountTheme(w http.ResponseWriter, r *http.Request) (*theme.Controller, *sessionHost, func()) {
	host := newSessionHost(w, r)
	controller := theme.NewController(theme.NewState(), host,
		theme.WithStorageKey(storageKey),
		theme.WithLogger(applog.With("component", "theme", "path", r.URL.Path)),
	)
	teardown := controller.Mount()
	w.Header().Add("Accept-CH", colorSchemeHint)
	w.Header().Add("Vary", colorSchemeHint)
	return controller, host, teardown
}
