package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHomeRedirectsToDesignSystem(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	Home(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/design-system" {
		t.Fatalf("expected redirect to /design-system, got %q", loc)
	}
}

func TestHomeUnknownPathIsNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	w := httptest.NewRecorder()
	Home(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
