package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"doroga/internal/db/mock"
	"doroga/internal/handlers"
	"doroga/internal/theme"
)

func TestNewAppliesSessionDefaults(t *testing.T) {
	db, err := mock.New(context.Background())
	if err != nil {
		t.Fatalf("mock database: %v", err)
	}

	cfg := Config{Addr: ":8080", Session: SessionConfig{CookieSecure: true}, Database: db}
	srv, err := New(cfg)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	t.Cleanup(func() {
		handlers.Configure(nil, nil)
		handlers.ConfigureTheme(nil, "")
	})

	if srv.httpServer.Addr != ":8080" {
		t.Fatalf("expected server addr :8080, got %q", srv.httpServer.Addr)
	}
	if srv.httpServer.Handler == nil {
		t.Fatal("expected handler to be configured")
	}

	data := url.Values{}
	data.Set("mode", "dark")
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(data.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected theme update to succeed, got %d", rr.Code)
	}
	var status theme.Status
	if err := json.Unmarshal(rr.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.Mode != theme.ModeDark {
		t.Fatalf("expected dark mode, got %+v", status)
	}

	var session *http.Cookie
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == "doroga_session" {
			session = cookie
		}
	}
	if session == nil {
		t.Fatal("expected default session cookie to be set")
	}
	if !session.Secure {
		t.Fatal("expected cookie secure flag to be true")
	}
}

func TestServerHandler(t *testing.T) {
	cfg := Config{Addr: ":9090"}
	srv, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		handlers.Configure(nil, nil)
		handlers.ConfigureTheme(nil, "")
	})

	handler := srv.Handler()
	if handler == nil {
		t.Fatal("expected non-nil handler")
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected /healthz to return 200, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/design-system", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected /design-system to return 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "<title>Design System</title>") {
		t.Fatal("expected design system page")
	}
}
