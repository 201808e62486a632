package server

import (
	"context"
	"net/http"

	"doroga/internal/handlers"
	applog "doroga/internal/log"
)

// route binds a path to a named view or endpoint.
type route struct {
	Path    string
	Name    string
	Handler http.HandlerFunc
}

var routes = []route{
	{Path: "/healthz", Name: "health", Handler: handlers.Health},
	{Path: "/design-system", Name: "designSystem", Handler: handlers.DesignSystem},
	{Path: "/theme", Name: "theme", Handler: handlers.Theme},
	{Path: "/theme/toggle", Name: "themeToggle", Handler: handlers.ToggleTheme},
	{Path: "/theme/color-scheme", Name: "themeColorScheme", Handler: handlers.ReportColorScheme},
	{Path: "/assets/tokens.css", Name: "tokens", Handler: handlers.TokensCSS},
	{Path: "/", Name: "home", Handler: handlers.Home},
}

// RoutePath returns the path registered under name.
func RoutePath(name string) (string, bool) {
	for _, r := range routes {
		if r.Name == name {
			return r.Path, true
		}
	}
	return "", false
}

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	for _, r := range routes {
		mux.HandleFunc(r.Path, r.Handler)
		applog.Debug(context.Background(), "route registered", "path", r.Path, "name", r.Name)
	}
	return mux
}
