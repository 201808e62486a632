package handlers

import (
	"net/http"

	templpkg "github.com/a-h/templ"

	applog "doroga/internal/log"
	"doroga/internal/views/pages"
)

// DesignSystem renders the design-system view in the visitor's theme.
func DesignSystem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	controller, _, teardown := mountTheme(w, r)
	defer teardown()

	data := pages.NewDesignSystemData(controller)
	applog.Debug(r.Context(), "rendering design system", "mode", data.Theme.Mode, "dark", data.Theme.Dark, "htmx", isHTMX(r))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var component templpkg.Component
	if isHTMX(r) {
		component = pages.DesignSystemPartial(data)
	} else {
		component = pages.DesignSystem(data)
	}

	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
