package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	applog "doroga/internal/log"
	"doroga/internal/theme"
	"doroga/internal/views/components"
)

// Theme reports the theme state on GET and sets the mode on POST.
func Theme(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		controller, _, teardown := mountTheme(w, r)
		defer teardown()
		writeThemeStatus(w, r, controller.Status())
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			applog.Debug(r.Context(), "failed to parse theme form", "error", err)
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		value := r.PostFormValue("mode")
		mode, err := theme.ParseModeLoose(value)
		if err != nil {
			applog.Debug(r.Context(), "received invalid theme mode", "value", value)
			http.Error(w, "invalid theme mode", http.StatusBadRequest)
			return
		}

		controller, _, teardown := mountTheme(w, r)
		defer teardown()
		controller.SetTheme(mode)
		applog.Info(r.Context(), "theme updated", "mode", mode)
		respondThemeChange(w, r, controller.Status())
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// ToggleTheme advances the mode one step through light, dark and system.
func ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	controller, _, teardown := mountTheme(w, r)
	defer teardown()
	mode := controller.ToggleTheme()
	applog.Info(r.Context(), "theme toggled", "mode", mode)
	respondThemeChange(w, r, controller.Status())
}

// ReportColorScheme receives the browser's prefers-color-scheme change
// events. The event reaches the controller through its OS preference
// listener, so it only moves the resolved darkness in system mode.
func ReportColorScheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	dark, err := strconv.ParseBool(strings.TrimSpace(r.PostFormValue("dark")))
	if err != nil {
		applog.Debug(r.Context(), "received invalid color scheme report", "value", r.PostFormValue("dark"))
		http.Error(w, "invalid color scheme", http.StatusBadRequest)
		return
	}

	controller, host, teardown := mountTheme(w, r)
	defer teardown()
	host.reportColorScheme(dark)
	applog.Debug(r.Context(), "color scheme reported", "dark", dark, "mode", controller.CurrentTheme())
	writeThemeStatus(w, r, controller.Status())
}

// TokensCSS serves the design token stylesheet.
func TokensCSS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write([]byte(tokenSheet.CSS())); err != nil {
		applog.Error(r.Context(), "failed to write token stylesheet", "error", err)
	}
}

// respondThemeChange answers htmx with the refreshed toggle and an event the
// page script uses to update the root element; other clients get JSON.
func respondThemeChange(w http.ResponseWriter, r *http.Request, status theme.Status) {
	if !isHTMX(r) {
		writeThemeStatus(w, r, status)
		return
	}

	trigger, err := json.Marshal(map[string]theme.Status{"theme-changed": status})
	if err != nil {
		applog.Error(r.Context(), "failed to encode theme trigger", "error", err)
	} else {
		w.Header().Set("HX-Trigger", string(trigger))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := components.ThemeToggle(status).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeThemeStatus(w http.ResponseWriter, r *http.Request, status theme.Status) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		applog.Error(r.Context(), "failed to encode theme status", "error", err)
	}
}
