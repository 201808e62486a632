package handlers

import "net/http"

// Home sends visitors to the design-system view.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/design-system", http.StatusFound)
}
