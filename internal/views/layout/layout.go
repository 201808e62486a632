package layout

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"doroga/internal/theme"
)

// Page describes the document shell around a view.
type Page struct {
	Title  string
	Theme  theme.Status
	Assets string
}

// RootAttributes renders the attributes of the html element. The class is
// the forced theme class, absent in system mode so the stylesheet's media
// query decides.
func RootAttributes(status theme.Status) string {
	attrs := fmt.Sprintf(` data-theme-mode="%s" data-theme-dark="%s"`,
		templ.EscapeString(string(status.Mode)),
		strconv.FormatBool(status.Dark),
	)
	if status.RootClass != "" {
		attrs = ` class="` + templ.EscapeString(status.RootClass) + `"` + attrs
	}
	return attrs
}

// Layout renders a complete document with content as the body.
func Layout(page Page, content templ.Component) templ.Component {
	assets := page.Assets
	if assets == "" {
		assets = "/assets"
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"%s><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><meta name="color-scheme" content="light dark"><title>%s</title><link rel="stylesheet" href="%s/tokens.css"><script src="https://unpkg.com/htmx.org@2.0.4" defer></script></head><body class="ds-body">`,
			RootAttributes(page.Theme),
			templ.EscapeString(page.Title),
			templ.EscapeString(assets),
		); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, themeScript); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// themeScript applies the root class the server resolved after an htmx swap
// and reports OS preference changes back to the server.
const themeScript = `<script>
(function () {
  var root = document.documentElement;
  document.body.addEventListener("theme-changed", function (evt) {
    root.classList.remove("light-theme", "dark-theme");
    if (evt.detail.rootClass) { root.classList.add(evt.detail.rootClass); }
    root.dataset.themeMode = evt.detail.mode;
    root.dataset.themeDark = String(evt.detail.dark);
  });
  var query = window.matchMedia("(prefers-color-scheme: dark)");
  query.addEventListener("change", function (e) {
    fetch("/theme/color-scheme", {
      method: "POST",
      headers: {"Content-Type": "application/x-www-form-urlencoded"},
      body: "dark=" + e.matches
    }).then(function (res) { return res.json(); }).then(function (status) {
      root.dataset.themeDark = String(status.dark);
    });
  });
})();
</script>`
