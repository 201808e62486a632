package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"doroga/internal/theme"
	"doroga/internal/tokens"
	"doroga/internal/views/layout"
)

// Button renders a design-system button with inline variant and size styles.
func Button(label string, variant tokens.ButtonVariant, size tokens.ComponentSize, colors theme.VariantStyle, dims theme.SizeStyle) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		style := colors.Declarations()
		if sizeDecl := dims.Declarations(); sizeDecl != "" {
			style += "; " + sizeDecl
		}
		_, err := fmt.Fprintf(w,
			`<button type="button" class="ds-button" data-variant="%s" data-size="%s" data-hover="%s" data-active="%s" style="%s">%s</button>`,
			templ.EscapeString(string(variant)),
			templ.EscapeString(string(size)),
			templ.EscapeString(colors.BackgroundHover),
			templ.EscapeString(colors.BackgroundActive),
			templ.EscapeString(style),
			templ.EscapeString(label),
		)
		return err
	})
}

// Swatch renders one palette entry.
func Swatch(variable, value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="ds-swatch"><span class="ds-swatch-chip" style="background: %s"></span><code>%s</code><span class="ds-swatch-value">%s</span></div>`,
			templ.EscapeString(tokens.Var(variable)),
			templ.EscapeString(variable),
			templ.EscapeString(value),
		)
		return err
	})
}

var iconGlyphs = map[theme.Icon]string{
	theme.IconSun:     "☀",
	theme.IconMoon:    "☾",
	theme.IconMonitor: "🖥",
}

// ThemeToggle renders the control cycling the theme mode. It is also the
// fragment swapped in after a toggle.
func ThemeToggle(status theme.Status) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<button id="theme-toggle" type="button" class="ds-theme-toggle" hx-post="/theme/toggle" hx-swap="outerHTML" data-icon="%s" data-mode="%s" aria-label="Theme: %s">%s</button>`,
			templ.EscapeString(string(status.Icon)),
			templ.EscapeString(string(status.Mode)),
			templ.EscapeString(string(status.Mode)),
			iconGlyphs[status.Icon],
		)
		return err
	})
}

// ThemePicker renders one radio per mode. A change posts the mode and swaps
// the returned toggle in place.
func ThemePicker(status theme.Status, options []layout.ModeDefinition) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<form id="theme-picker" class="ds-theme-picker" hx-post="/theme" hx-trigger="change" hx-target="#theme-toggle" hx-swap="outerHTML"><fieldset><legend>Theme</legend>`); err != nil {
			return err
		}
		for _, option := range options {
			checked := ""
			if option.Mode == status.Mode {
				checked = " checked"
			}
			if _, err := fmt.Fprintf(w,
				`<label title="%s"><input type="radio" name="mode" value="%s"%s> %s</label>`,
				templ.EscapeString(option.Description),
				templ.EscapeString(string(option.Mode)),
				checked,
				templ.EscapeString(option.Label),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</fieldset></form>`)
		return err
	})
}
