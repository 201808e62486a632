package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"doroga/internal/theme"
	"doroga/internal/tokens"
	"doroga/internal/views/components"
	"doroga/internal/views/layout"
)

// PaletteRow is one palette family with every shade resolved.
type PaletteRow struct {
	Variant tokens.ColorVariant
	Shades  []ShadeValue
}

type ShadeValue struct {
	Variable string
	Value    string
}

// ButtonCell is one variant/size combination of the button matrix.
type ButtonCell struct {
	Variant tokens.ButtonVariant
	Size    tokens.ComponentSize
	Colors  theme.VariantStyle
	Dims    theme.SizeStyle
}

// DesignSystemData is everything the design-system view renders.
type DesignSystemData struct {
	Theme   theme.Status
	Palette []PaletteRow
	Buttons []ButtonCell
}

// NewDesignSystemData resolves the view's colors and styles through the
// controller, so they reflect the scheme currently applied.
func NewDesignSystemData(controller *theme.Controller) DesignSystemData {
	resolver := theme.NewStyleResolver(controller)
	data := DesignSystemData{Theme: controller.Status()}

	for _, variant := range tokens.ColorVariants() {
		row := PaletteRow{Variant: variant}
		for _, shade := range tokens.ColorShades() {
			row.Shades = append(row.Shades, ShadeValue{
				Variable: tokens.ColorVariable(variant, shade),
				Value:    controller.Color(variant, shade),
			})
		}
		data.Palette = append(data.Palette, row)
	}

	for _, variant := range tokens.ButtonVariants() {
		for _, size := range tokens.ComponentSizes() {
			data.Buttons = append(data.Buttons, ButtonCell{
				Variant: variant,
				Size:    size,
				Colors:  resolver.VariantStyles(variant.Color()),
				Dims:    resolver.SizeStyles(size),
			})
		}
	}
	return data
}

// DesignSystem renders the full document.
func DesignSystem(data DesignSystemData) templ.Component {
	return layout.Layout(layout.Page{Title: "Design System", Theme: data.Theme}, DesignSystemPartial(data))
}

// DesignSystemPartial renders the body content only, for htmx navigation.
func DesignSystemPartial(data DesignSystemData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main id="design-system" class="ds-page"><header class="ds-header"><h1>Design System</h1>`); err != nil {
			return err
		}
		if err := components.ThemeToggle(data.Theme).Render(ctx, w); err != nil {
			return err
		}
		if err := components.ThemePicker(data.Theme, layout.ModeOptions()).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</header><section class="ds-palette"><h2>Colors</h2>`); err != nil {
			return err
		}
		for _, row := range data.Palette {
			if _, err := fmt.Fprintf(w, `<div class="ds-palette-row" data-variant="%s">`, templ.EscapeString(string(row.Variant))); err != nil {
				return err
			}
			for _, shade := range row.Shades {
				if err := components.Swatch(shade.Variable, shade.Value).Render(ctx, w); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</div>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</section><section class="ds-buttons"><h2>Buttons</h2>`); err != nil {
			return err
		}
		for _, cell := range data.Buttons {
			label := fmt.Sprintf("%s %s", cell.Variant, cell.Size)
			if err := components.Button(label, cell.Variant, cell.Size, cell.Colors, cell.Dims).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section></main>`)
		return err
	})
}
