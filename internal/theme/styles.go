package theme

import (
	"strings"

	"doroga/internal/tokens"
)

// VariantStyle colors a component in one palette family.
type VariantStyle struct {
	Background       string `json:"background"`
	BackgroundHover  string `json:"backgroundHover"`
	BackgroundActive string `json:"backgroundActive"`
	Color            string `json:"color"`
	Border           string `json:"border"`
}

// SizeStyle dimensions a component. Values may reference custom properties;
// they are resolved by whatever renders them.
type SizeStyle struct {
	Padding   string `json:"padding"`
	FontSize  string `json:"fontSize"`
	MinHeight string `json:"minHeight"`
}

// OnVariantColor is the text color used on every variant background.
const OnVariantColor = "#ffffff"

var sizeTable = map[tokens.ComponentSize]SizeStyle{
	tokens.SizeSmall: {
		Padding:   tokens.Var(tokens.SpacingVariable("xs")) + " " + tokens.Var(tokens.SpacingVariable("md")),
		FontSize:  tokens.Var(tokens.FontSizeVariable("xs")),
		MinHeight: "2rem",
	},
	tokens.SizeMedium: {
		Padding:   tokens.Var(tokens.SpacingVariable("sm")) + " " + tokens.Var(tokens.SpacingVariable("lg")),
		FontSize:  tokens.Var(tokens.FontSizeVariable("sm")),
		MinHeight: "2.5rem",
	},
	tokens.SizeLarge: {
		Padding:   tokens.Var(tokens.SpacingVariable("md")) + " " + tokens.Var(tokens.SpacingVariable("xl")),
		FontSize:  tokens.Var(tokens.FontSizeVariable("md")),
		MinHeight: "3rem",
	},
}

// StyleResolver maps variants and sizes to style records using the
// controller's live color lookups.
type StyleResolver struct {
	controller *Controller
}

func NewStyleResolver(controller *Controller) *StyleResolver {
	return &StyleResolver{controller: controller}
}

// VariantStyles reads the 600/700/800 shades of variant on every call.
func (r *StyleResolver) VariantStyles(variant tokens.ColorVariant) VariantStyle {
	return VariantStyle{
		Background:       r.controller.Color(variant, 600),
		BackgroundHover:  r.controller.Color(variant, 700),
		BackgroundActive: r.controller.Color(variant, 800),
		Color:            OnVariantColor,
		Border:           r.controller.Color(variant, 600),
	}
}

// SizeStyles returns the fixed dimensions for size, or the zero record for
// a size outside the table.
func (r *StyleResolver) SizeStyles(size tokens.ComponentSize) SizeStyle {
	return sizeTable[size]
}

func (r *StyleResolver) IsDark() bool {
	return r.controller.IsDark()
}

func (r *StyleResolver) Color(variant tokens.ColorVariant, shade tokens.ColorShade) string {
	return r.controller.Color(variant, shade)
}

// Declarations renders the resting state as an inline style list.
func (s VariantStyle) Declarations() string {
	return declarations(
		"background", s.Background,
		"color", s.Color,
		"border-color", s.Border,
	)
}

func (s SizeStyle) Declarations() string {
	return declarations(
		"padding", s.Padding,
		"font-size", s.FontSize,
		"min-height", s.MinHeight,
	)
}

func declarations(pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		parts = append(parts, pairs[i]+": "+pairs[i+1])
	}
	return strings.Join(parts, "; ")
}
