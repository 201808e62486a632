package tokens

import (
	"strconv"
	"strings"
)

// ColorVariant names a palette family.
type ColorVariant string

const (
	Primary   ColorVariant = "primary"
	Secondary ColorVariant = "secondary"
	Success   ColorVariant = "success"
	Warning   ColorVariant = "warning"
	Danger    ColorVariant = "danger"
	Gray      ColorVariant = "gray"
)

var colorVariants = []ColorVariant{Primary, Secondary, Success, Warning, Danger, Gray}

// ColorVariants lists every palette family in declaration order.
func ColorVariants() []ColorVariant {
	return append([]ColorVariant(nil), colorVariants...)
}

// Valid reports whether v is a known palette family.
func (v ColorVariant) Valid() bool {
	for _, known := range colorVariants {
		if v == known {
			return true
		}
	}
	return false
}

// ButtonVariant is the subset of palette families a button may use.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonDanger    ButtonVariant = "danger"
	ButtonSuccess   ButtonVariant = "success"
	ButtonWarning   ButtonVariant = "warning"
)

var buttonVariants = []ButtonVariant{ButtonPrimary, ButtonSecondary, ButtonDanger, ButtonSuccess, ButtonWarning}

// ButtonVariants lists every button variant.
func ButtonVariants() []ButtonVariant {
	return append([]ButtonVariant(nil), buttonVariants...)
}

// Valid reports whether v is a known button variant.
func (v ButtonVariant) Valid() bool {
	for _, known := range buttonVariants {
		if v == known {
			return true
		}
	}
	return false
}

// Color returns the palette family backing the button variant.
func (v ButtonVariant) Color() ColorVariant {
	return ColorVariant(v)
}

// ComponentSize selects one of the fixed component dimensions.
type ComponentSize string

const (
	SizeSmall  ComponentSize = "sm"
	SizeMedium ComponentSize = "md"
	SizeLarge  ComponentSize = "lg"
)

var componentSizes = []ComponentSize{SizeSmall, SizeMedium, SizeLarge}

// ComponentSizes lists the sizes from smallest to largest.
func ComponentSizes() []ComponentSize {
	return append([]ComponentSize(nil), componentSizes...)
}

func (s ComponentSize) Valid() bool {
	for _, known := range componentSizes {
		if s == known {
			return true
		}
	}
	return false
}

// ColorShade is a step on a palette family's lightness scale.
type ColorShade int

// DefaultShade is used when a caller does not ask for a specific shade.
const DefaultShade ColorShade = 500

var colorShades = []ColorShade{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// ColorShades lists the scale from lightest to darkest.
func ColorShades() []ColorShade {
	return append([]ColorShade(nil), colorShades...)
}

func (s ColorShade) Valid() bool {
	for _, known := range colorShades {
		if s == known {
			return true
		}
	}
	return false
}

func (s ColorShade) String() string {
	return strconv.Itoa(int(s))
}

// SpacingSize is a step on the spacing scale.
type SpacingSize string

var spacingSizes = []SpacingSize{"xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl", "5xl"}

func SpacingSizes() []SpacingSize {
	return append([]SpacingSize(nil), spacingSizes...)
}

func (s SpacingSize) Valid() bool {
	for _, known := range spacingSizes {
		if s == known {
			return true
		}
	}
	return false
}

// BorderRadius is a step on the corner radius scale.
type BorderRadius string

var borderRadii = []BorderRadius{"sm", "md", "lg", "xl", "full"}

func BorderRadii() []BorderRadius {
	return append([]BorderRadius(nil), borderRadii...)
}

func (r BorderRadius) Valid() bool {
	for _, known := range borderRadii {
		if r == known {
			return true
		}
	}
	return false
}

// Shadow is a step on the elevation scale.
type Shadow string

var shadows = []Shadow{"sm", "md", "lg", "xl"}

func Shadows() []Shadow {
	return append([]Shadow(nil), shadows...)
}

func (s Shadow) Valid() bool {
	for _, known := range shadows {
		if s == known {
			return true
		}
	}
	return false
}

// FontSize is a step on the type scale.
type FontSize string

var fontSizes = []FontSize{"xs", "sm", "md", "lg", "xl", "2xl", "3xl"}

func FontSizes() []FontSize {
	return append([]FontSize(nil), fontSizes...)
}

func (f FontSize) Valid() bool {
	for _, known := range fontSizes {
		if f == known {
			return true
		}
	}
	return false
}

// VariablePrefix starts every custom property owned by the design system.
const VariablePrefix = "--ds-"

// ColorVariable returns the custom property holding a palette color, for
// example "--ds-primary-600".
func ColorVariable(variant ColorVariant, shade ColorShade) string {
	return VariablePrefix + string(variant) + "-" + shade.String()
}

func SpacingVariable(size SpacingSize) string {
	return VariablePrefix + "spacing-" + string(size)
}

func RadiusVariable(radius BorderRadius) string {
	return VariablePrefix + "radius-" + string(radius)
}

func ShadowVariable(shadow Shadow) string {
	return VariablePrefix + "shadow-" + string(shadow)
}

func FontSizeVariable(size FontSize) string {
	return VariablePrefix + "font-size-" + string(size)
}

// Var wraps a custom property name in a CSS var() reference.
func Var(name string) string {
	return "var(" + name + ")"
}

var semanticPrefixes = []string{"text-", "background", "border", "surface"}

// IsDesignVariable reports whether name belongs to one of the custom property
// families the design system publishes: palette colors, the semantic
// text/background/border/surface tokens and the spacing, radius, shadow and
// font-size scales.
func IsDesignVariable(name string) bool {
	rest, ok := strings.CutPrefix(name, VariablePrefix)
	if !ok || rest == "" {
		return false
	}
	for _, prefix := range semanticPrefixes {
		if strings.HasPrefix(rest, prefix) {
			return true
		}
	}
	for _, prefix := range []string{"spacing-", "radius-", "shadow-", "font-size-"} {
		if strings.HasPrefix(rest, prefix) {
			return true
		}
	}
	idx := strings.LastIndex(rest, "-")
	if idx <= 0 {
		return false
	}
	shade, err := strconv.Atoi(rest[idx+1:])
	if err != nil {
		return false
	}
	return ColorVariant(rest[:idx]).Valid() && ColorShade(shade).Valid()
}
