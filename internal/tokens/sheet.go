package tokens

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Scheme is the color scheme a set of custom property values applies to.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// Class returns the root element class that forces the scheme.
func (s Scheme) Class() string {
	return string(s) + "-theme"
}

// ErrInvalidSheet is returned when a token sheet is malformed or incomplete.
var ErrInvalidSheet = errors.New("invalid token sheet")

//go:embed default.yaml
var defaultSheetYAML []byte

// Sheet holds the values behind every design-system custom property.
type Sheet struct {
	Palette  map[ColorVariant]map[ColorShade]string `yaml:"palette" validate:"required,dive,required,dive,hexcolor"`
	Spacing  map[SpacingSize]string                 `yaml:"spacing" validate:"required,dive,required"`
	Radius   map[BorderRadius]string                `yaml:"radius" validate:"required,dive,required"`
	Shadow   map[Shadow]string                      `yaml:"shadow" validate:"required,dive,required"`
	FontSize map[FontSize]string                    `yaml:"font-size" validate:"required,dive,required"`
	Schemes  map[Scheme]map[string]string           `yaml:"schemes" validate:"required,dive,keys,oneof=light dark,endkeys,dive,keys,startswith=--ds-,endkeys,required"`

	base map[string]string
}

var (
	validate     = validator.New()
	defaultOnce  sync.Once
	defaultSheet *Sheet
)

// DefaultSheet returns the token sheet compiled into the binary. The embedded
// document is checked by the package tests, so a parse failure here is a
// programming error.
func DefaultSheet() *Sheet {
	defaultOnce.Do(func() {
		sheet, err := ParseSheet(defaultSheetYAML)
		if err != nil {
			panic(fmt.Sprintf("tokens: embedded sheet: %v", err))
		}
		defaultSheet = sheet
	})
	return defaultSheet
}

// LoadSheet reads a YAML token sheet from disk. An empty path yields the
// embedded default sheet.
func LoadSheet(path string) (*Sheet, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultSheet(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token sheet: %w", err)
	}
	sheet, err := ParseSheet(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

// ParseSheet decodes and validates a YAML token sheet.
func ParseSheet(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidSheet, err)
	}
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	sheet.index()
	return &sheet, nil
}

// Validate checks value formats and that every scale step is present.
func (s *Sheet) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSheet, err)
	}

	var missing []string
	for _, variant := range colorVariants {
		shades, ok := s.Palette[variant]
		if !ok {
			missing = append(missing, "palette."+string(variant))
			continue
		}
		for _, shade := range colorShades {
			if _, ok := shades[shade]; !ok {
				missing = append(missing, ColorVariable(variant, shade))
			}
		}
	}
	for _, size := range spacingSizes {
		if _, ok := s.Spacing[size]; !ok {
			missing = append(missing, SpacingVariable(size))
		}
	}
	for _, radius := range borderRadii {
		if _, ok := s.Radius[radius]; !ok {
			missing = append(missing, RadiusVariable(radius))
		}
	}
	for _, shadow := range shadows {
		if _, ok := s.Shadow[shadow]; !ok {
			missing = append(missing, ShadowVariable(shadow))
		}
	}
	for _, size := range fontSizes {
		if _, ok := s.FontSize[size]; !ok {
			missing = append(missing, FontSizeVariable(size))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidSheet, strings.Join(missing, ", "))
	}
	return nil
}

func (s *Sheet) index() {
	base := make(map[string]string)
	for variant, shades := range s.Palette {
		for shade, value := range shades {
			base[ColorVariable(variant, shade)] = value
		}
	}
	for size, value := range s.Spacing {
		base[SpacingVariable(size)] = value
	}
	for radius, value := range s.Radius {
		base[RadiusVariable(radius)] = value
	}
	for shadow, value := range s.Shadow {
		base[ShadowVariable(shadow)] = value
	}
	for size, value := range s.FontSize {
		base[FontSizeVariable(size)] = value
	}
	s.base = base
}

// Lookup resolves a custom property for the given scheme. Scheme-specific
// values shadow the scheme-independent scales.
func (s *Sheet) Lookup(scheme Scheme, name string) (string, bool) {
	if value, ok := s.Schemes[scheme][name]; ok {
		return value, true
	}
	value, ok := s.base[name]
	return value, ok
}

// CSS renders the sheet as a stylesheet. The light scheme applies by default,
// the dark scheme applies under the dark-theme class or, when no class forces
// a scheme, under a dark OS preference.
func (s *Sheet) CSS() string {
	var b strings.Builder

	b.WriteString(":root {\n")
	writeDeclarations(&b, "  ", s.base)
	writeDeclarations(&b, "  ", s.Schemes[SchemeLight])
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, ":root.%s {\n", SchemeLight.Class())
	writeDeclarations(&b, "  ", s.Schemes[SchemeLight])
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, ":root.%s {\n", SchemeDark.Class())
	writeDeclarations(&b, "  ", s.Schemes[SchemeDark])
	b.WriteString("}\n\n")

	b.WriteString("@media (prefers-color-scheme: dark) {\n")
	fmt.Fprintf(&b, "  :root:not(.%s) {\n", SchemeLight.Class())
	writeDeclarations(&b, "    ", s.Schemes[SchemeDark])
	b.WriteString("  }\n}\n")

	return b.String()
}

func writeDeclarations(b *strings.Builder, indent string, values map[string]string) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(b, "%s%s: %s;\n", indent, name, values[name])
	}
}
