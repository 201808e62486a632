package theme_test

import (
	"encoding/json"
	"testing"

	"doroga/internal/theme"
	"doroga/internal/theme/mock"
	"doroga/internal/tokens"
)

func TestVariantStylesPrimary(t *testing.T) {
	t.Parallel()

	r := theme.NewStyleResolver(newController(mock.New()))
	styles := r.VariantStyles(tokens.Primary)

	raw, err := json.Marshal(styles)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(fields) != 5 {
		t.Fatalf("expected five keys, got %v", fields)
	}
	for _, key := range []string{"background", "backgroundHover", "backgroundActive", "color", "border"} {
		if fields[key] == "" {
			t.Fatalf("expected non-empty %q in %v", key, fields)
		}
	}
	if styles.Color != "#ffffff" {
		t.Fatalf("color = %q, want #ffffff", styles.Color)
	}

	want := theme.VariantStyle{
		Background:       "#2563eb",
		BackgroundHover:  "#1d4ed8",
		BackgroundActive: "#1e40af",
		Color:            "#ffffff",
		Border:           "#2563eb",
	}
	if styles != want {
		t.Fatalf("VariantStyles(primary) = %+v, want %+v", styles, want)
	}
}

func TestVariantStylesEveryVariantResolves(t *testing.T) {
	t.Parallel()

	r := theme.NewStyleResolver(newController(mock.New()))
	for _, variant := range tokens.ColorVariants() {
		s := r.VariantStyles(variant)
		if s.Background == "" || s.BackgroundHover == "" || s.BackgroundActive == "" || s.Border == "" {
			t.Fatalf("unresolved color for %q: %+v", variant, s)
		}
		if s.Background != s.Border {
			t.Fatalf("border should match background for %q", variant)
		}
	}
}

func TestSizeStylesTable(t *testing.T) {
	t.Parallel()

	r := theme.NewStyleResolver(newController(mock.New()))
	cases := map[tokens.ComponentSize]theme.SizeStyle{
		tokens.SizeSmall: {
			Padding:   "var(--ds-spacing-xs) var(--ds-spacing-md)",
			FontSize:  "var(--ds-font-size-xs)",
			MinHeight: "2rem",
		},
		tokens.SizeMedium: {
			Padding:   "var(--ds-spacing-sm) var(--ds-spacing-lg)",
			FontSize:  "var(--ds-font-size-sm)",
			MinHeight: "2.5rem",
		},
		tokens.SizeLarge: {
			Padding:   "var(--ds-spacing-md) var(--ds-spacing-xl)",
			FontSize:  "var(--ds-font-size-md)",
			MinHeight: "3rem",
		},
	}
	for size, want := range cases {
		if got := r.SizeStyles(size); got != want {
			t.Fatalf("SizeStyles(%q) = %+v, want %+v", size, got, want)
		}
	}
	if got := r.SizeStyles("xl"); got != (theme.SizeStyle{}) {
		t.Fatalf("unknown size should yield zero record, got %+v", got)
	}
}

func TestResolverPassThrough(t *testing.T) {
	t.Parallel()

	c := newController(mock.New())
	r := theme.NewStyleResolver(c)
	c.SetTheme(theme.ModeDark)
	if !r.IsDark() {
		t.Fatal("resolver should report the controller's darkness")
	}
	if r.Color(tokens.Gray, 900) != c.Color(tokens.Gray, 900) {
		t.Fatal("resolver color lookup should match the controller")
	}
}

func TestDeclarations(t *testing.T) {
	t.Parallel()

	size := theme.SizeStyle{Padding: "1rem", FontSize: "", MinHeight: "2rem"}
	if got := size.Declarations(); got != "padding: 1rem; min-height: 2rem" {
		t.Fatalf("Declarations() = %q", got)
	}
	variant := theme.VariantStyle{Background: "#000", Color: "#fff", Border: "#111"}
	if got := variant.Declarations(); got != "background: #000; color: #fff; border-color: #111" {
		t.Fatalf("Declarations() = %q", got)
	}
}
