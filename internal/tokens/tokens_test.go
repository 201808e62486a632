package tokens

import "testing"

func TestColorVariable(t *testing.T) {
	t.Parallel()

	if got := ColorVariable(Primary, 600); got != "--ds-primary-600" {
		t.Fatalf("ColorVariable(primary, 600) = %q", got)
	}
	if got := ColorVariable(Gray, DefaultShade); got != "--ds-gray-500" {
		t.Fatalf("ColorVariable(gray, default) = %q", got)
	}
}

func TestScaleVariables(t *testing.T) {
	t.Parallel()

	cases := []struct {
		got  string
		want string
	}{
		{SpacingVariable("2xl"), "--ds-spacing-2xl"},
		{RadiusVariable("full"), "--ds-radius-full"},
		{ShadowVariable("md"), "--ds-shadow-md"},
		{FontSizeVariable("xs"), "--ds-font-size-xs"},
		{Var(SpacingVariable("sm")), "var(--ds-spacing-sm)"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("got %q, want %q", tc.got, tc.want)
		}
	}
}

func TestMembership(t *testing.T) {
	t.Parallel()

	if !Warning.Valid() || ColorVariant("teal").Valid() {
		t.Fatal("unexpected color variant membership")
	}
	if !ButtonDanger.Valid() || ButtonVariant("gray").Valid() {
		t.Fatal("gray is a palette family but not a button variant")
	}
	if !SizeLarge.Valid() || ComponentSize("xl").Valid() {
		t.Fatal("unexpected component size membership")
	}
	if !ColorShade(950).Valid() || ColorShade(550).Valid() {
		t.Fatal("unexpected shade membership")
	}
	if !SpacingSize("5xl").Valid() || SpacingSize("6xl").Valid() {
		t.Fatal("unexpected spacing membership")
	}
	if !BorderRadius("full").Valid() || !Shadow("xl").Valid() || !FontSize("3xl").Valid() {
		t.Fatal("expected scale members to be valid")
	}
}

func TestListsAreCopies(t *testing.T) {
	t.Parallel()

	variants := ColorVariants()
	variants[0] = "mutated"
	if ColorVariants()[0] != Primary {
		t.Fatal("ColorVariants exposed the package slice")
	}
	if len(ColorShades()) != 11 {
		t.Fatalf("expected 11 shades, got %d", len(ColorShades()))
	}
}

func TestIsDesignVariable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want bool
	}{
		{"--ds-primary-500", true},
		{"--ds-gray-950", true},
		{"--ds-text-primary", true},
		{"--ds-background", true},
		{"--ds-background-muted", true},
		{"--ds-border-strong", true},
		{"--ds-surface", true},
		{"--ds-spacing-md", true},
		{"--ds-font-size-xs", true},
		{"--ds-primary-550", false},
		{"--ds-teal-500", false},
		{"--ds-", false},
		{"--other-primary-500", false},
		{"primary-500", false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsDesignVariable(tc.name); got != tc.want {
				t.Fatalf("IsDesignVariable(%q) = %t, want %t", tc.name, got, tc.want)
			}
		})
	}
}
