package theme

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		want  Mode
		ok    bool
	}{
		{"light", ModeLight, true},
		{"dark", ModeDark, true},
		{"system", ModeSystem, true},
		{"Dark", "", false},
		{" light", "", false},
		{"", "", false},
		{"auto", "", false},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.value)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseMode(%q) = %q, %v", tc.value, got, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidMode) {
			t.Fatalf("ParseMode(%q) error = %v, want ErrInvalidMode", tc.value, err)
		}
	}
}

func TestParseModeLoose(t *testing.T) {
	t.Parallel()

	got, err := ParseModeLoose("  Dark ")
	if err != nil || got != ModeDark {
		t.Fatalf("ParseModeLoose = %q, %v", got, err)
	}
	if _, err := ParseModeLoose("night"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestNextCyclesThroughModes(t *testing.T) {
	t.Parallel()

	mode := ModeLight
	for i := 0; i < 3; i++ {
		mode = mode.Next()
	}
	if mode != ModeLight {
		t.Fatalf("three steps from light ended at %q", mode)
	}
	if Mode("bogus").Next() != ModeLight {
		t.Fatal("unknown mode should restart the cycle at light")
	}
}

func TestIconMapping(t *testing.T) {
	t.Parallel()

	seen := map[Icon]bool{}
	for _, mode := range Modes() {
		seen[mode.Icon()] = true
	}
	if len(seen) != 3 || !seen[IconSun] || !seen[IconMoon] || !seen[IconMonitor] {
		t.Fatalf("unexpected icon set %v", seen)
	}
	if ModeLight.Icon() != IconSun || ModeDark.Icon() != IconMoon || ModeSystem.Icon() != IconMonitor {
		t.Fatal("icon mapping mismatch")
	}
}

func TestRootClass(t *testing.T) {
	t.Parallel()

	if ModeLight.RootClass() != "light-theme" || ModeDark.RootClass() != "dark-theme" || ModeSystem.RootClass() != "" {
		t.Fatal("unexpected root class mapping")
	}
}
