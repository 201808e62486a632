package layout

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"doroga/internal/theme"
)

func TestModeByIDReturnsDefinition(t *testing.T) {
	def := ModeByID(theme.ModeDark)
	if def.Mode != theme.ModeDark || def.Label != "Dark" {
		t.Fatalf("expected dark definition, got %+v", def)
	}
}

func TestModeByIDFallsBackToDefault(t *testing.T) {
	def := ModeByID("sepia")
	if def.Mode != theme.DefaultMode {
		t.Fatalf("expected fallback to default mode, got %s", def.Mode)
	}
}

func TestModeOptionsFollowToggleOrder(t *testing.T) {
	options := ModeOptions()
	want := theme.Modes()
	if len(options) != len(want) {
		t.Fatalf("expected %d options, got %d", len(want), len(options))
	}
	for i, option := range options {
		if option.Mode != want[i] {
			t.Fatalf("option %d = %s, want %s", i, option.Mode, want[i])
		}
	}
}

func TestRootAttributes(t *testing.T) {
	forced := RootAttributes(theme.Status{Mode: theme.ModeDark, Dark: true, RootClass: "dark-theme"})
	if forced != ` class="dark-theme" data-theme-mode="dark" data-theme-dark="true"` {
		t.Fatalf("unexpected forced attributes %q", forced)
	}

	system := RootAttributes(theme.Status{Mode: theme.ModeSystem})
	if strings.Contains(system, "class=") {
		t.Fatalf("system mode must not force a class: %q", system)
	}
}

func TestLayoutRendersProvidedContent(t *testing.T) {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := w.Write([]byte("<main>content</main>"))
		return err
	})

	var buf bytes.Buffer
	page := Page{Title: "Tokens & Themes", Theme: theme.Status{Mode: theme.ModeLight, RootClass: "light-theme"}}
	if err := Layout(page, content).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render layout: %v", err)
	}
	out := buf.String()
	for _, fragment := range []string{
		"<title>Tokens &amp; Themes</title>",
		`<html lang="en" class="light-theme"`,
		`href="/assets/tokens.css"`,
		"<main>content</main>",
		`addEventListener("theme-changed"`,
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in output: %s", fragment, out)
		}
	}
}
