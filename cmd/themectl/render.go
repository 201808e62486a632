package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"doroga/internal/theme"
)

// renderer styles output for the writer it prints to; lipgloss drops colors
// when the writer is not a terminal.
type renderer struct {
	lg *lipgloss.Renderer
}

func newRenderer(w io.Writer) *renderer {
	return &renderer{lg: lipgloss.NewRenderer(w)}
}

func (r *renderer) swatch(value string) string {
	if value == "" {
		return ""
	}
	return r.lg.NewStyle().
		Background(lipgloss.Color(value)).
		Foreground(lipgloss.Color(theme.OnVariantColor)).
		Padding(0, 1).
		Render("  ")
}

func (r *renderer) mode(status theme.Status) string {
	style := r.lg.NewStyle().Bold(true)
	if status.Dark {
		style = style.Foreground(lipgloss.Color("#f9fafb")).Background(lipgloss.Color("#030712"))
	} else {
		style = style.Foreground(lipgloss.Color("#111827")).Background(lipgloss.Color("#ffffff"))
	}
	return style.Render(string(status.Mode))
}
