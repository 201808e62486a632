package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"doroga/internal/theme"
	"doroga/internal/views/layout"
)

func newPickCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose the theme mode interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), "pick theme", flags)
			if err != nil {
				return err
			}
			defer s.close()

			p := tea.NewProgram(newPickModel(s.controller, newRenderer(cmd.OutOrStdout())),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithContext(cmd.Context()),
			)
			final, err := p.Run()
			if err != nil {
				return newCommandError("pick theme", "running the picker", err, "Run 'themectl set <mode>' when no terminal is attached.")
			}
			if m, ok := final.(pickModel); ok && m.chosen {
				return renderStatus(cmd, s.controller.Status(), &outputOptions{})
			}
			return nil
		},
	}
}

// pickModel lists the modes with the current one preselected; enter applies
// the highlighted mode through the controller.
type pickModel struct {
	controller *theme.Controller
	options    []layout.ModeDefinition
	cursor     int
	chosen     bool
	quitting   bool
	r          *renderer
}

func newPickModel(controller *theme.Controller, r *renderer) pickModel {
	m := pickModel{controller: controller, options: layout.ModeOptions(), r: r}
	for i, option := range m.options {
		if option.Mode == controller.CurrentTheme() {
			m.cursor = i
		}
	}
	return m
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.controller.SetTheme(m.options[m.cursor].Mode)
		m.chosen = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pickModel) View() string {
	if m.chosen || m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString("Theme mode\n\n")
	for i, option := range m.options {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		label := option.Label
		if option.Mode == m.controller.CurrentTheme() {
			label += " (current)"
		}
		fmt.Fprintf(&b, "%s%s  %s\n", marker, m.r.lg.NewStyle().Bold(i == m.cursor).Render(label), option.Description)
	}
	b.WriteString("\n↑/↓ move • enter apply • q quit\n")
	return b.String()
}
