package main

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"doroga/internal/theme"
	"doroga/internal/theme/mock"
)

func newPickFixture(t *testing.T, mode theme.Mode) (pickModel, *mock.Host) {
	t.Helper()
	host := mock.New().Seed(theme.StorageKey, string(mode))
	controller := theme.NewController(theme.NewState(), host)
	t.Cleanup(controller.Mount())
	return newPickModel(controller, newRenderer(&bytes.Buffer{})), host
}

func press(t *testing.T, m pickModel, key tea.KeyMsg) (pickModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	model, ok := next.(pickModel)
	require.True(t, ok)
	return model, cmd
}

func TestPickStartsOnCurrentMode(t *testing.T) {
	m, _ := newPickFixture(t, theme.ModeDark)
	require.Equal(t, theme.ModeDark, m.options[m.cursor].Mode)
	require.Contains(t, m.View(), "> Dark (current)")
}

func TestPickAppliesHighlightedMode(t *testing.T) {
	m, host := newPickFixture(t, theme.ModeLight)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	require.True(t, m.chosen)
	require.Equal(t, theme.ModeSystem, m.controller.CurrentTheme())
	value, _ := host.Item(theme.StorageKey)
	require.Equal(t, "system", value)
	require.Empty(t, m.View())
}

func TestPickCursorStaysInRange(t *testing.T) {
	m, _ := newPickFixture(t, theme.ModeLight)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.cursor)

	for i := 0; i < 5; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, len(m.options)-1, m.cursor)
}

func TestPickQuitLeavesModeUntouched(t *testing.T) {
	m, host := newPickFixture(t, theme.ModeLight)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	require.True(t, m.quitting)
	require.False(t, m.chosen)
	require.Equal(t, theme.ModeLight, m.controller.CurrentTheme())
	require.Zero(t, host.Writes())
}
