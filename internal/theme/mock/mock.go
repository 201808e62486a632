// Package mock provides an in-memory theme host for tests and previews.
package mock

import (
	"doroga/internal/theme"
	"doroga/internal/tokens"
)

// Host keeps storage, the OS preference and the root element in memory.
type Host struct {
	*theme.SheetDocument

	items  map[string]string
	writes int
	scheme *theme.MediaQuery
}

var _ theme.Host = (*Host)(nil)

// New returns an empty host with a light OS preference and the default
// token sheet.
func New() *Host {
	h := &Host{
		items:  make(map[string]string),
		scheme: theme.NewMediaQuery(theme.DarkSchemeQuery, false),
	}
	h.SheetDocument = theme.NewSheetDocument(tokens.DefaultSheet(), h.scheme.Matches)
	return h
}

// Seed stores value under key without counting it as a write.
func (h *Host) Seed(key, value string) *Host {
	h.items[key] = value
	return h
}

func (h *Host) Item(key string) (string, bool) {
	value, ok := h.items[key]
	return value, ok
}

func (h *Host) SetItem(key, value string) {
	h.items[key] = value
	h.writes++
}

// Writes counts SetItem calls.
func (h *Host) Writes() int {
	return h.writes
}

func (h *Host) PrefersDark() bool {
	return h.scheme.Matches()
}

func (h *Host) SubscribeColorScheme(fn func(dark bool)) func() {
	return h.scheme.Subscribe(fn)
}

// SetPrefersDark changes the OS preference without delivering a change event.
func (h *Host) SetPrefersDark(dark bool) *Host {
	h.scheme.Set(dark)
	return h
}

// Emit changes the OS preference and delivers a change event.
func (h *Host) Emit(dark bool) {
	h.scheme.Dispatch(dark)
}

// Listeners reports how many OS preference listeners are subscribed.
func (h *Host) Listeners() int {
	return h.scheme.Listeners()
}

// RootClasses returns the classes on the root element.
func (h *Host) RootClasses() []string {
	return h.Classes.Names()
}
