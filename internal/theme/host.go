package theme

import (
	"strings"

	"doroga/internal/tokens"
)

// DarkSchemeQuery is the media query whose match state is the OS preference.
const DarkSchemeQuery = "(prefers-color-scheme: dark)"

// Storage is the key-value slot the mode is persisted in.
type Storage interface {
	Item(key string) (string, bool)
	SetItem(key, value string)
}

// ColorScheme reports the OS color-scheme preference and its changes.
type ColorScheme interface {
	PrefersDark() bool
	SubscribeColorScheme(fn func(dark bool)) (unsubscribe func())
}

// Document is the root element the theme is applied to.
type Document interface {
	RemoveRootClass(names ...string)
	AddRootClass(name string)
	ComputedVariable(name string) string
}

// Host bundles the environment capabilities a Controller needs.
type Host interface {
	Storage
	ColorScheme
	Document
}

// ClassList is an ordered set of class names.
type ClassList struct {
	names []string
}

func (c *ClassList) Add(name string) {
	if name == "" || c.Contains(name) {
		return
	}
	c.names = append(c.names, name)
}

func (c *ClassList) Remove(names ...string) {
	kept := c.names[:0]
	for _, existing := range c.names {
		drop := false
		for _, name := range names {
			if existing == name {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, existing)
		}
	}
	c.names = kept
}

func (c *ClassList) Contains(name string) bool {
	for _, existing := range c.names {
		if existing == name {
			return true
		}
	}
	return false
}

// Names returns a copy of the classes in insertion order.
func (c *ClassList) Names() []string {
	return append([]string(nil), c.names...)
}

// String joins the classes for a class attribute.
func (c *ClassList) String() string {
	return strings.Join(c.names, " ")
}

// MediaQuery fans a match-state change out to its listeners in the order
// they subscribed.
type MediaQuery struct {
	Query string

	matches   bool
	nextID    int
	listeners []mediaListener
}

type mediaListener struct {
	id int
	fn func(bool)
}

// NewMediaQuery returns a query with the given initial match state.
func NewMediaQuery(query string, matches bool) *MediaQuery {
	return &MediaQuery{Query: query, matches: matches}
}

func (q *MediaQuery) Matches() bool {
	return q.matches
}

func (q *MediaQuery) Subscribe(fn func(matches bool)) (unsubscribe func()) {
	q.nextID++
	id := q.nextID
	q.listeners = append(q.listeners, mediaListener{id: id, fn: fn})
	return func() {
		for i, l := range q.listeners {
			if l.id == id {
				q.listeners = append(q.listeners[:i:i], q.listeners[i+1:]...)
				return
			}
		}
	}
}

// Set changes the match state without notifying listeners.
func (q *MediaQuery) Set(matches bool) {
	q.matches = matches
}

// Dispatch records the new match state and delivers one change event to
// every listener.
func (q *MediaQuery) Dispatch(matches bool) {
	q.matches = matches
	listeners := append([]mediaListener(nil), q.listeners...)
	for _, l := range listeners {
		l.fn(matches)
	}
}

// Listeners reports how many listeners are subscribed.
func (q *MediaQuery) Listeners() int {
	return len(q.listeners)
}

// SheetDocument is a Document whose computed custom properties come from a
// token sheet, resolved the way the sheet's stylesheet cascades: a forced
// class wins, otherwise the OS preference picks the scheme.
type SheetDocument struct {
	Classes ClassList

	sheet       *tokens.Sheet
	prefersDark func() bool
}

// NewSheetDocument returns a document over sheet. prefersDark is consulted on
// every lookup while no scheme class is set.
func NewSheetDocument(sheet *tokens.Sheet, prefersDark func() bool) *SheetDocument {
	if sheet == nil {
		sheet = tokens.DefaultSheet()
	}
	return &SheetDocument{sheet: sheet, prefersDark: prefersDark}
}

func (d *SheetDocument) RemoveRootClass(names ...string) {
	d.Classes.Remove(names...)
}

func (d *SheetDocument) AddRootClass(name string) {
	d.Classes.Add(name)
}

// ComputedVariable returns the value of a custom property, or "" when the
// sheet does not define it.
func (d *SheetDocument) ComputedVariable(name string) string {
	value, _ := d.sheet.Lookup(d.Scheme(), strings.TrimSpace(name))
	return value
}

// Scheme is the scheme the stylesheet currently applies.
func (d *SheetDocument) Scheme() tokens.Scheme {
	switch {
	case d.Classes.Contains(tokens.SchemeDark.Class()):
		return tokens.SchemeDark
	case d.Classes.Contains(tokens.SchemeLight.Class()):
		return tokens.SchemeLight
	case d.prefersDark != nil && d.prefersDark():
		return tokens.SchemeDark
	default:
		return tokens.SchemeLight
	}
}
