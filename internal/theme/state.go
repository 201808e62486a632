package theme

// Snapshot is a copy of the two state cells.
type Snapshot struct {
	Mode Mode
	Dark bool
}

// Observer is called after a state cell changed.
type Observer func(prev, next Snapshot)

// State holds the current mode and the resolved darkness. Every controller
// built over the same State shares both cells. A State belongs to a single
// goroutine; it performs no locking.
type State struct {
	mode Mode
	dark bool

	nextID    int
	observers []observerEntry
}

type observerEntry struct {
	id int
	fn Observer
}

// NewState returns a state in the default mode, resolved to light.
func NewState() *State {
	return &State{mode: DefaultMode}
}

func (s *State) Mode() Mode {
	return s.mode
}

func (s *State) Dark() bool {
	return s.dark
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{Mode: s.mode, Dark: s.dark}
}

// SetMode stores mode and reports whether it differed from the previous
// value. Observers run before SetMode returns, only on change.
func (s *State) SetMode(mode Mode) bool {
	if s.mode == mode {
		return false
	}
	prev := s.Snapshot()
	s.mode = mode
	s.notify(prev)
	return true
}

// SetDark stores the resolved darkness, notifying observers on change.
func (s *State) SetDark(dark bool) bool {
	if s.dark == dark {
		return false
	}
	prev := s.Snapshot()
	s.dark = dark
	s.notify(prev)
	return true
}

// Observe registers fn and returns a function that removes it. Observers run
// in registration order.
func (s *State) Observe(fn Observer) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observerEntry{id: id, fn: fn})
	return func() {
		for i, entry := range s.observers {
			if entry.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *State) notify(prev Snapshot) {
	next := s.Snapshot()
	// observers may cancel themselves while running
	observers := append([]observerEntry(nil), s.observers...)
	for _, entry := range observers {
		entry.fn(prev, next)
	}
}
