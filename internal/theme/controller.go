package theme

import (
	"log/slog"

	applog "doroga/internal/log"
	"doroga/internal/tokens"
)

// StorageKey is the slot the mode is persisted under unless overridden.
const StorageKey = "doroga-ui-theme"

// Controller reads, changes and applies the theme mode over a State and a
// Host. All operations complete before returning; nothing is deferred.
type Controller struct {
	state  *State
	host   Host
	key    string
	logger *slog.Logger

	mounted       bool
	unwatchMode   func()
	unwatchScheme func()
}

// Option customizes a Controller.
type Option func(*Controller)

// WithStorageKey persists the mode under key instead of StorageKey.
func WithStorageKey(key string) Option {
	return func(c *Controller) {
		if key != "" {
			c.key = key
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController binds a controller to state and host. From this point any
// change of the state's mode, by this controller or another one sharing the
// state, is applied to the host.
func NewController(state *State, host Host, opts ...Option) *Controller {
	if state == nil {
		state = NewState()
	}
	c := &Controller{
		state:  state,
		host:   host,
		key:    StorageKey,
		logger: applog.With("component", "theme"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.unwatchMode = state.Observe(func(prev, next Snapshot) {
		if prev.Mode != next.Mode {
			c.apply()
		}
	})
	return c
}

// State exposes the shared state the controller operates on.
func (c *Controller) State() *State {
	return c.state
}

// InitTheme adopts the persisted mode when it is valid and applies the
// result. Calling it again re-derives the same state.
func (c *Controller) InitTheme() {
	if stored, ok := c.host.Item(c.key); ok {
		if mode, err := ParseMode(stored); err == nil {
			c.state.SetMode(mode)
		} else {
			c.logger.Debug("ignoring persisted theme", "key", c.key, "value", stored)
		}
	}
	c.apply()
}

// SetTheme stores, persists and applies mode. Callers pass one of the three
// modes; see ParseMode for untrusted input.
func (c *Controller) SetTheme(mode Mode) {
	prev := c.state.Mode()
	c.state.SetMode(mode)
	c.host.SetItem(c.key, string(mode))
	c.apply()
	c.logger.Debug("theme set", "from", prev, "to", mode, "dark", c.state.Dark())
}

// ToggleTheme advances light → dark → system → light and returns the new mode.
func (c *Controller) ToggleTheme() Mode {
	next := c.state.Mode().Next()
	c.SetTheme(next)
	return next
}

// apply resolves the darkness for the current mode and forces the matching
// root class. System mode carries no class so the OS-level rules apply.
func (c *Controller) apply() {
	mode := c.state.Mode()
	c.host.RemoveRootClass(forcedClasses...)
	if mode == ModeSystem {
		c.state.SetDark(c.host.PrefersDark())
		return
	}
	c.state.SetDark(mode == ModeDark)
	c.host.AddRootClass(mode.RootClass())
}

// CSSVariable reads the current computed value of a custom property.
func (c *Controller) CSSVariable(name string) string {
	return c.host.ComputedVariable(name)
}

// Color reads the palette color for variant at shade.
func (c *Controller) Color(variant tokens.ColorVariant, shade tokens.ColorShade) string {
	return c.CSSVariable(tokens.ColorVariable(variant, shade))
}

// BaseColor reads the palette color for variant at the default shade.
func (c *Controller) BaseColor(variant tokens.ColorVariant) string {
	return c.Color(variant, tokens.DefaultShade)
}

func (c *Controller) CurrentTheme() Mode {
	return c.state.Mode()
}

func (c *Controller) IsDark() bool {
	return c.state.Dark()
}

func (c *Controller) IsSystemTheme() bool {
	return c.state.Mode() == ModeSystem
}

func (c *Controller) ThemeIcon() Icon {
	return c.state.Mode().Icon()
}

// WatchSystemTheme listens for OS preference changes. While the mode is
// system at the time of an event, the resolved darkness follows the event.
// The returned function removes the listener.
func (c *Controller) WatchSystemTheme() (unsubscribe func()) {
	return c.host.SubscribeColorScheme(func(dark bool) {
		if c.state.Mode() != ModeSystem {
			return
		}
		c.state.SetDark(dark)
		c.logger.Debug("system color scheme changed", "dark", dark)
	})
}

// Mount initializes the theme and starts watching the OS preference on its
// first call; later calls only return the teardown. The owner must call the
// teardown when it is done with the controller.
func (c *Controller) Mount() (teardown func()) {
	if !c.mounted {
		c.mounted = true
		c.InitTheme()
		c.unwatchScheme = c.WatchSystemTheme()
	}
	return c.Close
}

// Close releases the OS preference listener and stops applying mode changes.
// It is safe to call more than once.
func (c *Controller) Close() {
	if c.unwatchScheme != nil {
		c.unwatchScheme()
		c.unwatchScheme = nil
	}
	if c.unwatchMode != nil {
		c.unwatchMode()
		c.unwatchMode = nil
	}
}

// Status is the controller's state as rendered to clients.
type Status struct {
	Mode      Mode   `json:"mode"`
	Dark      bool   `json:"dark"`
	System    bool   `json:"system"`
	Icon      Icon   `json:"icon"`
	RootClass string `json:"rootClass"`
}

func (c *Controller) Status() Status {
	mode := c.state.Mode()
	return Status{
		Mode:      mode,
		Dark:      c.state.Dark(),
		System:    mode == ModeSystem,
		Icon:      mode.Icon(),
		RootClass: mode.RootClass(),
	}
}
