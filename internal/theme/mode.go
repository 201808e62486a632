package theme

import (
	"errors"
	"fmt"
	"strings"

	"doroga/internal/tokens"
)

// Mode is the appearance the user asked for.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// DefaultMode applies until a valid persisted mode is found.
const DefaultMode = ModeSystem

// ErrInvalidMode is returned when a string does not name a mode.
var ErrInvalidMode = errors.New("invalid theme mode")

// toggle order
var modeCycle = [...]Mode{ModeLight, ModeDark, ModeSystem}

// Modes lists the valid modes in toggle order.
func Modes() []Mode {
	return append([]Mode(nil), modeCycle[:]...)
}

// ParseMode accepts exactly "light", "dark" or "system".
func ParseMode(value string) (Mode, error) {
	mode := Mode(value)
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, value)
	}
	return mode, nil
}

// ParseModeLoose is ParseMode for user input: surrounding space and case are
// ignored.
func ParseModeLoose(value string) (Mode, error) {
	return ParseMode(strings.ToLower(strings.TrimSpace(value)))
}

func (m Mode) Valid() bool {
	switch m {
	case ModeLight, ModeDark, ModeSystem:
		return true
	}
	return false
}

// Next returns the mode after m in the light, dark, system cycle. Anything
// that is not a mode restarts the cycle at light.
func (m Mode) Next() Mode {
	for i, mode := range modeCycle {
		if mode == m {
			return modeCycle[(i+1)%len(modeCycle)]
		}
	}
	return modeCycle[0]
}

// Icon names the glyph shown for a mode.
type Icon string

const (
	IconSun     Icon = "sun"
	IconMoon    Icon = "moon"
	IconMonitor Icon = "monitor"
)

func (m Mode) Icon() Icon {
	switch m {
	case ModeLight:
		return IconSun
	case ModeDark:
		return IconMoon
	default:
		return IconMonitor
	}
}

// RootClass is the class forced onto the document root, empty for system.
func (m Mode) RootClass() string {
	switch m {
	case ModeLight:
		return tokens.SchemeLight.Class()
	case ModeDark:
		return tokens.SchemeDark.Class()
	default:
		return ""
	}
}

// forcedClasses are removed before any forced class is applied.
var forcedClasses = []string{tokens.SchemeLight.Class(), tokens.SchemeDark.Class()}

func (m Mode) String() string {
	return string(m)
}
