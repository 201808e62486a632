package layout

import "doroga/internal/theme"

// ModeDefinition describes a theme mode as offered in the theme picker.
type ModeDefinition struct {
	Mode        theme.Mode
	Label       string
	Description string
}

var modeRegistry = map[theme.Mode]ModeDefinition{
	theme.ModeLight: {
		Mode:        theme.ModeLight,
		Label:       "Light",
		Description: "Always use the light scheme.",
	},
	theme.ModeDark: {
		Mode:        theme.ModeDark,
		Label:       "Dark",
		Description: "Always use the dark scheme.",
	},
	theme.ModeSystem: {
		Mode:        theme.ModeSystem,
		Label:       "System",
		Description: "Follow the operating system preference.",
	},
}

// ModeByID returns the definition for mode, falling back to the default mode.
func ModeByID(mode theme.Mode) ModeDefinition {
	if def, ok := modeRegistry[mode]; ok {
		return def
	}
	return modeRegistry[theme.DefaultMode]
}

// ModeOptions lists every definition in toggle order.
func ModeOptions() []ModeDefinition {
	modes := theme.Modes()
	options := make([]ModeDefinition, 0, len(modes))
	for _, mode := range modes {
		options = append(options, modeRegistry[mode])
	}
	return options
}
