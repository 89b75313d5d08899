// Package theme defines color themes for the lima TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (selected row, focused chip)
	Border        lipgloss.Color // Subtle borders
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (buttons, active states)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	Green         lipgloss.Color // Incomes, success
	Yellow        lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color // Expenses over budget, errors
	Blue          lipgloss.Color
}

// Active is the currently selected theme.
var Active = LimaDark

// LimaDark is the default theme, built around the app's purple accent.
var LimaDark = Theme{
	Name:         "lima-dark",
	Background:   lipgloss.Color("#0F0D16"),
	Surface:      lipgloss.Color("#1A1724"),
	SurfaceHover: lipgloss.Color("#2A2540"),
	Border:       lipgloss.Color("#2E2A3D"),
	BorderAccent: lipgloss.Color("#9333EA"),
	TextDim:      lipgloss.Color("#5B5670"),
	TextMuted:    lipgloss.Color("#8C87A3"),
	TextPrimary:  lipgloss.Color("#F4F1FF"),
	Accent:       lipgloss.Color("#9333EA"),
	AccentBright: lipgloss.Color("#C084FC"),
	Green:        lipgloss.Color("#22C55E"),
	Yellow:       lipgloss.Color("#EAB308"),
	Orange:       lipgloss.Color("#F97316"),
	Red:          lipgloss.Color("#EF4444"),
	Blue:         lipgloss.Color("#3B82F6"),
}

// Midnight is a cool navy theme.
var Midnight = Theme{
	Name:         "midnight",
	Background:   lipgloss.Color("#0B1020"),
	Surface:      lipgloss.Color("#131A2E"),
	SurfaceHover: lipgloss.Color("#1F2945"),
	Border:       lipgloss.Color("#26304D"),
	BorderAccent: lipgloss.Color("#60A5FA"),
	TextDim:      lipgloss.Color("#4B587A"),
	TextMuted:    lipgloss.Color("#94A3B8"),
	TextPrimary:  lipgloss.Color("#E2E8F0"),
	Accent:       lipgloss.Color("#60A5FA"),
	AccentBright: lipgloss.Color("#93C5FD"),
	Green:        lipgloss.Color("#4ADE80"),
	Yellow:       lipgloss.Color("#FACC15"),
	Orange:       lipgloss.Color("#FB923C"),
	Red:          lipgloss.Color("#F87171"),
	Blue:         lipgloss.Color("#60A5FA"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("5"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("5"),
	AccentBright: lipgloss.Color("13"),
	Green:        lipgloss.Color("2"),
	Yellow:       lipgloss.Color("3"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
	Blue:         lipgloss.Color("4"),
}

// All available themes.
var All = []Theme{LimaDark, Midnight, Terminal}

// Names returns the theme names in menu order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to LimaDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return LimaDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
