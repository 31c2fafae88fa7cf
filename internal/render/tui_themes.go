package render

import (
	"github.com/charmbracelet/lipgloss"
)

// TUITheme is the palette used for message bubbles and the transcript viewer
type TUITheme struct {
	Name        string
	Description string

	Border lipgloss.Color

	// User and assistant accents
	User      lipgloss.Color
	Assistant lipgloss.Color
	Accent    lipgloss.Color
	Error     lipgloss.Color

	Text    lipgloss.Color
	TextDim lipgloss.Color
}

// Built-in palettes
var (
	TokyoNightTheme = TUITheme{
		Name:        "tokyonight",
		Description: "Tokyo Night - Dark theme with blue accents",
		Border:      lipgloss.Color("#414868"),
		User:        lipgloss.Color("#7aa2f7"),
		Assistant:   lipgloss.Color("#9ece6a"),
		Accent:      lipgloss.Color("#bb9af7"),
		Error:       lipgloss.Color("#f7768e"),
		Text:        lipgloss.Color("#c0caf5"),
		TextDim:     lipgloss.Color("#565f89"),
	}

	CatppuccinMochaTheme = TUITheme{
		Name:        "catppuccin",
		Description: "Catppuccin Mocha - Warm dark theme with pastel colors",
		Border:      lipgloss.Color("#45475a"),
		User:        lipgloss.Color("#89b4fa"), // Blue
		Assistant:   lipgloss.Color("#a6e3a1"), // Green
		Accent:      lipgloss.Color("#cba6f7"), // Mauve
		Error:       lipgloss.Color("#f38ba8"), // Red
		Text:        lipgloss.Color("#cdd6f4"),
		TextDim:     lipgloss.Color("#6c7086"),
	}

	NordTheme = TUITheme{
		Name:        "nord",
		Description: "Nord - Arctic-inspired theme with cool tones",
		Border:      lipgloss.Color("#4c566a"),
		User:        lipgloss.Color("#88c0d0"), // Frost
		Assistant:   lipgloss.Color("#a3be8c"), // Aurora green
		Accent:      lipgloss.Color("#b48ead"), // Aurora purple
		Error:       lipgloss.Color("#bf616a"), // Aurora red
		Text:        lipgloss.Color("#eceff4"),
		TextDim:     lipgloss.Color("#7b88a1"),
	}

	DraculaTheme = TUITheme{
		Name:        "dracula",
		Description: "Dracula - Dark theme with vibrant colors",
		Border:      lipgloss.Color("#6272a4"),
		User:        lipgloss.Color("#8be9fd"), // Cyan
		Assistant:   lipgloss.Color("#50fa7b"), // Green
		Accent:      lipgloss.Color("#ff79c6"), // Pink
		Error:       lipgloss.Color("#ff5555"), // Red
		Text:        lipgloss.Color("#f8f8f2"),
		TextDim:     lipgloss.Color("#6272a4"),
	}
)

// DefaultTUITheme returns the palette used when none is configured
func DefaultTUITheme() TUITheme {
	return TokyoNightTheme
}

// GetTUIThemeByName returns a TUI theme by its name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, t := range AvailableTUIThemes() {
		if t.Name == name {
			return t, true
		}
	}
	return TUITheme{}, false
}

// AvailableTUIThemes returns a list of all available TUI themes
func AvailableTUIThemes() []TUITheme {
	return []TUITheme{
		TokyoNightTheme,
		CatppuccinMochaTheme,
		NordTheme,
		DraculaTheme,
	}
}

// TUIThemeNames returns just the theme names for selection
func TUIThemeNames() []string {
	themes := AvailableTUIThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// RoleColor returns the bubble colour for a message role
func (t TUITheme) RoleColor(isUser bool) lipgloss.Color {
	if isUser {
		return t.User
	}
	return t.Assistant
}
