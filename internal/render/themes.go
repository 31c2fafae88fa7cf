package render

import (
	"os"
	"path/filepath"
)

// glamour built-in style names
const (
	ThemeDark       = "dark"
	ThemeLight      = "light"
	ThemeDracula    = "dracula"
	ThemeTokyoNight = "tokyo-night"
	ThemePink       = "pink"
	ThemeNoTTY      = "notty"
	ThemeASCII      = "ascii"
)

// IsBuiltinStyle returns true if the style is one of glamour's built-in styles.
func IsBuiltinStyle(style string) bool {
	switch style {
	case ThemeDark, ThemeLight, ThemeDracula, ThemeTokyoNight, ThemePink, ThemeNoTTY, ThemeASCII:
		return true
	default:
		return false
	}
}

// IsValidStyle reports whether style is a built-in style or an existing JSON style file.
func IsValidStyle(style string) bool {
	if IsBuiltinStyle(style) {
		return true
	}
	if filepath.Ext(style) != ".json" {
		return false
	}
	info, err := os.Stat(style)
	return err == nil && !info.IsDir()
}

// ThemeInfo contains information about a theme for display purposes.
type ThemeInfo struct {
	Name        string
	Description string
}

// AvailableThemes returns the glamour styles usable for terminal output.
func AvailableThemes() []ThemeInfo {
	return []ThemeInfo{
		{Name: ThemeDark, Description: "Dark theme (default)"},
		{Name: ThemeLight, Description: "Light theme for bright terminals"},
		{Name: ThemeDracula, Description: "Dracula color scheme"},
		{Name: ThemeTokyoNight, Description: "Tokyo Night color scheme"},
		{Name: ThemePink, Description: "Pink accents"},
		{Name: ThemeNoTTY, Description: "Plain text (no styling)"},
		{Name: ThemeASCII, Description: "ASCII-only output"},
	}
}

// ThemeNames returns just the theme names for selection.
func ThemeNames() []string {
	themes := AvailableThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
