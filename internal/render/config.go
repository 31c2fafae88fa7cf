package render

import (
	"os"

	"github.com/diogo/folderchat/internal/config"
)

// OptionsFromConfig maps the markdown section of cfg onto render options.
// GLAMOUR_STYLE takes precedence over the configured style.
func OptionsFromConfig(cfg config.Config) Options {
	opts := DefaultOptions()

	md := cfg.Markdown
	if md.Style != "" {
		opts.Style = md.Style
	}
	opts.EnableEmoji = md.EnableEmoji
	opts.PreserveNewLines = md.PreserveNewLines
	if md.Width > 0 {
		opts.Width = md.Width
	}

	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		opts.Style = style
	}

	return opts
}

// TUIThemeFromConfig returns the configured palette or the default one.
func TUIThemeFromConfig(cfg config.Config) TUITheme {
	if theme, ok := GetTUIThemeByName(cfg.TUITheme); ok {
		return theme
	}
	return DefaultTUITheme()
}
