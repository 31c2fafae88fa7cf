package config

import (
	"fmt"

	"github.com/spf13/viper"

	apierrors "github.com/diogo/folderchat/internal/errors"
)

// ConfigOption describes one configuration key, its default and meaning
type ConfigOption struct {
	Key     string
	Value   any
	Comment string
}

// GetConfigOptions returns the configuration keys with their defaults.
// This is the single source of truth for defaults and for `config set`.
func GetConfigOptions() []ConfigOption {
	d := DefaultConfig()
	return []ConfigOption{
		{Key: "output_format", Value: d.OutputFormat, Comment: "Default output: terminal, html, markdown or json"},
		{Key: "verbose", Value: d.Verbose, Comment: "Log debug details to stderr"},
		{Key: "copy_to_clipboard", Value: d.CopyToClipboard, Comment: "Copy formatted output to the clipboard"},
		{Key: "sanitize", Value: d.Sanitize, Comment: "Pass HTML output through the allow-list sanitizer"},
		{Key: "tui_theme", Value: d.TUITheme, Comment: "Colour palette for message bubbles and the viewer"},
		{Key: "markdown.style", Value: d.Markdown.Style, Comment: "glamour style name or path to a JSON style"},
		{Key: "markdown.enable_emoji", Value: d.Markdown.EnableEmoji, Comment: "Convert :emoji: codes in terminal output"},
		{Key: "markdown.preserve_newlines", Value: d.Markdown.PreserveNewLines, Comment: "Keep line breaks inside paragraphs"},
		{Key: "markdown.width", Value: d.Markdown.Width, Comment: "Wrap width for terminal output, 0 for terminal width"},
	}
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Value)
	}
}

// IsKnownKey reports whether key is a configuration key
func IsKnownKey(key string) bool {
	for _, o := range GetConfigOptions() {
		if o.Key == key {
			return true
		}
	}
	return false
}

// SetValue updates a single key in the config file at path and saves it.
// The value is converted to the key's type; environment overrides are
// ignored so they never leak into the file.
func SetValue(path, key, value string) (Config, error) {
	if !IsKnownKey(key) {
		return DefaultConfig(), apierrors.NewConfigError(key, "unknown key")
	}

	v, err := newViper(path, false)
	if err != nil {
		return DefaultConfig(), err
	}
	v.Set(key, value)

	cfg, err := decode(v)
	if err != nil {
		return cfg, fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := SaveConfigTo(path, cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Value returns the value of a configuration key in cfg
func (c Config) Value(key string) (any, bool) {
	switch key {
	case "output_format":
		return c.OutputFormat, true
	case "verbose":
		return c.Verbose, true
	case "copy_to_clipboard":
		return c.CopyToClipboard, true
	case "sanitize":
		return c.Sanitize, true
	case "tui_theme":
		return c.TUITheme, true
	case "markdown.style":
		return c.Markdown.Style, true
	case "markdown.enable_emoji":
		return c.Markdown.EnableEmoji, true
	case "markdown.preserve_newlines":
		return c.Markdown.PreserveNewLines, true
	case "markdown.width":
		return c.Markdown.Width, true
	default:
		return nil, false
	}
}
