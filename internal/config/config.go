// Package config handles user configuration for folderchat.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	apierrors "github.com/diogo/folderchat/internal/errors"
)

// Output formats accepted by output_format
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatTerminal = "terminal"
	FormatJSON     = "json"
)

// MarkdownConfig configures terminal rendering of formatted messages
type MarkdownConfig struct {
	Style            string `json:"style" mapstructure:"style"`                         // glamour style name or path to JSON theme
	EnableEmoji      bool   `json:"enable_emoji" mapstructure:"enable_emoji"`           // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines" mapstructure:"preserve_newlines"` // Keep line breaks inside paragraphs
	// Width is the wrap width for terminal output. Zero means use the terminal width.
	Width int `json:"width" mapstructure:"width"`
}

// Config represents the user configuration
type Config struct {
	// OutputFormat is the default --to value of the format and history commands.
	OutputFormat string `json:"output_format" mapstructure:"output_format"`
	// Verbose enables debug logging on stderr.
	Verbose         bool `json:"verbose" mapstructure:"verbose"`
	CopyToClipboard bool `json:"copy_to_clipboard" mapstructure:"copy_to_clipboard"`
	// Sanitize runs HTML output through an allow-list sanitizer.
	Sanitize bool           `json:"sanitize" mapstructure:"sanitize"`
	TUITheme string         `json:"tui_theme,omitempty" mapstructure:"tui_theme"`
	Markdown MarkdownConfig `json:"markdown,omitempty" mapstructure:"markdown"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
		Width:            0,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		OutputFormat:    FormatTerminal,
		Verbose:         false,
		CopyToClipboard: false,
		Sanitize:        false,
		TUITheme:        "tokyonight",
		Markdown:        DefaultMarkdownConfig(),
	}
}

// GetConfigDir returns the configuration directory path.
// FOLDERCHAT_CONFIG_DIR overrides the default ~/.folderchat.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("FOLDERCHAT_CONFIG_DIR"); dir != "" {
		return filepath.Abs(dir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".folderchat"), nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfigFrom resolves configuration with precedence defaults < file < env.
// A missing file is not an error.
func LoadConfigFrom(path string) (Config, error) {
	v, err := newViper(path, true)
	if err != nil {
		return DefaultConfig(), err
	}
	return decode(v)
}

func newViper(path string, withEnv bool) (*viper.Viper, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("json")
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if !withEnv {
		return v, nil
	}

	// Environment variables: FOLDERCHAT_* (markdown.style -> FOLDERCHAT_MARKDOWN_STYLE)
	v.SetEnvPrefix("folderchat")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to decode config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Validate checks values that cannot be expressed by the type system
func Validate(cfg Config) error {
	switch cfg.OutputFormat {
	case FormatHTML, FormatMarkdown, FormatTerminal, FormatJSON:
	default:
		return apierrors.NewConfigError("output_format",
			fmt.Sprintf("unsupported value %q (want html, markdown, terminal or json)", cfg.OutputFormat))
	}
	if cfg.Markdown.Width < 0 {
		return apierrors.NewConfigError("markdown.width", "must not be negative")
	}
	return nil
}

// SaveConfigTo writes cfg as indented JSON to path
func SaveConfigTo(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// AvailableOutputFormats returns the accepted output_format values
func AvailableOutputFormats() []string {
	return []string{FormatTerminal, FormatHTML, FormatMarkdown, FormatJSON}
}
