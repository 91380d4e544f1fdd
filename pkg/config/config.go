// Package config defines the configuration types for rstfmt.
// These are pure data structures; discovery and environment handling
// live in internal/configloader.
package config

import "fmt"

// ColorMode controls colorized CLI output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is a recognized value.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for rstfmt.
type Config struct {
	// Width is the output width in columns. 0 means detect from the
	// terminal, falling back to 80 when output is not a TTY.
	Width int `mapstructure:"width" yaml:"width"`

	// Indent is the number of spaces prefixed to every output line.
	Indent int `mapstructure:"indent" yaml:"indent"`

	// Keep lists container names whose content is retained. An empty
	// list keeps every container.
	Keep []string `mapstructure:"keep" yaml:"keep"`

	// Verbose adds the "verbose" container to the keep set.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`

	// Color controls colorized output ("auto", "always", "never").
	Color ColorMode `mapstructure:"color" yaml:"color"`

	// LogLevel sets the logging verbosity ("debug", "info", "warn", "error").
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Width:    0,
		Indent:   0,
		Color:    ColorAuto,
		LogLevel: "info",
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", c.Width)
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must be >= 0, got %d", c.Indent)
	}
	if c.Color != "" && !c.Color.IsValid() {
		return fmt.Errorf("invalid color mode %q (expected auto, always, or never)", c.Color)
	}
	return nil
}
