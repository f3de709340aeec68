// Package config holds the command-line configuration, read from TOML.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/born-ml/matrix/internal/color"
	"github.com/born-ml/matrix/internal/tensor"
	"github.com/born-ml/matrix/internal/vector"
)

// Color modes accepted by DisplayConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the full configuration file.
type Config struct {
	Display DisplayConfig `toml:"display"`
	CSV     CSVConfig     `toml:"csv"`
	Vector  VectorConfig  `toml:"vector"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig controls tensor rendering.
type DisplayConfig struct {
	Precision int    `toml:"precision"`
	Color     string `toml:"color"`
}

// CSVConfig controls CSV ingestion.
type CSVConfig struct {
	Precision int `toml:"precision"`
}

// VectorConfig sets the comparison tolerance as a number of decimal digits.
type VectorConfig struct {
	Digits int `toml:"digits"`
}

// LogConfig sets the log level by name (debug, info, warn, error).
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{Precision: tensor.DefaultDisplayPrecision, Color: ColorAuto},
		CSV:     CSVConfig{Precision: tensor.DefaultCSVPrecision},
		Vector:  VectorConfig{Digits: 2},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults and validates the result.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r over the defaults and validates the result.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Display.Precision < 0 {
		return fmt.Errorf("display precision must be non-negative")
	}
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("display color must be one of %q, %q, %q", ColorAuto, ColorAlways, ColorNever)
	}
	if c.CSV.Precision < 0 {
		return fmt.Errorf("csv precision must be non-negative")
	}
	if c.Vector.Digits < 0 {
		return fmt.Errorf("vector digits must be non-negative")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// UseColor resolves the color mode for output written to w.
func (d DisplayConfig) UseColor(w io.Writer) bool {
	switch d.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return color.Supported(w)
	}
}

// Tolerance returns the vector comparison tolerance.
func (v VectorConfig) Tolerance() vector.Tolerance {
	return vector.ToleranceFromDigits(v.Digits)
}

// SlogLevel parses the level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
