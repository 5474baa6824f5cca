// Package config handles YAML panel configuration with environment
// overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/optimist-ui/optimist/internal/panel"
)

// Config holds all optimist configuration.
type Config struct {
	Panel PanelSettings `yaml:"panel"`
	Log   LogSettings   `yaml:"log"`
}

// PanelSettings holds panel behavior settings.
type PanelSettings struct {
	Animation      time.Duration `yaml:"animation"`       // Enter/exit animation duration.
	EscapeCloses   bool          `yaml:"escape_closes"`   // Escape key requests a close.
	BackdropCloses bool          `yaml:"backdrop_closes"` // Click outside the panel requests a close.
	Modal          bool          `yaml:"modal"`           // Centered modal instead of a drawer.
	SlideFrom      string        `yaml:"slide_from"`      // Drawer edge: left, right, top, bottom.
}

// LogSettings holds diagnostics settings.
type LogSettings struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error.
	Format string `yaml:"format"` // "console" or "json".
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Panel: PanelSettings{
			Animation:      300 * time.Millisecond,
			EscapeCloses:   true,
			BackdropCloses: true,
			Modal:          false,
			SlideFrom:      string(panel.SlideRight),
		},
		Log: LogSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered reads YAML config files in order, each existing layer
// overriding the fields set by earlier ones. Missing files are skipped,
// so a user-level config and a project-level config compose naturally.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()
	for _, path := range paths {
		if err := decodeInto(&cfg, path); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func decodeInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if err := c.PanelConfig().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be trace, debug, info, warn or error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
		// valid
	default:
		return fmt.Errorf("config: log.format must be \"console\" or \"json\", got %q", c.Log.Format)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: OPTIMIST_ANIMATION, OPTIMIST_ESCAPE_CLOSES,
// OPTIMIST_BACKDROP_CLOSES, OPTIMIST_MODAL, OPTIMIST_SLIDE_FROM,
// OPTIMIST_LOG_LEVEL, OPTIMIST_LOG_FORMAT.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("OPTIMIST_ANIMATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid OPTIMIST_ANIMATION %q: %w", v, err)
		}
		c.Panel.Animation = d
	}
	for _, override := range []struct {
		env string
		dst *bool
	}{
		{"OPTIMIST_ESCAPE_CLOSES", &c.Panel.EscapeCloses},
		{"OPTIMIST_BACKDROP_CLOSES", &c.Panel.BackdropCloses},
		{"OPTIMIST_MODAL", &c.Panel.Modal},
	} {
		v := os.Getenv(override.env)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", override.env, v, err)
		}
		*override.dst = b
	}
	if v := os.Getenv("OPTIMIST_SLIDE_FROM"); v != "" {
		c.Panel.SlideFrom = v
	}
	if v := os.Getenv("OPTIMIST_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("OPTIMIST_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	return nil
}

// PanelConfig converts the file-level settings into the machine's
// immutable configuration.
func (c *Config) PanelConfig() panel.Config {
	return panel.Config{
		Duration:       c.Panel.Animation,
		EscapeCloses:   c.Panel.EscapeCloses,
		BackdropCloses: c.Panel.BackdropCloses,
		Modal:          c.Panel.Modal,
		SlideFrom:      panel.Direction(c.Panel.SlideFrom),
	}
}
