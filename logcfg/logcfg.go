// Package logcfg loads logging configuration from a YAML file and the
// environment and applies it to a logger registry. Configuration only sets
// thresholds and dialog policy; it never creates loggers itself.
package logcfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/asimation/cglog"
	"github.com/asimation/cglog/severity"
)

// Environment variable names for logging configuration.
const (
	// EnvConfig points at a YAML config file to load.
	EnvConfig = "CGLOG_CONFIG"
	// EnvLevel overrides the default level, e.g. "DEBUG" or "warning".
	EnvLevel = "CGLOG_LEVEL"
	// EnvDebug forces the default level to DEBUG when set to "true" or "1".
	EnvDebug = "CGLOG_DEBUG"
)

// Config is the on-disk logging configuration.
type Config struct {
	// Level is the default threshold for loggers created without an
	// explicit level, e.g. "INFO".
	Level string `yaml:"level,omitempty"`

	// Loggers maps logger names to per-logger thresholds.
	Loggers map[string]string `yaml:"loggers,omitempty"`

	// Dialogs tunes host dialog behavior.
	Dialogs DialogConfig `yaml:"dialogs,omitempty"`

	// MetricsPort, when non-zero, is the port the metrics endpoint listens
	// on.
	MetricsPort int `yaml:"metricsPort,omitempty"`
}

// DialogConfig tunes the dialog handler attached to new loggers.
type DialogConfig struct {
	// Disabled turns host dialogs off entirely.
	Disabled bool `yaml:"disabled,omitempty"`
	// PerMinute is the sustained dialog rate. Zero keeps the default.
	PerMinute int `yaml:"perMinute,omitempty"`
	// Burst is the number of dialogs allowed back to back.
	Burst int `yaml:"burst,omitempty"`
}

// Load reads and parses the YAML config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadEnv builds a config from the environment. When CGLOG_CONFIG is set the
// file is loaded first, then CGLOG_LEVEL and CGLOG_DEBUG are layered on top.
// An unset environment yields an empty config.
func LoadEnv() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv(EnvConfig); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if lvl := os.Getenv(EnvLevel); lvl != "" {
		if _, err := severity.Parse(lvl); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLevel, err)
		}
		cfg.Level = lvl
	}

	if debugEnabled(os.Getenv(EnvDebug)) {
		cfg.Level = severity.Debug.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// debugEnabled reports whether a CGLOG_DEBUG value asks for debug logging.
func debugEnabled(value string) bool {
	if value == "" {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}

// Validate checks every level name in the config. Level errors wrap
// severity.ErrInvalidLevel.
func (c *Config) Validate() error {
	if c.Level != "" {
		if _, err := severity.Parse(c.Level); err != nil {
			return fmt.Errorf("default level: %w", err)
		}
	}
	for name, lvl := range c.Loggers {
		if _, err := severity.Parse(lvl); err != nil {
			return fmt.Errorf("logger %q: %w", name, err)
		}
	}
	return nil
}

// Apply pushes the config into a registry: the default level first, then
// per-logger overrides. Overrides apply to existing loggers and are
// remembered for loggers created later.
func (c *Config) Apply(r *cglog.Registry) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.Level != "" {
		lvl, _ := severity.Parse(c.Level)
		if err := r.SetDefaultLevel(lvl); err != nil {
			return err
		}
	}
	for name, raw := range c.Loggers {
		lvl, _ := severity.Parse(raw)
		if err := r.SetLoggerLevel(name, lvl); err != nil {
			return fmt.Errorf("logger %q: %w", name, err)
		}
	}
	return nil
}
