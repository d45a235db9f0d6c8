// Package config loads the driver and engine-default configuration
// from an optional YAML file, with environment variables taking
// precedence over the file and the file over built-in defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/errors"
)

// Config holds the tunables of the driver and the engine defaults.
type Config struct {
	// Level is the default difficulty, 1-5.
	Level int `yaml:"level"`

	// BudgetMillis is the engine's wall-clock budget per move.
	BudgetMillis int `yaml:"budget_ms"`

	// PlayerColor is the human side, "w" or "b".
	PlayerColor string `yaml:"player_color"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the encoder: console or json.
	LogFormat string `yaml:"log_format"`

	// Workers is the session manager's search worker count.
	Workers int `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Level:        3,
		BudgetMillis: 2000,
		PlayerColor:  "w",
		LogLevel:     "info",
		LogFormat:    "console",
		Workers:      1,
	}
}

// Load builds the configuration from defaults, then the YAML file at
// path (skipped when path is empty), then environment overrides, and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(errors.ErrInvalidConfig, "parse config %s: %v", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides fields from GOCHESS_* environment variables.
// Malformed values are ignored in favour of the current value.
func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("GOCHESS_LEVEL")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Level = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("GOCHESS_BUDGET_MS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BudgetMillis = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("GOCHESS_PLAYER_COLOR")); v != "" {
		cfg.PlayerColor = v
	}
	if v := strings.TrimSpace(os.Getenv("GOCHESS_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("GOCHESS_LOG_FORMAT")); v != "" {
		cfg.LogFormat = v
	}
	if v := strings.TrimSpace(os.Getenv("GOCHESS_WORKERS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.Level < 1 || c.Level > 5 {
		return errors.Wrapf(errors.ErrInvalidConfig, "level %d out of range 1-5", c.Level)
	}
	if c.BudgetMillis <= 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "budget_ms %d must be positive", c.BudgetMillis)
	}
	if c.PlayerColor != "w" && c.PlayerColor != "b" {
		return errors.Wrapf(errors.ErrInvalidConfig, "player_color %q must be w or b", c.PlayerColor)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "log_format %q must be console or json", c.LogFormat)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d must be at least 1", c.Workers)
	}
	return nil
}

// Budget returns the per-move search budget as a duration.
func (c Config) Budget() time.Duration {
	return time.Duration(c.BudgetMillis) * time.Millisecond
}

// Color returns the configured human side.
func (c Config) Color() chess.Color {
	if c.PlayerColor == "b" {
		return chess.Black
	}
	return chess.White
}
