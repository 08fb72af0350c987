// Package config loads the settings of the digitsplit command.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
)

const (
	defaultPath = "./digitsplit.json"
	envPrefix   = "DIGITSPLIT_"
)

// Config holds everything needed to run one search from the command line.
type Config struct {
	Digits string  `mapstructure:"digits"`
	Splits int     `mapstructure:"splits"`
	Goal   float64 `mapstructure:"goal"`
	// Ops is the operator symbols to search with, e.g. "+-*/^".
	Ops string `mapstructure:"ops"`
	// Color is "auto", "always" or "never".
	Color string `mapstructure:"color"`
	Log   Log    `mapstructure:"log"`
}

// Log configures logging.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File, if set, sends logs to a rotated file instead of stderr.
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// Default returns the default settings: the digits 1 through 9, eight
// splits, and the goal 10958.
func Default() *Config {
	return &Config{
		Digits: "123456789",
		Splits: 8,
		Goal:   10958,
		Ops:    "+-*/^",
		Color:  "auto",
		Log: Log{
			Level:      "info",
			Format:     "console",
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     7,
			Compress:   true,
		},
	}
}

// Load returns the default settings overridden first by a JSON file and then
// by DIGITSPLIT_* environment variables. If path is empty, DIGITSPLIT_CONFIG
// or ./digitsplit.json is used. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(envPrefix + "CONFIG")
		if path == "" {
			path = defaultPath
		}
	}
	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Use defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
	default:
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays a JSON object on cfg. Keys that are absent keep their
// current values; unknown keys are an error.
func (cfg *Config) decode(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

func (cfg *Config) applyEnv() error {
	if v, ok := os.LookupEnv(envPrefix + "DIGITS"); ok {
		cfg.Digits = v
	}
	if v, ok := os.LookupEnv(envPrefix + "SPLITS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sSPLITS: %w", envPrefix, err)
		}
		cfg.Splits = n
	}
	if v, ok := os.LookupEnv(envPrefix + "GOAL"); ok {
		g, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sGOAL: %w", envPrefix, err)
		}
		cfg.Goal = g
	}
	if v, ok := os.LookupEnv(envPrefix + "OPS"); ok {
		cfg.Ops = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	return nil
}

// Validate checks the settings that the search itself does not.
func (cfg *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil || cfg.Log.Level == "" {
		return fmt.Errorf("invalid log level %q", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", cfg.Log.Format)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", cfg.Color)
	}
	if cfg.Log.MaxSize < 0 || cfg.Log.MaxBackups < 0 || cfg.Log.MaxAge < 0 {
		return errors.New("log rotation limits must not be negative")
	}
	return nil
}
