// SPDX-License-Identifier: MIT

// Package config loads mrfgen settings from the environment.
//
// Sources, lowest priority first:
//   • built-in defaults (struct tags);
//   • an optional dotenv file (only variables not already set);
//   • process environment, prefix MRF (e.g. MRF_ROWS, MRF_LOG_LEVEL).
//
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the environment variable prefix.
const EnvPrefix = "MRF"

// DefaultEnvFile is read by Load when present.
const DefaultEnvFile = ".env"

// Config validation errors
var (
	ErrInvalidRows      = errors.New("config: rows must be >= 1")
	ErrInvalidCols      = errors.New("config: cols must be >= 1")
	ErrInvalidSigma     = errors.New("config: sigma must be finite and > 0")
	ErrInvalidScheme    = errors.New("config: scheme must be 'letters' or 'numbered'")
	ErrInvalidFormat    = errors.New("config: format must be text, json, yaml or dot")
	ErrInvalidLogFormat = errors.New("config: log_format must be 'json' or 'console'")
	ErrInvalidLogLevel  = errors.New("config: log_level must be debug, info, warn, or error")
)

// Config holds mrfgen settings.
type Config struct {
	Rows            int     `envconfig:"ROWS" default:"3"`
	Cols            int     `envconfig:"COLS" default:"3"`
	Sigma           float64 `envconfig:"SIGMA" default:"0.5"`
	SmoothnessSigma float64 `envconfig:"SMOOTHNESS_SIGMA" default:"0.5"`
	Seed            int64   `envconfig:"SEED" default:"42"`
	Scheme          string  `envconfig:"SCHEME" default:"letters"`
	Format          string  `envconfig:"FORMAT" default:"text"`
	Out             string  `envconfig:"OUT" default:""` // empty means stdout
	LogLevel        string  `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string  `envconfig:"LOG_FORMAT" default:"console"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Rows:            3,
		Cols:            3,
		Sigma:           0.5,
		SmoothnessSigma: 0.5,
		Seed:            42,
		Scheme:          "letters",
		Format:          "text",
		LogLevel:        "info",
		LogFormat:       "console",
	}
}

// Load reads envFile if it exists, then the MRF_* environment. An empty
// envFile skips the dotenv step.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err = godotenv.Load(envFile); err != nil {
				return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
			}
		}
	}
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: process env: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration and returns the first violation.
func (c *Config) Validate() error {
	if c.Rows < 1 {
		return ErrInvalidRows
	}
	if c.Cols < 1 {
		return ErrInvalidCols
	}
	if !finitePositive(c.Sigma) || !finitePositive(c.SmoothnessSigma) {
		return ErrInvalidSigma
	}
	switch c.Scheme {
	case "letters", "numbered":
	default:
		return ErrInvalidScheme
	}
	switch c.Format {
	case "text", "json", "yaml", "dot":
	default:
		return ErrInvalidFormat
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if c.LogLevel != "debug" && c.LogLevel != "info" && c.LogLevel != "warn" && c.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	return nil
}

func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
