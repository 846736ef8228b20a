package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds process-level settings. Values come from the environment
// (optionally seeded from a .env file) and may be overridden by flags.
type Config struct {
	Addr           string        `env:"ADDR" envDefault:":8000"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	Seed           int64         `env:"SEED" envDefault:"0"` // 0 means seed from the clock
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	SimTurnLimit   int           `env:"SIM_TURN_LIMIT" envDefault:"100"`
	SimDelay       time.Duration `env:"SIM_DELAY" envDefault:"0s"`
}

// EnvPrefix is prepended to every variable name, e.g. CLUEDO_ADDR.
const EnvPrefix = "CLUEDO_"

// Load reads dotenvPath if it exists, then parses the environment.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that the environment parser cannot.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.SimTurnLimit <= 0 {
		return fmt.Errorf("simulation turn limit must be positive, got %d", c.SimTurnLimit)
	}
	if c.SimDelay < 0 {
		return fmt.Errorf("simulation delay must not be negative, got %s", c.SimDelay)
	}
	return nil
}

// NewLogger builds the process logger at the configured level.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})
	return log
}
