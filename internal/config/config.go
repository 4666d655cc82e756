package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/alexiusacademia/gostrand/internal/format"
)

// Environment variables
const (
	EnvLocale    = "GOSTRAND_LOCALE"
	EnvLogLevel  = "GOSTRAND_LOG_LEVEL"
	EnvLogFormat = "GOSTRAND_LOG_FORMAT"
)

const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)

// Config holds the settings shared by every command
type Config struct {
	Locale    string
	LogLevel  string
	LogFormat string // console or json
}

// Load reads the process environment after loading .env when present.
// Variables already set in the environment are not overridden.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Locale:    getenv(EnvLocale, format.DefaultLocale),
		LogLevel:  getenv(EnvLogLevel, DefaultLogLevel),
		LogFormat: getenv(EnvLogFormat, DefaultLogFormat),
	}
	return cfg, nil
}

// Validate checks the locale tag, log level and log format
func (c Config) Validate() error {
	if _, err := format.New(c.Locale); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", c.LogFormat)
	}
	return nil
}

func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
