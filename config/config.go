// Package config reads pft settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DataDir  string `env:"PFT_DATA_DIR"`
	Provider string `env:"PFT_PROVIDER" envDefault:"yahoo"`
	LogLevel string `env:"PFT_LOG_LEVEL" envDefault:"warning"`
	HTTP     HTTP
	Yahoo    Yahoo
	EODHD    EODHD
	Gemini   Gemini
}

type HTTP struct {
	Timeout time.Duration `env:"PFT_HTTP_TIMEOUT" envDefault:"10s"`
	Debug   bool          `env:"PFT_HTTP_DEBUG"`
}

type Yahoo struct {
	ChartURL  string `env:"PFT_YAHOO_URL" envDefault:"https://query1.finance.yahoo.com"`
	SearchURL string `env:"PFT_YAHOO_SEARCH_URL" envDefault:"https://query2.finance.yahoo.com"`
}

type EODHD struct {
	URL    string `env:"PFT_EODHD_URL" envDefault:"https://eodhd.com"`
	APIKey string `env:"EODHD_API_KEY"`
}

type Gemini struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"PFT_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// Providers lists the accepted values of Provider.
var Providers = []string{"yahoo", "eodhd"}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory if there is one.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config error: %w", err)
	}
	if cfg.DataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = dir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that env cannot check by itself.
func (c *Config) Validate() error {
	switch c.Provider {
	case "yahoo":
	case "eodhd":
		if c.EODHD.APIKey == "" {
			return fmt.Errorf("provider %q requires EODHD_API_KEY", c.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q, want one of %v", c.Provider, Providers)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the LogLevel as a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// defaultDataDir follows the XDG base directory convention.
func defaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "pft"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate data directory, set PFT_DATA_DIR: %w", err)
	}
	return filepath.Join(home, ".local", "share", "pft"), nil
}
