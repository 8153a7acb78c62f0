package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the parasearch CLI.
type Config struct {
	APIBaseURL     string
	SessionDBPath  string
	RequestTimeout time.Duration
	LogFile        string
	LogLevel       string
	Ephemeral      bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api/"
	c.SessionDBPath = "parasearch.db"
	c.RequestTimeout = 0
	c.LogFile = "parasearch.log"
	c.LogLevel = "info"
	c.Ephemeral = false
}

// LoadConfig builds a Config from defaults, environment, an optional JSON
// file and flags. Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	if err := parseJson(cfg); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if cfg.RequestTimeout < 0 {
		return nil, fmt.Errorf("request timeout must not be negative, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}
