package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envAPIURL    = "PARASEARCH_API_URL"
	envSessionDB = "PARASEARCH_SESSION_DB"
)

// dotenvPath is the file loaded before the environment is read.
var dotenvPath = ".env"

// parseEnv loads .env when it exists and overlays the PARASEARCH_* variables.
// godotenv does not override variables already set in the process.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if v, ok := lookupEnv(envAPIURL); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := lookupEnv(envSessionDB); ok {
		cfg.SessionDBPath = v
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
