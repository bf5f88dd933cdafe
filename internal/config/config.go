package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the client
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
}

const (
	defaultBaseURL = "http://127.0.0.1:5000"
	defaultTimeout = 15 * time.Second
)

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first if present; missing values fall back to
// defaults.
func Load() Config {
	// Ignore error: a .env file is optional
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:     defaultBaseURL,
		RequestTimeout: defaultTimeout,
	}

	if v := os.Getenv("TEAMBOARD_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("TEAMBOARD_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
	return cfg
}
