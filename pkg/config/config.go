// Package config loads browsercloud settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for settings that are safe to leave unset.
const (
	DefaultBaseURL  = "https://api.browser-use.com"
	DefaultHTTPAddr = ":8080"
	DefaultTimeout  = 60 * time.Second
)

// Config holds everything the server needs to run. The API key is the only
// required setting: without it the server cannot authenticate upstream
// requests, so loading fails rather than deferring the error to the first
// tool call.
type Config struct {
	APIKey         string
	BaseURL        string
	HTTPAddr       string
	RequestTimeout time.Duration
}

// Load reads configuration from the environment. If envFile is non-empty it
// is loaded first; otherwise a .env file in the working directory is used
// when present.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		// Best effort: missing .env just means plain environment variables.
		_ = godotenv.Load()
	}

	cfg := &Config{
		APIKey:         os.Getenv("BROWSER_USE_API_KEY"),
		BaseURL:        getEnv("BROWSER_USE_API_URL", DefaultBaseURL),
		HTTPAddr:       getEnv("BROWSERCLOUD_HTTP_ADDR", DefaultHTTPAddr),
		RequestTimeout: getDurationEnv("BROWSERCLOUD_REQUEST_TIMEOUT_SECONDS", DefaultTimeout),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and sane.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("BROWSER_USE_API_KEY is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
