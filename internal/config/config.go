// Package config centralises environment configuration for the analyzer.
// It is imported only by cmd; the other layers receive an already-built
// Config instance via dependency injection.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL = "https://api.github.com/"
	defaultTimeoutSec = 15
)

// Config holds every runtime option the analyzer needs. Loaded once at
// process start, read-only afterwards.
type Config struct {
	// Token is the GitHub personal access token. It may be empty; analysis
	// is blocked until one is configured.
	Token string

	// APIBaseURL is the API root, overridable for GitHub Enterprise or tests.
	APIBaseURL string

	// HTTPTimeout bounds the single search request per run.
	HTTPTimeout time.Duration
}

// Load parses the environment (and an optional .env file) into Config.
func Load() Config {
	// godotenv.Load() is a no-op if .env doesn't exist.
	_ = godotenv.Load()

	return Config{
		Token:       os.Getenv("GITHUB_TOKEN"),
		APIBaseURL:  getEnv("GITHUB_API_URL", defaultAPIBaseURL),
		HTTPTimeout: getDuration("HTTP_TIMEOUT_SEC", defaultTimeoutSec),
	}
}

// HasToken reports whether a credential is configured.
func (c Config) HasToken() bool {
	return c.Token != ""
}

// getEnv returns env[key] if set, otherwise defaultVal.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDuration reads an integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			return time.Duration(sec) * time.Second
		}
	}
	return time.Duration(defaultSec) * time.Second
}
