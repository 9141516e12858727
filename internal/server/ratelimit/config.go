package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Config holds rate limiting configuration for the scoring endpoint.
type Config struct {
	Enabled         bool
	ScoreLimit      int           // Maximum scoring requests per window
	ScoreWindow     time.Duration // Time window
	ScoreBurst      int           // Burst capacity (defaults to ScoreLimit if 0)
	CleanupInterval time.Duration
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		ScoreLimit:      60,
		ScoreWindow:     time.Minute,
		ScoreBurst:      10,
		CleanupInterval: 5 * time.Minute,
	}
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	defaults := defaultConfig()
	return &Config{
		Enabled:         true,
		ScoreLimit:      getEnvInt("RATE_LIMIT_SCORE_LIMIT", defaults.ScoreLimit),
		ScoreWindow:     getEnvDuration("RATE_LIMIT_SCORE_WINDOW", defaults.ScoreWindow),
		ScoreBurst:      getEnvInt("RATE_LIMIT_SCORE_BURST", defaults.ScoreBurst),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", defaults.CleanupInterval),
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
