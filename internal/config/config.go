package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"catalog/internal/logger"
)

// FixtureSource selects where the catalog fixtures are loaded from.
type FixtureSource string

const (
	FixtureSourceEmbedded FixtureSource = "embedded"
	FixtureSourceFile     FixtureSource = "file"
	FixtureSourceDatabase FixtureSource = "database"
)

// Config holds application configuration
type Config struct {
	// Server
	Port         string
	Env          string
	ServerTiming bool

	// Fixtures
	FixtureSource FixtureSource
	FixturePath   string

	// Sessions
	SessionTTL time.Duration

	// Logging
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug("no .env file found, using process environment")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Fixtures
		FixtureSource: FixtureSource(strings.ToLower(getEnv("FIXTURE_SOURCE", string(FixtureSourceEmbedded)))),
		FixturePath:   getEnv("FIXTURE_PATH", ""),

		// Logging
		LogFile:       getEnv("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
	}

	switch config.FixtureSource {
	case FixtureSourceEmbedded, FixtureSourceDatabase:
	case FixtureSourceFile:
		if config.FixturePath == "" {
			return nil, fmt.Errorf("FIXTURE_PATH is required when FIXTURE_SOURCE=file")
		}
	default:
		return nil, fmt.Errorf("invalid FIXTURE_SOURCE %q: must be embedded, file, or database", config.FixtureSource)
	}

	timing, err := strconv.ParseBool(getEnv("SERVER_TIMING", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_TIMING value: %w", err)
	}
	config.ServerTiming = timing

	// Parse session idle TTL
	ttlStr := getEnv("SESSION_TTL", "30m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		logger.Get().Warnf("invalid SESSION_TTL value '%s', falling back to 30m", ttlStr)
		ttl = 30 * time.Minute
	}
	config.SessionTTL = ttl

	return config, nil
}

// Logger returns the logger settings carried by the configuration.
func (c *Config) Logger() logger.Config {
	return logger.Config{
		Env:        c.Env,
		FilePath:   c.LogFile,
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.Get().Warnf("invalid %s value '%s', falling back to %d", key, raw, defaultValue)
		return defaultValue
	}
	return v
}
