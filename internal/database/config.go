package database

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"catalog/internal/logger"
)

// Supported drivers for the fixture store.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds database configuration
type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	// Path is the SQLite database file.
	Path string
}

// NewConfig creates a new database configuration
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		logger.Get().Debug("no .env file found for database configuration")
	}

	cfg := &Config{
		Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", ""),
		User:     getEnv("DB_USER", "catalog"),
		Password: getEnv("DB_PASSWORD", "catalog"),
		DBName:   getEnv("DB_NAME", "catalog"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
		Path:     getEnv("DB_PATH", "catalog.db"),
	}

	switch cfg.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.Port == "" {
			cfg.Port = "5432"
		}
	case DriverMySQL:
		if cfg.Port == "" {
			cfg.Port = "3306"
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q: must be sqlite, postgres, or mysql", cfg.Driver)
	}
	return cfg, nil
}

// DSN returns the driver-specific connection string
func (c *Config) DSN() string {
	switch c.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, c.Host, c.Port, c.DBName)
	default:
		return c.Path
	}
}

// MigrationURL returns the golang-migrate database URL. Only PostgreSQL is
// migrated from SQL files; other drivers use GORM's AutoMigrate.
func (c *Config) MigrationURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
