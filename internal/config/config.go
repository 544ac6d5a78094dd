package config

import (
	"os"
	"strconv"
	"time"
)

// MemoryDBPath is the database path for a store that never touches disk.
const MemoryDBPath = ":memory:"

// Config holds all configuration options for the task manager application
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path         string        `env:"TM_DB_PATH"`
	QueryTimeout time.Duration `env:"TM_DB_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `env:"TM_DB_WRITE_TIMEOUT"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"TM_TIME_DISPLAY_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout  time.Duration `env:"TM_APP_TIMEOUT"`
	Verbose  bool          `env:"TM_APP_VERBOSE"`
	LogLevel string        `env:"TM_LOG_LEVEL"`
}

// NewConfig creates a new configuration with sensible defaults.
// The default database path is the in-memory store: the application keeps
// no state between runs.
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:         MemoryDBPath,
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04",
		},
		Application: ApplicationConfig{
			Timeout:  60 * time.Second,
			Verbose:  false,
			LogLevel: "info",
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if path := os.Getenv("TM_DB_PATH"); path != "" {
		c.Database.Path = path
	}
	if timeout := os.Getenv("TM_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TM_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}

	// Display configuration
	if format := os.Getenv("TM_TIME_DISPLAY_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}

	// Application configuration
	if timeout := os.Getenv("TM_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TM_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}
	if level := os.Getenv("TM_LOG_LEVEL"); level != "" {
		c.Application.LogLevel = level
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return &ConfigError{Field: "database.path", Message: "database path cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
