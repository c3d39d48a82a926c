// Package config provides configuration management for the property listing service.
// It handles loading configuration from environment variables with sensible defaults
// and validates the configuration to ensure the application starts safely.
//
// The package supports multiple database backends (SQLite and PostgreSQL) and
// Redis as the shared cache store for queryset and response caching.
//
// Environment Variables:
//
// Application Settings:
//   - PORT: Server port (default: 8080)
//   - LOG_LEVEL: Logging level (default: info)
//   - LOG_FILE: Log file path (default: property-listings.log)
//
// Database Configuration:
//   - DATABASE_TYPE: Database type - "sqlite" or "postgres" (default: sqlite)
//   - DATABASE_PATH: SQLite database file path (default: ./property_listings.db)
//   - POSTGRES_HOST: PostgreSQL host (required if using PostgreSQL)
//   - POSTGRES_PORT: PostgreSQL port (default: 5432)
//   - POSTGRES_DB: PostgreSQL database name (required if using PostgreSQL)
//   - POSTGRES_USER: PostgreSQL username (required if using PostgreSQL)
//   - POSTGRES_PASSWORD: PostgreSQL password
//   - POSTGRES_SSL_MODE: PostgreSQL SSL mode (default: disable)
//
// Redis Configuration:
//   - REDIS_ADDRESS: Redis server address (default: localhost:6379)
//   - REDIS_PASSWORD: Redis password
//   - REDIS_DB: Redis database number 0-15 (default: 0)
//   - REDIS_POOL_SIZE: Redis connection pool size (default: 10)
//
// Cache Configuration:
//   - QUERYSET_CACHE_TTL: TTL for the cached property queryset (default: 1h)
//   - RESPONSE_CACHE_TTL: TTL for cached HTTP responses (default: 15m)
//
// Example usage:
//
//	cfg := config.Load()
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("Invalid configuration: %v", err)
//	}
package config

import (
	"fmt"
	"strconv"
	"time"

	"os"
)

// Config holds all configuration values for the property listing service.
// All fields correspond to environment variables that can be set to override
// the default values. Load the configuration with Load() and validate it with
// Validate() before use.
type Config struct {
	// Application settings
	Port     string // Server port number
	LogLevel string // Logging level (debug, info, warn, error)
	LogFile  string // Log file path

	// Database configuration
	DatabaseType string // Database type: "sqlite" or "postgres"
	DatabasePath string // Path to SQLite database file

	PostgresHost     string // PostgreSQL host address
	PostgresPort     string // PostgreSQL port number
	PostgresDB       string // PostgreSQL database name
	PostgresUser     string // PostgreSQL username
	PostgresPassword string // PostgreSQL password
	PostgresSSLMode  string // PostgreSQL SSL mode (disable, require, etc.)

	// Redis configuration for the shared cache store
	RedisAddress  string // Redis server address (host:port)
	RedisPassword string // Redis authentication password
	RedisDB       string // Redis database number (0-15)
	RedisPoolSize string // Redis connection pool size

	// Cache TTLs
	QuerysetCacheTTL time.Duration // TTL of the all_properties queryset entry
	ResponseCacheTTL time.Duration // TTL of whole-response cache entries
}

// Load creates a new Config instance with values loaded from environment
// variables. If an environment variable is not set, the corresponding default
// value is used.
//
// This function does not validate the configuration - call Validate() on the
// returned Config to ensure all required values are properly set and valid.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", "property-listings.log"),

		DatabaseType: getEnv("DATABASE_TYPE", "sqlite"),
		DatabasePath: getEnv("DATABASE_PATH", "./property_listings.db"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresDB:       getEnv("POSTGRES_DB", "property_listings"),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresSSLMode:  getEnv("POSTGRES_SSL_MODE", "disable"),

		RedisAddress:  getEnv("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnv("REDIS_DB", "0"),
		RedisPoolSize: getEnv("REDIS_POOL_SIZE", "10"),

		QuerysetCacheTTL: getDurationEnv("QUERYSET_CACHE_TTL", time.Hour),
		ResponseCacheTTL: getDurationEnv("RESPONSE_CACHE_TTL", 15*time.Minute),
	}
}

// Validate checks that the configuration is complete and internally
// consistent. It returns the first problem found.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid PORT %q: must be numeric", c.Port)
	}

	switch c.DatabaseType {
	case "sqlite":
		if c.DatabasePath == "" {
			return fmt.Errorf("DATABASE_PATH is required for sqlite")
		}
	case "postgres":
		if c.PostgresHost == "" {
			return fmt.Errorf("POSTGRES_HOST is required for postgres")
		}
		if c.PostgresDB == "" {
			return fmt.Errorf("POSTGRES_DB is required for postgres")
		}
		if c.PostgresUser == "" {
			return fmt.Errorf("POSTGRES_USER is required for postgres")
		}
	default:
		return fmt.Errorf("invalid DATABASE_TYPE %q: must be sqlite or postgres", c.DatabaseType)
	}

	if db, err := strconv.Atoi(c.RedisDB); err != nil || db < 0 || db > 15 {
		return fmt.Errorf("invalid REDIS_DB %q: must be a number between 0 and 15", c.RedisDB)
	}
	if _, err := strconv.Atoi(c.RedisPoolSize); err != nil {
		return fmt.Errorf("invalid REDIS_POOL_SIZE %q: must be numeric", c.RedisPoolSize)
	}

	if c.QuerysetCacheTTL <= 0 {
		return fmt.Errorf("QUERYSET_CACHE_TTL must be positive")
	}
	if c.ResponseCacheTTL <= 0 {
		return fmt.Errorf("RESPONSE_CACHE_TTL must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
