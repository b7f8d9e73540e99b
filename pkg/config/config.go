// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, search provider, cache and storage

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Search contains search provider configuration
	Search SearchConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Storage contains persistence configuration
	Storage StorageConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// AdminToken protects the admin endpoints; empty disables them
	AdminToken string
}

// SearchConfig holds search provider configuration
type SearchConfig struct {
	// APIKey is the Brave Search subscription token
	APIKey string

	// Endpoint is the search API base URL
	Endpoint string

	// RateLimit is the maximum outbound searches per second
	RateLimit float64
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	// SQLitePath is the database file path
	SQLitePath string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug/info/warn/error)
	Level string

	// JSONFormat emits logs as JSON lines
	JSONFormat bool
}

// DefaultSearchEndpoint is the Brave Search web endpoint used when none
// is configured.
const DefaultSearchEndpoint = "https://api.search.brave.com/res/v1/web/search"

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			AdminToken: os.Getenv("ADMIN_TOKEN"),
		},
		Search: SearchConfig{
			APIKey:    os.Getenv("BRAVE_SEARCH_API_KEY"),
			Endpoint:  getEnvOrDefault("BRAVE_SEARCH_ENDPOINT", DefaultSearchEndpoint),
			RateLimit: getEnvAsFloatOrDefault("SEARCH_RATE_LIMIT", 1.0),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Storage: StorageConfig{
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "opportunities.db"),
		},
		Log: LogConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			JSONFormat: getEnvAsBoolOrDefault("LOG_JSON", false),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid. A missing search API
// key is allowed here; the discovery service reports it when a search
// is actually attempted.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Search.RateLimit <= 0 {
		return errors.New("search rate limit must be positive")
	}

	if c.Storage.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty")
	}

	return nil
}
