package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig

	// Database Configuration
	Database DatabaseConfig

	// Feed Configuration
	Feed FeedConfig
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host        string
	Port        string
	Environment string // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	Username     string
	Password     string
	DatabaseName string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// FeedConfig contains feed assembly configuration
type FeedConfig struct {
	Workers         int // engagement fan-out bound per feed request
	DefaultPageSize int
	MaxPageSize     int
}

// Load builds the configuration from environment variables, falling back to
// development defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        getEnvOrDefault("SERVER_HOST", ""),
			Port:        getEnvOrDefault("SERVER_PORT", "8080"),
			Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "5432"),
			Username:     getEnvOrDefault("DB_USER", "timelesslove"),
			Password:     getEnvOrDefault("DB_PASSWORD", "timelesslove"),
			DatabaseName: getEnvOrDefault("DB_NAME", "timelesslove"),
			SSLMode:      getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		},
		Feed: FeedConfig{
			Workers:         getEnvIntOrDefault("FEED_WORKERS", 8),
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
	}
}

// DSN builds the Postgres connection string.
func (cfg *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.DatabaseName,
		cfg.Database.SSLMode,
	)
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
