package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backend selectors. The in-memory variant exists for local
// development and deterministic tests; it does not survive restarts.
const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

// DefaultGoogleUserinfoURL is the Google OAuth2 userinfo endpoint used to
// exchange a bearer token for the caller's identity attributes.
const DefaultGoogleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Config holds all configuration for the API server.
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Storage
	Storage       string
	MongoURI      string
	MongoDatabase string

	// Google OAuth
	GoogleUserinfoURL string
	GoogleTimeout     time.Duration

	// Session token
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Port = getEnvOrDefault("PORT", "8080")
	cfg.Host = getEnvOrDefault("HOST", "0.0.0.0")
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	cfg.Storage = strings.ToLower(getEnvOrDefault("STORAGE", StorageMongo))
	cfg.MongoURI = os.Getenv("MONGO_URI")
	cfg.MongoDatabase = getEnvOrDefault("MONGO_DATABASE", "english_study")
	if cfg.Storage == StorageMongo && cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required when STORAGE is %q", StorageMongo)
	}

	cfg.GoogleUserinfoURL = getEnvOrDefault("GOOGLE_USERINFO_URL", DefaultGoogleUserinfoURL)

	var err error
	googleTimeout := getEnvOrDefault("GOOGLE_TIMEOUT", "10s")
	cfg.GoogleTimeout, err = time.ParseDuration(googleTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid GOOGLE_TIMEOUT: %w", err)
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	tokenTTL := getEnvOrDefault("TOKEN_TTL", "360h") // 15 days
	cfg.TokenTTL, err = time.ParseDuration(tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.Storage != StorageMongo && c.Storage != StorageMemory {
		return fmt.Errorf("invalid storage backend: %s (must be %q or %q)", c.Storage, StorageMongo, StorageMemory)
	}

	if c.GoogleTimeout < time.Second {
		return fmt.Errorf("google timeout must be at least 1 second, got: %v", c.GoogleTimeout)
	}

	if c.TokenTTL < time.Minute {
		return fmt.Errorf("token TTL must be at least 1 minute, got: %v", c.TokenTTL)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
