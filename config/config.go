// Package config loads the application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"library/db"
)

const (
	defaultPort              = "8080"
	defaultEnvironment       = "development"
	defaultLogLevel          = "info"
	defaultElasticIndex      = db.INDEX_NAME
	defaultMaxCachedRequests = 3
	defaultAdminEmail        = "admin@biblio.local"
	defaultAdminPhone        = "1234567890"
)

type Config struct {
	Port              string
	Environment       string
	LogLevel          string
	RedisURL          string // Optional, in-memory cache when empty
	ElasticURL        string // Optional, in-memory catalog when empty
	ElasticIndex      string
	MaxCachedRequests int
	AdminEmail        string
	AdminPhone        string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	maxCached, err := intEnv("MAX_CACHED_REQUESTS", defaultMaxCachedRequests)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:              stringEnv("PORT", defaultPort),
		Environment:       stringEnv("ENVIRONMENT", defaultEnvironment),
		LogLevel:          stringEnv("LOG_LEVEL", defaultLogLevel),
		RedisURL:          os.Getenv("REDIS_URL"),
		ElasticURL:        os.Getenv("ELASTIC_URL"),
		ElasticIndex:      stringEnv("ELASTIC_INDEX", defaultElasticIndex),
		MaxCachedRequests: maxCached,
		AdminEmail:        stringEnv("ADMIN_EMAIL", defaultAdminEmail),
		AdminPhone:        stringEnv("ADMIN_PHONE", defaultAdminPhone),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	var errs []error

	switch cfg.Environment {
	case "development", "staging", "production":
	default:
		errs = append(errs, fmt.Errorf("invalid environment %q", cfg.Environment))
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q", cfg.LogLevel))
	}

	if cfg.MaxCachedRequests < 1 {
		errs = append(errs, fmt.Errorf("max cached requests must be positive, got %d", cfg.MaxCachedRequests))
	}

	if cfg.AdminEmail == "" {
		errs = append(errs, errors.New("admin email is required"))
	}

	if cfg.AdminPhone == "" {
		errs = append(errs, errors.New("admin phone is required"))
	}

	return errors.Join(errs...)
}

func stringEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	return parsed, nil
}
