package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library/db"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "LOG_LEVEL", "REDIS_URL", "ELASTIC_URL", "ELASTIC_INDEX", "MAX_CACHED_REQUESTS", "ADMIN_EMAIL", "ADMIN_PHONE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, db.INDEX_NAME, cfg.ElasticIndex)
	assert.Equal(t, "books", cfg.ElasticIndex)
	assert.Equal(t, 3, cfg.MaxCachedRequests)
	assert.Equal(t, "admin@biblio.local", cfg.AdminEmail)
	assert.Equal(t, "1234567890", cfg.AdminPhone)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.ElasticURL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("REDIS_URL", "localhost:6379")
	t.Setenv("MAX_CACHED_REQUESTS", "10")
	t.Setenv("ADMIN_EMAIL", "desk@library.org")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, 10, cfg.MaxCachedRequests)
	assert.Equal(t, "desk@library.org", cfg.AdminEmail)
}

func TestLoad_InvalidMaxCachedRequests(t *testing.T) {
	t.Setenv("MAX_CACHED_REQUESTS", "many")

	_, err := Load()

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Environment:       "development",
			LogLevel:          "info",
			MaxCachedRequests: 3,
			AdminEmail:        "admin@biblio.local",
			AdminPhone:        "1234567890",
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"valid", func(*Config) {}, true},
		{"unknown environment", func(c *Config) { c.Environment = "test" }, false},
		{"environment is case sensitive", func(c *Config) { c.Environment = "DEVELOPMENT" }, false},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }, false},
		{"zero cache size", func(c *Config) { c.MaxCachedRequests = 0 }, false},
		{"missing admin email", func(c *Config) { c.AdminEmail = "" }, false},
		{"missing admin phone", func(c *Config) { c.AdminPhone = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
