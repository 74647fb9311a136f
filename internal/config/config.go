package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all process configuration, loaded from the environment.
type Config struct {
	Environment   string
	HTTPAddr      string
	MongoURI      string
	MongoDatabase string
	MongoTimeout  time.Duration
	JWTSecret     string
	LogLevel      string
}

// Load reads configuration from environment variables. MONGO_URI and
// JWT_SECRET have no usable defaults and must be set.
func Load() (*Config, error) {
	cfg := &Config{
		Environment:   getEnv("APP_ENV", "development"),
		HTTPAddr:      ":" + getEnv("PORT", "8080"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnv("MONGO_DATABASE", "fairgrounds"),
		MongoTimeout:  30 * time.Second,
		JWTSecret:     os.Getenv("JWT_SECRET"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if v := os.Getenv("MONGO_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MONGO_TIMEOUT: %w", err)
		}
		cfg.MongoTimeout = d
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
