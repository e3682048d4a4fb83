// Package config resolves all recognized environment options once at
// startup into one explicit struct. Nothing else in the codebase reads the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config carries every recognized option. Missing credentials degrade the
// corresponding feature instead of crashing: webhook verification fails
// closed, sends fail with ErrNotConfigured.
type Config struct {
	Port            string `validate:"required,numeric"`
	VerifyToken     string
	GraphAPIToken   string
	PhoneNumberID   string
	GraphAPIVersion string `validate:"required"`
	ForwardURL      string `validate:"omitempty,url"`
	DatabaseURL     string
	UseMemoryStore  bool
	DedupCapacity   int    `validate:"gt=0"`
}

// Load reads the environment into a Config and validates it.
func Load() (*Config, error) {
	dedupCapacity, err := envInt("DEDUP_CAPACITY", 10000)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := &Config{
		Port:            envOr("PORT", "8080"),
		VerifyToken:     os.Getenv("VERIFY_TOKEN"),
		GraphAPIToken:   os.Getenv("GRAPH_API_TOKEN"),
		PhoneNumberID:   os.Getenv("PHONE_NUMBER_ID"),
		GraphAPIVersion: envOr("GRAPH_API_VERSION", "v20.0"),
		ForwardURL:      os.Getenv("FORWARD_URL"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		UseMemoryStore:  os.Getenv("USE_MEMORY_STORE") == "true",
		DedupCapacity:   dedupCapacity,
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if !cfg.UseMemoryStore && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("invalid configuration: DATABASE_URL is required unless USE_MEMORY_STORE=true")
	}
	return cfg, nil
}

// SenderConfigured reports whether outbound sends can be attempted.
func (c *Config) SenderConfigured() bool {
	return c.GraphAPIToken != "" && c.PhoneNumberID != ""
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}
