package config

import (
	"fmt"
	"os"
	"time"
)

// TokenConfig configures bearer token issuance and verification.
//
// The secret is process-wide and read once at startup. There is no rotation
// path: changing it invalidates every outstanding token.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
}

// ServerConfig configures the HTTP listener and the storage backend.
type ServerConfig struct {
	Port           string
	StorageBackend string
	// DatabaseURL is set only when StorageBackend is "postgres".
	DatabaseURL string
}

// LoadServerConfigFromEnv reads PORT (default 8080), STORAGE_BACKEND
// ("memory" or "postgres", default memory) and DATABASE_URL (required when
// the backend is postgres).
func LoadServerConfigFromEnv() (ServerConfig, error) {
	cfg := ServerConfig{
		Port:           "8080",
		StorageBackend: "memory",
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		cfg.StorageBackend = v
	}

	switch cfg.StorageBackend {
	case "memory":
	case "postgres":
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			return ServerConfig{}, fmt.Errorf("missing required env var: DATABASE_URL (STORAGE_BACKEND=postgres)")
		}
	default:
		return ServerConfig{}, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", "memory", "postgres", cfg.StorageBackend)
	}

	return cfg, nil
}

// LoadTokenConfigFromEnv reads TOKEN_SECRET (required) and TOKEN_TTL
// (optional duration, default 7 days).
func LoadTokenConfigFromEnv() (TokenConfig, error) {
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		return TokenConfig{}, fmt.Errorf("missing required env var: TOKEN_SECRET")
	}

	cfg := TokenConfig{
		Secret: []byte(secret),
		TTL:    7 * 24 * time.Hour,
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return TokenConfig{}, fmt.Errorf("TOKEN_TTL must be a duration (e.g. 168h): %w", err)
		}
		cfg.TTL = d
	}

	return cfg, nil
}
