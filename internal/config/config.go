package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// UpstreamBaseURL is the base URL of the foraging-conditions backend.
	UpstreamBaseURL string

	// HTTPTimeout bounds outbound calls to the backend.
	HTTPTimeout time.Duration

	// CacheMaxAge bounds how old a cached report may be served when the
	// upstream is unreachable.
	CacheMaxAge time.Duration

	// PrefetchInterval controls cache pre-warming; 0 disables it.
	PrefetchInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.UpstreamBaseURL = os.Getenv("UPSTREAM_BASE_URL")
	if cfg.UpstreamBaseURL == "" {
		return nil, fmt.Errorf("UPSTREAM_BASE_URL is required")
	}

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	maxAge, err := getenvDuration("CACHE_MAX_AGE", "10m")
	if err != nil {
		return nil, err
	}
	cfg.CacheMaxAge = maxAge

	prefetch, err := getenvDuration("PREFETCH_INTERVAL", "0s")
	if err != nil {
		return nil, err
	}
	cfg.PrefetchInterval = prefetch

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	v := getenvDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
