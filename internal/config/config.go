package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL  = "http://localhost:8080/api"
	defaultHTTPTimeout = "15s"
	defaultStubAddr    = ":8080"
	defaultStubDSN     = "salonhub-stub.db"
)

type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration

	// StateDir holds the persisted session file.
	StateDir string

	// Stub server settings, only read by cmd/salonhub-stub.
	StubAddr      string
	StubDSN       string
	StubJWTSecret string
}

// Load reads configuration from the environment, with .env support for
// local development. Missing values fall back to usable defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:    strings.TrimRight(getEnv("SALONHUB_API_URL", defaultAPIBaseURL), "/"),
		StubAddr:      getEnv("SALONHUB_STUB_ADDR", defaultStubAddr),
		StubDSN:       getEnv("SALONHUB_STUB_DSN", defaultStubDSN),
		StubJWTSecret: getEnv("SALONHUB_STUB_JWT_SECRET", "local-dev-secret"),
	}

	var err error
	cfg.HTTPTimeout, err = parseDurationEnv("SALONHUB_HTTP_TIMEOUT", defaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	cfg.StateDir = strings.TrimSpace(os.Getenv("SALONHUB_STATE_DIR"))
	if cfg.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		cfg.StateDir = filepath.Join(base, "salonhub")
	}

	return cfg, nil
}

// SessionFile is where the durable token + user record live.
func (c *Config) SessionFile() string {
	return filepath.Join(c.StateDir, "session.json")
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return d, nil
}
