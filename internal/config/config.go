// Package config loads environment-based configuration for the AppKey
// demo client.
package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment-based configuration.
type Config struct {
	// AppKey backend base URL, e.g. https://api.appkey.io
	APIURL string `env:"APPKEY_API_URL"`

	// Tenant identity presented on every pre-login request.
	AppToken string `env:"APPKEY_APP_TOKEN"`

	// WebAuthn relying party the ceremonies are scoped to.
	RelyingPartyID string `env:"APPKEY_RP_ID"`

	// Origin reported by the credential manager. Defaults to
	// https://<rp_id> when empty.
	Origin string `env:"APPKEY_ORIGIN"`

	// Path of the local bbolt state database. Defaults to
	// ~/.appkey/state.db.
	StatePath string `env:"APPKEY_STATE_PATH"`

	// Default locale sent on signup when the tenant supports locales.
	Locale string `env:"APPKEY_LOCALE" envDefault:""`

	// Per-request HTTP timeout. Ceremony challenges are one-time, so
	// timed-out requests are never retried automatically.
	HTTPTimeout time.Duration `env:"APPKEY_HTTP_TIMEOUT" envDefault:"30s"`

	// Environment controls log format
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// LogLevel overrides the environment's default level when set
	// (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:""`
}

// warnInsecureEnvFile checks whether the .env file (if present) has
// overly permissive permissions. On Unix systems, group or world
// readable files risk exposing the app token to other users.
func warnInsecureEnvFile() {
	if runtime.GOOS == "windows" {
		return
	}

	info, err := os.Stat(".env")
	if err != nil {
		return // file does not exist, nothing to check
	}

	mode := info.Mode().Perm()
	if mode&0o077 != 0 {
		log.Printf("WARNING: .env file has insecure permissions %04o; recommended 0600", mode)
	}
}

// Load reads configuration from environment variables.
// It first attempts to load a .env file if present, then parses env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	warnInsecureEnvFile()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if cfg.Origin == "" {
		cfg.Origin = "https://" + cfg.RelyingPartyID
	}

	if cfg.StatePath == "" {
		p, err := defaultStatePath()
		if err != nil {
			return nil, err
		}

		cfg.StatePath = p
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("APPKEY_API_URL is required")
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("APPKEY_API_URL is not an absolute URL: %q", c.APIURL)
	}

	if c.AppToken == "" {
		return fmt.Errorf("APPKEY_APP_TOKEN is required")
	}

	if c.RelyingPartyID == "" {
		return fmt.Errorf("APPKEY_RP_ID is required")
	}

	if strings.Contains(c.RelyingPartyID, "/") {
		return fmt.Errorf("APPKEY_RP_ID must be a bare domain, got %q", c.RelyingPartyID)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("APPKEY_HTTP_TIMEOUT must be positive")
	}

	return nil
}

// defaultStatePath returns ~/.appkey/state.db.
func defaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}

	return filepath.Join(home, ".appkey", "state.db"), nil
}

// IsProduction returns true when the environment is set to production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
