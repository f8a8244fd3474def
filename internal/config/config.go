package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr       = ":8080"
	defaultSessionDSN = "tenaly-admin.db"
	defaultSessionTTL = "24h"
)

type Config struct {
	AppEnv      string
	Addr        string
	APIBaseURL  string
	SessionDSN  string
	SessionTTL  time.Duration
	CORSOrigins []string
}

// Load reads configuration from the environment, with .env autoloaded for
// local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:     strings.ToLower(getEnv("APP_ENV", "dev")),
		Addr:       getEnv("ADDR", defaultAddr),
		APIBaseURL: strings.TrimRight(strings.TrimSpace(os.Getenv("TENALY_API_URL")), "/"),
		SessionDSN: getEnv("SESSION_DB", defaultSessionDSN),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", defaultSessionTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("TENALY_API_URL is empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if isProdLike(c.AppEnv) && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("in prod/release TENALY_API_URL must be https")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
