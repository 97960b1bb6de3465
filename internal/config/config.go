package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const devSecret = "dev-secret-change-in-production"

// Config holds runtime configuration for the application.
// JWTExpiry of zero issues tokens without an expiration claim, matching the
// historical behavior of this API; set JWT_EXPIRY to opt into expiring tokens.
type Config struct {
	Port        string        `envconfig:"PORT" default:"8080"`
	Env         string        `envconfig:"ENV" default:"development"`
	DatabaseDSN string        `envconfig:"DATABASE_DSN" default:""`
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"dev-secret-change-in-production"`
	JWTExpiry   time.Duration `envconfig:"JWT_EXPIRY" default:"0"`
	BcryptCost  int           `envconfig:"BCRYPT_COST" default:"10"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Env == "production" && cfg.JWTSecret == devSecret {
		return Config{}, errors.New("JWT_SECRET must be set in production environment")
	}

	return cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
