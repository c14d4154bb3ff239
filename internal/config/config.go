// Package config loads the dashboard service configuration from the
// environment (and an optional .env file).
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid config")

// Preference store drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Auth modes
const (
	AuthDemo   = "demo"
	AuthStrict = "strict"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	BackendBaseURL string        `env:"BACKEND_BASE_URL" envDefault:"http://localhost:8080/api"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`
	BackendToken   string        `env:"BACKEND_TOKEN"`

	PrefsDriver string `env:"PREFS_DRIVER" envDefault:"memory"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	JWTSecret         string   `env:"APP_JWT_SECRET"`
	AuthMode          string   `env:"AUTH_MODE" envDefault:"demo"`
	AdminPasswordHash string   `env:"ADMIN_PASSWORD_HASH"`
	AdminEmails       []string `env:"ADMIN_EMAILS" envSeparator:","`

	DetectionInterval time.Duration `env:"DETECTION_INTERVAL" envDefault:"30s"`
	RouteCacheTTL     time.Duration `env:"ROUTE_CACHE_TTL" envDefault:"5m"`

	FirebaseCredentialsBase64 string `env:"FIREBASE_CREDENTIALS_BASE64"`
	FirebaseCredentialsFile   string `env:"FIREBASE_CREDENTIALS_FILE"`
	CriticalAlertTopic        string `env:"CRITICAL_ALERT_TOPIC" envDefault:"critical-containers"`
}

// Load reads .env when present, then the process environment
func Load() (Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromMap parses cfg from an explicit environment, for tests and tools
func FromMap(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.PrefsDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	case DriverRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("REDIS_URL is required for the redis driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown PREFS_DRIVER %q", c.PrefsDriver))
	}

	switch c.AuthMode {
	case AuthDemo:
	case AuthStrict:
		if c.AdminPasswordHash == "" {
			errs = append(errs, errors.New("ADMIN_PASSWORD_HASH is required in strict auth mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown AUTH_MODE %q", c.AuthMode))
	}

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("APP_JWT_SECRET is required"))
	}
	if c.DetectionInterval <= 0 {
		errs = append(errs, errors.New("DETECTION_INTERVAL must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// PushEnabled reports whether Firebase credentials were supplied
func (c Config) PushEnabled() bool {
	return c.FirebaseCredentialsBase64 != "" || c.FirebaseCredentialsFile != ""
}
