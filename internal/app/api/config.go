package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Reference policies decide what happens when a referenced customer or product is deleted.
const (
	PolicyAllow    = "allow"
	PolicyRestrict = "restrict"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	StoreDriver     string        `env:"STORE_DRIVER" envDefault:"memory"`
	PostgresDSN     string        `env:"POSTGRES_DSN"`
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"backoffice.db"`
	UploadDir       string        `env:"UPLOAD_DIR" envDefault:"./uploads"`
	ReferencePolicy string        `env:"REFERENCE_POLICY" envDefault:"allow"`
	AuthRequired    bool          `env:"AUTH_REQUIRED" envDefault:"false"`
	AuthCredentials string        `env:"AUTH_CREDENTIALS" envDefault:"aini:12345,john:password,jane:abc123"`
	AuthTokenSecret string        `env:"AUTH_TOKEN_SECRET"`
	AuthTokenTTL    time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"shop-backoffice-api"`
	Environment     string        `env:"DEPLOYMENT_ENVIRONMENT" envDefault:"local"`
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	cfg.ReferencePolicy = strings.ToLower(strings.TrimSpace(cfg.ReferencePolicy))
	cfg.PostgresDSN = strings.TrimSpace(cfg.PostgresDSN)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown enum values and non-positive durations.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("STORE_DRIVER must be one of memory, postgres, sqlite; got %q", c.StoreDriver)
	}
	switch c.ReferencePolicy {
	case PolicyAllow, PolicyRestrict:
	default:
		return fmt.Errorf("REFERENCE_POLICY must be allow or restrict; got %q", c.ReferencePolicy)
	}
	if c.AuthTokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL must be positive")
	}
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
