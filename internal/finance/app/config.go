package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env                 string        `env:"ENV" env-default:"dev" env-description:"Environment (dev, staging, prod)"`
	LogLevel            string        `env:"LOG_LEVEL" env-default:"info" env-description:"Log level (debug, info, warn, error)"`
	LogFormat           string        `env:"LOG_FORMAT" env-default:"json" env-description:"Log format (json, text)"`
	Port                int           `env:"PORT" env-default:"8080" env-description:"HTTP server port"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" env-default:"10s" env-description:"Graceful shutdown timeout"`

	DatabaseDriver string `env:"FINANCE_DATABASE_DRIVER" env-default:"sqlite" env-description:"Store backend (sqlite, postgres)"`
	DatabaseFile   string `env:"FINANCE_DATABASE_FILE" env-default:"finance.db" env-description:"SQLite database file"`
	DatabaseURL    string `env:"FINANCE_DATABASE_URL" env-description:"Postgres connection URL, required for the postgres driver"`

	PepperFile     string        `env:"FINANCE_PEPPER_FILE" env-default:"pepper" env-description:"File holding the passcode hashing pepper, created if missing"`
	SigningKeyFile string        `env:"FINANCE_SIGNING_KEY_FILE" env-description:"Ed25519 PEM key for session tokens; empty generates an ephemeral key"`
	Issuer         string        `env:"FINANCE_ISSUER" env-default:"finance" env-description:"Issuer claim of session tokens"`
	SessionTTL     time.Duration `env:"FINANCE_SESSION_TTL" env-default:"12h" env-description:"Session token lifetime"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("FINANCE_DATABASE_FILE is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("FINANCE_DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown FINANCE_DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("FINANCE_SESSION_TTL must be positive"))
	}
	if c.PepperFile == "" {
		errs = append(errs, errors.New("FINANCE_PEPPER_FILE is required"))
	}

	return errors.Join(errs...)
}

// Usage describes every variable LoadConfig reads.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return err.Error()
	}
	return text
}
