package app

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD",
		"FINANCE_DATABASE_DRIVER", "FINANCE_DATABASE_FILE", "FINANCE_DATABASE_URL",
		"FINANCE_PEPPER_FILE", "FINANCE_SIGNING_KEY_FILE", "FINANCE_ISSUER", "FINANCE_SESSION_TTL",
	} {
		t.Setenv(k, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "finance.db", cfg.DatabaseFile)
	require.Equal(t, "finance", cfg.Issuer)
	require.Equal(t, 12*time.Hour, cfg.SessionTTL)
	require.Empty(t, cfg.SigningKeyFile)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FINANCE_DATABASE_DRIVER", "postgres")
	t.Setenv("FINANCE_DATABASE_URL", "postgres://finance@localhost/finance")
	t.Setenv("FINANCE_SESSION_TTL", "30m")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Port:           8080,
		DatabaseDriver: DriverSQLite,
		DatabaseFile:   "finance.db",
		PepperFile:     "pepper",
		SessionTTL:     time.Hour,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown driver", func(c *Config) { c.DatabaseDriver = "mysql" }, "unknown FINANCE_DATABASE_DRIVER"},
		{"postgres without url", func(c *Config) { c.DatabaseDriver = DriverPostgres }, "FINANCE_DATABASE_URL"},
		{"sqlite without file", func(c *Config) { c.DatabaseFile = "" }, "FINANCE_DATABASE_FILE"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "PORT"},
		{"zero ttl", func(c *Config) { c.SessionTTL = 0 }, "FINANCE_SESSION_TTL"},
		{"no pepper", func(c *Config) { c.PepperFile = "" }, "FINANCE_PEPPER_FILE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestUsageListsVariables(t *testing.T) {
	u := Usage()
	require.Contains(t, u, "FINANCE_DATABASE_DRIVER")
	require.Contains(t, u, "FINANCE_SESSION_TTL")
}
