package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewServesReadyz(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
		DatabaseDriver:      DriverSQLite,
		DatabaseFile:        filepath.Join(dir, "finance.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		SigningKeyFile:      filepath.Join(dir, "keys", "session.pem"),
		Issuer:              "finance-test",
		SessionTTL:          time.Hour,
	}

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	require.FileExists(t, cfg.PepperFile)
	require.FileExists(t, cfg.SigningKeyFile)

	srv := httptest.NewServer(app.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
}
