//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/finance/internal/finance/domain"
	"github.com/aussiebroadwan/finance/internal/finance/store"
	"github.com/aussiebroadwan/finance/internal/finance/store/drivers/postgres"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres runs a throwaway postgres container and returns a migrated store.
func startPostgres(t *testing.T) *postgres.Store {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "finance",
			"POSTGRES_PASSWORD": "finance",
			"POSTGRES_DB":       "finance",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	url := fmt.Sprintf("postgres://finance:finance@%s:%s/finance?sslmode=disable", host, port.Port())
	s, err := postgres.NewStore(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestPostgresLedgerRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := startPostgres(t)

	id, err := s.Users().CreateUser(ctx, "alice", []byte("digest"))
	require.NoError(t, err)

	_, err = s.Users().CreateUser(ctx, "alice", []byte("digest"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	for _, row := range []struct {
		date     string
		amount   string
		category string
	}{
		{"2024-02-01", "100", "Rent"},
		{"2024-01-20", "30.25", "Food"},
		{"2024-01-05", "50", "Food"},
	} {
		_, err := s.Transactions().InsertTransaction(ctx, domain.Transaction{
			UserID:   id,
			Date:     domain.MustParseDate(row.date),
			Amount:   decimal.RequireFromString(row.amount),
			Category: row.category,
		})
		require.NoError(t, err)
	}

	got, err := s.Transactions().ListTransactionsByUser(ctx, id)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "2024-01-05", got[0].Date.String())
	require.True(t, got[1].Amount.Equal(decimal.RequireFromString("30.25")))

	cats, err := s.Transactions().ListCategoriesByUser(ctx, id)
	require.NoError(t, err)
	require.Equal(t, []string{"Food", "Rent"}, cats)

	n, err := s.Transactions().DeleteTransactionsByUser(ctx, id)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	n, err = s.Transactions().DeleteTransactionsByUser(ctx, id)
	require.NoError(t, err)
	require.Zero(t, n)
}
