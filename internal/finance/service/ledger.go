package service

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"

	"github.com/aussiebroadwan/finance/internal/finance/aggregate"
	"github.com/aussiebroadwan/finance/internal/finance/domain"
	"github.com/aussiebroadwan/finance/internal/finance/store"
	"github.com/aussiebroadwan/finance/pkg/slogx"
	"github.com/shopspring/decimal"
)

// CSVHeader is the first row of every export.
var CSVHeader = []string{"date", "amount", "category", "description"}

type LedgerService struct {
	Store store.Store
}

// NewTransaction is the caller supplied part of a ledger entry.
type NewTransaction struct {
	Date        domain.Date
	Amount      decimal.Decimal
	Category    string
	Description string
}

// AddTransaction validates in and appends it to the user's ledger.
func (s *LedgerService) AddTransaction(ctx context.Context, userID int64, in NewTransaction) (int64, error) {
	t, err := domain.NewTransaction(userID, in.Date, in.Amount, in.Category, in.Description)
	if err != nil {
		return 0, invalidInput(err)
	}

	id, err := s.Store.Transactions().InsertTransaction(ctx, t)
	if err != nil {
		return 0, err
	}

	slogx.FromContext(ctx).Debug("transaction added", slog.Int64("transaction_id", id))
	return id, nil
}

// ListTransactions returns a fresh snapshot of the user's ledger.
func (s *LedgerService) ListTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return s.Store.Transactions().ListTransactionsByUser(ctx, userID)
}

// ResetTransactions clears the user's ledger. Resetting an empty ledger is a no-op.
func (s *LedgerService) ResetTransactions(ctx context.Context, userID int64) (int64, error) {
	n, err := s.Store.Transactions().DeleteTransactionsByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	slogx.FromContext(ctx).Info("ledger reset", slog.Int64("deleted", n))
	return n, nil
}

// Categories returns the suggested categories plus any others the user has used.
func (s *LedgerService) Categories(ctx context.Context, userID int64) ([]string, error) {
	present, err := s.Store.Transactions().ListCategoriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.MergeCategories(present), nil
}

// Report loads a snapshot and derives the dashboard views for c.
func (s *LedgerService) Report(ctx context.Context, userID int64, c aggregate.Criteria) (aggregate.Report, error) {
	ts, err := s.ListTransactions(ctx, userID)
	if err != nil {
		return aggregate.Report{}, err
	}
	return aggregate.BuildReport(ts, c), nil
}

// ExportCSV writes the whole unfiltered ledger in ledger order.
func (s *LedgerService) ExportCSV(ctx context.Context, userID int64, w io.Writer) error {
	ts, err := s.ListTransactions(ctx, userID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, t := range ts {
		if err := cw.Write([]string{t.Date.String(), t.Amount.String(), t.Category, t.Description}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
