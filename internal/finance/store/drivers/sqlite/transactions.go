package sqlite

import (
	"context"

	"github.com/aussiebroadwan/finance/internal/finance/domain"
	"github.com/aussiebroadwan/finance/internal/finance/store/drivers/sqlite/gen"
)

type transactionsRepo struct {
	q *gen.Queries
}

func (r *transactionsRepo) InsertTransaction(ctx context.Context, t domain.Transaction) (int64, error) {
	return r.q.InsertTransaction(ctx, gen.InsertTransactionParams{
		UserID:      t.UserID,
		Date:        t.Date.String(),
		Amount:      t.Amount.InexactFloat64(),
		Category:    t.Category,
		Description: mapStringNull(t.Description),
	})
}

func (r *transactionsRepo) ListTransactionsByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	rows, err := r.q.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapTransaction(row))
	}
	return out, nil
}

func (r *transactionsRepo) DeleteTransactionsByUser(ctx context.Context, userID int64) (int64, error) {
	return r.q.DeleteTransactionsByUser(ctx, userID)
}

func (r *transactionsRepo) ListCategoriesByUser(ctx context.Context, userID int64) ([]string, error) {
	cats, err := r.q.ListCategoriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}
