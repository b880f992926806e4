package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/finance/internal/finance/domain"
)

type transactionsRepo struct {
	db DBTX
}

func (r *transactionsRepo) InsertTransaction(ctx context.Context, t domain.Transaction) (int64, error) {
	query := `INSERT INTO transactions (user_id, date, amount, category, description)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	description := sql.NullString{String: t.Description, Valid: t.Description != ""}

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		t.UserID, t.Date.Time(), t.Amount, t.Category, description,
	).Scan(&id)
	return id, err
}

func (r *transactionsRepo) ListTransactionsByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	query := `SELECT id, user_id, date, amount, category, description, created_at
	          FROM transactions
	          WHERE user_id = $1
	          ORDER BY date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Transaction{}
	for rows.Next() {
		var (
			t           domain.Transaction
			date        time.Time
			description sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.UserID, &date, &t.Amount, &t.Category, &description, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Date = domain.DateOf(date.UTC())
		t.Description = description.String
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *transactionsRepo) DeleteTransactionsByUser(ctx context.Context, userID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *transactionsRepo) ListCategoriesByUser(ctx context.Context, userID int64) ([]string, error) {
	query := `SELECT DISTINCT category FROM transactions WHERE user_id = $1 ORDER BY category ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
