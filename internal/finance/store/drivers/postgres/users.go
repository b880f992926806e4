package postgres

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/finance/internal/finance/domain"
	"github.com/aussiebroadwan/finance/internal/finance/store"
)

type usersRepo struct {
	db DBTX
}

const selectUser = `SELECT id, username, passcode_hash, created_at, updated_at FROM users`

func (r *usersRepo) scanOne(ctx context.Context, query string, arg any) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.PasscodeHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.scanOne(ctx, selectUser+` WHERE id = $1`, id)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.scanOne(ctx, selectUser+` WHERE username = $1`, username)
}

func (r *usersRepo) CreateUser(ctx context.Context, username string, passcodeHash []byte) (int64, error) {
	query := `INSERT INTO users (username, passcode_hash) VALUES ($1, $2) RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, query, username, passcodeHash).Scan(&id); err != nil {
		return 0, mapUniqueViolation(err)
	}
	return id, nil
}

func (r *usersRepo) UpdatePasscodeHash(ctx context.Context, userID int64, passcodeHash []byte) error {
	query := `UPDATE users SET passcode_hash = $1, updated_at = now() WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, passcodeHash, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}
