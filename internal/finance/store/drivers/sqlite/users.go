package sqlite

import (
	"context"

	"github.com/aussiebroadwan/finance/internal/finance/domain"
	"github.com/aussiebroadwan/finance/internal/finance/store"
	"github.com/aussiebroadwan/finance/internal/finance/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, username string, passcodeHash []byte) (int64, error) {
	id, err := r.q.CreateUser(ctx, gen.CreateUserParams{
		Username:     username,
		PasscodeHash: passcodeHash,
	})
	if err != nil {
		return 0, mapUniqueViolation(err)
	}
	return id, nil
}

func (r *usersRepo) UpdatePasscodeHash(ctx context.Context, userID int64, passcodeHash []byte) error {
	n, err := r.q.UpdateUserPasscodeHash(ctx, gen.UpdateUserPasscodeHashParams{
		PasscodeHash: passcodeHash,
		ID:           userID,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.q.CountUsers(ctx)
}
