package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/finance/internal/finance/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this and expose sub-repositories so a transaction-scoped Store can
// hand out the same repos.
type Store interface {
	Users() Users
	Transactions() Transactions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil
	// and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUsername is an exact, case-sensitive match.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a user and returns the assigned id. A duplicate
	// username yields ErrAlreadyExists.
	CreateUser(ctx context.Context, username string, passcodeHash []byte) (int64, error)

	// UpdatePasscodeHash overwrites the stored digest and bumps updated_at.
	// Returns ErrNotFound if the user does not exist.
	UpdatePasscodeHash(ctx context.Context, userID int64, passcodeHash []byte) error

	CountUsers(ctx context.Context) (int64, error)
}

type Transactions interface {
	// InsertTransaction appends a row and returns its id. Validation is the
	// caller's job; an unknown user surfaces as a store error.
	InsertTransaction(ctx context.Context, t domain.Transaction) (int64, error)

	// ListTransactionsByUser returns the user's ledger ordered by date, then id.
	ListTransactionsByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)

	// DeleteTransactionsByUser clears the user's ledger and reports how many
	// rows went. Clearing an empty ledger is not an error.
	DeleteTransactionsByUser(ctx context.Context, userID int64) (int64, error)

	// ListCategoriesByUser returns the distinct categories in the user's ledger, sorted.
	ListCategoriesByUser(ctx context.Context, userID int64) ([]string, error)
}
