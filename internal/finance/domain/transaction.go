package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingDate       = errors.New("date is required")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrEmptyCategory     = errors.New("category must not be empty")
	ErrAmountPrecision   = errors.New("amount must have at most 2 decimal places")
	ErrAmountTooLarge    = errors.New("amount is too large")
)

// MaxAmount bounds a single entry so every store can hold it exactly.
var MaxAmount = decimal.New(1, 12)

// Transaction is one ledger entry. Ledger rows are append only; the only way
// to remove them is a full reset of the owner's ledger.
type Transaction struct {
	ID          int64
	UserID      int64
	Date        Date
	Amount      decimal.Decimal
	Category    string
	Description string
	CreatedAt   time.Time
}

// NewTransaction validates and normalises a transaction before insert.
func NewTransaction(userID int64, date Date, amount decimal.Decimal, category, description string) (Transaction, error) {
	t := Transaction{
		UserID:      userID,
		Date:        date,
		Amount:      amount,
		Category:    strings.TrimSpace(category),
		Description: strings.TrimSpace(description),
	}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func (t Transaction) Validate() error {
	var errs []error
	if t.Date.IsZero() {
		errs = append(errs, ErrMissingDate)
	}
	if !t.Amount.IsPositive() {
		errs = append(errs, ErrNonPositiveAmount)
	}
	if !t.Amount.Equal(t.Amount.Round(2)) {
		errs = append(errs, ErrAmountPrecision)
	}
	if t.Amount.GreaterThanOrEqual(MaxAmount) {
		errs = append(errs, ErrAmountTooLarge)
	}
	if strings.TrimSpace(t.Category) == "" {
		errs = append(errs, ErrEmptyCategory)
	}
	return errors.Join(errs...)
}
