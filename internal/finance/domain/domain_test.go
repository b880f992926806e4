package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aussiebroadwan/finance/internal/finance/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-01-05", "2024-01-05", true},
		{" 2024-01-05 ", "2024-01-05", true},
		{"2024-01-05T23:59:59Z", "2024-01-05", true},
		{"2024-01-05 08:30:00", "2024-01-05", true},
		{"05/01/2024", "", false},
		{"2024-13-01", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := domain.ParseDate(tt.in)
			if !tt.ok {
				require.Error(t, err)
				require.True(t, domain.LenientDate(tt.in).IsZero())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, d.String())
		})
	}
}

func TestDateMonthKeyAndOrder(t *testing.T) {
	a := domain.NewDate(2024, time.January, 31)
	b := domain.MustParseDate("2024-02-01")

	require.Equal(t, "2024-01", a.MonthKey())
	require.True(t, a.Before(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, "", domain.Date{}.String())
	require.Equal(t, "", domain.Date{}.MonthKey())
}

func TestDateJSON(t *testing.T) {
	var v struct {
		D domain.Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2024-03-09"}`), &v))
	require.Equal(t, domain.NewDate(2024, time.March, 9), v.D)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	require.JSONEq(t, `{"d":"2024-03-09"}`, string(out))

	require.Error(t, json.Unmarshal([]byte(`{"d":"yesterday"}`), &v))
}

func TestValidatePasscode(t *testing.T) {
	require.NoError(t, domain.ValidatePasscode("0123456789"))
	require.NoError(t, domain.ValidatePasscode("éééééééééé"), "length counts characters, not bytes")
	require.NoError(t, domain.ValidatePasscode("\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09"))
	require.ErrorIs(t, domain.ValidatePasscode("012345678"), domain.ErrPasscodeLength)
	require.ErrorIs(t, domain.ValidatePasscode("0123456789a"), domain.ErrPasscodeLength)
	require.ErrorIs(t, domain.ValidatePasscode(""), domain.ErrPasscodeLength)
}

func TestNormalizeUsername(t *testing.T) {
	name, err := domain.NormalizeUsername("  Alice ")
	require.NoError(t, err)
	require.Equal(t, "Alice", name)

	_, err = domain.NormalizeUsername(" \t ")
	require.ErrorIs(t, err, domain.ErrEmptyUsername)
}

func TestNewTransaction(t *testing.T) {
	day := domain.MustParseDate("2024-01-05")

	tx, err := domain.NewTransaction(1, day, decimal.NewFromInt(50), " Food ", "  lunch ")
	require.NoError(t, err)
	require.Equal(t, "Food", tx.Category)
	require.Equal(t, "lunch", tx.Description)

	_, err = domain.NewTransaction(1, day, decimal.Zero, "Food", "")
	require.ErrorIs(t, err, domain.ErrNonPositiveAmount)

	_, err = domain.NewTransaction(1, day, decimal.NewFromInt(-3), "Food", "")
	require.ErrorIs(t, err, domain.ErrNonPositiveAmount)

	_, err = domain.NewTransaction(1, domain.Date{}, decimal.NewFromInt(5), "  ", "")
	require.ErrorIs(t, err, domain.ErrMissingDate)
	require.ErrorIs(t, err, domain.ErrEmptyCategory)

	tx, err = domain.NewTransaction(1, day, decimal.RequireFromString("12.50"), "Food", "")
	require.NoError(t, err)
	require.Equal(t, "12.5", tx.Amount.String())

	_, err = domain.NewTransaction(1, day, decimal.RequireFromString("0.001"), "Food", "")
	require.ErrorIs(t, err, domain.ErrAmountPrecision)

	_, err = domain.NewTransaction(1, day, domain.MaxAmount, "Food", "")
	require.ErrorIs(t, err, domain.ErrAmountTooLarge)
}

func TestMergeCategories(t *testing.T) {
	got := domain.MergeCategories([]string{"Rent", "Travel", "Books", "Travel", ""})
	require.Equal(t, len(domain.SuggestedCategories)+2, len(got))
	require.Equal(t, domain.SuggestedCategories, got[:len(domain.SuggestedCategories)])
	require.Equal(t, []string{"Books", "Travel"}, got[len(domain.SuggestedCategories):])
}
