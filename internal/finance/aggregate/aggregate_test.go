package aggregate_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/aussiebroadwan/finance/internal/finance/aggregate"
	"github.com/aussiebroadwan/finance/internal/finance/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func row(id int64, date, amount, category string) domain.Transaction {
	return domain.Transaction{
		ID:       id,
		UserID:   1,
		Date:     domain.LenientDate(date),
		Amount:   decimal.RequireFromString(amount),
		Category: category,
	}
}

// sample is the three-row ledger used across the scenarios.
func sample() []domain.Transaction {
	return []domain.Transaction{
		row(1, "2024-01-05", "50", "Food"),
		row(2, "2024-01-20", "30", "Food"),
		row(3, "2024-02-01", "100", "Rent"),
	}
}

func TestMonthlyTotalsScenario(t *testing.T) {
	got := aggregate.MonthlyTotals(sample())

	require.Len(t, got, 2)
	require.Equal(t, "2024-01", got[0].Month)
	require.Equal(t, "80", got[0].Total.String())
	require.Equal(t, "2024-02", got[1].Month)
	require.Equal(t, "100", got[1].Total.String())
}

func TestCategoryBreakdownScenario(t *testing.T) {
	got := aggregate.CategoryBreakdown(sample())

	require.Len(t, got, 2)
	require.Equal(t, "Rent", got[0].Category)
	require.Equal(t, "100", got[0].Total.String())
	require.Equal(t, "55.6", got[0].Percent.String())
	require.Equal(t, "Food", got[1].Category)
	require.Equal(t, "80", got[1].Total.String())
	require.Equal(t, "44.4", got[1].Percent.String())
}

func TestCategoryBreakdownTiesSortByName(t *testing.T) {
	got := aggregate.CategoryBreakdown([]domain.Transaction{
		row(1, "2024-01-01", "10", "Zoo"),
		row(2, "2024-01-01", "10", "Apples"),
		row(3, "2024-01-01", "5", "Misc"),
	})

	require.Equal(t, "Apples", got[0].Category)
	require.Equal(t, "Zoo", got[1].Category)
	require.Equal(t, "Misc", got[2].Category)
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	require.Empty(t, aggregate.CategoryBreakdown(nil))
}

func TestFilterByDateRangeScenario(t *testing.T) {
	got := aggregate.FilterByDateRange(sample(),
		domain.MustParseDate("2024-01-10"),
		domain.MustParseDate("2024-01-31"),
	)

	require.Len(t, got, 1)
	require.Equal(t, int64(2), got[0].ID)
	require.Equal(t, "30", got[0].Amount.String())
}

func TestFilterByDateRangeEdges(t *testing.T) {
	ts := append(sample(), row(4, "not a date", "9", "Food"))

	t.Run("bounds are inclusive", func(t *testing.T) {
		got := aggregate.FilterByDateRange(ts,
			domain.MustParseDate("2024-01-05"),
			domain.MustParseDate("2024-02-01"),
		)
		require.Len(t, got, 3)
	})

	t.Run("undated rows never match", func(t *testing.T) {
		got := aggregate.FilterByDateRange(ts,
			domain.MustParseDate("1900-01-01"),
			domain.MustParseDate("2999-12-31"),
		)
		for _, r := range got {
			require.NotEqual(t, int64(4), r.ID)
		}
	})

	t.Run("nothing in range", func(t *testing.T) {
		got := aggregate.FilterByDateRange(ts,
			domain.MustParseDate("2030-01-01"),
			domain.MustParseDate("2030-12-31"),
		)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("empty input", func(t *testing.T) {
		require.Empty(t, aggregate.FilterByDateRange(nil, domain.Date{}, domain.Date{}))
	})
}

func TestFilterByCategories(t *testing.T) {
	t.Run("empty selection selects nothing", func(t *testing.T) {
		require.Empty(t, aggregate.FilterByCategories(sample(), nil))
		require.Empty(t, aggregate.FilterByCategories(sample(), []string{}))
	})

	t.Run("keeps members in order", func(t *testing.T) {
		got := aggregate.FilterByCategories(sample(), []string{"Food", "Travel"})
		require.Len(t, got, 2)
		require.Equal(t, int64(1), got[0].ID)
		require.Equal(t, int64(2), got[1].ID)
	})

	t.Run("does not alias input", func(t *testing.T) {
		in := sample()
		got := aggregate.FilterByCategories(in, []string{"Rent"})
		got[0].Category = "changed"
		require.Equal(t, "Rent", in[2].Category)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := aggregate.Summarize(nil)
		require.True(t, s.Total.IsZero())
		require.Zero(t, s.Count)

		_, ok := s.Average()
		require.False(t, ok)
	})

	t.Run("scenario", func(t *testing.T) {
		s := aggregate.Summarize(sample())
		require.Equal(t, "180", s.Total.String())
		require.Equal(t, 3, s.Count)

		avg, ok := s.Average()
		require.True(t, ok)
		require.Equal(t, "60", avg.String())
	})
}

func TestMonthlyTotalsSkipsUndatedRows(t *testing.T) {
	got := aggregate.MonthlyTotals([]domain.Transaction{
		row(1, "garbage", "5", "Food"),
		row(2, "2023-12-31", "1", "Food"),
	})
	require.Len(t, got, 1)
	require.Equal(t, "2023-12", got[0].Month)
}

func TestMonthlyTotalsDifferFromSummaryForUndatedRows(t *testing.T) {
	ts := []domain.Transaction{
		row(1, "garbage", "5", "Food"),
		row(2, "2023-12-31", "1", "Food"),
	}

	var months decimal.Decimal
	for _, m := range aggregate.MonthlyTotals(ts) {
		months = months.Add(m.Total)
	}
	require.True(t, decimal.NewFromInt(1).Equal(months))
	require.True(t, decimal.NewFromInt(6).Equal(aggregate.Summarize(ts).Total))
}

// randomLedger builds a ledger with a fixed seed so failures reproduce.
func randomLedger(seed uint64, n int) []domain.Transaction {
	r := rand.New(rand.NewPCG(seed, seed))
	cats := []string{"Food", "Rent", "Transport", "Health", "Other"}

	out := make([]domain.Transaction, 0, n)
	for i := range n {
		out = append(out, domain.Transaction{
			ID:       int64(i + 1),
			Date:     domain.NewDate(2023+r.IntN(2), time.Month(1+r.IntN(12)), 1+r.IntN(28)),
			Amount:   decimal.New(int64(1+r.IntN(100000)), -2),
			Category: cats[r.IntN(len(cats))],
		})
	}
	return out
}

func TestAggregationProperties(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		ts := randomLedger(seed, 1+int(seed)*7)

		summary := aggregate.Summarize(ts)

		monthly := aggregate.MonthlyTotals(ts)
		sum := decimal.Zero
		for i, m := range monthly {
			if i > 0 {
				require.Less(t, monthly[i-1].Month, m.Month, "months strictly ascending")
			}
			sum = sum.Add(m.Total)
		}
		require.True(t, sum.Equal(summary.Total), "monthly totals sum to the summary total")

		breakdown := aggregate.CategoryBreakdown(ts)
		pct := decimal.Zero
		for _, c := range breakdown {
			pct = pct.Add(c.Percent)
		}
		tolerance := decimal.NewFromFloat(0.1).Mul(decimal.NewFromInt(int64(len(breakdown))))
		require.True(t, pct.Sub(decimal.NewFromInt(100)).Abs().LessThanOrEqual(tolerance),
			"percentages sum to %s", pct)
	}
}
