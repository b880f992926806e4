package aggregate

import (
	"cmp"
	"slices"

	"github.com/aussiebroadwan/finance/internal/finance/domain"
	"github.com/shopspring/decimal"
)

// Summary is the total and count of a set of transactions.
type Summary struct {
	Total decimal.Decimal
	Count int
}

// Average is Total/Count. ok is false for an empty summary and no division
// takes place.
func (s Summary) Average() (avg decimal.Decimal, ok bool) {
	if s.Count == 0 {
		return decimal.Zero, false
	}
	return s.Total.Div(decimal.NewFromInt(int64(s.Count))), true
}

func Summarize(ts []domain.Transaction) Summary {
	s := Summary{Total: decimal.Zero}
	for _, t := range ts {
		s.Total = s.Total.Add(t.Amount)
		s.Count++
	}
	return s
}

// MonthTotal is one bucket of the monthly series.
type MonthTotal struct {
	Month string // YYYY-MM
	Total decimal.Decimal
}

// MonthlyTotals sums amounts per calendar month, oldest first. Months without
// transactions are left out rather than zero filled, and undated transactions
// are skipped. The month totals therefore add up to Summarize's total only when
// every row is dated.
func MonthlyTotals(ts []domain.Transaction) []MonthTotal {
	buckets := make(map[string]decimal.Decimal)
	for _, t := range ts {
		key := t.Date.MonthKey()
		if key == "" {
			continue
		}
		buckets[key] = buckets[key].Add(t.Amount)
	}

	out := make([]MonthTotal, 0, len(buckets))
	for month, total := range buckets {
		out = append(out, MonthTotal{Month: month, Total: total})
	}
	slices.SortFunc(out, func(a, b MonthTotal) int { return cmp.Compare(a.Month, b.Month) })
	return out
}

// CategoryShare is one row of the category breakdown.
type CategoryShare struct {
	Category string
	Total    decimal.Decimal
	Percent  decimal.Decimal // share of the grand total, one decimal place
}

// CategoryBreakdown totals each category and its share of the grand total,
// largest first with ties ordered by name. A zero grand total yields an
// empty breakdown.
func CategoryBreakdown(ts []domain.Transaction) []CategoryShare {
	totals := make(map[string]decimal.Decimal)
	grand := decimal.Zero
	for _, t := range ts {
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		grand = grand.Add(t.Amount)
	}

	out := []CategoryShare{}
	if grand.IsZero() {
		return out
	}

	hundred := decimal.NewFromInt(100)
	for category, total := range totals {
		out = append(out, CategoryShare{
			Category: category,
			Total:    total,
			Percent:  total.Mul(hundred).Div(grand).Round(1),
		})
	}
	slices.SortFunc(out, func(a, b CategoryShare) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}
