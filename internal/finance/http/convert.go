package http

import (
	"github.com/aussiebroadwan/finance/internal/finance/aggregate"
	"github.com/aussiebroadwan/finance/internal/finance/domain"
	"github.com/aussiebroadwan/finance/pkg/financesdk"
)

func toTransactions(ts []domain.Transaction) []financesdk.Transaction {
	out := make([]financesdk.Transaction, 0, len(ts))
	for _, t := range ts {
		out = append(out, financesdk.Transaction{
			ID:          t.ID,
			Date:        t.Date.String(),
			Amount:      t.Amount,
			Category:    t.Category,
			Description: t.Description,
		})
	}
	return out
}

func toCriteria(r aggregate.Resolved) financesdk.Criteria {
	return financesdk.Criteria{
		Start:      r.Start.String(),
		End:        r.End.String(),
		Categories: nonNil(r.Categories),
		Available:  nonNil(r.Available),
	}
}

func toSummary(s aggregate.Summary) financesdk.Summary {
	out := financesdk.Summary{Total: s.Total, Count: s.Count}
	if avg, ok := s.Average(); ok {
		avg = avg.Round(2)
		out.Average = &avg
	}
	return out
}

func toMonthly(ms []aggregate.MonthTotal) []financesdk.MonthTotal {
	out := make([]financesdk.MonthTotal, 0, len(ms))
	for _, m := range ms {
		out = append(out, financesdk.MonthTotal{Month: m.Month, Total: m.Total})
	}
	return out
}

func toBreakdown(cs []aggregate.CategoryShare) []financesdk.CategoryShare {
	out := make([]financesdk.CategoryShare, 0, len(cs))
	for _, c := range cs {
		out = append(out, financesdk.CategoryShare{Category: c.Category, Total: c.Total, Percent: c.Percent})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
