package aggregate

import (
	"github.com/aussiebroadwan/finance/internal/finance/domain"
)

// FilterByDateRange keeps transactions dated within [start, end], inclusive.
// Transactions without a readable date are dropped.
func FilterByDateRange(ts []domain.Transaction, start, end domain.Date) []domain.Transaction {
	out := []domain.Transaction{}
	for _, t := range ts {
		if t.Date.IsZero() || t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterByCategories keeps transactions whose category is in allowed. An
// empty allowed set selects nothing.
func FilterByCategories(ts []domain.Transaction, allowed []string) []domain.Transaction {
	out := []domain.Transaction{}
	if len(allowed) == 0 {
		return out
	}

	set := make(map[string]struct{}, len(allowed))
	for _, c := range allowed {
		set[c] = struct{}{}
	}
	for _, t := range ts {
		if _, ok := set[t.Category]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Categories lists the distinct categories of ts in first-seen order.
func Categories(ts []domain.Transaction) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, t := range ts {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}

// DateSpan returns the earliest and latest readable dates in ts. ok is false
// when no transaction has a readable date.
func DateSpan(ts []domain.Transaction) (first, last domain.Date, ok bool) {
	for _, t := range ts {
		if t.Date.IsZero() {
			continue
		}
		if !ok || t.Date.Before(first) {
			first = t.Date
		}
		if !ok || t.Date.After(last) {
			last = t.Date
		}
		ok = true
	}
	return first, last, ok
}
