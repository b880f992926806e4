package aggregate

import (
	"github.com/aussiebroadwan/finance/internal/finance/domain"
)

// Criteria narrows a snapshot. Zero dates fall back to the snapshot's own
// span. A nil Categories means every category present in the chosen range;
// a non-nil empty slice selects nothing.
type Criteria struct {
	Start      domain.Date
	End        domain.Date
	Categories []string
}

// Resolved is Criteria with every default filled in.
type Resolved struct {
	Start      domain.Date
	End        domain.Date
	Categories []string
	// Available lists the categories present in the date range, which is
	// what a caller offers for selection.
	Available []string
}

// Resolve fills in defaults from ts. With no readable dates in ts and no
// explicit range, both ends stay zero and Apply returns nothing.
func (c Criteria) Resolve(ts []domain.Transaction) Resolved {
	first, last, _ := DateSpan(ts)

	r := Resolved{Start: c.Start, End: c.End}
	if r.Start.IsZero() {
		r.Start = first
	}
	if r.End.IsZero() {
		r.End = last
	}

	r.Available = Categories(FilterByDateRange(ts, r.Start, r.End))
	if c.Categories == nil {
		r.Categories = r.Available
	} else {
		r.Categories = c.Categories
	}
	return r
}

// Apply runs the date filter and then the category filter.
func (r Resolved) Apply(ts []domain.Transaction) []domain.Transaction {
	if r.Start.IsZero() || r.End.IsZero() {
		return []domain.Transaction{}
	}
	return FilterByCategories(FilterByDateRange(ts, r.Start, r.End), r.Categories)
}

// Report is everything a dashboard shows for one set of criteria.
type Report struct {
	Criteria     Resolved
	Transactions []domain.Transaction
	Summary      Summary
	Monthly      []MonthTotal
	Breakdown    []CategoryShare
}

// BuildReport resolves c against ts and derives every view from the
// filtered rows.
func BuildReport(ts []domain.Transaction, c Criteria) Report {
	resolved := c.Resolve(ts)
	filtered := resolved.Apply(ts)

	return Report{
		Criteria:     resolved,
		Transactions: filtered,
		Summary:      Summarize(filtered),
		Monthly:      MonthlyTotals(filtered),
		Breakdown:    CategoryBreakdown(filtered),
	}
}
