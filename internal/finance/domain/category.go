package domain

import "slices"

// SuggestedCategories are offered to every user regardless of what their
// ledger already contains.
var SuggestedCategories = []string{
	"Food",
	"Rent",
	"Transport",
	"Shopping",
	"Utilities",
	"Entertainment",
	"Health",
	"Income",
	"Other",
}

// MergeCategories returns the suggested list followed by any other present
// categories in sorted order, without duplicates.
func MergeCategories(present []string) []string {
	out := slices.Clone(SuggestedCategories)
	var extra []string
	for _, c := range present {
		if c == "" || slices.Contains(out, c) || slices.Contains(extra, c) {
			continue
		}
		extra = append(extra, c)
	}
	slices.Sort(extra)
	return append(out, extra...)
}
