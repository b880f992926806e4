// Package aggregate derives filtered views and summaries from a ledger
// snapshot: an ordered slice of transactions already loaded for one user.
//
// Every function here is pure. Inputs are never mutated and results never
// alias the caller's slice, so snapshots can be shared freely between
// goroutines.
package aggregate
