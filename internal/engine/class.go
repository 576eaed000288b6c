// Package engine implements the allocation, rebalancing and
// contribution-suggestion calculations. Everything in this package is
// a pure function over its inputs: no storage access, no clocks, and
// degenerate input (empty slices, zero totals) yields degenerate but
// valid output instead of an error.
package engine

// Class is an allocation class: the named bucket used to compare a
// portfolio's current percentage against its target percentage.
type Class string

const (
	ClassStocks        Class = "Ações"
	ClassREITs         Class = "FIIs"
	ClassFixedIncome   Class = "Renda Fixa"
	ClassInternational Class = "Internacional"
	ClassOther         Class = "Outros"
)

// ClassForType maps a raw holding type onto its allocation class.
// Unknown types always group under ClassOther.
func ClassForType(assetType string) Class {
	switch assetType {
	case "stock":
		return ClassStocks
	case "reit":
		return ClassREITs
	case "fixed_income":
		return ClassFixedIncome
	case "international":
		return ClassInternational
	default:
		return ClassOther
	}
}
