package engine

import (
	"math"
	"sort"
)

// SortBy selects the ordering of a filtered action list.
type SortBy string

const (
	SortByDifference   SortBy = "difference"
	SortByAlphabetical SortBy = "alphabetical"
	SortByCurrent      SortBy = "current"
	SortByTarget       SortBy = "target"
)

// FilterOptions controls the display view over a rebalancing plan.
type FilterOptions struct {
	// Threshold is the minimum absolute diff percentage to include.
	Threshold float64
	// OnlyChanges excludes actions whose diff is exactly zero.
	OnlyChanges bool
	SortBy      SortBy
}

// DefaultFilterOptions mirrors the display defaults: hide gaps under
// five percent, hide unchanged classes, largest gap first.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{Threshold: 5, OnlyChanges: true, SortBy: SortByDifference}
}

// FilterActions returns a filtered, sorted copy of the action list.
// The transform is pure and idempotent: applying it twice with the
// same options yields the same order. All sorts are stable and break
// ties by class name ascending, so equal values keep a deterministic
// order.
func FilterActions(actions []Action, opts FilterOptions) []Action {
	filtered := make([]Action, 0, len(actions))
	for _, a := range actions {
		if math.Abs(a.DiffPercent) < opts.Threshold {
			continue
		}
		if opts.OnlyChanges && a.DiffPercent == 0 {
			continue
		}
		filtered = append(filtered, a)
	}

	less := func(a, b Action) bool {
		switch opts.SortBy {
		case SortByAlphabetical:
			return a.Class < b.Class
		case SortByCurrent:
			if a.CurrentPercent != b.CurrentPercent {
				return a.CurrentPercent > b.CurrentPercent
			}
		case SortByTarget:
			if a.TargetPercent != b.TargetPercent {
				return a.TargetPercent > b.TargetPercent
			}
		default: // SortByDifference
			da, db := math.Abs(a.DiffPercent), math.Abs(b.DiffPercent)
			if da != db {
				return da > db
			}
		}
		return a.Class < b.Class
	}
	sort.SliceStable(filtered, func(i, j int) bool { return less(filtered[i], filtered[j]) })
	return filtered
}
