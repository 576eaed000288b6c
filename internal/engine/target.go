package engine

import "math"

// Target is a user-declared desired percentage of portfolio value for
// one allocation class.
type Target struct {
	Class   Class
	Percent float64
}

// FullAllocationBps is a complete allocation (100%) in basis points.
const FullAllocationBps = 10000

// toBps converts a percentage to basis points. ok is false when the
// value carries precision finer than a basis point, which cannot come
// from a well-formed percent input and must not pass the sum check.
func toBps(percent float64) (int64, bool) {
	scaled := percent * 100
	rounded := math.Round(scaled)
	if math.Abs(scaled-rounded) > 1e-6 {
		return 0, false
	}
	return int64(rounded), true
}

// SumBps returns the sum of the target percentages in basis points.
// ok is false when any single target is not representable in basis
// points.
func SumBps(targets []Target) (int64, bool) {
	var sum int64
	for _, t := range targets {
		bps, ok := toBps(t.Percent)
		if !ok {
			return 0, false
		}
		sum += bps
	}
	return sum, true
}

// TargetsComplete reports whether the targets sum to exactly 100%.
// The comparison is done in basis points so float drift accumulated
// across edits neither passes nor fails the check spuriously: 99.999
// and 100.0000001 are both rejected, exactly 100 is accepted.
func TargetsComplete(targets []Target) bool {
	sum, ok := SumBps(targets)
	return ok && sum == FullAllocationBps
}
