package aggregators

import (
	"math"
	"slices"
)

// NearestRankPercentile returns the p-th percentile (0 < p <= 100) of values by
// the nearest-rank method: the value at index ceil(p/100*n)-1 of the sorted
// values, clamped into range. It returns 0 for no values. values is not modified.
func NearestRankPercentile(values []int64, p float64) int64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	idx := int(math.Ceil(p/100*float64(n))) - 1
	idx = int(clamp(int64(idx), 0, int64(n-1)))
	return sorted[idx]
}

// P95 is the 95th nearest-rank percentile.
func P95(values []int64) int64 {
	return NearestRankPercentile(values, 95)
}
