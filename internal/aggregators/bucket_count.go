package aggregators

import (
	"time"

	"mcp-monitoring/internal/models"
)

// CalculateBucketCount picks how many buckets a [startMs, endMs) range is split
// into: one per minute up to 1h (max 60), one per hour up to 25h (max 25),
// one per day beyond (max 31). Partial units round up. A non-positive range
// counts as 1ms.
func CalculateBucketCount(startMs, endMs int64) int {
	rangeMs := normalizedRangeMs(startMs, endMs)

	granularity := models.GranularityFor(time.Duration(rangeMs) * time.Millisecond)
	unitMs := granularity.Duration().Milliseconds()
	count := (rangeMs + unitMs - 1) / unitMs

	return int(clamp(count, 1, int64(granularity.MaxBuckets())))
}

func normalizedRangeMs(startMs, endMs int64) int64 {
	if rangeMs := endMs - startMs; rangeMs > 0 {
		return rangeMs
	}
	return 1
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
