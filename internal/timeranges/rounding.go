package timeranges

import (
	"time"

	"mcp-monitoring/internal/models"
)

// RoundToNearest rounds t to the nearest multiple of step since the zero time,
// halfway values rounding up. A non-positive step returns t unchanged.
func RoundToNearest(t time.Time, step time.Duration) time.Time {
	if step <= 0 {
		return t
	}
	return t.Round(step)
}

// LastWindow is the trailing lookback window ending at now, both ends rounded
// to step.
func LastWindow(now time.Time, lookback, step time.Duration) models.TimeRange {
	end := RoundToNearest(now, step)
	return models.TimeRange{Start: RoundToNearest(now.Add(-lookback), step), End: end}
}
