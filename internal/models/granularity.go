package models

import (
	"fmt"
	"time"
)

// Granularity is the width class of the buckets of a monitoring series.
type Granularity string

const (
	GranularityMinute Granularity = "minute"
	GranularityHour   Granularity = "hour"
	GranularityDay    Granularity = "day"
)

const (
	// MinuteRangeLimit is the widest range still bucketed per minute.
	MinuteRangeLimit = time.Hour
	// HourRangeLimit is the widest range still bucketed per hour. It is 25h so a
	// rounded "last 24 hours" window that slightly exceeds 24h stays hourly.
	HourRangeLimit = 25 * time.Hour
)

// GranularityFor picks the bucket granularity for a range length.
func GranularityFor(rangeLen time.Duration) Granularity {
	switch {
	case rangeLen <= MinuteRangeLimit:
		return GranularityMinute
	case rangeLen <= HourRangeLimit:
		return GranularityHour
	default:
		return GranularityDay
	}
}

func (g Granularity) Duration() time.Duration {
	switch g {
	case GranularityMinute:
		return time.Minute
	case GranularityHour:
		return time.Hour
	case GranularityDay:
		return 24 * time.Hour
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}
}

// MaxBuckets is the upper clamp of the bucket count for this granularity.
func (g Granularity) MaxBuckets() int {
	switch g.Duration() {
	case time.Minute:
		return 60
	case time.Hour:
		return 25
	default:
		return 31
	}
}

// LabelLayoutFor returns the time layout used for bucket labels over a range:
// clock time up to HourRangeLimit, month and day beyond it.
func LabelLayoutFor(rangeLen time.Duration) string {
	if rangeLen <= HourRangeLimit {
		return "15:04"
	}
	return "Jan 2"
}
