package aggregators

import (
	"time"

	"mcp-monitoring/internal/models"
)

//go:generate mockgen -source=time_bucketer.go -destination=./mocks/time_bucketer_mock.go -package=mocks
type TimeBucketer interface {
	// Bucketize splits timeRange into evenly sized buckets and aggregates logs
	// into them. bucketCount <= 0 selects the count from the range length.
	Bucketize(logs []*models.CallLog, timeRange models.TimeRange, bucketCount int) []models.Bucket
}

type timeBucketer struct {
	location *time.Location
}

// NewTimeBucketer returns a bucketer labelling buckets in location.
func NewTimeBucketer(location *time.Location) TimeBucketer {
	if location == nil {
		location = time.Local
	}
	return &timeBucketer{location: location}
}

func (b *timeBucketer) Bucketize(logs []*models.CallLog, timeRange models.TimeRange, bucketCount int) []models.Bucket {
	startMs := timeRange.StartMs()
	rangeMs := normalizedRangeMs(startMs, timeRange.EndMs())

	if bucketCount <= 0 {
		bucketCount = CalculateBucketCount(startMs, timeRange.EndMs())
	}
	bucketSizeMs := rangeMs / int64(bucketCount)
	if bucketSizeMs < 1 {
		bucketSizeMs = 1
	}

	// Labels follow the whole range, not the width of a single bucket.
	layout := models.LabelLayoutFor(time.Duration(rangeMs) * time.Millisecond)

	buckets := make([]models.Bucket, bucketCount)
	durations := make([][]int64, bucketCount)
	for i := range buckets {
		t := time.UnixMilli(startMs + int64(i)*bucketSizeMs).In(b.location)
		buckets[i] = models.Bucket{T: t, Label: t.Format(layout)}
	}

	for _, log := range logs {
		if log == nil {
			continue
		}
		// Logs at or past the end (or before the start) land in the edge
		// buckets instead of being dropped.
		idx := int(clamp((log.TimestampMs()-startMs)/bucketSizeMs, 0, int64(bucketCount-1)))
		buckets[idx].Calls++
		if log.IsError {
			buckets[idx].Errors++
		}
		durations[idx] = append(durations[idx], log.DurationMs)
	}

	for i := range buckets {
		buckets[i].ErrorRate = percentOf(buckets[i].Errors, buckets[i].Calls)
		buckets[i].P95 = P95(durations[i])
	}
	return buckets
}

// percentOf returns part/total*100, or 0 when total is 0.
func percentOf(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
