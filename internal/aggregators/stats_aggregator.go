package aggregators

import (
	"mcp-monitoring/internal/models"
)

//go:generate mockgen -source=stats_aggregator.go -destination=./mocks/stats_aggregator_mock.go -package=mocks
type StatsAggregator interface {
	// Calculate recomputes the KPIs and the bucketed series from scratch.
	Calculate(logs []*models.CallLog, timeRange models.TimeRange, bucketCount int) *models.MonitoringStats
}

type statsAggregator struct {
	bucketer TimeBucketer
}

func NewStatsAggregator(bucketer TimeBucketer) StatsAggregator {
	return &statsAggregator{bucketer: bucketer}
}

func (a *statsAggregator) Calculate(logs []*models.CallLog, timeRange models.TimeRange, bucketCount int) *models.MonitoringStats {
	stats := &models.MonitoringStats{
		Data: a.bucketer.Bucketize(logs, timeRange, bucketCount),
	}

	var totalDuration int64
	for _, log := range logs {
		if log == nil {
			continue
		}
		stats.TotalCalls++
		if log.IsError {
			stats.TotalErrors++
		}
		totalDuration += log.DurationMs
	}
	if stats.TotalCalls > 0 {
		stats.AvgDurationMs = float64(totalDuration) / float64(stats.TotalCalls)
	}

	return stats
}
