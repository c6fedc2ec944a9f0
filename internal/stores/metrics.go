package stores

import (
	"mcp-monitoring/internal/shared/metrics"
)

var (
	metricPartitionsRead = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStore,
			Name:      "call_log_partitions_read_total",
		},
		[]string{},
	)

	metricQueryMatches = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStore,
			Name:      "call_log_query_matches",
			Buckets:   metrics.SizeBuckets,
		},
		[]string{},
	)
)
