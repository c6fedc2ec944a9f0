package monitoring

import (
	"mcp-monitoring/internal/shared/metrics"
)

const (
	queryKindStats       = "stats"
	queryKindTopEntities = "top_entities"
	queryKindLogs        = "logs"
	queryKindShape       = "shape"
)

var (
	metricQueryTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMonitoring,
			Name:      "query_total",
		},
		[]string{metrics.FieldQueryKind, metrics.FieldErrorCode},
	)

	metricQueryDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMonitoring,
			Name:      "query_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldQueryKind},
	)

	// metricLogsAggregated observes how many logs one query fed into the
	// aggregators, after the per-query cap.
	metricLogsAggregated = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMonitoring,
			Name:      "logs_aggregated",
			Buckets:   metrics.SizeBuckets,
		},
		[]string{metrics.FieldQueryKind},
	)
)
