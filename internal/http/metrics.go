package http

import (
	"mcp-monitoring/internal/shared/metrics"
)

const (
	labelMethod = "method"
	labelRoute  = "route"
	labelStatus = "status"
)

var (
	metricAPIRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{labelMethod, labelRoute, labelStatus, metrics.FieldErrorCode},
	)

	metricAPIRequestDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{labelMethod, labelRoute},
	)

	// Long-lived MCP streams show up here while they are open.
	metricAPIRequestsInFlight = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_in_flight",
		},
	)
)
