package models

import "time"

// Bucket aggregates the call logs of one contiguous sub-interval of a range.
type Bucket struct {
	T         time.Time `json:"t"`
	Label     string    `json:"label"`
	Calls     int       `json:"calls"`
	Errors    int       `json:"errors"`
	ErrorRate float64   `json:"errorRate"` // 0..100
	P95       int64     `json:"p95"`       // ms, nearest-rank
}

// MonitoringStats are the top-line KPIs of a range plus its bucketed series.
type MonitoringStats struct {
	TotalCalls    int      `json:"totalCalls"`
	TotalErrors   int      `json:"totalErrors"`
	AvgDurationMs float64  `json:"avgDurationMs"`
	Data          []Bucket `json:"data"`
}
