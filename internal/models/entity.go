package models

import "fmt"

// GroupBy selects which owner of a call log the ranking groups by.
type GroupBy string

const (
	GroupByConnection GroupBy = "connection"
	GroupByAgent      GroupBy = "agent"
)

// ParseGroupBy validates a group-by name.
func ParseGroupBy(s string) (GroupBy, error) {
	switch g := GroupBy(s); g {
	case GroupByConnection, GroupByAgent:
		return g, nil
	default:
		return "", fmt.Errorf("invalid groupBy %q: must be one of connection, agent", s)
	}
}

// KeyOf returns the grouping key of a log for this dimension, "" when the log
// has no owner of that kind.
func (g GroupBy) KeyOf(log *CallLog) string {
	switch g {
	case GroupByConnection:
		return log.ConnectionID
	case GroupByAgent:
		return log.VirtualEntityID
	default:
		panic(fmt.Sprintf("invalid GroupBy: %q", g))
	}
}

// RankMetric is the metric entities are ranked by.
type RankMetric string

const (
	RankByRequests  RankMetric = "requests"
	RankByErrorRate RankMetric = "errorRate"
	RankByLatency   RankMetric = "latency"
)

// ParseRankMetric validates a metric name.
func ParseRankMetric(s string) (RankMetric, error) {
	switch m := RankMetric(s); m {
	case RankByRequests, RankByErrorRate, RankByLatency:
		return m, nil
	default:
		return "", fmt.Errorf("invalid metric %q: must be one of requests, errorRate, latency", s)
	}
}

// ValueOf extracts the ranked value from a metric.
func (m RankMetric) ValueOf(metric EntityMetric) float64 {
	switch m {
	case RankByRequests:
		return float64(metric.Requests)
	case RankByErrorRate:
		return metric.ErrorRate
	case RankByLatency:
		return metric.AvgLatencyMs
	default:
		panic(fmt.Sprintf("invalid RankMetric: %q", m))
	}
}

// Entity is a catalog record for a connection or an agent.
type Entity struct {
	ID    string `json:"id" yaml:"id" validate:"required,max=128"`
	Title string `json:"title" yaml:"title" validate:"max=256"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// EntityMetric is the per-entity aggregate over a set of call logs.
type EntityMetric struct {
	Key          string  `json:"key"`
	Requests     int     `json:"requests"`
	Errors       int     `json:"errors"`
	ErrorRate    float64 `json:"errorRate"`
	AvgLatencyMs float64 `json:"avgLatencyMs"`
}

// RankedEntity is one row of a top-N ranking, ready for bar rendering.
type RankedEntity struct {
	Entity         Entity       `json:"entity"`
	Metric         EntityMetric `json:"metric"`
	Value          float64      `json:"value"`
	Percentage     float64      `json:"percentage"` // of the top entry, 0..100
	FormattedValue string       `json:"formattedValue"`
}
