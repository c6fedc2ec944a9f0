package monitoring

import (
	"mcp-monitoring/internal/models"
)

// Selection narrows the logs a monitoring query looks at. Filters is the
// serialized property filter DSL ("key:op:value,...").
type Selection struct {
	Filters       string   `json:"filters,omitempty"`
	ConnectionIDs []string `json:"connectionIds,omitempty"`
	AgentIDs      []string `json:"agentIds,omitempty"`
	ToolName      string   `json:"toolName,omitempty"`
}

// StatsQuery asks for KPIs and a bucketed series over [From, To]. From and To
// are time expressions ("now-24h", "now", RFC3339). BucketCount 0 lets the
// range length decide.
type StatsQuery struct {
	Selection
	From        string `json:"from"`
	To          string `json:"to"`
	BucketCount int    `json:"bucketCount,omitempty"`
}

type StatsResult struct {
	models.MonitoringStats
	Range       models.TimeRange   `json:"range"`
	Granularity models.Granularity `json:"granularity"`
	Truncated   bool               `json:"truncated"`
}

// TopEntitiesQuery ranks connections or agents over the trailing lookback
// window.
type TopEntitiesQuery struct {
	Selection
	GroupBy string `json:"groupBy"`
	Metric  string `json:"metric"`
}

type TopEntitiesResult struct {
	Range     models.TimeRange      `json:"range"`
	GroupBy   models.GroupBy        `json:"groupBy"`
	Metric    models.RankMetric     `json:"metric"`
	Entities  []models.RankedEntity `json:"entities"`
	Truncated bool                  `json:"truncated"`
}

// LogsQuery pages through raw logs, newest first. Page is 1-based; zero
// values pick the first page and the default page size.
type LogsQuery struct {
	Selection
	From     string `json:"from"`
	To       string `json:"to"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}

type LogsResult struct {
	models.CallLogPage
	Range    models.TimeRange `json:"range"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// ShapeRequest carries widget definitions and the results an external query
// service computed for them.
type ShapeRequest struct {
	Widgets []models.Widget       `json:"widgets" validate:"required,min=1,dive"`
	Results []models.WidgetResult `json:"results" validate:"dive"`
}
