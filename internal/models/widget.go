package models

import "time"

type WidgetType string

const (
	WidgetMetric     WidgetType = "metric"
	WidgetTable      WidgetType = "table"
	WidgetTimeseries WidgetType = "timeseries"
)

// WidgetAggregation declares how the query service computes a widget. It is
// carried through untouched; only the results are reshaped here.
type WidgetAggregation struct {
	Fn       string `json:"fn"`
	Path     string `json:"path,omitempty"`
	GroupBy  string `json:"groupBy,omitempty"`
	Interval string `json:"interval,omitempty"`
}

// Widget is a dashboard tile definition.
type Widget struct {
	ID          string            `json:"id" validate:"required"`
	Name        string            `json:"name"`
	Type        WidgetType        `json:"type" validate:"required,oneof=metric table timeseries"`
	Aggregation WidgetAggregation `json:"aggregation"`
}

type GroupValue struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

type TimeseriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// WidgetResult is the externally computed result of one widget.
type WidgetResult struct {
	WidgetID   string            `json:"widgetId" validate:"required"`
	Value      *float64          `json:"value,omitempty"`
	Groups     []GroupValue      `json:"groups,omitempty"`
	Timeseries []TimeseriesPoint `json:"timeseries,omitempty"`
}

type TableRow struct {
	Label          string  `json:"label"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formattedValue"`
	Percentage     float64 `json:"percentage"`
}

type TimeseriesPointView struct {
	T              time.Time `json:"t"`
	Label          string    `json:"label"`
	Value          float64   `json:"value"`
	FormattedValue string    `json:"formattedValue"`
}

// WidgetView is the presentation-ready form of a widget result.
type WidgetView struct {
	WidgetID       string                `json:"widgetId"`
	Name           string                `json:"name"`
	Type           WidgetType            `json:"type"`
	Missing        bool                  `json:"missing"`
	Value          *float64              `json:"value,omitempty"`
	FormattedValue string                `json:"formattedValue,omitempty"`
	Rows           []TableRow            `json:"rows,omitempty"`
	Points         []TimeseriesPointView `json:"points,omitempty"`
	Total          *float64              `json:"total,omitempty"`
	FormattedTotal string                `json:"formattedTotal,omitempty"`
}
