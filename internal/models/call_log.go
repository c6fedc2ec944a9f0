package models

import (
	"encoding/json"
	"time"
)

// CallLog is one observed tool invocation against a connection (MCP server)
// or a virtual agent. Records are read-only once stored.
//
// An empty ConnectionID or VirtualEntityID means the log has no owner of that
// kind; such logs still count in range-wide totals but are skipped when
// grouping by that dimension.
//
// Example JSON:
//
//	{
//	  "id": "01JG3Z8W9K4Q2ZB5M3T6V7X8Y9",
//	  "connectionId": "conn_github",
//	  "toolName": "search_issues",
//	  "isError": false,
//	  "durationMs": 184,
//	  "timestamp": "2025-12-28T18:03:12Z",
//	  "properties": {"env": "prod"}
//	}
type CallLog struct {
	ID              string            `json:"id"`
	ConnectionID    string            `json:"connectionId,omitempty"`
	VirtualEntityID string            `json:"virtualEntityId,omitempty"`
	ToolName        string            `json:"toolName"`
	IsError         bool              `json:"isError"`
	ErrorMessage    string            `json:"errorMessage,omitempty"`
	DurationMs      int64             `json:"durationMs"`
	Timestamp       time.Time         `json:"timestamp"`
	Properties      map[string]string `json:"properties,omitempty"`
	Input           json.RawMessage   `json:"input,omitempty"`
	Output          json.RawMessage   `json:"output,omitempty"`
}

// TimestampMs returns the timestamp as unix milliseconds.
func (l *CallLog) TimestampMs() int64 {
	return l.Timestamp.UnixMilli()
}

// CallLogBatch is the unit written by ingestion.
type CallLogBatch struct {
	BatchID string     `json:"batchId"`
	Logs    []*CallLog `json:"logs"`
}

// CallLogPage is one page of a log query, newest first.
type CallLogPage struct {
	Logs      []*CallLog `json:"logs"`
	Total     int        `json:"total"`
	Offset    int        `json:"offset"`
	Limit     int        `json:"limit"`
	Truncated bool       `json:"truncated"`
}
