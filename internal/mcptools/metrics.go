package mcptools

import (
	"mcp-monitoring/internal/shared/metrics"
)

const fieldTool = "tool"

var metricToolCallsTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubMCP,
		Name:      "tool_calls_total",
	},
	[]string{fieldTool, metrics.FieldErrorCode},
)
