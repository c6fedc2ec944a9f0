// Package mcptools exposes the monitoring queries as MCP tools so agents can
// inspect call-log health the same way the dashboard does.
package mcptools

import (
	"context"
	"encoding/json"
	"net/http"

	"mcp-monitoring/internal/monitoring"
	"mcp-monitoring/internal/propertyfilters"
	"mcp-monitoring/internal/shared/loggers"
	"mcp-monitoring/internal/shared/metrics"
	"mcp-monitoring/internal/shared/svcerrors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ToolMonitoringStats       = "monitoring_stats"
	ToolMonitoringTopEntities = "monitoring_top_entities"
	ToolParsePropertyFilters  = "parse_property_filters"
)

type Config struct {
	Name    string
	Version string
}

// Server wraps the MCP server and registers the monitoring tools on it.
type Server struct {
	mcpServer  *server.MCPServer
	monitoring monitoring.MonitoringService
	logger     loggers.Logger
}

func NewServer(cfg Config, monitoringService monitoring.MonitoringService, logger loggers.Logger) *Server {
	if cfg.Name == "" {
		cfg.Name = "mcp-monitoring"
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}

	s := &Server{
		mcpServer:  server.NewMCPServer(cfg.Name, cfg.Version),
		monitoring: monitoringService,
		logger:     loggers.Component(logger, "mcp"),
	}
	s.registerTools()
	return s
}

// Handler serves the streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcpServer)
}

func (s *Server) registerTools() {
	selection := map[string]any{
		"filters": map[string]any{
			"type":        "string",
			"description": "Serialized property filters, key:operator:value entries joined by commas (operators: eq, contains, exists)",
		},
		"connection_ids": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Only logs of these connections",
		},
		"agent_ids": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Only logs of these virtual agents",
		},
		"tool_name": map[string]any{
			"type":        "string",
			"description": "Only calls of this tool",
		},
	}

	statsProps := map[string]any{
		"from": map[string]any{
			"type":        "string",
			"description": "Range start: now, now-<n><unit> (s m h d w) or RFC3339. Default now-24h",
		},
		"to": map[string]any{
			"type":        "string",
			"description": "Range end, same forms as from. Default now",
		},
		"bucket_count": map[string]any{
			"type":        "integer",
			"description": "Number of buckets; omitted or 0 picks one from the range length",
		},
	}
	for k, v := range selection {
		statsProps[k] = v
	}
	s.mcpServer.AddTool(mcp.Tool{
		Name:        ToolMonitoringStats,
		Description: "Total calls, errors, average duration and a bucketed series (calls, errors, error rate, p95) of MCP tool calls over a time range.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: statsProps,
		},
	}, s.handleStats)

	rankProps := map[string]any{
		"group_by": map[string]any{
			"type":        "string",
			"enum":        []string{"connection", "agent"},
			"description": "Entity kind to rank",
		},
		"metric": map[string]any{
			"type":        "string",
			"enum":        []string{"requests", "errorRate", "latency"},
			"description": "Ranking metric. Default requests",
		},
	}
	for k, v := range selection {
		rankProps[k] = v
	}
	s.mcpServer.AddTool(mcp.Tool{
		Name:        ToolMonitoringTopEntities,
		Description: "Top connections or agents over the last 24 hours ranked by requests, error rate or average latency.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: rankProps,
			Required:   []string{"group_by"},
		},
	}, s.handleTopEntities)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        ToolParsePropertyFilters,
		Description: "Parse property filter text (one per line: key=value, key~value, key?) into structured filters, the serialized form and log query params.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"raw": map[string]any{
					"type":        "string",
					"description": "Filter text, one filter per line",
				},
			},
			Required: []string{"raw"},
		},
	}, s.handleParsePropertyFilters)
}

func (s *Server) handleStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.monitoring.GetStats(ctx, monitoring.StatsQuery{
		Selection:   selectionOf(request),
		From:        request.GetString("from", "now-24h"),
		To:          request.GetString("to", "now"),
		BucketCount: request.GetInt("bucket_count", 0),
	})
	if err != nil {
		return s.errorResult(ToolMonitoringStats, err), nil
	}
	return s.jsonResult(ToolMonitoringStats, result), nil
}

func (s *Server) handleTopEntities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groupBy, err := request.RequireString("group_by")
	if err != nil {
		return s.errorResult(ToolMonitoringTopEntities, errInvalidArguments(err)), nil
	}

	result, err := s.monitoring.GetTopEntities(ctx, monitoring.TopEntitiesQuery{
		Selection: selectionOf(request),
		GroupBy:   groupBy,
		Metric:    request.GetString("metric", "requests"),
	})
	if err != nil {
		return s.errorResult(ToolMonitoringTopEntities, err), nil
	}
	return s.jsonResult(ToolMonitoringTopEntities, result), nil
}

func (s *Server) handleParsePropertyFilters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("raw")
	if err != nil {
		return s.errorResult(ToolParsePropertyFilters, errInvalidArguments(err)), nil
	}
	return s.jsonResult(ToolParsePropertyFilters, propertyfilters.Parse(raw)), nil
}

func selectionOf(request mcp.CallToolRequest) monitoring.Selection {
	return monitoring.Selection{
		Filters:       request.GetString("filters", ""),
		ConnectionIDs: request.GetStringSlice("connection_ids", nil),
		AgentIDs:      request.GetStringSlice("agent_ids", nil),
		ToolName:      request.GetString("tool_name", ""),
	}
}

func (s *Server) jsonResult(tool string, v any) *mcp.CallToolResult {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return s.errorResult(tool, svcerrors.NewInternalErrorUndefined(err))
	}
	metricToolCallsTotal.WithLabelValues(tool, metrics.ValueNoError).Inc()
	return mcp.NewToolResultText(string(body))
}

// errorResult reports err to the calling agent. Internal failures are logged
// and only their client-safe message is returned.
func (s *Server) errorResult(tool string, err error) *mcp.CallToolResult {
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}
	metricToolCallsTotal.WithLabelValues(tool, svcErr.Code).Inc()

	if svcErr.IsInternalError() {
		s.logger.Error().
			Err(svcErr.Cause).
			Str(loggers.FieldMCPTool, tool).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("mcp tool failed")
	}
	return mcp.NewToolResultError(svcErr.Error())
}
