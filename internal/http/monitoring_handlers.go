package http

import (
	"net/http"

	"mcp-monitoring/internal/monitoring"
)

const (
	defaultFrom = "now-24h"
	defaultTo   = "now"
)

type statsHandler struct {
	monitoringService monitoring.MonitoringService
}

func NewStatsHandler(monitoringService monitoring.MonitoringService) AppHttpHandler {
	return &statsHandler{monitoringService: monitoringService}
}

// Handle processes GET /api/monitoring/stats?from&to&filters&connectionId&agentId&tool&buckets.
func (h *statsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	buckets, err := intParam(q, "buckets")
	if err != nil {
		return err
	}

	result, err := h.monitoringService.GetStats(r.Context(), monitoring.StatsQuery{
		Selection:   selectionFromQuery(q),
		From:        stringParam(q, "from", defaultFrom),
		To:          stringParam(q, "to", defaultTo),
		BucketCount: buckets,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, result)
}

type topEntitiesHandler struct {
	monitoringService monitoring.MonitoringService
}

func NewTopEntitiesHandler(monitoringService monitoring.MonitoringService) AppHttpHandler {
	return &topEntitiesHandler{monitoringService: monitoringService}
}

// Handle processes GET /api/monitoring/top-entities?groupBy&metric.
func (h *topEntitiesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	result, err := h.monitoringService.GetTopEntities(r.Context(), monitoring.TopEntitiesQuery{
		Selection: selectionFromQuery(q),
		GroupBy:   stringParam(q, "groupBy", "connection"),
		Metric:    stringParam(q, "metric", "requests"),
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, result)
}

type logsHandler struct {
	monitoringService monitoring.MonitoringService
}

func NewLogsHandler(monitoringService monitoring.MonitoringService) AppHttpHandler {
	return &logsHandler{monitoringService: monitoringService}
}

// Handle processes GET /api/monitoring/logs?from&to&filters&page&pageSize.
func (h *logsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	page, err := intParam(q, "page")
	if err != nil {
		return err
	}
	pageSize, err := intParam(q, "pageSize")
	if err != nil {
		return err
	}

	result, err := h.monitoringService.ListLogs(r.Context(), monitoring.LogsQuery{
		Selection: selectionFromQuery(q),
		From:      stringParam(q, "from", defaultFrom),
		To:        stringParam(q, "to", defaultTo),
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, result)
}

type shapeDashboardHandler struct {
	monitoringService monitoring.MonitoringService
}

func NewShapeDashboardHandler(monitoringService monitoring.MonitoringService) AppHttpHandler {
	return &shapeDashboardHandler{monitoringService: monitoringService}
}

// Handle processes POST /api/dashboards/shape.
func (h *shapeDashboardHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req monitoring.ShapeRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	views, err := h.monitoringService.ShapeDashboard(r.Context(), req)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{"widgets": views})
}
