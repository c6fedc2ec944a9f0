package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mcp-monitoring/internal/ingestors"
	ingestormocks "mcp-monitoring/internal/ingestors/mocks"
	"mcp-monitoring/internal/models"
	"mcp-monitoring/internal/monitoring"
	monitoringmocks "mcp-monitoring/internal/monitoring/mocks"
	"mcp-monitoring/internal/shared/svcerrors"
	storemocks "mcp-monitoring/internal/stores/mocks"
	viewstatemocks "mcp-monitoring/internal/viewstates/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	router     http.Handler
	ingestion  *ingestormocks.MockIngestionService
	monitoring *monitoringmocks.MockMonitoringService
	viewStates *viewstatemocks.MockViewStateService
	catalog    *storemocks.MockEntityCatalogStore
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &routerFixture{
		ingestion:  ingestormocks.NewMockIngestionService(ctrl),
		monitoring: monitoringmocks.NewMockMonitoringService(ctrl),
		viewStates: viewstatemocks.NewMockViewStateService(ctrl),
		catalog:    storemocks.NewMockEntityCatalogStore(ctrl),
	}
	f.router = NewRouter(Services{
		Ingestion:  f.ingestion,
		Monitoring: f.monitoring,
		ViewStates: f.viewStates,
		Catalog:    f.catalog,
		MCP: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	}, zerolog.Nop())
	return f
}

func (f *routerFixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	return errorResponse
}

func TestRouter_IngestCallLogs(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.ingestion.EXPECT().
		IngestBatch(gomock.Any(), "batch-7", "application/json", gomock.Any()).
		Return(&ingestors.IngestResult{BatchID: "batch-7", StoredCount: 2}, nil)

	rr := f.do(http.MethodPost, "/api/call-logs", `[{},{}]`, map[string]string{
		headerIdempotencyKey: "batch-7",
		headerContentType:    "application/json",
	})

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{"batchId":"batch-7","storedCount":2}`, rr.Body.String())
}

func TestRouter_IngestCallLogs_Duplicate(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.ingestion.EXPECT().
		IngestBatch(gomock.Any(), "batch-7", gomock.Any(), gomock.Any()).
		Return(nil, svcerrors.NewResourceConflictError("ING_1001", "batch already processed", nil))

	rr := f.do(http.MethodPost, "/api/call-logs", `[]`, map[string]string{headerIdempotencyKey: "batch-7"})

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "ING_1001", decodeError(t, rr).ErrorCode)
}

func TestRouter_Stats(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.monitoring.EXPECT().
		GetStats(gomock.Any(), monitoring.StatsQuery{
			Selection: monitoring.Selection{
				Filters:       "env:eq:prod",
				ConnectionIDs: []string{"conn_a", "conn_b", "conn_c"},
				ToolName:      "search",
			},
			From:        "now-1h",
			To:          "now",
			BucketCount: 30,
		}).
		Return(&monitoring.StatsResult{MonitoringStats: models.MonitoringStats{TotalCalls: 12}}, nil)

	rr := f.do(http.MethodGet, "/api/monitoring/stats?from=now-1h&filters=env%3Aeq%3Aprod&connectionId=conn_a,conn_b&connectionId=conn_c&tool=search&buckets=30", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, float64(12), body["totalCalls"])
}

func TestRouter_Stats_BadBuckets(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)

	rr := f.do(http.MethodGet, "/api/monitoring/stats?buckets=ten", "", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, codeInvalidRequest, decodeError(t, rr).ErrorCode)
}

func TestRouter_TopEntities(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.monitoring.EXPECT().
		GetTopEntities(gomock.Any(), monitoring.TopEntitiesQuery{GroupBy: "agent", Metric: "latency"}).
		Return(&monitoring.TopEntitiesResult{GroupBy: models.GroupByAgent, Metric: models.RankByLatency}, nil)

	rr := f.do(http.MethodGet, "/api/monitoring/top-entities?groupBy=agent&metric=latency", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"groupBy":"agent"`)
}

func TestRouter_TopEntities_Defaults(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.monitoring.EXPECT().
		GetTopEntities(gomock.Any(), monitoring.TopEntitiesQuery{GroupBy: "connection", Metric: "requests"}).
		Return(&monitoring.TopEntitiesResult{}, nil)

	rr := f.do(http.MethodGet, "/api/monitoring/top-entities", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_Logs(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.monitoring.EXPECT().
		ListLogs(gomock.Any(), monitoring.LogsQuery{
			Selection: monitoring.Selection{AgentIDs: []string{"agent_1"}},
			From:      "now-7d",
			To:        "now",
			Page:      2,
			PageSize:  25,
		}).
		Return(&monitoring.LogsResult{Page: 2, PageSize: 25}, nil)

	rr := f.do(http.MethodGet, "/api/monitoring/logs?from=now-7d&agentId=agent_1&page=2&pageSize=25", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"pageSize":25`)
}

func TestRouter_ShapeDashboard(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.monitoring.EXPECT().
		ShapeDashboard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req monitoring.ShapeRequest) ([]models.WidgetView, error) {
			require.Len(t, req.Widgets, 1)
			assert.Equal(t, models.WidgetMetric, req.Widgets[0].Type)
			return []models.WidgetView{{WidgetID: "calls", FormattedValue: "1.2K"}}, nil
		})

	rr := f.do(http.MethodPost, "/api/dashboards/shape",
		`{"widgets":[{"id":"calls","type":"metric"}],"results":[{"widgetId":"calls","value":1200}]}`, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"formattedValue":"1.2K"`)
}

func TestRouter_ShapeDashboard_MalformedBody(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)

	rr := f.do(http.MethodPost, "/api/dashboards/shape", `{"widgets":`, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, codeInvalidRequest, decodeError(t, rr).ErrorCode)
}

func TestRouter_ParsePropertyFilters(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)

	rr := f.do(http.MethodPost, "/api/property-filters/parse", `{"raw":"env=prod\nregion~eu"}`, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Filters    []models.PropertyFilter `json:"filters"`
		Serialized string                  `json:"serialized"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Len(t, body.Filters, 2)
	assert.Equal(t, "env:eq:prod,region:contains:eu", body.Serialized)
}

func TestRouter_ViewStates(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.viewStates.EXPECT().Load(gomock.Any(), "default").Return(models.DefaultViewState("default"), nil)

	rr := f.do(http.MethodGet, "/api/view-states/default", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"from":"now-24h"`)

	agent := models.GroupByAgent
	f.viewStates.EXPECT().
		Update(gomock.Any(), "default", models.ViewStatePatch{GroupBy: &agent}).
		Return(&models.ViewState{ID: "default", GroupBy: models.GroupByAgent}, nil)

	rr = f.do(http.MethodPut, "/api/view-states/default", `{"groupBy":"agent"}`, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"groupBy":"agent"`)
}

func TestRouter_Catalog(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	entities := []models.Entity{{ID: "conn_github", Title: "GitHub"}}
	f.catalog.EXPECT().Replace(gomock.Any(), models.GroupByConnection, entities).Return(nil)
	f.catalog.EXPECT().List(gomock.Any(), models.GroupByAgent).Return(nil, nil)

	rr := f.do(http.MethodPut, "/api/catalog/connection", `{"entities":[{"id":"conn_github","title":"GitHub"}]}`, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = f.do(http.MethodGet, "/api/catalog/agent", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"entities":[]}`, rr.Body.String())
}

func TestRouter_Catalog_Errors(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.catalog.EXPECT().List(gomock.Any(), models.GroupByConnection).Return(nil, errors.New("permission denied"))

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{name: "unknown group", method: http.MethodGet, target: "/api/catalog/tool", expectedStatus: http.StatusBadRequest, expectedCode: codeInvalidRequest},
		{name: "entity without id", method: http.MethodPut, target: "/api/catalog/agent", body: `{"entities":[{"title":"x"}]}`, expectedStatus: http.StatusBadRequest, expectedCode: codeInvalidRequest},
		{name: "store failure", method: http.MethodGet, target: "/api/catalog/connection", expectedStatus: http.StatusInternalServerError, expectedCode: codeInternalCatalogStoreFailed},
	}

	for _, tt := range tests {
		rr := f.do(tt.method, tt.target, tt.body, nil)
		assert.Equal(t, tt.expectedStatus, rr.Code, tt.name)
		assert.Equal(t, tt.expectedCode, decodeError(t, rr).ErrorCode, tt.name)
	}
}

func TestRouter_MetricsAndMCP(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)

	rr := f.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = f.do(http.MethodPost, "/mcp", `{}`, nil)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRouter_WithoutMCP(t *testing.T) {
	t.Parallel()

	router := NewRouter(Services{}, zerolog.Nop())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
