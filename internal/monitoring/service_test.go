package monitoring_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"mcp-monitoring/internal/aggregators"
	"mcp-monitoring/internal/dashboards"
	"mcp-monitoring/internal/models"
	"mcp-monitoring/internal/monitoring"
	"mcp-monitoring/internal/propertyfilters"
	"mcp-monitoring/internal/shared/svcerrors"
	"mcp-monitoring/internal/stores"
	storemocks "mcp-monitoring/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 12, 28, 18, 3, 12, 0, time.UTC)

type fixture struct {
	service      monitoring.MonitoringService
	callLogStore *storemocks.MockCallLogStore
	catalogStore *storemocks.MockEntityCatalogStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	callLogStore := storemocks.NewMockCallLogStore(ctrl)
	catalogStore := storemocks.NewMockEntityCatalogStore(ctrl)

	service := monitoring.NewMonitoringService(
		callLogStore,
		catalogStore,
		aggregators.NewStatsAggregator(aggregators.NewTimeBucketer(time.UTC)),
		aggregators.NewEntityRanker(15),
		dashboards.NewWidgetShaper(time.UTC),
		monitoring.Options{
			MaxRange:        90 * 24 * time.Hour,
			MaxLogsPerQuery: 1000,
			DefaultPageSize: 20,
			MaxPageSize:     100,
			Now:             func() time.Time { return fixedNow },
		},
	)
	return &fixture{service: service, callLogStore: callLogStore, catalogStore: catalogStore}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError, got %v", err)
	assert.Equal(t, code, svcErr.Code)
}

func logAt(id string, ts time.Time, connectionID string, durationMs int64, isError bool) *models.CallLog {
	return &models.CallLog{ID: id, ConnectionID: connectionID, ToolName: "search", DurationMs: durationMs, IsError: isError, Timestamp: ts}
}

func TestGetStats_Success(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	expectedQuery := stores.CallLogQuery{
		Range:         models.TimeRange{Start: fixedNow.Add(-time.Hour), End: fixedNow},
		ConnectionIDs: []string{"conn_github"},
		Params:        propertyfilters.APIParams{Properties: map[string]string{"env": "prod"}},
		MaxLogs:       1000,
	}
	f.callLogStore.EXPECT().Query(gomock.Any(), expectedQuery).Return(&models.CallLogPage{
		Logs: []*models.CallLog{
			logAt("1", fixedNow.Add(-30*time.Minute), "conn_github", 100, false),
			logAt("2", fixedNow.Add(-10*time.Minute), "conn_github", 300, true),
		},
		Total:     2,
		Truncated: true,
	}, nil)

	result, err := f.service.GetStats(context.Background(), monitoring.StatsQuery{
		Selection: monitoring.Selection{Filters: "env:eq:prod", ConnectionIDs: []string{"conn_github"}},
		From:      "now-1h",
		To:        "now",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCalls)
	assert.Equal(t, 1, result.TotalErrors)
	assert.InDelta(t, 200.0, result.AvgDurationMs, 1e-9)
	assert.Len(t, result.Data, 60)
	assert.Equal(t, models.GranularityMinute, result.Granularity)
	assert.True(t, result.Truncated)
	assert.Equal(t, fixedNow, result.Range.End)
}

func TestGetStats_ExplicitBucketCount(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.callLogStore.EXPECT().Query(gomock.Any(), gomock.Any()).Return(&models.CallLogPage{}, nil)

	result, err := f.service.GetStats(context.Background(), monitoring.StatsQuery{From: "now-24h", To: "now", BucketCount: 48})

	require.NoError(t, err)
	assert.Len(t, result.Data, 48)
	assert.Equal(t, models.GranularityHour, result.Granularity)
	assert.Zero(t, result.TotalCalls)
}

func TestGetStats_InvalidQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query monitoring.StatsQuery
	}{
		{name: "bad from", query: monitoring.StatsQuery{From: "last week", To: "now"}},
		{name: "missing to", query: monitoring.StatsQuery{From: "now-1h"}},
		{name: "start after end", query: monitoring.StatsQuery{From: "now", To: "now-1h"}},
		{name: "negative bucket count", query: monitoring.StatsQuery{From: "now-1h", To: "now", BucketCount: -1}},
		{name: "too many buckets", query: monitoring.StatsQuery{From: "now-1h", To: "now", BucketCount: 501}},
		{name: "range longer than max", query: monitoring.StatsQuery{From: "now-91d", To: "now"}},
		{name: "offset overflows", query: monitoring.StatsQuery{From: "now-300000d", To: "now"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			_, err := f.service.GetStats(context.Background(), tt.query)
			requireCode(t, err, "MON_1000")
		})
	}
}

func TestGetStats_StoreFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.callLogStore.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk error"))

	_, err := f.service.GetStats(context.Background(), monitoring.StatsQuery{From: "now-1h", To: "now"})
	requireCode(t, err, "MON_9000")
}

func TestGetTopEntities_RanksOverRoundedLookback(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	var captured stores.CallLogQuery
	f.callLogStore.EXPECT().Query(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q stores.CallLogQuery) (*models.CallLogPage, error) {
			captured = q
			var logs []*models.CallLog
			for i := 0; i < 3; i++ {
				logs = append(logs, logAt(fmt.Sprintf("a%d", i), fixedNow.Add(-time.Hour), "conn_a", 10, false))
			}
			logs = append(logs, logAt("b0", fixedNow.Add(-time.Hour), "conn_b", 10, false))
			logs = append(logs, logAt("x0", fixedNow.Add(-time.Hour), "conn_unknown", 10, false))
			return &models.CallLogPage{Logs: logs, Total: len(logs)}, nil
		})
	f.catalogStore.EXPECT().List(gomock.Any(), models.GroupByConnection).Return([]models.Entity{
		{ID: "conn_b", Title: "B"},
		{ID: "conn_a", Title: "A"},
		{ID: "conn_idle", Title: "Idle"},
	}, nil)

	result, err := f.service.GetTopEntities(context.Background(), monitoring.TopEntitiesQuery{GroupBy: "connection", Metric: "requests"})

	require.NoError(t, err)
	assert.True(t, time.Date(2025, 12, 28, 18, 5, 0, 0, time.UTC).Equal(captured.Range.End))
	assert.True(t, time.Date(2025, 12, 27, 18, 5, 0, 0, time.UTC).Equal(captured.Range.Start))
	assert.Equal(t, 1000, captured.MaxLogs)

	require.Len(t, result.Entities, 2)
	assert.Equal(t, "conn_a", result.Entities[0].Entity.ID)
	assert.Equal(t, 100.0, result.Entities[0].Percentage)
	assert.Equal(t, "conn_b", result.Entities[1].Entity.ID)
	assert.InDelta(t, 33.333, result.Entities[1].Percentage, 0.001)
	assert.Equal(t, models.GroupByConnection, result.GroupBy)
	assert.Equal(t, models.RankByRequests, result.Metric)
}

func TestGetTopEntities_InvalidQuery(t *testing.T) {
	t.Parallel()

	for _, q := range []monitoring.TopEntitiesQuery{
		{GroupBy: "tool", Metric: "requests"},
		{GroupBy: "agent", Metric: "p99"},
		{},
	} {
		f := newFixture(t)
		_, err := f.service.GetTopEntities(context.Background(), q)
		requireCode(t, err, "MON_1000")
	}
}

func TestGetTopEntities_CatalogFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.callLogStore.EXPECT().Query(gomock.Any(), gomock.Any()).Return(&models.CallLogPage{}, nil).AnyTimes()
	f.catalogStore.EXPECT().List(gomock.Any(), models.GroupByAgent).Return(nil, errors.New("yaml broken"))

	_, err := f.service.GetTopEntities(context.Background(), monitoring.TopEntitiesQuery{GroupBy: "agent", Metric: "latency"})
	requireCode(t, err, "MON_9001")
}

func TestListLogs_Paging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		page, pageSize int
		expectedOffset int
		expectedLimit  int
	}{
		{name: "defaults", expectedOffset: 0, expectedLimit: 20},
		{name: "second page", page: 2, pageSize: 10, expectedOffset: 10, expectedLimit: 10},
		{name: "max page size", page: 3, pageSize: 100, expectedOffset: 200, expectedLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			f.callLogStore.EXPECT().Query(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, q stores.CallLogQuery) (*models.CallLogPage, error) {
					assert.Equal(t, tt.expectedOffset, q.Offset)
					assert.Equal(t, tt.expectedLimit, q.Limit)
					return &models.CallLogPage{Total: 1, Offset: q.Offset, Limit: q.Limit}, nil
				})

			result, err := f.service.ListLogs(context.Background(), monitoring.LogsQuery{From: "now-7d", To: "now", Page: tt.page, PageSize: tt.pageSize})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLimit, result.PageSize)
			assert.Equal(t, 1, result.Total)
		})
	}
}

func TestListLogs_InvalidPaging(t *testing.T) {
	t.Parallel()

	for _, q := range []monitoring.LogsQuery{
		{From: "now-1h", To: "now", Page: -1},
		{From: "now-1h", To: "now", PageSize: 101},
		{From: "now-1h", To: "now", PageSize: -5},
		{From: "now-100000d", To: "now"},
	} {
		f := newFixture(t)
		_, err := f.service.ListLogs(context.Background(), q)
		requireCode(t, err, "MON_1000")
	}
}

func TestShapeDashboard(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	value := 2500.0

	views, err := f.service.ShapeDashboard(context.Background(), monitoring.ShapeRequest{
		Widgets: []models.Widget{{ID: "calls", Name: "Calls", Type: models.WidgetMetric}},
		Results: []models.WidgetResult{{WidgetID: "calls", Value: &value}},
	})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "2.5K", views[0].FormattedValue)
}

func TestShapeDashboard_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  monitoring.ShapeRequest
	}{
		{name: "no widgets", req: monitoring.ShapeRequest{}},
		{name: "widget without id", req: monitoring.ShapeRequest{Widgets: []models.Widget{{Type: models.WidgetMetric}}}},
		{name: "unknown widget type", req: monitoring.ShapeRequest{Widgets: []models.Widget{{ID: "w", Type: "pie"}}}},
		{name: "result without widget id", req: monitoring.ShapeRequest{
			Widgets: []models.Widget{{ID: "w", Type: models.WidgetTable}},
			Results: []models.WidgetResult{{}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			_, err := f.service.ShapeDashboard(context.Background(), tt.req)
			requireCode(t, err, "MON_1000")
		})
	}
}
