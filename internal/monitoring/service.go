// Package monitoring answers the monitoring dashboard queries: it resolves the
// requested window, fetches call logs and catalog entries, and hands them to
// the aggregators, which always recompute from the raw logs.
package monitoring

import (
	"context"
	"time"

	"mcp-monitoring/internal/aggregators"
	"mcp-monitoring/internal/dashboards"
	"mcp-monitoring/internal/models"
	"mcp-monitoring/internal/propertyfilters"
	"mcp-monitoring/internal/shared/loggers"
	"mcp-monitoring/internal/shared/metrics"
	"mcp-monitoring/internal/shared/svcerrors"
	"mcp-monitoring/internal/shared/validators"
	"mcp-monitoring/internal/stores"
	"mcp-monitoring/internal/timeranges"

	"golang.org/x/sync/errgroup"
)

// MaxBucketCount bounds an explicit bucket count override.
const MaxBucketCount = 500

// Options tunes the service. Zero values fall back to the defaults noted.
type Options struct {
	Lookback        time.Duration    // ranking window, 24h
	Rounding        time.Duration    // ranking window boundary, 5m
	MaxRange        time.Duration    // longest queryable range, 0 means unlimited
	MaxLogsPerQuery int              // 0 means unlimited
	DefaultPageSize int              // 50
	MaxPageSize     int              // 500
	Now             func() time.Time // time.Now
}

//go:generate mockgen -source=service.go -destination=./mocks/monitoring_service_mock.go -package=mocks
type MonitoringService interface {
	GetStats(ctx context.Context, query StatsQuery) (*StatsResult, error)
	GetTopEntities(ctx context.Context, query TopEntitiesQuery) (*TopEntitiesResult, error)
	ListLogs(ctx context.Context, query LogsQuery) (*LogsResult, error)
	ShapeDashboard(ctx context.Context, req ShapeRequest) ([]models.WidgetView, error)
}

type monitoringService struct {
	callLogStore    stores.CallLogStore
	catalogStore    stores.EntityCatalogStore
	statsAggregator aggregators.StatsAggregator
	entityRanker    aggregators.EntityRanker
	widgetShaper    dashboards.WidgetShaper
	validate        *validators.Validate
	opts            Options
}

func NewMonitoringService(
	callLogStore stores.CallLogStore,
	catalogStore stores.EntityCatalogStore,
	statsAggregator aggregators.StatsAggregator,
	entityRanker aggregators.EntityRanker,
	widgetShaper dashboards.WidgetShaper,
	opts Options,
) MonitoringService {
	if opts.Lookback <= 0 {
		opts.Lookback = 24 * time.Hour
	}
	if opts.Rounding <= 0 {
		opts.Rounding = 5 * time.Minute
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 50
	}
	if opts.MaxPageSize < opts.DefaultPageSize {
		opts.MaxPageSize = max(500, opts.DefaultPageSize)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &monitoringService{
		callLogStore:    callLogStore,
		catalogStore:    catalogStore,
		statsAggregator: statsAggregator,
		entityRanker:    entityRanker,
		widgetShaper:    widgetShaper,
		validate:        validators.NewJSON(),
		opts:            opts,
	}
}

func (s *monitoringService) GetStats(ctx context.Context, query StatsQuery) (result *StatsResult, err error) {
	defer s.observe(queryKindStats, time.Now(), &err)

	if query.BucketCount < 0 || query.BucketCount > MaxBucketCount {
		return nil, errInvalidQuery("bucketCount must be between 0 and 500", nil)
	}
	timeRange, err := s.resolveRange(query.From, query.To)
	if err != nil {
		return nil, err
	}

	logger := loggers.Ctx(ctx)
	logger.Debug().
		Time(loggers.FieldRangeStart, timeRange.Start).
		Time(loggers.FieldRangeEnd, timeRange.End).
		Int(loggers.FieldBucketCount, query.BucketCount).
		Msg("computing monitoring stats")

	page, err := s.queryLogs(ctx, s.logQuery(query.Selection, timeRange))
	if err != nil {
		return nil, err
	}
	metricLogsAggregated.WithLabelValues(queryKindStats).Observe(float64(len(page.Logs)))

	stats := s.statsAggregator.Calculate(page.Logs, timeRange, query.BucketCount)
	return &StatsResult{
		MonitoringStats: *stats,
		Range:           timeRange,
		Granularity:     models.GranularityFor(timeRange.Duration()),
		Truncated:       page.Truncated,
	}, nil
}

func (s *monitoringService) GetTopEntities(ctx context.Context, query TopEntitiesQuery) (result *TopEntitiesResult, err error) {
	defer s.observe(queryKindTopEntities, time.Now(), &err)

	groupBy, parseErr := models.ParseGroupBy(query.GroupBy)
	if parseErr != nil {
		return nil, errInvalidQuery(parseErr.Error(), parseErr)
	}
	metric, parseErr := models.ParseRankMetric(query.Metric)
	if parseErr != nil {
		return nil, errInvalidQuery(parseErr.Error(), parseErr)
	}

	timeRange := timeranges.LastWindow(s.opts.Now(), s.opts.Lookback, s.opts.Rounding)
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldGroupBy, string(groupBy)).
		Str(loggers.FieldRankMetric, string(metric)).
		Time(loggers.FieldRangeStart, timeRange.Start).
		Time(loggers.FieldRangeEnd, timeRange.End).
		Msg("ranking entities")

	var (
		page    *models.CallLogPage
		catalog []models.Entity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = s.queryLogs(gctx, s.logQuery(query.Selection, timeRange))
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.catalogStore.List(gctx, groupBy)
		if err != nil {
			return errInternalCatalogStoreFailed(err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	metricLogsAggregated.WithLabelValues(queryKindTopEntities).Observe(float64(len(page.Logs)))

	return &TopEntitiesResult{
		Range:     timeRange,
		GroupBy:   groupBy,
		Metric:    metric,
		Entities:  s.entityRanker.Rank(page.Logs, catalog, groupBy, metric),
		Truncated: page.Truncated,
	}, nil
}

func (s *monitoringService) ListLogs(ctx context.Context, query LogsQuery) (result *LogsResult, err error) {
	defer s.observe(queryKindLogs, time.Now(), &err)

	pageNum := query.Page
	if pageNum == 0 {
		pageNum = 1
	}
	pageSize := query.PageSize
	if pageSize == 0 {
		pageSize = s.opts.DefaultPageSize
	}
	if pageNum < 1 {
		return nil, errInvalidQuery("page must be >= 1", nil)
	}
	if pageSize < 1 || pageSize > s.opts.MaxPageSize {
		return nil, errInvalidQuery("pageSize out of range", nil)
	}

	timeRange, err := s.resolveRange(query.From, query.To)
	if err != nil {
		return nil, err
	}

	logQuery := s.logQuery(query.Selection, timeRange)
	logQuery.Offset = (pageNum - 1) * pageSize
	logQuery.Limit = pageSize

	page, err := s.queryLogs(ctx, logQuery)
	if err != nil {
		return nil, err
	}
	return &LogsResult{CallLogPage: *page, Range: timeRange, Page: pageNum, PageSize: pageSize}, nil
}

func (s *monitoringService) ShapeDashboard(ctx context.Context, req ShapeRequest) (views []models.WidgetView, err error) {
	defer s.observe(queryKindShape, time.Now(), &err)

	if validationErr := s.validate.Struct(req); validationErr != nil {
		return nil, errInvalidQuery("invalid dashboard: "+validators.Describe(validationErr), validationErr)
	}
	return s.widgetShaper.Shape(req.Widgets, req.Results), nil
}

func (s *monitoringService) resolveRange(from, to string) (models.TimeRange, error) {
	timeRange, err := timeranges.ResolveRange(from, to, s.opts.Now())
	if err != nil {
		return models.TimeRange{}, errInvalidQuery(err.Error(), err)
	}
	if err := timeranges.CheckSpan(timeRange, s.opts.MaxRange); err != nil {
		return models.TimeRange{}, errInvalidQuery(err.Error(), err)
	}
	return timeRange, nil
}

func (s *monitoringService) logQuery(sel Selection, timeRange models.TimeRange) stores.CallLogQuery {
	return stores.CallLogQuery{
		Range:         timeRange,
		ConnectionIDs: sel.ConnectionIDs,
		AgentIDs:      sel.AgentIDs,
		ToolName:      sel.ToolName,
		Params:        propertyfilters.ToAPIParams(propertyfilters.Deserialize(sel.Filters)),
		MaxLogs:       s.opts.MaxLogsPerQuery,
	}
}

func (s *monitoringService) queryLogs(ctx context.Context, query stores.CallLogQuery) (*models.CallLogPage, error) {
	page, err := s.callLogStore.Query(ctx, query)
	if err != nil {
		return nil, errInternalCallLogStoreFailed(err)
	}
	return page, nil
}

// observe records the outcome of a query; errp is read after the query returns.
func (s *monitoringService) observe(kind string, started time.Time, errp *error) {
	code := metrics.ValueNoError
	if *errp != nil {
		if svcErr, ok := svcerrors.AsServiceError(*errp); ok {
			code = svcErr.Code
		}
	}
	metricQueryTotal.WithLabelValues(kind, code).Inc()
	metricQueryDurationSeconds.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}
