package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"mcp-monitoring/internal/aggregators"
	"mcp-monitoring/internal/dashboards"
	internalhttp "mcp-monitoring/internal/http"
	"mcp-monitoring/internal/ingestors"
	"mcp-monitoring/internal/mcptools"
	"mcp-monitoring/internal/monitoring"
	"mcp-monitoring/internal/shared/configs"
	"mcp-monitoring/internal/shared/filestorages"
	"mcp-monitoring/internal/shared/loggers"
	"mcp-monitoring/internal/stores"
	"mcp-monitoring/internal/viewstates"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "mcp-monitoring").
		Logger()

	location, err := config.Monitoring.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	callLogStore := stores.NewCallLogStore(fileStorage)
	catalogStore := stores.NewEntityCatalogStore(fileStorage)
	viewStateStore := stores.NewViewStateStore(fileStorage)

	ingestionService := ingestors.NewIngestionService(ingestors.NewCallLogNormalizer(), callLogStore)

	monitoringService := monitoring.NewMonitoringService(
		callLogStore,
		catalogStore,
		aggregators.NewStatsAggregator(aggregators.NewTimeBucketer(location)),
		aggregators.NewEntityRanker(config.Monitoring.RankingLimit),
		dashboards.NewWidgetShaper(location),
		monitoring.Options{
			Lookback:        time.Duration(config.Monitoring.LookbackHours) * time.Hour,
			Rounding:        time.Duration(config.Monitoring.RoundingMinutes) * time.Minute,
			MaxRange:        time.Duration(config.Monitoring.MaxRangeDays) * 24 * time.Hour,
			MaxLogsPerQuery: config.Monitoring.MaxLogsPerQuery,
			DefaultPageSize: config.Monitoring.DefaultPageSize,
			MaxPageSize:     config.Monitoring.MaxPageSize,
		},
	)

	viewStateService := viewstates.NewViewStateService(viewStateStore, time.Now)

	services := internalhttp.Services{
		Ingestion:  ingestionService,
		Monitoring: monitoringService,
		ViewStates: viewStateService,
		Catalog:    catalogStore,
	}
	if config.MCP.Enabled {
		mcpServer := mcptools.NewServer(
			mcptools.Config{Name: config.MCP.Name, Version: config.MCP.Version},
			monitoringService,
			appLogger,
		)
		services.MCP = mcpServer.Handler()
	}

	httpLogger := loggers.Component(appLogger, "http")
	router := internalhttp.NewRouter(services, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Handler exposes the router, used by tests to drive the app in process.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting mcp-monitoring service on port %d (log_level=%s, file_storage_root_dir=%s, timezone=%s, mcp_enabled=%t)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Monitoring.Timezone,
			app.config.MCP.Enabled)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
