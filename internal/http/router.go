package http

import (
	"net/http"

	"mcp-monitoring/internal/ingestors"
	"mcp-monitoring/internal/monitoring"
	"mcp-monitoring/internal/shared/loggers"
	"mcp-monitoring/internal/shared/metrics"
	"mcp-monitoring/internal/stores"
	"mcp-monitoring/internal/viewstates"

	"github.com/go-chi/chi/v5"
)

// Services are the dependencies the routes dispatch to. A nil MCP handler
// leaves /mcp unmounted.
type Services struct {
	Ingestion  ingestors.IngestionService
	Monitoring monitoring.MonitoringService
	ViewStates viewstates.ViewStateService
	Catalog    stores.EntityCatalogStore
	MCP        http.Handler
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services Services, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Route("/api", func(r chi.Router) {
		r.Post("/call-logs", errorHandlingAdapter(NewIngestCallLogHandler(services.Ingestion)))

		r.Route("/monitoring", func(r chi.Router) {
			r.Get("/stats", errorHandlingAdapter(NewStatsHandler(services.Monitoring)))
			r.Get("/top-entities", errorHandlingAdapter(NewTopEntitiesHandler(services.Monitoring)))
			r.Get("/logs", errorHandlingAdapter(NewLogsHandler(services.Monitoring)))
		})
		r.Post("/dashboards/shape", errorHandlingAdapter(NewShapeDashboardHandler(services.Monitoring)))
		r.Post("/property-filters/parse", errorHandlingAdapter(NewParsePropertyFiltersHandler()))

		r.Get("/view-states/{id}", errorHandlingAdapter(NewGetViewStateHandler(services.ViewStates)))
		r.Put("/view-states/{id}", errorHandlingAdapter(NewPutViewStateHandler(services.ViewStates)))

		r.Get("/catalog/{groupBy}", errorHandlingAdapter(NewGetCatalogHandler(services.Catalog)))
		r.Put("/catalog/{groupBy}", errorHandlingAdapter(NewPutCatalogHandler(services.Catalog)))
	})

	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)
	if services.MCP != nil {
		router.Handle("/mcp", services.MCP)
	}

	return router
}
