package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mcp-monitoring/internal/shared/loggers"
	"mcp-monitoring/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (loggers.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, err := loggers.NewWithWriter("debug", &buf)
	require.NoError(t, err)
	return logger, &buf
}

func TestMwRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		providedID string
	}{
		{name: "generates ulid", providedID: ""},
		{name: "keeps client id", providedID: "dashboard-refresh-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := newTestLogger(t)
			var seenID string
			handler := mwRequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = requestID(r)
				loggers.Ctx(r.Context()).Info().Msg("inside handler")
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/monitoring/stats", nil)
			if tt.providedID != "" {
				req.Header.Set(headerRequestID, tt.providedID)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, seenID, rr.Header().Get(headerRequestID))
			if tt.providedID == "" {
				assert.Len(t, seenID, 26)
			} else {
				assert.Equal(t, tt.providedID, seenID)
			}
			assert.Contains(t, buf.String(), `"request_id":"`+seenID+`"`)
		})
	}
}

func TestMwRecoverer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		panic any
	}{
		{name: "string panic", panic: "bucket index out of range"},
		{name: "error panic", panic: errors.New("nil catalog")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := newTestLogger(t)
			handler := mwRequestID(logger)(mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panic)
			})))

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/monitoring/top-entities", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.NotEmpty(t, errorResponse.RequestID)
			assert.Equal(t, "internal", errorResponse.ErrorCategory)
			assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
			assert.Equal(t, "internal server error", errorResponse.ErrorDescription)
			assert.Contains(t, buf.String(), "http panic recovered")
		})
	}
}

func TestSetupMiddleware_Integration(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger(t)
	router := chi.NewRouter()
	setupMiddleware(router, logger)

	router.Get("/api/view-states/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, requestID(r))
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/api/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("integration test panic")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/view-states/default", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, buf.String(), "request completed")
	assert.Contains(t, buf.String(), `"http_path":"/api/view-states/default"`)
	assert.Contains(t, buf.String(), `"http_route":"/api/view-states/{id}"`)

	rr = httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/boom", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
}

func TestMwRecoverer_ResponseAlreadyStarted(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger(t)
	handler := mwRequestID(logger)(mwAppResponseWriter(mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("event: message\n"))
		panic("stream broke")
	}))))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/mcp", nil))
	})

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "event: message\n", rr.Body.String())
	assert.Contains(t, buf.String(), "http panic recovered")
}

func TestMwRecoverer_ReraisesAbortHandler(t *testing.T) {
	t.Parallel()

	logger, _ := newTestLogger(t)
	handler := mwRequestID(logger)(mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/mcp", nil))
	})
}

func TestMwPrometheus_LabelsByRoutePattern(t *testing.T) {
	t.Parallel()

	logger, _ := newTestLogger(t)
	router := chi.NewRouter()
	setupMiddleware(router, logger)
	router.Get("/api/widgets/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, id := range []string{"calls", "errors"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/widgets/"+id, nil))
	}

	rr := httptest.NewRecorder()
	metrics.PromHTTP.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rr.Body.String(),
		`mcp_monitoring_http_requests_total{error_code="",method="GET",route="/api/widgets/{id}",status="204"} 2`)
	assert.NotContains(t, rr.Body.String(), `route="/api/widgets/calls"`)
}

func TestRouteLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, unmatchedRoute, routeLabel(httptest.NewRequest(http.MethodGet, "/no/route", nil)))

	router := chi.NewRouter()
	var label string
	router.Get("/api/view-states/{id}", func(w http.ResponseWriter, r *http.Request) {
		label = routeLabel(r)
	})
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/view-states/default", nil))
	assert.Equal(t, "/api/view-states/{id}", label)
}
