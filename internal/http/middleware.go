package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"mcp-monitoring/internal/shared/loggers"
	"mcp-monitoring/internal/shared/svcerrors"
	"mcp-monitoring/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests no route matched, so probing random paths
// cannot grow the metric series.
const unmatchedRoute = "unmatched"

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(
		mwRequestID(httpLogger),
		mwAppResponseWriter,
		mwPrometheus,
		mwRequestCompletionLog,
		mwRecoverer,
	)
}

// mwRequestID reuses the caller's x-request-id or assigns a ULID. The id is
// echoed on the response and bound to the request logger.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			if id == "" {
				id = ulid.NewULID()
				setRequestID(r, id)
			}
			w.Header().Set(headerRequestID, id)

			ctx := httpLogger.With().
				Str(loggers.FieldRequestID, id).
				Logger().WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(newAppResponseWriter(w, r.ProtoMajor), r)
	})
}

func mwPrometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metricAPIRequestsInFlight.Inc()
		defer metricAPIRequestsInFlight.Dec()

		start := time.Now()
		next.ServeHTTP(w, r)

		route := routeLabel(r)
		status, errorCode := responseOutcome(w)
		metricAPIRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status), errorCode).Inc()
		metricAPIRequestDurationSeconds.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// mwRequestCompletionLog logs one line per API call; 5xx responses at warn.
func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			status, errorCode := responseOutcome(w)

			logger := loggers.Ctx(r.Context())
			event := logger.Info()
			if status >= http.StatusInternalServerError {
				event = logger.Warn()
			}
			if errorCode != "" {
				event = event.Str(loggers.FieldErrorCode, errorCode)
			}
			event.
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Str(loggers.FieldHttpRoute, routeLabel(r)).
				Int(loggers.FieldHttpStatus, status).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
				Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// mwRecoverer turns a handler panic into a SYS_9000 response. Once a response
// has started (an MCP stream, for one) only the error code is recorded.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			panicErr, ok := p.(error)
			if ok && errors.Is(panicErr, http.ErrAbortHandler) {
				panic(p)
			}
			if !ok {
				panicErr = fmt.Errorf("%v", p)
			}

			loggers.Ctx(r.Context()).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Msgf("http panic recovered: %v", p)

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			if appWriter, ok := w.(*appResponseWriter); ok && appWriter.Status() != 0 {
				appWriter.SetServiceError(svcErr)
				return
			}
			writeErrorResponse(w, r, svcErr)
		}()

		next.ServeHTTP(w, r)
	})
}

// responseOutcome reads the status and service error code off the app
// writer. Handlers that never call WriteHeader answered 200.
func responseOutcome(w http.ResponseWriter) (int, string) {
	status, errorCode := 0, ""
	if appWriter, ok := w.(*appResponseWriter); ok {
		status = appWriter.Status()
		errorCode = appWriter.ErrorCode()
	}
	if status == 0 {
		status = http.StatusOK
	}
	return status, errorCode
}

func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return unmatchedRoute
}
