package http

import (
	"net/http"

	"mcp-monitoring/internal/shared/loggers"
	"mcp-monitoring/internal/shared/svcerrors"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// errorHandlingAdapter runs an AppHttpHandler and renders the error it
// returns. Errors that are not service errors are reported as SYS_9000 and
// their cause stays in the logs.
func errorHandlingAdapter(handler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := handler.Handle(w, r)
		if err == nil {
			return
		}

		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		if svcErr.IsInternalError() {
			loggers.Ctx(r.Context()).Error().
				Err(svcErr.Cause).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Msg("api call failed")
		}

		writeErrorResponse(w, r, svcErr)
	}
}

// writeErrorResponse records svcErr on the app writer, where the metrics and
// completion log middlewares pick up its code, and writes the error body.
func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetServiceError(svcErr)
	}

	loggers.Ctx(r.Context()).Debug().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Int(loggers.FieldHttpStatus, svcErr.HttpStatusCode).
		Msg(svcErr.Message)

	_ = writeJSON(w, svcErr.HttpStatusCode, ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	})
}
