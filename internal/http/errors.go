package http

import (
	"fmt"

	"mcp-monitoring/internal/shared/svcerrors"
)

// Handler level errors; services report their own codes.
const (
	codeInvalidRequest = "API_1000"

	codeInternalCatalogStoreFailed = "API_9000"
)

func errInvalidRequest(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequest, msg, cause)
}

func errInternalCatalogStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCatalogStoreFailed, fmt.Errorf("catalogStoreFailed: %w", cause))
}
