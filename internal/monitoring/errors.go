package monitoring

import (
	"fmt"

	"mcp-monitoring/internal/shared/svcerrors"
)

// MonitoringService errors
const (
	codeInvalidQuery = "MON_1000"

	codeInternalCallLogStoreFailed = "MON_9000"
	codeInternalCatalogStoreFailed = "MON_9001"
)

func errInvalidQuery(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQuery, msg, cause)
}

func errInternalCallLogStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCallLogStoreFailed, fmt.Errorf("callLogStoreFailed: %w", cause))
}

func errInternalCatalogStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCatalogStoreFailed, fmt.Errorf("catalogStoreFailed: %w", cause))
}
