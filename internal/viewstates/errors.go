package viewstates

import (
	"fmt"

	"mcp-monitoring/internal/shared/svcerrors"
)

// ViewStateService errors
const (
	codeValidationFailed = "VST_1000"

	codeInternalViewStateStoreFailed = "VST_9000"
)

func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

func errInternalViewStateStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalViewStateStoreFailed, fmt.Errorf("viewStateStoreFailed: %w", cause))
}
