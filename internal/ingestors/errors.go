package ingestors

import (
	"fmt"

	"mcp-monitoring/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed      = "ING_1000"
	codeBatchAlreadyProcessed = "ING_1001"

	codeInternalCallLogStoreFailed = "ING_9000"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errCallLogBatchAlreadyProcessed returns an error when a batch with the same idempotency key was stored before.
func errCallLogBatchAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBatchAlreadyProcessed, "call log batch already processed", cause)
}

// errInternalCallLogStoreFailed returns an error when the call log store fails.
func errInternalCallLogStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCallLogStoreFailed, fmt.Errorf("callLogStoreFailed: %w", cause))
}
