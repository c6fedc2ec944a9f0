package mcptools

import (
	"mcp-monitoring/internal/shared/svcerrors"
)

// MCP tool errors
const (
	codeInvalidArguments = "MCP_1000"
)

func errInvalidArguments(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidArguments, cause.Error(), cause)
}
