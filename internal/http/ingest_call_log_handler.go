package http

import (
	"net/http"

	"mcp-monitoring/internal/ingestors"
)

type ingestCallLogHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestCallLogHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestCallLogHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /api/call-logs requests.
func (h *ingestCallLogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestBatch(r.Context(), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusAccepted, result)
}
