package http

import (
	"net/http"

	"mcp-monitoring/internal/propertyfilters"
)

type parsePropertyFiltersRequest struct {
	Raw string `json:"raw"`
}

type parsePropertyFiltersHandler struct{}

func NewParsePropertyFiltersHandler() AppHttpHandler {
	return &parsePropertyFiltersHandler{}
}

// Handle processes POST /api/property-filters/parse. Parsing never fails; only
// a malformed body is rejected.
func (h *parsePropertyFiltersHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req parsePropertyFiltersRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, propertyfilters.Parse(req.Raw))
}
