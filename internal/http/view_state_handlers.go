package http

import (
	"net/http"

	"mcp-monitoring/internal/models"
	"mcp-monitoring/internal/viewstates"

	"github.com/go-chi/chi/v5"
)

type getViewStateHandler struct {
	viewStateService viewstates.ViewStateService
}

func NewGetViewStateHandler(viewStateService viewstates.ViewStateService) AppHttpHandler {
	return &getViewStateHandler{viewStateService: viewStateService}
}

// Handle processes GET /api/view-states/{id}.
func (h *getViewStateHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	state, err := h.viewStateService.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, state)
}

type putViewStateHandler struct {
	viewStateService viewstates.ViewStateService
}

func NewPutViewStateHandler(viewStateService viewstates.ViewStateService) AppHttpHandler {
	return &putViewStateHandler{viewStateService: viewStateService}
}

// Handle processes PUT /api/view-states/{id}; absent fields keep their value.
func (h *putViewStateHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var patch models.ViewStatePatch
	if err := decodeJSON(r, &patch); err != nil {
		return err
	}

	state, err := h.viewStateService.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, state)
}
