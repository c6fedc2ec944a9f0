package http

import (
	"net/http"

	"mcp-monitoring/internal/models"
	"mcp-monitoring/internal/shared/validators"
	"mcp-monitoring/internal/stores"

	"github.com/go-chi/chi/v5"
)

type catalogBody struct {
	Entities []models.Entity `json:"entities" validate:"dive"`
}

func groupByParam(r *http.Request) (models.GroupBy, error) {
	groupBy, err := models.ParseGroupBy(chi.URLParam(r, "groupBy"))
	if err != nil {
		return "", errInvalidRequest(err.Error(), err)
	}
	return groupBy, nil
}

type getCatalogHandler struct {
	catalogStore stores.EntityCatalogStore
}

func NewGetCatalogHandler(catalogStore stores.EntityCatalogStore) AppHttpHandler {
	return &getCatalogHandler{catalogStore: catalogStore}
}

// Handle processes GET /api/catalog/{groupBy}.
func (h *getCatalogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	groupBy, err := groupByParam(r)
	if err != nil {
		return err
	}

	entities, err := h.catalogStore.List(r.Context(), groupBy)
	if err != nil {
		return errInternalCatalogStoreFailed(err)
	}
	if entities == nil {
		entities = []models.Entity{}
	}
	return writeJSON(w, http.StatusOK, catalogBody{Entities: entities})
}

type putCatalogHandler struct {
	catalogStore stores.EntityCatalogStore
	validate     *validators.Validate
}

func NewPutCatalogHandler(catalogStore stores.EntityCatalogStore) AppHttpHandler {
	return &putCatalogHandler{catalogStore: catalogStore, validate: validators.NewJSON()}
}

// Handle processes PUT /api/catalog/{groupBy}, replacing the whole catalog.
func (h *putCatalogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	groupBy, err := groupByParam(r)
	if err != nil {
		return err
	}

	var body catalogBody
	if err := decodeJSON(r, &body); err != nil {
		return err
	}
	if err := h.validate.Struct(body); err != nil {
		return errInvalidRequest("invalid catalog: "+validators.Describe(err), err)
	}
	if body.Entities == nil {
		body.Entities = []models.Entity{}
	}

	if err := h.catalogStore.Replace(r.Context(), groupBy, body.Entities); err != nil {
		return errInternalCatalogStoreFailed(err)
	}
	return writeJSON(w, http.StatusOK, body)
}
