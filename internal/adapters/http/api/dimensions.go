// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/rubriq/rubriq/internal/domain/types"
)

// DimensionsHandler serves the static dimension catalog.
type DimensionsHandler struct {
	catalog CatalogProvider
}

// NewDimensionsHandler creates a new dimensions handler.
func NewDimensionsHandler(catalog CatalogProvider) *DimensionsHandler {
	return &DimensionsHandler{catalog: catalog}
}

type dimensionsResponse struct {
	Dimensions        []types.DimensionInfo `json:"dimensions"`
	ProficiencyLevels []types.LevelBand     `json:"proficiencyLevels"`
}

// HandleDimensions handles GET /dimensions requests. The catalog is static
// metadata; no analyzer runs here.
func (h *DimensionsHandler) HandleDimensions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, dimensionsResponse{
		Dimensions:        h.catalog.Dimensions(r.Context()),
		ProficiencyLevels: h.catalog.LevelBands(r.Context()),
	})
}
