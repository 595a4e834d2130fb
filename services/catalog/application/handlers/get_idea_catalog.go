package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itsklemy/cercle-backend/pkg/errhttp"
	"github.com/itsklemy/cercle-backend/pkg/httpx"
	appsvcs "github.com/itsklemy/cercle-backend/services/catalog/application/services"
	"github.com/itsklemy/cercle-backend/services/catalog/domain/rollup"
)

// IdeaCatalogResponse is the circle's catalog filtered by one idea preset.
type IdeaCatalogResponse struct {
	PresetKey string         `json:"preset_key"`
	Groups    []rollup.Group `json:"groups"`
}

// GetIdeaCatalogHandler handles GET /circles/{circleID}/catalog/ideas/{presetKey} requests.
type GetIdeaCatalogHandler struct {
	svc *appsvcs.Services
}

// NewGetIdeaCatalogHandler returns a GetIdeaCatalogHandler backed by the given services.
func NewGetIdeaCatalogHandler(svc *appsvcs.Services) *GetIdeaCatalogHandler {
	return &GetIdeaCatalogHandler{svc: svc}
}

// Execute returns the catalog groups matching the preset's categories or keywords.
func (h *GetIdeaCatalogHandler) Execute(w http.ResponseWriter, r *http.Request) {
	circleID, ok := circleFromRequest(w, r)
	if !ok {
		return
	}

	presetKey := chi.URLParam(r, "presetKey")
	groups, err := h.svc.Catalog.IdeaCatalog(r.Context(), circleID, presetKey)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if groups == nil {
		groups = []rollup.Group{}
	}
	httpx.JSON(w, http.StatusOK, IdeaCatalogResponse{PresetKey: presetKey, Groups: groups})
}
