package handlers

import (
	"net/http"

	"github.com/itsklemy/cercle-backend/pkg/httpx"
	appsvcs "github.com/itsklemy/cercle-backend/services/catalog/application/services"
	"github.com/itsklemy/cercle-backend/services/catalog/domain/ideas"
)

// IdeasResponse lists the curated idea presets.
type IdeasResponse struct {
	Ideas []ideas.Preset `json:"ideas"`
}

// GetIdeasHandler handles GET /ideas requests.
type GetIdeasHandler struct {
	svc *appsvcs.Services
}

// NewGetIdeasHandler returns a GetIdeasHandler backed by the given services.
func NewGetIdeasHandler(svc *appsvcs.Services) *GetIdeasHandler {
	return &GetIdeasHandler{svc: svc}
}

// Execute returns the curated idea presets.
func (h *GetIdeasHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, IdeasResponse{Ideas: h.svc.Catalog.Ideas()})
}
