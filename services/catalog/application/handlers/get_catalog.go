package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/itsklemy/cercle-backend/pkg/auth"
	"github.com/itsklemy/cercle-backend/pkg/errhttp"
	"github.com/itsklemy/cercle-backend/pkg/httpx"
	appsvcs "github.com/itsklemy/cercle-backend/services/catalog/application/services"
	"github.com/itsklemy/cercle-backend/services/catalog/domain/rollup"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CatalogResponse is the aggregated catalog for a circle.
type CatalogResponse struct {
	Groups []rollup.Group `json:"groups"`
}

// GetCatalogHandler handles GET /circles/{circleID}/catalog requests.
type GetCatalogHandler struct {
	svc *appsvcs.Services
}

// NewGetCatalogHandler returns a GetCatalogHandler backed by the given services.
func NewGetCatalogHandler(svc *appsvcs.Services) *GetCatalogHandler {
	return &GetCatalogHandler{svc: svc}
}

// Execute returns the circle's aggregated groups, most recently active first.
func (h *GetCatalogHandler) Execute(w http.ResponseWriter, r *http.Request) {
	circleID, ok := circleFromRequest(w, r)
	if !ok {
		return
	}

	groups, err := h.svc.Catalog.Catalog(r.Context(), circleID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if groups == nil {
		groups = []rollup.Group{}
	}
	httpx.JSON(w, http.StatusOK, CatalogResponse{Groups: groups})
}

// circleFromRequest parses the circleID path parameter and verifies it matches
// the authenticated member's circle. Writes the error response itself on failure.
func circleFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionCircle, err := auth.CircleIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return uuid.Nil, false
	}

	circleID, err := uuid.Parse(chi.URLParam(r, "circleID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid circle id")
		return uuid.Nil, false
	}

	if circleID != sessionCircle {
		httpx.JSON(w, http.StatusForbidden, ErrorResponse{Error: "not a member of this circle"})
		return uuid.Nil, false
	}
	return circleID, true
}
