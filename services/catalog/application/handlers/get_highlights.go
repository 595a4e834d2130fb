package handlers

import (
	"net/http"
	"time"

	"github.com/itsklemy/cercle-backend/pkg/errhttp"
	"github.com/itsklemy/cercle-backend/pkg/httpx"
	appsvcs "github.com/itsklemy/cercle-backend/services/catalog/application/services"
)

// HighlightsResponse carries the two disjoint highlight strips for a circle.
type HighlightsResponse struct {
	AvailableNow []appsvcs.Highlight `json:"available_now"`
	New          []appsvcs.Highlight `json:"new"`
}

// GetHighlightsHandler handles GET /circles/{circleID}/catalog/highlights requests.
type GetHighlightsHandler struct {
	svc *appsvcs.Services
}

// NewGetHighlightsHandler returns a GetHighlightsHandler backed by the given services.
func NewGetHighlightsHandler(svc *appsvcs.Services) *GetHighlightsHandler {
	return &GetHighlightsHandler{svc: svc}
}

// Execute returns the available-now and new highlight strips.
func (h *GetHighlightsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	circleID, ok := circleFromRequest(w, r)
	if !ok {
		return
	}

	availableNow, fresh, err := h.svc.Catalog.Highlights(r.Context(), circleID, time.Now().UTC())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := HighlightsResponse{AvailableNow: availableNow, New: fresh}
	if resp.AvailableNow == nil {
		resp.AvailableNow = []appsvcs.Highlight{}
	}
	if resp.New == nil {
		resp.New = []appsvcs.Highlight{}
	}
	httpx.JSON(w, http.StatusOK, resp)
}
