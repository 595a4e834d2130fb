package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/itsklemy/cercle-backend/pkg/auth"
	"github.com/itsklemy/cercle-backend/pkg/errhttp"
	"github.com/itsklemy/cercle-backend/pkg/httpx"
	appsvcs "github.com/itsklemy/cercle-backend/services/inventory/application/services"
)

// DeleteItemHandler handles DELETE /circles/{circleID}/items/{itemID} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes an item. Only the item's owner may delete it.
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	memberID, err := auth.MemberIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	circleID, err := auth.CircleIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.svc.Item.Delete(r.Context(), circleID, memberID, itemID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
