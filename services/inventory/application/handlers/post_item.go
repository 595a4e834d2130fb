package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/itsklemy/cercle-backend/pkg/auth"
	"github.com/itsklemy/cercle-backend/pkg/errhttp"
	"github.com/itsklemy/cercle-backend/pkg/httpx"
	pkgvalidator "github.com/itsklemy/cercle-backend/pkg/validator"
	appsvcs "github.com/itsklemy/cercle-backend/services/inventory/application/services"
)

// CreateItemRequest is the request body for POST /circles/{circleID}/items.
type CreateItemRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=140"`
	Category string `json:"category" validate:"omitempty,oneof=maison bricolage jardin sport cuisine vehicule other"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url,max=2048"`
}

// ItemResponse is the wire representation of a single item.
type ItemResponse struct {
	ID        uuid.UUID `json:"id"`
	CircleID  uuid.UUID `json:"circle_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PostItemHandler handles POST /circles/{circleID}/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item owned by the authenticated member.
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), circleID, memberID, req.Title, req.Category, req.PhotoURL)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ItemResponse{
		ID:        item.ID,
		CircleID:  item.CircleID,
		OwnerID:   item.OwnerID,
		Title:     item.Title.String(),
		Category:  item.Category.String(),
		PhotoURL:  item.PhotoURL,
		CreatedAt: item.CreatedAt,
	})
}
