package handlers

import (
	"net/http"
	"strconv"

	"github.com/itsklemy/cercle-backend/pkg/auth"
	"github.com/itsklemy/cercle-backend/pkg/errhttp"
	"github.com/itsklemy/cercle-backend/pkg/httpx"
	appsvcs "github.com/itsklemy/cercle-backend/services/inventory/application/services"
	"github.com/itsklemy/cercle-backend/services/inventory/domain/repositories"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ListItemsResponse is the paginated response for GET /circles/{circleID}/items.
type ListItemsResponse struct {
	Items  []ItemResponse `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// ListItemsHandler handles GET /circles/{circleID}/items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists the circle's items, newest first, with limit/offset pagination.
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	circleID, err := auth.CircleIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	opts := repositories.QueryOpts{
		Limit:  queryInt(r, "limit", defaultListLimit),
		Offset: queryInt(r, "offset", 0),
	}
	if opts.Limit < 1 || opts.Limit > maxListLimit {
		opts.Limit = defaultListLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	items, total, err := h.svc.Item.List(r.Context(), circleID, opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListItemsResponse{
		Items:  make([]ItemResponse, len(items)),
		Total:  total,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	for i, item := range items {
		resp.Items[i] = ItemResponse{
			ID:        item.ID,
			CircleID:  item.CircleID,
			OwnerID:   item.OwnerID,
			Title:     item.Title.String(),
			Category:  item.Category.String(),
			PhotoURL:  item.PhotoURL,
			CreatedAt: item.CreatedAt,
		}
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
