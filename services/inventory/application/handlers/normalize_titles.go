package handlers

import (
	"net/http"

	"github.com/itsklemy/cercle-backend/pkg/httpx"
	pkgvalidator "github.com/itsklemy/cercle-backend/pkg/validator"
	"github.com/itsklemy/cercle-backend/services/catalog/domain/keys"
)

// NormalizeTitlesRequest is the request body for POST /items/normalize.
type NormalizeTitlesRequest struct {
	Titles []string `json:"titles" validate:"required,min=1,max=100,dive,max=140"`
}

// NormalizedTitle pairs a canonical title key with its display label.
type NormalizedTitle struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// NormalizeTitlesResponse is the deduplicated normalization result.
// Order follows the first occurrence of each distinct key in the input.
type NormalizeTitlesResponse struct {
	Titles []NormalizedTitle `json:"titles"`
}

// NormalizeTitlesHandler handles POST /items/normalize requests.
// Clients use it to preview how free-text titles fold together before
// submitting listings (e.g. suggestion chips during item entry).
type NormalizeTitlesHandler struct{}

// NewNormalizeTitlesHandler returns a NormalizeTitlesHandler.
func NewNormalizeTitlesHandler() *NormalizeTitlesHandler {
	return &NormalizeTitlesHandler{}
}

// Execute normalizes a batch of titles into deduplicated canonical keys.
func (h *NormalizeTitlesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[NormalizeTitlesRequest](w, r)
	if !ok {
		return
	}

	deduped := keys.DedupeTitles(req.Titles)
	resp := NormalizeTitlesResponse{Titles: make([]NormalizedTitle, len(deduped))}
	for i, key := range deduped {
		resp.Titles[i] = NormalizedTitle{
			Key:   key,
			Label: keys.LabelForKey(key),
		}
	}
	httpx.JSON(w, http.StatusOK, resp)
}
