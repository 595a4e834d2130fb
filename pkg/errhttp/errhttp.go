// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/itsklemy/cercle-backend/pkg/httpx"
	"github.com/itsklemy/cercle-backend/services/catalog/domain/ideas"
	inventorydomain "github.com/itsklemy/cercle-backend/services/inventory/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, inventorydomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, inventorydomain.ErrNotItemOwner):
		return http.StatusForbidden // 403
	case errors.Is(err, inventorydomain.ErrInvalidItemTitle):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, ideas.ErrUnknownPreset):
		return http.StatusNotFound // 404
	default:
		return http.StatusInternalServerError // 500
	}
}
