package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/itsklemy/cercle-backend/pkg/app"
	"github.com/itsklemy/cercle-backend/pkg/auth"
	"github.com/itsklemy/cercle-backend/pkg/httpx"
	"github.com/itsklemy/cercle-backend/services/inventory/application/handlers"
	appsvcs "github.com/itsklemy/cercle-backend/services/inventory/application/services"
)

// ItemRoutes registers inventory endpoints on the provided chi router.
// All routes require an authenticated member session; circle-scoped routes
// additionally verify the path circle against the session.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireMember(a.SessionStore, a.Logger))

		r.Post("/items/normalize", handlers.NewNormalizeTitlesHandler().Execute)

		r.Route("/circles/{circleID}/items", func(r chi.Router) {
			r.Use(requireCircleMatch)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
			r.Delete("/{itemID}", handlers.NewDeleteItemHandler(svcs).Execute)
		})
	})
}

// requireCircleMatch rejects requests whose circleID path parameter does not
// match the authenticated member's circle.
func requireCircleMatch(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionCircle, err := auth.CircleIDFromCtx(r.Context())
		if err != nil {
			httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		circleID, err := uuid.Parse(chi.URLParam(r, "circleID"))
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid circle id")
			return
		}

		if circleID != sessionCircle {
			httpx.JSONError(w, http.StatusForbidden, "not a member of this circle")
			return
		}
		next.ServeHTTP(w, r)
	})
}
