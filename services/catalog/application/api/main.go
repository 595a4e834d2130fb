package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/itsklemy/cercle-backend/pkg/app"
	"github.com/itsklemy/cercle-backend/pkg/auth"
	"github.com/itsklemy/cercle-backend/pkg/config"
	"github.com/itsklemy/cercle-backend/services/catalog/application/handlers"
	appsvcs "github.com/itsklemy/cercle-backend/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
// The idea preset list is public; circle-scoped routes require an
// authenticated member of that circle.
func CatalogRoutes(r chi.Router, a *app.Application, cfg *config.Config) {
	svcs := appsvcs.New(a, cfg)

	r.Get("/ideas", handlers.NewGetIdeasHandler(svcs).Execute)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireMember(a.SessionStore, a.Logger))
		r.Route("/circles/{circleID}/catalog", func(r chi.Router) {
			r.Get("/", handlers.NewGetCatalogHandler(svcs).Execute)
			r.Get("/highlights", handlers.NewGetHighlightsHandler(svcs).Execute)
			r.Get("/ideas/{presetKey}", handlers.NewGetIdeaCatalogHandler(svcs).Execute)
		})
	})
}
