package services

import (
	"github.com/itsklemy/cercle-backend/pkg/app"
	pkgcache "github.com/itsklemy/cercle-backend/pkg/cache"
	"github.com/itsklemy/cercle-backend/pkg/config"
	"github.com/itsklemy/cercle-backend/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog *CatalogService
}

// New wires all catalog application services with infrastructure from the Application container.
func New(a *app.Application, cfg *config.Config) *Services {
	reader := postgres.NewCatalogRepository(a.Db)

	var catalogCache *pkgcache.CatalogCache
	if a.Redis != nil {
		catalogCache = pkgcache.NewCatalogCache(a.Redis, cfg.CatalogCacheTTL)
	}

	return &Services{
		Catalog: NewCatalogService(reader, catalogCache, a.Logger, cfg.FreshWindow, cfg.HighlightLimit),
	}
}
