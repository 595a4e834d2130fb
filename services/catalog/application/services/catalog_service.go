package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/itsklemy/cercle-backend/pkg/cache"
	"github.com/itsklemy/cercle-backend/pkg/logger"
	"github.com/itsklemy/cercle-backend/services/catalog/domain/ideas"
	"github.com/itsklemy/cercle-backend/services/catalog/domain/repositories"
	"github.com/itsklemy/cercle-backend/services/catalog/domain/rollup"
)

// CatalogService serves the aggregated, deduplicated view of a circle's items.
// Aggregation is recomputed from the items table and cached per circle in
// Redis; the worker invalidates and rebuilds the cache on item changes.
type CatalogService struct {
	reader         repositories.CatalogReader
	cache          *pkgcache.CatalogCache
	log            logger.Logger
	freshWindow    time.Duration
	highlightLimit int
}

// NewCatalogService returns a CatalogService wired with the given reader and cache.
// A nil cache disables caching; every read recomputes from the database.
func NewCatalogService(reader repositories.CatalogReader, cache *pkgcache.CatalogCache, log logger.Logger, freshWindow time.Duration, highlightLimit int) *CatalogService {
	if freshWindow <= 0 {
		freshWindow = rollup.DefaultFreshWindow
	}
	if highlightLimit <= 0 {
		highlightLimit = rollup.DefaultHighlightLimit
	}
	return &CatalogService{
		reader:         reader,
		cache:          cache,
		log:            log,
		freshWindow:    freshWindow,
		highlightLimit: highlightLimit,
	}
}

// Catalog returns the circle's aggregated groups, most recently active first.
//
// Read-through cache pattern:
//  1. Check Redis first.
//  2. On cache miss (or cache error), recompute from Postgres.
//  3. Asynchronously warm the cache with the recomputed result.
func (s *CatalogService) Catalog(ctx context.Context, circleID uuid.UUID) ([]rollup.Group, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, circleID)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "catalog cache read failed, recomputing", "circle_id", circleID, "error", err)
		}
	}

	groups, err := s.compute(ctx, circleID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		go func() {
			if err := s.cache.Set(context.Background(), circleID, groups); err != nil {
				s.log.Warn("catalog cache warm failed", "circle_id", circleID, "error", err)
			}
		}()
	}

	return groups, nil
}

// Highlight is a catalog group annotated with its freshness flag for the
// highlights view.
type Highlight struct {
	rollup.Group
	Fresh bool `json:"fresh"`
}

// Highlights returns the two disjoint highlight strips for the circle:
// available-now (most recently active groups) and new (the next distinct
// groups), each bounded and flagged fresh when last activity falls inside
// the freshness window.
func (s *CatalogService) Highlights(ctx context.Context, circleID uuid.UUID, now time.Time) (availableNow, fresh []Highlight, err error) {
	groups, err := s.Catalog(ctx, circleID)
	if err != nil {
		return nil, nil, err
	}

	available, newer := rollup.SelectHighlights(groups, s.highlightLimit)
	return s.annotate(available, now), s.annotate(newer, now), nil
}

// Ideas returns the curated idea presets.
func (s *CatalogService) Ideas() []ideas.Preset {
	return ideas.All()
}

// IdeaCatalog returns the circle's catalog filtered by the given preset key.
// Returns ideas.ErrUnknownPreset for a key that matches no curated preset.
func (s *CatalogService) IdeaCatalog(ctx context.Context, circleID uuid.UUID, presetKey string) ([]rollup.Group, error) {
	preset, err := ideas.Find(presetKey)
	if err != nil {
		return nil, err
	}

	groups, err := s.Catalog(ctx, circleID)
	if err != nil {
		return nil, err
	}
	return ideas.Apply(groups, &preset), nil
}

// Refresh recomputes the circle's aggregation and overwrites the cache.
// Called by the worker after item changes settle.
func (s *CatalogService) Refresh(ctx context.Context, circleID uuid.UUID) error {
	groups, err := s.compute(ctx, circleID)
	if err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, circleID, groups); err != nil {
			return fmt.Errorf("refresh catalog cache: %w", err)
		}
	}
	return nil
}

// Invalidate drops the circle's cached aggregation. The next read recomputes it.
func (s *CatalogService) Invalidate(ctx context.Context, circleID uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, circleID)
}

func (s *CatalogService) compute(ctx context.Context, circleID uuid.UUID) ([]rollup.Group, error) {
	items, err := s.reader.ListItems(ctx, circleID)
	if err != nil {
		return nil, fmt.Errorf("load catalog items: %w", err)
	}
	names, err := s.reader.MemberNames(ctx, circleID)
	if err != nil {
		return nil, fmt.Errorf("load member names: %w", err)
	}

	groups := rollup.Aggregate(items, names)
	rollup.SortByRecency(groups)
	return groups, nil
}

func (s *CatalogService) annotate(groups []rollup.Group, now time.Time) []Highlight {
	out := make([]Highlight, len(groups))
	for i, g := range groups {
		out[i] = Highlight{
			Group: g,
			Fresh: rollup.IsFresh(g.LastAt, now, s.freshWindow),
		}
	}
	return out
}
