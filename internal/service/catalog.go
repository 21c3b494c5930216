package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deppfellow/barbershop-api/internal/errs"
	"github.com/deppfellow/barbershop-api/internal/lib/cache"
	"github.com/deppfellow/barbershop-api/internal/metrics"
	"github.com/deppfellow/barbershop-api/internal/model/catalog"
)

type CatalogRepository interface {
	ListSalons(ctx context.Context) ([]catalog.Row, error)
	ListMasters(ctx context.Context, salonID int) ([]catalog.Row, error)
	ListServices(ctx context.Context) ([]catalog.Row, error)
	ListActivePromotions(ctx context.Context) ([]catalog.Row, error)
}

// CatalogCache stores encoded catalog listings.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

type catalogLister func(ctx context.Context, salonID int) ([]catalog.Row, error)

// Active promotions depend on the current date, so a cached listing could
// outlive a promotion's valid_until.
var uncachedResources = map[catalog.Resource]bool{
	catalog.Promotions: true,
}

type CatalogService struct {
	cache     CatalogCache
	resources map[catalog.Resource]catalogLister
}

// NewCatalogService builds the resource table. A nil cache reads the
// database on every request.
func NewCatalogService(repo CatalogRepository, cache CatalogCache) *CatalogService {
	return &CatalogService{
		cache: cache,
		resources: map[catalog.Resource]catalogLister{
			catalog.Salons: func(ctx context.Context, _ int) ([]catalog.Row, error) {
				return repo.ListSalons(ctx)
			},
			catalog.Masters: repo.ListMasters,
			catalog.Services: func(ctx context.Context, _ int) ([]catalog.Row, error) {
				return repo.ListServices(ctx)
			},
			catalog.Promotions: func(ctx context.Context, _ int) ([]catalog.Row, error) {
				return repo.ListActivePromotions(ctx)
			},
		},
	}
}

// List returns {"<resource>": [...]} for the requested resource.
func (s *CatalogService) List(ctx context.Context, q *catalog.Query) (map[string]json.RawMessage, error) {
	resource := q.Resource()

	list, ok := s.resources[resource]
	if !ok {
		return nil, errs.NewBadRequestError("Invalid resource type", true, nil, nil, nil)
	}

	// salon_id only narrows the masters listing.
	salonID := 0
	if resource == catalog.Masters {
		salonID = q.SalonID
	}

	body, err := s.load(ctx, resource, salonID, list)
	if err != nil {
		return nil, err
	}

	return map[string]json.RawMessage{string(resource): body}, nil
}

func (s *CatalogService) load(ctx context.Context, resource catalog.Resource, salonID int, list catalogLister) (json.RawMessage, error) {
	logger := zerolog.Ctx(ctx)
	key := cache.CatalogKey(string(resource), salonID)
	useCache := s.cache != nil && !uncachedResources[resource]

	if useCache {
		body, hit, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			metrics.RecordCatalogCache(string(resource), metrics.CacheError)
			logger.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
		case hit:
			metrics.RecordCatalogCache(string(resource), metrics.CacheHit)
			return body, nil
		default:
			metrics.RecordCatalogCache(string(resource), metrics.CacheMiss)
		}
	}

	rows, err := list(ctx, salonID)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", resource, err)
	}

	if useCache {
		if err := s.cache.Set(ctx, key, body); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
		}
	}

	return body, nil
}
