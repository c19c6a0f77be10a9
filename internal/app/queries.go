package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"property_listing/internal/adapters/observability"
	"property_listing/internal/domain"
	"property_listing/internal/filter"
)

const listingKey = "properties:all"

func propertyKey(id string) string { return fmt.Sprintf("property:%s", id) }

type QueryService struct {
	catalog  domain.Catalog
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(c domain.Catalog, cache domain.Cache, ttl time.Duration) *QueryService {
	if cache == nil {
		cache = NopCache{}
	}
	return &QueryService{catalog: c, cache: cache, cacheTTL: ttl}
}

// ListProperties loads the whole collection and keeps the records that pass
// every active label, in catalog order.
func (s *QueryService) ListProperties(ctx context.Context, active domain.FilterSet) (domain.Listing, error) {
	all, err := s.all(ctx)
	if err != nil {
		return domain.Listing{}, err
	}
	items := filter.Apply(all, active)
	observability.ObserveFilter(active.Len(), len(all), len(items))

	return domain.Listing{
		Items:   items,
		Total:   len(items),
		Active:  active.Labels(),
		Presets: append([]domain.FilterLabel(nil), domain.PresetFilters...),
	}, nil
}

func (s *QueryService) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	key := propertyKey(id)
	var p domain.Property
	if ok, _ := s.cache.Get(ctx, key, &p); ok {
		return p, nil
	}
	p, err := s.catalog.GetProperty(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	if err := s.cache.Set(ctx, key, p, s.ttlSec()); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
	return p.Clone(), nil
}

func (s *QueryService) all(ctx context.Context) ([]domain.Property, error) {
	var out []domain.Property
	if ok, _ := s.cache.Get(ctx, listingKey, &out); ok {
		return out, nil
	}
	out, err := s.catalog.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	if err := s.cache.Set(ctx, listingKey, out, s.ttlSec()); err != nil {
		log.Warn().Err(err).Str("key", listingKey).Msg("cache set failed")
	}
	// copy so callers never alias the cached or catalog-owned slice
	return cloneProperties(out), nil
}

func (s *QueryService) ttlSec() int { return int(s.cacheTTL.Seconds()) }

func cloneProperties(in []domain.Property) []domain.Property {
	out := make([]domain.Property, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

// NopCache never hits. Used when no Redis is configured.
type NopCache struct{}

func (NopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NopCache) Set(context.Context, string, any, int) error { return nil }
func (NopCache) Del(context.Context, string) error { return nil }
