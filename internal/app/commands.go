package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"property_listing/internal/adapters/upstream"
	"property_listing/internal/domain"
)

type IngestionService struct {
	upstream domain.UpstreamClient
	repo     domain.PropertyRepository
	cache    domain.Cache
	workers  int64
}

func NewIngestionService(u domain.UpstreamClient, r domain.PropertyRepository, cache domain.Cache, workers int) *IngestionService {
	if cache == nil {
		cache = NopCache{}
	}
	if workers <= 0 {
		workers = 1
	}
	return &IngestionService{upstream: u, repo: r, cache: cache, workers: int64(workers)}
}

// SyncAll pulls the upstream listing and upserts every record. It returns the
// number of records written and the first write error, if any.
func (s *IngestionService) SyncAll(ctx context.Context) (int, error) {
	raw, err := s.upstream.ListProperties(ctx)
	if err != nil {
		// 404/401/403: record the miss and stop gracefully.
		if status, reason, ok := missOf(err); ok {
			_ = s.repo.LogMiss(ctx, "properties", status, reason)
			s.invalidateListing(ctx)
			return 0, nil
		}
		return 0, fmt.Errorf("fetch upstream properties: %w", err)
	}

	props := mapProperties(raw)
	sem := semaphore.NewWeighted(s.workers)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		written  int
		firstErr error
	)
	for _, p := range props {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}
		wg.Add(1)
		go func(p domain.Property) {
			defer wg.Done()
			defer sem.Release(1)

			if err := s.repo.UpsertProperty(ctx, p); err != nil {
				log.Warn().Str("id", p.ID).Err(err).Msg("upsert failed")
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("upsert property %s: %w", p.ID, err)
				}
				mu.Unlock()
				return
			}
			_ = s.cache.Del(ctx, propertyKey(p.ID))
			mu.Lock()
			written++
			mu.Unlock()
		}(p)
	}
	wg.Wait()

	// Only a clean, non-empty sync is trusted to define the full collection.
	pruned := 0
	if firstErr == nil && len(props) > 0 {
		keep := make([]string, len(props))
		for i, p := range props {
			keep[i] = p.ID
		}
		gone, err := s.repo.PruneProperties(ctx, keep)
		if err != nil {
			firstErr = fmt.Errorf("prune properties: %w", err)
		}
		for _, id := range gone {
			_ = s.cache.Del(ctx, propertyKey(id))
		}
		pruned = len(gone)
	}

	// any successful write changes the collection
	if written > 0 || pruned > 0 {
		s.invalidateListing(ctx)
	}
	log.Info().Int("fetched", len(props)).Int("written", written).Int("pruned", pruned).Msg("sync finished")
	return written, firstErr
}

func (s *IngestionService) invalidateListing(ctx context.Context) {
	_ = s.cache.Del(ctx, listingKey)
}

func missOf(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return 404, "not found", true
	case errors.Is(err, upstream.ErrUnauthorized), errors.Is(err, upstream.ErrForbidden):
		return 403, "inactive", true
	}
	return 0, "", false
}

// RemoteCatalog reads the listing straight from the upstream API on every call.
// Pair it with a QueryService cache.
type RemoteCatalog struct{ upstream domain.UpstreamClient }

func NewRemoteCatalog(u domain.UpstreamClient) *RemoteCatalog { return &RemoteCatalog{upstream: u} }

func (c *RemoteCatalog) ListProperties(ctx context.Context) ([]domain.Property, error) {
	raw, err := c.upstream.ListProperties(ctx)
	if err != nil {
		// %v, not %w: an upstream 404 is a broken source, not a missing property.
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return mapProperties(raw), nil
}

func (c *RemoteCatalog) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	all, err := c.ListProperties(ctx)
	if err != nil {
		return domain.Property{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Property{}, domain.ErrNotFound
}
