package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"property_listing/internal/app"
	"property_listing/internal/domain"
)

// ---- fakes ----

type fakeCatalog struct {
	items []domain.Property
	err   error
	calls int
}

func (f *fakeCatalog) ListProperties(ctx context.Context) ([]domain.Property, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Property, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeCatalog) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	f.calls++
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Property{}, domain.ErrNotFound
}

type fakeRepo struct {
	fakeCatalog
	mu       sync.Mutex
	upserted map[string]domain.Property
	failIDs  map[string]bool
	misses   []string
	stored   []string // ids already present before the sync
	kept     []string
	pruneErr error
}

func (f *fakeRepo) UpsertProperty(ctx context.Context, p domain.Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[p.ID] {
		return errors.New("boom")
	}
	if f.upserted == nil {
		f.upserted = map[string]domain.Property{}
	}
	f.upserted[p.ID] = p
	return nil
}

func (f *fakeRepo) PruneProperties(ctx context.Context, keep []string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kept = append([]string(nil), keep...)
	if f.pruneErr != nil {
		return nil, f.pruneErr
	}
	want := map[string]bool{}
	for _, id := range keep {
		want[id] = true
	}
	var gone []string
	for _, id := range f.stored {
		if !want[id] {
			gone = append(gone, id)
		}
	}
	return gone, nil
}

func (f *fakeRepo) LogMiss(ctx context.Context, source string, status int, reason string) error {
	f.misses = append(f.misses, reason)
	return nil
}

type fakeCache struct {
	mu    sync.Mutex
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.Property:
		*d = v.(domain.Property)
	case *[]domain.Property:
		src := v.([]domain.Property)
		*d = append([]domain.Property(nil), src...)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

var sample = []domain.Property{
	{ID: "a", Name: "Pool Villa", Rating: 4.9, Categories: []string{"Pool Villa"}},
	{ID: "b", Name: "Cabin", Rating: 4.5, Categories: []string{"Mountain Cabin"}},
	{ID: "c", Name: "Beach", Rating: 4.95, Categories: []string{"Beachfront", "Villa"}},
}

// ---- tests ----

func TestListProperties_FiltersInOrder(t *testing.T) {
	q := app.NewQueryService(&fakeCatalog{items: sample}, nil, time.Minute)

	out, err := q.ListProperties(context.Background(), domain.NewFilterSet("Top Villa"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out.Total != 2 || out.Items[0].ID != "a" || out.Items[1].ID != "c" {
		t.Fatalf("unexpected listing: %+v", out)
	}
	if len(out.Active) != 1 || out.Active[0] != "Top Villa" {
		t.Fatalf("active: %v", out.Active)
	}
	if len(out.Presets) != len(domain.PresetFilters) {
		t.Fatalf("presets: %v", out.Presets)
	}

	all, _ := q.ListProperties(context.Background(), domain.FilterSet{})
	if all.Total != len(sample) {
		t.Fatalf("empty set should keep all, got %d", all.Total)
	}

	none, _ := q.ListProperties(context.Background(), domain.NewFilterSet("Top Villa", "Cabin"))
	if none.Total != 0 || none.Items == nil {
		t.Fatalf("expected empty non-nil items, got %+v", none)
	}
}

func TestListProperties_CacheMissThenHit(t *testing.T) {
	cat := &fakeCatalog{items: sample}
	cache := &fakeCache{}
	q := app.NewQueryService(cat, cache, 10*time.Minute)

	if _, err := q.ListProperties(context.Background(), domain.FilterSet{}); err != nil {
		t.Fatalf("err: %v", err)
	}
	// Change catalog to ensure second read comes from cache
	cat.items = nil

	out, err := q.ListProperties(context.Background(), domain.NewFilterSet("Cabin"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if cat.calls != 1 {
		t.Fatalf("expected 1 catalog call, got %d", cat.calls)
	}
	if out.Total != 1 || out.Items[0].ID != "b" {
		t.Fatalf("expected cached cabin, got %+v", out.Items)
	}
}

func TestListProperties_CatalogError(t *testing.T) {
	q := app.NewQueryService(&fakeCatalog{err: errors.New("down")}, &fakeCache{}, time.Minute)
	if _, err := q.ListProperties(context.Background(), domain.FilterSet{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGetProperty(t *testing.T) {
	cat := &fakeCatalog{items: sample}
	cache := &fakeCache{}
	q := app.NewQueryService(cat, cache, time.Minute)

	p, err := q.GetProperty(context.Background(), "b")
	if err != nil || p.Name != "Cabin" {
		t.Fatalf("get b: %+v, %v", p, err)
	}
	cat.items = nil
	if p, err := q.GetProperty(context.Background(), "b"); err != nil || p.Name != "Cabin" {
		t.Fatalf("expected cached b: %+v, %v", p, err)
	}
	if _, err := q.GetProperty(context.Background(), "zzz"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
