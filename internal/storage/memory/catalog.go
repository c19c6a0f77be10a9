// Package memory serves the static sample listing.
package memory

import (
	"context"

	"property_listing/internal/domain"
)

type Catalog struct{ items []domain.Property }

// New returns a catalog over items. With no items it serves the sample.
func New(items ...domain.Property) *Catalog {
	if len(items) == 0 {
		items = sample
	}
	return &Catalog{items: cloneAll(items)}
}

// Sample returns a fresh copy of the built-in listing.
func Sample() []domain.Property { return cloneAll(sample) }

func (c *Catalog) ListProperties(ctx context.Context) ([]domain.Property, error) {
	return cloneAll(c.items), nil
}

func (c *Catalog) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	for _, p := range c.items {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Property{}, domain.ErrNotFound
}

func cloneAll(in []domain.Property) []domain.Property {
	out := make([]domain.Property, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
