package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrUnavailable means the record source itself could not be read.
	ErrUnavailable = errors.New("source unavailable")
)

// Catalog is the read side every listing source implements
// (static sample, MySQL, upstream API).
type Catalog interface {
	ListProperties(ctx context.Context) ([]Property, error)
	GetProperty(ctx context.Context, id string) (Property, error)
}

type PropertyRepository interface {
	Catalog

	// Write paths
	UpsertProperty(ctx context.Context, p Property) error
	LogMiss(ctx context.Context, source string, status int, reason string) error
	// PruneProperties deletes every record whose id is not in keep and
	// returns the deleted ids.
	PruneProperties(ctx context.Context, keep []string) ([]string, error)
}

type UpstreamClient interface {
	ListProperties(ctx context.Context) ([]map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
