// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// Cache defines the interface for short-lived result caching (Redis-backed
// in production). Values are opaque byte slices; callers own serialization.
type Cache interface {
	// Get retrieves a cached value. Returns (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a single key.
	Delete(ctx context.Context, key string) error

	// DeleteByPrefix removes all keys with the given prefix. Used to
	// invalidate a user's simulation results when their data changes.
	DeleteByPrefix(ctx context.Context, prefix string) error
}
