// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/card-tracker/backend/internal/application/adapter"
)

const (
	// defaultQuotaLimit is the number of allowed uses per window.
	defaultQuotaLimit = 20
	// defaultQuotaWindow is the fixed window duration.
	defaultQuotaWindow = 10 * time.Minute
)

// redisQuotaService implements the adapter.QuotaService interface with a
// fixed window counter per user and quota name.
type redisQuotaService struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisQuotaService creates a new Redis-backed quota service with default limits.
func NewRedisQuotaService(client *redis.Client) adapter.QuotaService {
	return &redisQuotaService{
		client: client,
		limit:  defaultQuotaLimit,
		window: defaultQuotaWindow,
	}
}

// NewRedisQuotaServiceWithConfig creates a quota service with custom limits.
func NewRedisQuotaServiceWithConfig(client *redis.Client, limit int, window time.Duration) adapter.QuotaService {
	return &redisQuotaService{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Consume attempts to use one unit of the named quota for the user. The
// counter expires with the window, so the first consumer of a fresh window
// sets the TTL.
func (s *redisQuotaService) Consume(ctx context.Context, userID uuid.UUID, name string) (*adapter.QuotaResult, error) {
	key := fmt.Sprintf("quota:%s:%s", name, userID)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to increment quota counter: %w", err)
	}

	if count == 1 {
		if err := s.client.Expire(ctx, key, s.window).Err(); err != nil {
			return nil, fmt.Errorf("failed to set quota window: %w", err)
		}
	}

	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read quota window: %w", err)
	}
	if ttl < 0 {
		ttl = s.window
	}
	resetsAt := time.Now().UTC().Add(ttl)

	if count > int64(s.limit) {
		return &adapter.QuotaResult{
			Allowed:   false,
			Remaining: 0,
			ResetsAt:  resetsAt,
		}, nil
	}

	return &adapter.QuotaResult{
		Allowed:   true,
		Remaining: s.limit - int(count),
		ResetsAt:  resetsAt,
	}, nil
}
