// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QuotaResult reports the outcome of a quota consumption attempt.
type QuotaResult struct {
	Allowed   bool
	Remaining int
	ResetsAt  time.Time
}

// QuotaService defines the interface for per-user operation quotas, backed
// by a Redis fixed window counter.
type QuotaService interface {
	// Consume attempts to use one unit of the named quota for the user.
	Consume(ctx context.Context, userID uuid.UUID, name string) (*QuotaResult, error)
}
