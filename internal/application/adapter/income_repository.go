// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create creates a new income entry in the database.
	Create(ctx context.Context, income *entity.Income) error

	// FindByID retrieves an income entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// FindByUser retrieves all income entries for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error)

	// Update updates an existing income entry in the database.
	Update(ctx context.Context, income *entity.Income) error

	// Delete removes an income entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumForMonth returns total income applying to the month: recurring
	// entries plus one-off entries registered for that month.
	SumForMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) (decimal.Decimal, error)
}
