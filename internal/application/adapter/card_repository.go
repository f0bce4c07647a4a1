// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/entity"
)

// CardRepository defines the interface for credit card persistence operations.
type CardRepository interface {
	// Create creates a new card in the database.
	Create(ctx context.Context, card *entity.Card) error

	// FindByID retrieves a card by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error)

	// FindByUser retrieves all cards for a given user, ordered by creation date.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error)

	// Update updates an existing card in the database.
	Update(ctx context.Context, card *entity.Card) error

	// Delete removes a card and its purchases from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByIDAndUser checks if a card exists for a given ID and user.
	ExistsByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error)

	// SumCreditLimitByUser returns the sum of credit limits across the user's cards.
	SumCreditLimitByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
