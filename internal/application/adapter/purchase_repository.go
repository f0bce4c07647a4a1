// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/billing"
	"github.com/card-tracker/backend/internal/domain/entity"
)

// PurchaseFilter defines filter options for listing purchases.
type PurchaseFilter struct {
	UserID    uuid.UUID
	CardID    *uuid.UUID
	Category  string
	Search    string // case-insensitive description match
	StartDate *time.Time
	EndDate   *time.Time
	Tags      []string
}

// PurchasePagination defines pagination options.
type PurchasePagination struct {
	Page  int
	Limit int
}

// InstallmentWindow bounds a scheduled-installment query by due date.
type InstallmentWindow struct {
	From time.Time
	To   time.Time
}

// PurchaseRepository defines the interface for purchase persistence operations.
// A purchase and its installment plan are always written together.
type PurchaseRepository interface {
	// Create persists a purchase with its installment plan in one transaction.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindByID retrieves a purchase with its installments by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)

	// FindByFilter retrieves purchases based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter PurchaseFilter, pagination PurchasePagination) (*entity.PurchaseListResult, error)

	// FindByCard retrieves all purchases on a card with their installments.
	// Used for plan regeneration when the card's cycle days change.
	FindByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.Purchase, error)

	// Update updates the purchase row only, leaving installments untouched.
	Update(ctx context.Context, purchase *entity.Purchase) error

	// ReplacePlan updates the purchase and atomically swaps its installment
	// plan for the given one. Used when an edit changes amounts or dates.
	ReplacePlan(ctx context.Context, purchase *entity.Purchase, plan []entity.Installment) error

	// Delete removes a purchase and its installments from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByIDAndUser checks if a purchase exists for a given ID and user.
	ExistsByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error)

	// FindScheduledInstallments returns installments joined with purchase
	// display fields for the user, optionally scoped to one card, with due
	// dates inside the window. This is the billing engine's input feed.
	FindScheduledInstallments(
		ctx context.Context,
		userID uuid.UUID,
		cardID *uuid.UUID,
		window InstallmentWindow,
	) ([]billing.ScheduledInstallment, error)

	// SumCommittedForMonth returns the total installment amount due in the month.
	SumCommittedForMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) (decimal.Decimal, error)

	// FindInstallmentsDueOn returns installments with the exact due date,
	// joined with purchase and card info, for reminder scanning.
	FindInstallmentsDueOn(ctx context.Context, dueDate time.Time) ([]*entity.DueInstallment, error)
}
