// Package timeline contains the installment timeline use case.
package timeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/billing"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

const (
	// DefaultWindowMonths is the timeline horizon when none is requested.
	DefaultWindowMonths = 12
	// MaxWindowMonths is the maximum timeline horizon.
	MaxWindowMonths = 24
)

// GetTimelineInput represents the input for building the timeline.
type GetTimelineInput struct {
	UserID       uuid.UUID
	CardID       *uuid.UUID // nil aggregates across all cards
	WindowMonths int
	Now          time.Time
}

// GetTimelineOutput represents the output of building the timeline.
type GetTimelineOutput struct {
	Timeline *entity.Timeline
}

// GetTimelineUseCase builds the month-by-month commitment projection.
type GetTimelineUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	cardRepo     adapter.CardRepository
}

// NewGetTimelineUseCase creates a new GetTimelineUseCase instance.
func NewGetTimelineUseCase(
	purchaseRepo adapter.PurchaseRepository,
	cardRepo adapter.CardRepository,
) *GetTimelineUseCase {
	return &GetTimelineUseCase{
		purchaseRepo: purchaseRepo,
		cardRepo:     cardRepo,
	}
}

// Execute builds the timeline for the requested window.
func (uc *GetTimelineUseCase) Execute(ctx context.Context, input GetTimelineInput) (*GetTimelineOutput, error) {
	windowMonths := input.WindowMonths
	if windowMonths < 1 {
		windowMonths = DefaultWindowMonths
	}
	if windowMonths > MaxWindowMonths {
		windowMonths = MaxWindowMonths
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	// Resolve the limit and budget scope: one card or all of them
	totalLimit, totalBudget, err := uc.resolveTerms(ctx, input.UserID, input.CardID)
	if err != nil {
		return nil, err
	}

	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	window := adapter.InstallmentWindow{
		From: windowStart,
		To:   windowStart.AddDate(0, windowMonths, 0),
	}

	installments, err := uc.purchaseRepo.FindScheduledInstallments(ctx, input.UserID, input.CardID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load scheduled installments: %w", err)
	}

	months := billing.BuildTimeline(installments, windowStart, windowMonths, totalLimit)

	return &GetTimelineOutput{
		Timeline: &entity.Timeline{
			Months:          months,
			TotalLimit:      totalLimit,
			TotalBudget:     totalBudget,
			ActivePlanCount: billing.ActivePlanCount(installments, windowStart, windowMonths, now),
		},
	}, nil
}

// resolveTerms returns the credit limit and budget the timeline is judged
// against: a single card's own terms, or the sums across all user cards.
func (uc *GetTimelineUseCase) resolveTerms(
	ctx context.Context,
	userID uuid.UUID,
	cardID *uuid.UUID,
) (limit, budget decimal.Decimal, err error) {
	if cardID != nil {
		card, err := uc.cardRepo.FindByID(ctx, *cardID)
		if err != nil || card.UserID != userID {
			return decimal.Zero, decimal.Zero, domainerror.NewCardError(
				domainerror.ErrCodeCardNotFound,
				"card not found",
				domainerror.ErrCardNotFound,
			)
		}
		return card.CreditLimit, card.BudgetOrZero(), nil
	}

	cards, err := uc.cardRepo.FindByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to load cards: %w", err)
	}

	limit, budget = decimal.Zero, decimal.Zero
	for _, card := range cards {
		limit = limit.Add(card.CreditLimit)
		budget = budget.Add(card.BudgetOrZero())
	}
	return limit, budget, nil
}
