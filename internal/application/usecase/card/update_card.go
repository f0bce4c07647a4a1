// Package card contains credit-card configuration use cases.
package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/billing"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

// UpdateCardInput represents the input for card update.
type UpdateCardInput struct {
	UserID         uuid.UUID
	CardID         uuid.UUID
	Name           string
	LastFourDigits string
	ClosingDay     int
	DueDay         int
	CreditLimit    decimal.Decimal
	MonthlyBudget  *decimal.Decimal
}

// UpdateCardOutput represents the output of card update.
type UpdateCardOutput struct {
	Card             *entity.Card
	RegeneratedPlans int
}

// UpdateCardUseCase handles card update logic. Changing the closing or due
// day regenerates the installment plan of every purchase on the card, since
// all due dates derive from those two days.
type UpdateCardUseCase struct {
	cardRepo     adapter.CardRepository
	purchaseRepo adapter.PurchaseRepository
	cache        adapter.Cache
}

// NewUpdateCardUseCase creates a new UpdateCardUseCase instance.
func NewUpdateCardUseCase(
	cardRepo adapter.CardRepository,
	purchaseRepo adapter.PurchaseRepository,
	cache adapter.Cache,
) *UpdateCardUseCase {
	return &UpdateCardUseCase{
		cardRepo:     cardRepo,
		purchaseRepo: purchaseRepo,
		cache:        cache,
	}
}

// Execute performs the card update.
func (uc *UpdateCardUseCase) Execute(ctx context.Context, input UpdateCardInput) (*UpdateCardOutput, error) {
	// Find card and verify ownership
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil || card.UserID != input.UserID {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	if err := validateCardFields(input.Name, input.ClosingDay, input.DueDay, input.CreditLimit, input.MonthlyBudget); err != nil {
		return nil, err
	}

	cycleChanged := card.ClosingDay != input.ClosingDay || card.DueDay != input.DueDay

	card.Name = strings.TrimSpace(input.Name)
	card.LastFourDigits = input.LastFourDigits
	card.ClosingDay = input.ClosingDay
	card.DueDay = input.DueDay
	card.CreditLimit = input.CreditLimit
	card.MonthlyBudget = input.MonthlyBudget
	card.UpdatedAt = time.Now().UTC()

	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	regenerated := 0
	if cycleChanged {
		regenerated, err = uc.regeneratePlans(ctx, card)
		if err != nil {
			return nil, err
		}
	}

	// Cached simulations were computed against the old configuration
	if err := uc.cache.DeleteByPrefix(ctx, "simulation:"+input.UserID.String()); err != nil {
		slog.Warn("Failed to invalidate simulation cache after card update",
			"cardID", card.ID,
			"error", err,
		)
	}

	return &UpdateCardOutput{
		Card:             card,
		RegeneratedPlans: regenerated,
	}, nil
}

// regeneratePlans rebuilds the installment plan of every purchase on the
// card from its original purchase date and total amount.
func (uc *UpdateCardUseCase) regeneratePlans(ctx context.Context, card *entity.Card) (int, error) {
	purchases, err := uc.purchaseRepo.FindByCard(ctx, card.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to load purchases for plan regeneration: %w", err)
	}

	for _, purchase := range purchases {
		plan, err := billing.GeneratePlan(
			purchase.TotalAmount,
			purchase.InstallmentCount,
			purchase.PurchaseDate,
			card.ClosingDay,
			card.DueDay,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to regenerate plan for purchase %s: %w", purchase.ID, err)
		}

		if err := uc.purchaseRepo.ReplacePlan(ctx, purchase, plan); err != nil {
			return 0, fmt.Errorf("failed to replace plan for purchase %s: %w", purchase.ID, err)
		}
	}

	return len(purchases), nil
}
