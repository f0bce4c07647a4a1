// Package purchase contains purchase-related use cases.
package purchase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/billing"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

// UpdatePurchaseInput represents the input for purchase update.
type UpdatePurchaseInput struct {
	UserID           uuid.UUID
	PurchaseID       uuid.UUID
	CardID           uuid.UUID
	CategoryID       *uuid.UUID
	Description      string
	TotalAmount      decimal.Decimal
	InstallmentCount int
	PurchaseDate     time.Time
	Tags             []string
}

// UpdatePurchaseOutput represents the output of purchase update.
type UpdatePurchaseOutput struct {
	Purchase        *entity.Purchase
	PlanRegenerated bool
}

// UpdatePurchaseUseCase handles purchase update logic. When the edit changes
// any plan-determining field the whole installment sequence is regenerated
// and swapped atomically; a pure display edit leaves the plan untouched.
type UpdatePurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	cardRepo     adapter.CardRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.Cache
}

// NewUpdatePurchaseUseCase creates a new UpdatePurchaseUseCase instance.
func NewUpdatePurchaseUseCase(
	purchaseRepo adapter.PurchaseRepository,
	cardRepo adapter.CardRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.Cache,
) *UpdatePurchaseUseCase {
	return &UpdatePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		cardRepo:     cardRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the purchase update.
func (uc *UpdatePurchaseUseCase) Execute(ctx context.Context, input UpdatePurchaseInput) (*UpdatePurchaseOutput, error) {
	// Find purchase and verify ownership
	purchase, err := uc.purchaseRepo.FindByID(ctx, input.PurchaseID)
	if err != nil || purchase.UserID != input.UserID {
		return nil, domainerror.NewPurchaseError(
			domainerror.ErrCodePurchaseNotFound,
			"purchase not found",
			domainerror.ErrPurchaseNotFound,
		)
	}

	if err := validatePurchaseFields(input.Description, input.InstallmentCount, input.PurchaseDate, input.Tags); err != nil {
		return nil, err
	}

	// Find target card and verify ownership (the purchase may be moved)
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil || card.UserID != input.UserID {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	// Validate category ownership if provided
	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil || category.UserID != input.UserID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
	}

	planChanged := !purchase.TotalAmount.Equal(input.TotalAmount) ||
		purchase.InstallmentCount != input.InstallmentCount ||
		!purchase.PurchaseDate.Equal(input.PurchaseDate) ||
		purchase.CardID != input.CardID

	purchase.CardID = input.CardID
	purchase.CategoryID = input.CategoryID
	purchase.Description = strings.TrimSpace(input.Description)
	purchase.TotalAmount = input.TotalAmount
	purchase.InstallmentCount = input.InstallmentCount
	purchase.PurchaseDate = input.PurchaseDate
	purchase.Tags = normalizeTags(input.Tags)
	purchase.UpdatedAt = time.Now().UTC()

	if planChanged {
		plan, err := billing.GeneratePlan(
			input.TotalAmount,
			input.InstallmentCount,
			input.PurchaseDate,
			card.ClosingDay,
			card.DueDay,
		)
		if err != nil {
			return nil, mapPlanError(err)
		}

		if err := uc.purchaseRepo.ReplacePlan(ctx, purchase, plan); err != nil {
			return nil, fmt.Errorf("failed to replace installment plan: %w", err)
		}
		purchase.AttachPlan(plan)
	} else {
		if err := uc.purchaseRepo.Update(ctx, purchase); err != nil {
			return nil, fmt.Errorf("failed to update purchase: %w", err)
		}
	}

	uc.invalidateSimulations(ctx, input.UserID)

	return &UpdatePurchaseOutput{
		Purchase:        purchase,
		PlanRegenerated: planChanged,
	}, nil
}

func (uc *UpdatePurchaseUseCase) invalidateSimulations(ctx context.Context, userID uuid.UUID) {
	_ = uc.cache.DeleteByPrefix(ctx, "simulation:"+userID.String())
}
