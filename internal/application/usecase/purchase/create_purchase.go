// Package purchase contains purchase-related use cases. Purchases own their
// installment plan: every write that touches amount, date, count or card
// regenerates the plan through the billing engine and persists both
// atomically.
package purchase

import (
	"context"
	"errors"
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

const (
	// MaxDescriptionLength is the maximum allowed length for purchase descriptions.
	MaxDescriptionLength = 255
	// MaxInstallmentCount is the maximum accepted installment count.
	MaxInstallmentCount = 60
	// MaxTags is the maximum number of tags per purchase.
	MaxTags = 10
)

// CreatePurchaseInput represents the input for purchase creation.
type CreatePurchaseInput struct {
	UserID           uuid.UUID
	CardID           uuid.UUID
	CategoryID       *uuid.UUID
	Description      string
	TotalAmount      decimal.Decimal
	InstallmentCount int
	PurchaseDate     time.Time
	Tags             []string
}

// CreatePurchaseOutput represents the output of purchase creation.
type CreatePurchaseOutput struct {
	Purchase *entity.Purchase
}

// CreatePurchaseUseCase handles purchase creation logic.
type CreatePurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	cardRepo     adapter.CardRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.Cache
}

// NewCreatePurchaseUseCase creates a new CreatePurchaseUseCase instance.
func NewCreatePurchaseUseCase(
	purchaseRepo adapter.PurchaseRepository,
	cardRepo adapter.CardRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.Cache,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		cardRepo:     cardRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the purchase creation.
func (uc *CreatePurchaseUseCase) Execute(ctx context.Context, input CreatePurchaseInput) (*CreatePurchaseOutput, error) {
	if err := validatePurchaseFields(input.Description, input.InstallmentCount, input.PurchaseDate, input.Tags); err != nil {
		return nil, err
	}

	// Find card and verify ownership
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

	// Generate the installment plan from the card's cycle configuration
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

	purchase := entity.NewPurchase(
		input.UserID,
		input.CardID,
		input.CategoryID,
		strings.TrimSpace(input.Description),
		input.TotalAmount,
		input.InstallmentCount,
		input.PurchaseDate,
		normalizeTags(input.Tags),
	)
	purchase.AttachPlan(plan)

	if err := uc.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	uc.invalidateSimulations(ctx, input.UserID)

	return &CreatePurchaseOutput{Purchase: purchase}, nil
}

// invalidateSimulations drops cached simulation results that no longer
// reflect the user's commitments. Failures are logged, never propagated.
func (uc *CreatePurchaseUseCase) invalidateSimulations(ctx context.Context, userID uuid.UUID) {
	if err := uc.cache.DeleteByPrefix(ctx, "simulation:"+userID.String()); err != nil {
		slog.Warn("Failed to invalidate simulation cache after purchase write",
			"userID", userID,
			"error", err,
		)
	}
}

// validatePurchaseFields applies the shared purchase validation rules.
// Amount and count range checks live in the billing engine; this covers the
// presentation-level fields on top of them.
func validatePurchaseFields(description string, installmentCount int, purchaseDate time.Time, tags []string) error {
	if strings.TrimSpace(description) == "" || len(description) > MaxDescriptionLength {
		return domainerror.NewPurchaseError(
			domainerror.ErrCodePurchaseMissingFields,
			fmt.Sprintf("description is required and must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrPurchaseDescriptionRequired,
		)
	}

	if purchaseDate.IsZero() {
		return domainerror.NewPurchaseError(
			domainerror.ErrCodePurchaseMissingFields,
			"purchase date is required",
			domainerror.ErrPurchaseDateRequired,
		)
	}

	if installmentCount > MaxInstallmentCount {
		return domainerror.NewPurchaseError(
			domainerror.ErrCodePurchaseInvalidInstallments,
			fmt.Sprintf("installment count must not exceed %d", MaxInstallmentCount),
			domainerror.ErrInvalidInstallmentCount,
		)
	}

	if len(tags) > MaxTags {
		return domainerror.NewPurchaseError(
			domainerror.ErrCodePurchaseTooManyTags,
			fmt.Sprintf("at most %d tags are allowed", MaxTags),
			domainerror.ErrTooManyTags,
		)
	}

	return nil
}

// normalizeTags trims, lowercases and deduplicates purchase tags.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	return normalized
}

// mapPlanError translates billing engine validation errors into the
// purchase error taxonomy.
func mapPlanError(err error) error {
	switch {
	case errors.Is(err, domainerror.ErrNonPositiveAmount):
		return domainerror.NewPurchaseError(
			domainerror.ErrCodePurchaseInvalidAmount,
			"total amount must be positive",
			err,
		)
	case errors.Is(err, domainerror.ErrInvalidInstallmentCount):
		return domainerror.NewPurchaseError(
			domainerror.ErrCodePurchaseInvalidInstallments,
			"installment count must be at least 1",
			err,
		)
	default:
		return fmt.Errorf("failed to generate installment plan: %w", err)
	}
}
