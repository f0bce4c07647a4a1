// Package purchase contains purchase-related use cases.
package purchase

import (
	"context"

	"github.com/google/uuid"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

// GetPurchaseInput represents the input for fetching a single purchase.
type GetPurchaseInput struct {
	UserID     uuid.UUID
	PurchaseID uuid.UUID
}

// GetPurchaseOutput represents the output of fetching a single purchase.
type GetPurchaseOutput struct {
	Purchase *entity.Purchase
}

// GetPurchaseUseCase handles single purchase retrieval logic.
type GetPurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
}

// NewGetPurchaseUseCase creates a new GetPurchaseUseCase instance.
func NewGetPurchaseUseCase(purchaseRepo adapter.PurchaseRepository) *GetPurchaseUseCase {
	return &GetPurchaseUseCase{
		purchaseRepo: purchaseRepo,
	}
}

// Execute retrieves the purchase with its installments, with an ownership check.
func (uc *GetPurchaseUseCase) Execute(ctx context.Context, input GetPurchaseInput) (*GetPurchaseOutput, error) {
	purchase, err := uc.purchaseRepo.FindByID(ctx, input.PurchaseID)
	if err != nil || purchase.UserID != input.UserID {
		return nil, domainerror.NewPurchaseError(
			domainerror.ErrCodePurchaseNotFound,
			"purchase not found",
			domainerror.ErrPurchaseNotFound,
		)
	}

	return &GetPurchaseOutput{Purchase: purchase}, nil
}
