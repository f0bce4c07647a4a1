// Package purchase contains purchase-related use cases.
package purchase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/card-tracker/backend/internal/application/adapter"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

// DeletePurchaseInput represents the input for purchase deletion.
type DeletePurchaseInput struct {
	UserID     uuid.UUID
	PurchaseID uuid.UUID
}

// DeletePurchaseOutput represents the output of purchase deletion.
type DeletePurchaseOutput struct {
	Message string
}

// DeletePurchaseUseCase handles purchase deletion logic. Deleting a purchase
// removes its remaining installments, immediately releasing committed limit.
type DeletePurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	cache        adapter.Cache
}

// NewDeletePurchaseUseCase creates a new DeletePurchaseUseCase instance.
func NewDeletePurchaseUseCase(purchaseRepo adapter.PurchaseRepository, cache adapter.Cache) *DeletePurchaseUseCase {
	return &DeletePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		cache:        cache,
	}
}

// Execute performs the purchase deletion.
func (uc *DeletePurchaseUseCase) Execute(ctx context.Context, input DeletePurchaseInput) (*DeletePurchaseOutput, error) {
	exists, err := uc.purchaseRepo.ExistsByIDAndUser(ctx, input.PurchaseID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check purchase existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewPurchaseError(
			domainerror.ErrCodePurchaseNotFound,
			"purchase not found",
			domainerror.ErrPurchaseNotFound,
		)
	}

	if err := uc.purchaseRepo.Delete(ctx, input.PurchaseID); err != nil {
		return nil, fmt.Errorf("failed to delete purchase: %w", err)
	}

	_ = uc.cache.DeleteByPrefix(ctx, "simulation:"+input.UserID.String())

	return &DeletePurchaseOutput{Message: "Purchase deleted successfully"}, nil
}
