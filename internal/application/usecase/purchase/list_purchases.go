// Package purchase contains purchase-related use cases.
package purchase

import (
	"context"
	"fmt"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
)

const (
	// DefaultPageLimit is the default page size for purchase listings.
	DefaultPageLimit = 20
	// MaxPageLimit is the maximum page size for purchase listings.
	MaxPageLimit = 100
)

// ListPurchasesInput represents the input for listing purchases.
type ListPurchasesInput struct {
	Filter     adapter.PurchaseFilter
	Pagination adapter.PurchasePagination
}

// ListPurchasesOutput represents the output of listing purchases.
type ListPurchasesOutput struct {
	Result *entity.PurchaseListResult
}

// ListPurchasesUseCase handles purchase listing logic.
type ListPurchasesUseCase struct {
	purchaseRepo adapter.PurchaseRepository
}

// NewListPurchasesUseCase creates a new ListPurchasesUseCase instance.
func NewListPurchasesUseCase(purchaseRepo adapter.PurchaseRepository) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{
		purchaseRepo: purchaseRepo,
	}
}

// Execute retrieves purchases matching the filter with pagination.
func (uc *ListPurchasesUseCase) Execute(ctx context.Context, input ListPurchasesInput) (*ListPurchasesOutput, error) {
	pagination := input.Pagination
	if pagination.Page < 1 {
		pagination.Page = 1
	}
	if pagination.Limit < 1 {
		pagination.Limit = DefaultPageLimit
	}
	if pagination.Limit > MaxPageLimit {
		pagination.Limit = MaxPageLimit
	}

	result, err := uc.purchaseRepo.FindByFilter(ctx, input.Filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return &ListPurchasesOutput{Result: result}, nil
}
