// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
)

// ListIncomesInput represents the input for listing income entries.
type ListIncomesInput struct {
	UserID uuid.UUID
}

// ListIncomesOutput represents the output of listing income entries.
type ListIncomesOutput struct {
	Incomes []*entity.Income
}

// ListIncomesUseCase handles income listing logic.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute retrieves all income entries for the user.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	incomes, err := uc.incomeRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	return &ListIncomesOutput{Incomes: incomes}, nil
}
