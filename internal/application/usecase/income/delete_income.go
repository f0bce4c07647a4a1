// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/card-tracker/backend/internal/application/adapter"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	UserID   uuid.UUID
	IncomeID uuid.UUID
}

// DeleteIncomeOutput represents the output of income deletion.
type DeleteIncomeOutput struct {
	Message string
}

// DeleteIncomeUseCase handles income deletion logic.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	// Find income and verify ownership
	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil || income.UserID != input.UserID {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeNotFound,
			"income not found",
			domainerror.ErrIncomeNotFound,
		)
	}

	if err := uc.incomeRepo.Delete(ctx, input.IncomeID); err != nil {
		return nil, fmt.Errorf("failed to delete income: %w", err)
	}

	return &DeleteIncomeOutput{Message: "Income deleted successfully"}, nil
}
