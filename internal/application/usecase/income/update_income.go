// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

// UpdateIncomeInput represents the input for income update.
type UpdateIncomeInput struct {
	UserID      uuid.UUID
	IncomeID    uuid.UUID
	Label       string
	Amount      decimal.Decimal
	Month       int
	Year        int
	IsRecurring bool
}

// UpdateIncomeOutput represents the output of income update.
type UpdateIncomeOutput struct {
	Income *entity.Income
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income update.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	// Find income and verify ownership
	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil || income.UserID != input.UserID {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeNotFound,
			"income not found",
			domainerror.ErrIncomeNotFound,
		)
	}

	if err := validateIncomeFields(input.Label, input.Amount, input.Month, input.Year); err != nil {
		return nil, err
	}

	income.Label = strings.TrimSpace(input.Label)
	income.Amount = input.Amount
	income.Month = input.Month
	income.Year = input.Year
	income.IsRecurring = input.IsRecurring
	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	return &UpdateIncomeOutput{Income: income}, nil
}
