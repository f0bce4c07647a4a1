// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

// MaxIncomeLabelLength is the maximum allowed length for income labels.
const MaxIncomeLabelLength = 100

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	UserID      uuid.UUID
	Label       string
	Amount      decimal.Decimal
	Month       int
	Year        int
	IsRecurring bool
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if err := validateIncomeFields(input.Label, input.Amount, input.Month, input.Year); err != nil {
		return nil, err
	}

	income := entity.NewIncome(
		input.UserID,
		strings.TrimSpace(input.Label),
		input.Amount,
		input.Month,
		input.Year,
		input.IsRecurring,
	)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return &CreateIncomeOutput{Income: income}, nil
}

// validateIncomeFields applies the shared income validation rules.
func validateIncomeFields(label string, amount decimal.Decimal, month, year int) error {
	if strings.TrimSpace(label) == "" || len(label) > MaxIncomeLabelLength {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeLabelRequired,
			fmt.Sprintf("income label is required and must not exceed %d characters", MaxIncomeLabelLength),
			domainerror.ErrIncomeLabelRequired,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeInvalidAmount,
			"income amount must be positive",
			domainerror.ErrInvalidIncomeAmount,
		)
	}

	if month < 1 || month > 12 || year < 2000 || year > 2200 {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeInvalidMonth,
			"income month must be between 1 and 12 with a plausible year",
			domainerror.ErrInvalidIncomeMonth,
		)
	}

	return nil
}
