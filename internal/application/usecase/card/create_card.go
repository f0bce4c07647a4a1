// Package card contains credit-card configuration use cases.
package card

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

// MaxCardNameLength is the maximum allowed length for card names.
const MaxCardNameLength = 100

// CreateCardInput represents the input for card creation.
type CreateCardInput struct {
	UserID         uuid.UUID
	Name           string
	LastFourDigits string
	ClosingDay     int
	DueDay         int
	CreditLimit    decimal.Decimal
	MonthlyBudget  *decimal.Decimal
}

// CreateCardOutput represents the output of card creation.
type CreateCardOutput struct {
	Card *entity.Card
}

// CreateCardUseCase handles card creation logic.
type CreateCardUseCase struct {
	cardRepo adapter.CardRepository
}

// NewCreateCardUseCase creates a new CreateCardUseCase instance.
func NewCreateCardUseCase(cardRepo adapter.CardRepository) *CreateCardUseCase {
	return &CreateCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the card creation.
func (uc *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*CreateCardOutput, error) {
	if err := validateCardFields(input.Name, input.ClosingDay, input.DueDay, input.CreditLimit, input.MonthlyBudget); err != nil {
		return nil, err
	}

	card := entity.NewCard(
		input.UserID,
		strings.TrimSpace(input.Name),
		input.LastFourDigits,
		input.ClosingDay,
		input.DueDay,
		input.CreditLimit,
		input.MonthlyBudget,
	)

	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	return &CreateCardOutput{Card: card}, nil
}

// validateCardFields applies the shared card validation rules.
func validateCardFields(name string, closingDay, dueDay int, creditLimit decimal.Decimal, monthlyBudget *decimal.Decimal) error {
	if strings.TrimSpace(name) == "" || len(name) > MaxCardNameLength {
		return domainerror.NewCardError(
			domainerror.ErrCodeCardNameRequired,
			fmt.Sprintf("card name is required and must not exceed %d characters", MaxCardNameLength),
			domainerror.ErrCardNameRequired,
		)
	}

	if closingDay < 1 || closingDay > 31 || dueDay < 1 || dueDay > 31 {
		return domainerror.NewCardError(
			domainerror.ErrCodeCardInvalidDays,
			"closing day and due day must be between 1 and 31",
			domainerror.ErrInvalidClosingDay,
		)
	}

	if !creditLimit.IsPositive() {
		return domainerror.NewCardError(
			domainerror.ErrCodeCardInvalidLimit,
			"credit limit must be positive",
			domainerror.ErrInvalidCreditLimit,
		)
	}

	if monthlyBudget != nil && monthlyBudget.IsNegative() {
		return domainerror.NewCardError(
			domainerror.ErrCodeCardInvalidBudget,
			"monthly budget must not be negative",
			domainerror.ErrInvalidMonthlyBudget,
		)
	}

	return nil
}
