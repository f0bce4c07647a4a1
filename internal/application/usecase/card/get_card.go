// Package card contains credit-card configuration use cases.
package card

import (
	"context"

	"github.com/google/uuid"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

// GetCardInput represents the input for fetching a single card.
type GetCardInput struct {
	UserID uuid.UUID
	CardID uuid.UUID
}

// GetCardOutput represents the output of fetching a single card.
type GetCardOutput struct {
	Card *entity.Card
}

// GetCardUseCase handles single card retrieval logic.
type GetCardUseCase struct {
	cardRepo adapter.CardRepository
}

// NewGetCardUseCase creates a new GetCardUseCase instance.
func NewGetCardUseCase(cardRepo adapter.CardRepository) *GetCardUseCase {
	return &GetCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute retrieves the card with an ownership check.
func (uc *GetCardUseCase) Execute(ctx context.Context, input GetCardInput) (*GetCardOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil || card.UserID != input.UserID {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	return &GetCardOutput{Card: card}, nil
}
