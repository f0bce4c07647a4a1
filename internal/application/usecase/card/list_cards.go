// Package card contains credit-card configuration use cases.
package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
)

// ListCardsInput represents the input for listing cards.
type ListCardsInput struct {
	UserID uuid.UUID
}

// ListCardsOutput represents the output of listing cards.
type ListCardsOutput struct {
	Cards []*entity.Card
}

// ListCardsUseCase handles card listing logic.
type ListCardsUseCase struct {
	cardRepo adapter.CardRepository
}

// NewListCardsUseCase creates a new ListCardsUseCase instance.
func NewListCardsUseCase(cardRepo adapter.CardRepository) *ListCardsUseCase {
	return &ListCardsUseCase{
		cardRepo: cardRepo,
	}
}

// Execute retrieves all cards for the user.
func (uc *ListCardsUseCase) Execute(ctx context.Context, input ListCardsInput) (*ListCardsOutput, error) {
	cards, err := uc.cardRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return &ListCardsOutput{Cards: cards}, nil
}
