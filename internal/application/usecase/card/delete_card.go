// Package card contains credit-card configuration use cases.
package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/card-tracker/backend/internal/application/adapter"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

// DeleteCardInput represents the input for card deletion.
type DeleteCardInput struct {
	UserID uuid.UUID
	CardID uuid.UUID
}

// DeleteCardOutput represents the output of card deletion.
type DeleteCardOutput struct {
	Message string
}

// DeleteCardUseCase handles card deletion logic. Deleting a card cascades to
// its purchases and installments.
type DeleteCardUseCase struct {
	cardRepo adapter.CardRepository
	cache    adapter.Cache
}

// NewDeleteCardUseCase creates a new DeleteCardUseCase instance.
func NewDeleteCardUseCase(cardRepo adapter.CardRepository, cache adapter.Cache) *DeleteCardUseCase {
	return &DeleteCardUseCase{
		cardRepo: cardRepo,
		cache:    cache,
	}
}

// Execute performs the card deletion.
func (uc *DeleteCardUseCase) Execute(ctx context.Context, input DeleteCardInput) (*DeleteCardOutput, error) {
	exists, err := uc.cardRepo.ExistsByIDAndUser(ctx, input.CardID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check card existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	if err := uc.cardRepo.Delete(ctx, input.CardID); err != nil {
		return nil, fmt.Errorf("failed to delete card: %w", err)
	}

	if err := uc.cache.DeleteByPrefix(ctx, "simulation:"+input.UserID.String()); err != nil {
		slog.Warn("Failed to invalidate simulation cache after card deletion",
			"cardID", input.CardID,
			"error", err,
		)
	}

	return &DeleteCardOutput{Message: "Card deleted successfully"}, nil
}
