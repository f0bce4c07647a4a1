// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
	"github.com/card-tracker/backend/internal/integration/persistence/model"
)

// cardRepository implements the adapter.CardRepository interface.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository instance.
func NewCardRepository(db *gorm.DB) adapter.CardRepository {
	return &cardRepository{
		db: db,
	}
}

// Create creates a new card in the database.
func (r *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	cardModel := model.CardFromEntity(card)
	return r.db.WithContext(ctx).Create(cardModel).Error
}

// FindByID retrieves a card by its ID.
func (r *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	var cardModel model.CardModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCardNotFound
		}
		return nil, result.Error
	}
	return cardModel.ToEntity(), nil
}

// FindByUser retrieves all cards for a given user, ordered by creation date.
func (r *cardRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error) {
	var cardModels []model.CardModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&cardModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cards := make([]*entity.Card, 0, len(cardModels))
	for i := range cardModels {
		cards = append(cards, cardModels[i].ToEntity())
	}
	return cards, nil
}

// Update updates an existing card in the database.
func (r *cardRepository) Update(ctx context.Context, card *entity.Card) error {
	cardModel := model.CardFromEntity(card)
	return r.db.WithContext(ctx).Save(cardModel).Error
}

// Delete removes a card and its purchases from the database. The cascade
// over purchases and installments runs in one transaction.
func (r *cardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var purchaseIDs []uuid.UUID
		if err := tx.Model(&model.PurchaseModel{}).
			Where("card_id = ?", id).
			Pluck("id", &purchaseIDs).Error; err != nil {
			return err
		}

		if len(purchaseIDs) > 0 {
			if err := tx.Delete(&model.InstallmentModel{}, "purchase_id IN ?", purchaseIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.PurchaseModel{}, "id IN ?", purchaseIDs).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.CardModel{}, "id = ?", id).Error
	})
}

// ExistsByIDAndUser checks if a card exists for a given ID and user.
func (r *cardRepository) ExistsByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CardModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// SumCreditLimitByUser returns the sum of credit limits across the user's cards.
func (r *cardRepository) SumCreditLimitByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	result := r.db.WithContext(ctx).
		Model(&model.CardModel{}).
		Select("SUM(credit_limit)").
		Where("user_id = ?", userID).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
