// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
	"github.com/card-tracker/backend/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income entry in the database.
func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	return r.db.WithContext(ctx).Create(incomeModel).Error
}

// FindByID retrieves an income entry by its ID.
func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// FindByUser retrieves all income entries for a given user.
func (r *incomeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.Income, 0, len(incomeModels))
	for i := range incomeModels {
		incomes = append(incomes, incomeModels[i].ToEntity())
	}
	return incomes, nil
}

// Update updates an existing income entry in the database.
func (r *incomeRepository) Update(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	return r.db.WithContext(ctx).Save(incomeModel).Error
}

// Delete removes an income entry from the database.
func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", id).Error
}

// SumForMonth returns total income applying to the month: recurring entries
// that started on or before it plus one-off entries registered for it.
func (r *incomeRepository) SumForMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	result := r.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Select("SUM(amount)").
		Where("user_id = ?", userID).
		Where(
			r.db.Where("is_recurring = ? AND (year < ? OR (year = ? AND month <= ?))", true, year, year, int(month)).
				Or("is_recurring = ? AND year = ? AND month = ?", false, year, int(month)),
		).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
