// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/billing"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
	"github.com/card-tracker/backend/internal/integration/persistence/model"
)

// purchaseRepository implements the adapter.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository instance.
func NewPurchaseRepository(db *gorm.DB) adapter.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create persists a purchase together with its installment plan. The plan
// rows ride along on the model association so gorm writes everything in one
// transaction.
func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseModel := model.PurchaseFromEntity(purchase)
	return r.db.WithContext(ctx).Create(purchaseModel).Error
}

// FindByID retrieves a purchase with its installments by ID.
func (r *purchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchaseModel model.PurchaseModel
	result := r.db.WithContext(ctx).
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Where("id = ?", id).
		First(&purchaseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPurchaseNotFound
		}
		return nil, result.Error
	}
	return purchaseModel.ToEntity(), nil
}

// FindByFilter retrieves purchases based on filter criteria with pagination.
func (r *purchaseRepository) FindByFilter(
	ctx context.Context,
	filter adapter.PurchaseFilter,
	pagination adapter.PurchasePagination,
) (*entity.PurchaseListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.PurchaseModel{}).
		Where("purchases.user_id = ?", filter.UserID)

	if filter.CardID != nil {
		query = query.Where("purchases.card_id = ?", *filter.CardID)
	}
	if filter.Category != "" {
		query = query.
			Joins("JOIN categories ON categories.id = purchases.category_id").
			Where("LOWER(categories.name) = LOWER(?)", filter.Category)
	}
	if filter.Search != "" {
		query = query.Where("purchases.description ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.StartDate != nil {
		query = query.Where("purchases.purchase_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("purchases.purchase_date <= ?", *filter.EndDate)
	}
	if len(filter.Tags) > 0 {
		query = query.Where("purchases.tags && ?", pq.StringArray(filter.Tags))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit

	var purchaseModels []model.PurchaseModel
	result := query.
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Order("purchases.purchase_date DESC, purchases.created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&purchaseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for i := range purchaseModels {
		purchases = append(purchases, purchaseModels[i].ToEntity())
	}

	return &entity.PurchaseListResult{
		Purchases:  purchases,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(pagination.Limit))),
	}, nil
}

// FindByCard retrieves all purchases on a card with their installments.
func (r *purchaseRepository) FindByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.Purchase, error) {
	var purchaseModels []model.PurchaseModel
	result := r.db.WithContext(ctx).
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Where("card_id = ?", cardID).
		Order("purchase_date ASC").
		Find(&purchaseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for i := range purchaseModels {
		purchases = append(purchases, purchaseModels[i].ToEntity())
	}
	return purchases, nil
}

// Update updates the purchase row only, leaving installments untouched.
func (r *purchaseRepository) Update(ctx context.Context, purchase *entity.Purchase) error {
	purchaseModel := model.PurchaseFromEntity(purchase)
	purchaseModel.Installments = nil
	return r.db.WithContext(ctx).
		Omit("Installments").
		Save(purchaseModel).Error
}

// ReplacePlan updates the purchase and swaps its installment plan in a
// single transaction. The old plan is deleted wholesale; installments are
// never edited individually.
func (r *purchaseRepository) ReplacePlan(ctx context.Context, purchase *entity.Purchase, plan []entity.Installment) error {
	purchase.AttachPlan(plan)
	purchaseModel := model.PurchaseFromEntity(purchase)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_id = ?", purchase.ID).
			Delete(&model.InstallmentModel{}).Error; err != nil {
			return err
		}

		installments := purchaseModel.Installments
		purchaseModel.Installments = nil
		if err := tx.Omit("Installments").Save(purchaseModel).Error; err != nil {
			return err
		}

		return tx.Create(installments).Error
	})
}

// Delete removes a purchase and its installments from the database.
func (r *purchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_id = ?", id).
			Delete(&model.InstallmentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PurchaseModel{}, "id = ?", id).Error
	})
}

// ExistsByIDAndUser checks if a purchase exists for a given ID and user.
func (r *purchaseRepository) ExistsByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// scheduledInstallmentRow is the scan target for the engine feed query.
type scheduledInstallmentRow struct {
	PurchaseID        uuid.UUID
	Description       string
	Category          string
	Amount            decimal.Decimal
	DueDate           time.Time
	Number            int
	TotalInstallments int
}

// FindScheduledInstallments returns installments joined with purchase display
// fields, scoped to the user and optionally one card, due inside the window.
func (r *purchaseRepository) FindScheduledInstallments(
	ctx context.Context,
	userID uuid.UUID,
	cardID *uuid.UUID,
	window adapter.InstallmentWindow,
) ([]billing.ScheduledInstallment, error) {
	query := r.db.WithContext(ctx).
		Model(&model.InstallmentModel{}).
		Select(`installments.purchase_id,
			purchases.description,
			COALESCE(categories.name, '') AS category,
			installments.amount,
			installments.due_date,
			installments.number,
			purchases.installment_count AS total_installments`).
		Joins("JOIN purchases ON purchases.id = installments.purchase_id").
		Joins("LEFT JOIN categories ON categories.id = purchases.category_id").
		Where("purchases.user_id = ?", userID).
		Where("installments.due_date >= ? AND installments.due_date < ?", window.From, window.To)

	if cardID != nil {
		query = query.Where("purchases.card_id = ?", *cardID)
	}

	var rows []scheduledInstallmentRow
	result := query.Order("installments.due_date ASC").Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	installments := make([]billing.ScheduledInstallment, 0, len(rows))
	for _, row := range rows {
		installments = append(installments, billing.ScheduledInstallment{
			PurchaseID:        row.PurchaseID,
			Description:       row.Description,
			Category:          row.Category,
			Amount:            row.Amount,
			DueDate:           row.DueDate,
			Number:            row.Number,
			TotalInstallments: row.TotalInstallments,
		})
	}
	return installments, nil
}

// SumCommittedForMonth returns the total installment amount due in the month.
func (r *purchaseRepository) SumCommittedForMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) (decimal.Decimal, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var total decimal.NullDecimal
	result := r.db.WithContext(ctx).
		Model(&model.InstallmentModel{}).
		Select("SUM(installments.amount)").
		Joins("JOIN purchases ON purchases.id = installments.purchase_id").
		Where("purchases.user_id = ?", userID).
		Where("installments.due_date >= ? AND installments.due_date < ?", monthStart, monthEnd).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// dueInstallmentRow is the scan target for the reminder scan query.
type dueInstallmentRow struct {
	InstallmentID     uuid.UUID
	UserID            uuid.UUID
	UserEmail         string
	UserName          string
	CardName          string
	Description       string
	Amount            decimal.Decimal
	Number            int
	TotalInstallments int
	DueDate           time.Time
}

// FindInstallmentsDueOn returns installments due exactly on the given date
// for users with due-date alerts enabled, joined with purchase, card and
// owner info for the reminder email.
func (r *purchaseRepository) FindInstallmentsDueOn(ctx context.Context, dueDate time.Time) ([]*entity.DueInstallment, error) {
	day := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, time.UTC)

	var rows []dueInstallmentRow
	result := r.db.WithContext(ctx).
		Model(&model.InstallmentModel{}).
		Select(`installments.id AS installment_id,
			users.id AS user_id,
			users.email AS user_email,
			users.name AS user_name,
			cards.name AS card_name,
			purchases.description,
			installments.amount,
			installments.number,
			purchases.installment_count AS total_installments,
			installments.due_date`).
		Joins("JOIN purchases ON purchases.id = installments.purchase_id").
		Joins("JOIN cards ON cards.id = purchases.card_id").
		Joins("JOIN users ON users.id = purchases.user_id").
		Where("users.due_date_alerts = ?", true).
		Where("installments.due_date = ?", day).
		Order("users.email ASC, installments.due_date ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	due := make([]*entity.DueInstallment, 0, len(rows))
	for _, row := range rows {
		due = append(due, &entity.DueInstallment{
			InstallmentID:     row.InstallmentID,
			UserID:            row.UserID,
			UserEmail:         row.UserEmail,
			UserName:          row.UserName,
			CardName:          row.CardName,
			Description:       row.Description,
			Amount:            row.Amount,
			Number:            row.Number,
			TotalInstallments: row.TotalInstallments,
			DueDate:           row.DueDate,
		})
	}
	return due, nil
}
