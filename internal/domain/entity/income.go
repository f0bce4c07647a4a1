package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income represents a monthly income entry. Recurring incomes apply to every
// month from their start month onward.
type Income struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Label       string
	Amount      decimal.Decimal
	Month       int // 1..12
	Year        int
	IsRecurring bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(
	userID uuid.UUID,
	label string,
	amount decimal.Decimal,
	month int,
	year int,
	isRecurring bool,
) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:          uuid.New(),
		UserID:      userID,
		Label:       label,
		Amount:      amount,
		Month:       month,
		Year:        year,
		IsRecurring: isRecurring,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AppliesTo reports whether the income counts toward the given month.
func (i *Income) AppliesTo(month, year int) bool {
	if i.Month == month && i.Year == year {
		return true
	}
	if !i.IsRecurring {
		return false
	}
	return i.Year < year || (i.Year == year && i.Month <= month)
}
