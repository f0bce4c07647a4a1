// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Card represents a credit card configuration. Its closing day, due day and
// limit are read-only inputs to the billing engine; changing them triggers
// installment plan regeneration for every purchase on the card.
type Card struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	LastFourDigits string
	ClosingDay     int // 1..31, day the statement closes
	DueDay         int // 1..31, day payment is due
	CreditLimit    decimal.Decimal
	MonthlyBudget  *decimal.Decimal // optional spending target
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCard creates a new Card entity.
func NewCard(
	userID uuid.UUID,
	name string,
	lastFourDigits string,
	closingDay int,
	dueDay int,
	creditLimit decimal.Decimal,
	monthlyBudget *decimal.Decimal,
) *Card {
	now := time.Now().UTC()

	return &Card{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		LastFourDigits: lastFourDigits,
		ClosingDay:     closingDay,
		DueDay:         dueDay,
		CreditLimit:    creditLimit,
		MonthlyBudget:  monthlyBudget,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// BudgetOrZero returns the monthly budget, or zero when none is configured.
func (c *Card) BudgetOrZero() decimal.Decimal {
	if c.MonthlyBudget == nil {
		return decimal.Zero
	}
	return *c.MonthlyBudget
}
