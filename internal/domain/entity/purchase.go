package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Installment is one scheduled payment fragment of a purchase. Installments
// are created atomically with their purchase and never mutated individually;
// any change to the parent purchase replaces the whole sequence.
type Installment struct {
	ID         uuid.UUID
	PurchaseID uuid.UUID
	Number     int // 1-based, sequential
	Amount     decimal.Decimal
	DueDate    time.Time
}

// Purchase represents a credit-card purchase split into monthly installments.
type Purchase struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	CardID           uuid.UUID
	CategoryID       *uuid.UUID
	Description      string
	TotalAmount      decimal.Decimal
	InstallmentCount int
	PurchaseDate     time.Time
	Tags             []string
	Installments     []*Installment
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewPurchase creates a new Purchase entity without its installment plan.
// The plan is generated by the billing engine and attached before persisting.
func NewPurchase(
	userID uuid.UUID,
	cardID uuid.UUID,
	categoryID *uuid.UUID,
	description string,
	totalAmount decimal.Decimal,
	installmentCount int,
	purchaseDate time.Time,
	tags []string,
) *Purchase {
	now := time.Now().UTC()

	return &Purchase{
		ID:               uuid.New(),
		UserID:           userID,
		CardID:           cardID,
		CategoryID:       categoryID,
		Description:      description,
		TotalAmount:      totalAmount,
		InstallmentCount: installmentCount,
		PurchaseDate:     purchaseDate,
		Tags:             tags,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// AttachPlan binds a generated installment sequence to the purchase.
func (p *Purchase) AttachPlan(installments []Installment) {
	p.Installments = make([]*Installment, len(installments))
	for i := range installments {
		inst := installments[i]
		inst.ID = uuid.New()
		inst.PurchaseID = p.ID
		p.Installments[i] = &inst
	}
}

// PurchaseWithCard represents a purchase joined with its card configuration.
type PurchaseWithCard struct {
	Purchase *Purchase
	Card     *Card
}

// PurchaseListResult represents the result of listing purchases.
type PurchaseListResult struct {
	Purchases  []*Purchase
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
