// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/entity"
)

// PurchaseModel represents the purchases table in the database.
type PurchaseModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	CardID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID       *uuid.UUID      `gorm:"type:uuid;index"`
	Description      string          `gorm:"type:varchar(255);not null"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InstallmentCount int             `gorm:"not null"`
	PurchaseDate     time.Time       `gorm:"type:date;not null;index"`
	Tags             pq.StringArray  `gorm:"type:text[]"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`

	Card         *CardModel          `gorm:"foreignKey:CardID;references:ID"`
	Category     *CategoryModel      `gorm:"foreignKey:CategoryID;references:ID"`
	Installments []*InstallmentModel `gorm:"foreignKey:PurchaseID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the PurchaseModel.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// ToEntity converts a PurchaseModel to a domain Purchase entity.
func (m *PurchaseModel) ToEntity() *entity.Purchase {
	purchase := &entity.Purchase{
		ID:               m.ID,
		UserID:           m.UserID,
		CardID:           m.CardID,
		CategoryID:       m.CategoryID,
		Description:      m.Description,
		TotalAmount:      m.TotalAmount,
		InstallmentCount: m.InstallmentCount,
		PurchaseDate:     m.PurchaseDate,
		Tags:             []string(m.Tags),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}

	for _, inst := range m.Installments {
		purchase.Installments = append(purchase.Installments, inst.ToEntity())
	}

	return purchase
}

// PurchaseFromEntity creates a PurchaseModel from a domain Purchase entity.
// Installments are mapped along with the purchase so gorm persists them in
// the same insert.
func PurchaseFromEntity(purchase *entity.Purchase) *PurchaseModel {
	m := &PurchaseModel{
		ID:               purchase.ID,
		UserID:           purchase.UserID,
		CardID:           purchase.CardID,
		CategoryID:       purchase.CategoryID,
		Description:      purchase.Description,
		TotalAmount:      purchase.TotalAmount,
		InstallmentCount: purchase.InstallmentCount,
		PurchaseDate:     purchase.PurchaseDate,
		Tags:             pq.StringArray(purchase.Tags),
		CreatedAt:        purchase.CreatedAt,
		UpdatedAt:        purchase.UpdatedAt,
	}

	for _, inst := range purchase.Installments {
		m.Installments = append(m.Installments, InstallmentFromEntity(inst))
	}

	return m
}

// InstallmentModel represents the installments table in the database.
type InstallmentModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Number     int             `gorm:"not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate    time.Time       `gorm:"type:date;not null;index"`
}

// TableName returns the table name for the InstallmentModel.
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToEntity converts an InstallmentModel to a domain Installment entity.
func (m *InstallmentModel) ToEntity() *entity.Installment {
	return &entity.Installment{
		ID:         m.ID,
		PurchaseID: m.PurchaseID,
		Number:     m.Number,
		Amount:     m.Amount,
		DueDate:    m.DueDate,
	}
}

// InstallmentFromEntity creates an InstallmentModel from a domain Installment entity.
func InstallmentFromEntity(installment *entity.Installment) *InstallmentModel {
	return &InstallmentModel{
		ID:         installment.ID,
		PurchaseID: installment.PurchaseID,
		Number:     installment.Number,
		Amount:     installment.Amount,
		DueDate:    installment.DueDate,
	}
}
