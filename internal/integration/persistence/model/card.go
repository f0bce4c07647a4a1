// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/entity"
)

// CardModel represents the cards table in the database.
type CardModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name           string           `gorm:"type:varchar(100);not null"`
	LastFourDigits string           `gorm:"type:varchar(4)"`
	ClosingDay     int              `gorm:"not null"`
	DueDay         int              `gorm:"not null"`
	CreditLimit    decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	MonthlyBudget  *decimal.Decimal `gorm:"type:decimal(15,2)"`
	CreatedAt      time.Time        `gorm:"not null"`
	UpdatedAt      time.Time        `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CardModel.
func (CardModel) TableName() string {
	return "cards"
}

// ToEntity converts a CardModel to a domain Card entity.
func (m *CardModel) ToEntity() *entity.Card {
	return &entity.Card{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		LastFourDigits: m.LastFourDigits,
		ClosingDay:     m.ClosingDay,
		DueDay:         m.DueDay,
		CreditLimit:    m.CreditLimit,
		MonthlyBudget:  m.MonthlyBudget,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// CardFromEntity creates a CardModel from a domain Card entity.
func CardFromEntity(card *entity.Card) *CardModel {
	return &CardModel{
		ID:             card.ID,
		UserID:         card.UserID,
		Name:           card.Name,
		LastFourDigits: card.LastFourDigits,
		ClosingDay:     card.ClosingDay,
		DueDay:         card.DueDay,
		CreditLimit:    card.CreditLimit,
		MonthlyBudget:  card.MonthlyBudget,
		CreatedAt:      card.CreatedAt,
		UpdatedAt:      card.UpdatedAt,
	}
}
