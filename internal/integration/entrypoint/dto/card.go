// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/card-tracker/backend/internal/domain/entity"
)

// CardRequest represents the request body for creating or updating a card.
type CardRequest struct {
	Name           string   `json:"name" binding:"required,min=1,max=100"`
	LastFourDigits string   `json:"last_four_digits" binding:"omitempty,len=4,numeric"`
	ClosingDay     int      `json:"closing_day" binding:"required,min=1,max=31"`
	DueDay         int      `json:"due_day" binding:"required,min=1,max=31"`
	CreditLimit    float64  `json:"credit_limit" binding:"required,gt=0"`
	MonthlyBudget  *float64 `json:"monthly_budget" binding:"omitempty,gte=0"`
}

// CardResponse represents the card data in API responses.
type CardResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	LastFourDigits string    `json:"last_four_digits,omitempty"`
	ClosingDay     int       `json:"closing_day"`
	DueDay         int       `json:"due_day"`
	CreditLimit    float64   `json:"credit_limit"`
	MonthlyBudget  *float64  `json:"monthly_budget,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CardListResponse represents the response for listing cards.
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

// UpdateCardResponse represents the response for a card update, including
// how many purchase plans were regenerated by a cycle change.
type UpdateCardResponse struct {
	Card             CardResponse `json:"card"`
	RegeneratedPlans int          `json:"regenerated_plans"`
}

// ToCardResponse converts a domain Card entity to a CardResponse DTO.
func ToCardResponse(card *entity.Card) CardResponse {
	resp := CardResponse{
		ID:             card.ID.String(),
		Name:           card.Name,
		LastFourDigits: card.LastFourDigits,
		ClosingDay:     card.ClosingDay,
		DueDay:         card.DueDay,
		CreditLimit:    card.CreditLimit.InexactFloat64(),
		CreatedAt:      card.CreatedAt,
		UpdatedAt:      card.UpdatedAt,
	}
	if card.MonthlyBudget != nil {
		budget := card.MonthlyBudget.InexactFloat64()
		resp.MonthlyBudget = &budget
	}
	return resp
}
