// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/card-tracker/backend/internal/domain/entity"
)

// IncomeRequest represents the request body for creating or updating an income entry.
type IncomeRequest struct {
	Label       string  `json:"label" binding:"required,min=1,max=100"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Month       int     `json:"month" binding:"required,min=1,max=12"`
	Year        int     `json:"year" binding:"required,min=2000,max=2200"`
	IsRecurring bool    `json:"is_recurring"`
}

// IncomeResponse represents the income data in API responses.
type IncomeResponse struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Amount      float64   `json:"amount"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	IsRecurring bool      `json:"is_recurring"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IncomeListResponse represents the response for listing income entries.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:          income.ID.String(),
		Label:       income.Label,
		Amount:      income.Amount.InexactFloat64(),
		Month:       income.Month,
		Year:        income.Year,
		IsRecurring: income.IsRecurring,
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}
}
