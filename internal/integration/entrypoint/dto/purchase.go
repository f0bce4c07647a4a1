// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/card-tracker/backend/internal/domain/entity"
)

// PurchaseRequest represents the request body for creating or updating a purchase.
type PurchaseRequest struct {
	CardID           string   `json:"card_id" binding:"required,uuid"`
	CategoryID       *string  `json:"category_id" binding:"omitempty,uuid"`
	Description      string   `json:"description" binding:"required,min=1,max=255"`
	TotalAmount      float64  `json:"total_amount" binding:"required,gt=0"`
	InstallmentCount int      `json:"installment_count" binding:"required,min=1,max=60"`
	PurchaseDate     string   `json:"purchase_date" binding:"required"`
	Tags             []string `json:"tags" binding:"omitempty,max=10"`
}

// InstallmentResponse represents one installment in API responses.
type InstallmentResponse struct {
	ID      string  `json:"id"`
	Number  int     `json:"number"`
	Amount  float64 `json:"amount"`
	DueDate string  `json:"due_date"`
}

// PurchaseResponse represents the purchase data in API responses.
type PurchaseResponse struct {
	ID               string                `json:"id"`
	CardID           string                `json:"card_id"`
	CategoryID       *string               `json:"category_id,omitempty"`
	Description      string                `json:"description"`
	TotalAmount      float64               `json:"total_amount"`
	InstallmentCount int                   `json:"installment_count"`
	PurchaseDate     string                `json:"purchase_date"`
	Tags             []string              `json:"tags"`
	Installments     []InstallmentResponse `json:"installments"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// UpdatePurchaseResponse represents the response for a purchase update.
type UpdatePurchaseResponse struct {
	Purchase        PurchaseResponse `json:"purchase"`
	PlanRegenerated bool             `json:"plan_regenerated"`
}

// PurchaseListResponse represents the paginated response for listing purchases.
type PurchaseListResponse struct {
	Purchases  []PurchaseResponse `json:"purchases"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// ToPurchaseResponse converts a domain Purchase entity to a PurchaseResponse DTO.
func ToPurchaseResponse(purchase *entity.Purchase) PurchaseResponse {
	resp := PurchaseResponse{
		ID:               purchase.ID.String(),
		CardID:           purchase.CardID.String(),
		Description:      purchase.Description,
		TotalAmount:      purchase.TotalAmount.InexactFloat64(),
		InstallmentCount: purchase.InstallmentCount,
		PurchaseDate:     purchase.PurchaseDate.Format("2006-01-02"),
		Tags:             purchase.Tags,
		Installments:     make([]InstallmentResponse, 0, len(purchase.Installments)),
		CreatedAt:        purchase.CreatedAt,
		UpdatedAt:        purchase.UpdatedAt,
	}

	if purchase.CategoryID != nil {
		categoryID := purchase.CategoryID.String()
		resp.CategoryID = &categoryID
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}

	for _, inst := range purchase.Installments {
		resp.Installments = append(resp.Installments, InstallmentResponse{
			ID:      inst.ID.String(),
			Number:  inst.Number,
			Amount:  inst.Amount.InexactFloat64(),
			DueDate: inst.DueDate.Format("2006-01-02"),
		})
	}

	return resp
}

// ToPurchaseListResponse converts a domain listing result to its DTO.
func ToPurchaseListResponse(result *entity.PurchaseListResult) PurchaseListResponse {
	purchases := make([]PurchaseResponse, 0, len(result.Purchases))
	for _, purchase := range result.Purchases {
		purchases = append(purchases, ToPurchaseResponse(purchase))
	}

	return PurchaseListResponse{
		Purchases:  purchases,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
}
