// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/card-tracker/backend/internal/domain/entity"
)

// maxInstallmentsPerBucket caps how many installment summaries a month
// bucket carries in the response. The bucket totals always cover everything.
const maxInstallmentsPerBucket = 10

// InstallmentSummaryResponse represents one installment inside a month bucket.
type InstallmentSummaryResponse struct {
	PurchaseID        string  `json:"purchase_id"`
	Description       string  `json:"description"`
	Category          string  `json:"category,omitempty"`
	Amount            float64 `json:"amount"`
	Number            int     `json:"number"`
	TotalInstallments int     `json:"total_installments"`
}

// MonthBucketResponse represents one month of the commitment timeline.
type MonthBucketResponse struct {
	Year             int                          `json:"year"`
	Month            int                          `json:"month"`
	Label            string                       `json:"label"`
	CommittedTotal   float64                      `json:"committed_total"`
	InstallmentCount int                          `json:"installment_count"`
	UsagePercent     float64                      `json:"usage_percent"`
	Status           string                       `json:"status"`
	Alert            string                       `json:"alert,omitempty"`
	Installments     []InstallmentSummaryResponse `json:"installments"`
}

// TimelineResponse represents the month-by-month commitment projection.
type TimelineResponse struct {
	Months          []MonthBucketResponse `json:"months"`
	TotalLimit      float64               `json:"total_limit"`
	TotalBudget     float64               `json:"total_budget"`
	ActivePlanCount int                   `json:"active_plan_count"`
}

// ToMonthBucketResponse converts a domain MonthBucket to its DTO, capping
// the per-bucket installment list.
func ToMonthBucketResponse(bucket entity.MonthBucket) MonthBucketResponse {
	installments := bucket.Installments
	if len(installments) > maxInstallmentsPerBucket {
		installments = installments[:maxInstallmentsPerBucket]
	}

	summaries := make([]InstallmentSummaryResponse, 0, len(installments))
	for _, inst := range installments {
		summaries = append(summaries, InstallmentSummaryResponse{
			PurchaseID:        inst.PurchaseID.String(),
			Description:       inst.Description,
			Category:          inst.Category,
			Amount:            inst.Amount.InexactFloat64(),
			Number:            inst.Number,
			TotalInstallments: inst.TotalInstallments,
		})
	}

	return MonthBucketResponse{
		Year:             bucket.Year,
		Month:            int(bucket.Month),
		Label:            bucket.Label,
		CommittedTotal:   bucket.CommittedTotal.InexactFloat64(),
		InstallmentCount: bucket.InstallmentCount,
		UsagePercent:     bucket.UsagePercent,
		Status:           string(bucket.Status),
		Alert:            bucket.Alert,
		Installments:     summaries,
	}
}

// ToTimelineResponse converts a domain Timeline to its DTO.
func ToTimelineResponse(timeline *entity.Timeline) TimelineResponse {
	months := make([]MonthBucketResponse, 0, len(timeline.Months))
	for _, bucket := range timeline.Months {
		months = append(months, ToMonthBucketResponse(bucket))
	}

	return TimelineResponse{
		Months:          months,
		TotalLimit:      timeline.TotalLimit.InexactFloat64(),
		TotalBudget:     timeline.TotalBudget.InexactFloat64(),
		ActivePlanCount: timeline.ActivePlanCount,
	}
}
