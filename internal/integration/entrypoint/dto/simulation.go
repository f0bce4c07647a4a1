// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/card-tracker/backend/internal/domain/entity"
)

// SimulateRequest represents the request body for a purchase simulation.
type SimulateRequest struct {
	CardID           string  `json:"card_id" binding:"required,uuid"`
	Amount           float64 `json:"amount" binding:"required,gt=0"`
	InstallmentCount int     `json:"installment_count" binding:"required,min=1,max=60"`
}

// PeakMonthResponse represents the heaviest month after the overlay.
type PeakMonthResponse struct {
	Label             string  `json:"label"`
	CommittedBefore   float64 `json:"committed_before"`
	CommittedAfter    float64 `json:"committed_after"`
	UsagePercentAfter float64 `json:"usage_percent_after"`
}

// EvaluationResponse represents the verdict on the hypothetical purchase.
type EvaluationResponse struct {
	Viable         bool   `json:"viable"`
	ImpactScore    int    `json:"impact_score"`
	Recommendation string `json:"recommendation"`
	BestTiming     string `json:"best_timing,omitempty"`
	Source         string `json:"source"`
}

// SimulationResponse represents the full what-if analysis result.
type SimulationResponse struct {
	Before         []MonthBucketResponse `json:"before"`
	After          []MonthBucketResponse `json:"after"`
	MonthlyImpact  float64               `json:"monthly_impact"`
	PeakMonth      PeakMonthResponse     `json:"peak_month"`
	Warnings       []string              `json:"warnings"`
	Evaluation     EvaluationResponse    `json:"evaluation"`
	FromCache      bool                  `json:"from_cache"`
	QuotaRemaining int                   `json:"quota_remaining"`
}

// QuotaExceededResponse represents the response when the simulation quota is spent.
type QuotaExceededResponse struct {
	Error    string    `json:"error"`
	Code     string    `json:"code"`
	ResetsAt time.Time `json:"resets_at"`
}

// ToSimulationResponse converts a domain Simulation to its DTO.
func ToSimulationResponse(simulation *entity.Simulation, fromCache bool, quotaRemaining int) SimulationResponse {
	before := make([]MonthBucketResponse, 0, len(simulation.Before))
	for _, bucket := range simulation.Before {
		before = append(before, ToMonthBucketResponse(bucket))
	}

	after := make([]MonthBucketResponse, 0, len(simulation.After))
	for _, bucket := range simulation.After {
		after = append(after, ToMonthBucketResponse(bucket))
	}

	warnings := simulation.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return SimulationResponse{
		Before:        before,
		After:         after,
		MonthlyImpact: simulation.MonthlyImpact.InexactFloat64(),
		PeakMonth: PeakMonthResponse{
			Label:             simulation.PeakMonth.Label,
			CommittedBefore:   simulation.PeakMonth.CommittedBefore.InexactFloat64(),
			CommittedAfter:    simulation.PeakMonth.CommittedAfter.InexactFloat64(),
			UsagePercentAfter: simulation.PeakMonth.UsagePercentAfter,
		},
		Warnings: warnings,
		Evaluation: EvaluationResponse{
			Viable:         simulation.Evaluation.Viable,
			ImpactScore:    simulation.Evaluation.ImpactScore,
			Recommendation: simulation.Evaluation.Recommendation,
			BestTiming:     simulation.Evaluation.BestTiming,
			Source:         string(simulation.Evaluation.Source),
		},
		FromCache:      fromCache,
		QuotaRemaining: quotaRemaining,
	}
}
