// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/entity"
)

// AdvisorRequest carries the already-computed simulation numbers the advisor
// reasons about. The advisor never sees raw purchases, only aggregates.
type AdvisorRequest struct {
	Amount            decimal.Decimal
	InstallmentCount  int
	MonthlyImpact     decimal.Decimal
	CreditLimit       decimal.Decimal
	MonthlyBudget     decimal.Decimal
	PeakMonthLabel    string
	PeakUsagePercent  float64
	DangerMonthLabels []string
}

// AdvisorService defines the interface for AI-backed purchase evaluation.
// Implementations must return domain errors on malformed model output so
// callers can fall back to the deterministic evaluation.
type AdvisorService interface {
	// Evaluate asks the model for a purchase verdict and recommendation.
	Evaluate(ctx context.Context, request *AdvisorRequest) (*entity.Evaluation, error)

	// IsAvailable checks if the advisor is configured and reachable.
	IsAvailable() bool
}
