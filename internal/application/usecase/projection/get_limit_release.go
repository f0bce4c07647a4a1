// Package projection contains the limit release projection use case.
package projection

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/billing"
	"github.com/card-tracker/backend/internal/domain/entity"
)

const (
	// DefaultHorizonMonths is the projection horizon when none is requested.
	DefaultHorizonMonths = 12
	// MaxHorizonMonths is the maximum projection horizon.
	MaxHorizonMonths = 24
)

// GetLimitReleaseInput represents the input for the limit release projection.
type GetLimitReleaseInput struct {
	UserID        uuid.UUID
	CardID        *uuid.UUID // nil aggregates across all cards
	HorizonMonths int
	Now           time.Time
}

// GetLimitReleaseOutput represents the output of the limit release projection.
type GetLimitReleaseOutput struct {
	Months []entity.LimitRelease
}

// GetLimitReleaseUseCase answers "when does my limit free up" by projecting
// the decay of current commitments month by month.
type GetLimitReleaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
}

// NewGetLimitReleaseUseCase creates a new GetLimitReleaseUseCase instance.
func NewGetLimitReleaseUseCase(purchaseRepo adapter.PurchaseRepository) *GetLimitReleaseUseCase {
	return &GetLimitReleaseUseCase{
		purchaseRepo: purchaseRepo,
	}
}

// Execute builds the limit release projection.
func (uc *GetLimitReleaseUseCase) Execute(ctx context.Context, input GetLimitReleaseInput) (*GetLimitReleaseOutput, error) {
	horizon := input.HorizonMonths
	if horizon < 1 {
		horizon = DefaultHorizonMonths
	}
	if horizon > MaxHorizonMonths {
		horizon = MaxHorizonMonths
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	window := adapter.InstallmentWindow{
		From: windowStart,
		To:   windowStart.AddDate(0, horizon, 0),
	}

	installments, err := uc.purchaseRepo.FindScheduledInstallments(ctx, input.UserID, input.CardID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load scheduled installments: %w", err)
	}

	return &GetLimitReleaseOutput{
		Months: billing.ProjectRelease(installments, now, horizon),
	}, nil
}
