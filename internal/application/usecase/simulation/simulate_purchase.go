// Package simulation contains the what-if purchase simulation use case.
package simulation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/billing"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

const (
	// QuotaName is the quota bucket consumed by each simulation request.
	QuotaName = "simulation"
	// CacheTTL is how long a simulation result stays valid. Any purchase or
	// card write invalidates the user's entries earlier via prefix deletion.
	CacheTTL = 5 * time.Minute
)

// SimulatePurchaseInput represents the input for a purchase simulation.
type SimulatePurchaseInput struct {
	UserID           uuid.UUID
	CardID           uuid.UUID
	Amount           decimal.Decimal
	InstallmentCount int
	Now              time.Time
}

// SimulatePurchaseOutput represents the output of a purchase simulation.
type SimulatePurchaseOutput struct {
	Simulation     *entity.Simulation
	FromCache      bool
	QuotaRemaining int
}

// SimulatePurchaseUseCase runs the before/after what-if analysis. The
// numeric result is always computed deterministically; the AI advisor only
// enriches the recommendation and its failures degrade to the fallback
// verdict, never to an error.
type SimulatePurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	cardRepo     adapter.CardRepository
	advisor      adapter.AdvisorService
	cache        adapter.Cache
	quota        adapter.QuotaService
}

// NewSimulatePurchaseUseCase creates a new SimulatePurchaseUseCase instance.
func NewSimulatePurchaseUseCase(
	purchaseRepo adapter.PurchaseRepository,
	cardRepo adapter.CardRepository,
	advisor adapter.AdvisorService,
	cache adapter.Cache,
	quota adapter.QuotaService,
) *SimulatePurchaseUseCase {
	return &SimulatePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		cardRepo:     cardRepo,
		advisor:      advisor,
		cache:        cache,
		quota:        quota,
	}
}

// Execute performs the purchase simulation.
func (uc *SimulatePurchaseUseCase) Execute(ctx context.Context, input SimulatePurchaseInput) (*SimulatePurchaseOutput, error) {
	// Consume quota before any work
	quotaResult, err := uc.quota.Consume(ctx, input.UserID, QuotaName)
	if err != nil {
		return nil, fmt.Errorf("failed to check simulation quota: %w", err)
	}
	if !quotaResult.Allowed {
		quotaErr := domainerror.NewSimulationError(
			domainerror.ErrCodeSimulationQuotaExceeded,
			"simulation quota exceeded, try again later",
			domainerror.ErrSimulationQuotaExceeded,
		)
		quotaErr.ResetsAt = quotaResult.ResetsAt
		return nil, quotaErr
	}

	// Find card and verify ownership
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil || card.UserID != input.UserID {
		return nil, domainerror.NewSimulationError(
			domainerror.ErrCodeSimulationCardRequired,
			"a valid card is required for simulation",
			domainerror.ErrSimulationCardRequired,
		)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	// Serve an identical recent simulation from cache
	cacheKey := simulationCacheKey(input, now)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return &SimulatePurchaseOutput{
			Simulation:     cached,
			FromCache:      true,
			QuotaRemaining: quotaResult.Remaining,
		}, nil
	}

	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	window := adapter.InstallmentWindow{
		From: windowStart,
		To:   windowStart.AddDate(0, 12, 0),
	}
	cardID := input.CardID
	existing, err := uc.purchaseRepo.FindScheduledInstallments(ctx, input.UserID, &cardID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load scheduled installments: %w", err)
	}

	terms := billing.CardTerms{
		ClosingDay:    card.ClosingDay,
		DueDay:        card.DueDay,
		CreditLimit:   card.CreditLimit,
		MonthlyBudget: card.BudgetOrZero(),
	}

	sim, err := billing.Simulate(existing, terms, input.Amount, input.InstallmentCount, now)
	if err != nil {
		return nil, err
	}

	// Ask the advisor for a richer recommendation; keep the fallback on failure
	uc.enrichEvaluation(ctx, sim, card, input)

	uc.toCache(ctx, cacheKey, sim)

	return &SimulatePurchaseOutput{
		Simulation:     sim,
		QuotaRemaining: quotaResult.Remaining,
	}, nil
}

// enrichEvaluation replaces the deterministic evaluation with the advisor's
// verdict when the advisor is configured and answers with valid output.
func (uc *SimulatePurchaseUseCase) enrichEvaluation(
	ctx context.Context,
	sim *entity.Simulation,
	card *entity.Card,
	input SimulatePurchaseInput,
) {
	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return
	}

	evaluation, err := uc.advisor.Evaluate(ctx, &adapter.AdvisorRequest{
		Amount:            input.Amount,
		InstallmentCount:  input.InstallmentCount,
		MonthlyImpact:     sim.MonthlyImpact,
		CreditLimit:       card.CreditLimit,
		MonthlyBudget:     card.BudgetOrZero(),
		PeakMonthLabel:    sim.PeakMonth.Label,
		PeakUsagePercent:  sim.PeakMonth.UsagePercentAfter,
		DangerMonthLabels: sim.Warnings,
	})
	if err != nil {
		slog.Warn("Advisor evaluation failed, keeping fallback verdict",
			"userID", input.UserID,
			"error", err,
		)
		return
	}

	sim.Evaluation = *evaluation
}

// fromCache returns a cached simulation, or nil on any miss or decode error.
func (uc *SimulatePurchaseUseCase) fromCache(ctx context.Context, key string) *entity.Simulation {
	data, err := uc.cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var sim entity.Simulation
	if err := json.Unmarshal(data, &sim); err != nil {
		slog.Debug("Discarding undecodable cached simulation", "key", key, "error", err)
		return nil
	}
	return &sim
}

// toCache stores the simulation result. Cache failures are non-fatal.
func (uc *SimulatePurchaseUseCase) toCache(ctx context.Context, key string, sim *entity.Simulation) {
	data, err := json.Marshal(sim)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, data, CacheTTL); err != nil {
		slog.Debug("Failed to cache simulation result", "key", key, "error", err)
	}
}

// simulationCacheKey builds the per-user cache key. The month component
// keeps results from leaking across a month boundary, where the window and
// first due date both shift.
func simulationCacheKey(input SimulatePurchaseInput, now time.Time) string {
	return fmt.Sprintf("simulation:%s:%s:%s:%d:%s",
		input.UserID,
		input.CardID,
		input.Amount.StringFixed(2),
		input.InstallmentCount,
		now.Format("2006-01"),
	)
}
