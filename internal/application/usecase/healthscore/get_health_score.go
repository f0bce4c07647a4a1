// Package healthscore contains the financial health score use case.
package healthscore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/billing"
	"github.com/card-tracker/backend/internal/domain/entity"
)

// HistoryMonths is how many prior months feed the consistency component.
const HistoryMonths = 3

// GetHealthScoreInput represents the input for the health score.
type GetHealthScoreInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// GetHealthScoreOutput represents the output of the health score.
type GetHealthScoreOutput struct {
	Health *entity.HealthScore
}

// GetHealthScoreUseCase aggregates the user's monthly numbers and scores
// them. Every input is optional: missing cards, income or history degrade
// individual components to their neutral fallbacks, never to an error.
type GetHealthScoreUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	incomeRepo   adapter.IncomeRepository
	cardRepo     adapter.CardRepository
}

// NewGetHealthScoreUseCase creates a new GetHealthScoreUseCase instance.
func NewGetHealthScoreUseCase(
	purchaseRepo adapter.PurchaseRepository,
	incomeRepo adapter.IncomeRepository,
	cardRepo adapter.CardRepository,
) *GetHealthScoreUseCase {
	return &GetHealthScoreUseCase{
		purchaseRepo: purchaseRepo,
		incomeRepo:   incomeRepo,
		cardRepo:     cardRepo,
	}
}

// Execute computes the health score for the current month.
func (uc *GetHealthScoreUseCase) Execute(ctx context.Context, input GetHealthScoreInput) (*GetHealthScoreOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	spending, err := uc.purchaseRepo.SumCommittedForMonth(ctx, input.UserID, now.Year(), now.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to sum current month commitments: %w", err)
	}

	income, err := uc.incomeRepo.SumForMonth(ctx, input.UserID, now.Year(), now.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to sum current month income: %w", err)
	}

	totalLimit, err := uc.cardRepo.SumCreditLimitByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum credit limits: %w", err)
	}

	budget, err := uc.sumBudgets(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	history, err := uc.recentMonths(ctx, input.UserID, now)
	if err != nil {
		return nil, err
	}

	health := billing.ComputeHealth(billing.HealthInput{
		Spending:     spending,
		Income:       income,
		Budget:       budget,
		CreditLimit:  totalLimit,
		RecentMonths: history,
		Now:          now,
	})

	return &GetHealthScoreOutput{Health: health}, nil
}

// sumBudgets totals the configured monthly budgets across the user's cards.
func (uc *GetHealthScoreUseCase) sumBudgets(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	cards, err := uc.cardRepo.FindByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load cards: %w", err)
	}

	budget := decimal.Zero
	for _, card := range cards {
		budget = budget.Add(card.BudgetOrZero())
	}
	return budget, nil
}

// recentMonths collects committed totals for the months before now, oldest
// first, feeding the consistency and trend computations.
func (uc *GetHealthScoreUseCase) recentMonths(ctx context.Context, userID uuid.UUID, now time.Time) ([]decimal.Decimal, error) {
	history := make([]decimal.Decimal, 0, HistoryMonths)

	// Anchor on the first of the month so short months cannot skew the walk
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := HistoryMonths; i >= 1; i-- {
		ref := monthStart.AddDate(0, -i, 0)
		total, err := uc.purchaseRepo.SumCommittedForMonth(ctx, userID, ref.Year(), ref.Month())
		if err != nil {
			return nil, fmt.Errorf("failed to sum commitments %d months back: %w", i, err)
		}
		history = append(history, total)
	}

	return history, nil
}
