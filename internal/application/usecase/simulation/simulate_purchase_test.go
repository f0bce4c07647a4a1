package simulation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/billing"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

type fakeCardRepo struct {
	card *entity.Card
}

func (f *fakeCardRepo) Create(ctx context.Context, card *entity.Card) error { return nil }
func (f *fakeCardRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	if f.card == nil || f.card.ID != id {
		return nil, errors.New("not found")
	}
	return f.card, nil
}
func (f *fakeCardRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error) {
	return []*entity.Card{f.card}, nil
}
func (f *fakeCardRepo) Update(ctx context.Context, card *entity.Card) error { return nil }
func (f *fakeCardRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (f *fakeCardRepo) ExistsByIDAndUser(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	return f.card != nil && f.card.ID == id && f.card.UserID == userID, nil
}
func (f *fakeCardRepo) SumCreditLimitByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return f.card.CreditLimit, nil
}

type fakePurchaseRepo struct {
	adapter.PurchaseRepository
	installments []billing.ScheduledInstallment
}

func (f *fakePurchaseRepo) FindScheduledInstallments(
	ctx context.Context,
	userID uuid.UUID,
	cardID *uuid.UUID,
	window adapter.InstallmentWindow,
) ([]billing.ScheduledInstallment, error) {
	return f.installments, nil
}

type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	return f.entries[key], nil
}
func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.entries[key] = value
	return nil
}
func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}
func (f *fakeCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	for key := range f.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(f.entries, key)
		}
	}
	return nil
}

type fakeQuota struct {
	allowed   bool
	remaining int
	calls     int
}

func (f *fakeQuota) Consume(ctx context.Context, userID uuid.UUID, name string) (*adapter.QuotaResult, error) {
	f.calls++
	return &adapter.QuotaResult{Allowed: f.allowed, Remaining: f.remaining}, nil
}

type fakeAdvisor struct {
	evaluation *entity.Evaluation
	err        error
	available  bool
	calls      int
}

func (f *fakeAdvisor) Evaluate(ctx context.Context, request *adapter.AdvisorRequest) (*entity.Evaluation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.evaluation, nil
}
func (f *fakeAdvisor) IsAvailable() bool { return f.available }

func testCard(userID uuid.UUID) *entity.Card {
	return entity.NewCard(userID, "Nubank", "1234", 10, 17, decimal.NewFromInt(1000), nil)
}

func TestSimulatePurchaseUsesAdvisorWhenAvailable(t *testing.T) {
	userID := uuid.New()
	card := testCard(userID)
	advisor := &fakeAdvisor{
		available: true,
		evaluation: &entity.Evaluation{
			Viable:         true,
			ImpactScore:    3,
			Recommendation: "Compra tranquila para o seu perfil.",
			BestTiming:     "Pode comprar agora.",
			Source:         entity.EvaluationSourceAdvisor,
		},
	}

	uc := NewSimulatePurchaseUseCase(
		&fakePurchaseRepo{},
		&fakeCardRepo{card: card},
		advisor,
		newFakeCache(),
		&fakeQuota{allowed: true, remaining: 19},
	)

	out, err := uc.Execute(context.Background(), SimulatePurchaseInput{
		UserID:           userID,
		CardID:           card.ID,
		Amount:           decimal.NewFromInt(300),
		InstallmentCount: 3,
		Now:              time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Simulation.Evaluation.Source != entity.EvaluationSourceAdvisor {
		t.Errorf("evaluation source = %s, want %s", out.Simulation.Evaluation.Source, entity.EvaluationSourceAdvisor)
	}
	if out.Simulation.Evaluation.ImpactScore != 3 {
		t.Errorf("impact score = %d, want 3", out.Simulation.Evaluation.ImpactScore)
	}
	if advisor.calls != 1 {
		t.Errorf("advisor calls = %d, want 1", advisor.calls)
	}
	if out.QuotaRemaining != 19 {
		t.Errorf("quota remaining = %d, want 19", out.QuotaRemaining)
	}
}

func TestSimulatePurchaseFallsBackWhenAdvisorFails(t *testing.T) {
	userID := uuid.New()
	card := testCard(userID)
	advisor := &fakeAdvisor{available: true, err: errors.New("model returned malformed output")}

	uc := NewSimulatePurchaseUseCase(
		&fakePurchaseRepo{},
		&fakeCardRepo{card: card},
		advisor,
		newFakeCache(),
		&fakeQuota{allowed: true},
	)

	out, err := uc.Execute(context.Background(), SimulatePurchaseInput{
		UserID:           userID,
		CardID:           card.ID,
		Amount:           decimal.NewFromInt(300),
		InstallmentCount: 3,
		Now:              time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("advisor failure must not fail the simulation: %v", err)
	}

	if out.Simulation.Evaluation.Source != entity.EvaluationSourceFallback {
		t.Errorf("evaluation source = %s, want %s", out.Simulation.Evaluation.Source, entity.EvaluationSourceFallback)
	}
	if !out.Simulation.Evaluation.Viable {
		t.Error("low-usage simulation should be viable under the fallback")
	}
}

func TestSimulatePurchaseServesSecondCallFromCache(t *testing.T) {
	userID := uuid.New()
	card := testCard(userID)
	advisor := &fakeAdvisor{available: false}
	cache := newFakeCache()

	uc := NewSimulatePurchaseUseCase(
		&fakePurchaseRepo{},
		&fakeCardRepo{card: card},
		advisor,
		cache,
		&fakeQuota{allowed: true},
	)

	input := SimulatePurchaseInput{
		UserID:           userID,
		CardID:           card.ID,
		Amount:           decimal.NewFromInt(300),
		InstallmentCount: 3,
		Now:              time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
	}

	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.FromCache {
		t.Error("first call must not be served from cache")
	}

	second, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.FromCache {
		t.Error("second identical call should be served from cache")
	}
	if !second.Simulation.MonthlyImpact.Equal(first.Simulation.MonthlyImpact) {
		t.Errorf("cached monthly impact = %s, want %s",
			second.Simulation.MonthlyImpact, first.Simulation.MonthlyImpact)
	}
}

func TestSimulatePurchaseRejectsWhenQuotaSpent(t *testing.T) {
	userID := uuid.New()
	card := testCard(userID)

	uc := NewSimulatePurchaseUseCase(
		&fakePurchaseRepo{},
		&fakeCardRepo{card: card},
		&fakeAdvisor{},
		newFakeCache(),
		&fakeQuota{allowed: false},
	)

	_, err := uc.Execute(context.Background(), SimulatePurchaseInput{
		UserID:           userID,
		CardID:           card.ID,
		Amount:           decimal.NewFromInt(300),
		InstallmentCount: 3,
	})
	if !errors.Is(err, domainerror.ErrSimulationQuotaExceeded) {
		t.Fatalf("expected quota exceeded error, got %v", err)
	}
}

func TestSimulatePurchaseRejectsForeignCard(t *testing.T) {
	card := testCard(uuid.New())

	uc := NewSimulatePurchaseUseCase(
		&fakePurchaseRepo{},
		&fakeCardRepo{card: card},
		&fakeAdvisor{},
		newFakeCache(),
		&fakeQuota{allowed: true},
	)

	_, err := uc.Execute(context.Background(), SimulatePurchaseInput{
		UserID:           uuid.New(), // not the card owner
		CardID:           card.ID,
		Amount:           decimal.NewFromInt(300),
		InstallmentCount: 3,
	})
	if !errors.Is(err, domainerror.ErrSimulationCardRequired) {
		t.Fatalf("expected card required error, got %v", err)
	}
}
