package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/entity"
)

func simulationCard() CardTerms {
	return CardTerms{
		ClosingDay:  10,
		DueDay:      17,
		CreditLimit: decimal.NewFromInt(1000),
	}
}

func TestSimulateOverlaysPlanOntoTimeline(t *testing.T) {
	now := date(2025, time.March, 5)
	existing := []ScheduledInstallment{
		scheduled(uuid.New(), "200.00", date(2025, time.March, 17)),
		scheduled(uuid.New(), "200.00", date(2025, time.April, 17)),
	}

	sim, err := Simulate(existing, simulationCard(), decimal.NewFromInt(300), 3, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sim.Before) != simulationWindowMonths || len(sim.After) != simulationWindowMonths {
		t.Fatalf("expected %d-month windows, got before=%d after=%d",
			simulationWindowMonths, len(sim.Before), len(sim.After))
	}

	// Purchase on March 5 with closing day 10 starts paying March 17.
	wantAfter := map[string]string{
		"Mar 2025": "300.00",
		"Abr 2025": "300.00",
		"Mai 2025": "100.00",
		"Jun 2025": "0.00",
	}
	for _, bucket := range sim.After {
		want, ok := wantAfter[bucket.Label]
		if !ok {
			continue
		}
		if got := bucket.CommittedTotal.StringFixed(2); got != want {
			t.Errorf("after %s committed = %s, want %s", bucket.Label, got, want)
		}
	}

	if got := sim.MonthlyImpact.StringFixed(2); got != "100.00" {
		t.Errorf("monthly impact = %s, want 100.00", got)
	}
}

func TestSimulateAfterNeverBelowBefore(t *testing.T) {
	now := date(2025, time.February, 20)
	existing := []ScheduledInstallment{
		scheduled(uuid.New(), "150.00", date(2025, time.February, 17)),
		scheduled(uuid.New(), "150.00", date(2025, time.May, 17)),
		scheduled(uuid.New(), "150.00", date(2025, time.September, 17)),
	}

	sim, err := Simulate(existing, simulationCard(), decimal.RequireFromString("599.99"), 12, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range sim.After {
		if sim.After[i].CommittedTotal.LessThan(sim.Before[i].CommittedTotal) {
			t.Errorf("%s: after committed %s below before %s",
				sim.After[i].Label,
				sim.After[i].CommittedTotal.StringFixed(2),
				sim.Before[i].CommittedTotal.StringFixed(2))
		}
		if sim.After[i].Label != sim.Before[i].Label {
			t.Errorf("bucket %d labels diverge: before %q, after %q",
				i, sim.Before[i].Label, sim.After[i].Label)
		}
	}
}

func TestSimulateReportsPeakMonth(t *testing.T) {
	now := date(2025, time.March, 5)
	existing := []ScheduledInstallment{
		scheduled(uuid.New(), "400.00", date(2025, time.April, 17)),
		scheduled(uuid.New(), "100.00", date(2025, time.March, 17)),
	}

	sim, err := Simulate(existing, simulationCard(), decimal.NewFromInt(200), 2, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sim.PeakMonth.Label != "Abr 2025" {
		t.Fatalf("peak month = %q, want Abr 2025", sim.PeakMonth.Label)
	}
	if got := sim.PeakMonth.CommittedBefore.StringFixed(2); got != "400.00" {
		t.Errorf("peak committed before = %s, want 400.00", got)
	}
	if got := sim.PeakMonth.CommittedAfter.StringFixed(2); got != "500.00" {
		t.Errorf("peak committed after = %s, want 500.00", got)
	}
	if sim.PeakMonth.UsagePercentAfter != 50.0 {
		t.Errorf("peak usage percent = %f, want 50.0", sim.PeakMonth.UsagePercentAfter)
	}
}

func TestSimulateCollectsDangerWarnings(t *testing.T) {
	now := date(2025, time.March, 5)
	existing := []ScheduledInstallment{
		scheduled(uuid.New(), "700.00", date(2025, time.March, 17)),
	}

	sim, err := Simulate(existing, simulationCard(), decimal.NewFromInt(200), 1, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sim.Warnings) != 1 || sim.Warnings[0] != "Mar 2025" {
		t.Errorf("warnings = %v, want [Mar 2025]", sim.Warnings)
	}
}

func TestSimulatePropagatesPlanValidation(t *testing.T) {
	_, err := Simulate(nil, simulationCard(), decimal.NewFromInt(100), 0, date(2025, time.March, 5))
	if err == nil {
		t.Fatal("expected an error for zero installment count")
	}
}

func TestFallbackEvaluationTiers(t *testing.T) {
	tests := []struct {
		name        string
		peakUsage   float64
		wantViable  bool
		wantImpact  int
	}{
		{"over the limit", 120.0, false, 10},
		{"exactly 100 percent", 100.0, true, 8},
		{"heavily committed", 85.0, true, 8},
		{"exactly 80 percent", 80.0, true, 0},
		{"comfortable", 30.0, true, 0},
		{"no usage", 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := FallbackEvaluation(tt.peakUsage)
			if eval.Viable != tt.wantViable {
				t.Errorf("viable = %v, want %v", eval.Viable, tt.wantViable)
			}
			if eval.ImpactScore != tt.wantImpact {
				t.Errorf("impact score = %d, want %d", eval.ImpactScore, tt.wantImpact)
			}
			if eval.Source != entity.EvaluationSourceFallback {
				t.Errorf("source = %s, want %s", eval.Source, entity.EvaluationSourceFallback)
			}
			if eval.Recommendation == "" {
				t.Error("recommendation must not be empty")
			}
		})
	}
}

func TestOverlayDoesNotMutateBefore(t *testing.T) {
	limit := decimal.NewFromInt(1000)
	before := BuildTimeline([]ScheduledInstallment{
		scheduled(uuid.New(), "100.00", date(2025, time.March, 17)),
	}, date(2025, time.March, 1), 3, limit)

	plan := []entity.Installment{
		{Number: 1, Amount: decimal.NewFromInt(500), DueDate: date(2025, time.March, 17)},
	}
	Overlay(before, plan, limit)

	if got := before[0].CommittedTotal.StringFixed(2); got != "100.00" {
		t.Errorf("before committed mutated to %s, want 100.00", got)
	}
	if before[0].InstallmentCount != 1 {
		t.Errorf("before installment count mutated to %d, want 1", before[0].InstallmentCount)
	}
}
