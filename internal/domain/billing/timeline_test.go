package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/entity"
)

func scheduled(purchaseID uuid.UUID, amount string, dueDate time.Time) ScheduledInstallment {
	return ScheduledInstallment{
		PurchaseID:        purchaseID,
		Description:       "Compra",
		Category:          "Geral",
		Amount:            decimal.RequireFromString(amount),
		DueDate:           dueDate,
		Number:            1,
		TotalInstallments: 1,
	}
}

func TestBuildTimelineFillsEveryMonth(t *testing.T) {
	id := uuid.New()
	installments := []ScheduledInstallment{
		scheduled(id, "100.00", date(2025, time.January, 17)),
		scheduled(id, "100.00", date(2025, time.March, 17)),
	}

	buckets := BuildTimeline(installments, date(2025, time.January, 1), 6, decimal.NewFromInt(1000))
	if len(buckets) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(buckets))
	}

	wantLabels := []string{"Jan 2025", "Fev 2025", "Mar 2025", "Abr 2025", "Mai 2025", "Jun 2025"}
	for i, want := range wantLabels {
		if buckets[i].Label != want {
			t.Errorf("bucket %d label = %q, want %q", i, buckets[i].Label, want)
		}
	}

	if buckets[1].InstallmentCount != 0 || !buckets[1].CommittedTotal.IsZero() {
		t.Errorf("empty month should have zero count and total, got count=%d total=%s",
			buckets[1].InstallmentCount, buckets[1].CommittedTotal)
	}
	if buckets[1].Status != entity.MonthStatusSafe {
		t.Errorf("empty month status = %s, want %s", buckets[1].Status, entity.MonthStatusSafe)
	}
}

func TestBuildTimelineCrossesYearBoundary(t *testing.T) {
	id := uuid.New()
	installments := []ScheduledInstallment{
		scheduled(id, "50.00", date(2024, time.December, 17)),
		scheduled(id, "50.00", date(2025, time.January, 17)),
	}

	buckets := BuildTimeline(installments, date(2024, time.November, 1), 4, decimal.NewFromInt(1000))
	if buckets[1].Year != 2024 || buckets[1].Month != time.December {
		t.Fatalf("bucket 1 = %d-%s, want 2024-December", buckets[1].Year, buckets[1].Month)
	}
	if buckets[2].Year != 2025 || buckets[2].Month != time.January {
		t.Fatalf("bucket 2 = %d-%s, want 2025-January", buckets[2].Year, buckets[2].Month)
	}
	if buckets[2].CommittedTotal.StringFixed(2) != "50.00" {
		t.Errorf("january committed = %s, want 50.00", buckets[2].CommittedTotal.StringFixed(2))
	}
}

func TestBuildTimelineIgnoresInstallmentsOutsideWindow(t *testing.T) {
	id := uuid.New()
	installments := []ScheduledInstallment{
		scheduled(id, "30.00", date(2024, time.December, 17)),
		scheduled(id, "30.00", date(2025, time.January, 17)),
		scheduled(id, "30.00", date(2025, time.July, 17)),
	}

	buckets := BuildTimeline(installments, date(2025, time.January, 1), 6, decimal.NewFromInt(1000))
	var total decimal.Decimal
	for _, b := range buckets {
		total = total.Add(b.CommittedTotal)
	}
	if total.StringFixed(2) != "30.00" {
		t.Errorf("window total = %s, want 30.00", total.StringFixed(2))
	}
}

func TestBuildTimelineStatusThresholds(t *testing.T) {
	limit := decimal.NewFromInt(1000)
	tests := []struct {
		name       string
		amount     string
		wantStatus entity.MonthStatus
		wantAlert  bool
	}{
		{"below warning", "500.00", entity.MonthStatusSafe, false},
		{"just above warning", "500.01", entity.MonthStatusWarning, false},
		{"at danger boundary", "800.00", entity.MonthStatusWarning, false},
		{"above danger", "800.01", entity.MonthStatusDanger, true},
		{"over the limit", "1200.00", entity.MonthStatusDanger, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			installments := []ScheduledInstallment{
				scheduled(uuid.New(), tt.amount, date(2025, time.March, 17)),
			}
			buckets := BuildTimeline(installments, date(2025, time.March, 1), 1, limit)
			if buckets[0].Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", buckets[0].Status, tt.wantStatus)
			}
			if got := buckets[0].Alert != ""; got != tt.wantAlert {
				t.Errorf("alert present = %v, want %v (alert %q)", got, tt.wantAlert, buckets[0].Alert)
			}
		})
	}
}

func TestBuildTimelineWithoutLimitReportsZeroUsage(t *testing.T) {
	installments := []ScheduledInstallment{
		scheduled(uuid.New(), "900.00", date(2025, time.March, 17)),
	}
	buckets := BuildTimeline(installments, date(2025, time.March, 1), 1, decimal.Zero)
	if buckets[0].UsagePercent != 0 {
		t.Errorf("usage percent = %f, want 0", buckets[0].UsagePercent)
	}
	if buckets[0].Status != entity.MonthStatusSafe {
		t.Errorf("status = %s, want %s", buckets[0].Status, entity.MonthStatusSafe)
	}
}

func TestBuildTimelineSortsSummariesByAmountDesc(t *testing.T) {
	month := date(2025, time.March, 17)
	installments := []ScheduledInstallment{
		scheduled(uuid.New(), "10.00", month),
		scheduled(uuid.New(), "90.00", month),
		scheduled(uuid.New(), "40.00", month),
	}

	buckets := BuildTimeline(installments, date(2025, time.March, 1), 1, decimal.NewFromInt(1000))
	wantOrder := []string{"90.00", "40.00", "10.00"}
	for i, want := range wantOrder {
		if got := buckets[0].Installments[i].Amount.StringFixed(2); got != want {
			t.Errorf("summary %d amount = %s, want %s", i, got, want)
		}
	}
	if buckets[0].CommittedTotal.StringFixed(2) != "140.00" {
		t.Errorf("committed total = %s, want 140.00", buckets[0].CommittedTotal.StringFixed(2))
	}
}

func TestActivePlanCount(t *testing.T) {
	planA := uuid.New()
	planB := uuid.New()
	planC := uuid.New()
	now := date(2025, time.March, 10)

	installments := []ScheduledInstallment{
		scheduled(planA, "10.00", date(2025, time.February, 17)),
		scheduled(planA, "10.00", date(2025, time.April, 17)),
		scheduled(planB, "10.00", date(2025, time.January, 17)),
		scheduled(planC, "10.00", date(2026, time.June, 17)),
	}

	got := ActivePlanCount(installments, date(2025, time.January, 1), 12, now)
	if got != 1 {
		t.Errorf("active plan count = %d, want 1 (only plan A has a future installment in the window)", got)
	}
}
