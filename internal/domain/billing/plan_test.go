package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/card-tracker/backend/internal/domain/error"
	"github.com/card-tracker/backend/internal/domain/money"
)

func TestGeneratePlanSplitsRemainderOnFirstInstallment(t *testing.T) {
	installments, err := GeneratePlan(decimal.NewFromInt(100), 3, date(2024, time.January, 5), 10, 17)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantAmounts := []string{"33.34", "33.33", "33.33"}
	if len(installments) != len(wantAmounts) {
		t.Fatalf("expected %d installments, got %d", len(wantAmounts), len(installments))
	}
	for i, want := range wantAmounts {
		if got := installments[i].Amount.StringFixed(2); got != want {
			t.Errorf("installment %d amount = %s, want %s", i+1, got, want)
		}
		if installments[i].Number != i+1 {
			t.Errorf("installment %d number = %d, want %d", i, installments[i].Number, i+1)
		}
	}
}

func TestGeneratePlanDueDatesAdvanceMonthly(t *testing.T) {
	installments, err := GeneratePlan(decimal.NewFromInt(400), 4, date(2024, time.November, 20), 10, 17)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDates := []time.Time{
		date(2024, time.December, 17),
		date(2025, time.January, 17),
		date(2025, time.February, 17),
		date(2025, time.March, 17),
	}
	for i, want := range wantDates {
		if !installments[i].DueDate.Equal(want) {
			t.Errorf("installment %d due date = %s, want %s",
				i+1, installments[i].DueDate.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	}
}

func TestGeneratePlanReclampsNominalDueDay(t *testing.T) {
	installments, err := GeneratePlan(decimal.NewFromInt(400), 4, date(2024, time.January, 5), 10, 31)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDates := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.March, 31),
		date(2024, time.April, 30),
	}
	for i, want := range wantDates {
		if !installments[i].DueDate.Equal(want) {
			t.Errorf("installment %d due date = %s, want %s",
				i+1, installments[i].DueDate.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	}
}

func TestGeneratePlanSumsAreCentsExact(t *testing.T) {
	amounts := []string{"0.01", "0.99", "10.00", "99.99", "123.45", "1777.77", "9999.99"}

	for _, raw := range amounts {
		total := decimal.RequireFromString(raw)
		for count := 1; count <= 60; count++ {
			installments, err := GeneratePlan(total, count, date(2024, time.May, 2), 10, 17)
			if err != nil {
				t.Fatalf("GeneratePlan(%s, %d): unexpected error: %v", raw, count, err)
			}

			var sumCents int64
			for _, inst := range installments {
				sumCents += money.ToCents(inst.Amount)
			}
			if sumCents != money.ToCents(total) {
				t.Fatalf("GeneratePlan(%s, %d): installments sum to %d cents, want %d",
					raw, count, sumCents, money.ToCents(total))
			}
		}
	}
}

func TestGeneratePlanRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		count  int
		want   error
	}{
		{"zero count", decimal.NewFromInt(100), 0, domainerror.ErrInvalidInstallmentCount},
		{"negative count", decimal.NewFromInt(100), -3, domainerror.ErrInvalidInstallmentCount},
		{"zero amount", decimal.Zero, 3, domainerror.ErrNonPositiveAmount},
		{"negative amount", decimal.NewFromInt(-50), 3, domainerror.ErrNonPositiveAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GeneratePlan(tt.amount, tt.count, date(2024, time.May, 2), 10, 17)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected error %v, got %v", tt.want, err)
			}
		})
	}
}
