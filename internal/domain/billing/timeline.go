package billing

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/entity"
	"github.com/card-tracker/backend/internal/domain/money"
)

// Usage thresholds for month status classification, in percent.
const (
	dangerThreshold  = 80.0
	warningThreshold = 50.0
)

// ScheduledInstallment is the engine's input shape for aggregation: one
// installment joined with the parent purchase fields needed for display.
// Callers fetch these from storage; the engine never queries anything.
type ScheduledInstallment struct {
	PurchaseID        uuid.UUID
	Description       string
	Category          string
	Amount            decimal.Decimal
	DueDate           time.Time
	Number            int
	TotalInstallments int
}

// CardTerms is the slice of card configuration the engine works with.
type CardTerms struct {
	ClosingDay    int
	DueDay        int
	CreditLimit   decimal.Decimal
	MonthlyBudget decimal.Decimal // zero when unset
}

// BuildTimeline groups installments into one bucket per month over
// [windowStart, windowStart+windowMonths). Every month in the window is
// present even with zero installments. Bucket summaries are sorted by amount
// descending; usage percent and status are derived from the credit limit.
func BuildTimeline(
	installments []ScheduledInstallment,
	windowStart time.Time,
	windowMonths int,
	creditLimit decimal.Decimal,
) []entity.MonthBucket {
	if windowMonths < 1 {
		return nil
	}

	startIdx := monthIndex(windowStart)
	buckets := make([]entity.MonthBucket, windowMonths)
	committedCents := make([]int64, windowMonths)

	for i := range buckets {
		year, month := addMonths(windowStart.Year(), windowStart.Month(), i)
		buckets[i] = entity.MonthBucket{
			Year:           year,
			Month:          month,
			Label:          MonthLabel(year, month),
			CommittedTotal: decimal.Zero,
			Status:         entity.MonthStatusSafe,
		}
	}

	for _, inst := range installments {
		idx := monthIndex(inst.DueDate) - startIdx
		if idx < 0 || idx >= windowMonths {
			continue
		}

		committedCents[idx] += money.ToCents(inst.Amount)
		bucket := &buckets[idx]
		bucket.InstallmentCount++
		bucket.Installments = append(bucket.Installments, entity.InstallmentSummary{
			PurchaseID:        inst.PurchaseID,
			Description:       inst.Description,
			Category:          inst.Category,
			Amount:            inst.Amount,
			Number:            inst.Number,
			TotalInstallments: inst.TotalInstallments,
		})
	}

	for i := range buckets {
		bucket := &buckets[i]
		bucket.CommittedTotal = money.FromCents(committedCents[i])
		sort.SliceStable(bucket.Installments, func(a, b int) bool {
			return bucket.Installments[a].Amount.GreaterThan(bucket.Installments[b].Amount)
		})
		classifyBucket(bucket, creditLimit)
	}

	return buckets
}

// ActivePlanCount counts distinct parent purchases that still have at least
// one installment due after now inside the window.
func ActivePlanCount(
	installments []ScheduledInstallment,
	windowStart time.Time,
	windowMonths int,
	now time.Time,
) int {
	startIdx := monthIndex(windowStart)
	active := make(map[uuid.UUID]struct{})

	for _, inst := range installments {
		idx := monthIndex(inst.DueDate) - startIdx
		if idx < 0 || idx >= windowMonths {
			continue
		}
		if inst.DueDate.After(now) {
			active[inst.PurchaseID] = struct{}{}
		}
	}

	return len(active)
}

// classifyBucket recomputes usage percent, status and alert from the
// committed total. Alerts are attached only to danger months.
func classifyBucket(bucket *entity.MonthBucket, creditLimit decimal.Decimal) {
	bucket.UsagePercent = usagePercent(bucket.CommittedTotal, creditLimit)

	switch {
	case bucket.UsagePercent > dangerThreshold:
		bucket.Status = entity.MonthStatusDanger
		bucket.Alert = fmt.Sprintf("Comprometimento alto! %.1f%% do limite.", bucket.UsagePercent)
	case bucket.UsagePercent > warningThreshold:
		bucket.Status = entity.MonthStatusWarning
		bucket.Alert = ""
	default:
		bucket.Status = entity.MonthStatusSafe
		bucket.Alert = ""
	}
}

// usagePercent returns committed/limit as a percentage, 0 when no limit is
// configured (missing configuration is never an error).
func usagePercent(committed, limit decimal.Decimal) float64 {
	if !limit.IsPositive() {
		return 0
	}
	ratio, _ := committed.Div(limit).Float64()
	return ratio * 100
}
