package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/entity"
	"github.com/card-tracker/backend/internal/domain/money"
)

// simulationWindowMonths is the horizon of the what-if timeline.
const simulationWindowMonths = 12

// Simulate runs the full what-if analysis for a hypothetical purchase of
// amount in count installments made now: it builds the "before" timeline
// from the existing installments, generates the hypothetical plan with the
// card's cycle configuration, overlays it into an "after" timeline, and
// derives peak month, warnings, monthly impact and the deterministic
// evaluation. The evaluation is always computed locally; a richer advisor
// recommendation may replace it upstream when available.
func Simulate(
	existing []ScheduledInstallment,
	card CardTerms,
	amount decimal.Decimal,
	count int,
	now time.Time,
) (*entity.Simulation, error) {
	plan, err := GeneratePlan(amount, count, now, card.ClosingDay, card.DueDay)
	if err != nil {
		return nil, err
	}

	windowStart := startOfMonth(now)
	before := BuildTimeline(existing, windowStart, simulationWindowMonths, card.CreditLimit)
	after := Overlay(before, plan, card.CreditLimit)

	peak := peakMonth(before, after)

	var warnings []string
	for _, bucket := range after {
		if bucket.Status == entity.MonthStatusDanger {
			warnings = append(warnings, bucket.Label)
		}
	}

	monthlyImpact := money.Normalize(amount.Div(decimal.NewFromInt(int64(count))))

	return &entity.Simulation{
		Before:        before,
		After:         after,
		MonthlyImpact: monthlyImpact,
		PeakMonth:     peak,
		Warnings:      warnings,
		Evaluation:    FallbackEvaluation(peak.UsagePercentAfter),
	}, nil
}

// Overlay returns a deep copy of the before buckets with each plan
// installment's amount added into its matching month, then usage and status
// recomputed per bucket. Installments falling outside the window are ignored.
func Overlay(before []entity.MonthBucket, plan []entity.Installment, creditLimit decimal.Decimal) []entity.MonthBucket {
	if len(before) == 0 {
		return nil
	}

	startIdx := before[0].Year*12 + int(before[0].Month) - 1
	after := make([]entity.MonthBucket, len(before))

	for i, bucket := range before {
		copied := bucket
		copied.Installments = append([]entity.InstallmentSummary(nil), bucket.Installments...)
		after[i] = copied
	}

	for _, inst := range plan {
		idx := monthIndex(inst.DueDate) - startIdx
		if idx < 0 || idx >= len(after) {
			continue
		}
		after[idx].CommittedTotal = after[idx].CommittedTotal.Add(inst.Amount)
		after[idx].InstallmentCount++
	}

	for i := range after {
		classifyBucket(&after[i], creditLimit)
	}

	return after
}

// peakMonth finds the after bucket with the largest committed total and
// reports it against its before counterpart. Ties keep the earliest month.
func peakMonth(before, after []entity.MonthBucket) entity.PeakMonth {
	peak := entity.PeakMonth{
		CommittedBefore: decimal.Zero,
		CommittedAfter:  decimal.Zero,
	}

	for i, bucket := range after {
		if bucket.CommittedTotal.GreaterThan(peak.CommittedAfter) {
			peak = entity.PeakMonth{
				Label:             bucket.Label,
				CommittedBefore:   before[i].CommittedTotal,
				CommittedAfter:    bucket.CommittedTotal,
				UsagePercentAfter: bucket.UsagePercent,
			}
		}
	}

	return peak
}

// FallbackEvaluation is the deterministic verdict used whenever the advisor
// is unavailable: over 100% peak usage the purchase is not viable, over 80%
// it is viable but heavily committing, otherwise it has no notable impact.
func FallbackEvaluation(peakUsagePercent float64) entity.Evaluation {
	switch {
	case peakUsagePercent > 100:
		return entity.Evaluation{
			Viable:         false,
			ImpactScore:    10,
			Recommendation: "Esta compra excede o seu limite.",
			Source:         entity.EvaluationSourceFallback,
		}
	case peakUsagePercent > 80:
		return entity.Evaluation{
			Viable:         true,
			ImpactScore:    8,
			Recommendation: "Atencao: seu limite ficara muito comprometido.",
			Source:         entity.EvaluationSourceFallback,
		}
	default:
		return entity.Evaluation{
			Viable:         true,
			ImpactScore:    0,
			Recommendation: "Compra segura baseada nos dados disponiveis.",
			Source:         entity.EvaluationSourceFallback,
		}
	}
}
