package billing

import (
	"time"

	"github.com/card-tracker/backend/internal/domain/entity"
	"github.com/card-tracker/backend/internal/domain/money"
)

// ProjectRelease answers "how much of today's commitment disappears by month
// i", assuming no new purchases. Month 0 is the current month and its
// committed total is the baseline; each month's released amount is the
// baseline minus that month's committed total, floored at zero. Because every
// value is relative to the fixed baseline, it already represents the
// cumulative release.
func ProjectRelease(
	existing []ScheduledInstallment,
	now time.Time,
	horizonMonths int,
) []entity.LimitRelease {
	if horizonMonths < 1 {
		return nil
	}

	windowStart := startOfMonth(now)
	startIdx := monthIndex(windowStart)
	committedCents := make([]int64, horizonMonths)

	for _, inst := range existing {
		idx := monthIndex(inst.DueDate) - startIdx
		if idx < 0 || idx >= horizonMonths {
			continue
		}
		committedCents[idx] += money.ToCents(inst.Amount)
	}

	baseline := committedCents[0]
	projection := make([]entity.LimitRelease, horizonMonths)

	for i := 0; i < horizonMonths; i++ {
		released := baseline - committedCents[i]
		if released < 0 {
			released = 0
		}

		year, month := addMonths(windowStart.Year(), windowStart.Month(), i)
		projection[i] = entity.LimitRelease{
			Year:            year,
			Month:           month,
			Label:           MonthLabel(year, month),
			CommittedAmount: money.FromCents(committedCents[i]),
			ReleasedAmount:  money.FromCents(released),
		}
	}

	return projection
}
