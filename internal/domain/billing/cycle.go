package billing

import (
	"time"

	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

// ResolveFirstDueDate maps a purchase into the correct card billing cycle and
// returns the due date of its first installment.
//
// A purchase made after the closing day misses the current cycle and belongs
// to the next one; a purchase on the closing day itself still makes the
// current cycle. Within the resolved cycle, a due day lower than the closing
// day falls in the following month (the card closes late and charges early
// next month); otherwise the due date stays in the cycle month.
//
// Day-of-month policy for short months: nominal days beyond the month's
// length clamp to its last day. A card closing on the 31st closes on Feb 28,
// and a due day of 31 charges on Apr 30. Clamping never rolls into the next
// month, and each month re-derives from the nominal day, so a 31 clamped in
// February is back on the 31st in March.
func ResolveFirstDueDate(purchaseDate time.Time, closingDay, dueDay int) (time.Time, error) {
	if closingDay < 1 || closingDay > 31 {
		return time.Time{}, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidClosingDay,
			"closing day must be between 1 and 31",
			domainerror.ErrInvalidClosingDay,
		)
	}
	if dueDay < 1 || dueDay > 31 {
		return time.Time{}, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
		)
	}

	cycleYear, cycleMonth := purchaseDate.Year(), purchaseDate.Month()

	// Compare against the effective closing day of this month: in February a
	// closing day of 31 means the statement closes on the 28th.
	if purchaseDate.Day() > clampDay(cycleYear, cycleMonth, closingDay) {
		cycleYear, cycleMonth = addMonths(cycleYear, cycleMonth, 1)
	}

	dueYear, dueMonth := cycleYear, cycleMonth
	if dueDay < closingDay {
		dueYear, dueMonth = addMonths(dueYear, dueMonth, 1)
	}

	return dateOnDay(dueYear, dueMonth, dueDay, purchaseDate.Location()), nil
}
