// Package billing implements the billing-cycle and installment-projection
// engine. Every function here is pure and synchronous: outputs depend only on
// inputs, amounts are computed in integer cents, and no I/O or logging
// happens anywhere in the package.
package billing

import (
	"fmt"
	"time"
)

// monthAbbreviations maps months to Portuguese abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// MonthLabel returns the human-readable label for a month, e.g. "Mar 2025".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[month], year)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// clampDay resolves a nominal day-of-month against a short month: a card
// that closes or charges on the 31st does so on the last day of February.
// Clamping never carries into the next month.
func clampDay(year int, month time.Month, day int) int {
	if last := daysIn(year, month); day > last {
		return last
	}
	return day
}

// addMonths advances a (year, month) pair without involving days, avoiding
// the silent end-of-month rollover of time.AddDate.
func addMonths(year int, month time.Month, n int) (int, time.Month) {
	idx := year*12 + int(month) - 1 + n
	return idx / 12, time.Month(idx%12 + 1)
}

// monthIndex maps a date to a linear month count, for bucket arithmetic.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// dateOnDay builds the date for a nominal day-of-month, clamped to the
// month's length, at midnight in the given location.
func dateOnDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, clampDay(year, month, day), 0, 0, 0, 0, loc)
}

// startOfMonth truncates a date to the first day of its month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
