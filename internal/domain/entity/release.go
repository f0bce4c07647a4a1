package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LimitRelease is one month of the limit release projection: how much of
// today's committed load has rolled off by that month, assuming no new
// purchases. Released amounts are relative to the month-0 baseline, so each
// value already represents the cumulative release.
type LimitRelease struct {
	Year            int
	Month           time.Month
	Label           string
	CommittedAmount decimal.Decimal
	ReleasedAmount  decimal.Decimal
}
