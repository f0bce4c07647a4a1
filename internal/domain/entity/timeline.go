package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthStatus classifies how much of the credit limit a month consumes.
type MonthStatus string

const (
	MonthStatusSafe    MonthStatus = "safe"    // usage <= 50%
	MonthStatusWarning MonthStatus = "warning" // usage > 50%
	MonthStatusDanger  MonthStatus = "danger"  // usage > 80%
)

// InstallmentSummary is a display summary of one installment inside a month
// bucket, carrying enough of the parent purchase for listing.
type InstallmentSummary struct {
	PurchaseID        uuid.UUID
	Description       string
	Category          string
	Amount            decimal.Decimal
	Number            int
	TotalInstallments int
}

// MonthBucket aggregates the installments due within a single calendar month.
// Buckets are derived on every query from current installment data and are
// never persisted.
type MonthBucket struct {
	Year             int
	Month            time.Month
	Label            string
	CommittedTotal   decimal.Decimal
	InstallmentCount int
	UsagePercent     float64
	Status           MonthStatus
	Alert            string // set only for danger months
	Installments     []InstallmentSummary
}

// Timeline is the multi-month commitment view over a window of consecutive
// months, plus window-level aggregates.
type Timeline struct {
	Months          []MonthBucket
	TotalLimit      decimal.Decimal
	TotalBudget     decimal.Decimal
	ActivePlanCount int
}
