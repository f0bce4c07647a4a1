package entity

import "github.com/shopspring/decimal"

// EvaluationSource tells whether the evaluation came from the AI advisor or
// from the deterministic local rules.
type EvaluationSource string

const (
	EvaluationSourceAdvisor  EvaluationSource = "advisor"
	EvaluationSourceFallback EvaluationSource = "fallback"
)

// Evaluation is the verdict on a hypothetical purchase. The fallback variant
// is always computable locally; the advisor may overlay a richer
// recommendation when available.
type Evaluation struct {
	Viable         bool
	ImpactScore    int // 0 (no impact) .. 10 (critical)
	Recommendation string
	BestTiming     string
	Source         EvaluationSource
}

// PeakMonth describes the month with the highest committed total after the
// hypothetical purchase is overlaid.
type PeakMonth struct {
	Label             string
	CommittedBefore   decimal.Decimal
	CommittedAfter    decimal.Decimal
	UsagePercentAfter float64
}

// Simulation is the full what-if result for a hypothetical purchase.
type Simulation struct {
	Before        []MonthBucket
	After         []MonthBucket
	MonthlyImpact decimal.Decimal
	PeakMonth     PeakMonth
	Warnings      []string // labels of danger months after the overlay
	Evaluation    Evaluation
}
