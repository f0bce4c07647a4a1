package entity

// Trend compares this month's implied savings rate to last month's.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// HealthComponent is one of the five 20-point slices of the health score.
type HealthComponent struct {
	Name     string
	Score    int // 0..20
	MaxScore int
	Tip      string
}

// HealthScore is the overall 0..100 financial health verdict.
type HealthScore struct {
	Score      int
	Components []HealthComponent
	Trend      Trend
}
