package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/entity"
)

func TestComputeHealthWithNoDataUsesNeutralFallbacks(t *testing.T) {
	health := ComputeHealth(HealthInput{Now: date(2025, time.March, 10)})

	// Neutral budget, pace, utilization and consistency plus zero savings.
	if health.Score != 40 {
		t.Fatalf("score = %d, want 40", health.Score)
	}
	if health.Trend != entity.TrendStable {
		t.Errorf("trend = %s, want %s", health.Trend, entity.TrendStable)
	}

	wantScores := map[string]int{
		"Orcamento":    10,
		"Poupanca":     0,
		"Ritmo":        10,
		"Cartao":       10,
		"Consistencia": 10,
	}
	if len(health.Components) != len(wantScores) {
		t.Fatalf("expected %d components, got %d", len(wantScores), len(health.Components))
	}
	for _, c := range health.Components {
		want, ok := wantScores[c.Name]
		if !ok {
			t.Errorf("unexpected component %q", c.Name)
			continue
		}
		if c.Score != want {
			t.Errorf("component %q score = %d, want %d", c.Name, c.Score, want)
		}
		if c.MaxScore != componentMaxScore {
			t.Errorf("component %q max score = %d, want %d", c.Name, c.MaxScore, componentMaxScore)
		}
		if c.Tip == "" {
			t.Errorf("component %q has no tip", c.Name)
		}
	}
}

func TestComputeHealthPerfectMonthScoresFull(t *testing.T) {
	health := ComputeHealth(HealthInput{
		Spending:     decimal.NewFromInt(500),
		Income:       decimal.NewFromInt(1000),
		Budget:       decimal.NewFromInt(1000),
		CreditLimit:  decimal.NewFromInt(5000),
		RecentMonths: []decimal.Decimal{decimal.NewFromInt(500)},
		Now:          date(2025, time.March, 1),
	})

	if health.Score != 100 {
		t.Fatalf("score = %d, want 100", health.Score)
	}
	if health.Trend != entity.TrendStable {
		t.Errorf("trend = %s, want %s", health.Trend, entity.TrendStable)
	}
}

func TestComputeHealthStaysWithinBounds(t *testing.T) {
	inputs := []HealthInput{
		{
			Spending:     decimal.NewFromInt(10000),
			Income:       decimal.NewFromInt(100),
			Budget:       decimal.NewFromInt(100),
			CreditLimit:  decimal.NewFromInt(100),
			RecentMonths: []decimal.Decimal{decimal.NewFromInt(100)},
			Now:          date(2025, time.March, 31),
		},
		{
			Spending: decimal.Zero,
			Income:   decimal.NewFromInt(5000),
			Budget:   decimal.NewFromInt(2000),
			Now:      date(2025, time.March, 15),
		},
	}

	for i, in := range inputs {
		health := ComputeHealth(in)
		if health.Score < 0 || health.Score > 100 {
			t.Errorf("input %d: score %d outside [0, 100]", i, health.Score)
		}
		for _, c := range health.Components {
			if c.Score < 0 || c.Score > componentMaxScore {
				t.Errorf("input %d: component %q score %d outside [0, %d]",
					i, c.Name, c.Score, componentMaxScore)
			}
		}
	}
}

func TestBudgetAdherenceDegradesWhenOverBudget(t *testing.T) {
	tests := []struct {
		name     string
		spending int64
		want     int
	}{
		{"within budget", 900, 20},
		{"ten percent over", 1100, 18},
		{"fifty percent over", 1500, 10},
		{"double the budget", 2000, 0},
		{"far beyond budget", 5000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := budgetAdherence(HealthInput{
				Spending: decimal.NewFromInt(tt.spending),
				Budget:   decimal.NewFromInt(1000),
			})
			if c.Score != tt.want {
				t.Errorf("score = %d, want %d", c.Score, tt.want)
			}
		})
	}
}

func TestSavingsRateTiers(t *testing.T) {
	tests := []struct {
		name     string
		spending int64
		want     int
	}{
		{"saving a quarter", 750, 20},
		{"saving exactly twenty percent", 800, 20},
		{"saving ten percent", 900, 10},
		{"breaking even", 1000, 0},
		{"spending above income", 1200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := savingsRate(HealthInput{
				Spending: decimal.NewFromInt(tt.spending),
				Income:   decimal.NewFromInt(1000),
			})
			if c.Score != tt.want {
				t.Errorf("score = %d, want %d", c.Score, tt.want)
			}
		})
	}
}

func TestSpendingPaceFirstOfMonthIsNotJudged(t *testing.T) {
	c := spendingPace(HealthInput{
		Spending: decimal.NewFromInt(999),
		Budget:   decimal.NewFromInt(1000),
		Now:      date(2025, time.March, 1),
	})
	if c.Score != componentMaxScore {
		t.Errorf("score on day 1 = %d, want %d", c.Score, componentMaxScore)
	}
}

func TestSpendingPaceTiers(t *testing.T) {
	// Budget 3100 over March (31 days) prorates to exactly 100 per day.
	now := date(2025, time.March, 10)
	budget := decimal.NewFromInt(3100)

	tests := []struct {
		name     string
		spending int64
		want     int
	}{
		{"on pace", 1000, 20},
		{"slightly over pace", 1150, 15},
		{"well over pace", 1400, 10},
		{"runaway pace", 2500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := spendingPace(HealthInput{
				Spending: decimal.NewFromInt(tt.spending),
				Budget:   budget,
				Now:      now,
			})
			if c.Score != tt.want {
				t.Errorf("score = %d, want %d", c.Score, tt.want)
			}
		})
	}
}

func TestCreditUtilizationTiers(t *testing.T) {
	tests := []struct {
		name     string
		spending int64
		want     int
	}{
		{"low utilization", 200, 20},
		{"moderate utilization", 400, 15},
		{"high utilization", 600, 10},
		{"very high utilization", 800, 5},
		{"near the limit", 950, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := creditUtilization(HealthInput{
				Spending:    decimal.NewFromInt(tt.spending),
				CreditLimit: decimal.NewFromInt(1000),
			})
			if c.Score != tt.want {
				t.Errorf("score = %d, want %d", c.Score, tt.want)
			}
		})
	}
}

func TestConsistencyTiers(t *testing.T) {
	history := []decimal.Decimal{
		decimal.NewFromInt(900),
		decimal.NewFromInt(1000),
		decimal.NewFromInt(1100),
	}

	tests := []struct {
		name     string
		spending int64
		want     int
	}{
		{"matches the average", 1000, 20},
		{"small variation", 1200, 15},
		{"noticeable variation", 1400, 10},
		{"large variation", 2200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := consistency(HealthInput{
				Spending:     decimal.NewFromInt(tt.spending),
				RecentMonths: history,
			})
			if c.Score != tt.want {
				t.Errorf("score = %d, want %d", c.Score, tt.want)
			}
		})
	}
}

func TestSavingsTrend(t *testing.T) {
	income := decimal.NewFromInt(1000)
	lastMonth := []decimal.Decimal{decimal.NewFromInt(600)}

	tests := []struct {
		name     string
		spending int64
		want     entity.Trend
	}{
		{"saving more than last month", 500, entity.TrendUp},
		{"saving less than last month", 700, entity.TrendDown},
		{"roughly the same", 620, entity.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := savingsTrend(HealthInput{
				Spending:     decimal.NewFromInt(tt.spending),
				Income:       income,
				RecentMonths: lastMonth,
			})
			if got != tt.want {
				t.Errorf("trend = %s, want %s", got, tt.want)
			}
		})
	}
}
