package billing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/entity"
)

// componentMaxScore is the cap of each health component before the final clamp.
const componentMaxScore = 20

// trendThreshold is the savings-rate delta (in rate points) that separates
// up/down from stable.
const trendThreshold = 0.03

// HealthInput carries the aggregated monthly numbers the health score is
// computed from. Missing configuration (zero budget, income or limit, empty
// history) is never an error: each component has a documented neutral
// fallback so partial data still yields a usable score.
type HealthInput struct {
	Spending     decimal.Decimal   // current month committed total
	Income       decimal.Decimal   // current month income
	Budget       decimal.Decimal   // monthly budget, zero when unset
	CreditLimit  decimal.Decimal   // total credit limit, zero when unset
	RecentMonths []decimal.Decimal // prior months' totals, oldest first
	Now          time.Time
}

// ComputeHealth scores overall financial health from monthly aggregates.
// Five independent components of up to 20 points each sum into a score
// clamped to [0, 100], plus a savings-rate trend against last month.
func ComputeHealth(in HealthInput) *entity.HealthScore {
	components := []entity.HealthComponent{
		budgetAdherence(in),
		savingsRate(in),
		spendingPace(in),
		creditUtilization(in),
		consistency(in),
	}

	total := 0
	for _, c := range components {
		total += c.Score
	}
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return &entity.HealthScore{
		Score:      total,
		Components: components,
		Trend:      savingsTrend(in),
	}
}

// budgetAdherence scores how spending compares to the configured budget.
// No budget configured is a neutral 10.
func budgetAdherence(in HealthInput) entity.HealthComponent {
	c := entity.HealthComponent{
		Name:     "Orcamento",
		Score:    componentMaxScore,
		MaxScore: componentMaxScore,
		Tip:      "Seus gastos estao dentro do orcamento.",
	}

	if !in.Budget.IsPositive() {
		c.Score = 10
		c.Tip = "Defina um orcamento mensal para melhorar sua pontuacao."
		return c
	}

	ratio := ratioOf(in.Spending, in.Budget)
	if ratio > 1 {
		c.Score = clampScore(math.Round(20 * (2 - ratio)))
		c.Tip = "Voce ultrapassou o orcamento. Revise seus limites."
	}
	return c
}

// savingsRate scores the share of income left after spending. No income
// means the component contributes nothing.
func savingsRate(in HealthInput) entity.HealthComponent {
	c := entity.HealthComponent{
		Name:     "Poupanca",
		MaxScore: componentMaxScore,
	}

	if !in.Income.IsPositive() {
		c.Score = 0
		c.Tip = "Cadastre sua renda para calcular sua taxa de poupanca."
		return c
	}

	rate := 1 - ratioOf(in.Spending, in.Income)
	switch {
	case rate >= 0.20:
		c.Score = 20
		c.Tip = "Excelente! Voce esta poupando 20% ou mais da sua renda."
	case rate > 0:
		c.Score = int(math.Round(rate / 0.20 * 20))
		c.Tip = "Tente aumentar sua poupanca para 20% da renda."
	default:
		c.Score = 0
		c.Tip = "Seus gastos ultrapassaram sua renda este mes."
	}
	return c
}

// spendingPace compares spending so far against the budget prorated by day
// of month. On day 1 the pace cannot be judged yet and scores full points.
func spendingPace(in HealthInput) entity.HealthComponent {
	c := entity.HealthComponent{
		Name:     "Ritmo",
		Score:    componentMaxScore,
		MaxScore: componentMaxScore,
		Tip:      "Seu ritmo de gastos esta saudavel.",
	}

	if !in.Budget.IsPositive() {
		c.Score = 10
		c.Tip = "Defina um orcamento para acompanhar seu ritmo de gastos."
		return c
	}

	day := in.Now.Day()
	if day == 1 {
		return c
	}

	budget, _ := in.Budget.Float64()
	spending, _ := in.Spending.Float64()
	expectedPace := budget / float64(daysIn(in.Now.Year(), in.Now.Month())) * float64(day)
	paceRatio := spending / expectedPace

	switch {
	case paceRatio <= 1:
		// healthy, keep defaults
	case paceRatio <= 1.2:
		c.Score = 15
		c.Tip = "Voce esta um pouco acima do ritmo ideal de gastos."
	case paceRatio <= 1.5:
		c.Score = 10
		c.Tip = "Atencao: seu ritmo de gastos esta acelerado para este ponto do mes."
	default:
		c.Score = clampScore(math.Round(20 * (2 - paceRatio)))
		c.Tip = "Alerta: ritmo de gastos muito acima do esperado."
	}
	return c
}

// creditUtilization scores spending against the total credit limit. No limit
// configured is a neutral 10.
func creditUtilization(in HealthInput) entity.HealthComponent {
	c := entity.HealthComponent{
		Name:     "Cartao",
		MaxScore: componentMaxScore,
	}

	if !in.CreditLimit.IsPositive() {
		c.Score = 10
		c.Tip = "Cadastre seus cartoes para acompanhar a utilizacao."
		return c
	}

	util := ratioOf(in.Spending, in.CreditLimit)
	switch {
	case util < 0.3:
		c.Score = 20
		c.Tip = "Utilizacao do cartao esta baixa. Otimo!"
	case util < 0.5:
		c.Score = 15
		c.Tip = "Utilizacao do cartao entre 30-50%. Tente manter abaixo de 30%."
	case util < 0.7:
		c.Score = 10
		c.Tip = "Utilizacao do cartao alta (50-70%). Cuidado com o limite."
	case util < 0.9:
		c.Score = 5
		c.Tip = "Utilizacao do cartao muito alta (70-90%). Risco de estouro."
	default:
		c.Score = 0
		c.Tip = "Cartao quase no limite! Priorize reduzir gastos."
	}
	return c
}

// consistency scores how far this month's spending deviates from the recent
// average. Less than one prior month of history is a neutral 10.
func consistency(in HealthInput) entity.HealthComponent {
	c := entity.HealthComponent{
		Name:     "Consistencia",
		Score:    componentMaxScore,
		MaxScore: componentMaxScore,
		Tip:      "Seus gastos estao consistentes com os meses anteriores.",
	}

	if len(in.RecentMonths) < 1 {
		c.Score = 10
		c.Tip = "Precisamos de mais meses de dados para avaliar consistencia."
		return c
	}

	sum := decimal.Zero
	for _, m := range in.RecentMonths {
		sum = sum.Add(m)
	}
	avgPrev := sum.Div(decimal.NewFromInt(int64(len(in.RecentMonths))))
	if !avgPrev.IsPositive() {
		return c
	}

	variance := math.Abs(ratioOf(in.Spending, avgPrev) - 1)
	switch {
	case variance <= 0.10:
		// consistent, keep defaults
	case variance <= 0.25:
		c.Score = 15
		c.Tip = "Seus gastos variaram um pouco em relacao a media recente."
	case variance <= 0.50:
		c.Score = 10
		c.Tip = "Gastos deste mes estao bem diferentes da sua media."
	default:
		c.Score = clampScore(math.Round(20 * (1 - variance)))
		c.Tip = "Grande variacao nos gastos este mes. Verifique compras atipicas."
	}
	return c
}

// savingsTrend compares this month's implied savings rate to last month's,
// assuming flat income. Without income or prior-month data it is stable.
func savingsTrend(in HealthInput) entity.Trend {
	if !in.Income.IsPositive() || len(in.RecentMonths) == 0 {
		return entity.TrendStable
	}

	lastSpending := in.RecentMonths[len(in.RecentMonths)-1]
	lastRate := 1 - ratioOf(lastSpending, in.Income)
	currentRate := 1 - ratioOf(in.Spending, in.Income)

	switch diff := currentRate - lastRate; {
	case diff > trendThreshold:
		return entity.TrendUp
	case diff < -trendThreshold:
		return entity.TrendDown
	default:
		return entity.TrendStable
	}
}

func ratioOf(num, den decimal.Decimal) float64 {
	ratio, _ := num.Div(den).Float64()
	return ratio
}

func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > componentMaxScore {
		return componentMaxScore
	}
	return int(score)
}
