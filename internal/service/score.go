package service

import (
	"math"
	"sort"
)

const (
	GoalGeneral     = "general"
	GoalHighProtein = "high-protein"
	GoalLowCarb     = "low-carb"
)

// ScoreStrategy rates recipe totals against a dietary goal. Implementations
// must be pure and return a value in [0, 100].
type ScoreStrategy interface {
	Score(totals Profile) float64
}

// TargetProfile scores totals by how close their energy split is to a target
// split, how much fiber they carry and how little sugar, each per 1000 kcal.
type TargetProfile struct {
	ProteinShare float64
	CarbShare    float64
	FatShare     float64

	// FiberPer1000 is the fiber density (g per 1000 kcal) that earns the
	// full fiber component.
	FiberPer1000 float64
	// SugarCapPer1000 is the sugar density at which the sugar component
	// reaches zero.
	SugarCapPer1000 float64

	BalanceWeight float64
	FiberWeight   float64
	SugarWeight   float64
}

var goalStrategies = map[string]ScoreStrategy{
	GoalGeneral: TargetProfile{
		ProteinShare: 0.20, CarbShare: 0.50, FatShare: 0.30,
		FiberPer1000: 14, SugarCapPer1000: 50,
		BalanceWeight: 0.5, FiberWeight: 0.25, SugarWeight: 0.25,
	},
	GoalHighProtein: TargetProfile{
		ProteinShare: 0.35, CarbShare: 0.40, FatShare: 0.25,
		FiberPer1000: 14, SugarCapPer1000: 40,
		BalanceWeight: 0.6, FiberWeight: 0.2, SugarWeight: 0.2,
	},
	GoalLowCarb: TargetProfile{
		ProteinShare: 0.25, CarbShare: 0.15, FatShare: 0.60,
		FiberPer1000: 12, SugarCapPer1000: 25,
		BalanceWeight: 0.5, FiberWeight: 0.2, SugarWeight: 0.3,
	},
}

// StrategyFor returns the scoring strategy registered for goal.
func StrategyFor(goal string) (ScoreStrategy, error) {
	st, ok := goalStrategies[goal]
	if !ok {
		return nil, invalid("goal", "unknown goal %q", goal)
	}
	return st, nil
}

// Goals lists the registered goal names.
func Goals() []string {
	out := make([]string, 0, len(goalStrategies))
	for g := range goalStrategies {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

func (t TargetProfile) Score(p Profile) float64 {
	if p.Kcal <= 0 {
		return 0
	}
	kcal := float64(p.Kcal)

	var balance float64
	proteinE, carbE, fatE := 4*p.Protein, 4*p.Carbs, 9*p.Fat
	if energy := proteinE + carbE + fatE; energy > 0 {
		deviation := math.Abs(proteinE/energy-t.ProteinShare) +
			math.Abs(carbE/energy-t.CarbShare) +
			math.Abs(fatE/energy-t.FatShare)
		balance = clamp(1-deviation/2, 0, 1)
	}

	var fiber float64
	if t.FiberPer1000 > 0 {
		fiber = clamp(p.Fiber*1000/kcal/t.FiberPer1000, 0, 1)
	}

	sugar := 1.0
	if t.SugarCapPer1000 > 0 {
		sugar = 1 - clamp(p.Sugar*1000/kcal/t.SugarCapPer1000, 0, 1)
	}

	weights := t.BalanceWeight + t.FiberWeight + t.SugarWeight
	if weights <= 0 {
		return 0
	}
	score := 100 * (t.BalanceWeight*balance + t.FiberWeight*fiber + t.SugarWeight*sugar) / weights
	return round1(clamp(score, 0, 100))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
