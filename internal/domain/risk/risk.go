// Package risk classifies projects by how far spending runs ahead of
// completed work.
package risk

import (
	"fmt"

	"github.com/ganot/builderp/internal/domain/project"
	"github.com/shopspring/decimal"
)

// Level is a coarse risk classification
type Level string

const (
	LevelLow      Level = "Low"
	LevelMedium   Level = "Medium"
	LevelHigh     Level = "High"
	LevelCritical Level = "Critical"
)

// Levels lists every level from least to most severe.
var Levels = []Level{LevelLow, LevelMedium, LevelHigh, LevelCritical}

// AtLeastHigh reports whether l needs attention on the dashboard.
func (l Level) AtLeastHigh() bool {
	return l == LevelHigh || l == LevelCritical
}

const (
	overspendMargin  = 20
	overspendPoints  = 50
	nearLimitPercent = 90
	nearLimitPoints  = 30

	reasonOnTrack   = "Project is on track."
	reasonNearLimit = "Project is nearing total budget."
	suffixNearLimit = " Also near budget limit."
)

var hundred = decimal.NewFromInt(100)

// Analysis is the derived risk of a single project.
type Analysis struct {
	ProjectID         int64           `json:"project_id"`
	RiskScore         int             `json:"risk_score"`
	RiskLevel         Level           `json:"risk_level"`
	Reason            string          `json:"reason"`
	BudgetUsedPercent decimal.Decimal `json:"budget_used_percent"`
}

// BudgetUsedPercent returns spent as a percentage of budget, or zero when
// the budget is not positive.
func BudgetUsedPercent(p project.Project) decimal.Decimal {
	if !p.Budget.IsPositive() {
		return decimal.Zero
	}
	return p.Spent.Div(p.Budget).Mul(hundred)
}

// Calculate scores a project snapshot. It is pure and deterministic.
func Calculate(p project.Project) Analysis {
	used := BudgetUsedPercent(p)
	score := 0
	reason := reasonOnTrack

	overspent := used.GreaterThan(decimal.NewFromInt(int64(p.Progress + overspendMargin)))
	if overspent {
		score += overspendPoints
		reason = fmt.Sprintf("Spending (%s%%) significantly exceeds progress (%d%%).", used.StringFixed(1), p.Progress)
	}

	if used.GreaterThan(decimal.NewFromInt(nearLimitPercent)) {
		score += nearLimitPoints
		if overspent {
			reason += suffixNearLimit
		} else {
			reason = reasonNearLimit
		}
	}

	return Analysis{
		ProjectID:         p.ID,
		RiskScore:         score,
		RiskLevel:         LevelFor(score),
		Reason:            reason,
		BudgetUsedPercent: used,
	}
}

// LevelFor maps a score onto a level.
func LevelFor(score int) Level {
	switch {
	case score > 60:
		return LevelCritical
	case score > 30:
		return LevelHigh
	case score > 10:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Distribution counts analyses per level. Every level is present.
func Distribution(analyses []Analysis) map[Level]int {
	counts := make(map[Level]int, len(Levels))
	for _, l := range Levels {
		counts[l] = 0
	}
	for _, a := range analyses {
		counts[a.RiskLevel]++
	}
	return counts
}
