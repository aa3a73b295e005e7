package dashboard

import (
	"github.com/ganot/builderp/internal/domain/risk"
	"github.com/shopspring/decimal"
)

// Stats are portfolio totals recomputed from the full collections.
type Stats struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	ActiveProjects int             `json:"active_projects"`
	TotalBudget    decimal.Decimal `json:"total_budget"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	CriticalRisks  int             `json:"critical_risks"`
}

// ProjectRisk pairs a project with its derived analysis.
type ProjectRisk struct {
	ProjectID int64         `json:"project_id"`
	Name      string        `json:"name"`
	Analysis  risk.Analysis `json:"analysis"`
}

// BudgetPoint is one bar of the budget versus spent chart.
type BudgetPoint struct {
	ProjectID int64           `json:"project_id"`
	Name      string          `json:"name"`
	Budget    decimal.Decimal `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
}

// Overview is everything the dashboard renders in one read.
type Overview struct {
	Stats            Stats              `json:"stats"`
	RiskDistribution map[risk.Level]int `json:"risk_distribution"`
	BudgetVsSpent    []BudgetPoint      `json:"budget_vs_spent"`
	AtRisk           []ProjectRisk      `json:"at_risk"`
}
