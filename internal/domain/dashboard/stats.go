// Package dashboard aggregates portfolio figures from project and invoice
// snapshots.
package dashboard

import (
	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/domain/risk"
	"github.com/ganot/builderp/internal/money"
	"github.com/shopspring/decimal"
)

// ComputeStats walks both collections and totals them. Revenue counts every
// invoice regardless of status.
func ComputeStats(projects []project.Project, invoices []invoice.Invoice) Stats {
	amounts := make([]decimal.Decimal, 0, len(invoices))
	for _, inv := range invoices {
		amounts = append(amounts, inv.Amount)
	}

	budgets := make([]decimal.Decimal, 0, len(projects))
	spent := make([]decimal.Decimal, 0, len(projects))
	stats := Stats{TotalRevenue: money.Sum(amounts...)}
	for _, p := range projects {
		if p.Status == project.StatusActive {
			stats.ActiveProjects++
		}
		budgets = append(budgets, p.Budget)
		spent = append(spent, p.Spent)
		if risk.Calculate(p).RiskLevel.AtLeastHigh() {
			stats.CriticalRisks++
		}
	}
	stats.TotalBudget = money.Sum(budgets...)
	stats.TotalSpent = money.Sum(spent...)

	return stats
}

// BuildOverview derives the full dashboard view from snapshots.
func BuildOverview(projects []project.Project, invoices []invoice.Invoice) Overview {
	risks := make([]ProjectRisk, 0, len(projects))
	analyses := make([]risk.Analysis, 0, len(projects))
	points := make([]BudgetPoint, 0, len(projects))
	atRisk := []ProjectRisk{}

	for _, p := range projects {
		a := risk.Calculate(p)
		pr := ProjectRisk{ProjectID: p.ID, Name: p.Name, Analysis: a}
		risks = append(risks, pr)
		analyses = append(analyses, a)
		points = append(points, BudgetPoint{ProjectID: p.ID, Name: p.Name, Budget: p.Budget, Spent: p.Spent})
		if a.RiskLevel.AtLeastHigh() {
			atRisk = append(atRisk, pr)
		}
	}

	return Overview{
		Stats:            ComputeStats(projects, invoices),
		RiskDistribution: risk.Distribution(analyses),
		BudgetVsSpent:    points,
		AtRisk:           atRisk,
	}
}
