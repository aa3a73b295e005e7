package mcp

import (
	"time"

	"github.com/ganot/builderp/internal/domain/dashboard"
	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/domain/risk"
	"github.com/ganot/builderp/internal/domain/session"
	"github.com/ganot/builderp/internal/money"
)

// Tool inputs. Money travels as text and is parsed by the money package.

type EmptyParams struct{}

type CreateProjectParams struct {
	Name      string `json:"name" jsonschema:"project display name"`
	Budget    string `json:"budget" jsonschema:"total budget, e.g. 250000 or 250000.50"`
	Spent     string `json:"spent,omitempty" jsonschema:"amount already spent, defaults to 0"`
	Progress  int    `json:"progress,omitempty" jsonschema:"completion percentage 0-100"`
	Status    string `json:"status,omitempty" jsonschema:"Active, Completed or On Hold; defaults to Active"`
	StartDate string `json:"start_date" jsonschema:"start date YYYY-MM-DD"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"planned end date YYYY-MM-DD"`
}

type ProjectIDParams struct {
	ID int64 `json:"id" jsonschema:"project id"`
}

type SearchParams struct {
	Query string `json:"query" jsonschema:"case-insensitive text to look for; empty lists everything"`
}

type RecordInvoiceParams struct {
	ProjectID   int64  `json:"project_id" jsonschema:"project the invoice is charged to"`
	Amount      string `json:"amount" jsonschema:"positive amount, e.g. 1250.75"`
	Description string `json:"description,omitempty" jsonschema:"what the invoice is for"`
	Date        string `json:"date" jsonschema:"invoice date YYYY-MM-DD"`
	Status      string `json:"status,omitempty" jsonschema:"Paid, Pending or Overdue; defaults to Pending"`
}

type LoginParams struct {
	Username string `json:"username" jsonschema:"user to sign in as"`
	Password string `json:"password,omitempty" jsonschema:"accepted but not verified"`
}

// Tool outputs.

type ProjectView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Budget    string `json:"budget"`
	Spent     string `json:"spent"`
	Progress  int    `json:"progress"`
	Status    string `json:"status"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
}

type ProjectsResult struct {
	Projects []ProjectView `json:"projects"`
}

type InvoiceView struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"project_id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

type InvoicesResult struct {
	Invoices []InvoiceView `json:"invoices"`
}

type RecordInvoiceResult struct {
	Invoice        InvoiceView `json:"invoice"`
	ProjectUpdated bool        `json:"project_updated"`
	Warnings       []string    `json:"warnings,omitempty"`
}

type RiskView struct {
	ProjectID         int64  `json:"project_id"`
	Name              string `json:"name"`
	RiskScore         int    `json:"risk_score"`
	RiskLevel         string `json:"risk_level"`
	Reason            string `json:"reason"`
	BudgetUsedPercent string `json:"budget_used_percent"`
}

type RisksResult struct {
	Risks []RiskView `json:"risks"`
}

type StatsView struct {
	TotalRevenue   string `json:"total_revenue"`
	ActiveProjects int    `json:"active_projects"`
	TotalBudget    string `json:"total_budget"`
	TotalSpent     string `json:"total_spent"`
	CriticalRisks  int    `json:"critical_risks"`
}

type BudgetPointView struct {
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
	Budget    string `json:"budget"`
	Spent     string `json:"spent"`
}

type OverviewResult struct {
	Stats            StatsView         `json:"stats"`
	RiskDistribution map[string]int    `json:"risk_distribution"`
	BudgetVsSpent    []BudgetPointView `json:"budget_vs_spent"`
	AtRisk           []RiskView        `json:"at_risk"`
}

type SessionView struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Token     string `json:"token"`
	CreatedAt string `json:"created_at"`
}

type CurrentSessionResult struct {
	SignedIn bool         `json:"signed_in"`
	Session  *SessionView `json:"session,omitempty"`
}

type LogoutResult struct {
	SignedOut bool `json:"signed_out"`
}

func projectView(p project.Project) ProjectView {
	return ProjectView{
		ID:        p.ID,
		Name:      p.Name,
		Budget:    money.Format(p.Budget),
		Spent:     money.Format(p.Spent),
		Progress:  p.Progress,
		Status:    string(p.Status),
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	}
}

func projectViews(projects []project.Project) []ProjectView {
	out := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectView(p))
	}
	return out
}

func invoiceView(inv invoice.Invoice) InvoiceView {
	return InvoiceView{
		ID:          inv.ID,
		ProjectID:   inv.ProjectID,
		Amount:      money.Format(inv.Amount),
		Description: inv.Description,
		Date:        inv.Date,
		Status:      string(inv.Status),
	}
}

func invoiceViews(invoices []invoice.Invoice) []InvoiceView {
	out := make([]InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, invoiceView(inv))
	}
	return out
}

func riskView(pr dashboard.ProjectRisk) RiskView {
	return RiskView{
		ProjectID:         pr.ProjectID,
		Name:              pr.Name,
		RiskScore:         pr.Analysis.RiskScore,
		RiskLevel:         string(pr.Analysis.RiskLevel),
		Reason:            pr.Analysis.Reason,
		BudgetUsedPercent: pr.Analysis.BudgetUsedPercent.StringFixed(1),
	}
}

func riskViews(risks []dashboard.ProjectRisk) []RiskView {
	out := make([]RiskView, 0, len(risks))
	for _, pr := range risks {
		out = append(out, riskView(pr))
	}
	return out
}

func statsView(s dashboard.Stats) StatsView {
	return StatsView{
		TotalRevenue:   money.Format(s.TotalRevenue),
		ActiveProjects: s.ActiveProjects,
		TotalBudget:    money.Format(s.TotalBudget),
		TotalSpent:     money.Format(s.TotalSpent),
		CriticalRisks:  s.CriticalRisks,
	}
}

func overviewResult(ov dashboard.Overview) OverviewResult {
	dist := make(map[string]int, len(ov.RiskDistribution))
	for _, level := range risk.Levels {
		dist[string(level)] = ov.RiskDistribution[level]
	}

	points := make([]BudgetPointView, 0, len(ov.BudgetVsSpent))
	for _, p := range ov.BudgetVsSpent {
		points = append(points, BudgetPointView{
			ProjectID: p.ProjectID,
			Name:      p.Name,
			Budget:    money.Format(p.Budget),
			Spent:     money.Format(p.Spent),
		})
	}

	return OverviewResult{
		Stats:            statsView(ov.Stats),
		RiskDistribution: dist,
		BudgetVsSpent:    points,
		AtRisk:           riskViews(ov.AtRisk),
	}
}

func sessionView(s *session.Session) *SessionView {
	return &SessionView{
		ID:        s.ID,
		Username:  s.Username,
		Role:      string(s.Role),
		Token:     s.Token,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}
