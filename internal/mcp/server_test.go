package mcp_test

import (
	"context"
	"testing"

	"github.com/ganot/builderp/internal/mcp"
	"github.com/ganot/builderp/internal/testserver"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func TestListTools(t *testing.T) {
	ts := testserver.New(t)

	res, err := ts.Client.ListTools(context.Background(), &sdkmcp.ListToolsParams{})
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{
		"list_projects", "create_project", "get_project", "search_projects",
		"list_invoices", "record_invoice", "search_invoices",
		"get_risk_analysis", "list_project_risks", "get_dashboard_stats", "get_dashboard_overview",
		"login", "logout", "get_current_session",
	}, names)
}

func TestListProjects(t *testing.T) {
	ts := testserver.New(t)

	var out mcp.ProjectsResult
	ts.CallTool(t, "list_projects", map[string]any{}, &out)
	require.Len(t, out.Projects, 3)
	require.Equal(t, "Skyline Apartments", out.Projects[0].Name)
	require.Equal(t, "500000.00", out.Projects[0].Budget)
	require.Equal(t, "120000.00", out.Projects[0].Spent)
}

func TestCreateAndGetProject(t *testing.T) {
	ts := testserver.New(t)

	var created mcp.ProjectView
	ts.CallTool(t, "create_project", map[string]any{
		"name":       "Harbor Warehouse",
		"budget":     "300000",
		"progress":   5,
		"start_date": "2024-03-01",
	}, &created)
	require.Equal(t, int64(4), created.ID)
	require.Equal(t, "Active", created.Status)
	require.Equal(t, "0.00", created.Spent)

	var got mcp.ProjectView
	ts.CallTool(t, "get_project", map[string]any{"id": 4}, &got)
	require.Equal(t, created, got)
}

func TestCreateProject_Invalid(t *testing.T) {
	ts := testserver.New(t)

	res := ts.CallTool(t, "create_project", map[string]any{
		"name":       "Bad",
		"budget":     "1e6",
		"start_date": "2024-03-01",
	}, nil)
	require.Contains(t, testserver.ErrorText(t, res), "INVALID_AMOUNT")

	res = ts.CallTool(t, "create_project", map[string]any{
		"name":       "Bad",
		"budget":     "100",
		"progress":   150,
		"start_date": "2024-03-01",
	}, nil)
	require.Contains(t, testserver.ErrorText(t, res), "INVALID_INPUT")
}

func TestGetProject_NotFound(t *testing.T) {
	ts := testserver.New(t)

	res := ts.CallTool(t, "get_project", map[string]any{"id": 404}, nil)
	require.Contains(t, testserver.ErrorText(t, res), "PROJECT_NOT_FOUND")
}

func TestRecordInvoice(t *testing.T) {
	ts := testserver.New(t)

	var before mcp.StatsView
	ts.CallTool(t, "get_dashboard_stats", map[string]any{}, &before)
	require.Equal(t, "150000.00", before.TotalRevenue)
	require.Equal(t, 1, before.CriticalRisks)

	var out mcp.RecordInvoiceResult
	ts.CallTool(t, "record_invoice", map[string]any{
		"project_id":  1,
		"amount":      "130000",
		"description": "Facade panels",
		"date":        "2024-01-05",
		"status":      "Paid",
	}, &out)
	require.True(t, out.ProjectUpdated)
	require.Equal(t, int64(4), out.Invoice.ID)
	require.Equal(t, "130000.00", out.Invoice.Amount)

	var after mcp.StatsView
	ts.CallTool(t, "get_dashboard_stats", map[string]any{}, &after)
	require.Equal(t, "280000.00", after.TotalRevenue)
	require.Equal(t, "790000.00", after.TotalSpent)
	require.Equal(t, 2, after.CriticalRisks)

	var risk mcp.RiskView
	ts.CallTool(t, "get_risk_analysis", map[string]any{"id": 1}, &risk)
	require.Equal(t, "High", risk.RiskLevel)
	require.Equal(t, "50.0", risk.BudgetUsedPercent)
}

func TestRecordInvoice_UnknownProject(t *testing.T) {
	ts := testserver.New(t)

	var out mcp.RecordInvoiceResult
	ts.CallTool(t, "record_invoice", map[string]any{
		"project_id": 999,
		"amount":     "10",
		"date":       "2024-01-05",
	}, &out)
	require.False(t, out.ProjectUpdated)
	require.Equal(t, []string{"project 999 not found; invoice 4 recorded without updating spend"}, out.Warnings)
	require.Equal(t, "Pending", out.Invoice.Status)
}

func TestRecordInvoice_RejectsAmount(t *testing.T) {
	ts := testserver.New(t)

	for _, amount := range []string{"0", "-10", "ten", "1.2.3"} {
		res := ts.CallTool(t, "record_invoice", map[string]any{
			"project_id": 1,
			"amount":     amount,
			"date":       "2024-01-05",
		}, nil)
		require.Contains(t, testserver.ErrorText(t, res), "INVALID_AMOUNT", amount)
	}

	var out mcp.InvoicesResult
	ts.CallTool(t, "list_invoices", map[string]any{}, &out)
	require.Len(t, out.Invoices, 3)
}

func TestSearch(t *testing.T) {
	ts := testserver.New(t)

	var projects mcp.ProjectsResult
	ts.CallTool(t, "search_projects", map[string]any{"query": "reno"}, &projects)
	require.Len(t, projects.Projects, 1)
	require.Equal(t, int64(2), projects.Projects[0].ID)

	var invoices mcp.InvoicesResult
	ts.CallTool(t, "search_invoices", map[string]any{"query": "skyline"}, &invoices)
	require.Len(t, invoices.Invoices, 2)
}

func TestDashboardOverview(t *testing.T) {
	ts := testserver.New(t)

	var ov mcp.OverviewResult
	ts.CallTool(t, "get_dashboard_overview", map[string]any{}, &ov)
	require.Equal(t, "1850000.00", ov.Stats.TotalBudget)
	require.Equal(t, "660000.00", ov.Stats.TotalSpent)
	require.Equal(t, 3, ov.Stats.ActiveProjects)
	require.Equal(t, map[string]int{"Low": 2, "Medium": 0, "High": 0, "Critical": 1}, ov.RiskDistribution)
	require.Len(t, ov.BudgetVsSpent, 3)
	require.Len(t, ov.AtRisk, 1)
	require.Equal(t, "Downtown Plaza Reno", ov.AtRisk[0].Name)

	var risks mcp.RisksResult
	ts.CallTool(t, "list_project_risks", map[string]any{}, &risks)
	require.Len(t, risks.Risks, 3)
	require.Equal(t, 80, risks.Risks[1].RiskScore)
}

func TestSessionTools(t *testing.T) {
	ts := testserver.New(t)

	var current mcp.CurrentSessionResult
	ts.CallTool(t, "get_current_session", map[string]any{}, &current)
	require.False(t, current.SignedIn)

	var sess mcp.SessionView
	ts.CallTool(t, "login", map[string]any{"username": "foreman", "password": "anything"}, &sess)
	require.Equal(t, "foreman", sess.Username)
	require.Equal(t, "Admin", sess.Role)

	ts.CallTool(t, "get_current_session", map[string]any{}, &current)
	require.True(t, current.SignedIn)
	require.Equal(t, sess.Token, current.Session.Token)

	var out mcp.LogoutResult
	ts.CallTool(t, "logout", map[string]any{}, &out)
	require.True(t, out.SignedOut)

	current = mcp.CurrentSessionResult{}
	ts.CallTool(t, "get_current_session", map[string]any{}, &current)
	require.False(t, current.SignedIn)
	require.Nil(t, current.Session)

	res := ts.CallTool(t, "login", map[string]any{"username": "  "}, nil)
	require.Contains(t, testserver.ErrorText(t, res), "INVALID_INPUT")
}

func TestDocResources(t *testing.T) {
	ts := testserver.New(t)

	res, err := ts.Client.ReadResource(context.Background(), &sdkmcp.ReadResourceParams{URI: "builderp://docs/risk-methodology"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	require.Contains(t, res.Contents[0].Text, "Project is nearing total budget.")
	require.Contains(t, res.Contents[0].Text, "scores 30 and rates Medium")
}
