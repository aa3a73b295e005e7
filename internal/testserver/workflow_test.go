package testserver_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/ganot/builderp/internal/mcp"
	"github.com/ganot/builderp/internal/testserver"
	"github.com/stretchr/testify/require"
)

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, out), string(body))
}

func TestWorkflow_InvoiceRaisesRiskAcrossSurfaces(t *testing.T) {
	ts := testserver.New(t)
	remote := ts.ConnectHTTP(t)

	var stats mcp.StatsView
	testserver.CallTool(t, remote, "get_dashboard_stats", map[string]any{}, &stats)
	require.Equal(t, "150000.00", stats.TotalRevenue)
	require.Equal(t, "1850000.00", stats.TotalBudget)
	require.Equal(t, "660000.00", stats.TotalSpent)
	require.Equal(t, 3, stats.ActiveProjects)
	require.Equal(t, 1, stats.CriticalRisks)

	testserver.CallTool(t, remote, "login", map[string]any{"username": "site-lead"}, nil)

	var recorded mcp.RecordInvoiceResult
	testserver.CallTool(t, remote, "record_invoice", map[string]any{
		"project_id":  1,
		"amount":      "130000",
		"description": "Facade panels",
		"date":        "2024-01-05",
	}, &recorded)
	require.True(t, recorded.ProjectUpdated)

	// the in-memory session sees the same store
	var risk mcp.RiskView
	ts.CallTool(t, "get_risk_analysis", map[string]any{"id": 1}, &risk)
	require.Equal(t, "High", risk.RiskLevel)
	require.Equal(t, "50.0", risk.BudgetUsedPercent)

	var restStats map[string]any
	getJSON(t, ts.HTTP.URL+"/api/dashboard/stats", &restStats)
	require.Equal(t, "280000", restStats["total_revenue"])
	require.Equal(t, "790000", restStats["total_spent"])
	require.Equal(t, float64(2), restStats["critical_risks"])

	var sess map[string]any
	getJSON(t, ts.HTTP.URL+"/api/session", &sess)
	require.Equal(t, "site-lead", sess["username"])
}

func TestWorkflow_RESTWritesVisibleOverMCP(t *testing.T) {
	ts := testserver.New(t)
	remote := ts.ConnectHTTP(t)

	resp, err := http.Post(ts.HTTP.URL+"/api/projects", "application/json",
		strings.NewReader(`{"name":"Harbor Warehouse","budget":"300000","progress":10,"start_date":"2024-03-01"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var found mcp.ProjectsResult
	testserver.CallTool(t, remote, "search_projects", map[string]any{"query": "harbor"}, &found)
	require.Len(t, found.Projects, 1)
	require.Equal(t, int64(4), found.Projects[0].ID)
	require.Equal(t, "300000.00", found.Projects[0].Budget)

	res := testserver.CallTool(t, remote, "get_project", map[string]any{"id": 99}, nil)
	require.Contains(t, testserver.ErrorText(t, res), "PROJECT_NOT_FOUND")
}
