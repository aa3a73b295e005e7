package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `builderp keeps the books for construction projects: projects with a budget,
invoices charged against them, and a risk rating derived from spend versus progress.

Workflow:
1) Orient: get_dashboard_overview (totals, risk distribution, projects needing attention).
2) Browse: list_projects / search_projects, list_invoices / search_invoices.
3) Drill in: get_project, get_risk_analysis.
4) Write: create_project, record_invoice. Recording an invoice also raises the project's spent total.
   If the project id is unknown the invoice is still kept and a warning is returned.

Money is exchanged as decimal text ("1250.75"). Dates are YYYY-MM-DD.

Docs:
- builderp://docs/index
- builderp://docs/risk-methodology
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "builderp://docs/index",
		Name:        "docs_index",
		Title:       "builderp docs index",
		Description: "What the server stores and which tool to reach for.",
		Content: `# builderp: Agent Docs Index

## Entities

- **Project**: name, budget, spent, progress (0-100), status (` + "`Active`" + `, ` + "`Completed`" + `, ` + "`On Hold`" + `), start and end dates.
- **Invoice**: an immutable charge against a project with amount, description, date and status (` + "`Paid`" + `, ` + "`Pending`" + `, ` + "`Overdue`" + `).
- **Session**: the single signed-in user. Informational only; no tool requires it and the token is never verified.

Ids are assigned by the store, start at 1 and are never reused. Lists come back in creation order.

## Tools

| Need | Tool |
|---|---|
| Portfolio at a glance | ` + "`get_dashboard_overview`" + `, ` + "`get_dashboard_stats`" + ` |
| Find a project | ` + "`list_projects`" + `, ` + "`search_projects`" + `, ` + "`get_project`" + ` |
| Find an invoice | ` + "`list_invoices`" + `, ` + "`search_invoices`" + ` |
| Explain a rating | ` + "`get_risk_analysis`" + `, ` + "`list_project_risks`" + ` |
| Change data | ` + "`create_project`" + `, ` + "`record_invoice`" + ` |
| Identity | ` + "`login`" + `, ` + "`logout`" + `, ` + "`get_current_session`" + ` |

## Limits

- Projects and invoices cannot be edited or deleted.
- Revenue counts every invoice, paid or not.
`,
	},
	{
		URI:         "builderp://docs/risk-methodology",
		Name:        "docs_risk_methodology",
		Title:       "Risk methodology",
		Description: "How risk scores and levels are derived from budget, spent and progress.",
		Content: `# Risk methodology

Risk is recomputed on every read from the project's current figures. Nothing is stored.

## Budget used

` + "`budget_used_percent = spent / budget * 100`" + `, or 0 when the budget is 0.

## Score

| Condition | Points | Reason |
|---|---|---|
| budget used > progress + 20 | +50 | "Spending (X%) significantly exceeds progress (Y%)." |
| budget used > 90 | +30 | "Project is nearing total budget.", or " Also near budget limit." appended to the reason above |

With neither condition the reason is "Project is on track." The maximum score is 80.

## Level

| Score | Level |
|---|---|
| > 60 | Critical |
| > 30 | High |
| > 10 | Medium |
| otherwise | Low |

A project that is only near its budget limit scores 30 and rates Medium. Overspending against progress alone is High.

## Dashboard

` + "`critical_risks`" + ` counts projects rated High or Critical; the same projects are listed in ` + "`at_risk`" + ` of the overview.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
