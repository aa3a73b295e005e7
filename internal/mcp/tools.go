package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/domain/session"
	"github.com/ganot/builderp/internal/money"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"
)

type tools struct {
	svc Services
}

// registerTools adds every tool to the server. Results are returned as
// structured content; the SDK renders the JSON text form.
func registerTools(server *sdkmcp.Server, svc Services) {
	t := &tools{svc: svc}

	// Projects
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all projects in the order they were created",
	}, t.listProjects)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a project; the id is assigned by the store",
	}, t.createProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get a single project by id",
	}, t.getProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_projects",
		Description: "Find projects whose name contains the query",
	}, t.searchProjects)

	// Invoices
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_invoices",
		Description: "List all invoices in the order they were recorded",
	}, t.listInvoices)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "record_invoice",
		Description: "Record an invoice and add its amount to the project's spent total in one step",
	}, t.recordInvoice)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_invoices",
		Description: "Find invoices by description or by the name of their project",
	}, t.searchInvoices)

	// Risk and dashboard
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_risk_analysis",
		Description: "Classify one project's risk from spend versus progress",
	}, t.getRiskAnalysis)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_project_risks",
		Description: "Risk analysis for every project",
	}, t.listProjectRisks)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_dashboard_stats",
		Description: "Portfolio totals: revenue, budget, spent, active projects and high risk count",
	}, t.getDashboardStats)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_dashboard_overview",
		Description: "Stats plus risk distribution, budget versus spent per project and the projects needing attention",
	}, t.getDashboardOverview)

	// Session
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "login",
		Description: "Sign in, replacing any current session",
	}, t.login)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "logout",
		Description: "Sign out; safe to call when nobody is signed in",
	}, t.logout)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_current_session",
		Description: "Show who is signed in, if anyone",
	}, t.getCurrentSession)
}

func (t *tools) listProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ProjectsResult, error) {
	projects, err := t.svc.Projects.List(ctx)
	if err != nil {
		return nil, ProjectsResult{}, mapError(err)
	}
	return nil, ProjectsResult{Projects: projectViews(projects)}, nil
}

func (t *tools) createProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateProjectParams) (*sdkmcp.CallToolResult, ProjectView, error) {
	budget, err := money.Parse(in.Budget)
	if err != nil {
		return nil, ProjectView{}, mapError(err)
	}
	spent := decimal.Zero
	if strings.TrimSpace(in.Spent) != "" {
		if spent, err = money.Parse(in.Spent); err != nil {
			return nil, ProjectView{}, mapError(err)
		}
	}

	proj, err := t.svc.Projects.Create(ctx, project.CreateRequest{
		Name:      in.Name,
		Budget:    budget,
		Spent:     spent,
		Progress:  in.Progress,
		Status:    project.Status(in.Status),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	})
	if err != nil {
		return nil, ProjectView{}, mapError(err)
	}
	return nil, projectView(*proj), nil
}

func (t *tools) getProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectIDParams) (*sdkmcp.CallToolResult, ProjectView, error) {
	proj, err := t.svc.Projects.Get(ctx, in.ID)
	if err != nil {
		return nil, ProjectView{}, mapError(err)
	}
	return nil, projectView(*proj), nil
}

func (t *tools) searchProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, in SearchParams) (*sdkmcp.CallToolResult, ProjectsResult, error) {
	projects, err := t.svc.Projects.Search(ctx, in.Query)
	if err != nil {
		return nil, ProjectsResult{}, mapError(err)
	}
	return nil, ProjectsResult{Projects: projectViews(projects)}, nil
}

func (t *tools) listInvoices(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, InvoicesResult, error) {
	invoices, err := t.svc.Invoices.List(ctx)
	if err != nil {
		return nil, InvoicesResult{}, mapError(err)
	}
	return nil, InvoicesResult{Invoices: invoiceViews(invoices)}, nil
}

func (t *tools) recordInvoice(ctx context.Context, _ *sdkmcp.CallToolRequest, in RecordInvoiceParams) (*sdkmcp.CallToolResult, RecordInvoiceResult, error) {
	amount, err := money.ParsePositive(in.Amount)
	if err != nil {
		return nil, RecordInvoiceResult{}, mapError(err)
	}

	res, err := t.svc.Invoices.Record(ctx, invoice.RecordRequest{
		ProjectID:   in.ProjectID,
		Amount:      amount,
		Description: in.Description,
		Date:        in.Date,
		Status:      invoice.Status(in.Status),
	})
	if err != nil {
		return nil, RecordInvoiceResult{}, mapError(err)
	}
	return nil, RecordInvoiceResult{
		Invoice:        invoiceView(res.Invoice),
		ProjectUpdated: res.ProjectUpdated,
		Warnings:       res.Warnings,
	}, nil
}

func (t *tools) searchInvoices(ctx context.Context, _ *sdkmcp.CallToolRequest, in SearchParams) (*sdkmcp.CallToolResult, InvoicesResult, error) {
	invoices, err := t.svc.Invoices.Search(ctx, in.Query)
	if err != nil {
		return nil, InvoicesResult{}, mapError(err)
	}
	return nil, InvoicesResult{Invoices: invoiceViews(invoices)}, nil
}

func (t *tools) getRiskAnalysis(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectIDParams) (*sdkmcp.CallToolResult, RiskView, error) {
	pr, err := t.svc.Dashboard.Risk(ctx, in.ID)
	if err != nil {
		return nil, RiskView{}, mapError(err)
	}
	return nil, riskView(*pr), nil
}

func (t *tools) listProjectRisks(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, RisksResult, error) {
	risks, err := t.svc.Dashboard.ProjectRisks(ctx)
	if err != nil {
		return nil, RisksResult{}, mapError(err)
	}
	return nil, RisksResult{Risks: riskViews(risks)}, nil
}

func (t *tools) getDashboardStats(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, StatsView, error) {
	stats, err := t.svc.Dashboard.Stats(ctx)
	if err != nil {
		return nil, StatsView{}, mapError(err)
	}
	return nil, statsView(stats), nil
}

func (t *tools) getDashboardOverview(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, OverviewResult, error) {
	ov, err := t.svc.Dashboard.Overview(ctx)
	if err != nil {
		return nil, OverviewResult{}, mapError(err)
	}
	return nil, overviewResult(ov), nil
}

func (t *tools) login(ctx context.Context, _ *sdkmcp.CallToolRequest, in LoginParams) (*sdkmcp.CallToolResult, SessionView, error) {
	sess, err := t.svc.Sessions.Login(ctx, session.LoginRequest{Username: in.Username, Password: in.Password})
	if err != nil {
		return nil, SessionView{}, mapError(err)
	}
	return nil, *sessionView(sess), nil
}

func (t *tools) logout(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, LogoutResult, error) {
	if err := t.svc.Sessions.Logout(ctx); err != nil {
		return nil, LogoutResult{}, mapError(err)
	}
	return nil, LogoutResult{SignedOut: true}, nil
}

func (t *tools) getCurrentSession(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, CurrentSessionResult, error) {
	sess, err := t.svc.Sessions.Current(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return nil, CurrentSessionResult{SignedIn: false}, nil
	}
	if err != nil {
		return nil, CurrentSessionResult{}, mapError(err)
	}
	return nil, CurrentSessionResult{SignedIn: true, Session: sessionView(sess)}, nil
}
