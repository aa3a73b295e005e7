package mcp

import (
	"context"
	"log/slog"

	"github.com/ganot/builderp/internal/domain/dashboard"
	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/domain/session"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id int64) (*project.Project, error)
	Search(ctx context.Context, query string) ([]project.Project, error)
}

// InvoiceService defines invoice operations needed by MCP.
type InvoiceService interface {
	Record(ctx context.Context, req invoice.RecordRequest) (*invoice.RecordResult, error)
	List(ctx context.Context) ([]invoice.Invoice, error)
	Search(ctx context.Context, query string) ([]invoice.Invoice, error)
}

// DashboardService defines risk and aggregate reads needed by MCP.
type DashboardService interface {
	Stats(ctx context.Context) (dashboard.Stats, error)
	Risk(ctx context.Context, projectID int64) (*dashboard.ProjectRisk, error)
	ProjectRisks(ctx context.Context) ([]dashboard.ProjectRisk, error)
	Overview(ctx context.Context) (dashboard.Overview, error)
}

// SessionService defines session operations needed by MCP.
type SessionService interface {
	Login(ctx context.Context, req session.LoginRequest) (*session.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*session.Session, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects  ProjectService
	Invoices  InvoiceService
	Dashboard DashboardService
	Sessions  SessionService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "builderp",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	// actor runs first so traffic logs carry the username
	server.AddReceivingMiddleware(
		actorMiddleware(cfg.Services.Sessions),
		trafficLoggingMiddleware(cfg.Logger, "inbound"),
	)
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
