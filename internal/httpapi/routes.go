package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects  = "/projects"
	PathInvoices  = "/invoices"
	PathDashboard = "/dashboard"
	PathSession   = "/session"
)

// Options configures the router.
type Options struct {
	Logger *slog.Logger
	// MCP, when set, is mounted at /mcp.
	MCP http.Handler
}

// NewRouter builds the HTTP entry point: REST under /api, MCP under /mcp and
// a health probe.
func NewRouter(svc Services, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(opts.Logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if opts.MCP != nil {
		router.Any("/mcp", gin.WrapH(opts.MCP))
	}

	h := NewHandler(svc, opts.Logger)
	api := router.Group("/api")
	addProjectRoutes(api, h)
	addInvoiceRoutes(api, h)
	addDashboardRoutes(api, h)
	addSessionRoutes(api, h)

	return router
}

func addProjectRoutes(rg *gin.RouterGroup, h *Handler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/:id", h.GetProject)
		projects.GET("/:id/risk", h.GetProjectRisk)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, h *Handler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", h.ListInvoices)
		invoices.POST("", h.RecordInvoice)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *Handler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", h.DashboardStats)
		dashboard.GET("/overview", h.DashboardOverview)
	}
}

func addSessionRoutes(rg *gin.RouterGroup, h *Handler) {
	sessions := rg.Group(PathSession)
	{
		sessions.GET("", h.GetSession)
		sessions.POST("", h.Login)
		sessions.DELETE("", h.Logout)
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if logger == nil {
			return
		}
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
