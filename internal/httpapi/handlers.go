package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ganot/builderp/internal/domain/dashboard"
	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/domain/session"
	"github.com/gin-gonic/gin"
)

// ProjectService defines project operations needed over HTTP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id int64) (*project.Project, error)
	Search(ctx context.Context, query string) ([]project.Project, error)
}

// InvoiceService defines invoice operations needed over HTTP.
type InvoiceService interface {
	Record(ctx context.Context, req invoice.RecordRequest) (*invoice.RecordResult, error)
	List(ctx context.Context) ([]invoice.Invoice, error)
	Search(ctx context.Context, query string) ([]invoice.Invoice, error)
}

// DashboardService defines the dashboard reads needed over HTTP.
type DashboardService interface {
	Stats(ctx context.Context) (dashboard.Stats, error)
	Risk(ctx context.Context, projectID int64) (*dashboard.ProjectRisk, error)
	Overview(ctx context.Context) (dashboard.Overview, error)
}

// SessionService defines session operations needed over HTTP.
type SessionService interface {
	Login(ctx context.Context, req session.LoginRequest) (*session.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*session.Session, error)
}

// Services contains all domain services needed by the REST API.
type Services struct {
	Projects  ProjectService
	Invoices  InvoiceService
	Dashboard DashboardService
	Sessions  SessionService
}

// Handler serves the REST API.
type Handler struct {
	svc    Services
	logger *slog.Logger
}

// NewHandler creates a new REST handler.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// ListProjects lists projects, or searches them by name when q is set.
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.svc.Projects.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var payload createProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidPayload)
		return
	}

	budget, err := payload.Budget.parse()
	if err != nil {
		h.fail(c, err)
		return
	}
	spent, err := payload.Spent.parseOptional()
	if err != nil {
		h.fail(c, err)
		return
	}

	proj, err := h.svc.Projects.Create(c.Request.Context(), project.CreateRequest{
		Name:      payload.Name,
		Budget:    budget,
		Spent:     spent,
		Progress:  payload.Progress,
		Status:    project.Status(payload.Status),
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, proj)
}

func (h *Handler) GetProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	proj, err := h.svc.Projects.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, proj)
}

func (h *Handler) GetProjectRisk(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	pr, err := h.svc.Dashboard.Risk(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, pr)
}

// ListInvoices lists invoices, or searches them when q is set.
func (h *Handler) ListInvoices(c *gin.Context) {
	invoices, err := h.svc.Invoices.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *Handler) RecordInvoice(c *gin.Context) {
	var payload recordInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidPayload)
		return
	}

	amount, err := payload.Amount.parsePositive()
	if err != nil {
		h.fail(c, err)
		return
	}

	res, err := h.svc.Invoices.Record(c.Request.Context(), invoice.RecordRequest{
		ProjectID:   payload.ProjectID,
		Amount:      amount,
		Description: payload.Description,
		Date:        payload.Date,
		Status:      invoice.Status(payload.Status),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := h.svc.Dashboard.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) DashboardOverview(c *gin.Context) {
	ov, err := h.svc.Dashboard.Overview(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ov)
}

func (h *Handler) GetSession(c *gin.Context) {
	sess, err := h.svc.Sessions.Current(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *Handler) Login(c *gin.Context) {
	var payload loginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidPayload)
		return
	}
	sess, err := h.svc.Sessions.Login(c.Request.Context(), session.LoginRequest{
		Username: payload.Username,
		Password: payload.Password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.svc.Sessions.Logout(c.Request.Context()); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abort(c, newAPIError(http.StatusBadRequest, "INVALID_INPUT", "project id must be a positive integer"))
		return 0, false
	}
	return id, true
}
