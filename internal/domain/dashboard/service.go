package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/domain/risk"
)

// ProjectReader is the read side of the project store.
type ProjectReader interface {
	Get(ctx context.Context, id int64) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
}

// InvoiceReader is the read side of the invoice store.
type InvoiceReader interface {
	List(ctx context.Context) ([]invoice.Invoice, error)
}

// Service reads fresh snapshots and derives dashboard figures from them.
// It holds no state of its own.
type Service struct {
	projects ProjectReader
	invoices InvoiceReader
	logger   *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(projects ProjectReader, invoices InvoiceReader, logger *slog.Logger) *Service {
	return &Service{projects: projects, invoices: invoices, logger: logger}
}

// Stats computes portfolio totals.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	projects, invoices, err := s.snapshot(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(projects, invoices), nil
}

// Risk analyses a single project.
func (s *Service) Risk(ctx context.Context, projectID int64) (*ProjectRisk, error) {
	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &ProjectRisk{ProjectID: p.ID, Name: p.Name, Analysis: risk.Calculate(*p)}, nil
}

// ProjectRisks analyses every project in insertion order.
func (s *Service) ProjectRisks(ctx context.Context) ([]ProjectRisk, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	out := make([]ProjectRisk, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectRisk{ProjectID: p.ID, Name: p.Name, Analysis: risk.Calculate(p)})
	}
	return out, nil
}

// Overview builds the full dashboard view.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	projects, invoices, err := s.snapshot(ctx)
	if err != nil {
		return Overview{}, err
	}
	ov := BuildOverview(projects, invoices)
	if s.logger != nil {
		s.logger.Debug("dashboard overview computed", "projects", len(projects), "invoices", len(invoices), "at_risk", len(ov.AtRisk))
	}
	return ov, nil
}

func (s *Service) snapshot(ctx context.Context) ([]project.Project, []invoice.Invoice, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing projects: %w", err)
	}
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing invoices: %w", err)
	}
	return projects, invoices, nil
}
