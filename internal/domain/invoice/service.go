package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// Service records and lists invoices.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new invoice service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// RecordRequest describes an invoice to record. Status defaults to Pending.
type RecordRequest struct {
	ProjectID   int64
	Amount      decimal.Decimal
	Description string
	Date        string
	Status      Status
}

// Record stores a new invoice and charges its amount to the project.
//
// Both writes happen in one store transaction. When the project does not
// exist the invoice is still kept and the result carries a warning.
func (s *Service) Record(ctx context.Context, req RecordRequest) (*RecordResult, error) {
	if err := ValidateRecordInput(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}

	inv := &Invoice{
		ProjectID:   req.ProjectID,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		Date:        strings.TrimSpace(req.Date),
		Status:      status,
	}

	found, err := s.repo.Record(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("recording invoice: %w", err)
	}

	result := &RecordResult{Invoice: *inv, ProjectUpdated: found}
	if !found {
		warning := fmt.Sprintf("project %d not found; invoice %d recorded without updating spend", inv.ProjectID, inv.ID)
		result.Warnings = append(result.Warnings, warning)
		if s.logger != nil {
			s.logger.Warn("invoice references unknown project", "invoice_id", inv.ID, "project_id", inv.ProjectID)
		}
	} else if s.logger != nil {
		s.logger.Info("invoice recorded", "invoice_id", inv.ID, "project_id", inv.ProjectID, "amount", inv.Amount.String())
	}

	return result, nil
}

// List returns all invoices in insertion order.
func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	return invoices, nil
}

// Search matches query against invoice descriptions and the names of the
// linked projects, ignoring case. A blank query lists everything.
func (s *Service) Search(ctx context.Context, query string) ([]Invoice, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}
	invoices, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching invoices: %w", err)
	}
	return invoices, nil
}
