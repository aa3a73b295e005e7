package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ganot/builderp/internal/repository"
	"github.com/shopspring/decimal"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name      string
	Budget    decimal.Decimal
	Spent     decimal.Decimal
	Progress  int
	Status    Status
	StartDate string
	EndDate   string
}

// Create validates and stores a new project. The store assigns the ID.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	proj := &Project{
		Name:      strings.TrimSpace(req.Name),
		Budget:    req.Budget,
		Spent:     req.Spent,
		Progress:  req.Progress,
		Status:    status,
		StartDate: strings.TrimSpace(req.StartDate),
		EndDate:   strings.TrimSpace(req.EndDate),
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("project created", "project_id", proj.ID, "name", proj.Name)
	}
	return proj, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns all projects in insertion order.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// Search returns projects whose name contains query, ignoring case.
// A blank query lists everything.
func (s *Service) Search(ctx context.Context, query string) ([]Project, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}
	projects, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching projects: %w", err)
	}
	return projects, nil
}
