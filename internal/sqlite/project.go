package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/repository"
)

const projectColumns = `id, name, budget, spent, progress, status, start_date, end_date`

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create assigns the next id and stores the project.
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := insertProject(ctx, tx, proj); err != nil {
			return err
		}
		return markCollection(ctx, tx, collectionProjects)
	})
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func insertProject(ctx context.Context, tx *sql.Tx, proj *project.Project) error {
	id, err := nextID(ctx, tx, "projects")
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		id,
		proj.Name,
		proj.Budget.String(),
		proj.Spent.String(),
		proj.Progress,
		string(proj.Status),
		proj.StartDate,
		proj.EndDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	proj.ID = id
	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return proj, nil
}

// List returns all projects in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY id`
	return r.query(ctx, query)
}

// Search returns projects whose name contains query, ignoring case.
func (r *ProjectRepository) Search(ctx context.Context, query string) ([]project.Project, error) {
	stmt := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE unicode_lower(name) LIKE ? ESCAPE '\'
		ORDER BY id
	`
	return r.query(ctx, stmt, likePattern(query))
}

func (r *ProjectRepository) query(ctx context.Context, query string, args ...any) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *proj)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var (
		proj   project.Project
		status string
	)
	err := row.Scan(
		&proj.ID,
		&proj.Name,
		&proj.Budget,
		&proj.Spent,
		&proj.Progress,
		&status,
		&proj.StartDate,
		&proj.EndDate,
	)
	if err != nil {
		return nil, err
	}
	proj.Status = project.Status(status)
	return &proj, nil
}
