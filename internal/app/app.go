// Package app opens the store and builds the domain services on top of it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ganot/builderp/internal/domain/dashboard"
	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/domain/session"
	"github.com/ganot/builderp/internal/sqlite"
)

// App holds the store and every service built on it.
type App struct {
	DB        *sqlite.DB
	Projects  *project.Service
	Invoices  *invoice.Service
	Sessions  *session.Service
	Dashboard *dashboard.Service

	logger *slog.Logger
}

// Options controls how the store is opened.
type Options struct {
	DBPath string
	Seed   bool
	Logger *slog.Logger
}

// Open opens and migrates the store, seeds it when asked and wires services.
func Open(ctx context.Context, opts Options) (*App, error) {
	if err := ensureDBDir(opts.DBPath); err != nil {
		return nil, fmt.Errorf("prepare database path: %w", err)
	}

	db, err := sqlite.New(opts.DBPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	a := New(db, opts.Logger)
	if opts.Seed {
		if err := a.Seed(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}
	return a, nil
}

// New wires services over an already migrated store.
func New(db *sqlite.DB, logger *slog.Logger) *App {
	projects := project.NewService(sqlite.NewProjectRepository(db), logger)
	invoices := invoice.NewService(sqlite.NewInvoiceRepository(db), logger)

	return &App{
		DB:        db,
		Projects:  projects,
		Invoices:  invoices,
		Sessions:  session.NewService(sqlite.NewSessionRepository(db), logger),
		Dashboard: dashboard.NewService(projects, invoices, logger),
		logger:    logger,
	}
}

// Seed fills never-initialised collections with the starter data.
func (a *App) Seed(ctx context.Context) error {
	seeded, err := a.DB.Seed(ctx)
	if err != nil {
		return err
	}
	if seeded && a.logger != nil {
		a.logger.Info("seeded starter data")
	}
	return nil
}

// Reset wipes all data and, when reseed is set, restores the starter data.
func (a *App) Reset(ctx context.Context, reseed bool) error {
	if err := a.DB.Reset(ctx); err != nil {
		return fmt.Errorf("resetting store: %w", err)
	}
	if a.logger != nil {
		a.logger.Warn("store reset", "reseed", reseed)
	}
	if !reseed {
		return nil
	}
	return a.Seed(ctx)
}

// Close releases the store.
func (a *App) Close() error {
	return a.DB.Close()
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
