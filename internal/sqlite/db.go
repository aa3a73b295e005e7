package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	collectionProjects = "projects"
	collectionInvoices = "invoices"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New opens a SQLite database.
//
// The pool is limited to a single connection: every statement and transaction
// is serialised, and ":memory:" databases stay shared across calls.
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return &DB{db}, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	// m.Close would also close the shared handle, so it is left open.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// withTx runs fn inside a transaction, committing only when fn succeeds.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func collectionExists(ctx context.Context, tx *sql.Tx, name string) (bool, error) {
	var n int
	err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM collections WHERE name = ?`, name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check collection %s: %w", name, err)
	}
	return n > 0, nil
}

func markCollection(ctx context.Context, tx *sql.Tx, name string) error {
	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO collections (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("failed to mark collection %s: %w", name, err)
	}
	return nil
}

func nextID(ctx context.Context, tx *sql.Tx, table string) (int64, error) {
	var id int64
	// table is always one of the package constants.
	err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(id), 0) + 1 FROM "+table).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s id: %w", table, err)
	}
	return id, nil
}

// Seed inserts the starter projects and invoices for collections that have
// never been initialised. A collection that exists but is empty is left alone,
// so calling Seed repeatedly is safe.
func (db *DB) Seed(ctx context.Context) (seeded bool, err error) {
	err = db.withTx(ctx, func(tx *sql.Tx) error {
		hasProjects, err := collectionExists(ctx, tx, collectionProjects)
		if err != nil {
			return err
		}
		if !hasProjects {
			for i := range seedProjects {
				p := seedProjects[i]
				if err := insertProject(ctx, tx, &p); err != nil {
					return err
				}
			}
			if err := markCollection(ctx, tx, collectionProjects); err != nil {
				return err
			}
			seeded = true
		}

		hasInvoices, err := collectionExists(ctx, tx, collectionInvoices)
		if err != nil {
			return err
		}
		if !hasInvoices {
			for i := range seedInvoices {
				inv := seedInvoices[i]
				if err := insertInvoice(ctx, tx, &inv); err != nil {
					return err
				}
			}
			if err := markCollection(ctx, tx, collectionInvoices); err != nil {
				return err
			}
			seeded = true
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seeding: %w", err)
	}
	return seeded, nil
}

// Reset removes every row and collection marker. The schema stays in place;
// the next Seed repopulates the starter data.
func (db *DB) Reset(ctx context.Context) error {
	return db.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"invoices", "projects", "current_session", "collections"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}
