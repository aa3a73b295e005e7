package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

const invoiceColumns = `i.id, i.project_id, i.amount, i.description, i.date, i.status`

// InvoiceRepository implements invoice.Repository for SQLite
type InvoiceRepository struct {
	db *DB
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(db *DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create stores an invoice without touching project spend.
func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	if inv.Status == "" {
		inv.Status = invoice.StatusPending
	}
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := insertInvoice(ctx, tx, inv); err != nil {
			return err
		}
		return markCollection(ctx, tx, collectionInvoices)
	})
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// Record stores the invoice and adds its amount to the project's spent total
// in one transaction. It reports false when the project does not exist; the
// invoice is kept either way.
func (r *InvoiceRepository) Record(ctx context.Context, inv *invoice.Invoice) (bool, error) {
	if inv.Status == "" {
		inv.Status = invoice.StatusPending
	}

	var found bool
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := insertInvoice(ctx, tx, inv); err != nil {
			return err
		}
		if err := markCollection(ctx, tx, collectionInvoices); err != nil {
			return err
		}

		var spent decimal.Decimal
		err := tx.QueryRowContext(ctx, `SELECT spent FROM projects WHERE id = ?`, inv.ProjectID).Scan(&spent)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read project spend: %w", err)
		}

		_, err = tx.ExecContext(ctx, `UPDATE projects SET spent = ? WHERE id = ?`, spent.Add(inv.Amount).String(), inv.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to update project spend: %w", err)
		}
		found = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to record invoice: %w", err)
	}
	return found, nil
}

func insertInvoice(ctx context.Context, tx *sql.Tx, inv *invoice.Invoice) error {
	id, err := nextID(ctx, tx, "invoices")
	if err != nil {
		return err
	}

	query := `
		INSERT INTO invoices (id, project_id, amount, description, date, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		id,
		inv.ProjectID,
		inv.Amount.String(),
		inv.Description,
		inv.Date,
		string(inv.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}

	inv.ID = id
	return nil
}

// List returns all invoices in insertion order.
func (r *InvoiceRepository) List(ctx context.Context) ([]invoice.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices i ORDER BY i.id`
	return r.query(ctx, query)
}

// Search matches the invoice description or the linked project's name,
// ignoring case. Invoices pointing at a missing project match on description
// only.
func (r *InvoiceRepository) Search(ctx context.Context, query string) ([]invoice.Invoice, error) {
	stmt := `
		SELECT ` + invoiceColumns + `
		FROM invoices i
		LEFT JOIN projects p ON p.id = i.project_id
		WHERE unicode_lower(i.description) LIKE ? ESCAPE '\'
		   OR unicode_lower(COALESCE(p.name, '')) LIKE ? ESCAPE '\'
		ORDER BY i.id
	`
	pattern := likePattern(query)
	return r.query(ctx, stmt, pattern, pattern)
}

func (r *InvoiceRepository) query(ctx context.Context, query string, args ...any) ([]invoice.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []invoice.Invoice{}
	for rows.Next() {
		var (
			inv    invoice.Invoice
			status string
		)
		err := rows.Scan(
			&inv.ID,
			&inv.ProjectID,
			&inv.Amount,
			&inv.Description,
			&inv.Date,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		inv.Status = invoice.Status(status)
		invoices = append(invoices, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}
