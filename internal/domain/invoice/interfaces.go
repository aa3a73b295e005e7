package invoice

import "context"

// Repository provides persistence for invoices.
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	// Record stores inv and adds its amount to the referenced project's
	// spent total in the same transaction. It reports whether a project
	// was found; a missing project is not an error.
	Record(ctx context.Context, inv *Invoice) (bool, error)
	List(ctx context.Context) ([]Invoice, error)
	Search(ctx context.Context, query string) ([]Invoice, error)
}
