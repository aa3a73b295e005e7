package invoice

import "github.com/shopspring/decimal"

// Status represents the payment status of an invoice
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
	StatusOverdue Status = "Overdue"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusOverdue:
		return true
	}
	return false
}

// Invoice is an immutable charge against a project.
type Invoice struct {
	ID          int64           `json:"id"`
	ProjectID   int64           `json:"project_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Status      Status          `json:"status"`
}

// RecordResult describes the outcome of recording an invoice.
type RecordResult struct {
	Invoice        Invoice  `json:"invoice"`
	ProjectUpdated bool     `json:"project_updated"`
	Warnings       []string `json:"warnings,omitempty"`
}
