package project

import "github.com/shopspring/decimal"

// Status represents the lifecycle status of a project
type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusOnHold    Status = "On Hold"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Project is a construction site tracked against its budget.
// Spent only grows when an invoice is recorded against the project.
type Project struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Budget    decimal.Decimal `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
	Progress  int             `json:"progress"`
	Status    Status          `json:"status"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date,omitempty"`
}
