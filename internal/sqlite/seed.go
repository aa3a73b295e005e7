package sqlite

import (
	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/shopspring/decimal"
)

var seedProjects = []project.Project{
	{
		Name:      "Skyline Apartments",
		Budget:    decimal.NewFromInt(500000),
		Spent:     decimal.NewFromInt(120000),
		Progress:  25,
		Status:    project.StatusActive,
		StartDate: "2023-01-15",
		EndDate:   "2024-06-30",
	},
	{
		Name:      "Downtown Plaza Reno",
		Budget:    decimal.NewFromInt(150000),
		Spent:     decimal.NewFromInt(140000),
		Progress:  60,
		Status:    project.StatusActive,
		StartDate: "2023-05-01",
		EndDate:   "2023-12-01",
	},
	{
		Name:      "Westside Bridge",
		Budget:    decimal.NewFromInt(1200000),
		Spent:     decimal.NewFromInt(400000),
		Progress:  30,
		Status:    project.StatusActive,
		StartDate: "2022-11-20",
		EndDate:   "2025-01-15",
	},
}

// Seed invoices do not touch project spend; the seeded spent figures already
// account for them.
var seedInvoices = []invoice.Invoice{
	{ProjectID: 1, Amount: decimal.NewFromInt(50000), Description: "Initial Material Order", Date: "2023-02-10", Status: invoice.StatusPaid},
	{ProjectID: 2, Amount: decimal.NewFromInt(75000), Description: "Subcontractor Phase 1", Date: "2023-06-15", Status: invoice.StatusPaid},
	{ProjectID: 1, Amount: decimal.NewFromInt(25000), Description: "Plumbing Rough-in", Date: "2023-08-20", Status: invoice.StatusPending},
}
