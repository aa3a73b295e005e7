package cli

import (
	"context"
	"flag"
	"time"

	"github.com/ganot/builderp/internal/app"
	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/money"
	"github.com/ganot/builderp/internal/report"
	"github.com/google/subcommands"
)

type invoicesCmd struct {
	env   *Env
	query string
}

func (*invoicesCmd) Name() string     { return "invoices" }
func (*invoicesCmd) Synopsis() string { return "list invoices" }
func (*invoicesCmd) Usage() string {
	return `erpctl invoices [-q <text>]

  Lists every invoice, or those whose description or project name contains
  the text (case-insensitive).
`
}

func (c *invoicesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Only list invoices matching this text.")
}

func (c *invoicesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withApp(ctx, func(ctx context.Context, a *app.App) subcommands.ExitStatus {
		invoices, err := a.Invoices.Search(ctx, c.query)
		if err != nil {
			return c.env.fail("listing invoices", err)
		}
		c.env.printMarkdown(report.Invoices(invoices))
		return subcommands.ExitSuccess
	})
}

type recordInvoiceCmd struct {
	env         *Env
	projectID   int64
	amount      string
	description string
	date        string
	status      string
}

func (*recordInvoiceCmd) Name() string     { return "record-invoice" }
func (*recordInvoiceCmd) Synopsis() string { return "record an invoice and charge it to its project" }
func (*recordInvoiceCmd) Usage() string {
	return `erpctl record-invoice -project <id> -amount <amount> [-description <text>] [-date <date>] [-status <status>]

  Records an invoice and adds its amount to the project's spend. An invoice
  for an unknown project is still kept and a warning is printed.

Usage Examples:
$ erpctl record-invoice -project 1 -amount 1250,50 -description "Rebar delivery"
`
}

func (c *recordInvoiceCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.projectID, "project", 0, "Project the invoice is charged to.")
	f.StringVar(&c.amount, "amount", "", "Invoice amount, strictly positive.")
	f.StringVar(&c.description, "description", "", "What the invoice is for.")
	f.StringVar(&c.date, "date", time.Now().Format(time.DateOnly), "Invoice date.")
	f.StringVar(&c.status, "status", string(invoice.StatusPending), "Paid, Pending or Overdue.")
}

func (c *recordInvoiceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := money.ParsePositive(c.amount)
	if err != nil {
		return c.env.usage("invalid -amount %q: %v", c.amount, err)
	}

	return c.env.withApp(ctx, func(ctx context.Context, a *app.App) subcommands.ExitStatus {
		res, err := a.Invoices.Record(ctx, invoice.RecordRequest{
			ProjectID:   c.projectID,
			Amount:      amount,
			Description: c.description,
			Date:        c.date,
			Status:      invoice.Status(c.status),
		})
		if err != nil {
			return c.env.fail("recording invoice", err)
		}
		c.env.printMarkdown(report.Recorded(res))
		return subcommands.ExitSuccess
	})
}
