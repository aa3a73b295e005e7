package cli

import (
	"context"
	"flag"

	"github.com/ganot/builderp/internal/app"
	"github.com/ganot/builderp/internal/domain/dashboard"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/domain/risk"
	"github.com/ganot/builderp/internal/money"
	"github.com/ganot/builderp/internal/report"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type projectsCmd struct {
	env   *Env
	query string
}

func (*projectsCmd) Name() string     { return "projects" }
func (*projectsCmd) Synopsis() string { return "list projects" }
func (*projectsCmd) Usage() string {
	return `erpctl projects [-q <text>]

  Lists every project, or those whose name contains the text (case-insensitive).
`
}

func (c *projectsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Only list projects whose name contains this text.")
}

func (c *projectsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withApp(ctx, func(ctx context.Context, a *app.App) subcommands.ExitStatus {
		projects, err := a.Projects.Search(ctx, c.query)
		if err != nil {
			return c.env.fail("listing projects", err)
		}
		c.env.printMarkdown(report.Projects(projects))
		return subcommands.ExitSuccess
	})
}

type projectCmd struct {
	env *Env
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "show one project and its risk" }
func (*projectCmd) Usage() string {
	return `erpctl project <id>

  Shows a project together with its current risk analysis.
`
}

func (*projectCmd) SetFlags(*flag.FlagSet) {}

func (c *projectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.env.usage("expected exactly one project id")
	}
	id, err := parseID(f.Arg(0))
	if err != nil {
		return c.env.usage("%v", err)
	}

	return c.env.withApp(ctx, func(ctx context.Context, a *app.App) subcommands.ExitStatus {
		p, err := a.Projects.Get(ctx, id)
		if err != nil {
			return c.env.fail("reading project", err)
		}
		pr := dashboard.ProjectRisk{ProjectID: p.ID, Name: p.Name, Analysis: risk.Calculate(*p)}
		c.env.printMarkdown(report.Project(p) + "\n" + report.Risks([]dashboard.ProjectRisk{pr}))
		return subcommands.ExitSuccess
	})
}

type addProjectCmd struct {
	env       *Env
	name      string
	budget    string
	spent     string
	progress  int
	status    string
	startDate string
	endDate   string
}

func (*addProjectCmd) Name() string     { return "add-project" }
func (*addProjectCmd) Synopsis() string { return "create a project" }
func (*addProjectCmd) Usage() string {
	return `erpctl add-project -name <name> -budget <amount> -start <date> [options]

  Creates a project. Amounts accept a dot or comma decimal separator.

Usage Examples:
$ erpctl add-project -name "Harbor Warehouse" -budget 320000 -start 2024-02-01
`
}

func (c *addProjectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Project name.")
	f.StringVar(&c.budget, "budget", "", "Total budget.")
	f.StringVar(&c.spent, "spent", "", "Amount already spent. Defaults to zero.")
	f.IntVar(&c.progress, "progress", 0, "Completion percentage, 0 to 100.")
	f.StringVar(&c.status, "status", string(project.StatusActive), "Active, Completed or On Hold.")
	f.StringVar(&c.startDate, "start", "", "Start date.")
	f.StringVar(&c.endDate, "end", "", "Planned end date.")
}

func (c *addProjectCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	budget, err := money.Parse(c.budget)
	if err != nil {
		return c.env.usage("invalid -budget %q: %v", c.budget, err)
	}
	spent := decimal.Zero
	if c.spent != "" {
		if spent, err = money.Parse(c.spent); err != nil {
			return c.env.usage("invalid -spent %q: %v", c.spent, err)
		}
	}

	return c.env.withApp(ctx, func(ctx context.Context, a *app.App) subcommands.ExitStatus {
		p, err := a.Projects.Create(ctx, project.CreateRequest{
			Name:      c.name,
			Budget:    budget,
			Spent:     spent,
			Progress:  c.progress,
			Status:    project.Status(c.status),
			StartDate: c.startDate,
			EndDate:   c.endDate,
		})
		if err != nil {
			return c.env.fail("creating project", err)
		}
		c.env.printMarkdown(report.Project(p))
		return subcommands.ExitSuccess
	})
}
