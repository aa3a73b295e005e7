package cli

import (
	"context"
	"flag"

	"github.com/ganot/builderp/internal/app"
	"github.com/ganot/builderp/internal/domain/dashboard"
	"github.com/ganot/builderp/internal/report"
	"github.com/google/subcommands"
)

type riskCmd struct {
	env *Env
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "show budget risk per project" }
func (*riskCmd) Usage() string {
	return `erpctl risk [<id>]

  Shows the risk analysis of one project, or of every project.
`
}

func (*riskCmd) SetFlags(*flag.FlagSet) {}

func (c *riskCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var id int64
	switch f.NArg() {
	case 0:
	case 1:
		var err error
		if id, err = parseID(f.Arg(0)); err != nil {
			return c.env.usage("%v", err)
		}
	default:
		return c.env.usage("expected at most one project id")
	}

	return c.env.withApp(ctx, func(ctx context.Context, a *app.App) subcommands.ExitStatus {
		if id == 0 {
			risks, err := a.Dashboard.ProjectRisks(ctx)
			if err != nil {
				return c.env.fail("analysing projects", err)
			}
			c.env.printMarkdown(report.Risks(risks))
			return subcommands.ExitSuccess
		}
		pr, err := a.Dashboard.Risk(ctx, id)
		if err != nil {
			return c.env.fail("analysing project", err)
		}
		c.env.printMarkdown(report.Risks([]dashboard.ProjectRisk{*pr}))
		return subcommands.ExitSuccess
	})
}

type statsCmd struct {
	env *Env
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "show portfolio totals" }
func (*statsCmd) Usage() string {
	return `erpctl stats

  Shows revenue, budget, spend, active projects and the number of projects at
  High or Critical risk.
`
}

func (*statsCmd) SetFlags(*flag.FlagSet) {}

func (c *statsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withApp(ctx, func(ctx context.Context, a *app.App) subcommands.ExitStatus {
		stats, err := a.Dashboard.Stats(ctx)
		if err != nil {
			return c.env.fail("computing stats", err)
		}
		c.env.printMarkdown(report.Stats(stats))
		return subcommands.ExitSuccess
	})
}

type overviewCmd struct {
	env *Env
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "show the full dashboard" }
func (*overviewCmd) Usage() string {
	return `erpctl overview

  Shows totals, the risk distribution, budget versus spend per project and the
  projects that need attention.
`
}

func (*overviewCmd) SetFlags(*flag.FlagSet) {}

func (c *overviewCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withApp(ctx, func(ctx context.Context, a *app.App) subcommands.ExitStatus {
		ov, err := a.Dashboard.Overview(ctx)
		if err != nil {
			return c.env.fail("building overview", err)
		}
		c.env.printMarkdown(report.Overview(ov))
		return subcommands.ExitSuccess
	})
}
