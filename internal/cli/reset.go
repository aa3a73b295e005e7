package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/ganot/builderp/internal/app"
	"github.com/google/subcommands"
)

type resetCmd struct {
	env    *Env
	seed   bool
	really bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "erase all data" }
func (*resetCmd) Usage() string {
	return `erpctl reset -yes [-seed=false]

  Deletes every project, invoice and the current session. The starter data is
  restored unless -seed=false is given.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.seed, "seed", true, "Restore the starter data afterwards.")
	f.BoolVar(&c.really, "yes", false, "Confirm the reset.")
}

func (c *resetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.really {
		return c.env.usage("refusing to reset without -yes")
	}
	return c.env.withApp(ctx, func(ctx context.Context, a *app.App) subcommands.ExitStatus {
		if err := a.Reset(ctx, c.seed); err != nil {
			return c.env.fail("resetting store", err)
		}
		fmt.Fprintln(c.env.Err, "Store reset.")
		return subcommands.ExitSuccess
	})
}
