package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/ganot/builderp/internal/app"
	"github.com/ganot/builderp/internal/domain/session"
	"github.com/ganot/builderp/internal/report"
	"github.com/google/subcommands"
)

type loginCmd struct {
	env      *Env
	username string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in, replacing any current session" }
func (*loginCmd) Usage() string {
	return `erpctl login -u <username> [-p <password>]

  Signs in as an administrator. The password is accepted but not checked.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username.")
	f.StringVar(&c.password, "p", "", "Password.")
}

func (c *loginCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withApp(ctx, func(ctx context.Context, a *app.App) subcommands.ExitStatus {
		s, err := a.Sessions.Login(ctx, session.LoginRequest{Username: c.username, Password: c.password})
		if err != nil {
			return c.env.fail("signing in", err)
		}
		c.env.printMarkdown(report.Session(s))
		return subcommands.ExitSuccess
	})
}

type logoutCmd struct {
	env *Env
}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "sign out" }
func (*logoutCmd) Usage() string {
	return `erpctl logout

  Clears the current session. Signing out twice is not an error.
`
}

func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withApp(ctx, func(ctx context.Context, a *app.App) subcommands.ExitStatus {
		if err := a.Sessions.Logout(ctx); err != nil {
			return c.env.fail("signing out", err)
		}
		fmt.Fprintln(c.env.Err, "Signed out.")
		return subcommands.ExitSuccess
	})
}

type whoamiCmd struct {
	env *Env
}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the current session" }
func (*whoamiCmd) Usage() string {
	return `erpctl whoami

  Shows who is signed in.
`
}

func (*whoamiCmd) SetFlags(*flag.FlagSet) {}

func (c *whoamiCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.withApp(ctx, func(ctx context.Context, a *app.App) subcommands.ExitStatus {
		s, err := a.Sessions.Current(ctx)
		if errors.Is(err, session.ErrNoSession) {
			c.env.printMarkdown(report.Session(nil))
			return subcommands.ExitSuccess
		}
		if err != nil {
			return c.env.fail("reading session", err)
		}
		c.env.printMarkdown(report.Session(s))
		return subcommands.ExitSuccess
	})
}
