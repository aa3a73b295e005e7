// Package cli holds the erpctl subcommands. Every command opens the store,
// runs one service call and prints the result as markdown.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/ganot/builderp/internal/app"
	"github.com/google/subcommands"
)

// Env is shared by all commands. Fields are read when a command executes,
// so they may be filled in after flag parsing.
type Env struct {
	Open  func(ctx context.Context) (*app.App, error)
	Out   io.Writer
	Err   io.Writer
	Raw   bool
	Width int
}

type registration struct {
	cmd   subcommands.Command
	group string
}

func commands(env *Env) []registration {
	return []registration{
		{&projectsCmd{env: env}, "projects"},
		{&projectCmd{env: env}, "projects"},
		{&addProjectCmd{env: env}, "projects"},
		{&invoicesCmd{env: env}, "invoices"},
		{&recordInvoiceCmd{env: env}, "invoices"},
		{&riskCmd{env: env}, "dashboard"},
		{&statsCmd{env: env}, "dashboard"},
		{&overviewCmd{env: env}, "dashboard"},
		{&loginCmd{env: env}, "session"},
		{&logoutCmd{env: env}, "session"},
		{&whoamiCmd{env: env}, "session"},
		{&resetCmd{env: env}, "store"},
	}
}

// Register adds every command to the commander.
func Register(c *subcommands.Commander, env *Env) {
	for _, r := range commands(env) {
		c.Register(r.cmd, r.group)
	}
}

// withApp opens the store for the duration of fn.
func (e *Env) withApp(ctx context.Context, fn func(context.Context, *app.App) subcommands.ExitStatus) subcommands.ExitStatus {
	a, err := e.Open(ctx)
	if err != nil {
		return e.fail("opening store", err)
	}
	defer a.Close()

	return fn(ctx, a)
}

func (e *Env) fail(action string, err error) subcommands.ExitStatus {
	fmt.Fprintf(e.Err, "Error %s: %v\n", action, err)
	return subcommands.ExitFailure
}

func (e *Env) usage(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(e.Err, format+"\n", args...)
	return subcommands.ExitUsageError
}

// printMarkdown renders md for the terminal, or prints it as is in raw mode
// or when styling fails.
func (e *Env) printMarkdown(md string) {
	if e.Raw {
		fmt.Fprint(e.Out, md)
		return
	}
	width := e.Width
	if width <= 0 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		fmt.Fprint(e.Out, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(e.Out, md)
		return
	}
	fmt.Fprint(e.Out, out)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid project id %q", s)
	}
	return id, nil
}
