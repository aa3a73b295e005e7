package cli

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/ganot/builderp/internal/app"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

type harness struct {
	env    *Env
	out    *bytes.Buffer
	errOut *bytes.Buffer
	path   string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		path:   filepath.Join(t.TempDir(), "erp.db"),
	}
	h.env = &Env{
		Out: h.out,
		Err: h.errOut,
		Raw: true,
		Open: func(ctx context.Context) (*app.App, error) {
			return app.Open(ctx, app.Options{DBPath: h.path, Seed: true})
		},
	}
	return h
}

// run executes one command and returns its exit status and stdout.
func (h *harness) run(t *testing.T, name string, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	h.out.Reset()
	h.errOut.Reset()

	for _, r := range commands(h.env) {
		if r.cmd.Name() != name {
			continue
		}
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		r.cmd.SetFlags(fs)
		require.NoError(t, fs.Parse(args))
		status := r.cmd.Execute(context.Background(), fs)
		return status, h.out.String()
	}
	t.Fatalf("unknown command %q", name)
	return subcommands.ExitFailure, ""
}

func TestProjectsCmd(t *testing.T) {
	h := newHarness(t)

	status, out := h.run(t, "projects")
	require.Equal(t, subcommands.ExitSuccess, status)
	require.Contains(t, out, "| 1 | Skyline Apartments | Active | 25% | 500000.00 | 120000.00 |")
	require.Contains(t, out, "Downtown Plaza Reno")
	require.Contains(t, out, "Westside Bridge")

	status, out = h.run(t, "projects", "-q", "BRIDGE")
	require.Equal(t, subcommands.ExitSuccess, status)
	require.Contains(t, out, "Westside Bridge")
	require.NotContains(t, out, "Skyline")

	_, out = h.run(t, "projects", "-q", "nothing like this")
	require.Contains(t, out, "_No projects._")
}

func TestProjectCmd(t *testing.T) {
	h := newHarness(t)

	status, out := h.run(t, "project", "2")
	require.Equal(t, subcommands.ExitSuccess, status)
	require.Contains(t, out, "# Downtown Plaza Reno")
	require.Contains(t, out, "| 2 | Downtown Plaza Reno | Critical | 80 | 93.3% |")

	status, _ = h.run(t, "project", "99")
	require.Equal(t, subcommands.ExitFailure, status)
	require.Contains(t, h.errOut.String(), "Error reading project")

	status, _ = h.run(t, "project", "abc")
	require.Equal(t, subcommands.ExitUsageError, status)

	status, _ = h.run(t, "project")
	require.Equal(t, subcommands.ExitUsageError, status)
}

func TestAddProjectCmd(t *testing.T) {
	h := newHarness(t)

	status, out := h.run(t, "add-project",
		"-name", "Harbor Warehouse", "-budget", "320000,50", "-progress", "10", "-start", "2024-02-01")
	require.Equal(t, subcommands.ExitSuccess, status, h.errOut.String())
	require.Contains(t, out, "# Harbor Warehouse")
	require.Contains(t, out, "**ID**: 4")
	require.Contains(t, out, "**Budget**: 320000.50")
	require.Contains(t, out, "**Spent**: 0.00")

	status, _ = h.run(t, "add-project", "-name", "Bad", "-budget", "lots", "-start", "2024-02-01")
	require.Equal(t, subcommands.ExitUsageError, status)
	require.Contains(t, h.errOut.String(), "invalid -budget")

	status, _ = h.run(t, "add-project", "-name", "Bad", "-budget", "10", "-progress", "150", "-start", "2024-02-01")
	require.Equal(t, subcommands.ExitFailure, status)

	_, out = h.run(t, "projects")
	require.NotContains(t, out, "Bad")
}

func TestRecordInvoiceCmd(t *testing.T) {
	h := newHarness(t)

	status, out := h.run(t, "record-invoice", "-project", "1", "-amount", "130000", "-description", "Facade panels", "-date", "2024-03-01")
	require.Equal(t, subcommands.ExitSuccess, status, h.errOut.String())
	require.Contains(t, out, "# Invoice 4 recorded")
	require.Contains(t, out, "**Project spend updated**: yes")

	_, out = h.run(t, "risk", "1")
	require.Contains(t, out, "| 1 | Skyline Apartments | High | 50 | 50.0% |")

	_, out = h.run(t, "invoices", "-q", "facade")
	require.Contains(t, out, "| 4 | 1 | 2024-03-01 | Pending | 130000.00 | Facade panels |")

	status, out = h.run(t, "record-invoice", "-project", "42", "-amount", "10")
	require.Equal(t, subcommands.ExitSuccess, status)
	require.Contains(t, out, "**Project spend updated**: no")
	require.Contains(t, out, "project 42 not found")

	status, _ = h.run(t, "record-invoice", "-project", "1", "-amount", "0")
	require.Equal(t, subcommands.ExitUsageError, status)
	status, _ = h.run(t, "record-invoice", "-project", "1", "-amount", "-5")
	require.Equal(t, subcommands.ExitUsageError, status)
}

func TestInvoicesCmd(t *testing.T) {
	h := newHarness(t)

	status, out := h.run(t, "invoices")
	require.Equal(t, subcommands.ExitSuccess, status)
	require.Contains(t, out, "Initial Material Order")
	require.Contains(t, out, "Subcontractor Phase 1")
	require.Contains(t, out, "Plumbing Rough-in")

	_, out = h.run(t, "invoices", "-q", "skyline")
	require.Contains(t, out, "Initial Material Order")
	require.Contains(t, out, "Plumbing Rough-in")
	require.NotContains(t, out, "Subcontractor")
}

func TestDashboardCmds(t *testing.T) {
	h := newHarness(t)

	status, out := h.run(t, "risk")
	require.Equal(t, subcommands.ExitSuccess, status)
	require.Contains(t, out, "Skyline Apartments | Low")
	require.Contains(t, out, "Downtown Plaza Reno | Critical")

	status, out = h.run(t, "stats")
	require.Equal(t, subcommands.ExitSuccess, status)
	require.Contains(t, out, "| Total revenue | 150000.00 |")
	require.Contains(t, out, "| Total budget | 1850000.00 |")
	require.Contains(t, out, "| Total spent | 660000.00 |")
	require.Contains(t, out, "| Active projects | 3 |")
	require.Contains(t, out, "| High or critical risks | 1 |")

	status, out = h.run(t, "overview")
	require.Equal(t, subcommands.ExitSuccess, status)
	require.Contains(t, out, "| Low | 2 |")
	require.Contains(t, out, "| Critical | 1 |")
	require.Contains(t, out, "- **Downtown Plaza Reno** (Critical, score 80)")

	status, _ = h.run(t, "risk", "1", "2")
	require.Equal(t, subcommands.ExitUsageError, status)
}

func TestSessionCmds(t *testing.T) {
	h := newHarness(t)

	_, out := h.run(t, "whoami")
	require.Contains(t, out, "Nobody is signed in")

	status, _ := h.run(t, "login", "-u", " ")
	require.Equal(t, subcommands.ExitFailure, status)

	status, out = h.run(t, "login", "-u", "maria", "-p", "anything")
	require.Equal(t, subcommands.ExitSuccess, status)
	require.Contains(t, out, "**User**: maria")

	_, out = h.run(t, "whoami")
	require.Contains(t, out, "**User**: maria")
	require.Contains(t, out, "**Role**: Admin")

	status, _ = h.run(t, "logout")
	require.Equal(t, subcommands.ExitSuccess, status)
	status, _ = h.run(t, "logout")
	require.Equal(t, subcommands.ExitSuccess, status)

	_, out = h.run(t, "whoami")
	require.Contains(t, out, "Nobody is signed in")
}

func TestResetCmd(t *testing.T) {
	h := newHarness(t)

	status, _ := h.run(t, "add-project", "-name", "Temporary", "-budget", "10", "-start", "2024-01-01")
	require.Equal(t, subcommands.ExitSuccess, status)

	status, _ = h.run(t, "reset")
	require.Equal(t, subcommands.ExitUsageError, status)

	status, _ = h.run(t, "reset", "-yes")
	require.Equal(t, subcommands.ExitSuccess, status)
	_, out := h.run(t, "projects")
	require.NotContains(t, out, "Temporary")
	require.Contains(t, out, "Skyline Apartments")

	status, _ = h.run(t, "reset", "-yes", "-seed=false")
	require.Equal(t, subcommands.ExitSuccess, status)

	a, err := app.Open(context.Background(), app.Options{DBPath: h.path})
	require.NoError(t, err)
	defer a.Close()
	projects, err := a.Projects.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestOpenFailure(t *testing.T) {
	h := newHarness(t)
	h.env.Open = func(context.Context) (*app.App, error) {
		return nil, context.Canceled
	}
	status, _ := h.run(t, "stats")
	require.Equal(t, subcommands.ExitFailure, status)
	require.Contains(t, h.errOut.String(), "Error opening store")
}

func TestPrintMarkdown_Styled(t *testing.T) {
	var out bytes.Buffer
	env := &Env{Out: &out, Width: 60}
	env.printMarkdown("# Title\n\nsome **bold** text\n")
	require.Contains(t, out.String(), "Title")
	require.Contains(t, out.String(), "bold")
}
