// Package report renders domain values as markdown for the terminal.
package report

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/ganot/builderp/internal/domain/dashboard"
	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/domain/risk"
	"github.com/ganot/builderp/internal/domain/session"
	"github.com/ganot/builderp/internal/money"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

var funcs = template.FuncMap{
	"money":  money.Format,
	"pct":    func(d decimal.Decimal) string { return d.StringFixed(1) },
	"levels": func() []risk.Level { return risk.Levels },
}

// Projects renders a project table.
func Projects(projects []project.Project) string {
	return renderTemplate("projects", "projects.md", nil, projects)
}

// Project renders a single project.
func Project(p *project.Project) string {
	return renderTemplate("project", "project.md", nil, p)
}

// Invoices renders an invoice table.
func Invoices(invoices []invoice.Invoice) string {
	return renderTemplate("invoices", "invoices.md", nil, invoices)
}

// Recorded renders the outcome of recording an invoice, warnings included.
func Recorded(res *invoice.RecordResult) string {
	return renderTemplate("recorded", "recorded.md", nil, res)
}

// Risks renders a risk table.
func Risks(risks []dashboard.ProjectRisk) string {
	return renderTemplate("risks", "risks.md", nil, risks)
}

// Stats renders the portfolio totals.
func Stats(s dashboard.Stats) string {
	return "# Portfolio\n\n" + renderTemplate("stats", "stats.md", nil, s)
}

// Overview renders the full dashboard.
func Overview(ov dashboard.Overview) string {
	return renderTemplate("overview", "overview.md", map[string]string{"stats": "stats.md"}, ov)
}

// Session renders the current session; nil means signed out.
func Session(s *session.Session) string {
	return renderTemplate("session", "session.md", nil, s)
}

// renderTemplate renders mainFile with the given partials available by name.
// Failures are reported in the output instead of returned.
func renderTemplate(name, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", mainFile, err)
	}

	for partial, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(partial).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, partial, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
