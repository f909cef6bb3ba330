package reporter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/yaklabco/gostylecheck/internal/ui/pretty"
	"github.com/yaklabco/gostylecheck/pkg/analysis"
	"github.com/yaklabco/gostylecheck/pkg/config"
)

// Column caps for summary tables.
const (
	maxRuleNameCells = 30 // Rule name column cap.
	maxFilePathCells = 60 // File path column cap (wider for relative paths).
)

// SummaryRenderer formats results as aggregated summary tables.
type SummaryRenderer struct {
	opts         Options
	styles       *pretty.Styles
	colorEnabled bool
	out          io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:         opts,
		styles:       pretty.NewStyles(colorEnabled),
		colorEnabled: colorEnabled,
		out:          opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Issues == 0 {
		fmt.Fprintln(r.out, r.styles.Success.Render("No issues found"))
		return nil
	}

	// Determine order
	if r.opts.SummaryOrder == config.SummaryOrderFiles {
		r.renderFileTable(report.ByFile)
		fmt.Fprintln(r.out)
		r.renderRuleTable(report.ByRule)
	} else {
		r.renderRuleTable(report.ByRule)
		fmt.Fprintln(r.out)
		r.renderFileTable(report.ByFile)
	}

	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)

	return nil
}

func (r *SummaryRenderer) renderRuleTable(rules []analysis.RuleAnalysis) {
	if len(rules) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Rules Summary"))

	t := pretty.NewTable(r.colorEnabled)
	t.AppendHeader(table.Row{"RULE", "COUNT", "ERRORS", "WARNINGS", "FIXABLE"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "RULE", WidthMax: maxRuleNameCells},
		{Name: "COUNT", Align: text.AlignRight},
		{Name: "ERRORS", Align: text.AlignRight},
		{Name: "WARNINGS", Align: text.AlignRight},
		{Name: "FIXABLE", Align: text.AlignCenter},
	})
	if r.colorEnabled {
		t.SetRowPainter(severitySummaryPainter(2, 3))
	}

	for _, rule := range rules {
		ruleName := config.FormatRuleID(r.opts.RuleFormat, rule.RuleID, rule.RuleName)
		fixable := ""
		if rule.Fixable {
			fixable = "✓"
		}
		t.AppendRow(table.Row{ruleName, rule.Issues, rule.Errors, rule.Warnings, fixable})
	}

	fmt.Fprintln(r.out, t.Render())
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files Summary"))

	t := pretty.NewTable(r.colorEnabled)
	t.AppendHeader(table.Row{"FILE", "COUNT", "ERRORS", "WARNINGS"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "FILE", WidthMax: maxFilePathCells},
		{Name: "COUNT", Align: text.AlignRight},
		{Name: "ERRORS", Align: text.AlignRight},
		{Name: "WARNINGS", Align: text.AlignRight},
	})
	if r.colorEnabled {
		t.SetRowPainter(severitySummaryPainter(2, 3))
	}

	for _, file := range files {
		t.AppendRow(table.Row{
			pretty.TruncatePath(file.Path, maxFilePathCells),
			file.Issues, file.Errors, file.Warnings,
		})
	}

	fmt.Fprintln(r.out, t.Render())
}

// severitySummaryPainter colors rows red when the errors cell is nonzero and
// yellow when only the warnings cell is.
func severitySummaryPainter(errorsCol, warningsCol int) table.RowPainter {
	return func(row table.Row) text.Colors {
		if count, ok := row[errorsCol].(int); ok && count > 0 {
			return text.Colors{text.FgRed}
		}
		if count, ok := row[warningsCol].(int); ok && count > 0 {
			return text.Colors{text.FgYellow}
		}
		return nil
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	// Total issues
	issueWord := "issues"
	if totals.Issues == 1 {
		issueWord = "issue"
	}
	total := fmt.Sprintf("%d %s", totals.Issues, issueWord)

	// Severity breakdown
	var severityParts []string
	if totals.Errors > 0 {
		severityParts = append(severityParts, r.styles.Error.Render(fmt.Sprintf("%d errors", totals.Errors)))
	}
	if totals.Warnings > 0 {
		severityParts = append(severityParts, r.styles.Warning.Render(fmt.Sprintf("%d warnings", totals.Warnings)))
	}
	if len(severityParts) > 0 {
		total = fmt.Sprintf("%s (%s)", total, strings.Join(severityParts, ", "))
	}

	// Files with issues
	fileWord := "files"
	if totals.FilesWithIssues == 1 {
		fileWord = "file"
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+total+fmt.Sprintf(" in %d %s", totals.FilesWithIssues, fileWord))
}
