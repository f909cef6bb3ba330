package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"

	"github.com/yaklabco/gostylecheck/internal/ui/pretty"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/runner"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// maxPathCells caps the FILE column so messages keep room on narrow terminals.
const maxPathCells = 40

// fixableMark flags auto-fixable issues in the FIX column.
const fixableMark = "+"

// TableReporter formats results as a styled table with color-coded rows.
type TableReporter struct {
	opts         Options
	styles       *pretty.Styles
	colorEnabled bool
	termWidth    int
	bw           *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)

	return &TableReporter{
		opts:         opts,
		styles:       pretty.NewStyles(colorEnabled),
		colorEnabled: colorEnabled,
		termWidth:    getTerminalWidth(opts.Writer),
		bw:           bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	// Count total issues
	totalIssues := countTotalIssues(result)

	if totalIssues == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw)
			fmt.Fprintln(r.bw, r.styles.Success.Render("All files passed!"))
			fmt.Fprintln(r.bw, r.styles.Dim.Render(
				fmt.Sprintf("%d files checked", result.Stats.FilesProcessed),
			))
		}
		return 0, nil
	}

	// Use per-file or combined output based on option
	if r.opts.PerFile {
		r.reportPerFile(result)
	} else {
		r.reportCombined(result)
	}

	return totalIssues, nil
}

// reportCombined outputs all files in a single table.
func (r *TableReporter) reportCombined(result *runner.Result) {
	t := r.newIssueTable(true)

	for _, file := range result.Files {
		if file.Check == nil {
			continue
		}
		for _, issue := range file.Check.Issues {
			fix := ""
			if issue.AutoFixable {
				fix = fixableMark
			}
			t.AppendRow(table.Row{
				pretty.TruncatePath(relativePath(file.Path), maxPathCells),
				issue.Line,
				string(issue.Severity),
				issue.Message,
				config.FormatRuleID(r.opts.RuleFormat, issue.RuleID, issue.RuleName),
				fix,
			})
		}
	}

	fmt.Fprintln(r.bw, t.Render())

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
		if result.Stats.IssuesFixable > 0 {
			fmt.Fprintln(r.bw)
			fmt.Fprintln(r.bw, r.styles.Dim.Render("Run with --fix to auto-repair fixable issues"))
		}
	}
}

// reportPerFile outputs a separate table for each file with issues.
func (r *TableReporter) reportPerFile(result *runner.Result) {
	filesWithIssues := 0

	for _, file := range result.Files {
		if file.Check == nil || len(file.Check.Issues) == 0 {
			continue
		}

		filesWithIssues++

		// Print file header
		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, r.styles.Bold.Render(relativePath(file.Path)))

		t := r.newIssueTable(false)
		for _, issue := range file.Check.Issues {
			fix := ""
			if issue.AutoFixable {
				fix = fixableMark
			}
			t.AppendRow(table.Row{
				issue.Line,
				string(issue.Severity),
				issue.Message,
				config.FormatRuleID(r.opts.RuleFormat, issue.RuleID, issue.RuleName),
				fix,
			})
		}
		fmt.Fprintln(r.bw, t.Render())
	}

	// Print overall summary
	if r.opts.ShowSummary && filesWithIssues > 0 {
		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, r.styles.Bold.Render("Overall Summary"))
		fmt.Fprintln(r.bw, r.styles.FormatSummaryOneLine(result.Stats))

		if result.Stats.IssuesFixable > 0 {
			fmt.Fprintln(r.bw)
			fmt.Fprintln(r.bw, r.styles.Dim.Render("Run with --fix to auto-repair fixable issues"))
		}
	}
}

// newIssueTable builds the issue table skeleton. The combined layout carries
// a FILE column; the per-file layout drops it.
func (r *TableReporter) newIssueTable(withFile bool) table.Writer {
	t := pretty.NewTable(r.colorEnabled)
	t.SetAllowedRowLength(r.termWidth)

	severityCol := 2
	if withFile {
		t.AppendHeader(table.Row{"FILE", "LINE", "SEVERITY", "MESSAGE", "RULE", "FIX"})
	} else {
		severityCol = 1
		t.AppendHeader(table.Row{"LINE", "SEVERITY", "MESSAGE", "RULE", "FIX"})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "LINE", Align: text.AlignRight},
		{Name: "MESSAGE", WidthMax: r.termWidth / 2},
		{Name: "FIX", Align: text.AlignCenter},
	})

	if r.colorEnabled {
		t.SetRowPainter(func(row table.Row) text.Colors {
			if severityCol >= len(row) {
				return nil
			}
			severity, _ := row[severityCol].(string)
			return pretty.SeverityColors(severity)
		})
	}

	return t
}

// countTotalIssues counts all issues in the result.
func countTotalIssues(result *runner.Result) int {
	var total int
	for _, file := range result.Files {
		if file.Check != nil {
			total += len(file.Check.Issues)
		}
	}
	return total
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
