package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gostylecheck/internal/logging"
	"github.com/yaklabco/gostylecheck/internal/ui/pretty"
	"github.com/yaklabco/gostylecheck/pkg/analysis"
	"github.com/yaklabco/gostylecheck/pkg/config"
)

type reportFlags struct {
	output string
	sortBy string
	desc   bool
	pretty bool
	top    int
}

// reportTopDefault caps the per-rule and per-file sections.
const reportTopDefault = 20

func newReportCommand() *cobra.Command {
	var cfg config.Config
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report [paths...]",
		Short: "Generate a Markdown style report",
		Long: `Check documentation and write an aggregated Markdown report: totals,
issues per rule, issues per file, and the full issue list.

With --pretty the report is rendered for the terminal instead of being
emitted as raw Markdown. With --output it is written to a file.

Examples:
  gostylecheck report docs/                    # Markdown to stdout
  gostylecheck report --pretty                 # Rendered in the terminal
  gostylecheck report -o style-report.md       # Written to a file
  gostylecheck report --sort severity --desc   # Worst rules first`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to a file")
	cmd.Flags().StringVar(&flags.sortBy, "sort", "count", "sort tables by: count, alpha, severity")
	cmd.Flags().BoolVar(&flags.desc, "desc", true, "sort in descending order")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "render the report in the terminal")
	cmd.Flags().IntVar(&flags.top, "top", reportTopDefault, "limit per-rule and per-file tables (0 = all)")

	return cmd
}

func runReport(cmd *cobra.Command, args []string, cfg *config.Config, flags *reportFlags) error {
	logger := logging.Default()

	sortBy := analysis.SortField(flags.sortBy)
	if !sortBy.IsValid() {
		return fmt.Errorf("invalid --sort %q (expected count, alpha, or severity)", flags.sortBy)
	}

	result, _, err := runStyleCheck(cmd, args, cfg)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		workDir = ""
	}

	report := analysis.Analyze(result, analysis.Options{
		IncludeIssues: true,
		IncludeByFile: true,
		IncludeByRule: true,
		SortBy:        sortBy,
		SortDesc:      flags.desc,
		RuleFormat:    config.RuleFormatID,
		WorkingDir:    workDir,
	})

	markdown := renderMarkdownReport(report, flags.top)

	if flags.output != "" {
		if err := os.WriteFile(flags.output, []byte(markdown), configFilePermissions); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("report written", logging.FieldOutput, flags.output)
		return nil
	}

	if flags.pretty {
		return renderPrettyReport(cmd, markdown)
	}

	fmt.Fprint(cmd.OutOrStdout(), markdown)
	return nil
}

// renderPrettyReport renders the Markdown report for the terminal.
func renderPrettyReport(cmd *cobra.Command, markdown string) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	style := glamour.WithAutoStyle()
	if !pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()) {
		style = glamour.WithStandardStyle("notty")
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(0))
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// renderMarkdownReport formats an analysis report as a Markdown document.
func renderMarkdownReport(report *analysis.Report, top int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Style Report\n\n")
	fmt.Fprintf(&b, "Run `%s` at %s\n\n", report.RunID, report.Timestamp.Format("2006-01-02 15:04:05"))

	t := report.Totals
	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "| Files checked | With issues | Issues | Errors | Warnings | Info | Fixable |\n")
	fmt.Fprintf(&b, "| --- | --- | --- | --- | --- | --- | --- |\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %d | %d | %d |\n\n",
		t.Files, t.FilesWithIssues, t.Issues, t.Errors, t.Warnings, t.Infos, t.Fixable)

	if len(report.ByRule) > 0 {
		fmt.Fprintf(&b, "## Issues by rule\n\n")
		fmt.Fprintf(&b, "| Rule | Category | Issues | Errors | Warnings | Fix |\n")
		fmt.Fprintf(&b, "| --- | --- | --- | --- | --- | --- |\n")
		for i, rule := range report.ByRule {
			if top > 0 && i >= top {
				fmt.Fprintf(&b, "\n_%d more rules omitted._\n", len(report.ByRule)-top)
				break
			}
			fixable := ""
			if rule.Fixable {
				fixable = "✓"
			}
			fmt.Fprintf(&b, "| `%s` | %s | %d | %d | %d | %s |\n",
				rule.RuleID, rule.Category, rule.Issues, rule.Errors, rule.Warnings, fixable)
		}
		b.WriteString("\n")
	}

	if len(report.ByFile) > 0 {
		fmt.Fprintf(&b, "## Issues by file\n\n")
		fmt.Fprintf(&b, "| File | Issues | Errors | Warnings |\n")
		fmt.Fprintf(&b, "| --- | --- | --- | --- |\n")
		for i, file := range report.ByFile {
			if top > 0 && i >= top {
				fmt.Fprintf(&b, "\n_%d more files omitted._\n", len(report.ByFile)-top)
				break
			}
			fmt.Fprintf(&b, "| `%s` | %d | %d | %d |\n",
				file.Path, file.Issues, file.Errors, file.Warnings)
		}
		b.WriteString("\n")
	}

	if len(report.Issues) > 0 {
		fmt.Fprintf(&b, "## All issues\n\n")
		for _, issue := range report.Issues {
			fmt.Fprintf(&b, "- `%s:%d` **%s** %s (`%s`)", issue.FilePath, issue.Line,
				issue.Severity, issue.Message, issue.RuleID)
			if issue.Suggestion != "" {
				fmt.Fprintf(&b, " (suggestion: %s)", issue.Suggestion)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
