package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/runner"
)

// summaryDividerWidth is the width of the divider under the summary title.
const summaryDividerWidth = 40

// FormatSummaryOneLine formats run statistics as a single line.
//
// With issues: "8 issues (3 errors, 5 warnings), in 2 files, 4 fixable"
// Without:     "No issues found (5 files checked)"
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	errors := stats.IssuesBySeverity["error"]
	warnings := stats.IssuesBySeverity["warning"]
	infos := stats.IssuesBySeverity["info"]

	if stats.IssuesTotal == 0 {
		line := s.Success.Render(fmt.Sprintf("No issues found (%d %s checked)",
			stats.FilesProcessed, pluralize("file", stats.FilesProcessed)))
		if stats.IssuesFixed > 0 {
			line += s.Dim.Render(fmt.Sprintf(", %d fixed in %d %s",
				stats.IssuesFixed, stats.FilesModified, pluralize("file", stats.FilesModified)))
		}
		return line
	}

	counts := fmt.Sprintf("%d %s (%d %s, %d %s",
		stats.IssuesTotal, pluralize("issue", stats.IssuesTotal),
		errors, pluralize("error", errors),
		warnings, pluralize("warning", warnings))
	if infos > 0 {
		counts += fmt.Sprintf(", %d info", infos)
	}
	counts += ")"

	var sb strings.Builder
	if errors > 0 {
		sb.WriteString(s.Failure.Render(counts))
	} else {
		sb.WriteString(s.Warning.Render(counts))
	}

	sb.WriteString(fmt.Sprintf(", in %d %s",
		stats.FilesWithIssues, pluralize("file", stats.FilesWithIssues)))

	if stats.IssuesFixable > 0 {
		sb.WriteString(s.Dim.Render(fmt.Sprintf(", %d fixable", stats.IssuesFixable)))
	}
	if stats.IssuesFixed > 0 {
		sb.WriteString(s.Dim.Render(fmt.Sprintf(", %d fixed in %d %s",
			stats.IssuesFixed, stats.FilesModified, pluralize("file", stats.FilesModified))))
	}

	return sb.String()
}

// FormatSummary formats run statistics as a multi-line block with a status line.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	errors := stats.IssuesBySeverity["error"]
	warnings := stats.IssuesBySeverity["warning"]
	infos := stats.IssuesBySeverity["info"]

	var sb strings.Builder
	sb.WriteString(s.SummaryTitle.Render("Summary") + "\n")
	sb.WriteString(s.Dim.Render(strings.Repeat("─", summaryDividerWidth)) + "\n")

	row := func(label string, value int) {
		sb.WriteString(fmt.Sprintf("%-20s %s\n", label+":",
			s.SummaryValue.Render(fmt.Sprintf("%d", value))))
	}

	row("Files checked", stats.FilesProcessed)
	row("Files with issues", stats.FilesWithIssues)
	if stats.FilesSkipped > 0 {
		row("Files skipped", stats.FilesSkipped)
	}
	if stats.FilesErrored > 0 {
		row("Files errored", stats.FilesErrored)
	}
	if stats.FilesModified > 0 {
		row("Files modified", stats.FilesModified)
	}
	row("Total issues", stats.IssuesTotal)
	row("  Errors", errors)
	row("  Warnings", warnings)
	row("  Info", infos)
	if stats.IssuesFixed > 0 {
		row("Issues fixed", stats.IssuesFixed)
	}
	sb.WriteString("\n")

	switch {
	case errors > 0:
		sb.WriteString(s.Failure.Render("Check failed with errors") + "\n")
	case stats.IssuesTotal > 0:
		sb.WriteString(s.Warning.Render("Check completed with warnings") + "\n")
	default:
		sb.WriteString(s.Success.Render("Check passed") + "\n")
	}

	return sb.String()
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
