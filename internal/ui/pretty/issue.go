package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
)

// sourceContextIndent aligns quoted source under its issue line.
const sourceContextIndent = "        "

// FormatIssue formats a single issue for display using the default rule format.
func (s *Styles) FormatIssue(issue *check.Issue, showContext bool, sourceLine string) string {
	return s.FormatIssueWithFormat(issue, showContext, sourceLine, config.RuleFormatName)
}

// FormatIssueWithFormat formats a single issue for display:
//
//	path:line  severity  message  (rule)
//	        offending source line
//	              ^^^^
//	    Suggestion: replacement text
//
// The source context and suggestion lines appear only when available.
func (s *Styles) FormatIssueWithFormat(issue *check.Issue, showContext bool, sourceLine string, ruleFormat config.RuleFormat) string {
	var sb strings.Builder

	location := s.FilePath.Render(fmt.Sprintf("%s:%d", issue.FilePath, issue.Line))
	severity := s.FormatSeverity(issue.Severity)
	message := s.Message.Render(issue.Message)
	ruleDisplay := config.FormatRuleID(ruleFormat, issue.RuleID, issue.RuleName)
	rule := s.RuleID.Render("(" + ruleDisplay + ")")

	sb.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n", location, severity, message, rule))

	if showContext && sourceLine != "" {
		column, width := locateSpan(sourceLine, issue.OriginalText)
		sb.WriteString(s.FormatSourceContext(sourceLine, column, width))
	}

	if issue.Suggestion != "" {
		sb.WriteString("    " + s.Suggestion.Render("Suggestion: "+issue.Suggestion) + "\n")
	}

	return sb.String()
}

// locateSpan finds the 1-based column and width of the offending text within
// the source line. When the text does not occur on the line, the caret falls
// back to column 1 with width 1.
func locateSpan(sourceLine, originalText string) (column, width int) {
	if originalText != "" {
		if idx := strings.Index(sourceLine, originalText); idx >= 0 {
			return idx + 1, len(originalText)
		}
	}
	return 1, 1
}

// FormatSeverity formats a severity with the appropriate color.
func (s *Styles) FormatSeverity(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(severity)
	}
}

// FormatSourceContext formats a source line with carets underlining the span
// starting at the 1-based column.
func (s *Styles) FormatSourceContext(line string, column, width int) string {
	var sb strings.Builder

	trimmed := strings.TrimRight(line, "\r\n")
	sb.WriteString(sourceContextIndent)
	sb.WriteString(s.SourceLine.Render(trimmed))
	sb.WriteString("\n")

	if column > 0 && column <= len(trimmed)+1 {
		if width < 1 {
			width = 1
		}
		sb.WriteString(sourceContextIndent)
		sb.WriteString(strings.Repeat(" ", column-1))
		sb.WriteString(s.Caret.Render(strings.Repeat("^", width)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatFileHeader formats a file path header with its issue count. A zero
// count renders the bare path.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	if issueCount == 0 {
		return s.FilePath.Render(path) + "\n"
	}
	noun := "issues"
	if issueCount == 1 {
		noun = "issue"
	}
	return fmt.Sprintf("%s %s\n", s.FilePath.Render(path), s.Dim.Render(fmt.Sprintf("(%d %s)", issueCount, noun)))
}
