package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gostylecheck/internal/ui/pretty"
	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
)

func TestFormatIssue_Basic(t *testing.T) {
	styles := pretty.NewStyles(false) // No colors for easier testing

	issue := &check.Issue{
		RuleID:   check.RuleContractions,
		RuleName: "contractions",
		Message:  `Contraction "don't" found; expand to "do not"`,
		Severity: config.SeverityError,
		FilePath: "docs/guide.xml",
		Line:     10,
	}

	result := styles.FormatIssue(issue, false, "")

	assert.Contains(t, result, "docs/guide.xml:10")
	assert.Contains(t, result, "error")
	assert.Contains(t, result, `Contraction "don't" found`)
	assert.Contains(t, result, "(contractions)")
}

func TestFormatIssue_WithContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	issue := &check.Issue{
		RuleID:       check.RuleContractions,
		RuleName:     "contractions",
		Message:      "Contraction found",
		Severity:     config.SeverityWarning,
		FilePath:     "guide.xml",
		Line:         5,
		OriginalText: "don't",
	}

	sourceLine := "You don't need to restart."
	result := styles.FormatIssue(issue, true, sourceLine)

	assert.Contains(t, result, "You don't need to restart.")
	assert.Contains(t, result, "^^^^^", "caret run should cover the offending span")

	// Carets should sit under "don't" (column 5).
	caretLine := ""
	for _, line := range strings.Split(result, "\n") {
		if strings.Contains(line, "^") {
			caretLine = line
		}
	}
	assert.Equal(t, strings.Index(sourceLine, "don't"), strings.Index(caretLine, "^")-8,
		"caret column should match the span offset plus the context indent")
}

func TestFormatIssue_SpanNotOnLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	issue := &check.Issue{
		RuleID:       check.RuleActiveVoice,
		RuleName:     "active-voice",
		Message:      "Passive voice detected",
		Severity:     config.SeverityWarning,
		FilePath:     "guide.xml",
		Line:         3,
		OriginalText: "was configured",
	}

	// The span does not occur on the line; the caret falls back to column 1.
	result := styles.FormatIssue(issue, true, "Something else entirely.")

	assert.Contains(t, result, "Something else entirely.")
	assert.Contains(t, result, "^")
	assert.NotContains(t, result, "^^")
}

func TestFormatIssue_WithSuggestion(t *testing.T) {
	styles := pretty.NewStyles(false)

	issue := &check.Issue{
		RuleID:     check.RuleOxfordComma,
		RuleName:   "oxford-comma",
		Message:    "Missing Oxford comma",
		Severity:   config.SeverityInfo,
		FilePath:   "guide.xml",
		Line:       1,
		Suggestion: "apples, oranges, and pears",
	}

	result := styles.FormatIssue(issue, false, "")

	assert.Contains(t, result, "Suggestion:")
	assert.Contains(t, result, "apples, oranges, and pears")
}

func TestFormatSeverity_AllLevels(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		severity config.Severity
		expected string
	}{
		{config.SeverityError, "error"},
		{config.SeverityWarning, "warning"},
		{config.SeverityInfo, "info"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			result := styles.FormatSeverity(tt.severity)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatSourceContext_WithCaret(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("test line", 5, 4)

	lines := strings.Split(result, "\n")
	assert.GreaterOrEqual(t, len(lines), 2) // Source line and caret line

	assert.Contains(t, result, "^^^^")
}

func TestFormatSourceContext_ZeroColumn(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("test line", 0, 1)

	// With column 0, no caret should be shown
	assert.Contains(t, result, "test line")
	assert.NotContains(t, result, "^")
}

func TestFormatFileHeader_WithIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFileHeader("docs/readme.xml", 5)

	assert.Contains(t, result, "docs/readme.xml")
	assert.Contains(t, result, "(5 issues)")
}

func TestFormatFileHeader_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFileHeader("docs/readme.xml", 0)

	assert.Contains(t, result, "docs/readme.xml")
	assert.NotContains(t, result, "issues")
}

func TestFormatIssue_WithRuleFormat(t *testing.T) {
	styles := pretty.NewStyles(false)

	issue := &check.Issue{
		RuleID:   check.RuleContractions,
		RuleName: "contractions",
		Message:  "Contraction found",
		Severity: config.SeverityWarning,
		FilePath: "guide.xml",
		Line:     1,
	}

	tests := []struct {
		format   config.RuleFormat
		contains string
		excludes string
	}{
		{config.RuleFormatName, "(contractions)", "(avoid_contractions)"},
		{config.RuleFormatID, "(avoid_contractions)", "(contractions)"},
		{config.RuleFormatCombined, "(avoid_contractions/contractions)", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			result := styles.FormatIssueWithFormat(issue, false, "", tt.format)
			assert.Contains(t, result, tt.contains)
			if tt.excludes != "" {
				assert.NotContains(t, result, tt.excludes)
			}
		})
	}
}
