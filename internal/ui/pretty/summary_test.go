package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gostylecheck/internal/ui/pretty"
	"github.com/yaklabco/gostylecheck/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   10,
		FilesWithIssues:  3,
		IssuesTotal:      15,
		IssuesBySeverity: map[string]int{"error": 5, "warning": 10},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files checked")
	assert.Contains(t, result, "10")
	assert.Contains(t, result, "Files with issues")
	assert.Contains(t, result, "Total issues")
	assert.Contains(t, result, "15")
	assert.Contains(t, result, "Check failed with errors")
}

func TestFormatSummary_WarningsOnly(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   4,
		FilesWithIssues:  1,
		IssuesTotal:      2,
		IssuesBySeverity: map[string]int{"warning": 2},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Check completed with warnings")
	assert.NotContains(t, result, "Check failed")
}

func TestFormatSummary_Clean(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed: 7,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Check passed")
	assert.NotContains(t, result, "Files modified")
	assert.NotContains(t, result, "Issues fixed")
}

func TestFormatSummary_FixMode(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   5,
		FilesWithIssues:  2,
		FilesModified:    2,
		IssuesTotal:      3,
		IssuesFixed:      7,
		IssuesBySeverity: map[string]int{"warning": 3},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Files modified")
	assert.Contains(t, result, "Issues fixed")
}

func TestFormatSummaryOneLine_WithIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   5,
		FilesWithIssues:  4,
		IssuesTotal:      12,
		IssuesBySeverity: map[string]int{"error": 3, "warning": 9},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "12 issues")
	assert.Contains(t, result, "(3 errors, 9 warnings)")
	assert.Contains(t, result, "in 4 files")
}

func TestFormatSummaryOneLine_SingleFile(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   1,
		FilesWithIssues:  1,
		IssuesTotal:      1,
		IssuesBySeverity: map[string]int{"warning": 1},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "1 issue ")
	assert.Contains(t, result, "in 1 file")
	assert.NotContains(t, result, "in 1 files")
}

func TestFormatSummaryOneLine_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed: 5,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "No issues found")
	assert.Contains(t, result, "5 files checked")
}

func TestFormatSummaryOneLine_Fixable(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   2,
		FilesWithIssues:  2,
		IssuesTotal:      6,
		IssuesFixable:    4,
		IssuesBySeverity: map[string]int{"warning": 6},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "4 fixable")
}

func TestFormatSummaryOneLine_Fixed(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   3,
		FilesWithIssues:  2,
		FilesModified:    2,
		IssuesTotal:      1,
		IssuesFixed:      7,
		IssuesBySeverity: map[string]int{"warning": 1},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "7 fixed in 2 files")
}

func TestFormatSummaryOneLine_AllFixed(t *testing.T) {
	styles := pretty.NewStyles(false)

	// Fix mode where every issue was repaired: totals are post-fix.
	stats := runner.Stats{
		FilesProcessed:   3,
		FilesModified:    1,
		IssuesFixed:      2,
		IssuesBySeverity: map[string]int{},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "No issues found")
	assert.Contains(t, result, "2 fixed in 1 file")
}
