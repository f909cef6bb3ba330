package analysis

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/runner"
)

func TestAnalyze_EmptyResult(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{},
	}

	report := Analyze(result, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, 0, report.Totals.Issues)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.ByFile)
	assert.Empty(t, report.ByRule)
	assert.Equal(t, ReportVersion, report.Version)
	assert.False(t, report.Timestamp.IsZero())
}

func TestAnalyze_NilResult(t *testing.T) {
	t.Parallel()

	report := Analyze(nil, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, 0, report.Totals.Files)
	assert.NotEmpty(t, report.RunID)
}

func TestAnalyze_AssignsRunID(t *testing.T) {
	t.Parallel()

	result := &runner.Result{}

	first := Analyze(result, DefaultOptions())
	second := Analyze(result, DefaultOptions())

	_, err := ulid.Parse(first.RunID)
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestAnalyze_CountsTotals(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "guide.xml",
				Check: &check.Result{
					Issues: []check.Issue{
						{RuleID: "avoid_contractions", RuleName: "contractions", Severity: config.SeverityError},
						{RuleID: "avoid_contractions", RuleName: "contractions", Severity: config.SeverityError},
						{RuleID: "active_voice", RuleName: "active-voice", Severity: config.SeverityWarning},
					},
				},
			},
			{
				Path: "faq.md",
				Check: &check.Result{
					Issues: []check.Issue{
						{RuleID: "active_voice", RuleName: "active-voice", Severity: config.SeverityWarning},
					},
				},
			},
		},
	}

	report := Analyze(result, DefaultOptions())

	assert.Equal(t, 4, report.Totals.Issues)
	assert.Equal(t, 2, report.Totals.Errors)
	assert.Equal(t, 2, report.Totals.Warnings)
	assert.Equal(t, 2, report.Totals.Files)
	assert.Equal(t, 2, report.Totals.FilesWithIssues)
}

func TestAnalyze_GroupsByRule(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "guide.xml",
				Check: &check.Result{
					Issues: []check.Issue{
						{RuleID: "active_voice", RuleName: "active-voice", Severity: config.SeverityWarning},
						{RuleID: "avoid_contractions", RuleName: "contractions", Category: "Writing Standards", Severity: config.SeverityError, AutoFixable: true},
					},
				},
			},
			{
				Path: "faq.md",
				Check: &check.Result{
					Issues: []check.Issue{
						{RuleID: "avoid_contractions", RuleName: "contractions", Category: "Writing Standards", Severity: config.SeverityError, AutoFixable: true},
					},
				},
			},
		},
	}

	report := Analyze(result, DefaultOptions())

	require.Len(t, report.ByRule, 2)

	// Sorted by count descending: avoid_contractions has 2, active_voice has 1.
	assert.Equal(t, "avoid_contractions", report.ByRule[0].RuleID)
	assert.Equal(t, "Writing Standards", report.ByRule[0].Category)
	assert.Equal(t, 2, report.ByRule[0].Issues)
	assert.True(t, report.ByRule[0].Fixable)
	assert.ElementsMatch(t, []string{"guide.xml", "faq.md"}, report.ByRule[0].Files)

	assert.Equal(t, "active_voice", report.ByRule[1].RuleID)
	assert.Equal(t, 1, report.ByRule[1].Issues)
	assert.False(t, report.ByRule[1].Fixable)
}

func TestAnalyze_GroupsByFile(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "a.xml",
				Check: &check.Result{
					Issues: []check.Issue{
						{RuleID: "avoid_contractions", Severity: config.SeverityError},
					},
				},
			},
			{
				Path: "b.xml",
				Check: &check.Result{
					Issues: []check.Issue{
						{RuleID: "avoid_contractions", Severity: config.SeverityError},
						{RuleID: "active_voice", Severity: config.SeverityWarning},
						{RuleID: "oxford_comma", Severity: config.SeverityWarning},
					},
				},
			},
		},
	}

	report := Analyze(result, DefaultOptions())

	require.Len(t, report.ByFile, 2)

	// Sorted by count descending: b.xml has 3, a.xml has 1.
	assert.Equal(t, "b.xml", report.ByFile[0].Path)
	assert.Equal(t, 3, report.ByFile[0].Issues)
	assert.Equal(t, 1, report.ByFile[0].Errors)
	assert.Equal(t, 2, report.ByFile[0].Warnings)

	assert.Equal(t, "a.xml", report.ByFile[1].Path)
	assert.Equal(t, 1, report.ByFile[1].Issues)
}

func TestAnalyze_SortByAlpha(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "z.md",
				Check: &check.Result{
					Issues: []check.Issue{{RuleID: "avoid_contractions"}},
				},
			},
			{
				Path: "a.md",
				Check: &check.Result{
					Issues: []check.Issue{{RuleID: "avoid_contractions"}, {RuleID: "avoid_contractions"}},
				},
			},
		},
	}

	opts := DefaultOptions()
	opts.SortBy = SortByAlpha

	report := Analyze(result, opts)

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "a.md", report.ByFile[0].Path)
	assert.Equal(t, "z.md", report.ByFile[1].Path)
}

func TestAnalyze_DefaultsSeverityToWarning(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "notes.txt",
				Check: &check.Result{
					Issues: []check.Issue{{RuleID: "active_voice"}},
				},
			},
		},
	}

	report := Analyze(result, DefaultOptions())

	assert.Equal(t, 1, report.Totals.Warnings)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "warning", report.Issues[0].Severity)
}

func TestAnalyze_SkipsErroredFiles(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:  "broken.xml",
				Error: errors.New("read broken.xml: permission denied"),
			},
			{
				Path: "guide.xml",
				Check: &check.Result{
					Issues: []check.Issue{{RuleID: "avoid_contractions", Severity: config.SeverityError}},
				},
			},
		},
	}

	report := Analyze(result, DefaultOptions())

	assert.Equal(t, 2, report.Totals.Files)
	assert.Equal(t, 1, report.Totals.FilesWithIssues)
	assert.Equal(t, 1, report.Totals.Issues)
	require.Len(t, report.ByFile, 1)
	assert.Equal(t, "guide.xml", report.ByFile[0].Path)
}

func TestAnalyze_RelativePaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: filepath.Join(dir, "docs", "install.xml"),
				Check: &check.Result{
					Issues: []check.Issue{{RuleID: "avoid_contractions", Severity: config.SeverityError}},
				},
			},
		},
	}

	opts := DefaultOptions()
	opts.WorkingDir = dir

	report := Analyze(result, opts)

	require.Len(t, report.ByFile, 1)
	assert.Equal(t, filepath.Join("docs", "install.xml"), report.ByFile[0].Path)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, filepath.Join("docs", "install.xml"), report.Issues[0].FilePath)
}

func TestAnalyze_ExcludeViews(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "guide.xml",
				Check: &check.Result{
					Issues: []check.Issue{{RuleID: "avoid_contractions"}},
				},
			},
		},
	}

	opts := Options{
		IncludeIssues: false,
		IncludeByFile: false,
		IncludeByRule: true,
		SortBy:        SortByCount,
		SortDesc:      true,
	}

	report := Analyze(result, opts)

	assert.Empty(t, report.Issues, "issue list should be excluded")
	assert.Empty(t, report.ByFile, "byFile should be excluded")
	assert.NotEmpty(t, report.ByRule, "byRule should be included")
	assert.Equal(t, 1, report.Totals.Issues, "totals always computed")
}
