package reporter_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/reporter"
	"github.com/yaklabco/gostylecheck/pkg/runner"
)

func TestReporter_FacadeReturnsIssueCount(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := reporter.Options{
		Writer: &buf,
		Format: reporter.FormatSummary,
	}

	rep, err := reporter.New(opts)
	require.NoError(t, err)

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "guide.xml",
				Check: &check.Result{
					Issues: []check.Issue{
						{RuleID: check.RuleContractions, RuleName: "contractions", FilePath: "guide.xml", Line: 1, Severity: config.SeverityError},
						{RuleID: check.RuleActiveVoice, RuleName: "active-voice", FilePath: "guide.xml", Line: 2, Severity: config.SeverityWarning},
					},
				},
			},
		},
	}

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
