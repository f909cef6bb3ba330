package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/styleguide"
)

// qualityGuide enables the content-quality checks.
func qualityGuide(t *testing.T) *styleguide.Guide {
	t.Helper()
	return parseGuide(t, `
content_quality:
  technical_accuracy:
    strictly_prohibited:
      - root password
      - internal hostname
  accessibility: {}
`)
}

func TestProhibitedContentRule(t *testing.T) {
	rule := NewProhibitedContentRule()

	issues := checkFragments(t, rule, "test.txt", "Share the root password with support.", qualityGuide(t))
	require.Len(t, issues, 1)
	assert.Equal(t, "Prohibited content found: 'root password'", issues[0].Message)
	assert.False(t, issues[0].AutoFixable)

	issues = checkFragments(t, rule, "test.txt", "Share the admin credentials with support.", qualityGuide(t))
	assert.Empty(t, issues)

	issues = checkFragments(t, rule, "test.txt", "Share the root password with support.", nil)
	assert.Empty(t, issues)
}

func TestNegativeTermsRule(t *testing.T) {
	rule := NewNegativeTermsRule()

	tests := []struct {
		name       string
		content    string
		wantIssues int
		wantSugg   string
	}{
		{
			name:       "stuck maps to no progress",
			content:    "The process got stuck during upgrade.",
			wantIssues: 1,
			wantSugg:   "Use 'no progress' instead of 'stuck'",
		},
		{
			name:       "crash maps to failure",
			content:    "A crash was reported.",
			wantIssues: 1,
			wantSugg:   "Use 'failure' instead of 'crash'",
		},
		{
			name:       "term inside larger word is ignored",
			content:    "We are debugging the system.",
			wantIssues: 0,
		},
		{
			name:       "neutral sentence",
			content:    "The upgrade completed successfully.",
			wantIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkFragments(t, rule, "test.txt", tt.content, qualityGuide(t))
			assert.Len(t, issues, tt.wantIssues)
			if tt.wantSugg != "" && len(issues) > 0 {
				assert.Equal(t, tt.wantSugg, issues[0].Suggestion)
			}
		})
	}
}

func TestInclusiveLanguageRule(t *testing.T) {
	rule := NewInclusiveLanguageRule()

	issues := checkFragments(t, rule, "test.txt", "Add the node to the whitelist.", qualityGuide(t))
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, "Non-inclusive term 'whitelist' found", issue.Message)
	assert.Contains(t, issue.Suggestion, "allow list")
	assert.False(t, issue.AutoFixable)
	assert.Equal(t, config.SeverityError, rule.DefaultSeverity())
}

func TestInclusiveLanguageRule_MultipleTermsInOrder(t *testing.T) {
	rule := NewInclusiveLanguageRule()

	issues := checkFragments(t, rule, "test.txt", "The master lists the slave nodes.", qualityGuide(t))
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0].Message, "master")
	assert.Contains(t, issues[1].Message, "slave")
}

func TestInclusiveLanguageRule_WordBounded(t *testing.T) {
	rule := NewInclusiveLanguageRule()

	issues := checkFragments(t, rule, "test.txt",
		"Attend the masterclass on the remastered release.", qualityGuide(t))
	assert.Empty(t, issues, "terms embedded in longer words should not match")

	issues = checkFragments(t, rule, "test.txt",
		"Replace the master/slave wiring.", qualityGuide(t))
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0].Message, "master")
	assert.Contains(t, issues[1].Message, "slave")
}
