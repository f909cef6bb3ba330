package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gostylecheck/pkg/styleguide"
)

// headingGuide asks for sentence-case headings and registers the proper
// nouns the capitalization check must leave alone.
func headingGuide(t *testing.T) *styleguide.Guide {
	t.Helper()
	return parseGuide(t, `
style_guide:
  grammar_and_mechanics:
    capitalization:
      headings: sentence_case
  terminology:
    product_names:
      canonical:
        - "Prism Central"
phoenix_specific:
  terminology: {}
`)
}

func TestHeadingCapitalizationRule(t *testing.T) {
	rule := NewHeadingCapitalizationRule()

	tests := []struct {
		name       string
		content    string
		wantIssues int
		wantMsg    string
		wantFix    string
	}{
		{
			name:       "title case heading",
			content:    "# Getting Started With Clusters\n\nBody text.\n",
			wantIssues: 1,
			wantMsg:    "Heading should use sentence case: 'Getting Started With Clusters'",
			wantFix:    "Use 'Getting started with clusters'",
		},
		{
			name:       "acronyms stay uppercase",
			content:    "# Upgrading AOS on the cluster\n\nBody text.\n",
			wantIssues: 0,
		},
		{
			name:       "product name words survive",
			content:    "# Working with Prism Central\n\nBody text.\n",
			wantIssues: 0,
		},
		{
			name:       "configured proper noun survives",
			content:    "# Imaging with Phoenix\n\nBody text.\n",
			wantIssues: 0,
		},
		{
			name:       "proper noun kept inside the fix",
			content:    "# Using Phoenix For Imaging\n\nBody text.\n",
			wantIssues: 1,
			wantMsg:    "Heading should use sentence case: 'Using Phoenix For Imaging'",
			wantFix:    "Use 'Using Phoenix for imaging'",
		},
		{
			name:       "single word heading",
			content:    "# Overview\n\nBody text.\n",
			wantIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkDocument(t, rule, "doc.md", tt.content, headingGuide(t))
			require.Len(t, issues, tt.wantIssues)
			if tt.wantIssues == 0 {
				return
			}
			issue := issues[0]
			assert.Equal(t, tt.wantMsg, issue.Message)
			assert.Equal(t, tt.wantFix, issue.Suggestion)
			assert.True(t, issue.AutoFixable)
			assert.Equal(t, 1, issue.Line)
		})
	}
}

func TestHeadingCapitalizationRule_TitleCaseStyle(t *testing.T) {
	rule := NewHeadingCapitalizationRule()
	guide := parseGuide(t, `
style_guide:
  grammar_and_mechanics:
    capitalization:
      headings: title_case
`)

	issues := checkDocument(t, rule, "doc.md", "# Getting Started With Clusters\n", guide)
	assert.Empty(t, issues)
}
