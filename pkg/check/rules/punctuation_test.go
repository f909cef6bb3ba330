package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOxfordCommaRule(t *testing.T) {
	rule := NewOxfordCommaRule()

	tests := []struct {
		name       string
		content    string
		wantIssues int
		wantSeries string
	}{
		{
			name:       "missing comma before and",
			content:    "Check AOS, AHV and NCC.",
			wantIssues: 1,
			wantSeries: "AOS, AHV and NCC",
		},
		{
			name:       "missing comma before or",
			content:    "Pick Prism, AHV or ESXi.",
			wantIssues: 1,
			wantSeries: "Prism, AHV or ESXi",
		},
		{
			name:       "comma present",
			content:    "Check AOS, AHV, and NCC.",
			wantIssues: 0,
		},
		{
			name:       "two items only",
			content:    "Check AOS and NCC.",
			wantIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkFragments(t, rule, "test.txt", tt.content, grammarGuide(t))
			require.Len(t, issues, tt.wantIssues)
			if tt.wantIssues == 0 {
				return
			}
			issue := issues[0]
			assert.Equal(t, "Missing Oxford comma in '"+tt.wantSeries+"'", issue.Message)
			assert.Equal(t, tt.wantSeries, issue.OriginalText)
			assert.True(t, issue.AutoFixable)
			assert.Equal(t, 1, issue.Line)
		})
	}
}

func TestOxfordCommaRule_NotRequired(t *testing.T) {
	rule := NewOxfordCommaRule()
	guide := parseGuide(t, `
style_guide:
  grammar_and_mechanics:
    punctuation:
      oxford_comma: optional
`)

	issues := checkFragments(t, rule, "test.txt", "Check AOS, AHV and NCC.", guide)
	assert.Empty(t, issues)
}

func TestCompoundAdjectivesRule(t *testing.T) {
	rule := NewCompoundAdjectivesRule()

	tests := []struct {
		name       string
		content    string
		wantIssues int
		wantMsg    string
		wantFix    string
	}{
		{
			name:       "attributive use",
			content:    "Deploy a single node cluster for testing.",
			wantIssues: 1,
			wantMsg:    "Compound adjective 'single node' should be hyphenated",
			wantFix:    "Use 'single-node'",
		},
		{
			name:       "capitalized at sentence start",
			content:    "Real time replication protects the data.",
			wantIssues: 1,
			wantMsg:    "Compound adjective 'Real time' should be hyphenated",
			wantFix:    "Use 'Real-time'",
		},
		{
			name:       "predicative use at end",
			content:    "The cluster runs on a single node.",
			wantIssues: 0,
		},
		{
			name:       "already hyphenated",
			content:    "Deploy a single-node cluster for testing.",
			wantIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkFragments(t, rule, "test.txt", tt.content, grammarGuide(t))
			require.Len(t, issues, tt.wantIssues)
			if tt.wantIssues == 0 {
				return
			}
			assert.Equal(t, tt.wantMsg, issues[0].Message)
			assert.Equal(t, tt.wantFix, issues[0].Suggestion)
			assert.True(t, issues[0].AutoFixable)
		})
	}
}

func TestQuoteStyleRule(t *testing.T) {
	rule := NewQuoteStyleRule()

	issues := checkFragments(t, rule, "test.txt", "Click 'Save' to apply.", grammarGuide(t))
	require.Len(t, issues, 1)
	assert.Equal(t, "Single-quoted text 'Save' should use double quotes", issues[0].Message)
	assert.Equal(t, `Write it as "Save"`, issues[0].Suggestion)
	assert.Equal(t, "'Save'", issues[0].OriginalText)
	assert.True(t, issues[0].AutoFixable)
}

func TestQuoteStyleRule_IgnoresLowercaseQuotes(t *testing.T) {
	rule := NewQuoteStyleRule()

	issues := checkFragments(t, rule, "test.txt", "The term 'node' means one host.", grammarGuide(t))
	assert.Empty(t, issues)
}
