// Package check provides the rule engine, issues, and registry for gostylecheck.
package check

import "github.com/yaklabco/gostylecheck/pkg/config"

// Issue represents a single style problem found in a document.
type Issue struct {
	// RuleID is the identifier of the rule that produced this issue.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "contractions").
	RuleName string

	// Category is the reporting category (e.g., "Writing Standards").
	Category string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the issue.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// Line is the 1-based source line the issue is attributed to.
	Line int

	// Suggestion is an optional human-readable remediation hint.
	Suggestion string

	// OriginalText is the offending span as it appears in the source,
	// set whenever the rule flagged a concrete substring. The fixer
	// re-locates this text on the issue's line.
	OriginalText string

	// AutoFixable indicates a literal replacement exists for this issue.
	AutoFixable bool
}

// IssueBuilder helps construct Issue values.
type IssueBuilder struct {
	issue Issue
}

// NewIssue starts building an issue for the given rule at a source line.
func NewIssue(ruleID string, line int, message string) *IssueBuilder {
	return &IssueBuilder{
		issue: Issue{
			RuleID:  ruleID,
			Line:    line,
			Message: message,
		},
	}
}

// WithCategory sets the reporting category.
func (b *IssueBuilder) WithCategory(category string) *IssueBuilder {
	b.issue.Category = category
	return b
}

// WithSeverity sets the severity.
func (b *IssueBuilder) WithSeverity(s config.Severity) *IssueBuilder {
	b.issue.Severity = s
	return b
}

// WithSuggestion sets a human-readable remediation hint.
func (b *IssueBuilder) WithSuggestion(s string) *IssueBuilder {
	b.issue.Suggestion = s
	return b
}

// WithOriginalText records the offending span as found in the source.
func (b *IssueBuilder) WithOriginalText(s string) *IssueBuilder {
	b.issue.OriginalText = s
	return b
}

// Fixable marks the issue as auto-fixable.
func (b *IssueBuilder) Fixable() *IssueBuilder {
	b.issue.AutoFixable = true
	return b
}

// Build returns the constructed Issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}
