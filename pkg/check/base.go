package check

import "github.com/yaklabco/gostylecheck/pkg/config"

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id       string          // Unique identifier (e.g., "avoid_contractions")
	name     string          // Human-readable name
	desc     string          // Detailed description
	category string          // Reporting category
	severity config.Severity // Default severity
	fixable  bool            // Whether the rule can auto-fix
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc, category string, severity config.Severity, fixable bool) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		category: category,
		severity: severity,
		fixable:  fixable,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Category returns the reporting category for this rule.
func (r *BaseRule) Category() string {
	return r.category
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this rule.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return r.severity
}

// CanFix returns whether this rule can auto-fix issues.
func (r *BaseRule) CanFix() bool {
	return r.fixable
}

// NewRuleIssue starts an IssueBuilder pre-filled with the rule's identity.
func (r *BaseRule) NewRuleIssue(line int, message string) *IssueBuilder {
	return NewIssue(r.id, line, message).WithCategory(r.category)
}
