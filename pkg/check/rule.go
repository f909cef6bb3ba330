package check

import (
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/extract"
)

// Rule describes one style check. Concrete rules also implement
// FragmentRule or DocumentRule; the engine dispatches on which.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "avoid_contractions").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// Category returns the reporting category (e.g., "Writing Standards").
	Category() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// CanFix returns whether this rule can produce auto-fixable issues.
	CanFix() bool
}

// FragmentRule is a rule evaluated once per extracted text fragment.
//
// Rules must:
//   - Return issues for each violation found.
//   - Attribute issues to the fragment's mapped line unless they know better.
//   - Return error only for internal failures, not violations.
type FragmentRule interface {
	Rule
	CheckFragment(rc *RuleContext, frag extract.Fragment) ([]Issue, error)
}

// DocumentRule is a rule evaluated once per document, after all fragment
// rules have run.
type DocumentRule interface {
	Rule
	CheckDocument(rc *RuleContext) ([]Issue, error)
}
