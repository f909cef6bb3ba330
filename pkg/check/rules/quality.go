package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/extract"
)

// ProhibitedContentRule flags strings the style guide strictly prohibits.
type ProhibitedContentRule struct {
	check.BaseRule
}

// NewProhibitedContentRule creates a new prohibited-content rule.
func NewProhibitedContentRule() *ProhibitedContentRule {
	return &ProhibitedContentRule{
		BaseRule: check.NewBaseRule(
			check.RuleProhibitedContent,
			"prohibited-content",
			"Content that must never appear in published material",
			check.CategoryQuality,
			config.SeverityError,
			false,
		),
	}
}

// CheckFragment flags strictly prohibited strings in the fragment.
func (r *ProhibitedContentRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	ta := rc.Guide.TechnicalAccuracy()
	if ta == nil || len(ta.StrictlyProhibited) == 0 {
		return nil, nil
	}

	var issues []check.Issue
	for _, term := range ta.StrictlyProhibited {
		if term == "" || !check.ContainsFold(frag.Text, term) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Prohibited content found: '%s'", term),
		).
			WithSuggestion("Remove this content").
			Build())
	}
	return issues, nil
}

// NegativeTermsRule flags alarming terms with neutral alternatives.
type NegativeTermsRule struct {
	check.BaseRule
}

// NewNegativeTermsRule creates a new negative-terms rule.
func NewNegativeTermsRule() *NegativeTermsRule {
	return &NegativeTermsRule{
		BaseRule: check.NewBaseRule(
			check.RuleNegativeTerms,
			"negative-terms",
			"Prefer neutral terms over alarming ones",
			check.CategoryQuality,
			config.SeverityWarning,
			false,
		),
	}
}

// CheckFragment flags negative terms in the fragment. Terms are matched
// with a space on at least one side so short words stay out of larger
// ones ("bug" in "debugging").
func (r *NegativeTermsRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	if rc.Guide.TechnicalAccuracy() == nil {
		return nil, nil
	}

	var issues []check.Issue
	lower := strings.ToLower(frag.Text)
	for _, entry := range check.NegativeTerms {
		if !check.ContainsPadded(lower, entry.Term) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Negative term '%s' found", entry.Term),
		).
			WithSuggestion(fmt.Sprintf("Use '%s' instead of '%s'", entry.Alternative, entry.Term)).
			Build())
	}
	return issues, nil
}

// InclusiveLanguageRule flags non-inclusive terminology.
type InclusiveLanguageRule struct {
	check.BaseRule
}

// NewInclusiveLanguageRule creates a new inclusive-language rule.
func NewInclusiveLanguageRule() *InclusiveLanguageRule {
	return &InclusiveLanguageRule{
		BaseRule: check.NewBaseRule(
			check.RuleInclusiveLanguage,
			"inclusive-language",
			"Use inclusive terminology",
			check.CategoryQuality,
			config.SeverityError,
			false,
		),
	}
}

// CheckFragment flags non-inclusive terms in the fragment. These touch
// meaning, so they are reported but never auto-fixed.
func (r *InclusiveLanguageRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	if rc.Guide.TechnicalAccuracy() == nil {
		return nil, nil
	}

	var issues []check.Issue
	lower := strings.ToLower(frag.Text)
	for _, entry := range check.NonInclusiveTerms {
		if !check.ContainsWord(lower, entry.Term) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Non-inclusive term '%s' found", entry.Term),
		).
			WithSuggestion(fmt.Sprintf("Use '%s' instead", entry.Alternative)).
			Build())
	}
	return issues, nil
}
