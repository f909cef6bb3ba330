// Package rules implements the built-in style checks. Each rule embeds
// check.BaseRule and implements check.FragmentRule or check.DocumentRule;
// RegisterAll wires them into a registry in evaluation order.
package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/extract"
)

// ActiveVoiceRule flags passive-voice indicator phrases when the style
// guide prefers active or imperative voice.
type ActiveVoiceRule struct {
	check.BaseRule
}

// NewActiveVoiceRule creates a new active-voice rule.
func NewActiveVoiceRule() *ActiveVoiceRule {
	return &ActiveVoiceRule{
		BaseRule: check.NewBaseRule(
			check.RuleActiveVoice,
			"active-voice",
			"Prefer active voice over passive constructions",
			check.CategoryWriting,
			config.SeverityWarning,
			true,
		),
	}
}

// CheckFragment flags passive indicator phrases in the fragment.
func (r *ActiveVoiceRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	if !rc.Guide.VoiceAndMood().Active() {
		return nil, nil
	}

	var issues []check.Issue
	lower := strings.ToLower(frag.Text)
	for _, indicator := range check.PassiveIndicators {
		if !strings.Contains(lower, indicator) {
			continue
		}
		_, asWritten, _ := check.FindFold(frag.Text, indicator)
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Passive voice detected: '%s'", indicator),
		).
			WithSuggestion("Rewrite in active voice (subject performs action). "+
				"Example: 'SCMA resets the component' instead of 'The component is reset by SCMA'").
			WithOriginalText(asWritten).
			Fixable().
			Build())
	}
	return issues, nil
}

// ContractionsRule flags contraction forms when the style guide's
// contraction policy disallows them.
type ContractionsRule struct {
	check.BaseRule
}

// NewContractionsRule creates a new contractions rule.
func NewContractionsRule() *ContractionsRule {
	return &ContractionsRule{
		BaseRule: check.NewBaseRule(
			check.RuleContractions,
			"contractions",
			"Avoid contractions in formal documentation",
			check.CategoryWriting,
			config.SeverityWarning,
			true,
		),
	}
}

// CheckFragment flags configured contraction forms in the fragment.
func (r *ContractionsRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	c := rc.Guide.Contractions()
	if !c.Disallowed() {
		return nil, nil
	}

	// The guide may raise or lower the severity for this check alone.
	var guideSeverity config.Severity
	if c.Severity != "" {
		if sev, err := config.ParseSeverity(c.Severity); err == nil {
			guideSeverity = sev
		}
	}

	var issues []check.Issue
	lower := strings.ToLower(frag.Text)
	for _, word := range c.Words {
		if !strings.Contains(lower, strings.ToLower(word)) {
			continue
		}
		_, asWritten, _ := check.FindFold(frag.Text, word)

		suggestion := "Use the full form instead"
		if full, ok := check.ExpandContraction(asWritten); ok {
			suggestion = fmt.Sprintf("Use full form instead: %s → %s", asWritten, full)
		}

		builder := r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Contraction found: '%s'", word),
		).
			WithSuggestion(suggestion).
			WithOriginalText(asWritten).
			Fixable()
		if guideSeverity != "" {
			builder = builder.WithSeverity(guideSeverity)
		}
		issues = append(issues, builder.Build())
	}
	return issues, nil
}

// DirectAddressRule flags third-person references to the reader.
type DirectAddressRule struct {
	check.BaseRule
}

// NewDirectAddressRule creates a new direct-address rule.
func NewDirectAddressRule() *DirectAddressRule {
	return &DirectAddressRule{
		BaseRule: check.NewBaseRule(
			check.RuleDirectAddress,
			"direct-address",
			"Address the reader directly instead of in the third person",
			check.CategoryWriting,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckFragment flags third-person referents in the fragment.
func (r *DirectAddressRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	if rc.Guide.VoiceAndMood() == nil {
		return nil, nil
	}

	var issues []check.Issue
	for _, term := range check.ThirdPersonTerms {
		if !check.ContainsFold(frag.Text, term) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Third-person reference: '%s'", term),
		).
			WithSuggestion("Use 'you' to address the reader directly (Tech-Pubs guideline)").
			Build())
	}
	return issues, nil
}

// ApprovedPhrasingRule flags terms the style guide asks writers to avoid.
type ApprovedPhrasingRule struct {
	check.BaseRule
}

// NewApprovedPhrasingRule creates a new approved-phrasing rule.
func NewApprovedPhrasingRule() *ApprovedPhrasingRule {
	return &ApprovedPhrasingRule{
		BaseRule: check.NewBaseRule(
			check.RuleApprovedPhrasing,
			"approved-phrasing",
			"Use approved phrasing instead of discouraged terms",
			check.CategoryWriting,
			config.SeverityInfo,
			true,
		),
	}
}

// CheckFragment flags configured avoid terms in the fragment.
func (r *ApprovedPhrasingRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	ap := rc.Guide.ApprovedPhrasing()
	if ap == nil || len(ap.AvoidTerms) == 0 {
		return nil, nil
	}

	var issues []check.Issue
	for _, term := range ap.AvoidTerms {
		if term.Term == "" || !check.ContainsFold(frag.Text, term.Term) {
			continue
		}
		_, asWritten, _ := check.FindFold(frag.Text, term.Term)

		suggestion := term.Suggestion
		if suggestion == "" {
			if term.Replacement != "" {
				suggestion = fmt.Sprintf("Use '%s' instead", term.Replacement)
			} else {
				suggestion = "Use approved phrasing instead"
			}
		}

		builder := r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Avoid phrase: '%s'", asWritten),
		).
			WithSuggestion(suggestion).
			WithOriginalText(asWritten)
		if term.Replacement != "" {
			builder = builder.Fixable()
		}
		issues = append(issues, builder.Build())
	}
	return issues, nil
}

// AnthropomorphismRule flags language that attributes human traits to
// systems.
type AnthropomorphismRule struct {
	check.BaseRule
}

// NewAnthropomorphismRule creates a new anthropomorphism rule.
func NewAnthropomorphismRule() *AnthropomorphismRule {
	return &AnthropomorphismRule{
		BaseRule: check.NewBaseRule(
			check.RuleAnthropomorphism,
			"anthropomorphism",
			"Describe system behavior without human characteristics",
			check.CategoryWriting,
			config.SeverityWarning,
			false,
		),
	}
}

// CheckFragment flags anthropomorphic phrases in the fragment.
func (r *AnthropomorphismRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	if rc.Guide.VoiceAndMood() == nil {
		return nil, nil
	}

	var issues []check.Issue
	for _, phrase := range check.AnthropomorphicPhrases {
		if !check.ContainsFold(frag.Text, phrase) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Anthropomorphic language: '%s'", phrase),
		).
			WithSuggestion("Describe the behavior directly instead of attributing intent to the system").
			Build())
	}
	return issues, nil
}
