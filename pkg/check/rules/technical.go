package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/extract"
)

var (
	kbPattern      = regexp.MustCompile(`(?i)\bKB-?[0-9]+\b`)
	kbCanonical    = regexp.MustCompile(`^KB-[0-9]+$`)
	versionPattern = regexp.MustCompile(`\b[0-9]+\.[0-9]+(?:\.[0-9]+)?\b`)
)

// KBReferencesRule flags knowledge-base references in non-canonical form.
type KBReferencesRule struct {
	check.BaseRule
}

// NewKBReferencesRule creates a new kb-references rule.
func NewKBReferencesRule() *KBReferencesRule {
	return &KBReferencesRule{
		BaseRule: check.NewBaseRule(
			check.RuleKBReferences,
			"kb-references",
			"Write knowledge-base references as KB-####",
			check.CategoryTechnical,
			config.SeverityWarning,
			false,
		),
	}
}

// CheckFragment flags KB references not matching the canonical format.
func (r *KBReferencesRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	if rc.Guide.KBReferences() == nil {
		return nil, nil
	}

	var issues []check.Issue
	for _, ref := range kbPattern.FindAllString(frag.Text, -1) {
		if kbCanonical.MatchString(ref) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("KB reference format issue: '%s'", ref),
		).
			WithSuggestion("Use format 'KB-####' (e.g., KB-5013)").
			Build())
	}
	return issues, nil
}

// KBLinksRule flags unlinked knowledge-base references.
type KBLinksRule struct {
	check.BaseRule
}

// NewKBLinksRule creates a new kb-links rule.
func NewKBLinksRule() *KBLinksRule {
	return &KBLinksRule{
		BaseRule: check.NewBaseRule(
			check.RuleKBLinks,
			"kb-links",
			"Link knowledge-base references to their articles",
			check.CategoryTechnical,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckFragment flags KB references whose raw source line carries no
// anchor markup, when the style guide requires links.
func (r *KBLinksRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	if !rc.Guide.KBReferences().LinksRequired() {
		return nil, nil
	}

	line := rc.FragmentLine(frag.Pos)
	if hasAnchorMarkup(rc.SourceLine(line)) {
		return nil, nil
	}

	var issues []check.Issue
	for _, ref := range kbPattern.FindAllString(frag.Text, -1) {
		issues = append(issues, r.NewRuleIssue(
			line,
			fmt.Sprintf("KB reference '%s' should be linked", ref),
		).
			WithSuggestion("Link the reference to its knowledge-base article").
			Build())
	}
	return issues, nil
}

// hasAnchorMarkup reports whether a raw source line contains link markup
// in any supported format.
func hasAnchorMarkup(raw string) bool {
	return strings.Contains(raw, "<a") ||
		strings.Contains(raw, "href") ||
		strings.Contains(raw, "](")
}

// VersionNumbersRule flags two-part version numbers when the style guide
// prefers the full three-part form.
type VersionNumbersRule struct {
	check.BaseRule
}

// NewVersionNumbersRule creates a new version-numbers rule.
func NewVersionNumbersRule() *VersionNumbersRule {
	return &VersionNumbersRule{
		BaseRule: check.NewBaseRule(
			check.RuleVersionNumbers,
			"version-numbers",
			"Prefer full X.Y.Z version numbers",
			check.CategoryTechnical,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckFragment flags version numbers with fewer components than the
// preferred count.
func (r *VersionNumbersRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	vn := rc.Guide.VersionNumbers()
	if vn == nil || vn.PreferredParts < 3 {
		return nil, nil
	}

	var issues []check.Issue
	for _, version := range versionPattern.FindAllString(frag.Text, -1) {
		if strings.Count(version, ".") != 1 {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Version number '%s' might benefit from full X.Y.Z format", version),
		).
			WithSuggestion("Include the patch component when it is known").
			Build())
	}
	return issues, nil
}

// PhoenixRule flags lowercase occurrences of configured proper nouns.
type PhoenixRule struct {
	check.BaseRule
}

// NewPhoenixRule creates a new phoenix-terminology rule.
func NewPhoenixRule() *PhoenixRule {
	return &PhoenixRule{
		BaseRule: check.NewBaseRule(
			check.RulePhoenixTerminology,
			"phoenix-terminology",
			"Capitalize Phoenix and other proper nouns",
			check.CategoryPhoenix,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckFragment flags fragments that use the lowercase form of a
// configured term without its capitalized form anywhere in the fragment.
func (r *PhoenixRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	pt := rc.Guide.PhoenixTerminology()
	if pt == nil {
		return nil, nil
	}

	var issues []check.Issue
	for _, term := range pt.ConsistentTerms {
		lower := strings.ToLower(term)
		if lower == term {
			continue
		}
		if !strings.Contains(frag.Text, lower) || strings.Contains(frag.Text, term) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Found lowercase '%s' - should be capitalized", lower),
		).
			WithSuggestion(fmt.Sprintf("Write it as '%s'", term)).
			Build())
	}
	return issues, nil
}
