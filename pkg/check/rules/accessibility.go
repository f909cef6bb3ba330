package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/extract"
)

var imgTagPattern = regexp.MustCompile(`(?is)<img\b[^>]*>`)

// DescriptiveLinksRule flags link text that says nothing about the
// destination.
type DescriptiveLinksRule struct {
	check.BaseRule
}

// NewDescriptiveLinksRule creates a new descriptive-links rule.
func NewDescriptiveLinksRule() *DescriptiveLinksRule {
	return &DescriptiveLinksRule{
		BaseRule: check.NewBaseRule(
			check.RuleDescriptiveLinks,
			"descriptive-links",
			"Write link text that describes the destination",
			check.CategoryQuality,
			config.SeverityWarning,
			false,
		),
	}
}

// CheckFragment flags non-descriptive link text on fragments whose raw
// source line carries anchor markup.
func (r *DescriptiveLinksRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	a := rc.Guide.Accessibility()
	if a == nil {
		return nil, nil
	}

	line := rc.FragmentLine(frag.Pos)
	if !hasAnchorMarkup(rc.SourceLine(line)) {
		return nil, nil
	}

	var issues []check.Issue
	lower := strings.ToLower(frag.Text)
	for _, pattern := range a.LinkTextPatterns {
		if pattern == "" || !check.ContainsWord(lower, strings.ToLower(pattern)) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			line,
			fmt.Sprintf("Non-descriptive link text: '%s'", pattern),
		).
			WithSuggestion("Use link text that describes the destination").
			Build())
	}
	return issues, nil
}

// AbilityNeutralRule flags phrasing that assumes the reader's abilities.
type AbilityNeutralRule struct {
	check.BaseRule
}

// NewAbilityNeutralRule creates a new ability-neutral rule.
func NewAbilityNeutralRule() *AbilityNeutralRule {
	return &AbilityNeutralRule{
		BaseRule: check.NewBaseRule(
			check.RuleAbilityNeutral,
			"ability-neutral",
			"Use ability-neutral phrasing",
			check.CategoryQuality,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckFragment flags ability-assuming phrases in the fragment.
func (r *AbilityNeutralRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	if rc.Guide.Accessibility() == nil {
		return nil, nil
	}

	var issues []check.Issue
	lower := strings.ToLower(frag.Text)
	for _, phrase := range check.AbilityPhrases {
		if !check.ContainsWord(lower, phrase) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Consider ability-neutral alternative to '%s'", phrase),
		).
			Build())
	}
	return issues, nil
}

// ImageAltTextRule flags image markup without alternative text.
type ImageAltTextRule struct {
	check.BaseRule
}

// NewImageAltTextRule creates a new image-alt-text rule.
func NewImageAltTextRule() *ImageAltTextRule {
	return &ImageAltTextRule{
		BaseRule: check.NewBaseRule(
			check.RuleImageAltText,
			"image-alt-text",
			"Give every image alternative text",
			check.CategoryQuality,
			config.SeverityWarning,
			false,
		),
	}
}

// CheckDocument flags img tags without an alt attribute. The scan runs
// over the raw document text because markup never survives extraction;
// issues point at the tag's source line.
func (r *ImageAltTextRule) CheckDocument(rc *check.RuleContext) ([]check.Issue, error) {
	if rc.Guide.Accessibility() == nil {
		return nil, nil
	}

	var issues []check.Issue
	for _, loc := range imgTagPattern.FindAllStringIndex(rc.Doc.Raw, -1) {
		tag := rc.Doc.Raw[loc[0]:loc[1]]
		if strings.Contains(strings.ToLower(tag), "alt=") {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			rc.Doc.LineAtOffset(loc[0]),
			"Image missing alt text for accessibility",
		).
			WithSuggestion("Add descriptive alt text to the image").
			Build())
	}
	return issues, nil
}
