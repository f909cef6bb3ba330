package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/langdetect"
	"github.com/yaklabco/gostylecheck/pkg/styleguide"
)

const (
	// calloutKeyword is the marker counted by the callout-balance check.
	calloutKeyword = "warning:"

	// calloutThreshold is the count above which a document reads as
	// over-warned.
	calloutThreshold = 5

	// longCodeBlockLines is the body length above which a code block
	// needs the configured theme.
	longCodeBlockLines = 10

	// codeBlockTheme is the theme marker long blocks must carry.
	codeBlockTheme = "django"

	// jargonThreshold is the aggregate jargon count above which the
	// language-clarity check fires.
	jargonThreshold = 10
)

// TableOfContentsRule flags long documents without a table of contents.
type TableOfContentsRule struct {
	check.BaseRule
}

// NewTableOfContentsRule creates a new table-of-contents rule.
func NewTableOfContentsRule() *TableOfContentsRule {
	return &TableOfContentsRule{
		BaseRule: check.NewBaseRule(
			check.RuleTableOfContents,
			"table-of-contents",
			"Long documents need a table of contents",
			check.CategoryStructure,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckDocument flags the document when it exceeds the configured length
// threshold and never mentions a table of contents.
func (r *TableOfContentsRule) CheckDocument(rc *check.RuleContext) ([]check.Issue, error) {
	cs := rc.Guide.ChapterStructure()
	if cs == nil {
		return nil, nil
	}

	threshold := cs.TocThreshold
	if threshold <= 0 {
		threshold = styleguide.DefaultTocThreshold
	}
	if len(rc.Doc.Fragments) < threshold {
		return nil, nil
	}

	lower := rc.Cache.JoinedLower()
	if strings.Contains(lower, "table of contents") || check.ContainsWord(lower, "toc") {
		return nil, nil
	}

	issue := r.NewRuleIssue(1, "Long document without Table of Contents").
		WithSuggestion("Add a table of contents for easier navigation").
		Build()
	return []check.Issue{issue}, nil
}

// HeadingHierarchyRule flags heading levels that skip.
type HeadingHierarchyRule struct {
	check.BaseRule
}

// NewHeadingHierarchyRule creates a new heading-hierarchy rule.
func NewHeadingHierarchyRule() *HeadingHierarchyRule {
	return &HeadingHierarchyRule{
		BaseRule: check.NewBaseRule(
			check.RuleHeadingHierarchy,
			"heading-hierarchy",
			"Use sequential heading levels",
			check.CategoryStructure,
			config.SeverityWarning,
			false,
		),
	}
}

// CheckDocument flags each heading more than one level below its
// predecessor, at the heading's own line.
func (r *HeadingHierarchyRule) CheckDocument(rc *check.RuleContext) ([]check.Issue, error) {
	var issues []check.Issue
	prev := 0
	for _, h := range rc.Doc.Headings {
		if prev > 0 && h.Level > prev+1 {
			issues = append(issues, r.NewRuleIssue(
				h.Line,
				fmt.Sprintf("Heading level jumps from %d to %d", prev, h.Level),
			).
				WithSuggestion("Use sequential heading levels without skipping").
				Build())
		}
		prev = h.Level
	}
	return issues, nil
}

// CalloutBalanceRule flags documents that lean too hard on warnings.
type CalloutBalanceRule struct {
	check.BaseRule
}

// NewCalloutBalanceRule creates a new callout-balance rule.
func NewCalloutBalanceRule() *CalloutBalanceRule {
	return &CalloutBalanceRule{
		BaseRule: check.NewBaseRule(
			check.RuleCalloutBalance,
			"callout-balance",
			"Keep warning callouts in proportion",
			check.CategoryOrganization,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckDocument flags the document when warning callouts exceed the
// threshold.
func (r *CalloutBalanceRule) CheckDocument(rc *check.RuleContext) ([]check.Issue, error) {
	threshold := rc.OptionInt("threshold", calloutThreshold)
	count := strings.Count(rc.Cache.JoinedLower(), calloutKeyword)
	if count <= threshold {
		return nil, nil
	}

	issue := r.NewRuleIssue(1,
		fmt.Sprintf("High number of warnings (%d) - consider if all are necessary", count),
	).
		WithSuggestion("Convert some warnings to notes or tips").
		Build()
	return []check.Issue{issue}, nil
}

// CodeBlockThemeRule flags long code blocks without the required theme.
type CodeBlockThemeRule struct {
	check.BaseRule
}

// NewCodeBlockThemeRule creates a new code-block-theme rule.
func NewCodeBlockThemeRule() *CodeBlockThemeRule {
	return &CodeBlockThemeRule{
		BaseRule: check.NewBaseRule(
			check.RuleCodeBlockTheme,
			"code-block-theme",
			"Use the Django theme for long code blocks",
			check.CategoryTraining,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckDocument flags each fenced code block longer than the limit whose
// fence line does not name the theme. The scan runs over the raw lines
// because fenced content never survives extraction.
func (r *CodeBlockThemeRule) CheckDocument(rc *check.RuleContext) ([]check.Issue, error) {
	var issues []check.Issue

	inBlock := false
	fenceInfo := ""
	var body []string
	for _, raw := range rc.Doc.SourceLines {
		trimmed := strings.TrimSpace(raw)
		if !strings.HasPrefix(trimmed, "```") {
			if inBlock {
				body = append(body, raw)
			}
			continue
		}

		if !inBlock {
			inBlock = true
			fenceInfo = strings.ToLower(strings.TrimPrefix(trimmed, "```"))
			body = body[:0]
			continue
		}

		inBlock = false
		if len(body) <= longCodeBlockLines || strings.Contains(fenceInfo, codeBlockTheme) {
			continue
		}

		suggestion := "Apply the django theme to long code blocks"
		if lang := langdetect.Detect([]byte(strings.Join(body, "\n"))); lang != "" && lang != "text" {
			suggestion = fmt.Sprintf("Apply the django theme to this %s block", lang)
		}
		issues = append(issues, r.NewRuleIssue(1, "Long code block should use Django theme").
			WithSuggestion(suggestion).
			Build())
	}

	return issues, nil
}

// LanguageClarityRule flags documents heavy on jargon.
type LanguageClarityRule struct {
	check.BaseRule
}

// NewLanguageClarityRule creates a new language-clarity rule.
func NewLanguageClarityRule() *LanguageClarityRule {
	return &LanguageClarityRule{
		BaseRule: check.NewBaseRule(
			check.RuleLanguageClarity,
			"language-clarity",
			"Prefer plain language over jargon",
			check.CategoryWriting,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckDocument flags the document when the aggregate jargon count
// exceeds the threshold.
func (r *LanguageClarityRule) CheckDocument(rc *check.RuleContext) ([]check.Issue, error) {
	threshold := rc.OptionInt("threshold", jargonThreshold)
	lower := rc.Cache.JoinedLower()

	total := 0
	for _, word := range check.JargonWords {
		total += check.CountWord(lower, word)
	}
	if total <= threshold {
		return nil, nil
	}

	issue := r.NewRuleIssue(1,
		fmt.Sprintf("High use of complex terms (%d instances) - consider simpler alternatives", total),
	).
		WithSuggestion("Prefer plain alternatives such as 'use' over 'utilize'").
		Build()
	return []check.Issue{issue}, nil
}

// PhoenixConsistencyRule flags mixed capitalization of configured proper
// nouns across the whole document.
type PhoenixConsistencyRule struct {
	check.BaseRule
}

// NewPhoenixConsistencyRule creates a new phoenix-consistency rule.
func NewPhoenixConsistencyRule() *PhoenixConsistencyRule {
	return &PhoenixConsistencyRule{
		BaseRule: check.NewBaseRule(
			check.RulePhoenixConsistency,
			"phoenix-consistency",
			"Capitalize proper nouns consistently across the document",
			check.CategoryPhoenix,
			config.SeverityWarning,
			false,
		),
	}
}

// CheckDocument flags each configured term whose lowercase and
// capitalized forms both occur.
func (r *PhoenixConsistencyRule) CheckDocument(rc *check.RuleContext) ([]check.Issue, error) {
	pt := rc.Guide.PhoenixTerminology()
	if pt == nil {
		return nil, nil
	}

	joined := rc.Cache.Joined()
	var issues []check.Issue
	for _, term := range pt.ConsistentTerms {
		lower := strings.ToLower(term)
		if lower == term {
			continue
		}
		lowerCount := strings.Count(joined, lower)
		capCount := strings.Count(joined, term)
		if lowerCount == 0 || capCount == 0 {
			continue
		}
		issues = append(issues, r.NewRuleIssue(1,
			fmt.Sprintf("Mixed capitalization: '%s' (%d) and '%s' (%d)", lower, lowerCount, term, capCount),
		).
			WithSuggestion(fmt.Sprintf("Write it as '%s' throughout", term)).
			Build())
	}
	return issues, nil
}

// DocumentStructureRule flags missing recommended chapter sections.
type DocumentStructureRule struct {
	check.BaseRule
}

// NewDocumentStructureRule creates a new document-structure rule.
func NewDocumentStructureRule() *DocumentStructureRule {
	return &DocumentStructureRule{
		BaseRule: check.NewBaseRule(
			check.RuleDocumentStructure,
			"document-structure",
			"Include the recommended chapter sections",
			check.CategoryStructure,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckDocument flags each recommended section the document never
// mentions.
func (r *DocumentStructureRule) CheckDocument(rc *check.RuleContext) ([]check.Issue, error) {
	cs := rc.Guide.ChapterStructure()
	if cs == nil || len(cs.RequiredSections) == 0 {
		return nil, nil
	}

	lower := rc.Cache.JoinedLower()
	var issues []check.Issue
	for _, section := range cs.RequiredSections {
		if section == "" || strings.Contains(lower, strings.ToLower(section)) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(1,
			fmt.Sprintf("Consider adding a '%s' section", section),
		).
			Build())
	}
	return issues, nil
}

// TrainingStructureRule flags missing recommended training-module
// sections.
type TrainingStructureRule struct {
	check.BaseRule
}

// NewTrainingStructureRule creates a new training-structure rule.
func NewTrainingStructureRule() *TrainingStructureRule {
	return &TrainingStructureRule{
		BaseRule: check.NewBaseRule(
			check.RuleTrainingStructure,
			"training-structure",
			"Include the recommended training-module sections",
			check.CategoryTraining,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckDocument flags each recommended module section the document never
// mentions.
func (r *TrainingStructureRule) CheckDocument(rc *check.RuleContext) ([]check.Issue, error) {
	ms := rc.Guide.ModuleStructure()
	if ms == nil || len(ms.RequiredSections) == 0 {
		return nil, nil
	}

	lower := rc.Cache.JoinedLower()
	var issues []check.Issue
	for _, section := range ms.RequiredSections {
		if section == "" || strings.Contains(lower, strings.ToLower(section)) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(1,
			fmt.Sprintf("Training module missing recommended section: '%s'", section),
		).
			Build())
	}
	return issues, nil
}
