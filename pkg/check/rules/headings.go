package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
)

// sentenceCaseStyle is the capitalization setting that enables the check.
const sentenceCaseStyle = "sentence_case"

// HeadingCapitalizationRule flags headings written in title case when the
// style guide calls for sentence case.
type HeadingCapitalizationRule struct {
	check.BaseRule
}

// NewHeadingCapitalizationRule creates a new heading-capitalization rule.
func NewHeadingCapitalizationRule() *HeadingCapitalizationRule {
	return &HeadingCapitalizationRule{
		BaseRule: check.NewBaseRule(
			check.RuleHeadingCapitalization,
			"heading-capitalization",
			"Write headings in sentence case",
			check.CategoryWriting,
			config.SeverityWarning,
			true,
		),
	}
}

// CheckDocument flags each heading where more than the first word is
// capitalized, excluding acronym-shaped words and the proper nouns the
// style guide knows about.
func (r *HeadingCapitalizationRule) CheckDocument(rc *check.RuleContext) ([]check.Issue, error) {
	style := rc.Guide.Capitalization()
	if style == nil || style.Headings != sentenceCaseStyle {
		return nil, nil
	}

	keepWords := rc.Guide.ProperNouns()
	keep := make(map[string]struct{}, len(keepWords))
	for _, w := range keepWords {
		keep[w] = struct{}{}
	}

	var issues []check.Issue
	for _, h := range rc.Doc.Headings {
		words := strings.Fields(h.Text)
		if len(words) < 2 {
			continue
		}

		flagged := false
		for _, word := range words[1:] {
			core := check.TrimWordPunct(word)
			if !check.IsCapitalized(core) || check.IsAcronym(core) {
				continue
			}
			if _, ok := keep[core]; ok {
				continue
			}
			flagged = true
			break
		}
		if !flagged {
			continue
		}

		issues = append(issues, r.NewRuleIssue(
			h.Line,
			fmt.Sprintf("Heading should use sentence case: '%s'", h.Text),
		).
			WithSuggestion(fmt.Sprintf("Use '%s'", check.SentenceCase(h.Text, keepWords))).
			WithOriginalText(h.Text).
			Fixable().
			Build())
	}
	return issues, nil
}
