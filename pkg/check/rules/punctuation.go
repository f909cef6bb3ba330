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
	// Three-item series missing the comma before the conjunction.
	// "AOS, AHV, and NCC" does not match: the comma breaks the
	// word-space-conjunction sequence.
	oxfordPattern = regexp.MustCompile(`\b\w+, \w+ (?:and|or) \w+\b`)

	// Single-quoted text starting with a capital, the shape UI labels
	// take ('Save', 'Create Cluster').
	singleQuotePattern = regexp.MustCompile(`'([A-Z][^']*)'`)
)

// OxfordCommaRule flags series missing the Oxford comma.
type OxfordCommaRule struct {
	check.BaseRule
}

// NewOxfordCommaRule creates a new oxford-comma rule.
func NewOxfordCommaRule() *OxfordCommaRule {
	return &OxfordCommaRule{
		BaseRule: check.NewBaseRule(
			check.RuleOxfordComma,
			"oxford-comma",
			"Use the Oxford comma in series",
			check.CategoryWriting,
			config.SeverityWarning,
			true,
		),
	}
}

// CheckFragment flags series without a comma before the conjunction.
func (r *OxfordCommaRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	p := rc.Guide.Punctuation()
	if p == nil || p.OxfordComma != "required" {
		return nil, nil
	}

	var issues []check.Issue
	for _, series := range oxfordPattern.FindAllString(frag.Text, -1) {
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Missing Oxford comma in '%s'", series),
		).
			WithSuggestion("Add a comma before the conjunction").
			WithOriginalText(series).
			Fixable().
			Build())
	}
	return issues, nil
}

// CompoundAdjectivesRule flags compound adjectives missing their hyphen.
type CompoundAdjectivesRule struct {
	check.BaseRule
}

// NewCompoundAdjectivesRule creates a new compound-adjectives rule.
func NewCompoundAdjectivesRule() *CompoundAdjectivesRule {
	return &CompoundAdjectivesRule{
		BaseRule: check.NewBaseRule(
			check.RuleCompoundAdjectives,
			"compound-adjectives",
			"Hyphenate compound adjectives before nouns",
			check.CategoryWriting,
			config.SeverityWarning,
			true,
		),
	}
}

// CheckFragment flags known compounds used attributively, that is,
// followed by another word ("single node cluster" but not "a single
// node").
func (r *CompoundAdjectivesRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	p := rc.Guide.Punctuation()
	if p == nil || !p.HyphenateCompounds {
		return nil, nil
	}

	var issues []check.Issue
	for _, compound := range check.CompoundAdjectives {
		idx := attributiveIndex(frag.Text, compound)
		if idx < 0 {
			continue
		}
		asWritten := frag.Text[idx : idx+len(compound)]
		hyphenated := strings.ReplaceAll(asWritten, " ", "-")
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Compound adjective '%s' should be hyphenated", asWritten),
		).
			WithSuggestion(fmt.Sprintf("Use '%s'", hyphenated)).
			WithOriginalText(asWritten).
			Fixable().
			Build())
	}
	return issues, nil
}

// attributiveIndex returns the offset of the first case-insensitive
// occurrence of compound that starts at a word boundary and is followed
// by a further word, or -1.
func attributiveIndex(text, compound string) int {
	n := len(compound)
	for i := 0; i+n <= len(text); i++ {
		if !strings.EqualFold(text[i:i+n], compound) {
			continue
		}
		end := i + n
		startOK := i == 0 || !isLetter(text[i-1])
		followed := end+1 < len(text) && text[end] == ' ' && isLetter(text[end+1])
		if startOK && followed {
			return i
		}
	}
	return -1
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// QuoteStyleRule flags single-quoted UI text when double quotes are the
// configured style.
type QuoteStyleRule struct {
	check.BaseRule
}

// NewQuoteStyleRule creates a new quote-style rule.
func NewQuoteStyleRule() *QuoteStyleRule {
	return &QuoteStyleRule{
		BaseRule: check.NewBaseRule(
			check.RuleQuoteStyle,
			"quote-style",
			"Quote UI text with double quotes",
			check.CategoryWriting,
			config.SeverityInfo,
			true,
		),
	}
}

// CheckFragment flags single-quoted capitalized text.
func (r *QuoteStyleRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	p := rc.Guide.Punctuation()
	if p == nil || p.QuoteStyle != "double" {
		return nil, nil
	}

	var issues []check.Issue
	for _, quoted := range singleQuotePattern.FindAllString(frag.Text, -1) {
		inner := strings.Trim(quoted, "'")
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Single-quoted text %s should use double quotes", quoted),
		).
			WithSuggestion(fmt.Sprintf(`Write it as "%s"`, inner)).
			WithOriginalText(quoted).
			Fixable().
			Build())
	}
	return issues, nil
}
