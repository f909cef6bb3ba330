package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/extract"
)

// DeprecatedTermsRule flags retired terms and names their replacements.
type DeprecatedTermsRule struct {
	check.BaseRule
}

// NewDeprecatedTermsRule creates a new deprecated-terms rule.
func NewDeprecatedTermsRule() *DeprecatedTermsRule {
	return &DeprecatedTermsRule{
		BaseRule: check.NewBaseRule(
			check.RuleDeprecatedTerms,
			"deprecated-terms",
			"Replace deprecated terms with their current names",
			check.CategoryTechnical,
			config.SeverityWarning,
			true,
		),
	}
}

// CheckFragment flags configured deprecated terms. Keys are evaluated in
// sorted order so issue order never depends on map iteration.
func (r *DeprecatedTermsRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	terms := rc.Guide.DeprecatedTerms()
	if len(terms) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(terms))
	for key := range terms {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var issues []check.Issue
	for _, old := range keys {
		if old == "" || !check.ContainsFold(frag.Text, old) {
			continue
		}
		_, asWritten, _ := check.FindFold(frag.Text, old)

		suggestion := "Remove this term"
		if replacement := terms[old]; replacement != "" {
			suggestion = fmt.Sprintf("Use '%s' instead", replacement)
		}

		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Deprecated term '%s' found", asWritten),
		).
			WithSuggestion(suggestion).
			WithOriginalText(asWritten).
			Fixable().
			Build())
	}
	return issues, nil
}

// AcronymDefinitionsRule flags acronyms that are never introduced with
// their full name.
type AcronymDefinitionsRule struct {
	check.BaseRule
}

// NewAcronymDefinitionsRule creates a new acronym-definitions rule.
func NewAcronymDefinitionsRule() *AcronymDefinitionsRule {
	return &AcronymDefinitionsRule{
		BaseRule: check.NewBaseRule(
			check.RuleAcronymDefinitions,
			"acronym-definitions",
			"Define acronyms on first use",
			check.CategoryTechnical,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckFragment flags a known acronym when this fragment is its first
// use and the full name has not appeared by then.
func (r *AcronymDefinitionsRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	ab := rc.Guide.AbbreviationRules()
	if ab == nil || len(ab.Definitions) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ab.Definitions))
	for key := range ab.Definitions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var issues []check.Issue
	for _, acronym := range keys {
		if !strings.Contains(frag.Text, acronym) {
			continue
		}
		if rc.Cache.FirstFragmentWith(acronym) != frag.Pos {
			continue
		}
		full := ab.Definitions[acronym]
		if full != "" {
			if fullPos := rc.Cache.FirstFragmentWith(full); fullPos != 0 && fullPos <= frag.Pos {
				continue
			}
		}
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Acronym '%s' used without definition", acronym),
		).
			WithSuggestion(fmt.Sprintf("Define it on first use: '%s (%s)'", full, acronym)).
			Build())
	}
	return issues, nil
}

// ProductNamesRule flags product names written with non-canonical
// capitalization.
type ProductNamesRule struct {
	check.BaseRule
}

// NewProductNamesRule creates a new product-names rule.
func NewProductNamesRule() *ProductNamesRule {
	return &ProductNamesRule{
		BaseRule: check.NewBaseRule(
			check.RuleProductNames,
			"product-names",
			"Write product names with their canonical capitalization",
			check.CategoryTechnical,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckFragment flags canonical product names present only in a
// non-canonical casing.
func (r *ProductNamesRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	pn := rc.Guide.ProductNames()
	if pn == nil || len(pn.Canonical) == 0 {
		return nil, nil
	}

	var issues []check.Issue
	for _, name := range pn.Canonical {
		if name == "" || strings.Contains(frag.Text, name) {
			continue
		}
		_, asWritten, ok := check.FindFold(frag.Text, name)
		if !ok {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Product name '%s' should be written as '%s'", asWritten, name),
		).
			WithSuggestion(fmt.Sprintf("Use '%s'", name)).
			Build())
	}
	return issues, nil
}
