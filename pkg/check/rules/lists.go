package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/extract"
)

// minBulletsForConvention is the bullet count below which no convention
// can be read from the document.
const minBulletsForConvention = 3

// ListParallelismRule flags list items that break the document's bullet
// convention.
type ListParallelismRule struct {
	check.BaseRule
}

// NewListParallelismRule creates a new list-parallelism rule.
func NewListParallelismRule() *ListParallelismRule {
	return &ListParallelismRule{
		BaseRule: check.NewBaseRule(
			check.RuleListParallelism,
			"list-parallelism",
			"Keep list items grammatically parallel",
			check.CategoryWriting,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckFragment flags a bullet starting with a gerund when the document's
// bullets read as imperative. This is a heuristic: a gerund is any first
// word of five or more letters ending in "ing".
func (r *ListParallelismRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	if rc.Guide.Lists() == nil {
		return nil, nil
	}

	bullets := rc.Cache.Bullets()
	if len(bullets) < minBulletsForConvention {
		return nil, nil
	}

	var text string
	found := false
	gerunds := 0
	for _, b := range bullets {
		if startsWithGerund(b.Text) {
			gerunds++
		}
		if b.Frag.Pos == frag.Pos {
			text = b.Text
			found = true
		}
	}
	if !found {
		return nil, nil
	}

	// Imperative convention: gerund openers are a strict minority.
	if gerunds*2 >= len(bullets) {
		return nil, nil
	}
	first := check.FirstWord(text)
	if !startsWithGerund(text) {
		return nil, nil
	}

	issue := r.NewRuleIssue(
		rc.FragmentLine(frag.Pos),
		fmt.Sprintf("List item starts with '%s' while other items use imperative verbs", first),
	).
		WithSuggestion("Start with an imperative verb for parallel structure").
		Build()
	return []check.Issue{issue}, nil
}

// startsWithGerund reports whether the item's first word looks like a
// gerund.
func startsWithGerund(text string) bool {
	first := strings.ToLower(check.TrimWordPunct(check.FirstWord(text)))
	return len(first) >= 5 && strings.HasSuffix(first, "ing")
}
