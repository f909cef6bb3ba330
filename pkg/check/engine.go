package check

import (
	"context"
	"fmt"

	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/extract"
	"github.com/yaklabco/gostylecheck/pkg/styleguide"
)

// Result contains the results of checking a single document.
type Result struct {
	// Doc is the extracted document.
	Doc *extract.Document

	// Issues contains all issues found, in evaluation order: fragment
	// rules per fragment first, then document rules.
	Issues []Issue

	// RuleErrors contains any errors from rule execution.
	RuleErrors map[string]error
}

// HasIssues returns true if any issues were found.
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// IssueCount returns the total number of issues.
func (r *Result) IssueCount() int {
	return len(r.Issues)
}

// FixableCount returns the number of auto-fixable issues.
func (r *Result) FixableCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.AutoFixable {
			count++
		}
	}
	return count
}

// CountAtOrAbove returns the number of issues at or above the given severity.
func (r *Result) CountAtOrAbove(sev config.Severity) int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity.Rank() >= sev.Rank() {
			count++
		}
	}
	return count
}

// Engine coordinates extraction and rule execution.
//
// Check is a pure function of its inputs: it never touches the
// filesystem, and identical (document, configuration, guide) inputs
// yield identical issue slices.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// CheckFile extracts and checks a single file's content.
func (e *Engine) CheckFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
	guide *styleguide.Guide,
) (*Result, error) {
	doc := extract.ExtractFile(path, content)
	return e.Check(ctx, doc, cfg, guide)
}

// Check runs all enabled rules against an extracted document.
//
// Issue order is deterministic: the outer loop walks fragments in
// document order, the inner loop walks fragment rules in registration
// order; document rules run afterwards, also in registration order.
func (e *Engine) Check(
	ctx context.Context,
	doc *extract.Document,
	cfg *config.Config,
	guide *styleguide.Guide,
) (*Result, error) {
	resolved := ResolveRules(e.Registry, cfg)

	result := &Result{
		Doc:        doc,
		RuleErrors: make(map[string]error),
	}

	// Split into per-fragment and per-document passes, pre-building one
	// context per rule. Contexts share a single DocCache so document
	// views are computed once per file.
	cache := NewDocCache(doc)

	type fragmentPass struct {
		rr   ResolvedRule
		rule FragmentRule
		rc   *RuleContext
	}
	type documentPass struct {
		rr   ResolvedRule
		rule DocumentRule
		rc   *RuleContext
	}

	var fragRules []fragmentPass
	var docRules []documentPass

	for _, rr := range resolved {
		rc := NewRuleContext(ctx, doc, guide, cfg, rr.Config)
		rc.Registry = e.Registry
		rc.Cache = cache

		switch rule := rr.Rule.(type) {
		case FragmentRule:
			fragRules = append(fragRules, fragmentPass{rr: rr, rule: rule, rc: rc})
		case DocumentRule:
			docRules = append(docRules, documentPass{rr: rr, rule: rule, rc: rc})
		}
	}

	for _, frag := range doc.Fragments {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("checking cancelled: %w", ctx.Err())
		default:
		}

		for _, fp := range fragRules {
			issues, err := fp.rule.CheckFragment(fp.rc, frag)
			if err != nil {
				result.RuleErrors[fp.rr.Rule.ID()] = err
				continue
			}
			result.Issues = append(result.Issues, finalize(issues, fp.rr, doc.Path)...)
		}
	}

	for _, dp := range docRules {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("checking cancelled: %w", ctx.Err())
		default:
		}

		issues, err := dp.rule.CheckDocument(dp.rc)
		if err != nil {
			result.RuleErrors[dp.rr.Rule.ID()] = err
			continue
		}
		result.Issues = append(result.Issues, finalize(issues, dp.rr, doc.Path)...)
	}

	return result, nil
}

// finalize applies resolved severity and fills identity fields the rule
// left blank.
//
// Severity precedence: an explicit per-rule override in the tool
// configuration beats everything; otherwise a severity the rule set on
// the issue (style-guide driven, as with contractions) survives; the
// resolved default covers the rest.
func finalize(issues []Issue, rr ResolvedRule, path string) []Issue {
	forced := rr.Config != nil && rr.Config.Severity != nil
	for i := range issues {
		if forced || issues[i].Severity == "" {
			issues[i].Severity = rr.Severity
		}

		if issues[i].FilePath == "" {
			issues[i].FilePath = path
		}
		if issues[i].RuleName == "" {
			issues[i].RuleName = rr.Rule.Name()
		}
		if issues[i].Category == "" {
			issues[i].Category = rr.Rule.Category()
		}
		if issues[i].Line < 1 {
			issues[i].Line = 1
		}
	}
	return issues
}
