package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/extract"
)

// InlineStylesRule flags discouraged inline style fragments.
type InlineStylesRule struct {
	check.BaseRule
}

// NewInlineStylesRule creates a new inline-styles rule.
func NewInlineStylesRule() *InlineStylesRule {
	return &InlineStylesRule{
		BaseRule: check.NewBaseRule(
			check.RuleInlineStyles,
			"inline-styles",
			"Avoid inline styles in content",
			check.CategoryFormatting,
			config.SeverityWarning,
			false,
		),
	}
}

// CheckFragment flags configured inline style substrings. Matching is
// case-sensitive: style properties are lowercase by convention and the
// configuration spells them the way they appear.
func (r *InlineStylesRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	styles := rc.Guide.InlineStyles()
	if len(styles) == 0 {
		return nil, nil
	}

	var issues []check.Issue
	for _, style := range styles {
		if style == "" || !strings.Contains(frag.Text, style) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			rc.FragmentLine(frag.Pos),
			fmt.Sprintf("Discouraged inline style found: %s", style),
		).
			WithSuggestion("Move presentation to the stylesheet or theme").
			Build())
	}
	return issues, nil
}

// CommandFormattingRule flags command names missing monospace markup.
type CommandFormattingRule struct {
	check.BaseRule
}

// NewCommandFormattingRule creates a new command-formatting rule.
func NewCommandFormattingRule() *CommandFormattingRule {
	return &CommandFormattingRule{
		BaseRule: check.NewBaseRule(
			check.RuleCommandFormatting,
			"command-formatting",
			"Format command and process names in monospace",
			check.CategoryFormatting,
			config.SeverityInfo,
			false,
		),
	}
}

// CheckFragment flags configured command literals whose raw source line
// shows no monospace markup. The raw line is consulted because markup
// never survives extraction.
func (r *CommandFormattingRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	tf := rc.Guide.TermFormatting()
	if tf == nil || len(tf.MonospaceCommands) == 0 {
		return nil, nil
	}

	line := rc.FragmentLine(frag.Pos)
	raw := rc.SourceLine(line)
	if hasMonospaceMarkup(raw) {
		return nil, nil
	}

	var issues []check.Issue
	lower := strings.ToLower(frag.Text)
	for _, cmd := range tf.MonospaceCommands {
		if cmd == "" || !check.ContainsWord(lower, strings.ToLower(cmd)) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(
			line,
			fmt.Sprintf("Command '%s' should use monospace formatting", cmd),
		).
			WithSuggestion(fmt.Sprintf("Wrap '%s' in monospace markup", cmd)).
			Build())
	}
	return issues, nil
}

// hasMonospaceMarkup reports whether a raw source line carries any of the
// monospace markers the supported formats use.
func hasMonospaceMarkup(raw string) bool {
	return strings.Contains(raw, "`") ||
		strings.Contains(raw, "<code") ||
		strings.Contains(raw, "<tt") ||
		strings.Contains(raw, "<pre")
}
