package fix

import (
	"strings"
	"unicode"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/styleguide"
)

// Fixer derives edits from auto-fixable issues. Every strategy
// re-locates the issue's offending text on its source line before
// proposing anything; an issue whose text is no longer where the
// checker saw it yields no edit.
type Fixer struct {
	guide   *styleguide.Guide
	keep    []string
	keepSet map[string]struct{}
}

// NewFixer creates a Fixer for the given style guide.
func NewFixer(guide *styleguide.Guide) *Fixer {
	keep := guide.ProperNouns()
	set := make(map[string]struct{}, len(keep))
	for _, w := range keep {
		set[w] = struct{}{}
	}
	return &Fixer{guide: guide, keep: keep, keepSet: set}
}

// strategy derives the literal replacement for one rule's issues.
// derive returns ok=false when the line no longer carries the text the
// issue refers to, or when no safe replacement exists.
type strategy struct {
	confidence  config.FixConfidence
	description string
	derive      func(f *Fixer, issue check.Issue, line string) (original, replacement string, ok bool)
}

// strategies maps rule IDs to their edit strategies. Rules without an
// entry are reported but never auto-fixed, whatever their AutoFixable
// flag says.
var strategies = map[string]strategy{
	check.RuleContractions: {
		confidence:  config.ConfidenceHigh,
		description: "expand contraction",
		derive:      expandContraction,
	},
	check.RuleDeprecatedTerms: {
		confidence:  config.ConfidenceHigh,
		description: "replace deprecated term",
		derive:      replaceDeprecatedTerm,
	},
	check.RuleOxfordComma: {
		confidence:  config.ConfidenceHigh,
		description: "insert Oxford comma",
		derive:      insertOxfordComma,
	},
	check.RuleCompoundAdjectives: {
		confidence:  config.ConfidenceHigh,
		description: "hyphenate compound adjective",
		derive:      hyphenateCompound,
	},
	check.RuleApprovedPhrasing: {
		confidence:  config.ConfidenceMedium,
		description: "use approved phrasing",
		derive:      substituteApprovedPhrase,
	},
	check.RuleQuoteStyle: {
		confidence:  config.ConfidenceMedium,
		description: "convert quotes to double",
		derive:      convertQuotes,
	},
	check.RuleHeadingCapitalization: {
		confidence:  config.ConfidenceMedium,
		description: "sentence-case heading",
		derive:      sentenceCaseHeading,
	},
	check.RuleActiveVoice: {
		confidence:  config.ConfidenceLow,
		description: "rewrite passive clause",
		derive:      rewritePassiveClause,
	},
}

// Propose derives at most one edit per auto-fixable issue. Issues whose
// rule has no strategy, whose line is out of range, or whose offending
// text cannot be located on that line are skipped.
func (f *Fixer) Propose(originalText string, issues []check.Issue) []Edit {
	if len(issues) == 0 {
		return nil
	}

	lines := strings.Split(originalText, "\n")
	var edits []Edit
	for _, issue := range issues {
		if !issue.AutoFixable {
			continue
		}
		strat, ok := strategies[issue.RuleID]
		if !ok {
			continue
		}
		if issue.Line < 1 || issue.Line > len(lines) {
			continue
		}

		original, replacement, ok := strat.derive(f, issue, lines[issue.Line-1])
		if !ok || original == replacement {
			continue
		}

		edits = append(edits, Edit{
			Issue:       issue,
			Line:        issue.Line,
			Original:    original,
			Replacement: replacement,
			Description: strat.description,
			Confidence:  strat.confidence,
		})
	}
	return edits
}

// locate confirms the issue's offending text still appears on the line.
func locate(issue check.Issue, line string) (string, bool) {
	if issue.OriginalText == "" || !strings.Contains(line, issue.OriginalText) {
		return "", false
	}
	return issue.OriginalText, true
}

func expandContraction(f *Fixer, issue check.Issue, line string) (string, string, bool) {
	original, ok := locate(issue, line)
	if !ok {
		return "", "", false
	}
	full, ok := check.ExpandContraction(original)
	if !ok {
		return "", "", false
	}
	return original, full, true
}

func replaceDeprecatedTerm(f *Fixer, issue check.Issue, line string) (string, string, bool) {
	original, ok := locate(issue, line)
	if !ok {
		return "", "", false
	}

	terms := f.guide.DeprecatedTerms()
	replacement, found := "", false
	for term, repl := range terms {
		if strings.EqualFold(term, original) {
			replacement, found = repl, true
			break
		}
	}
	if !found {
		return "", "", false
	}

	// Removing a term outright also consumes the following space so the
	// surrounding words do not end up doubly separated.
	if replacement == "" && strings.Contains(line, original+" ") {
		original += " "
	}
	return original, replacement, true
}

func substituteApprovedPhrase(f *Fixer, issue check.Issue, line string) (string, string, bool) {
	original, ok := locate(issue, line)
	if !ok {
		return "", "", false
	}

	ap := f.guide.ApprovedPhrasing()
	if ap == nil {
		return "", "", false
	}
	for _, term := range ap.AvoidTerms {
		if term.Replacement == "" || !strings.EqualFold(term.Term, original) {
			continue
		}
		return original, matchLeadingCase(term.Replacement, original), true
	}
	return "", "", false
}

func insertOxfordComma(f *Fixer, issue check.Issue, line string) (string, string, bool) {
	series, ok := locate(issue, line)
	if !ok {
		return "", "", false
	}

	// The comma goes before the final conjunction of the series.
	idx := strings.LastIndex(series, " and ")
	if j := strings.LastIndex(series, " or "); j > idx {
		idx = j
	}
	if idx < 0 {
		return "", "", false
	}
	return series, series[:idx] + "," + series[idx:], true
}

func hyphenateCompound(f *Fixer, issue check.Issue, line string) (string, string, bool) {
	original, ok := locate(issue, line)
	if !ok {
		return "", "", false
	}
	return original, strings.ReplaceAll(original, " ", "-"), true
}

func convertQuotes(f *Fixer, issue check.Issue, line string) (string, string, bool) {
	original, ok := locate(issue, line)
	if !ok {
		return "", "", false
	}
	if len(original) < 2 || !strings.HasPrefix(original, "'") || !strings.HasSuffix(original, "'") {
		return "", "", false
	}
	return original, `"` + original[1:len(original)-1] + `"`, true
}

func sentenceCaseHeading(f *Fixer, issue check.Issue, line string) (string, string, bool) {
	original, ok := locate(issue, line)
	if !ok {
		return "", "", false
	}
	return original, check.SentenceCase(original, f.keep), true
}

// activeForms maps passive participles to their active verb forms.
var activeForms = map[string]struct{ present, past string }{
	"set":       {"sets", "set"},
	"monitored": {"monitors", "monitored"},
	"performed": {"performs", "performed"},
	"created":   {"creates", "created"},
}

// rewritePassiveClause inverts a "<subject> <is/are/was/were>
// <participle> by <agent>" clause into "<agent> <verb> <subject>". The
// rewrite only triggers on that exact shape with a known participle.
func rewritePassiveClause(f *Fixer, issue check.Issue, line string) (string, string, bool) {
	indicator, ok := locate(issue, line)
	if !ok {
		return "", "", false
	}

	idx := strings.Index(line, indicator)
	after := line[idx+len(indicator):]
	if !strings.HasPrefix(after, " by ") {
		return "", "", false
	}

	// The agent runs from after the "by" to the next clause boundary.
	agent := after[len(" by "):]
	if stop := strings.IndexAny(agent, ".,;:!?"); stop >= 0 {
		agent = agent[:stop]
	}
	agent = strings.TrimSpace(agent)
	if agent == "" {
		return "", "", false
	}

	// The subject runs from the previous sentence boundary (or the start
	// of the line, past any list or heading markers) to the indicator.
	subject := line[:idx]
	if stop := strings.LastIndexAny(subject, ".;:!?"); stop >= 0 {
		subject = subject[stop+1:]
	}
	subject = strings.TrimLeft(subject, "#*->• \t")
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", "", false
	}

	parts := strings.Fields(indicator)
	if len(parts) != 2 {
		return "", "", false
	}
	forms, ok := activeForms[strings.ToLower(parts[1])]
	if !ok {
		return "", "", false
	}
	verb := forms.present
	if be := strings.ToLower(parts[0]); be == "was" || be == "were" {
		verb = forms.past
	}

	original := subject + " " + indicator + " by " + agent
	if !strings.Contains(line, original) {
		return "", "", false
	}
	rewritten := agent + " " + verb + " " + f.lowerSubject(subject)
	return original, matchLeadingCase(rewritten, original), true
}

// lowerSubject lowercases the subject's leading rune unless its first
// word is an acronym or a proper noun the guide knows about.
func (f *Fixer) lowerSubject(subject string) string {
	words := strings.Fields(subject)
	if len(words) == 0 {
		return subject
	}
	first := check.TrimWordPunct(words[0])
	if check.IsAcronym(first) {
		return subject
	}
	if _, ok := f.keepSet[first]; ok {
		return subject
	}
	r := []rune(subject)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// matchLeadingCase capitalizes the replacement when the text it stands
// in for was capitalized, so sentence-leading substitutions stay valid.
func matchLeadingCase(replacement, original string) string {
	if replacement == "" || original == "" {
		return replacement
	}
	if !unicode.IsUpper([]rune(original)[0]) {
		return replacement
	}
	r := []rune(replacement)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
