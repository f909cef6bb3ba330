package check

import "strings"

// Fixed vocabularies shared by the rules package and the fixer. Lists
// that configuration can replace live in pkg/styleguide; these are
// closed lists baked into their checks.

// TermAlternative pairs an offending term with its preferred alternative.
// Slices of these are ordered so issue output stays deterministic.
type TermAlternative struct {
	Term        string
	Alternative string
}

// PassiveIndicators are the passive-voice phrases flagged by the voice
// check when active or imperative voice is preferred.
//
//nolint:gochecknoglobals // Closed vocabulary shared with the fixer.
var PassiveIndicators = []string{
	"is set", "are set", "was set", "were set",
	"is monitored", "are monitored",
	"is performed", "are performed",
	"is created", "are created",
}

// contractionExpansions maps contraction forms to their full phrasing.
//
//nolint:gochecknoglobals // Closed vocabulary shared with the fixer.
var contractionExpansions = map[string]string{
	"won't":     "will not",
	"don't":     "do not",
	"can't":     "cannot",
	"shouldn't": "should not",
	"couldn't":  "could not",
	"wouldn't":  "would not",
	"isn't":     "is not",
	"aren't":    "are not",
}

// ExpandContraction returns the full form of a contraction as written,
// preserving leading capitalization ("Don't" expands to "Do not"). The
// second result is false for contractions outside the built-in table.
func ExpandContraction(asWritten string) (string, bool) {
	full, ok := contractionExpansions[strings.ToLower(asWritten)]
	if !ok {
		return "", false
	}
	if IsCapitalized(asWritten) {
		full = strings.ToUpper(full[:1]) + full[1:]
	}
	return full, true
}

// ThirdPersonTerms are referents flagged by the direct-address check.
//
//nolint:gochecknoglobals // Closed vocabulary.
var ThirdPersonTerms = []string{
	"the end user", "the user", "the customer", "users can", "customers can",
}

// AnthropomorphicPhrases attribute human traits to software.
//
//nolint:gochecknoglobals // Closed vocabulary.
var AnthropomorphicPhrases = []string{
	"cluster thinks", "cluster needs", "cluster searches",
	"system wants", "software decides",
}

// NegativeTerms maps alarming terms to neutral alternatives.
//
//nolint:gochecknoglobals // Closed vocabulary.
var NegativeTerms = []TermAlternative{
	{Term: "bug", Alternative: "issue"},
	{Term: "crash", Alternative: "failure"},
	{Term: "panic", Alternative: "halt"},
	{Term: "stuck", Alternative: "no progress"},
}

// NonInclusiveTerms maps non-inclusive terms to their replacements.
//
//nolint:gochecknoglobals // Closed vocabulary.
var NonInclusiveTerms = []TermAlternative{
	{Term: "master", Alternative: "primary"},
	{Term: "slave", Alternative: "secondary"},
	{Term: "blacklist", Alternative: "deny list"},
	{Term: "whitelist", Alternative: "allow list"},
}

// AbilityPhrases assume the reader's sensory abilities.
//
//nolint:gochecknoglobals // Closed vocabulary.
var AbilityPhrases = []string{
	"see the image", "look at", "as you can see", "obviously", "clearly",
}

// JargonWords count toward the language-clarity threshold.
//
//nolint:gochecknoglobals // Closed vocabulary.
var JargonWords = []string{
	"utilize", "facilitate", "implement", "comprehensive", "substantial",
}

// CompoundAdjectives are word pairs hyphenated when used attributively.
//
//nolint:gochecknoglobals // Closed vocabulary shared with the fixer.
var CompoundAdjectives = []string{
	"single node", "multi node", "high availability", "real time", "read only",
}
