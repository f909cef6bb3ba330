package rules

import (
	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
)

// RegisterAll registers the built-in rules with the given registry. The
// registry preserves registration order and the engine evaluates rules in
// that order, so the sequence below is the evaluation sequence: fragment
// rules first, then document rules.
func RegisterAll(registry *check.Registry) {
	// Writing standards
	registry.Register(NewActiveVoiceRule())
	registry.Register(NewContractionsRule())
	registry.Register(NewDirectAddressRule())
	registry.Register(NewApprovedPhrasingRule())
	registry.Register(NewAnthropomorphismRule())

	// Content quality
	registry.Register(NewProhibitedContentRule())
	registry.Register(NewNegativeTermsRule())
	registry.Register(NewInclusiveLanguageRule())

	// Formatting and training
	registry.Register(NewInlineStylesRule())
	registry.Register(NewPIIRule())

	// Terminology
	registry.Register(NewDeprecatedTermsRule())
	registry.Register(NewAcronymDefinitionsRule())
	registry.Register(NewCommandFormattingRule())
	registry.Register(NewProductNamesRule())

	// Technical content
	registry.Register(NewKBReferencesRule())
	registry.Register(NewKBLinksRule())
	registry.Register(NewVersionNumbersRule())
	registry.Register(NewPhoenixRule())

	// Punctuation mechanics
	registry.Register(NewOxfordCommaRule())
	registry.Register(NewCompoundAdjectivesRule())
	registry.Register(NewQuoteStyleRule())

	// Lists and accessibility
	registry.Register(NewListParallelismRule())
	registry.Register(NewDescriptiveLinksRule())
	registry.Register(NewAbilityNeutralRule())

	// Whole-document checks
	registry.Register(NewTableOfContentsRule())
	registry.Register(NewHeadingHierarchyRule())
	registry.Register(NewCalloutBalanceRule())
	registry.Register(NewCodeBlockThemeRule())
	registry.Register(NewLanguageClarityRule())
	registry.Register(NewPhoenixConsistencyRule())
	registry.Register(NewDocumentStructureRule())
	registry.Register(NewTrainingStructureRule())
	registry.Register(NewImageAltTextRule())
	registry.Register(NewHeadingCapitalizationRule())
}

// RegisterAliases registers alternate names accepted by rule selection
// flags.
func RegisterAliases(registry *check.Registry) {
	registry.RegisterAlias("passive-voice", check.RuleActiveVoice)
	registry.RegisterAlias("contractions", check.RuleContractions)
	registry.RegisterAlias("pii", check.RulePII)
	registry.RegisterAlias("phoenix", check.RulePhoenixTerminology)
}

// ruleInfos exposes registry metadata to configuration template
// generation without the config package importing this one.
func ruleInfos() []config.RuleInfo {
	registered := check.DefaultRegistry.Rules()
	infos := make([]config.RuleInfo, 0, len(registered))
	for _, rule := range registered {
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Category:    rule.Category(),
			Description: rule.Description(),
			Enabled:     rule.DefaultEnabled(),
			Severity:    rule.DefaultSeverity(),
			CanFix:      rule.CanFix(),
		})
	}
	return infos
}

// Register all built-in rules with the default registry on package load.
//
//nolint:gochecknoinits // Standard pattern for rule registration.
func init() {
	RegisterAll(check.DefaultRegistry)
	RegisterAliases(check.DefaultRegistry)
	config.DefaultRuleInfoProvider = ruleInfos
}
