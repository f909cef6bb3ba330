package check

// Rule identifiers. The fixer keys its strategy table on these, so they
// live here rather than in the rules package.
const (
	RuleActiveVoice           = "active_voice"
	RuleContractions          = "avoid_contractions"
	RuleDirectAddress         = "direct_address"
	RuleApprovedPhrasing      = "approved_phrasing"
	RuleAnthropomorphism      = "avoid_anthropomorphism"
	RuleProhibitedContent     = "prohibited_content"
	RuleNegativeTerms         = "avoid_negative_terms"
	RuleInclusiveLanguage     = "inclusive_language"
	RuleInlineStyles          = "inline_styles"
	RulePII                   = "pii_guidelines"
	RuleDeprecatedTerms       = "deprecated_terms"
	RuleAcronymDefinitions    = "acronym_definitions"
	RuleCommandFormatting     = "command_formatting"
	RuleProductNames          = "product_names"
	RuleKBReferences          = "kb_references"
	RuleKBLinks               = "kb_links"
	RuleVersionNumbers        = "version_numbers"
	RulePhoenixTerminology    = "phoenix_terminology"
	RuleOxfordComma           = "oxford_comma"
	RuleCompoundAdjectives    = "compound_adjectives"
	RuleQuoteStyle            = "quote_style"
	RuleListParallelism       = "list_parallelism"
	RuleDescriptiveLinks      = "descriptive_links"
	RuleAbilityNeutral        = "ability_neutral"
	RuleTableOfContents       = "table_of_contents"
	RuleHeadingHierarchy      = "heading_hierarchy"
	RuleCalloutBalance        = "callout_balance"
	RuleCodeBlockTheme        = "code_block_theme"
	RuleLanguageClarity       = "language_clarity"
	RulePhoenixConsistency    = "phoenix_consistency"
	RuleDocumentStructure     = "document_structure"
	RuleTrainingStructure     = "training_structure"
	RuleImageAltText          = "image_alt_text"
	RuleHeadingCapitalization = "heading_capitalization"
)

// Reporting categories.
const (
	CategoryWriting      = "Writing Standards"
	CategoryQuality      = "Content Quality"
	CategoryFormatting   = "Formatting"
	CategoryTraining     = "Training Standards"
	CategoryTechnical    = "Technical Content"
	CategoryStructure    = "Document Structure"
	CategoryOrganization = "Content Organization"
	CategoryPhoenix      = "Phoenix Terminology"
)
