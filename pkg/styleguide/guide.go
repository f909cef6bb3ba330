// Package styleguide defines the typed style-guide configuration consumed
// by the rule engine. Every recognized namespace is an optional pointer
// field: a nil namespace means the corresponding checks never fire, which
// is a normal condition rather than an error. Defaults are resolved once
// at load time; rules never traverse raw mappings.
package styleguide

import "gopkg.in/yaml.v3"

// Guide is the root of the style-guide configuration.
type Guide struct {
	StyleGuide        *StyleGuide        `yaml:"style_guide"`
	ContentQuality    *ContentQuality    `yaml:"content_quality"`
	Formatting        *Formatting        `yaml:"formatting"`
	TrainingStandards *TrainingStandards `yaml:"training_standards"`
	TechnicalContent  *TechnicalContent  `yaml:"technical_content"`
	DocumentStructure *DocumentStructure `yaml:"document_structure"`
	PhoenixSpecific   *PhoenixSpecific   `yaml:"phoenix_specific"`
}

// StyleGuide groups grammar and terminology policy.
type StyleGuide struct {
	GrammarAndMechanics *GrammarAndMechanics `yaml:"grammar_and_mechanics"`
	Terminology         *Terminology         `yaml:"terminology"`
}

// GrammarAndMechanics holds the grammar-level namespaces.
type GrammarAndMechanics struct {
	VoiceAndMood   *VoiceAndMood   `yaml:"voice_and_mood"`
	Contractions   *Contractions   `yaml:"contractions"`
	Capitalization *Capitalization `yaml:"capitalization"`
	Punctuation    *Punctuation    `yaml:"punctuation"`
	Lists          *Lists          `yaml:"lists"`
}

// VoiceAndMood configures the voice checks.
type VoiceAndMood struct {
	// PreferredVoice is the voice rules push toward. The passive-voice
	// check fires when this is "active" or "imperative".
	PreferredVoice string `yaml:"preferred_voice"`
}

// Active reports whether the passive-voice check applies.
func (v *VoiceAndMood) Active() bool {
	if v == nil {
		return false
	}
	return v.PreferredVoice == "active" || v.PreferredVoice == "imperative"
}

// Contractions configures the contraction check.
type Contractions struct {
	// Policy gates the check. Any non-empty value other than "allowed"
	// flags contractions (use_sparingly, avoid, ...).
	Policy string `yaml:"policy"`

	// Severity overrides the default warning severity. One of error,
	// warning, info.
	Severity string `yaml:"severity"`

	// Words replaces the built-in contraction list when non-empty.
	// Populated with the default list at load time otherwise.
	Words []string `yaml:"words"`
}

// Disallowed reports whether the configured policy flags contractions.
func (c *Contractions) Disallowed() bool {
	if c == nil {
		return false
	}
	return c.Policy != "" && c.Policy != "allowed"
}

// Capitalization configures heading capitalization.
type Capitalization struct {
	// Headings selects the heading style. "sentence_case" enables the
	// heading capitalization check.
	Headings string `yaml:"headings"`
}

// Punctuation configures the punctuation mechanics checks.
type Punctuation struct {
	// OxfordComma set to "required" enables the Oxford comma check.
	OxfordComma string `yaml:"oxford_comma"`

	// HyphenateCompounds enables the compound-adjective check.
	HyphenateCompounds bool `yaml:"hyphenate_compounds"`

	// QuoteStyle set to "double" flags single-quoted UI text.
	QuoteStyle string `yaml:"quote_style"`
}

// Lists configures the list parallelism heuristic. Presence of the
// namespace enables it.
type Lists struct {
	// Style documents the bullet convention (informational).
	Style string `yaml:"style"`
}

// Terminology groups the terminology namespaces.
type Terminology struct {
	ApprovedPhrasing  *ApprovedPhrasing  `yaml:"approved_phrasing"`
	ProductNames      *ProductNames      `yaml:"product_names"`
	AbbreviationRules *AbbreviationRules `yaml:"abbreviation_rules"`
	Formatting        *TermFormatting    `yaml:"formatting"`
	DeprecatedTerms   DeprecatedTerms    `yaml:"deprecated_terms"`
}

// ApprovedPhrasing lists discouraged terms with optional suggestions.
type ApprovedPhrasing struct {
	AvoidTerms []AvoidTerm `yaml:"avoid_terms"`
}

// AvoidTerm is one discouraged term or phrase. In YAML it is either a
// bare string or a mapping with term, suggestion, and replacement keys.
// A non-empty replacement makes occurrences auto-fixable.
type AvoidTerm struct {
	Term        string `yaml:"term"`
	Suggestion  string `yaml:"suggestion"`
	Replacement string `yaml:"replacement"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (t *AvoidTerm) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var term string
		if err := value.Decode(&term); err != nil {
			return err
		}
		*t = AvoidTerm{Term: term}
		return nil
	}

	type plain AvoidTerm
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*t = AvoidTerm(p)
	return nil
}

// ProductNames lists canonical product-name casings.
type ProductNames struct {
	Canonical []string `yaml:"canonical"`
}

// AbbreviationRules configures acronym definitions.
type AbbreviationRules struct {
	// Definitions maps acronyms to their full names. Populated with the
	// built-in table at load time when empty.
	Definitions map[string]string `yaml:"definitions"`
}

// TermFormatting configures term formatting requirements.
type TermFormatting struct {
	// MonospaceCommands lists command and process names that must appear
	// in monospace markup.
	MonospaceCommands []string `yaml:"monospace_commands"`
}

// DeprecatedTerms maps retired terms to their replacements. An empty
// replacement means the term should be removed outright.
type DeprecatedTerms map[string]string

// ContentQuality groups the content quality namespaces.
type ContentQuality struct {
	TechnicalAccuracy *TechnicalAccuracy `yaml:"technical_accuracy"`
	Accessibility     *Accessibility     `yaml:"accessibility"`
}

// TechnicalAccuracy gates the negative-term and inclusive-language checks
// and lists strictly prohibited content.
type TechnicalAccuracy struct {
	StrictlyProhibited []string `yaml:"strictly_prohibited"`
}

// Accessibility gates the accessibility checks.
type Accessibility struct {
	// LinkTextPatterns replaces the built-in non-descriptive link text
	// list when non-empty.
	LinkTextPatterns []string `yaml:"link_text_patterns"`
}

// Formatting groups formatting namespaces.
type Formatting struct {
	Text *TextFormatting `yaml:"text"`
}

// TextFormatting configures inline text formatting checks.
type TextFormatting struct {
	DiscouragedInlineStyles []string `yaml:"discouraged_inline_styles"`
}

// TrainingStandards groups the training-content namespaces.
type TrainingStandards struct {
	PIIGuidelines   *PIIGuidelines   `yaml:"pii_guidelines"`
	ModuleStructure *ModuleStructure `yaml:"module_structure"`
}

// PIIGuidelines configures the PII checks.
type PIIGuidelines struct {
	// AllowedDomains are email domains exempt from the check.
	// Defaults to nutanix.com.
	AllowedDomains []string `yaml:"allowed_domains"`

	// MaskedPatterns are IP forms treated as already masked.
	// Defaults to "x.x.x.".
	MaskedPatterns []string `yaml:"masked_patterns"`
}

// ModuleStructure lists recommended training-module sections.
type ModuleStructure struct {
	RequiredSections []string `yaml:"required_sections"`
}

// TechnicalContent groups the technical content namespaces.
type TechnicalContent struct {
	KBReferences   *KBReferences   `yaml:"kb_references"`
	VersionNumbers *VersionNumbers `yaml:"version_numbers"`
}

// KBReferences configures knowledge-base reference checks.
type KBReferences struct {
	// RequireLinks flags KB references on lines without anchor markup.
	// Defaults to true.
	RequireLinks *bool `yaml:"require_links"`
}

// LinksRequired reports whether KB references must be linked.
func (k *KBReferences) LinksRequired() bool {
	if k == nil || k.RequireLinks == nil {
		return k != nil
	}
	return *k.RequireLinks
}

// VersionNumbers configures version-format checks.
type VersionNumbers struct {
	// PreferredParts is the component count version numbers should
	// carry. Defaults to 3.
	PreferredParts int `yaml:"preferred_parts"`
}

// DocumentStructure groups document structure namespaces.
type DocumentStructure struct {
	ChapterStructure *ChapterStructure `yaml:"chapter_structure"`
}

// ChapterStructure lists recommended chapter sections and the table of
// contents threshold.
type ChapterStructure struct {
	RequiredSections []string `yaml:"required_sections"`

	// TocThreshold is the fragment count beyond which a table of
	// contents is expected. Defaults to 50.
	TocThreshold int `yaml:"toc_threshold"`
}

// PhoenixSpecific groups tool-specific terminology policy.
type PhoenixSpecific struct {
	Terminology *PhoenixTerminology `yaml:"terminology"`
}

// PhoenixTerminology configures proper-noun consistency checks.
type PhoenixTerminology struct {
	// ConsistentTerms lists proper nouns whose capitalization must be
	// used consistently. Defaults to Phoenix.
	ConsistentTerms []string `yaml:"consistent_terms"`
}
