package styleguide

import "strings"

// Accessors below collapse the nested optional namespaces into single
// nil-safe calls. A nil receiver anywhere along the path yields nil,
// which callers treat as "namespace absent, checks disabled".

// VoiceAndMood returns the voice namespace or nil.
func (g *Guide) VoiceAndMood() *VoiceAndMood {
	if g == nil || g.StyleGuide == nil || g.StyleGuide.GrammarAndMechanics == nil {
		return nil
	}
	return g.StyleGuide.GrammarAndMechanics.VoiceAndMood
}

// Contractions returns the contraction namespace or nil.
func (g *Guide) Contractions() *Contractions {
	if g == nil || g.StyleGuide == nil || g.StyleGuide.GrammarAndMechanics == nil {
		return nil
	}
	return g.StyleGuide.GrammarAndMechanics.Contractions
}

// Capitalization returns the capitalization namespace or nil.
func (g *Guide) Capitalization() *Capitalization {
	if g == nil || g.StyleGuide == nil || g.StyleGuide.GrammarAndMechanics == nil {
		return nil
	}
	return g.StyleGuide.GrammarAndMechanics.Capitalization
}

// Punctuation returns the punctuation namespace or nil.
func (g *Guide) Punctuation() *Punctuation {
	if g == nil || g.StyleGuide == nil || g.StyleGuide.GrammarAndMechanics == nil {
		return nil
	}
	return g.StyleGuide.GrammarAndMechanics.Punctuation
}

// Lists returns the lists namespace or nil.
func (g *Guide) Lists() *Lists {
	if g == nil || g.StyleGuide == nil || g.StyleGuide.GrammarAndMechanics == nil {
		return nil
	}
	return g.StyleGuide.GrammarAndMechanics.Lists
}

// ApprovedPhrasing returns the approved-phrasing namespace or nil.
func (g *Guide) ApprovedPhrasing() *ApprovedPhrasing {
	if g == nil || g.StyleGuide == nil || g.StyleGuide.Terminology == nil {
		return nil
	}
	return g.StyleGuide.Terminology.ApprovedPhrasing
}

// ProductNames returns the product-names namespace or nil.
func (g *Guide) ProductNames() *ProductNames {
	if g == nil || g.StyleGuide == nil || g.StyleGuide.Terminology == nil {
		return nil
	}
	return g.StyleGuide.Terminology.ProductNames
}

// AbbreviationRules returns the abbreviation namespace or nil.
func (g *Guide) AbbreviationRules() *AbbreviationRules {
	if g == nil || g.StyleGuide == nil || g.StyleGuide.Terminology == nil {
		return nil
	}
	return g.StyleGuide.Terminology.AbbreviationRules
}

// TermFormatting returns the terminology formatting namespace or nil.
func (g *Guide) TermFormatting() *TermFormatting {
	if g == nil || g.StyleGuide == nil || g.StyleGuide.Terminology == nil {
		return nil
	}
	return g.StyleGuide.Terminology.Formatting
}

// DeprecatedTerms returns the deprecated-term map, possibly nil.
func (g *Guide) DeprecatedTerms() DeprecatedTerms {
	if g == nil || g.StyleGuide == nil || g.StyleGuide.Terminology == nil {
		return nil
	}
	return g.StyleGuide.Terminology.DeprecatedTerms
}

// TechnicalAccuracy returns the technical-accuracy namespace or nil.
func (g *Guide) TechnicalAccuracy() *TechnicalAccuracy {
	if g == nil || g.ContentQuality == nil {
		return nil
	}
	return g.ContentQuality.TechnicalAccuracy
}

// Accessibility returns the accessibility namespace or nil.
func (g *Guide) Accessibility() *Accessibility {
	if g == nil || g.ContentQuality == nil {
		return nil
	}
	return g.ContentQuality.Accessibility
}

// InlineStyles returns the discouraged inline style list, possibly empty.
func (g *Guide) InlineStyles() []string {
	if g == nil || g.Formatting == nil || g.Formatting.Text == nil {
		return nil
	}
	return g.Formatting.Text.DiscouragedInlineStyles
}

// PIIGuidelines returns the PII namespace or nil.
func (g *Guide) PIIGuidelines() *PIIGuidelines {
	if g == nil || g.TrainingStandards == nil {
		return nil
	}
	return g.TrainingStandards.PIIGuidelines
}

// ModuleStructure returns the training module structure namespace or nil.
func (g *Guide) ModuleStructure() *ModuleStructure {
	if g == nil || g.TrainingStandards == nil {
		return nil
	}
	return g.TrainingStandards.ModuleStructure
}

// KBReferences returns the KB reference namespace or nil.
func (g *Guide) KBReferences() *KBReferences {
	if g == nil || g.TechnicalContent == nil {
		return nil
	}
	return g.TechnicalContent.KBReferences
}

// VersionNumbers returns the version-number namespace or nil.
func (g *Guide) VersionNumbers() *VersionNumbers {
	if g == nil || g.TechnicalContent == nil {
		return nil
	}
	return g.TechnicalContent.VersionNumbers
}

// ChapterStructure returns the chapter structure namespace or nil.
func (g *Guide) ChapterStructure() *ChapterStructure {
	if g == nil || g.DocumentStructure == nil {
		return nil
	}
	return g.DocumentStructure.ChapterStructure
}

// PhoenixTerminology returns the tool terminology namespace or nil.
func (g *Guide) PhoenixTerminology() *PhoenixTerminology {
	if g == nil || g.PhoenixSpecific == nil {
		return nil
	}
	return g.PhoenixSpecific.Terminology
}

// ProperNouns collects the words the guide treats as proper nouns:
// consistent-capitalization terms, the individual words of canonical
// product names, and the known acronyms. Sentence-case transformations
// leave these words untouched.
func (g *Guide) ProperNouns() []string {
	var words []string

	if pt := g.PhoenixTerminology(); pt != nil {
		words = append(words, pt.ConsistentTerms...)
	}
	if pn := g.ProductNames(); pn != nil {
		for _, name := range pn.Canonical {
			words = append(words, strings.Fields(name)...)
		}
	}

	defs := DefaultAcronymDefinitions
	if ab := g.AbbreviationRules(); ab != nil && len(ab.Definitions) > 0 {
		defs = ab.Definitions
	}
	for acronym := range defs {
		words = append(words, acronym)
	}

	return words
}
