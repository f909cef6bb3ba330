package styleguide

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullGuide(t *testing.T) {
	guide, err := Parse(Template())
	require.NoError(t, err)

	require.NotNil(t, guide.VoiceAndMood())
	assert.True(t, guide.VoiceAndMood().Active())

	c := guide.Contractions()
	require.NotNil(t, c)
	assert.True(t, c.Disallowed())
	assert.Equal(t, "warning", c.Severity)
	assert.Equal(t, DefaultContractionWords, c.Words)

	require.NotNil(t, guide.Punctuation())
	assert.Equal(t, "required", guide.Punctuation().OxfordComma)
	assert.True(t, guide.Punctuation().HyphenateCompounds)

	require.NotNil(t, guide.ApprovedPhrasing())
	require.Len(t, guide.ApprovedPhrasing().AvoidTerms, 2)
	assert.Equal(t, "use", guide.ApprovedPhrasing().AvoidTerms[0].Replacement)

	assert.Equal(t, "Prism", guide.DeprecatedTerms()["legacy console"])
	assert.Contains(t, guide.TechnicalAccuracy().StrictlyProhibited, "root password")
	assert.Contains(t, guide.InlineStyles(), "font-family")
	assert.True(t, guide.KBReferences().LinksRequired())
	assert.Equal(t, 3, guide.VersionNumbers().PreferredParts)
	assert.Equal(t, 50, guide.ChapterStructure().TocThreshold)
	assert.Equal(t, []string{"Phoenix"}, guide.PhoenixTerminology().ConsistentTerms)
}

func TestParseEmptyGuide(t *testing.T) {
	guide, err := Parse([]byte(""))
	require.NoError(t, err)

	assert.Nil(t, guide.VoiceAndMood())
	assert.Nil(t, guide.Contractions())
	assert.Nil(t, guide.Punctuation())
	assert.Nil(t, guide.ApprovedPhrasing())
	assert.Nil(t, guide.DeprecatedTerms())
	assert.Nil(t, guide.TechnicalAccuracy())
	assert.Nil(t, guide.InlineStyles())
	assert.Nil(t, guide.PIIGuidelines())
	assert.Nil(t, guide.KBReferences())
	assert.Nil(t, guide.ChapterStructure())
	assert.Nil(t, guide.PhoenixTerminology())
}

func TestNilGuideAccessorsAreSafe(t *testing.T) {
	var guide *Guide

	assert.Nil(t, guide.VoiceAndMood())
	assert.Nil(t, guide.Contractions())
	assert.Nil(t, guide.DeprecatedTerms())
	assert.Nil(t, guide.PhoenixTerminology())
	assert.False(t, guide.VoiceAndMood().Active())
	assert.False(t, guide.Contractions().Disallowed())
	assert.False(t, guide.KBReferences().LinksRequired())
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("style_guide: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse style guide")
}

func TestAvoidTermScalarForm(t *testing.T) {
	guide, err := Parse([]byte(`
style_guide:
  terminology:
    approved_phrasing:
      avoid_terms:
        - "leverage"
        - term: "utilize"
          replacement: "use"
`))
	require.NoError(t, err)

	terms := guide.ApprovedPhrasing().AvoidTerms
	require.Len(t, terms, 2)
	assert.Equal(t, AvoidTerm{Term: "leverage"}, terms[0])
	assert.Equal(t, "utilize", terms[1].Term)
	assert.Equal(t, "use", terms[1].Replacement)
}

func TestDefaultsOnPresentNamespaces(t *testing.T) {
	guide, err := Parse([]byte(`
style_guide:
  terminology:
    abbreviation_rules: {}
content_quality:
  accessibility: {}
training_standards:
  pii_guidelines: {}
technical_content:
  version_numbers: {}
document_structure:
  chapter_structure: {}
phoenix_specific:
  terminology: {}
`))
	require.NoError(t, err)

	assert.Equal(t, "Acropolis Operating System", guide.AbbreviationRules().Definitions["AOS"])
	assert.Contains(t, guide.Accessibility().LinkTextPatterns, "click here")
	assert.Equal(t, []string{"nutanix.com"}, guide.PIIGuidelines().AllowedDomains)
	assert.Equal(t, []string{"x.x.x."}, guide.PIIGuidelines().MaskedPatterns)
	assert.Equal(t, DefaultVersionParts, guide.VersionNumbers().PreferredParts)
	assert.Equal(t, DefaultTocThreshold, guide.ChapterStructure().TocThreshold)
	assert.Equal(t, DefaultConsistentTerms, guide.PhoenixTerminology().ConsistentTerms)
}

func TestKBReferencesRequireLinksOverride(t *testing.T) {
	guide, err := Parse([]byte(`
technical_content:
  kb_references:
    require_links: false
`))
	require.NoError(t, err)

	require.NotNil(t, guide.KBReferences())
	assert.False(t, guide.KBReferences().LinksRequired())
}

func TestContractionsPolicyAllowed(t *testing.T) {
	guide, err := Parse([]byte(`
style_guide:
  grammar_and_mechanics:
    contractions:
      policy: allowed
`))
	require.NoError(t, err)
	assert.False(t, guide.Contractions().Disallowed())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, "explicit.yaml", Discover("explicit.yaml", dir))
	assert.Empty(t, Discover("", dir))

	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, Template(), 0o644))
	assert.Equal(t, path, Discover("", dir))
}
