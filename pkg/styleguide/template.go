package styleguide

// Template returns the starter style-guide file written by "init".
// Every namespace is present so each check runs out of the box; lists
// left empty fall back to the built-in tables at load time.
func Template() []byte {
	return []byte(`# gostylecheck style guide
# See: https://github.com/yaklabco/gostylecheck
#
# Remove a section to disable its checks entirely. Empty lists fall
# back to built-in defaults.

style_guide:
  grammar_and_mechanics:
    # Passive-voice detection fires for "active" or "imperative".
    voice_and_mood:
      preferred_voice: active

    # Any policy other than "allowed" flags contractions.
    contractions:
      policy: use_sparingly
      severity: warning
      # words:
      #   - "won't"
      #   - "don't"

    # "sentence_case" enables the heading capitalization check.
    capitalization:
      headings: sentence_case

    punctuation:
      oxford_comma: required
      hyphenate_compounds: true
      quote_style: double

    # Presence enables the list parallelism heuristic.
    lists:
      style: dash

  terminology:
    approved_phrasing:
      avoid_terms:
        - term: "utilize"
          suggestion: "Prefer 'use'"
          replacement: "use"
        - term: "in order to"
          suggestion: "Prefer 'to'"
          replacement: "to"

    product_names:
      canonical:
        - "Nutanix AOS"
        - "Prism Central"

    abbreviation_rules:
      # definitions:
      #   AOS: Acropolis Operating System
      definitions: {}

    formatting:
      monospace_commands:
        - "ncli"
        - "acli"
        - "genesis"

    deprecated_terms:
      # Empty replacement removes the term outright.
      "legacy console": "Prism"

content_quality:
  technical_accuracy:
    strictly_prohibited:
      - "root password"
  accessibility: {}

formatting:
  text:
    discouraged_inline_styles:
      - "font-family"
      - "font-size"
      - "color:"

training_standards:
  pii_guidelines:
    allowed_domains:
      - "nutanix.com"
    masked_patterns:
      - "x.x.x."
  module_structure:
    required_sections:
      - "Objectives"
      - "Prerequisites"
      - "Summary"

technical_content:
  kb_references:
    require_links: true
  version_numbers:
    preferred_parts: 3

document_structure:
  chapter_structure:
    required_sections:
      - "Overview"
      - "Requirements"
    toc_threshold: 50

phoenix_specific:
  terminology:
    consistent_terms:
      - "Phoenix"
`)
}
