package configloader

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gostylecheck/pkg/styleguide"
)

// MigrationResult contains the result of converting a legacy style guide.
type MigrationResult struct {
	// Content is the converted style guide in the current layout.
	Content []byte

	// Warnings contains non-fatal issues encountered during conversion.
	Warnings []string

	// SourcePath is the path to the original style guide.
	SourcePath string
}

// legacyProbe is used to sniff the top-level layout of a style guide.
type legacyProbe struct {
	WritingStandards map[string]any `yaml:"writing_standards"`
	StyleGuide       map[string]any `yaml:"style_guide"`
}

// IsLegacyGuide reports whether the style-guide content uses the legacy
// writing_standards layout.
func IsLegacyGuide(content []byte) bool {
	var probe legacyProbe
	if err := yaml.Unmarshal(content, &probe); err != nil {
		return false
	}
	return probe.WritingStandards != nil && probe.StyleGuide == nil
}

// ConvertLegacyGuide converts a legacy-layout style-guide file to the
// current style_guide layout. The file itself is not modified.
func ConvertLegacyGuide(path string) (*MigrationResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	result, err := ConvertLegacyGuideContent(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	result.SourcePath = path
	return result, nil
}

// ConvertLegacyGuideContent converts legacy style-guide YAML to the current
// layout. The conversion works on the YAML node tree so user comments and
// key order survive:
//
//   - writing_standards            -> style_guide
//   - .grammar                     -> .grammar_and_mechanics
//   - .language_clarity.terminology_fixes.avoid_terms
//     -> .terminology.approved_phrasing.avoid_terms
//
// The rest of language_clarity has no equivalent and is dropped with a
// warning. Top-level namespaces other than writing_standards pass through
// unchanged.
func ConvertLegacyGuideContent(content []byte) (*MigrationResult, error) {
	result := &MigrationResult{}

	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level is not a mapping")
	}

	if _, existing := mapLookup(doc, "style_guide"); existing != nil {
		return nil, fmt.Errorf("already uses the style_guide layout")
	}

	wsKey, wsVal := mapLookup(doc, "writing_standards")
	if wsVal == nil {
		return nil, fmt.Errorf("no writing_standards namespace found")
	}
	if wsVal.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("writing_standards is not a mapping")
	}

	wsKey.Value = "style_guide"
	convertStandardsBody(wsVal, result)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return nil, fmt.Errorf("marshal converted guide: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal converted guide: %w", err)
	}
	converted := buf.Bytes()

	// The converted guide must parse as a current-layout guide.
	if _, err := styleguide.Parse(converted); err != nil {
		return nil, fmt.Errorf("converted guide is invalid: %w", err)
	}

	result.Content = converted
	return result, nil
}

// convertStandardsBody rewrites the children of the renamed namespace.
func convertStandardsBody(body *yaml.Node, result *MigrationResult) {
	if keyNode, _ := mapLookup(body, "grammar"); keyNode != nil {
		keyNode.Value = "grammar_and_mechanics"
	}

	_, clarity := mapLookup(body, "language_clarity")
	if clarity == nil {
		return
	}

	// Salvage avoid_terms before dropping language_clarity.
	if terms := lookupPath(clarity, "terminology_fixes", "avoid_terms"); terms != nil {
		graftAvoidTerms(body, terms, result)
	}

	mapDelete(body, "language_clarity")
	result.Warnings = append(result.Warnings,
		"writing_standards.language_clarity has no equivalent namespace; "+
			"jargon thresholds are configured per rule (rules.language_clarity.options.threshold)")
}

// graftAvoidTerms moves a legacy avoid_terms sequence under
// terminology.approved_phrasing, creating the intermediate mappings as
// needed. An existing avoid_terms list wins over the legacy one.
func graftAvoidTerms(body, terms *yaml.Node, result *MigrationResult) {
	terminology := ensureMapping(body, "terminology")
	phrasing := ensureMapping(terminology, "approved_phrasing")

	if _, existing := mapLookup(phrasing, "avoid_terms"); existing != nil {
		result.Warnings = append(result.Warnings,
			"both language_clarity.terminology_fixes.avoid_terms and terminology contain avoid_terms; keeping the terminology list")
		return
	}

	phrasing.Content = append(phrasing.Content,
		scalarNode("avoid_terms"), terms)
	result.Warnings = append(result.Warnings,
		"moved language_clarity.terminology_fixes.avoid_terms to terminology.approved_phrasing.avoid_terms")
}

// mapLookup returns the key and value nodes for key in a mapping node.
// Both are nil when the key is absent.
func mapLookup(mapping *yaml.Node, key string) (*yaml.Node, *yaml.Node) {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil, nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i], mapping.Content[i+1]
		}
	}
	return nil, nil
}

// lookupPath descends through nested mappings by key.
func lookupPath(node *yaml.Node, keys ...string) *yaml.Node {
	current := node
	for _, key := range keys {
		_, next := mapLookup(current, key)
		if next == nil {
			return nil
		}
		current = next
	}
	return current
}

// mapDelete removes a key/value pair from a mapping node.
func mapDelete(mapping *yaml.Node, key string) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content = append(mapping.Content[:i], mapping.Content[i+2:]...)
			return
		}
	}
}

// ensureMapping returns the mapping node at key, creating an empty one when
// absent.
func ensureMapping(parent *yaml.Node, key string) *yaml.Node {
	if _, existing := mapLookup(parent, key); existing != nil {
		return existing
	}
	value := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	parent.Content = append(parent.Content, scalarNode(key), value)
	return value
}

// scalarNode builds a plain string scalar node.
func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
