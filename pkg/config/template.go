package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes all rules with their documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string

	// IncludeRules is a list of rule IDs to include.
	// If empty, all rules are included.
	IncludeRules []string

	// IncludeDefaults includes fields that match the default values.
	IncludeDefaults bool
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Category    string
	Description string
	Enabled     bool
	Severity    Severity
	CanFix      bool
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the check package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the rules package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate(opts)
	}
	return generateMinimalTemplate(opts)
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# gostylecheck configuration
# See: https://github.com/yaklabco/gostylecheck

# Path to the style-guide file (empty discovers .styleguide.yaml)
# styleguide: .styleguide.yaml

# Default severity for rules that don't specify one: error, warning, or info
# severity_default: warning

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

# Backup configuration for auto-fix
# backups:
#   enabled: true
#   mode: sidecar

# Rule-specific configuration
# rules:
#   avoid_contractions:
#     enabled: true
#     severity: warning
#   inclusive_language:
#     severity: error
`)

	if opts.Format == "json" {
		return templateToJSON(buf.Bytes())
	}

	return buf.Bytes(), nil
}

// generateFullTemplate creates a full template with all rules documented.
func generateFullTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# gostylecheck configuration - Full Template
# See: https://github.com/yaklabco/gostylecheck
#
# This template includes all available rules with their default settings.
# Uncomment and modify settings as needed.

# Path to the style-guide file (empty discovers .styleguide.yaml)
styleguide: ""

# Default severity for rules that don't specify one: error, warning, or info
severity_default: warning

# Backup configuration for auto-fix
backups:
  enabled: true
  mode: sidecar

# File patterns to ignore (glob patterns)
ignore:
  - "vendor/**"
  - "node_modules/**"
  - ".git/**"

# Rules to explicitly enable (overrides defaults)
# enable_rules:
#   - active_voice
#   - avoid_contractions

# Rules to explicitly disable
# disable_rules:
#   - version_numbers

# Rules to allow auto-fixing
# fix_rules:
#   - avoid_contractions
#   - oxford_comma

# Rule-specific configuration
rules:
`)

	// Get rule information
	rules := getRuleInfos()

	// Filter by IncludeRules if specified
	if len(opts.IncludeRules) > 0 {
		includeSet := make(map[string]bool)
		for _, id := range opts.IncludeRules {
			includeSet[id] = true
		}
		filtered := make([]RuleInfo, 0)
		for _, r := range rules {
			if includeSet[r.ID] {
				filtered = append(filtered, r)
			}
		}
		rules = filtered
	}

	// Sort by ID
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})

	// Write each rule
	for _, rule := range rules {
		buf.WriteString(fmt.Sprintf("\n  # %s: %s\n", rule.ID, rule.Name))
		buf.WriteString(fmt.Sprintf("  # %s\n", wrapComment(rule.Description, commentWrapWidth)))
		if rule.Category != "" {
			buf.WriteString(fmt.Sprintf("  # Category: %s\n", rule.Category))
		}
		if rule.CanFix {
			buf.WriteString("  # Auto-fix: yes\n")
		}
		buf.WriteString(fmt.Sprintf("  %s:\n", rule.ID))
		buf.WriteString(fmt.Sprintf("    enabled: %t\n", rule.Enabled))
		buf.WriteString(fmt.Sprintf("    severity: %s\n", rule.Severity))
	}

	if opts.Format == "json" {
		return templateToJSON(buf.Bytes())
	}

	return buf.Bytes(), nil
}

// getRuleInfos returns information about all registered rules.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}

	// Fallback to a static list of well-known rules
	return []RuleInfo{
		{
			ID: "active_voice", Name: "active-voice", Category: "Writing Standards",
			Enabled: true, Severity: SeverityWarning, CanFix: true,
			Description: "Passive constructions should be rewritten in active voice",
		},
		{
			ID: "avoid_contractions", Name: "contractions", Category: "Writing Standards",
			Enabled: true, Severity: SeverityWarning, CanFix: true,
			Description: "Contractions should be expanded to their full forms",
		},
		{
			ID: "inclusive_language", Name: "inclusive-language", Category: "Content Quality",
			Enabled: true, Severity: SeverityError,
			Description: "Non-inclusive terms must be replaced with neutral alternatives",
		},
		{
			ID: "pii_guidelines", Name: "pii", Category: "Training Standards",
			Enabled: true, Severity: SeverityError,
			Description: "Real IP and email addresses must be masked in training content",
		},
		{
			ID: "oxford_comma", Name: "oxford-comma", Category: "Writing Standards",
			Enabled: true, Severity: SeverityWarning, CanFix: true,
			Description: "Series of three or more items use the Oxford comma",
		},
		{
			ID: "heading_capitalization", Name: "heading-capitalization", Category: "Document Structure",
			Enabled: true, Severity: SeverityWarning, CanFix: true,
			Description: "Headings use sentence case",
		},
	}
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateToJSON converts a YAML template to JSON format.
func templateToJSON(yamlContent []byte) ([]byte, error) {
	// Parse the YAML (skipping comments)
	lines := strings.Split(string(yamlContent), "\n")

	// Build a simple config for JSON
	cfg := map[string]any{
		"styleguide":       "",
		"severity_default": "warning",
		"backups": map[string]any{
			"enabled": true,
			"mode":    "sidecar",
		},
		"ignore": []string{"vendor/**", "node_modules/**", ".git/**"},
		"rules":  map[string]any{},
	}

	// Parse rules from YAML content (simplified)
	rules := getRuleInfos()
	rulesMap := make(map[string]any)
	for _, r := range rules {
		rulesMap[r.ID] = map[string]any{
			"enabled":  r.Enabled,
			"severity": string(r.Severity),
		}
	}
	cfg["rules"] = rulesMap

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	// Keep the lines slice usage for future expansion
	_ = lines

	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gostylecheck configuration
# See: https://github.com/yaklabco/gostylecheck`
}
