// Package config defines core configuration types for gostylecheck.
// These types are pure data structures with no external dependencies on Viper or other config loaders.
package config

import "fmt"

// Severity represents the severity level of a style issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Rank orders severities for threshold comparisons. Higher is worse.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// ParseSeverity validates a severity string.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityError, SeverityWarning, SeverityInfo:
		return Severity(s), nil
	default:
		return "", fmt.Errorf("unknown severity %q (expected error, warning, or info)", s)
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	Severity *string        `mapstructure:"severity" yaml:"severity" toml:"severity"`
	AutoFix  *bool          `mapstructure:"auto_fix" yaml:"auto_fix" toml:"auto_fix"`
	Options  map[string]any `mapstructure:"options" yaml:"options" toml:"options"`
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	Mode    string `mapstructure:"mode" yaml:"mode" toml:"mode"` // "sidecar", "xdg", etc.
}

// OutputFormat specifies the output format for issues.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "contractions"
	RuleFormatID       RuleFormat = "id"       // "avoid_contractions"
	RuleFormatCombined RuleFormat = "combined" // "avoid_contractions/contractions"
)

// SummaryOrder controls the order of tables in summary output.
type SummaryOrder string

const (
	// SummaryOrderRules shows rules table first (default).
	SummaryOrderRules SummaryOrder = "rules"
	// SummaryOrderFiles shows files table first.
	SummaryOrderFiles SummaryOrder = "files"
)

// IsValid returns true if the summary order is valid.
func (s SummaryOrder) IsValid() bool {
	switch s {
	case SummaryOrderRules, SummaryOrderFiles:
		return true
	default:
		return false
	}
}

// FixConfidence gates which proposed edits the fix pipeline applies.
type FixConfidence string

const (
	ConfidenceHigh   FixConfidence = "high"
	ConfidenceMedium FixConfidence = "medium"
	ConfidenceLow    FixConfidence = "low"
)

// Rank orders confidence levels. Higher is safer.
func (c FixConfidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

// ParseFixConfidence validates a confidence string.
func ParseFixConfidence(s string) (FixConfidence, error) {
	switch FixConfidence(s) {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return FixConfidence(s), nil
	default:
		return "", fmt.Errorf("unknown confidence %q (expected high, medium, or low)", s)
	}
}

// Config is the root configuration structure for gostylecheck.
type Config struct {
	// Styleguide is the path to the style-guide YAML file. Empty means
	// discover .styleguide.yaml in the working directory.
	Styleguide string `mapstructure:"styleguide" yaml:"styleguide" toml:"styleguide"`

	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `mapstructure:"severity_default" yaml:"severity_default" toml:"severity_default"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `mapstructure:"rules" yaml:"rules" toml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `mapstructure:"ignore" yaml:"ignore" toml:"ignore"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups" toml:"backups"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool `mapstructure:"-" yaml:"-" toml:"-"`

	// DryRun shows what would be fixed without making changes.
	DryRun bool `mapstructure:"-" yaml:"-" toml:"-"`

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-" toml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `mapstructure:"-" yaml:"-" toml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-" toml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `mapstructure:"-" yaml:"-" toml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `mapstructure:"-" yaml:"-" toml:"-"`

	// FixRules limits auto-fixing to specific rule IDs.
	FixRules []string `mapstructure:"-" yaml:"-" toml:"-"`

	// Confidence is the minimum edit confidence the fix pipeline applies.
	Confidence FixConfidence `mapstructure:"-" yaml:"-" toml:"-"`

	// FailOn is the severity threshold for a non-zero exit code.
	FailOn Severity `mapstructure:"-" yaml:"-" toml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `mapstructure:"-" yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		Rules:           make(map[string]RuleConfig),
		Ignore:          nil,
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format:     FormatText,
		RuleFormat: RuleFormatName,
		Jobs:       0, // 0 means use GOMAXPROCS
		Confidence: ConfidenceMedium,
		FailOn:     SeverityError,
	}
}
