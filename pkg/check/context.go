package check

import (
	"context"

	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/extract"
	"github.com/yaklabco/gostylecheck/pkg/styleguide"
)

// RuleContext provides all context needed by a rule to perform checking.
//
// Design note: RuleContext stores context.Context as a field (Ctx) rather
// than passing it as a method parameter. This is acceptable because
// RuleContext is a short-lived parameter object created per-rule-invocation,
// not a long-lived struct. This design keeps the rule interfaces small
// while still providing cancellation support via the Cancelled() helper.
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// Doc is the extracted document being checked.
	Doc *extract.Document

	// Guide is the loaded style guide. Nil namespaces disable their checks.
	Guide *styleguide.Guide

	// Config is the resolved tool configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry

	// Cache holds shared document-level views. The engine injects one
	// cache per document so rules share computed results.
	Cache *DocCache
}

// NewRuleContext creates a RuleContext for the given document and configuration.
func NewRuleContext(
	ctx context.Context,
	doc *extract.Document,
	guide *styleguide.Guide,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	return &RuleContext{
		Ctx:        ctx,
		Doc:        doc,
		Guide:      guide,
		Config:     cfg,
		RuleConfig: ruleCfg,
		Cache:      NewDocCache(doc),
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// SourceLine returns the raw markup line n (1-based), or "" out of range.
// Rules that need markup proximity (link tags, code formatting) consult
// this rather than fragment text.
func (rc *RuleContext) SourceLine(n int) string {
	return rc.Doc.SourceLine(n)
}

// FragmentLine returns the source line a fragment position maps to.
func (rc *RuleContext) FragmentLine(pos int) int {
	return rc.Doc.FragmentLine(pos)
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v := rc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a rule-specific string slice option, or the default.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := rc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// Handle []interface{} from YAML/JSON parsing
	if iface, ok := v.([]interface{}); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
