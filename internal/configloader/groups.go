// Package configloader provides configuration loading and resolution.
package configloader

import (
	"sort"
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/check"
)

// GroupSlug converts a reporting category name to its config key form:
// lowercase with underscores (e.g. "Writing Standards" becomes
// "writing_standards").
func GroupSlug(category string) string {
	return strings.ReplaceAll(strings.ToLower(category), " ", "_")
}

// normalizeGroupKey canonicalizes a user-supplied group key so that
// hyphenated and underscored spellings both match.
func normalizeGroupKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "-", "_")
}

// ExpandGroup resolves a config key naming a whole rule category to the
// sorted IDs of that category's rules. Returns false when the key names an
// individual rule (IDs, names, and aliases always win over groups) or no
// category matches.
func ExpandGroup(registry *check.Registry, key string) ([]string, bool) {
	if registry == nil {
		return nil, false
	}

	// An exact rule key is never treated as a group.
	if _, _, found := registry.Resolve(key); found {
		return nil, false
	}

	want := normalizeGroupKey(key)

	var ids []string
	for _, rule := range registry.Rules() {
		if GroupSlug(rule.Category()) == want {
			ids = append(ids, rule.ID())
		}
	}
	if len(ids) == 0 {
		return nil, false
	}

	sort.Strings(ids)
	return ids, true
}

// Groups returns the available category group keys with the rule IDs each
// expands to.
func Groups(registry *check.Registry) map[string][]string {
	if registry == nil {
		return nil
	}

	groups := make(map[string][]string)
	for _, rule := range registry.Rules() {
		slug := GroupSlug(rule.Category())
		groups[slug] = append(groups[slug], rule.ID())
	}
	for slug := range groups {
		sort.Strings(groups[slug])
	}
	return groups
}
