package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/extract"
	"github.com/yaklabco/gostylecheck/pkg/styleguide"
)

// parseGuide builds a style guide from YAML, with defaults applied the
// way loading from disk would.
func parseGuide(t *testing.T, yamlText string) *styleguide.Guide {
	t.Helper()
	guide, err := styleguide.Parse([]byte(yamlText))
	require.NoError(t, err)
	return guide
}

// grammarGuide enables the grammar-level checks most writing tests need.
func grammarGuide(t *testing.T) *styleguide.Guide {
	t.Helper()
	return parseGuide(t, `
style_guide:
  grammar_and_mechanics:
    voice_and_mood:
      preferred_voice: active
    contractions:
      policy: use_sparingly
    capitalization:
      headings: sentence_case
    punctuation:
      oxford_comma: required
      hyphenate_compounds: true
      quote_style: double
    lists:
      style: imperative
`)
}

// checkFragments runs a fragment rule over every fragment of content,
// extracted as the given path dictates.
func checkFragments(t *testing.T, rule check.FragmentRule, path, content string, guide *styleguide.Guide) []check.Issue {
	t.Helper()

	doc := extract.ExtractFile(path, []byte(content))
	rc := check.NewRuleContext(context.Background(), doc, guide, config.NewConfig(), nil)

	var issues []check.Issue
	for _, frag := range doc.Fragments {
		got, err := rule.CheckFragment(rc, frag)
		require.NoError(t, err)
		issues = append(issues, got...)
	}
	return issues
}

// checkDocument runs a document rule over the extracted content.
func checkDocument(t *testing.T, rule check.DocumentRule, path, content string, guide *styleguide.Guide) []check.Issue {
	t.Helper()

	doc := extract.ExtractFile(path, []byte(content))
	rc := check.NewRuleContext(context.Background(), doc, guide, config.NewConfig(), nil)

	issues, err := rule.CheckDocument(rc)
	require.NoError(t, err)
	return issues
}
