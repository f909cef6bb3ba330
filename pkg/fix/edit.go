// Package fix derives and applies literal, line-scoped edits for
// auto-fixable style issues. Propose maps issues to Edits through a
// per-rule strategy table; Apply replays Edits against a line-indexed
// copy of the source text.
package fix

import (
	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
)

// Edit is a single literal replacement on one source line.
type Edit struct {
	// Issue is the style issue this edit resolves.
	Issue check.Issue

	// Line is the 1-based line the edit targets.
	Line int

	// Original is the exact text to locate on the line. Only the first
	// occurrence is replaced.
	Original string

	// Replacement is the text that takes its place. Empty means the
	// original text is removed.
	Replacement string

	// Description names the transformation for diff and dry-run output.
	Description string

	// Confidence grades how mechanical the transformation is. The fix
	// pipeline applies an edit only when its confidence meets the
	// configured threshold.
	Confidence config.FixConfidence
}
