package fix

import (
	"sort"
	"strings"
)

// Apply replays edits against a line-indexed copy of originalText and
// returns the revised text. Lines are processed in descending target
// order so earlier edits never shift the lines later ones address.
//
// Within one line, the first literal occurrence of an edit's original
// text is replaced. Several edits may target the same line; each runs
// against the line as the previous edits left it, so overlapping spans
// resolve in favor of the edit applied last.
//
// Edits are skipped without error when their target line falls outside
// the text, when their original text is empty or absent from the line,
// or when either side of the replacement contains a line break. The
// line count of the text never changes.
func Apply(originalText string, edits []Edit) string {
	if len(edits) == 0 {
		return originalText
	}

	lines := strings.Split(originalText, "\n")

	ordered := make([]Edit, len(edits))
	copy(ordered, edits)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Line > ordered[j].Line
	})

	for _, e := range ordered {
		if e.Line < 1 || e.Line > len(lines) {
			continue
		}
		if e.Original == "" ||
			strings.ContainsRune(e.Original, '\n') ||
			strings.ContainsRune(e.Replacement, '\n') {
			continue
		}
		lines[e.Line-1] = strings.Replace(lines[e.Line-1], e.Original, e.Replacement, 1)
	}

	return strings.Join(lines, "\n")
}
