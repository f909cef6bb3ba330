package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// extractPermissive scans the input as a stream of text and tag events.
// It accepts any input: the tokenizer treats malformed markup as text or
// skips it, so this strategy cannot fail.
//
// Heading tracking is depth-one: entering any heading tag sets the current
// level (re-entrant headings simply update it), and a matching close tag
// clears it. Text encountered inside a heading context is recorded as a
// Heading as well as a fragment.
func extractPermissive(doc *Document) {
	z := html.NewTokenizer(strings.NewReader(doc.Raw))
	headingAt := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or an unrecoverable scan state; either way the
			// stream is done.
			return

		case html.StartTagToken:
			name, _ := z.TagName()
			if level, ok := headingLevel(string(name)); ok {
				headingAt = level
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if _, ok := headingLevel(string(name)); ok {
				headingAt = 0
			}

		case html.TextToken:
			text := strings.TrimSpace(string(z.Text()))
			if text == "" {
				continue
			}
			pos := doc.append(text, locateLine(doc.SourceLines, text))
			if headingAt > 0 {
				doc.addHeading(headingAt, text, doc.FragmentLine(pos))
			}
		}
	}
}
