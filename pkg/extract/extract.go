// Package extract normalizes markup documents into a flat, line-traceable
// text stream. It produces ordered text fragments, a fragment-to-line map,
// and the headings detected along the way.
//
// Three strategies cover arbitrary input: plain-text splitting when the
// input carries no markup, strict XML parsing (retried once with a
// synthetic root), and a permissive streaming tag scan for malformed
// markup. Markdown files use a fourth, offset-exact strategy built on
// goldmark. Extraction never fails; each strategy's failure is an explicit
// result that selects the next fallback.
package extract

import (
	"path/filepath"
	"strings"
)

// Extract converts raw markup or plain text into a Document.
//
// Input whose trimmed form does not start with a tag is treated as plain
// text. Otherwise the strict XML strategy runs first and the permissive
// scanner absorbs whatever it rejects.
func Extract(markup string) *Document {
	doc := newDocument("", markup)

	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return doc
	}
	if !strings.HasPrefix(trimmed, "<") {
		extractPlain(doc)
		return doc
	}

	if tree, ok := parseStrict(markup); ok {
		extractTree(doc, tree)
		return doc
	}

	extractPermissive(doc)
	return doc
}

// ExtractFile extracts content according to the file's extension.
// Markdown sources use the goldmark strategy; everything else flows
// through Extract.
func ExtractFile(path string, content []byte) *Document {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return ExtractMarkdown(path, content)
	default:
		doc := Extract(string(content))
		doc.Path = path
		return doc
	}
}

// extractPlain splits the input on line breaks. Each non-blank line
// becomes one fragment mapped to its own 1-based source line.
func extractPlain(doc *Document) {
	for i, line := range doc.SourceLines {
		if text := strings.TrimSpace(line); text != "" {
			doc.append(text, i+1)
		}
	}
}

// locateLine returns the 1-based index of the first source line containing
// text as a literal substring, or 1 when no line does. Best effort:
// repeated identical fragments collapse onto the first occurrence.
func locateLine(lines []string, text string) int {
	for i, line := range lines {
		if strings.Contains(line, text) {
			return i + 1
		}
	}
	return 1
}

// headingLevel reports whether tag names a heading element and at which
// level.
func headingLevel(tag string) (int, bool) {
	if len(tag) != 2 {
		return 0, false
	}
	if tag[0] != 'h' && tag[0] != 'H' {
		return 0, false
	}
	if tag[1] < '1' || tag[1] > '6' {
		return 0, false
	}
	return int(tag[1] - '0'), true
}
