package extract

import (
	"strings"

	"github.com/beevik/etree"
)

// parseStrict attempts strict structural parsing. The first attempt reads
// the input as-is and is accepted only when the result is single-rooted;
// otherwise a second attempt wraps the input in a synthetic root so
// sibling-at-top-level documents remain parseable and loose top-level text
// survives as tail text. The boolean result is the only failure signal.
func parseStrict(markup string) (*etree.Document, bool) {
	tree := etree.NewDocument()
	if err := tree.ReadFromString(markup); err == nil && singleRooted(tree) {
		return tree, true
	}

	wrapped := etree.NewDocument()
	if err := wrapped.ReadFromString("<root>" + markup + "</root>"); err == nil && wrapped.Root() != nil {
		return wrapped, true
	}

	return nil, false
}

// singleRooted reports whether the parsed document has exactly one
// top-level element and no stray top-level text.
func singleRooted(tree *etree.Document) bool {
	if len(tree.ChildElements()) != 1 {
		return false
	}
	for _, child := range tree.Child {
		if cd, ok := child.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return false
		}
	}
	return true
}

// extractTree walks the parsed tree in document order.
func extractTree(doc *Document, tree *etree.Document) {
	for _, el := range tree.ChildElements() {
		walkElement(doc, el)
	}
}

// walkElement emits the element's direct text, then recurses into child
// elements, emitting each child's tail text after the child itself so the
// document order of text segments is preserved. Heading-tagged elements
// register a Heading entry with the same fragment text.
func walkElement(doc *Document, el *etree.Element) {
	if text := strings.TrimSpace(el.Text()); text != "" {
		pos := doc.append(text, locateLine(doc.SourceLines, text))
		if level, ok := headingLevel(el.Tag); ok {
			doc.addHeading(level, text, doc.FragmentLine(pos))
		}
	}

	for _, child := range el.ChildElements() {
		walkElement(doc, child)
		if tail := strings.TrimSpace(child.Tail()); tail != "" {
			doc.append(tail, locateLine(doc.SourceLines, tail))
		}
	}
}
