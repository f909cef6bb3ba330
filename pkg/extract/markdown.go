package extract

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractMarkdown converts Markdown source into a Document by walking the
// goldmark AST. Unlike the markup strategies, line attribution here uses
// exact byte offsets resolved through the document's line index.
func ExtractMarkdown(path string, source []byte) *Document {
	doc := newDocument(path, string(source))
	if strings.TrimSpace(doc.Raw) == "" {
		return doc
	}

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			txt := strings.TrimSpace(nodeText(node, source))
			if txt == "" {
				return ast.WalkSkipChildren, nil
			}
			line := nodeLine(doc, node)
			doc.append(txt, line)
			doc.addHeading(node.Level, txt, line)
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph, *ast.TextBlock:
			txt := strings.TrimSpace(nodeText(n, source))
			if txt == "" {
				return ast.WalkSkipChildren, nil
			}
			doc.append(txt, nodeLine(doc, n))
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			doc.append(fencedBlockText(node, source), nodeLine(doc, node))
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return doc
}

// nodeText collects the plain text content of a node and its descendants.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.AutoLink:
			b.Write(t.URL(source))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// nodeLine attributes a node to the source line of its first segment.
// Fenced code blocks are attributed to the opening fence, one line above
// the first body segment. Nodes without segments fall back to line 1.
func nodeLine(doc *Document, n ast.Node) int {
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return 1
	}
	line := doc.LineAtOffset(lines.At(0).Start)
	if _, ok := n.(*ast.FencedCodeBlock); ok && line > 1 {
		return line - 1
	}
	return line
}

// fencedBlockText reconstructs a fenced code block, fences included, so
// downstream document checks see the block the same way they would in a
// plain-text or markup source.
func fencedBlockText(node *ast.FencedCodeBlock, source []byte) string {
	var b strings.Builder
	b.WriteString("```")
	if node.Info != nil {
		b.Write(node.Info.Segment.Value(source))
	}
	b.WriteByte('\n')
	body := node.Lines()
	for i := 0; i < body.Len(); i++ {
		seg := body.At(i)
		v := seg.Value(source)
		b.Write(v)
		if len(v) == 0 || v[len(v)-1] != '\n' {
			b.WriteByte('\n')
		}
	}
	b.WriteString("```")
	return b.String()
}
