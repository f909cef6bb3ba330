package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlainText(t *testing.T) {
	input := "First line.\n\nThird line.\n   \nFifth line."

	doc := Extract(input)

	require.Len(t, doc.Fragments, 3)
	assert.Equal(t, "First line.", doc.Fragments[0].Text)
	assert.Equal(t, "Third line.", doc.Fragments[1].Text)
	assert.Equal(t, "Fifth line.", doc.Fragments[2].Text)

	// Plain text maps each fragment to its own source line.
	assert.Equal(t, 1, doc.FragmentLine(1))
	assert.Equal(t, 3, doc.FragmentLine(2))
	assert.Equal(t, 5, doc.FragmentLine(3))
	assert.Empty(t, doc.Headings)
}

func TestExtractPlainTextRoundTrip(t *testing.T) {
	input := "alpha\nbeta\n\ngamma"

	doc := Extract(input)

	var nonBlank []string
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) != "" {
			nonBlank = append(nonBlank, strings.TrimSpace(line))
		}
	}
	require.Len(t, doc.Fragments, len(nonBlank))
	for i, frag := range doc.Fragments {
		assert.Equal(t, nonBlank[i], frag.Text)
		assert.Equal(t, i+1, frag.Pos)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\n"} {
		doc := Extract(input)
		assert.Empty(t, doc.Fragments)
		assert.Empty(t, doc.Headings)
	}
}

func TestExtractStrictXML(t *testing.T) {
	input := "<doc>\n<h1>Overview</h1>\n<p>Body text here.</p>\n</doc>"

	doc := Extract(input)

	require.Len(t, doc.Fragments, 2)
	assert.Equal(t, "Overview", doc.Fragments[0].Text)
	assert.Equal(t, "Body text here.", doc.Fragments[1].Text)
	assert.Equal(t, 2, doc.FragmentLine(1))
	assert.Equal(t, 3, doc.FragmentLine(2))

	require.Len(t, doc.Headings, 1)
	assert.Equal(t, 1, doc.Headings[0].Level)
	assert.Equal(t, "Overview", doc.Headings[0].Text)
	assert.Equal(t, 2, doc.Headings[0].Line)
}

func TestExtractTailText(t *testing.T) {
	input := "<p>Leading <b>bold</b> trailing text.</p>"

	doc := Extract(input)

	require.Len(t, doc.Fragments, 3)
	assert.Equal(t, "Leading", doc.Fragments[0].Text)
	assert.Equal(t, "bold", doc.Fragments[1].Text)
	assert.Equal(t, "trailing text.", doc.Fragments[2].Text)
}

func TestExtractSiblingRoots(t *testing.T) {
	// No single root: the synthetic-root retry must make this parseable.
	input := "<h2>First</h2>\n<p>One.</p>\n<h2>Second</h2>\n<p>Two.</p>"

	doc := Extract(input)

	require.Len(t, doc.Fragments, 4)
	require.Len(t, doc.Headings, 2)
	assert.Equal(t, 2, doc.Headings[0].Level)
	assert.Equal(t, "First", doc.Headings[0].Text)
	assert.Equal(t, "Second", doc.Headings[1].Text)
	assert.Equal(t, 3, doc.Headings[1].Line)
}

func TestExtractMalformedFallsBack(t *testing.T) {
	// Unclosed tag defeats strict parsing even with a synthetic root.
	input := "<doc>\n<h1>Title\n<p>Paragraph text.\n</doc>"

	doc := Extract(input)

	require.NotEmpty(t, doc.Fragments)
	texts := make([]string, 0, len(doc.Fragments))
	for _, f := range doc.Fragments {
		texts = append(texts, f.Text)
	}
	assert.Contains(t, texts, "Title")
	assert.Contains(t, texts, "Paragraph text.")
}

func TestExtractPermissiveHeadingTracking(t *testing.T) {
	input := "<h2>Broken <heading\n<p>after</p>"

	doc := Extract(input)

	require.NotEmpty(t, doc.Headings)
	assert.Equal(t, 2, doc.Headings[0].Level)
}

func TestExtractPermissiveHeadingCloseClears(t *testing.T) {
	// Malformed enough to force the permissive path; text after the
	// closing tag must not register as a heading.
	input := "<doc>\n<h3>Inside</h3>\nOutside text\n<p>unclosed\n"

	doc := Extract(input)

	require.Len(t, doc.Headings, 1)
	assert.Equal(t, "Inside", doc.Headings[0].Text)
	assert.Equal(t, 3, doc.Headings[0].Level)
}

func TestExtractUnlocatableTextMapsToLineOne(t *testing.T) {
	// Element text spanning two source lines is trimmed into a fragment
	// that no single line contains.
	input := "<doc><p>first piece\nsecond piece</p></doc>"

	doc := Extract(input)

	require.Len(t, doc.Fragments, 1)
	assert.Equal(t, "first piece\nsecond piece", doc.Fragments[0].Text)
	assert.Equal(t, 1, doc.FragmentLine(1))
}

func TestExtractDuplicateTextCollapsesToFirstLine(t *testing.T) {
	input := "<doc>\n<p>repeat</p>\n<p>repeat</p>\n</doc>"

	doc := Extract(input)

	require.Len(t, doc.Fragments, 2)
	assert.Equal(t, 2, doc.FragmentLine(1))
	assert.Equal(t, 2, doc.FragmentLine(2))
}

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		tag   string
		level int
		ok    bool
	}{
		{"h1", 1, true},
		{"h6", 6, true},
		{"H2", 2, true},
		{"h7", 0, false},
		{"h0", 0, false},
		{"p", 0, false},
		{"header", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		level, ok := headingLevel(tt.tag)
		assert.Equal(t, tt.ok, ok, "tag %q", tt.tag)
		assert.Equal(t, tt.level, level, "tag %q", tt.tag)
	}
}

func TestLineMapDefaultsToLineOne(t *testing.T) {
	m := LineMap{1: 4}
	assert.Equal(t, 4, m.Line(1))
	assert.Equal(t, 1, m.Line(2))
	assert.Equal(t, 1, m.Line(99))
}

func TestExtractFileDispatch(t *testing.T) {
	md := ExtractFile("notes.md", []byte("# Title\n\nBody."))
	require.Len(t, md.Headings, 1)
	assert.Equal(t, "notes.md", md.Path)

	xml := ExtractFile("doc.xml", []byte("<doc><p>Body.</p></doc>"))
	require.Len(t, xml.Fragments, 1)
	assert.Equal(t, "doc.xml", xml.Path)
}

func TestExtractIsDeterministic(t *testing.T) {
	input := "<doc>\n<h1>Overview</h1>\n<p>Some text with <b>markup</b> inside.</p>\n</doc>"

	first := Extract(input)
	second := Extract(input)

	assert.Equal(t, first.Fragments, second.Fragments)
	assert.Equal(t, first.LineMap, second.LineMap)
	assert.Equal(t, first.Headings, second.Headings)
}
