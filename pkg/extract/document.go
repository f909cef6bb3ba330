package extract

import "strings"

// Fragment is one unit of extracted text content: a trimmed, non-empty
// run of text attributed to a source line. Fragments are immutable once
// produced.
type Fragment struct {
	// Pos is the 1-based position of the fragment in extraction order.
	Pos int

	// Text is the trimmed text content. Never empty.
	Text string
}

// LineMap associates fragment positions with 1-based source line numbers.
// Multiple fragments may map to the same line.
type LineMap map[int]int

// Line returns the mapped source line for a fragment position.
// Positions with no mapping resolve to line 1.
func (m LineMap) Line(pos int) int {
	if line, ok := m[pos]; ok {
		return line
	}
	return 1
}

// Heading is a heading detected during extraction, in document order.
type Heading struct {
	// Level is the heading level, 1 through 6.
	Level int

	// Text is the trimmed heading text.
	Text string

	// Line is the 1-based source line the heading was attributed to.
	Line int
}

// Document is the extraction result consumed by the rule engine and the
// fixer. It is produced per check invocation and discarded afterwards.
type Document struct {
	// Path identifies the source file, when there is one.
	Path string

	// Raw is the unmodified input text.
	Raw string

	// SourceLines is Raw split on newlines. CRLF line endings keep
	// their carriage return; callers trim as needed.
	SourceLines []string

	// LineIndex maps byte offsets in Raw to line positions.
	LineIndex []LineInfo

	// Fragments is the ordered sequence of extracted text fragments.
	Fragments []Fragment

	// LineMap maps fragment positions to source lines.
	LineMap LineMap

	// Headings lists detected headings in document order.
	Headings []Heading
}

func newDocument(path, raw string) *Document {
	return &Document{
		Path:        path,
		Raw:         raw,
		SourceLines: strings.Split(raw, "\n"),
		LineIndex:   BuildLines([]byte(raw)),
		LineMap:     LineMap{},
	}
}

// append records a fragment with its attributed source line and returns
// the fragment's position.
func (d *Document) append(text string, line int) int {
	pos := len(d.Fragments) + 1
	d.Fragments = append(d.Fragments, Fragment{Pos: pos, Text: text})
	d.LineMap[pos] = line
	return pos
}

func (d *Document) addHeading(level int, text string, line int) {
	d.Headings = append(d.Headings, Heading{Level: level, Text: text, Line: line})
}

// FragmentLine returns the source line mapped for a fragment position.
func (d *Document) FragmentLine(pos int) int {
	return d.LineMap.Line(pos)
}

// SourceLine returns the 1-based source line content, without trimming.
// Out-of-range lines return the empty string.
func (d *Document) SourceLine(n int) string {
	if n < 1 || n > len(d.SourceLines) {
		return ""
	}
	return d.SourceLines[n-1]
}

// LineAtOffset converts a byte offset in Raw to a 1-based line number.
func (d *Document) LineAtOffset(offset int) int {
	return LineAt(d.LineIndex, offset)
}
