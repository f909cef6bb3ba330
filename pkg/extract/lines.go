package extract

import "sort"

// LineInfo describes the byte extent of one source line.
type LineInfo struct {
	// StartOffset is the offset of the first byte of the line.
	StartOffset int

	// NewlineStart is the offset where the line's newline sequence
	// begins (the end of the visible content).
	NewlineStart int

	// EndOffset is the offset just past the newline sequence.
	EndOffset int
}

// BuildLines constructs line metadata from raw content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineAt converts a byte offset to a 1-based line number using binary
// search. Offsets past the end resolve to the last line; invalid input
// resolves to line 1.
func LineAt(lines []LineInfo, offset int) int {
	if offset < 0 || len(lines) == 0 {
		return 1
	}

	if offset >= lines[len(lines)-1].EndOffset {
		return len(lines)
	}

	idx := sort.Search(len(lines), func(i int) bool {
		return lines[i].EndOffset > offset
	})
	if idx >= len(lines) {
		idx = len(lines) - 1
	}
	return idx + 1
}
