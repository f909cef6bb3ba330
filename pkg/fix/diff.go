package fix

import (
	"fmt"
	"strings"
)

// Diff is the unified diff between a document and its fixed revision.
// Dry runs and --diff render it instead of touching the file.
type Diff struct {
	// Path names the document, used in the diff headers.
	Path string

	// Original is the document before fixing.
	Original []byte

	// Modified is the document after fixing.
	Modified []byte

	// Hunks are the changed regions, each padded with context lines.
	Hunks []DiffHunk

	// Additions counts "+" lines across all hunks.
	Additions int

	// Deletions counts "-" lines across all hunks.
	Deletions int
}

// DiffHunk is one changed region with surrounding context.
type DiffHunk struct {
	// OriginalStart is the hunk's 1-based first line in the original.
	OriginalStart int

	// OriginalCount is how many original lines the hunk spans.
	OriginalCount int

	// ModifiedStart is the hunk's 1-based first line in the revision.
	ModifiedStart int

	// ModifiedCount is how many revised lines the hunk spans.
	ModifiedCount int

	// Lines holds the hunk body, prefixes stripped.
	Lines []DiffLine
}

// DiffLine is one body line of a hunk.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffLineKind classifies a hunk body line.
type DiffLineKind int

const (
	// DiffLineContext is a line present in both versions.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line only the fixed revision has.
	DiffLineAdd

	// DiffLineRemove is a line only the original has.
	DiffLineRemove
)

// contextLines pads each hunk on both sides.
const contextLines = 3

// GenerateDiff diffs a document against its fixed revision. Line edits
// show up as paired remove/add lines; since fixing preserves the line
// count, hunks from the fix pipeline always start at the same line in
// both versions. Returns nil when nothing changed.
func GenerateDiff(path string, original, modified []byte) *Diff {
	if len(original) == 0 && len(modified) == 0 {
		return nil
	}

	origLines := splitLines(original)
	modLines := splitLines(modified)

	ops := diffOps(origLines, modLines)
	hunks := collectHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{
		Path:     path,
		Original: original,
		Modified: modified,
		Hunks:    hunks,
	}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				d.Additions++
			case DiffLineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String renders the hunks in unified format, file headers included but
// without the git header line.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)
		for _, line := range hunk.Lines {
			b.WriteByte(linePrefix(line.Kind))
			b.WriteString(line.Content)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// FullString renders the diff with the git header on top.
func (d *Diff) FullString() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// HasChanges reports whether any hunks exist.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

func linePrefix(kind DiffLineKind) byte {
	switch kind {
	case DiffLineAdd:
		return '+'
	case DiffLineRemove:
		return '-'
	default:
		return ' '
	}
}

// splitLines breaks content on LF; a trailing newline does not produce
// a phantom empty last line.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOp is one step of the line-level diff.
type diffOp struct {
	kind    DiffLineKind
	content string
}

// diffOps computes the per-line operation sequence via a longest common
// subsequence table, backtracking from the end and emitting adds before
// removes so that each changed run reads remove-then-add once the
// sequence is reversed into forward order.
func diffOps(orig, mod []string) []diffOp {
	origLen, modLen := len(orig), len(mod)

	table := make([][]int, origLen+1)
	for i := range table {
		table[i] = make([]int, modLen+1)
	}
	for i := 1; i <= origLen; i++ {
		for j := 1; j <= modLen; j++ {
			if orig[i-1] == mod[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else {
				table[i][j] = max(table[i-1][j], table[i][j-1])
			}
		}
	}

	var reversed []diffOp
	i, j := origLen, modLen
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && orig[i-1] == mod[j-1]:
			reversed = append(reversed, diffOp{DiffLineContext, orig[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || table[i][j-1] >= table[i-1][j]):
			reversed = append(reversed, diffOp{DiffLineAdd, mod[j-1]})
			j--
		default:
			reversed = append(reversed, diffOp{DiffLineRemove, orig[i-1]})
			i--
		}
	}

	ops := make([]diffOp, len(reversed))
	for k, op := range reversed {
		ops[len(reversed)-1-k] = op
	}
	return ops
}

// collectHunks walks the operation sequence once, opening a hunk at each
// change, padding it with context, and merging changes whose context
// windows would touch or overlap.
func collectHunks(ops []diffOp) []DiffHunk {
	var hunks []DiffHunk

	// origLine and modLine track the 1-based line number each op index
	// corresponds to in the two versions.
	origLine, modLine := 1, 1
	lineAt := make([][2]int, len(ops))
	for k, op := range ops {
		lineAt[k] = [2]int{origLine, modLine}
		if op.kind != DiffLineAdd {
			origLine++
		}
		if op.kind != DiffLineRemove {
			modLine++
		}
	}

	for k := 0; k < len(ops); {
		if ops[k].kind == DiffLineContext {
			k++
			continue
		}

		// Extend over subsequent changes separated by at most two
		// context windows.
		end := k + 1
		gap := 0
		for scan := end; scan < len(ops); scan++ {
			if ops[scan].kind == DiffLineContext {
				gap++
				if gap > contextLines*2 {
					break
				}
				continue
			}
			end = scan + 1
			gap = 0
		}

		start := max(k-contextLines, 0)
		stop := min(end+contextLines, len(ops))

		hunk := DiffHunk{
			OriginalStart: lineAt[start][0],
			ModifiedStart: lineAt[start][1],
		}
		for _, op := range ops[start:stop] {
			hunk.Lines = append(hunk.Lines, DiffLine{Kind: op.kind, Content: op.content})
			if op.kind != DiffLineAdd {
				hunk.OriginalCount++
			}
			if op.kind != DiffLineRemove {
				hunk.ModifiedCount++
			}
		}
		hunks = append(hunks, hunk)

		k = stop
	}

	return hunks
}
