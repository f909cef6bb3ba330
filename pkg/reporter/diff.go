package reporter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/yaklabco/gostylecheck/internal/ui/pretty"
	"github.com/yaklabco/gostylecheck/pkg/fix"
	"github.com/yaklabco/gostylecheck/pkg/runner"
)

// DiffReporter formats proposed or applied edits as unified diffs.
type DiffReporter struct {
	opts   Options
	out    io.Writer
	header *color.Color
	hunk   *color.Color
	add    *color.Color
	remove *color.Color
	path   *color.Color
	errTxt *color.Color
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	enabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	paint := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}

	return &DiffReporter{
		opts:   opts,
		out:    opts.Writer,
		header: paint(color.FgCyan, color.Bold),
		hunk:   paint(color.FgMagenta),
		add:    paint(color.FgGreen),
		remove: paint(color.FgRed),
		path:   paint(color.Bold),
		errTxt: paint(color.FgRed, color.Bold),
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	var filesWithDiffs int
	var totalAdditions, totalDeletions int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.out, "%s: %s\n",
				r.path.Sprint(file.Path),
				r.errTxt.Sprintf("error: %v", file.Error),
			)
			continue
		}

		if file.Fix == nil || file.Fix.Diff == nil || !file.Fix.Diff.HasChanges() {
			continue
		}

		filesWithDiffs++
		totalAdditions += file.Fix.Diff.Additions
		totalDeletions += file.Fix.Diff.Deletions
		r.writeDiff(file.Fix.Diff)
	}

	// Write summary if there were any diffs.
	if filesWithDiffs > 0 && r.opts.ShowSummary {
		r.writeSummary(filesWithDiffs, totalAdditions, totalDeletions)
	}

	return filesWithDiffs, nil
}

// writeDiff outputs a single file's diff with formatting.
func (r *DiffReporter) writeDiff(diff *fix.Diff) {
	// Use relative path for display if possible.
	displayPath := relativePath(diff.Path)

	// Git-style header: "diff --git a/file b/file"
	fmt.Fprintln(r.out, r.header.Sprintf("diff --git a/%s b/%s", displayPath, displayPath))

	// Write --- and +++ headers with relative path.
	fmt.Fprintln(r.out, r.remove.Sprint("--- a/"+displayPath))
	fmt.Fprintln(r.out, r.add.Sprint("+++ b/"+displayPath))

	// Colorize the hunk content (skip the --- and +++ lines from String()).
	lines := strings.Split(diff.String(), "\n")
	for _, line := range lines {
		if line == "" || strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			continue
		}
		r.writeDiffLine(line)
	}

	fmt.Fprintln(r.out) // Blank line between files
}

// relativePath converts an absolute path to a relative path from the current directory.
// If the relative path would require too many "../" traversals, use the basename instead.
func relativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return filepath.Base(path)
	}
	// If relative path has too many parent traversals, just use basename.
	if strings.Count(rel, "..") > 2 {
		return filepath.Base(path)
	}
	return rel
}

// writeDiffLine formats a single diff line with color.
func (r *DiffReporter) writeDiffLine(line string) {
	switch {
	case strings.HasPrefix(line, "@@"):
		fmt.Fprintln(r.out, r.hunk.Sprint(line))
	case strings.HasPrefix(line, "+"):
		fmt.Fprintln(r.out, r.add.Sprint(line))
	case strings.HasPrefix(line, "-"):
		fmt.Fprintln(r.out, r.remove.Sprint(line))
	default:
		fmt.Fprintln(r.out, line)
	}
}

// writeSummary writes a summary line at the end.
func (r *DiffReporter) writeSummary(files, additions, deletions int) {
	var parts []string

	fileWord := "files"
	if files == 1 {
		fileWord = "file"
	}
	parts = append(parts, fmt.Sprintf("%d %s changed", files, fileWord))

	if additions > 0 {
		insertionWord := "insertions"
		if additions == 1 {
			insertionWord = "insertion"
		}
		parts = append(parts, r.add.Sprintf("%d %s(+)", additions, insertionWord))
	}

	if deletions > 0 {
		deletionWord := "deletions"
		if deletions == 1 {
			deletionWord = "deletion"
		}
		parts = append(parts, r.remove.Sprintf("%d %s(-)", deletions, deletionWord))
	}

	fmt.Fprintln(r.out, strings.Join(parts, ", "))
}
