package runner

import (
	"errors"
	"time"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/fix"
)

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the file that was processed.
	Path string

	// Check holds the issues found against the file's final content.
	// In fix mode this is the check result after all fix passes ran.
	// Nil when Error is set.
	Check *check.Result

	// Fix holds the fix pipeline result. Nil outside fix mode.
	Fix *fix.FileResult

	// Duration is how long processing this file took.
	Duration time.Duration

	// Error is set when the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files skipped because they changed
	// on disk while being fixed.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one issue.
	FilesWithIssues int

	// FilesModified is the number of files rewritten by fixes.
	FilesModified int

	// IssuesTotal is the total number of issues across all files.
	IssuesTotal int

	// IssuesFixable is the number of issues with an auto-fix.
	IssuesFixable int

	// IssuesFixed is the number of edits applied across all files. In
	// dry runs these edits were applied in memory only.
	IssuesFixed int

	// IssuesBySeverity maps severity levels to counts.
	IssuesBySeverity map[string]int

	// Elapsed is the wall-clock duration of the run, discovery included.
	Elapsed time.Duration
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each discovered file, in discovery
	// order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any issues with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesBySeverity["error"] > 0
}

// HasIssues reports whether any issues were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesTotal > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		IssuesBySeverity: make(map[string]int),
	}
}

// accumulate folds a file outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		// A file that changed underneath the fixer was left alone;
		// count it as skipped rather than failed.
		if errors.Is(outcome.Error, fix.ErrFileModified) {
			r.Stats.FilesSkipped++
		} else {
			r.Stats.FilesErrored++
		}
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Fix != nil {
		if outcome.Fix.Written {
			r.Stats.FilesModified++
		}
		r.Stats.IssuesFixed += len(outcome.Fix.Applied)
	}

	if outcome.Check == nil {
		return
	}

	issueCount := outcome.Check.IssueCount()
	r.Stats.IssuesTotal += issueCount
	r.Stats.IssuesFixable += outcome.Check.FixableCount()
	if issueCount > 0 {
		r.Stats.FilesWithIssues++
	}

	for _, issue := range outcome.Check.Issues {
		severity := string(issue.Severity)
		if severity == "" {
			severity = "warning"
		}
		r.Stats.IssuesBySeverity[severity]++
	}
}
