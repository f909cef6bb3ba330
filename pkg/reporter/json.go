package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gostylecheck/pkg/runner"
)

// Severity string constants.
const (
	severityWarning = "warning"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string      `json:"path"`
	Issues   []JSONIssue `json:"issues"`
	Modified bool        `json:"modified,omitempty"`
	Fixed    int         `json:"fixed,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// JSONIssue represents a single issue.
type JSONIssue struct {
	RuleID       string `json:"ruleId"`
	RuleName     string `json:"ruleName"`
	Category     string `json:"category,omitempty"`
	Severity     string `json:"severity"`
	Message      string `json:"message"`
	Line         int    `json:"line"`
	OriginalText string `json:"originalText,omitempty"`
	Suggestion   string `json:"suggestion,omitempty"`
	Fixable      bool   `json:"fixable"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesModified   int            `json:"filesModified"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	TotalFixed      int            `json:"totalFixed,omitempty"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	// Pre-allocate if we have files
	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:   file.Path,
			Issues: make([]JSONIssue, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Fix != nil {
			fileResult.Modified = file.Fix.Written
			fileResult.Fixed = len(file.Fix.Applied)
			output.Summary.TotalFixed += fileResult.Fixed
		}

		if file.Check != nil {
			for _, issue := range file.Check.Issues {
				fileResult.Issues = append(fileResult.Issues, JSONIssue{
					RuleID:       issue.RuleID,
					RuleName:     issue.RuleName,
					Category:     issue.Category,
					Severity:     string(issue.Severity),
					Message:      issue.Message,
					Line:         issue.Line,
					OriginalText: issue.OriginalText,
					Suggestion:   issue.Suggestion,
					Fixable:      issue.AutoFixable,
				})
				output.Summary.TotalIssues++

				severity := string(issue.Severity)
				if severity == "" {
					severity = severityWarning
				}
				output.Summary.BySeverity[severity]++
			}
		}

		if len(fileResult.Issues) > 0 {
			output.Summary.FilesWithIssues++
		}
		if fileResult.Modified {
			output.Summary.FilesModified++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
