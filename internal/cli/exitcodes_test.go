package cli

import (
	"testing"

	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/runner"
)

func resultWithSeverities(errors, warnings, infos int) *runner.Result {
	return &runner.Result{
		Stats: runner.Stats{
			IssuesBySeverity: map[string]int{
				"error":   errors,
				"warning": warnings,
				"info":    infos,
			},
		},
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   *runner.Result
		failOn   config.Severity
		expected int
	}{
		{
			name:     "nil result",
			result:   nil,
			failOn:   config.SeverityError,
			expected: ExitSuccess,
		},
		{
			name:     "clean run",
			result:   resultWithSeverities(0, 0, 0),
			failOn:   config.SeverityError,
			expected: ExitSuccess,
		},
		{
			name:     "errors always fail",
			result:   resultWithSeverities(2, 0, 0),
			failOn:   config.SeverityError,
			expected: ExitCheckErrors,
		},
		{
			name:     "warnings ignored at error threshold",
			result:   resultWithSeverities(0, 3, 1),
			failOn:   config.SeverityError,
			expected: ExitSuccess,
		},
		{
			name:     "warnings fail at warning threshold",
			result:   resultWithSeverities(0, 3, 0),
			failOn:   config.SeverityWarning,
			expected: ExitCheckWarnings,
		},
		{
			name:     "info ignored at warning threshold",
			result:   resultWithSeverities(0, 0, 5),
			failOn:   config.SeverityWarning,
			expected: ExitSuccess,
		},
		{
			name:     "info fails at info threshold",
			result:   resultWithSeverities(0, 0, 1),
			failOn:   config.SeverityInfo,
			expected: ExitCheckWarnings,
		},
		{
			name:     "errors outrank warning threshold",
			result:   resultWithSeverities(1, 4, 2),
			failOn:   config.SeverityWarning,
			expected: ExitCheckErrors,
		},
		{
			name:     "empty threshold defaults to error",
			result:   resultWithSeverities(0, 2, 0),
			failOn:   config.Severity(""),
			expected: ExitSuccess,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ExitCodeFromResult(tc.result, tc.failOn)
			if got != tc.expected {
				t.Errorf("ExitCodeFromResult() = %d, want %d", got, tc.expected)
			}
		})
	}
}
