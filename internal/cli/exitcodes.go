package cli

import (
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/runner"
)

// Exit codes for gostylecheck.
const (
	// ExitSuccess indicates successful execution with no failing issues.
	ExitSuccess = 0

	// ExitCheckErrors indicates the check completed but found errors.
	ExitCheckErrors = 1

	// ExitCheckWarnings indicates the check completed and found issues
	// below error severity that the --fail-on threshold promotes to a
	// failure.
	ExitCheckWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code from the run result and the
// fail-on severity threshold. Errors always fail the run; warnings and
// info issues fail it only when failOn reaches down to them.
func ExitCodeFromResult(result *runner.Result, failOn config.Severity) int {
	if result == nil {
		return ExitSuccess
	}

	threshold := failOn.Rank()
	if threshold == 0 {
		threshold = config.SeverityError.Rank()
	}

	if result.Stats.IssuesBySeverity["error"] > 0 {
		return ExitCheckErrors
	}

	warnings := result.Stats.IssuesBySeverity["warning"]
	infos := result.Stats.IssuesBySeverity["info"]

	if threshold <= config.SeverityWarning.Rank() && warnings > 0 {
		return ExitCheckWarnings
	}
	if threshold <= config.SeverityInfo.Rank() && infos > 0 {
		return ExitCheckWarnings
	}

	return ExitSuccess
}
