// Package main is the entry point for the gostylecheck CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gostylecheck/internal/cli"
	"github.com/yaklabco/gostylecheck/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/gostylecheck/pkg/check/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrIssuesFound is just a signal for the exit code; the issues
		// themselves were already reported.
		if !errors.Is(err, cli.ErrIssuesFound) {
			logging.Default().Error(err.Error())
		}
		return exitCodeForError(err)
	}

	return cli.ExitSuccess
}

// exitCodeForError maps an execution error to a BSD-style exit code.
func exitCodeForError(err error) int {
	if errors.Is(err, cli.ErrIssuesFound) {
		return cli.ExitCheckErrors
	}
	return cli.ExitInternalError
}
