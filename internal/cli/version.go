package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	latest "github.com/tcnksm/go-latest"

	"github.com/yaklabco/gostylecheck/internal/logging"
)

// GitHub coordinates for the release check.
const (
	githubOwner = "yaklabco"
	githubRepo  = "gostylecheck"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	var checkLatest bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of gostylecheck.`,
		Run: func(_ *cobra.Command, _ []string) {
			logger := log.NewWithOptions(os.Stdout, log.Options{
				ReportTimestamp: false,
				ReportCaller:    false,
			})
			logger.SetLevel(log.InfoLevel)

			logger.Info("gostylecheck",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
			)

			if checkLatest {
				reportLatest(logger, info.Version)
			}
		},
	}

	cmd.Flags().BoolVar(&checkLatest, "check", false, "check GitHub for a newer release")

	return cmd
}

// reportLatest compares the running version against the newest GitHub
// tag. Failures are reported as warnings; a dev build is never compared.
func reportLatest(logger *log.Logger, version string) {
	if version == "" || version == "dev" {
		logger.Warn("development build, skipping release check")
		return
	}

	githubTag := &latest.GithubTag{
		Owner:      githubOwner,
		Repository: githubRepo,
	}

	res, err := latest.Check(githubTag, version)
	if err != nil {
		logger.Warn("release check failed", logging.FieldError, err)
		return
	}

	if res.Outdated {
		logger.Warn("a newer release is available",
			"current", version,
			"latest", res.Current,
		)
		return
	}

	logger.Info("you are on the latest release", logging.FieldVersion, version)
}
