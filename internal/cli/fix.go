package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gostylecheck/internal/logging"
	"github.com/yaklabco/gostylecheck/pkg/config"
)

type fixFlags struct {
	checkFlags

	diff       bool
	confidence string
	fixRules   []string
}

func newFixCommand() *cobra.Command {
	var cfg config.Config
	flags := &fixFlags{}

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Automatically fix style issues",
		Long:  fixLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, args, &cfg, flags)
		},
	}

	addCheckFlags(cmd, &cfg, &flags.checkFlags)

	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "show changes as a unified diff")
	cmd.Flags().StringVar(&flags.confidence, "confidence", "",
		"minimum edit confidence to apply: high, medium, low (default medium)")
	cmd.Flags().StringSliceVar(&flags.fixRules, "rules", nil, "limit fixing to specific rule IDs")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when fixing")

	return cmd
}

const fixLongDescription = `Fix auto-fixable style issues in place.

Each file is checked, fixable issues are turned into literal text edits,
and the edits are applied line by line. Fixing never changes a file's
line count, and by default every modified file gets a sidecar backup.

Edits carry a confidence level. High and medium confidence edits are
applied by default; low confidence edits (such as passive-voice
rewrites) only with --confidence low.

Examples:
  gostylecheck fix                        # Fix current directory
  gostylecheck fix --dry-run --diff       # Preview changes as a diff
  gostylecheck fix --rules oxford_comma   # Only fix Oxford commas
  gostylecheck fix --confidence high      # Apply only lossless fixes
  gostylecheck fix --no-backups           # Skip sidecar backups`

func runFix(cmd *cobra.Command, args []string, cfg *config.Config, flags *fixFlags) error {
	logger := logging.Default()

	cfg.Fix = true
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.FixRules = flags.fixRules

	if flags.confidence != "" {
		confidence, err := config.ParseFixConfidence(flags.confidence)
		if err != nil {
			return fmt.Errorf("invalid --confidence: %w", err)
		}
		cfg.Confidence = confidence
	}

	if flags.diff {
		if cmd.Flags().Changed("format") && flags.format != string(config.FormatDiff) {
			return fmt.Errorf("--diff and --format %s are mutually exclusive", flags.format)
		}
		flags.format = string(config.FormatDiff)
	}
	cfg.Format = config.OutputFormat(flags.format)

	if flags.failOn != "" {
		failOn, err := config.ParseSeverity(flags.failOn)
		if err != nil {
			return fmt.Errorf("invalid --fail-on: %w", err)
		}
		cfg.FailOn = failOn
	}

	result, finalCfg, err := runStyleCheck(cmd, args, cfg)
	if err != nil {
		return err
	}

	logger.Debug("fix run complete",
		logging.FieldFilesModified, result.Stats.FilesModified,
		logging.FieldIssuesFixed, result.Stats.IssuesFixed,
	)

	if err := reportResult(cmd, result, finalCfg, &flags.checkFlags); err != nil {
		return err
	}

	// Exit code reflects what is still wrong after fixing.
	if ExitCodeFromResult(result, finalCfg.FailOn) != ExitSuccess {
		return ErrIssuesFound
	}

	return nil
}
