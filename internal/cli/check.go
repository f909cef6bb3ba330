package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gostylecheck/internal/configloader"
	"github.com/yaklabco/gostylecheck/internal/logging"
	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/reporter"
	"github.com/yaklabco/gostylecheck/pkg/runner"
	"github.com/yaklabco/gostylecheck/pkg/styleguide"
)

// ErrIssuesFound is returned when the check found issues at or above the
// fail-on threshold. It carries no message of its own; it only selects
// the exit code.
var ErrIssuesFound = errors.New("style issues found")

type checkFlags struct {
	format       string
	ignore       []string
	enable       []string
	disable      []string
	failOn       string
	noContext    bool
	compact      bool
	perFile      bool
	ruleFormat   string
	summaryOrder string
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check documentation against the style guide",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags)
		},
	}

	addCheckFlags(cmd, &cfg, flags)

	return cmd
}

const checkLongDescription = `Check documentation files against a prose style guide.

By default, checks all .xml, .html, .htm, .txt, and .md files in the
current directory and subdirectories. Specify paths to check specific
files or directories.

Examples:
  gostylecheck check                     # Check current directory
  gostylecheck check docs/               # Check docs directory
  gostylecheck check module01.xml        # Check single file
  gostylecheck check --format json       # Output as JSON for CI
  gostylecheck check --fail-on warning   # Warnings fail the build
  gostylecheck check --disable oxford_comma`

func runCheck(cmd *cobra.Command, args []string, cfg *config.Config, flags *checkFlags) error {
	// Map string flags to typed config values.
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable

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

	if err := reportResult(cmd, result, finalCfg, flags); err != nil {
		return err
	}

	if ExitCodeFromResult(result, finalCfg.FailOn) != ExitSuccess {
		return ErrIssuesFound
	}

	return nil
}

// runStyleCheck resolves configuration, loads the style guide, and runs
// the engine over the requested paths. Both check and fix go through it;
// fix mode is selected by cfg.Fix.
func runStyleCheck(
	cmd *cobra.Command,
	args []string,
	cfg *config.Config,
) (*runner.Result, *config.Config, error) {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return nil, nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	guide, guidePath, err := loadGuide(cmd, finalCfg, workDir)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("configuration loaded",
		logging.FieldGuide, guidePath,
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	engine := check.NewEngine(check.DefaultRegistry)
	styleRunner := runner.New(engine)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
		Guide:        guide,
	}

	logger.Debug("starting run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := styleRunner.Run(ctx, runOpts)
	if err != nil {
		return nil, nil, errors.Join(errors.New("check run failed"), err)
	}

	return result, finalCfg, nil
}

// loadGuide resolves the style guide: --guide flag, then the configured
// path, then .styleguide.yaml in the working directory. A missing guide
// is not an error; the checks its namespaces would enable stay off.
func loadGuide(cmd *cobra.Command, cfg *config.Config, workDir string) (*styleguide.Guide, string, error) {
	explicit, err := cmd.Flags().GetString("guide")
	if err != nil {
		explicit = ""
	}
	if explicit == "" {
		explicit = cfg.Styleguide
	}

	path := styleguide.Discover(explicit, workDir)
	if path == "" {
		guide, err := styleguide.Parse(nil)
		if err != nil {
			return nil, "", fmt.Errorf("empty style guide: %w", err)
		}
		return guide, "(none)", nil
	}

	guide, err := styleguide.Load(path)
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load style guide"), err)
	}
	return guide, path, nil
}

// reportResult renders a runner result with the reporter selected by the
// check/fix flags.
func reportResult(cmd *cobra.Command, result *runner.Result, cfg *config.Config, flags *checkFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		workDir = ""
	}

	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		ErrorWriter:  cmd.ErrOrStderr(),
		Format:       format,
		Color:        colorMode,
		ShowContext:  !flags.noContext,
		ShowSummary:  true,
		GroupByFile:  true,
		Compact:      flags.compact,
		PerFile:      flags.perFile,
		RuleFormat:   config.RuleFormat(flags.ruleFormat),
		SummaryOrder: config.SummaryOrder(flags.summaryOrder),
		WorkingDir:   workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	return nil
}

func addCheckFlags(cmd *cobra.Command, cfg *config.Config, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, table, json, sarif, diff, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().StringVar(&flags.failOn, "fail-on", "",
		"severity that fails the run: error, warning, info (default error)")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false,
		"output separate report for each file (table format)")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.summaryOrder, "summary-order", "rules",
		"order of tables in summary output: rules, files")
}
