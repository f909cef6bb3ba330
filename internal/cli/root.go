// Package cli provides the Cobra command structure for gostylecheck.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/gostylecheck/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gostylecheck command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var guidePath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gostylecheck",
		Short: "A style-guide checker for documentation",
		Long: `gostylecheck checks documentation (XML, HTML, Markdown, plain text)
against a configurable prose style guide and reports line-addressed
violations. A subset of violations can be fixed automatically with
deterministic, line-safe text substitutions.

The style guide lives in a .styleguide.yaml file; tool behavior is
configured through .gostylecheck.yml.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&guidePath, "guide", "", "path to style-guide file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Accept snake_case spellings of multi-word flags; rule IDs are
	// snake_case and users mix the two constantly.
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newFixCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// normalizeFlagName maps snake_case flag spellings onto their kebab-case
// definitions, so --rule_format and --rule-format are the same flag.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
