package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gostylecheck/internal/logging"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/styleguide"
)

// configFilePermissions is the file mode for generated files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	format string
	output string
	guide  bool
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize gostylecheck configuration files",
		Long: `Create a new .gostylecheck.yml configuration file in the current
directory with sensible defaults, and optionally a starter
.styleguide.yaml defining the prose rules to check against.

Examples:
  gostylecheck init                   Create minimal .gostylecheck.yml
  gostylecheck init --full            Create full config with all rules documented
  gostylecheck init --guide           Also create a starter .styleguide.yaml
  gostylecheck init --format json     Create .gostylecheck.json instead
  gostylecheck init --output custom.yml  Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all rules documented")
	cmd.Flags().BoolVar(&flags.guide, "guide", false, "Also write a starter .styleguide.yaml")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output file path (default: .gostylecheck.yml or .gostylecheck.json)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	if flags.format != "yaml" && flags.format != formatJSON {
		return fmt.Errorf("invalid format %q: must be yaml or json", flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		if flags.format == formatJSON {
			outputPath = ".gostylecheck.json"
		} else {
			outputPath = ".gostylecheck.yml"
		}
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := writeInitFile(logger, outputPath, content, flags.force); err != nil {
		return err
	}
	logger.Info("created configuration file", logging.FieldPath, outputPath)

	if flags.full {
		logger.Info("full template includes all rules with documentation")
	}

	if flags.guide {
		guidePath := styleguide.DefaultFileName
		if err := writeInitFile(logger, guidePath, styleguide.Template(), flags.force); err != nil {
			return err
		}
		logger.Info("created style guide", logging.FieldPath, guidePath)
	}

	logger.Info("customize your configuration by editing the files")
	logger.Info("run 'gostylecheck rules' to see all available rules")

	return nil
}

// writeInitFile writes content to path, refusing to overwrite unless
// force is set.
func writeInitFile(logger *log.Logger, path string, content []byte, force bool) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", path)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, path)
	}

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
