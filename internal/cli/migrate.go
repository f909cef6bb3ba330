package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gostylecheck/internal/configloader"
	"github.com/yaklabco/gostylecheck/internal/logging"
	"github.com/yaklabco/gostylecheck/pkg/fsutil"
)

// migrateFlags holds the flags for the migrate command.
type migrateFlags struct {
	force  bool
	output string
	input  string
}

func newMigrateCommand() *cobra.Command {
	flags := &migrateFlags{}

	cmd := &cobra.Command{
		Use:   "migrate [input]",
		Short: "Convert a legacy style guide to the current layout",
		Long: `Convert a style-guide file that still uses the legacy
writing_standards layout to the current style_guide layout.

The conversion rewrites the YAML node tree, so comments and key order
in the original file survive. By default the converted guide replaces
the input file and the original is saved next to it; use --output to
write elsewhere.

If no input file is specified, the command searches for a legacy-layout
style guide in the current directory.

Examples:
  gostylecheck migrate                     Auto-detect and convert the style guide
  gostylecheck migrate old-guide.yaml      Convert a specific file
  gostylecheck migrate --output new.yaml   Write to a separate output path`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.input = args[0]
			}
			return runMigrate(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing output file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output file path (default: rewrite the input in place)")

	return cmd
}

func runMigrate(flags *migrateFlags) error {
	logger := logging.NewInteractive()

	inputPath := flags.input
	if inputPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}

		inputPath = configloader.FindLegacyGuide(cwd)
		if inputPath == "" {
			return errors.New("no legacy-layout style guide found in current directory")
		}

		logger.Info("found legacy style guide", logging.FieldPath, inputPath)
	}

	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input file: %w", err)
	}
	if !configloader.IsLegacyGuide(content) {
		return fmt.Errorf("%s does not use the legacy writing_standards layout", inputPath)
	}

	result, err := configloader.ConvertLegacyGuide(inputPath)
	if err != nil {
		return fmt.Errorf("convert style guide: %w", err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	outputPath := flags.output
	inPlace := outputPath == "" || sameFile(inputPath, outputPath)
	if inPlace {
		outputPath = inputPath
	}

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	if !inPlace {
		if _, err := os.Stat(absOutput); err == nil && !flags.force {
			return fmt.Errorf("output file %q already exists; use --force to overwrite", outputPath)
		}
	}

	if err := writeMigrated(logger, inputPath, absOutput, result.Content, inPlace); err != nil {
		return err
	}

	logger.Info("migration complete", logging.FieldInput, inputPath, logging.FieldOutput, outputPath)

	if len(result.Warnings) > 0 {
		logger.Warn("review warnings above and verify the converted style guide")
	}

	return nil
}

// writeMigrated writes the converted guide. An in-place rewrite backs up
// the original first.
func writeMigrated(logger *log.Logger, inputPath, outputPath string, content []byte, inPlace bool) error {
	ctx := context.Background()

	if inPlace {
		created, err := fsutil.CreateBackup(ctx, inputPath, fsutil.BackupConfig{
			Enabled: true,
			Mode:    fsutil.BackupModeSidecar,
		})
		if err != nil {
			return fmt.Errorf("back up original: %w", err)
		}
		if created {
			logger.Info("original saved",
				logging.FieldPath, fsutil.BackupPath(inputPath, fsutil.BackupModeSidecar))
		}
	}

	if err := fsutil.WriteAtomic(ctx, outputPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	return nil
}

// sameFile reports whether two paths resolve to the same location.
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
