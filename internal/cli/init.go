package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textreport/internal/configloader"
	"github.com/yaklabco/textreport/internal/logging"
	"github.com/yaklabco/textreport/pkg/config"
	"github.com/yaklabco/textreport/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new textreport configuration file",
		Long: `Create a new .textreport.yml configuration file in the current directory
with sensible defaults.

Examples:
  textreport init                      Create a minimal commented .textreport.yml
  textreport init --full               Write every setting with its default value
  textreport init --output custom.yml  Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runInit(ctx, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Write every setting with its default value")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigFile, "Output file path")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.FromContext(ctx)

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if fsutil.FileExists(absPath) {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	changed, err := fsutil.WriteAtomicIfChanged(ctx, absPath, content, fsutil.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	if !changed {
		logger.Info("configuration file already up to date", logging.FieldPath, flags.output)
		return nil
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'textreport render <file>' to render a report with it")

	return nil
}
