package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textreport/internal/configloader"
	"github.com/yaklabco/textreport/internal/logging"
	"github.com/yaklabco/textreport/internal/ui/pretty"
	"github.com/yaklabco/textreport/pkg/config"
	"github.com/yaklabco/textreport/pkg/report"
	"github.com/yaklabco/textreport/pkg/source"
	"github.com/yaklabco/textreport/pkg/textreport"
)

// stdinArg names standard input as the document source.
const stdinArg = "-"

type renderFlags struct {
	maxLineLength int
	format        string
	flavor        string
	output        string
	fitTerminal   bool
	stats         bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a report document as plain text",
		Long:  renderLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.maxLineLength, "max-line-length", "w", config.DefaultMaxLineLength,
		"maximum paragraph line length in characters")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto",
		"source format: auto, yaml, markdown (stdin defaults to yaml)")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "gfm", "Markdown flavor: commonmark, gfm")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"write to this file instead of stdout (replaced atomically)")
	cmd.Flags().BoolVar(&flags.fitTerminal, "fit-terminal", false,
		"wrap paragraphs to the terminal width when stdout is a terminal")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "print a document summary to stderr")

	return cmd
}

const renderLongDescription = `Render a report document as plain text.

The document is read from the named file, or from standard input when the
argument is "-" or omitted. YAML (.yaml, .yml) and Markdown (.md,
.markdown) sources are detected by extension.

Examples:
  textreport render report.yaml                 # Render to stdout
  textreport render notes.md -o notes.txt       # Render to a file
  textreport render -w 72 report.yaml           # Wrap paragraphs at 72
  cat report.yaml | textreport render           # Read from stdin
  textreport render --fit-terminal README.md    # Wrap to the terminal width`

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	cfg, err := loadRenderConfig(ctx, cmd, flags)
	if err != nil {
		return err
	}

	input := stdinArg
	if len(args) == 1 {
		input = args[0]
	}

	rep, err := loadDocument(ctx, cmd.InOrStdin(), input, cfg)
	if err != nil {
		return err
	}

	stats := report.CountItems(rep)
	logger.Debug("document loaded",
		logging.FieldInput, input,
		logging.FieldTitle, rep.Title,
		logging.FieldSections, stats.Sections,
		logging.FieldParagraphs, stats.Paragraphs,
		logging.FieldTables, stats.Tables,
		logging.FieldTableRows, stats.TableRows,
		logging.FieldFigures, stats.Figures,
	)

	opts := textreport.Options{
		MaxLineLength: cfg.MaxLineLength,
		Logger:        logger,
	}
	if cfg.FitTerminal && cfg.Output == "" {
		if width, ok := pretty.TerminalWidth(cmd.OutOrStdout()); ok {
			logger.Debug("fitting to terminal", logging.FieldMaxLineLength, width)
			opts.MaxLineLength = width
		}
	}

	if err := writeReport(ctx, cmd.OutOrStdout(), rep, cfg, opts); err != nil {
		return err
	}

	if flags.stats {
		colorMode, _ := cmd.Flags().GetString("color")
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.ErrOrStderr()))
		if err := pretty.WriteStats(cmd.ErrOrStderr(), styles, rep, cfg.Output); err != nil {
			return err
		}
	}

	return nil
}

// loadRenderConfig merges configuration files with the flags the user set.
func loadRenderConfig(ctx context.Context, cmd *cobra.Command, flags *renderFlags) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	cliCfg := &config.Config{
		Output:      flags.output,
		FitTerminal: flags.fitTerminal,
	}
	if cmd.Flags().Changed("max-line-length") {
		if flags.maxLineLength <= 0 {
			return nil, fmt.Errorf("%w: --max-line-length must be > 0, got %d", ErrUsage, flags.maxLineLength)
		}
		cliCfg.MaxLineLength = flags.maxLineLength
	}
	if cmd.Flags().Changed("format") {
		format, err := source.ParseFormat(flags.format)
		if err != nil {
			return nil, err
		}
		cliCfg.InputFormat = config.InputFormat(format)
	}
	if cmd.Flags().Changed("flavor") {
		cliCfg.Flavor = config.Flavor(flags.flavor)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfigFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration resolved",
		logging.FieldMaxLineLength, cfg.MaxLineLength,
		logging.FieldFormat, cfg.InputFormat,
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldOutput, cfg.Output,
	)

	return cfg, nil
}

// loadDocument parses the report from a file or from stdin.
func loadDocument(ctx context.Context, stdin io.Reader, input string, cfg *config.Config) (*report.Report, error) {
	format := source.Format(cfg.InputFormat)
	opts := source.Options{Flavor: string(cfg.Flavor)}

	if input != stdinArg {
		return source.Load(ctx, input, format, opts)
	}

	if format == source.FormatAuto || format == "" {
		format = source.FormatYAML
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	rep, err := source.Parse(ctx, format, data, opts)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	return rep, nil
}

// writeReport renders to cfg.Output, or to stdout when no output is set.
func writeReport(
	ctx context.Context,
	stdout io.Writer,
	rep *report.Report,
	cfg *config.Config,
	opts textreport.Options,
) error {
	if cfg.Output != "" {
		if err := textreport.RenderFile(ctx, cfg.Output, rep, &cfg.Style, opts); err != nil {
			return wrapRenderError(err)
		}
		logging.FromContext(ctx).Debug("wrote report", logging.FieldPath, cfg.Output)
		return nil
	}

	bw := bufio.NewWriter(stdout)
	w, err := textreport.New(bw, opts)
	if err != nil {
		return err
	}
	if err := w.WriteReport(rep, &cfg.Style); err != nil {
		return wrapRenderError(err)
	}
	if err := bw.Flush(); err != nil {
		return errors.Join(ErrOutput, err)
	}
	return nil
}

// wrapRenderError tags sink failures as output errors and leaves document
// contract violations as they are.
func wrapRenderError(err error) error {
	if errors.Is(err, report.ErrRowShape) || errors.Is(err, report.ErrInvalidAlignment) {
		return err
	}
	return errors.Join(ErrOutput, err)
}
