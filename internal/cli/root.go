// Package cli provides the Cobra command structure for textreport.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textreport/internal/logging"
	"github.com/yaklabco/textreport/internal/ui/pretty"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root textreport command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "textreport",
		Short: "Render structured reports as plain text",
		Long: `textreport renders report documents as plain, fixed-width text.

A report is a sequence of headers, paragraphs, tables, sections, and
figures, written as YAML or Markdown. Paragraphs are word-wrapped to a
configurable line length, tables are padded into aligned columns and
numbered, and figures are skipped.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "info"
			if debug {
				level = "debug"
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
			if pretty.IsColorEnabled(color, cmd.ErrOrStderr()) {
				logger = logging.NewInteractive(cmd.ErrOrStderr(), level)
			}
			cmd.SetContext(logging.WithLogger(ctx, logger))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize help and summaries: auto, always, never")

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(&color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
