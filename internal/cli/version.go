package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/textreport/internal/logging"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of textreport.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")
			logger.Info("textreport",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
			)
		},
	}
}
