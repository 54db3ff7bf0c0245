// Package main is the entry point for the textreport CLI.
package main

import (
	"os"

	"github.com/yaklabco/textreport/internal/cli"
	"github.com/yaklabco/textreport/internal/logging"
	"github.com/yaklabco/textreport/internal/ui/pretty"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	if pretty.IsColorEnabled("auto", os.Stderr) {
		logging.SetDefault(logging.NewInteractive(os.Stderr, "info"))
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		logging.Default().Error("command failed", logging.FieldError, err)
		return cli.ExitCodeForError(err)
	}

	return cli.ExitSuccess
}
