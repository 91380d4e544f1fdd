// Package main is the entry point for the rstfmt CLI.
package main

import (
	"os"

	"github.com/yaklabco/rstfmt/internal/cli"
	"github.com/yaklabco/rstfmt/internal/logging"
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

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitCodeForError(err)
	}

	return cli.ExitSuccess
}
