// Package cli provides the Cobra command structure for rstfmt.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rstfmt/internal/configloader"
	"github.com/yaklabco/rstfmt/internal/logging"
	"github.com/yaklabco/rstfmt/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootState carries the configuration resolved by the root command's
// PersistentPreRunE to the subcommands.
type rootState struct {
	cfg        *config.Config
	loadedFrom string
}

// NewRootCommand creates the root rstfmt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	state := &rootState{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "rstfmt",
		Short: "Render minimal reStructuredText as plain text",
		Long: `rstfmt renders a minimal dialect of reStructuredText as plain text
for a fixed-width terminal.

It understands paragraphs, literal blocks, bullet/enumerated lists,
option lists, field lists, definition lists, admonitions, and named
containers. Paragraphs are re-wrapped to the output width; list bodies
keep their hanging indentation.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}

			result, err := configloader.Load(configloader.LoadOptions{
				WorkingDir:   workDir,
				ExplicitPath: configPath,
			})
			if err != nil {
				return errors.Join(ErrConfig, err)
			}
			state.cfg = result.Config
			state.loadedFrom = result.LoadedFrom

			// --debug wins over the configured log level.
			level := state.cfg.LogLevel
			if debug {
				level = "debug"
			}
			logging.SetLevel(level)

			// The --color flag wins over the configured color mode.
			colorMode := string(state.cfg.Color)
			if cmd.Flags().Changed("color") {
				colorMode = color
			}
			NewHelpFormatter(colorMode, os.Stdout).ApplyToCommand(cmd.Root())

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Flag parse failures are usage errors, not render failures.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Join(ErrUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand(state))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Styled help for paths that never reach PersistentPreRunE (--help,
	// flag errors); re-applied above once the config is known.
	NewHelpFormatter(color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}
