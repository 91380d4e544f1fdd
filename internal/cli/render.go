package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/rstfmt/internal/logging"
	"github.com/yaklabco/rstfmt/pkg/rst"
)

// fallbackWidth is used when the output is not a terminal.
const fallbackWidth = 80

type renderFlags struct {
	width   int
	indent  int
	keep    []string
	verbose bool
}

func newRenderCommand(state *rootState) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document to plain text",
		Long:  renderLongDescription,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return errors.Join(ErrUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, state, flags)
		},
	}

	cmd.Flags().IntVar(&flags.width, "width", 0,
		"output width in columns (0 = detect from the terminal)")
	cmd.Flags().IntVar(&flags.indent, "indent", 0, "spaces to indent every output line")
	cmd.Flags().StringArrayVar(&flags.keep, "keep", nil,
		"container name to keep (repeatable; default keeps all)")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false,
		"keep containers named 'verbose'")

	return cmd
}

const renderLongDescription = `Render a document to plain text.

Reads from the named file, or from stdin when no file (or "-") is
given, and writes the re-wrapped plain text to stdout.

Examples:
  rstfmt render doc.txt             # Render a file at terminal width
  rstfmt render --width 72 doc.txt  # Fixed 72-column output
  rstfmt render --indent 2 < doc    # Indent every line by two spaces
  rstfmt render --keep verbose doc  # Keep only 'verbose' containers`

func runRender(cmd *cobra.Command, args []string, state *rootState, flags *renderFlags) error {
	logger := logging.Default()

	cfg := state.cfg
	if state.loadedFrom != "" {
		logger.Debug("loaded configuration from", logging.FieldPath, state.loadedFrom)
	}

	// CLI flags override configuration when explicitly set.
	if cmd.Flags().Changed("width") {
		cfg.Width = flags.width
	}
	if cmd.Flags().Changed("indent") {
		cfg.Indent = flags.indent
	}
	if len(flags.keep) > 0 {
		cfg.Keep = append(cfg.Keep, flags.keep...)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flags.verbose
	}

	source, input, err := readInput(args)
	if err != nil {
		return errors.Join(ErrInput, err)
	}

	width := cfg.Width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	opts := rst.Options{
		Width:  width,
		Indent: strings.Repeat(" ", cfg.Indent),
		Keep:   keepSet(cfg.Keep, cfg.Verbose),
	}

	logger.Debug("rendering",
		logging.FieldInput, input,
		logging.FieldWidth, opts.Width,
		logging.FieldIndent, cfg.Indent,
		logging.FieldKeep, cfg.Keep,
	)

	out, err := rst.Format(source, opts)
	if err != nil {
		return fmt.Errorf("render %s: %w", input, err)
	}

	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	return nil
}

// readInput returns the document source and a name for it suitable for
// error messages.
func readInput(args []string) (source, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}

// keepSet builds the container filter. With no names and no verbose
// flag every container is kept; otherwise only the named ones are.
func keepSet(names []string, verbose bool) rst.Keep {
	if len(names) == 0 && !verbose {
		return nil
	}
	keep := rst.KeepNames(names...)
	if verbose {
		keep["verbose"] = true
	}
	return keep
}

// terminalWidth detects the width of the terminal behind writer,
// falling back to a fixed width when writer is not a terminal.
func terminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return fallbackWidth
}
