package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rstfmt/internal/configloader"
	"github.com/yaklabco/rstfmt/internal/logging"
	"github.com/yaklabco/rstfmt/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// configHeader is written above the generated YAML.
const configHeader = `# rstfmt configuration.
# Command-line flags override the values in this file.`

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long:  initLongDescription(),
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output file path (default: .rstfmt.yaml)")

	return cmd
}

// initLongDescription builds the help text, including the supported
// environment variables.
func initLongDescription() string {
	var b strings.Builder
	b.WriteString(`Create a .rstfmt.yaml configuration file in the current directory,
populated with the built-in defaults and ready to edit.

Examples:
  rstfmt init                    Create .rstfmt.yaml
  rstfmt init -o conf/rst.yaml   Write to a custom file path
  rstfmt init --force            Overwrite an existing file

Every setting can also be overridden through environment variables:
`)

	envVars := configloader.ListEnvVars()
	names := make([]string, 0, len(envVars))
	width := 0
	for name := range envVars {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString("  " + rpad(name, width) + "  " + envVars[name] + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".rstfmt.yaml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.Default().ToYAMLWithHeader(configHeader)
	if err != nil {
		return fmt.Errorf("generate config: %w", err)
	}

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)

	return nil
}
