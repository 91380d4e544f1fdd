// Package configloader provides configuration discovery and resolution.
// Precedence (highest to lowest): CLI flags, environment variables,
// explicit --config path or discovered config file, built-in defaults.
package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/rstfmt/pkg/config"
)

// projectConfigName is the config file searched for in the working directory.
const projectConfigName = ".rstfmt.yaml"

// userConfigName is the config file under the user config directory.
const userConfigName = "config.yaml"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search for a project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, discovery is skipped and the file must exist.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom is the path of the config file that was applied,
	// or "" when only defaults and environment were used.
	LoadedFrom string
}

// Load resolves the final configuration by merging all sources.
func Load(opts LoadOptions) (*LoadResult, error) {
	cfg := config.Default()
	result := &LoadResult{Config: cfg}

	path, required, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := applyFile(cfg, path, required); err != nil {
			return nil, err
		}
		if required || fileExists(path) {
			result.LoadedFrom = path
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return result, nil
}

// resolvePath picks the config file to load. The second return is true
// when the file must exist (explicit --config).
func resolvePath(opts LoadOptions) (string, bool, error) {
	if opts.ExplicitPath != "" {
		return opts.ExplicitPath, true, nil
	}

	workingDir := opts.WorkingDir
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", false, fmt.Errorf("get working directory: %w", err)
		}
		workingDir = wd
	}

	project := filepath.Join(workingDir, projectConfigName)
	if fileExists(project) {
		return project, false, nil
	}

	if userDir, err := os.UserConfigDir(); err == nil {
		user := filepath.Join(userDir, "rstfmt", userConfigName)
		if fileExists(user) {
			return user, false, nil
		}
	}
	return "", false, nil
}

// applyFile merges the YAML file at path into cfg. Fields present in
// the file replace defaults; absent fields are left alone.
func applyFile(cfg *config.Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
