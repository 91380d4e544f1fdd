package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/rstfmt/pkg/config"
)

// envVarPrefix is the prefix for all rstfmt environment variables.
const envVarPrefix = "RSTFMT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"WIDTH":     {field: "width", typ: envTypeInt},
	"INDENT":    {field: "indent", typ: envTypeInt},
	"KEEP":      {field: "keep", typ: envTypeSlice},
	"VERBOSE":   {field: "verbose", typ: envTypeBool},
	"COLOR":     {field: "color", typ: envTypeString},
	"LOG_LEVEL": {field: "log_level", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with RSTFMT_ (e.g., RSTFMT_WIDTH).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "color":
		cfg.Color = config.ColorMode(value)
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "verbose":
		cfg.Verbose = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "width":
		cfg.Width = value
	case "indent":
		cfg.Indent = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "keep":
		cfg.Keep = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"RSTFMT_WIDTH":     "Output width in columns (0 = detect from terminal)",
		"RSTFMT_INDENT":    "Number of spaces prefixed to every output line",
		"RSTFMT_KEEP":      "Comma-separated list of container names to keep",
		"RSTFMT_VERBOSE":   "Keep the verbose container: true or false",
		"RSTFMT_COLOR":     "Colorize output: auto, always, or never",
		"RSTFMT_LOG_LEVEL": "Logging verbosity: debug, info, warn, or error",
	}
}
