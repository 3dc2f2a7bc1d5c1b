package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/srcmine/pkg/config"
)

// envVarPrefix is the prefix for all srcmine environment variables.
const envVarPrefix = "SRCMINE_"

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
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"JOBS":              {field: "jobs", typ: envTypeInt, description: "Number of parallel workers (0 = NumCPU)"},
	"LINE_NUMBERS":      {field: "line_numbers", typ: envTypeBool, description: "Prefix source lines with line numbers: true or false"},
	"EXCLUDE":           {field: "exclude", typ: envTypeSlice, description: "Comma-separated glob patterns skipped in directories"},
	"FORMAT_FIND":       {field: "format.find", typ: envTypeString, description: "Default find format: text or json"},
	"FORMAT_COMPRESS":   {field: "format.compress", typ: envTypeString, description: "Default compress format: text or json"},
	"FORMAT_REFERENCES": {field: "format.references", typ: envTypeString, description: "Default references format: markdown, json or html"},
	"FORMAT_TOKENS":     {field: "format.tokens", typ: envTypeString, description: "Default tokens format: text or json"},
	"COLOR":             {field: "color", typ: envTypeString, description: "Styled output: auto, always or never"},
	"ENCODING":          {field: "encoding", typ: envTypeString, description: "Token encoding, e.g. cl100k_base"},
	"HEADLINE_TAGS":     {field: "headline_tags", typ: envTypeSlice, description: "Comma-separated tags listed by references"},
	"LOG_FILE":          {field: "log_file", typ: envTypeString, description: "Path of a rotating log file"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with SRCMINE_ (e.g., SRCMINE_JOBS).
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
	case "format.find":
		cfg.Format.Find = value
	case "format.compress":
		cfg.Format.Compress = value
	case "format.references":
		cfg.Format.References = value
	case "format.tokens":
		cfg.Format.Tokens = value
	case "color":
		cfg.Color = config.ColorMode(strings.ToLower(value))
	case "encoding":
		cfg.Encoding = value
	case "log_file":
		cfg.LogFile = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "line_numbers":
		cfg.LineNumbers = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "exclude":
		cfg.Exclude = value
	case "headline_tags":
		cfg.HeadlineTags = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns all supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	slices.SortFunc(vars, func(a, b EnvVar) int {
		return strings.Compare(a.Name, b.Name)
	})
	return vars
}
