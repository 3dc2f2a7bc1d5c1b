package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/srcmine/pkg/config"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/reporter"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "format.find").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownEncodings lists the encodings bundled with the offline loader.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownEncodings = map[string]bool{
	"cl100k_base": true,
	"o200k_base":  true,
	"p50k_base":   true,
	"p50k_edit":   true,
	"r50k_base":   true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means NumCPU)",
		})
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.Encoding != "" && !knownEncodings[cfg.Encoding] {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "encoding",
			Value:   cfg.Encoding,
			Message: fmt.Sprintf("unknown encoding %q; token counts will be estimated", cfg.Encoding),
		})
	}

	validateFormats(cfg, result)
	validateHeadlineTags(cfg, result)
	validateExcludePatterns(cfg, result)

	return result
}

// validateFormats checks each command's default format.
func validateFormats(cfg *config.Config, result *ValidationResult) {
	commands := []reporter.Command{
		reporter.CommandFind,
		reporter.CommandCompress,
		reporter.CommandReferences,
		reporter.CommandTokens,
	}
	for _, cmd := range commands {
		value := cfg.Format.For(string(cmd))
		if value == "" {
			continue
		}
		if _, err := reporter.ParseFormat(cmd, value); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "format." + string(cmd),
				Value:   value,
				Message: err.Error(),
			})
		}
	}
}

// validateHeadlineTags checks that headline tags are in the vocabulary.
func validateHeadlineTags(cfg *config.Config, result *ValidationResult) {
	for i, name := range cfg.HeadlineTags {
		if _, err := lang.ParseTag(name); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("headline_tags[%d]", i),
				Value:   name,
				Message: fmt.Sprintf("%v; valid tags: %s", err, lang.JoinTags(lang.AllTags())),
			})
		}
	}
}

// validateExcludePatterns checks that exclude patterns compile as globs.
func validateExcludePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Exclude {
		if _, err := glob.Compile(filepath.ToSlash(pattern), '/'); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("exclude[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
