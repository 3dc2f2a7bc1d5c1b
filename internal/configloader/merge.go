package configloader

import (
	"slices"

	"github.com/yaklabco/srcmine/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointers: override overwrites base if override is non-nil
//   - Slices: override replaces base entirely if override is non-nil
//   - Format: merged per command
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Encoding != "" {
		result.Encoding = override.Encoding
	}
	if override.LogFile != "" {
		result.LogFile = override.LogFile
	}

	// LineNumbers is a pointer so that a file can switch it off again.
	if override.LineNumbers != nil {
		lineNumbers := *override.LineNumbers
		result.LineNumbers = &lineNumbers
	}

	// Debug is CLI-only and can only be switched on.
	if override.Debug {
		result.Debug = true
	}

	result.Format = mergeFormats(base.Format, override.Format)

	if override.Exclude != nil {
		result.Exclude = slices.Clone(override.Exclude)
	}
	if override.HeadlineTags != nil {
		result.HeadlineTags = slices.Clone(override.HeadlineTags)
	}

	return &result
}

// mergeFormats merges per-command formats, override's values taking precedence.
func mergeFormats(base, override config.FormatConfig) config.FormatConfig {
	result := base
	if override.Find != "" {
		result.Find = override.Find
	}
	if override.Compress != "" {
		result.Compress = override.Compress
	}
	if override.References != "" {
		result.References = override.References
	}
	if override.Tokens != "" {
		result.Tokens = override.Tokens
	}
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
