package config

import (
	"bytes"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every key with its default value instead of a commented
	// minimal file.
	Full bool

	// HeadlineTags are the default catalog tags listed in a full template.
	HeadlineTags []string

	// Formats are the default output formats listed in a full template.
	Formats FormatConfig
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate(opts)
	}
	return generateMinimalTemplate(), nil
}

func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Number of parallel workers (0 = NumCPU)
# jobs: 0

# Prefix emitted source lines with their line number
# line_numbers: false

# Glob patterns skipped when expanding directories
# exclude:
#   - "vendor/**"
#   - "**/testdata/**"

# Default output format per command
# format:
#   find: text
#   compress: text
#   references: markdown
#   tokens: text

# Styled stderr output: auto, always or never
# color: auto

# Token encoding for the tokens command
# encoding: cl100k_base

# Tags listed by the references catalog
# headline_tags: [CLASS, FUNCTION, METHOD]

# Rotating log file
# log_file: ""
`)

	return buf.Bytes()
}

func generateFullTemplate(opts TemplateOptions) ([]byte, error) {
	lineNumbers := false
	cfg := NewConfig()
	cfg.LineNumbers = &lineNumbers
	cfg.Exclude = []string{"vendor/**"}
	cfg.Format = opts.Formats
	cfg.HeadlineTags = opts.HeadlineTags

	data, err := cfg.ToYAMLWithHeader(DefaultTemplateHeader() +
		"\n#\n# Every key is listed with its default value.")
	if err != nil {
		return nil, fmt.Errorf("generate full template: %w", err)
	}
	return data, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# srcmine configuration
# See: https://github.com/yaklabco/srcmine`
}
