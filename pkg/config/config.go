// Package config defines core configuration types for srcmine.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

// ColorMode controls styling of status lines and help output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// DefaultEncoding is the token encoding used when none is configured.
const DefaultEncoding = "cl100k_base"

// FormatConfig holds the default output format of each command.
// Empty fields fall back to the command's built-in default.
type FormatConfig struct {
	Find       string `yaml:"find,omitempty"`
	Compress   string `yaml:"compress,omitempty"`
	References string `yaml:"references,omitempty"`
	Tokens     string `yaml:"tokens,omitempty"`
}

// For returns the configured format of a command by name.
func (f FormatConfig) For(command string) string {
	switch command {
	case "find":
		return f.Find
	case "compress":
		return f.Compress
	case "references":
		return f.References
	case "tokens":
		return f.Tokens
	default:
		return ""
	}
}

// Config is the root configuration structure for srcmine.
type Config struct {
	// Jobs is the number of parallel workers. 0 means NumCPU.
	Jobs int `yaml:"jobs,omitempty"`

	// LineNumbers prefixes emitted source lines with their line number.
	// Nil means unset, so a lower-precedence source is not overridden.
	LineNumbers *bool `yaml:"line_numbers,omitempty"`

	// Exclude contains glob patterns skipped during directory expansion.
	Exclude []string `yaml:"exclude,omitempty"`

	// Format selects the default output format per command.
	Format FormatConfig `yaml:"format,omitempty"`

	// Color controls styled stderr output.
	Color ColorMode `yaml:"color,omitempty"`

	// Encoding is the tiktoken encoding used by the tokens command.
	Encoding string `yaml:"encoding,omitempty"`

	// HeadlineTags overrides which tags the references catalog lists.
	HeadlineTags []string `yaml:"headline_tags,omitempty"`

	// LogFile adds a rotating log file next to stderr logging.
	LogFile string `yaml:"log_file,omitempty"`

	// CLI-level options (not persisted to config files).

	// Debug enables debug logging.
	Debug bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Jobs:     0, // 0 means use NumCPU
		Color:    ColorAuto,
		Encoding: DefaultEncoding,
	}
}

// LineNumbersEnabled reports whether line numbering is switched on.
func (c *Config) LineNumbersEnabled() bool {
	return c != nil && c.LineNumbers != nil && *c.LineNumbers
}
