package reporter

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnsupportedFormat indicates a format the command cannot produce.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Command identifies the operation whose report is rendered.
type Command string

// Commands with report output.
const (
	CommandFind       Command = "find"
	CommandCompress   Command = "compress"
	CommandReferences Command = "references"
	CommandTokens     Command = "tokens"
)

// Formats returns the formats a command supports, default first.
func Formats(cmd Command) []Format {
	switch cmd {
	case CommandReferences:
		return []Format{FormatMarkdown, FormatJSON, FormatHTML}
	case CommandFind, CommandCompress, CommandTokens:
		return []Format{FormatText, FormatJSON}
	default:
		return nil
	}
}

// ParseFormat parses a format string for cmd. An empty string selects the
// command's default format.
func ParseFormat(cmd Command, formatStr string) (Format, error) {
	formats := Formats(cmd)
	if len(formats) == 0 {
		return "", fmt.Errorf("%w: command %s has no report output", ErrUnsupportedFormat, cmd)
	}
	if formatStr == "" {
		return formats[0], nil
	}

	format := Format(strings.ToLower(formatStr))
	if !slices.Contains(formats, format) {
		names := make([]string, len(formats))
		for i, f := range formats {
			names[i] = f.String()
		}
		return "", fmt.Errorf("%w %q for %s; valid formats: %s",
			ErrUnsupportedFormat, formatStr, cmd, strings.Join(names, ", "))
	}
	return format, nil
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatMarkdown, FormatHTML:
		return true
	default:
		return false
	}
}
