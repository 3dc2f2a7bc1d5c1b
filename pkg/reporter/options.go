package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for report content (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// LineNumbers prefixes each emitted source line with its original
	// 1-based number ("NN: ").
	LineNumbers bool

	// Compact uses minified output where applicable.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Format: FormatText,
	}
}
