// Package reporter renders find, compress, references and tokens reports.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/srcmine/pkg/compress"
	"github.com/yaklabco/srcmine/pkg/extract"
	"github.com/yaklabco/srcmine/pkg/refs"
	"github.com/yaklabco/srcmine/pkg/tokens"
)

// Compile-time interface checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
	_ Reporter = (*HTMLReporter)(nil)
)

// Reporter writes formatted report content.
type Reporter interface {
	Find(ctx context.Context, report *extract.Report) error
	Compress(ctx context.Context, report *compress.Report) error
	References(ctx context.Context, report *refs.Report) error
	Tokens(ctx context.Context, report *tokens.Report) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText, FormatMarkdown:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatHTML:
		return NewHTMLReporter(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
