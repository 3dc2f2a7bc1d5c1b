package reporter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/yaklabco/srcmine/pkg/compress"
	"github.com/yaklabco/srcmine/pkg/extract"
	"github.com/yaklabco/srcmine/pkg/refs"
	"github.com/yaklabco/srcmine/pkg/tokens"
)

const htmlTitle = "srcmine references"

// HTMLReporter renders the references catalog as a standalone HTML page.
// Other reports have no HTML form.
type HTMLReporter struct {
	opts Options
	md   goldmark.Markdown
}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter(opts Options) *HTMLReporter {
	return &HTMLReporter{
		opts: opts,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// References implements Reporter.
func (r *HTMLReporter) References(_ context.Context, report *refs.Report) error {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(Markdown(report.Catalogs())), &body); err != nil {
		return fmt.Errorf("render HTML: %w", err)
	}

	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	fmt.Fprintf(bw, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n",
		html.EscapeString(htmlTitle))
	bw.Write(body.Bytes())
	bw.WriteString("</body>\n</html>\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// Find implements Reporter.
func (r *HTMLReporter) Find(context.Context, *extract.Report) error {
	return fmt.Errorf("%w: html for %s", ErrUnsupportedFormat, CommandFind)
}

// Compress implements Reporter.
func (r *HTMLReporter) Compress(context.Context, *compress.Report) error {
	return fmt.Errorf("%w: html for %s", ErrUnsupportedFormat, CommandCompress)
}

// Tokens implements Reporter.
func (r *HTMLReporter) Tokens(context.Context, *tokens.Report) error {
	return fmt.Errorf("%w: html for %s", ErrUnsupportedFormat, CommandTokens)
}
