package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/yaklabco/srcmine/pkg/compress"
	"github.com/yaklabco/srcmine/pkg/extract"
	"github.com/yaklabco/srcmine/pkg/matcher"
	"github.com/yaklabco/srcmine/pkg/refs"
	"github.com/yaklabco/srcmine/pkg/runner"
	"github.com/yaklabco/srcmine/pkg/tokens"
)

const (
	fence          = "```"
	fileSeparator  = "\n"
	refsSeparator  = "\n\n---\n\n"
	lineNumberForm = "%02d: "
)

// TextReporter writes plain text and Markdown reports.
type TextReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

func (r *TextReporter) flush(err *error) {
	if flushErr := r.bw.Flush(); *err == nil && flushErr != nil {
		*err = fmt.Errorf("flush output: %w", flushErr)
	}
}

// Find writes one block per file with at least one match or failure.
func (r *TextReporter) Find(_ context.Context, report *extract.Report) (err error) {
	defer r.flush(&err)

	first := true
	for i := range report.Files {
		outcome := &report.Files[i]
		if len(outcome.Matches) == 0 && len(outcome.Failures) == 0 {
			continue
		}
		if !first {
			r.bw.WriteString(fileSeparator)
		}
		first = false
		r.writeFindFile(outcome, report.LineNumbers || r.opts.LineNumbers)
	}
	return nil
}

// findItem is a match or a failure, ordered by line.
type findItem struct {
	line    int
	match   *matcher.Match
	failure *matcher.Failure
}

func (r *TextReporter) writeFindFile(outcome *extract.FileOutcome, numbered bool) {
	fmt.Fprintf(r.bw, "@@@ %s | %s\n", outcome.Path, outcome.Language)

	items := make([]findItem, 0, len(outcome.Matches)+len(outcome.Failures))
	for i := range outcome.Matches {
		items = append(items, findItem{line: outcome.Matches[i].StartLine, match: &outcome.Matches[i]})
	}
	for i := range outcome.Failures {
		items = append(items, findItem{line: outcome.Failures[i].Line, failure: &outcome.Failures[i]})
	}
	sort.SliceStable(items, func(a, b int) bool { return items[a].line < items[b].line })

	for _, item := range items {
		r.bw.WriteString("\n")
		if item.failure != nil {
			f := item.failure
			fmt.Fprintf(r.bw, "### FAIL %s: %s\n", f.Tag, inlineCode(f.Name))
			fmt.Fprintf(r.bw, "- Line: %d\n", f.Line)
			fmt.Fprintf(r.bw, "- Reason: %s\n", f.Reason)
			continue
		}

		m := item.match
		fmt.Fprintf(r.bw, "### %s: %s\n", m.Tag, inlineCode(m.Name))
		if m.Signature != "" {
			fmt.Fprintf(r.bw, "- Signature: %s\n", inlineCode(m.Signature))
		}
		fmt.Fprintf(r.bw, "- Lines: %d-%d\n", m.StartLine, m.EndLine)
		r.bw.WriteString(fence + "\n")
		for i, line := range strings.Split(m.Text, "\n") {
			writeLine(r.bw, m.StartLine+i, strings.TrimSuffix(line, "\r"), numbered)
		}
		r.bw.WriteString(fence + "\n")
	}
}

// Compress writes one block per compressed file.
func (r *TextReporter) Compress(_ context.Context, report *compress.Report) (err error) {
	defer r.flush(&err)

	numbered := report.LineNumbers || r.opts.LineNumbers
	first := true
	for i := range report.Files {
		outcome := &report.Files[i]
		if outcome.Status != runner.StatusOK || outcome.File == nil {
			continue
		}
		if !first {
			r.bw.WriteString(fileSeparator)
		}
		first = false

		file := outcome.File
		firstLine, lastLine := file.Span()
		fmt.Fprintf(r.bw, "@@@ %s | %s\n", outcome.Path, outcome.Language)
		fmt.Fprintf(r.bw, "> Lines: %d-%d of %d\n", firstLine, lastLine, file.OriginalLines)
		r.bw.WriteString(fence + "\n")
		for _, line := range file.Lines {
			writeLine(r.bw, line.Number, line.Text, numbered)
		}
		r.bw.WriteString(fence + "\n")
	}
	return nil
}

// References writes the Markdown catalog of every processed file.
func (r *TextReporter) References(_ context.Context, report *refs.Report) (err error) {
	defer r.flush(&err)

	r.bw.WriteString(Markdown(report.Catalogs()))
	return nil
}

// Tokens writes the pack summary.
func (r *TextReporter) Tokens(_ context.Context, report *tokens.Report) (err error) {
	defer r.flush(&err)

	r.bw.WriteString(tokens.Summarize(report))
	return nil
}

// Markdown renders catalogs joined by horizontal rules.
func Markdown(catalogs []*refs.File) string {
	if len(catalogs) == 0 {
		return ""
	}

	parts := make([]string, len(catalogs))
	for i, catalog := range catalogs {
		parts[i] = catalogMarkdown(catalog)
	}
	return strings.Join(parts, refsSeparator) + "\n"
}

func catalogMarkdown(f *refs.File) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s | %s | %dL | %d symbols | %d imports\n",
		f.Base, f.Display, f.Lines, len(f.Definitions), len(f.Imports))
	fmt.Fprintf(&b, "> Path: %s", inlineCode(f.Path))
	if f.Description != "" {
		b.WriteString("\n> " + f.Description)
	}

	if len(f.Imports) > 0 {
		b.WriteString("\n\n## Imports\n" + fence + "\n")
		for _, imp := range f.Imports {
			b.WriteString(imp + "\n")
		}
		b.WriteString(fence)
	}

	if len(f.Definitions) > 0 {
		b.WriteString("\n\n## Definitions\n")
		for i, entry := range f.Definitions {
			if i > 0 {
				b.WriteString("\n")
			}
			writeEntry(&b, entry, "")
			for _, child := range entry.Children {
				b.WriteString("\n")
				writeEntry(&b, child, catalogIndent)
			}
		}
	}
	return b.String()
}

const catalogIndent = "  "

// writeEntry writes one definition bullet followed by its Doxygen fields,
// indented one level below it.
func writeEntry(b *strings.Builder, entry refs.Entry, indent string) {
	label := entry.Signature
	if label == "" {
		label = entry.Name
	}
	fmt.Fprintf(b, "%s- %s %s (L%d-%d)", indent, entry.Tag, inlineCode(label), entry.StartLine, entry.EndLine)
	for _, field := range entry.Doc {
		fmt.Fprintf(b, "\n%s%s- %s %s", indent, catalogIndent, field.Label(), field.Text)
	}
}

func writeLine(w io.StringWriter, number int, text string, numbered bool) {
	if numbered {
		w.WriteString(fmt.Sprintf(lineNumberForm, number))
	}
	w.WriteString(text)
	w.WriteString("\n")
}

// inlineCode wraps s in a Markdown code span, widening the delimiter when s
// contains backticks.
func inlineCode(s string) string {
	if !strings.Contains(s, "`") {
		return "`" + s + "`"
	}
	return "`` " + s + " ``"
}
