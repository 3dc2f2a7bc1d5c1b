// Package compress produces comment-free renditions of source files.
package compress

import (
	"bytes"
	"strings"

	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/scanner"
	"github.com/yaklabco/srcmine/pkg/source"
)

// Options controls compression.
type Options struct {
	// DropShebang removes a "#!" first line instead of keeping it.
	DropShebang bool
}

// Line is one kept line and its 1-based number in the original file.
type Line struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// File is the compressed rendition of one source file.
type File struct {
	Path          string `json:"path"`
	Language      string `json:"language"`
	OriginalLines int    `json:"original_lines"`
	Lines         []Line `json:"lines"`
}

// Content returns the kept lines joined by newlines, with a final newline
// when any line was kept.
func (f *File) Content() string {
	if len(f.Lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range f.Lines {
		b.WriteString(line.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Span returns the first and last kept original line numbers, or 0, 0 when
// nothing was kept.
func (f *File) Span() (int, int) {
	if len(f.Lines) == 0 {
		return 0, 0
	}
	return f.Lines[0].Number, f.Lines[len(f.Lines)-1].Number
}

// Compress drops comments and blank lines from file. Code and string bytes
// are kept as they are, including indentation. Trailing whitespace outside
// strings is removed. A line that opens inside a multi-line string keeps
// the rest of that string untouched; whatever follows it on the line is
// compressed like any other code.
func Compress(file *source.File, regions []scanner.Region, p *lang.Profile, opts Options) *File {
	out := &File{
		Path:          file.Path,
		Language:      p.Name,
		OriginalLines: file.LineCount(),
	}

	var buf []byte
	for n := 1; n <= file.LineCount(); n++ {
		line := file.Lines[n-1]
		raw := file.Content[line.StartOffset:line.NewlineStart]

		if n == 1 && bytes.HasPrefix(raw, []byte("#!")) {
			if !opts.DropShebang {
				out.Lines = append(out.Lines, Line{Number: n, Text: string(raw)})
			}
			continue
		}

		buf = buf[:0]
		start := line.StartOffset
		inString := startsInString(regions, start)
		if inString {
			for start < line.NewlineStart && scanner.KindAt(regions, start) == scanner.StringLiteral {
				start++
			}
			buf = append(buf, file.Content[line.StartOffset:start]...)
		}

		trimTo := len(buf)
		for offset := start; offset < line.NewlineStart; offset++ {
			kind := scanner.KindAt(regions, offset)
			if kind.IsComment() {
				continue
			}
			buf = append(buf, file.Content[offset])
			if kind == scanner.StringLiteral || !isSpace(file.Content[offset]) {
				trimTo = len(buf)
			}
		}
		buf = buf[:trimTo]

		if !inString && len(bytes.TrimSpace(buf)) == 0 {
			continue
		}
		out.Lines = append(out.Lines, Line{Number: n, Text: string(buf)})
	}

	return out
}

func startsInString(regions []scanner.Region, offset int) bool {
	return offset > 0 &&
		scanner.KindAt(regions, offset) == scanner.StringLiteral &&
		scanner.KindAt(regions, offset-1) == scanner.StringLiteral
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}
