// Package source holds a loaded source file and its line index.
package source

import "sort"

// Line describes the byte layout of one line.
type Line struct {
	// StartOffset is the offset of the first byte of the line.
	StartOffset int

	// NewlineStart is the offset of the line terminator ("\n" or "\r\n"),
	// or the end of content for a final unterminated line.
	NewlineStart int

	// EndOffset is the offset just past the line terminator.
	EndOffset int
}

// File is a source file owned by one pipeline invocation.
type File struct {
	Path    string
	Content []byte
	Lines   []Line
}

// New indexes content as a File.
func New(path string, content []byte) *File {
	return &File{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// BuildLines splits content into lines, recognising LF and CRLF endings.
// A trailing newline does not start an extra empty line.
func BuildLines(content []byte) []Line {
	var lines []Line
	lineStart := 0

	for idx, char := range content {
		if char != '\n' {
			continue
		}
		newlineStart := idx
		if idx > 0 && content[idx-1] == '\r' {
			newlineStart = idx - 1
		}
		lines = append(lines, Line{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	if lineStart < len(content) {
		lines = append(lines, Line{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines.
func (f *File) LineCount() int {
	return len(f.Lines)
}

// LineAt returns the 1-based line holding offset, or 0 when out of range.
func (f *File) LineAt(offset int) int {
	if offset < 0 || len(f.Lines) == 0 {
		return 0
	}
	if offset >= len(f.Content) {
		return len(f.Lines)
	}

	idx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].EndOffset > offset
	})
	if idx >= len(f.Lines) {
		return len(f.Lines)
	}
	return idx + 1
}

// Line returns the layout of a 1-based line.
func (f *File) Line(n int) (Line, bool) {
	if n < 1 || n > len(f.Lines) {
		return Line{}, false
	}
	return f.Lines[n-1], true
}

// LineContent returns a 1-based line without its terminator, or nil when
// out of range.
func (f *File) LineContent(n int) []byte {
	line, ok := f.Line(n)
	if !ok {
		return nil
	}
	return f.Content[line.StartOffset:line.NewlineStart]
}

// Span returns the verbatim bytes of lines first..last, without the final
// terminator. Line terminators in between are kept as they appear.
func (f *File) Span(first, last int) []byte {
	start, ok := f.Line(first)
	if !ok {
		return nil
	}
	end, ok := f.Line(last)
	if !ok || last < first {
		return nil
	}
	return f.Content[start.StartOffset:end.NewlineStart]
}

// Indent returns the width of the leading spaces and tabs of a line.
// Tabs count as one column.
func (f *File) Indent(n int) int {
	content := f.LineContent(n)
	width := 0
	for _, c := range content {
		if c != ' ' && c != '\t' {
			break
		}
		width++
	}
	return width
}

// IsBlank reports whether a line holds only whitespace.
func (f *File) IsBlank(n int) bool {
	for _, c := range f.LineContent(n) {
		if c != ' ' && c != '\t' && c != '\r' && c != '\f' && c != '\v' {
			return false
		}
	}
	return true
}
