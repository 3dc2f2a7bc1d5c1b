// Package scanner splits source text into code, comment and string regions
// following a language profile.
package scanner

import (
	"bytes"
	"sort"
	"unicode/utf8"

	"github.com/yaklabco/srcmine/pkg/lang"
)

// Kind classifies a region.
type Kind int

const (
	// Code is anything outside comments and literals.
	Code Kind = iota

	// LineComment runs from a line comment marker to the end of the line.
	LineComment

	// BlockComment is a delimited comment, possibly spanning lines.
	BlockComment

	// StringLiteral covers string, character and regex literals including
	// their delimiters.
	StringLiteral
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Code:
		return "code"
	case LineComment:
		return "line-comment"
	case BlockComment:
		return "block-comment"
	case StringLiteral:
		return "string"
	default:
		return "unknown"
	}
}

// IsComment reports whether the kind is a comment.
func (k Kind) IsComment() bool {
	return k == LineComment || k == BlockComment
}

// Region is a half-open byte range [Start, End) of one kind.
type Region struct {
	Kind  Kind
	Start int
	End   int
}

// maxCharLiteral bounds the bytes a character literal may span after its
// opening quote, escapes included.
const maxCharLiteral = 10

// Scan classifies src in a single forward pass. The returned regions are
// ordered, non-empty and cover src exactly.
func Scan(src []byte, p *lang.Profile) []Region {
	s := &scan{src: src, profile: p}
	s.run()
	return s.regions
}

type scan struct {
	src     []byte
	profile *lang.Profile
	regions []Region
	codeAt  int
}

// opener is a candidate literal or comment start at the current offset.
type opener struct {
	kind   Kind
	length int
	end    func(start int) int
}

func (s *scan) run() {
	i := 0
	for i < len(s.src) {
		best, ok := s.bestOpener(i)
		if !ok {
			i++
			continue
		}
		end := best.end(i)
		s.emit(best.kind, i, end)
		i = end
	}
	s.flushCode(len(s.src))
}

func (s *scan) emit(kind Kind, start, end int) {
	s.flushCode(start)
	if end > start {
		s.regions = append(s.regions, Region{Kind: kind, Start: start, End: end})
	}
	s.codeAt = end
}

func (s *scan) flushCode(upTo int) {
	if upTo > s.codeAt {
		s.regions = append(s.regions, Region{Kind: Code, Start: s.codeAt, End: upTo})
	}
	s.codeAt = upTo
}

// bestOpener picks the longest opener at offset i. Block comments are
// tried first, then line comments, then literals, so equal lengths keep
// that priority.
func (s *scan) bestOpener(i int) (opener, bool) {
	var best opener
	found := false
	consider := func(o opener) {
		if !found || o.length > best.length {
			best = o
			found = true
		}
	}

	rest := s.src[i:]
	p := s.profile

	for _, bc := range p.BlockComments {
		if !bytes.HasPrefix(rest, []byte(bc.Open)) || !s.openerAllowed(i, bc.Open) {
			continue
		}
		if bc.LineAnchored && !atLineStart(s.src, i) {
			continue
		}
		pair := bc
		consider(opener{kind: BlockComment, length: len(pair.Open), end: func(start int) int {
			return s.blockCommentEnd(start, pair)
		}})
	}

	for _, marker := range p.LineComments {
		if !bytes.HasPrefix(rest, []byte(marker)) {
			continue
		}
		if p.WordStartComments && !atWordStart(s.src, i) {
			continue
		}
		consider(opener{kind: LineComment, length: len(marker), end: s.lineEnd})
	}

	for _, sd := range p.Strings {
		if !bytes.HasPrefix(rest, []byte(sd.Open)) || !s.openerAllowed(i, sd.Open) {
			continue
		}
		delim := sd
		if delim.Char {
			end, ok := s.charLiteralEnd(i, delim)
			if !ok {
				continue
			}
			consider(opener{kind: StringLiteral, length: len(delim.Open), end: func(int) int { return end }})
			continue
		}
		consider(opener{kind: StringLiteral, length: len(delim.Open), end: func(start int) int {
			return s.stringEnd(start, delim)
		}})
	}

	if !found && p.RegexLiterals && rest[0] == '/' {
		if end, ok := s.regexEnd(i); ok {
			consider(opener{kind: StringLiteral, length: 1, end: func(int) int { return end }})
		}
	}

	return best, found
}

// openerAllowed rejects word-like openers (r", @", =begin) glued to a
// preceding identifier.
func (s *scan) openerAllowed(i int, open string) bool {
	if open == "" {
		return false
	}
	first := open[0]
	if !isIdentByte(first) && first != '@' {
		return true
	}
	return i == 0 || !isIdentByte(s.src[i-1])
}

func (s *scan) lineEnd(start int) int {
	if idx := bytes.IndexByte(s.src[start:], '\n'); idx >= 0 {
		return start + idx
	}
	return len(s.src)
}

func (s *scan) blockCommentEnd(start int, bc lang.CommentPair) int {
	open, closing := []byte(bc.Open), []byte(bc.Close)
	j := start + len(open)

	if bc.LineAnchored {
		for j < len(s.src) {
			if atLineStart(s.src, j) && bytes.HasPrefix(s.src[j:], closing) {
				return s.lineEnd(j)
			}
			j++
		}
		return len(s.src)
	}

	depth := 1
	for j < len(s.src) {
		rest := s.src[j:]
		switch {
		case bytes.HasPrefix(rest, closing):
			depth--
			j += len(closing)
			if depth == 0 || !bc.Nested {
				return j
			}
		case bc.Nested && bytes.HasPrefix(rest, open):
			depth++
			j += len(open)
		default:
			j++
		}
	}
	return len(s.src)
}

func (s *scan) stringEnd(start int, sd lang.StringDelim) int {
	closing := []byte(sd.Close)
	j := start + len(sd.Open)

	for j < len(s.src) {
		c := s.src[j]
		if len(closing) == 0 {
			return s.lineEnd(j)
		}
		if sd.Escape != 0 && c == sd.Escape {
			j += 2
			continue
		}
		if bytes.HasPrefix(s.src[j:], closing) {
			after := j + len(closing)
			if sd.Doubled && bytes.HasPrefix(s.src[after:], closing) {
				j = after + len(closing)
				continue
			}
			return after
		}
		if c == '\n' && !sd.Multiline {
			if j > start && s.src[j-1] == '\r' {
				return j - 1
			}
			return j
		}
		j++
	}
	return len(s.src)
}

// charLiteralEnd accepts a character literal only when it closes after
// one rune or a short escape sequence.
func (s *scan) charLiteralEnd(start int, sd lang.StringDelim) (int, bool) {
	j := start + len(sd.Open)
	if j >= len(s.src) {
		return 0, false
	}
	closing := []byte(sd.Close)

	if sd.Escape != 0 && s.src[j] == sd.Escape {
		limit := min(len(s.src), j+maxCharLiteral)
		for k := j + 2; k < limit; k++ {
			if s.src[k] == '\n' {
				return 0, false
			}
			if bytes.HasPrefix(s.src[k:], closing) {
				return k + len(closing), true
			}
		}
		return 0, false
	}

	r, size := utf8.DecodeRune(s.src[j:])
	if r == '\n' || r == utf8.RuneError && size <= 1 || bytes.HasPrefix(s.src[j:], closing) {
		return 0, false
	}
	if bytes.HasPrefix(s.src[j+size:], closing) {
		return j + size + len(closing), true
	}
	return 0, false
}

// regexKeywords may directly precede a regex literal.
var regexKeywords = map[string]bool{
	"return": true, "typeof": true, "case": true, "do": true, "else": true,
	"in": true, "of": true, "yield": true, "await": true, "void": true,
	"delete": true, "throw": true, "new": true, "instanceof": true,
}

// regexEnd recognises a /regex/flags literal starting at i. The literal
// must sit in operand position and close on the same line.
func (s *scan) regexEnd(i int) (int, bool) {
	if i+1 < len(s.src) && (s.src[i+1] == '/' || s.src[i+1] == '*') {
		return 0, false
	}
	if !s.operandPosition(i) {
		return 0, false
	}

	inClass := false
	for k := i + 1; k < len(s.src); k++ {
		switch c := s.src[k]; {
		case c == '\n' || c == '\r':
			return 0, false
		case c == '\\':
			k++
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			end := k + 1
			for end < len(s.src) && isLetter(s.src[end]) {
				end++
			}
			return end, true
		}
	}
	return 0, false
}

func (s *scan) operandPosition(i int) bool {
	k := i - 1
	for k >= 0 && (s.src[k] == ' ' || s.src[k] == '\t') {
		k--
	}
	if k < 0 || s.src[k] == '\n' {
		return true
	}

	c := s.src[k]
	if bytes.IndexByte([]byte("(,=:[!&|?{};"), c) >= 0 {
		return true
	}
	if !isIdentByte(c) {
		return false
	}

	wordEnd := k + 1
	for k >= 0 && isIdentByte(s.src[k]) {
		k--
	}
	return regexKeywords[string(s.src[k+1:wordEnd])]
}

func atLineStart(src []byte, i int) bool {
	return i == 0 || src[i-1] == '\n'
}

func atWordStart(src []byte, i int) bool {
	if i == 0 {
		return true
	}
	switch src[i-1] {
	case ' ', '\t', '\n', '\r', ';', '|', '&', '(', ')':
		return true
	default:
		return false
	}
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentByte(c byte) bool {
	return isLetter(c) || c >= '0' && c <= '9' || c == '_' || c >= utf8.RuneSelf
}

// KindAt returns the kind of the region holding offset. Offsets outside
// the scanned text are Code.
func KindAt(regions []Region, offset int) Kind {
	idx := sort.Search(len(regions), func(i int) bool {
		return regions[i].End > offset
	})
	if idx >= len(regions) || offset < regions[idx].Start {
		return Code
	}
	return regions[idx].Kind
}

// Mask returns a copy of src in which every byte outside Code regions,
// except newlines, is replaced by a space. Offsets and line structure are
// unchanged.
func Mask(src []byte, regions []Region) []byte {
	masked := bytes.Clone(src)
	for _, r := range regions {
		if r.Kind == Code {
			continue
		}
		for i := r.Start; i < r.End; i++ {
			if masked[i] != '\n' && masked[i] != '\r' {
				masked[i] = ' '
			}
		}
	}
	return masked
}
