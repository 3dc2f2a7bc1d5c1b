package refs

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/srcmine/pkg/scanner"
	"github.com/yaklabco/srcmine/pkg/source"
)

// DocField is one Doxygen field of a documentation comment.
type DocField struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// Label returns the field's rendered label, e.g. "Param[in]:".
func (f DocField) Label() string {
	if f.Tag == "" {
		return ":"
	}
	return strings.ToUpper(f.Tag[:1]) + f.Tag[1:] + ":"
}

// docTags are the recognised tags in rendering order.
var docTags = []string{
	"brief", "details", "param", "param[in]", "param[out]", "return", "retval",
	"exception", "throws", "warning", "deprecated", "note", "see", "sa",
	"satisfies", "pre", "post",
}

var (
	docTagPattern = regexp.MustCompile(`[@\\](?:(param)(\[[^\]]+\])?|(` + tagAlternation() + `))`)
	fileTag       = regexp.MustCompile(`[@\\]file\b`)
	postfixMarker = regexp.MustCompile(`^\s*(?:#|//+|--|/\*+|;+)!?<`)
	leadMarker    = regexp.MustCompile(`^(?:--+|;+|[/*#!]+)\s*`)
)

const (
	maxDescription = 200
	// docGap is how many lines may separate a comment from its definition.
	docGap = 2
	// fileHeaderLines bounds where a file description may start.
	fileHeaderLines = 10
)

// tagAlternation joins the non-param tags longest first, so "see" never
// shadows a longer tag sharing its prefix.
func tagAlternation() string {
	var tags []string
	for _, tag := range docTags {
		if !strings.HasPrefix(tag, "param") {
			tags = append(tags, regexp.QuoteMeta(tag))
		}
	}
	slices.SortStableFunc(tags, func(a, b string) int { return len(b) - len(a) })
	return strings.Join(tags, "|")
}

// ParseDoc extracts the Doxygen fields of a comment. Both @tag and \tag
// forms are recognised. A field runs to the next tag, with whitespace
// collapsed; repeated tags are joined by a space. Known tags come first in
// a fixed order, other param directions follow in order of appearance.
func ParseDoc(comment string) []DocField {
	text := stripDelimiters(comment)
	found := docTagPattern.FindAllStringSubmatchIndex(text, -1)
	if len(found) == 0 {
		return nil
	}

	values := make(map[string][]string)
	var order []string
	for i, m := range found {
		var tag string
		switch {
		case m[2] >= 0 && m[4] >= 0:
			tag = "param" + text[m[4]:m[5]]
		case m[2] >= 0:
			tag = "param"
		default:
			tag = text[m[6]:m[7]]
		}

		end := len(text)
		if i+1 < len(found) {
			end = found[i+1][0]
		}
		content := strings.Join(strings.Fields(text[m[1]:end]), " ")
		if content == "" {
			continue
		}
		if _, seen := values[tag]; !seen {
			order = append(order, tag)
		}
		values[tag] = append(values[tag], content)
	}

	var fields []DocField
	for _, tag := range docTags {
		if v, ok := values[tag]; ok {
			fields = append(fields, DocField{Tag: tag, Text: strings.Join(v, " ")})
		}
	}
	for _, tag := range order {
		if !slices.Contains(docTags, tag) {
			fields = append(fields, DocField{Tag: tag, Text: strings.Join(values[tag], " ")})
		}
	}
	return fields
}

func stripDelimiters(comment string) string {
	comment = strings.ReplaceAll(comment, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(comment, "\n") {
		line = strings.TrimSpace(line)
		for _, closer := range []string{"*/", `"""`, "'''", "-}"} {
			line = strings.TrimSpace(strings.TrimSuffix(line, closer))
		}
		for _, opener := range []string{`"""`, "'''", "{-"} {
			line = strings.TrimPrefix(line, opener)
		}
		line = leadMarker.ReplaceAllString(line, "")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// docBlock is a comment, a run of standalone line comments, or a
// standalone string literal, spanning lines first..last.
type docBlock struct {
	first, last int
	kind        scanner.Kind
	text        string
	// trailing blocks share their first line with code.
	trailing bool
}

func docBlocks(file *source.File, regions []scanner.Region) []docBlock {
	var blocks []docBlock
	for _, r := range regions {
		if r.Kind == scanner.Code || r.End <= r.Start {
			continue
		}

		first := file.LineAt(r.Start)
		last := file.LineAt(r.End - 1)
		line := file.Lines[first-1]
		trailing := strings.TrimSpace(string(file.Content[line.StartOffset:r.Start])) != ""

		if r.Kind == scanner.StringLiteral {
			end := file.Lines[last-1]
			after := strings.TrimSpace(string(file.Content[min(r.End, end.NewlineStart):end.NewlineStart]))
			if trailing || (after != "" && after != ";") {
				continue
			}
		}

		text := string(file.Content[r.Start:r.End])
		if n := len(blocks); n > 0 && r.Kind == scanner.LineComment && !trailing {
			prev := &blocks[n-1]
			if prev.kind == scanner.LineComment && !prev.trailing && prev.last == first-1 {
				prev.last = last
				prev.text += "\n" + text
				continue
			}
		}
		blocks = append(blocks, docBlock{first: first, last: last, kind: r.Kind, text: text, trailing: trailing})
	}
	return blocks
}

// docFor returns the fields of the comment that documents lines
// start..end: a postfix comment on the last line, else the nearest comment
// ending at most docGap lines above, else a docstring opening the body,
// else a postfix comment at most docGap lines below.
func docFor(blocks []docBlock, start, end int) []DocField {
	for _, b := range blocks {
		if b.trailing && b.kind.IsComment() && b.first == end && postfixMarker.MatchString(b.text) {
			return ParseDoc(b.text)
		}
	}

	var preceding *docBlock
	for i := range blocks {
		b := &blocks[i]
		if b.trailing || !b.kind.IsComment() || b.last >= start || start-b.last > docGap {
			continue
		}
		if preceding == nil || b.last > preceding.last {
			preceding = b
		}
	}
	if preceding != nil {
		return ParseDoc(preceding.text)
	}

	for _, b := range blocks {
		if b.trailing || b.first <= start {
			continue
		}
		if b.first > end {
			break
		}
		if b.kind == scanner.StringLiteral {
			if fields := ParseDoc(b.text); len(fields) > 0 {
				return fields
			}
		}
		break
	}

	for _, b := range blocks {
		if b.trailing || !b.kind.IsComment() || b.first <= end || b.first-end > docGap {
			continue
		}
		if postfixMarker.MatchString(b.text) {
			return ParseDoc(b.text)
		}
	}
	return nil
}

// fileDescription returns the brief of the first @file block near the top
// of the file, shortened to maxDescription runes.
func fileDescription(blocks []docBlock) string {
	for _, b := range blocks {
		if b.first > fileHeaderLines {
			break
		}
		if b.trailing || !fileTag.MatchString(b.text) {
			continue
		}
		for _, f := range ParseDoc(b.text) {
			if f.Tag == "brief" {
				return shorten(f.Text, maxDescription)
			}
		}
		return ""
	}
	return ""
}

func shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}
