package matcher

import (
	"fmt"
	"regexp"

	"github.com/yaklabco/srcmine/pkg/lang"
)

// Specificity ranks rules that match the same line.
type Specificity int

const (
	// Shape rules recognise a generic "type name(" layout.
	Shape Specificity = iota

	// Keyword rules are anchored on a language keyword and outrank shapes.
	Keyword
)

// String returns the specificity name.
func (s Specificity) String() string {
	if s == Keyword {
		return "keyword"
	}
	return "shape"
}

// Extent selects how far a construct reaches past its header.
type Extent int

const (
	// ExtentBlock follows the profile block style.
	ExtentBlock Extent = iota

	// ExtentStatement ends with the header line once brackets balance.
	ExtentStatement

	// ExtentLine is the header line only.
	ExtentLine
)

// String returns the extent name.
func (e Extent) String() string {
	switch e {
	case ExtentBlock:
		return "block"
	case ExtentStatement:
		return "statement"
	case ExtentLine:
		return "line"
	default:
		return "unknown"
	}
}

// Rule recognises one header shape for a tag.
type Rule struct {
	Tag lang.Tag

	// Header runs against a masked line. It must define a "name" group.
	Header *regexp.Regexp

	// Reject, when set, vetoes lines it matches.
	Reject *regexp.Regexp

	Class  Specificity
	Extent Extent

	nameGroup int
}

// statementTags default to ExtentStatement.
var statementTags = map[lang.Tag]bool{
	lang.TagImport:    true,
	lang.TagConstant:  true,
	lang.TagVariable:  true,
	lang.TagMacro:     true,
	lang.TagTypeAlias: true,
	lang.TagTypedef:   true,
	lang.TagProperty:  true,
	lang.TagDecorator: true,
}

func newRule(tag lang.Tag, class Specificity, pattern string) Rule {
	re := regexp.MustCompile(pattern)
	group := re.SubexpIndex("name")
	if group < 0 {
		panic(fmt.Sprintf("matcher: %s pattern %q has no name group", tag, pattern))
	}

	extent := ExtentBlock
	if statementTags[tag] {
		extent = ExtentStatement
	}

	return Rule{
		Tag:       tag,
		Header:    re,
		Class:     class,
		Extent:    extent,
		nameGroup: group,
	}
}

func keyword(tag lang.Tag, pattern string) Rule {
	return newRule(tag, Keyword, pattern)
}

func shape(tag lang.Tag, pattern string) Rule {
	return newRule(tag, Shape, pattern)
}

func (r Rule) rejecting(pattern string) Rule {
	r.Reject = regexp.MustCompile(pattern)
	return r
}

func (r Rule) statement() Rule {
	r.Extent = ExtentStatement
	return r
}

func (r Rule) line() Rule {
	r.Extent = ExtentLine
	return r
}

// controlKeywords never name a type or a declaration in a Shape header.
var controlKeywords = map[string]bool{
	"return": true, "if": true, "else": true, "while": true, "for": true,
	"switch": true, "case": true, "catch": true, "throw": true, "new": true,
	"delete": true, "sizeof": true, "do": true, "goto": true, "await": true,
	"yield": true, "typeof": true, "elif": true, "try": true, "foreach": true,
	"lock": true, "using": true, "match": true, "when": true, "echo": true,
	"print": true, "throws": true, "co_return": true, "co_await": true,
}

var wordPattern = regexp.MustCompile(`[A-Za-z_]\w*`)

// hit is a rule match on one masked line. Offsets are relative to the line.
type hit struct {
	rule      *Rule
	order     int
	start     int
	end       int
	nameStart int
	nameEnd   int
}

func (h hit) length() int {
	return h.end - h.start
}

// match applies the rule to a masked line.
func (r *Rule) match(masked []byte, order int) (hit, bool) {
	loc := r.Header.FindSubmatchIndex(masked)
	if loc == nil {
		return hit{}, false
	}
	if r.Reject != nil && r.Reject.Match(masked) {
		return hit{}, false
	}

	h := hit{
		rule:      r,
		order:     order,
		start:     loc[0],
		end:       loc[1],
		nameStart: loc[2*r.nameGroup],
		nameEnd:   loc[2*r.nameGroup+1],
	}

	if r.Class == Shape {
		upTo := h.end
		if h.nameEnd > 0 {
			upTo = h.nameEnd
		}
		for _, word := range wordPattern.FindAll(masked[h.start:upTo], -1) {
			if controlKeywords[string(word)] {
				return hit{}, false
			}
		}
	}

	return h, true
}

// beats reports whether h wins the tie-break against other.
func (h hit) beats(other hit) bool {
	if h.rule.Class != other.rule.Class {
		return h.rule.Class > other.rule.Class
	}
	if h.length() != other.length() {
		return h.length() > other.length()
	}
	return h.order < other.order
}
