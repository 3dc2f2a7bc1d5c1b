// Package matcher recognises construct headers on masked source lines and
// resolves how far each construct extends.
package matcher

import (
	"bytes"
	"slices"
	"strings"
	"sync"

	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/scanner"
	"github.com/yaklabco/srcmine/pkg/source"
)

// Set holds the rule tables of every language. It is immutable and safe
// for concurrent use.
type Set struct {
	rules map[string][]Rule
}

var (
	defaultSet  *Set
	defaultOnce sync.Once
)

// Default returns the shared rule set built from the builtin tables.
func Default() *Set {
	defaultOnce.Do(func() {
		defaultSet = NewSet(builtinRules())
	})
	return defaultSet
}

// NewSet builds a set from per-language rule tables.
func NewSet(tables map[string][]Rule) *Set {
	rules := make(map[string][]Rule, len(tables))
	for name, table := range tables {
		rules[name] = slices.Clone(table)
	}
	return &Set{rules: rules}
}

// Rules returns the rule table of a language in declaration order.
func (s *Set) Rules(language string) []Rule {
	return slices.Clone(s.rules[language])
}

// Find returns the constructs of one tag in file.
func (s *Set) Find(tag lang.Tag, file *source.File, regions []scanner.Region, p *lang.Profile) ([]Match, []Failure) {
	return s.FindAll([]lang.Tag{tag}, file, regions, p)
}

// FindAll returns the constructs whose tag is in tags. Each line yields at
// most one header: the rule that wins the tie-break among all of the
// language's rules. Matches are ordered by start line.
func (s *Set) FindAll(tags []lang.Tag, file *source.File, regions []scanner.Region, p *lang.Profile) ([]Match, []Failure) {
	rules := s.rules[p.Name]
	if len(rules) == 0 || len(tags) == 0 {
		return nil, nil
	}

	wanted := make(map[lang.Tag]bool, len(tags))
	for _, tag := range tags {
		wanted[tag] = true
	}

	ctx := &extentCtx{
		file:    file,
		masked:  scanner.Mask(file.Content, regions),
		regions: regions,
		profile: p,
	}

	var (
		matches  []Match
		failures []Failure
	)

	for n := 1; n <= file.LineCount(); n++ {
		masked := ctx.maskedLine(n)
		if isBlank(masked) {
			continue
		}

		best, ok := winner(rules, masked)
		if !ok || !wanted[best.rule.Tag] {
			continue
		}

		line := file.Lines[n-1]
		if !ctx.codeAt(line.StartOffset + firstNonBlank(masked[best.start:]) + best.start) {
			continue
		}

		end, reason := ctx.resolve(n, best)
		if reason != "" {
			end = n
		}
		name := headerName(file, regions, line.StartOffset, best, end)
		if reason != "" {
			failures = append(failures, Failure{
				Tag:    best.rule.Tag,
				Path:   file.Path,
				Name:   name,
				Line:   n,
				Reason: reason,
			})
			continue
		}

		matches = append(matches, Match{
			Tag:       best.rule.Tag,
			Language:  p.Name,
			Path:      file.Path,
			Name:      name,
			Signature: signature(file, regions, n),
			StartLine: n,
			EndLine:   end,
			Text:      string(file.Span(n, end)),
		})
	}

	return matches, failures
}

func winner(rules []Rule, masked []byte) (hit, bool) {
	var (
		best  hit
		found bool
	)
	for i := range rules {
		h, ok := rules[i].match(masked, i)
		if !ok {
			continue
		}
		if !found || h.beats(best) {
			best = h
			found = true
		}
	}
	return best, found
}

// headerName reads the name group from the raw content. Masking blanks
// string literals, so a span that touches one widens to the whole literal,
// and a comment ends it. A name that opens a bracket group is named by the
// group's first entry, looked up through line end.
func headerName(file *source.File, regions []scanner.Region, lineStart int, h hit, end int) string {
	if h.nameStart < 0 || h.nameEnd <= h.nameStart {
		return anonymousName(h.rule.Tag)
	}

	name := cleanName(rawSpan(file.Content, regions, lineStart+h.nameStart, lineStart+h.nameEnd))
	if name != "" && strings.IndexByte(openBrackets, name[0]) >= 0 {
		limit := file.Lines[end-1].NewlineStart
		name = groupEntry(file.Content, regions, lineStart+h.nameStart, limit)
	}
	if name == "" {
		return anonymousName(h.rule.Tag)
	}
	return name
}

const (
	openBrackets = "([{"
	separators   = "()[]{}<>,; \t\r\n"
)

// rawSpan returns content[start:end] widened over any string literal it
// touches and cut at the first comment.
func rawSpan(content []byte, regions []scanner.Region, start, end int) string {
	lineBegin := bytes.LastIndexByte(content[:start], '\n') + 1
	lineEnd := bytes.IndexByte(content[start:], '\n')
	if lineEnd < 0 {
		lineEnd = len(content)
	} else {
		lineEnd += start
	}

	for _, r := range regions {
		if r.End <= start || r.Start >= end {
			continue
		}
		switch {
		case r.Kind == scanner.StringLiteral:
			start = max(lineBegin, min(start, r.Start))
			end = max(end, min(r.End, lineEnd))
		case r.Kind.IsComment():
			end = max(start, r.Start)
		}
	}
	return string(content[start:end])
}

// groupEntry returns the first entry after the bracket at offset: a string
// literal's contents or a run of code bytes up to a separator.
func groupEntry(content []byte, regions []scanner.Region, offset, limit int) string {
	i := offset
	for i < limit {
		c := content[i]
		kind := scanner.KindAt(regions, i)
		switch {
		case kind.IsComment(), strings.IndexByte(separators, c) >= 0:
			i++
		case kind == scanner.StringLiteral:
			return cleanName(rawSpan(content, regions, i, i+1))
		default:
			j := i
			for j < limit && scanner.KindAt(regions, j) == scanner.Code && strings.IndexByte(separators, content[j]) < 0 {
				j++
			}
			return cleanName(string(content[i:j]))
		}
	}
	return ""
}

func anonymousName(tag lang.Tag) string {
	if tag == lang.TagModule {
		return "companion"
	}
	return "(anonymous)"
}

func cleanName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSpace(strings.TrimSuffix(name, ";"))
	if len(name) >= 2 {
		first, last := name[0], name[len(name)-1]
		if (first == '"' || first == '\'') && first == last {
			name = name[1 : len(name)-1]
		}
	}
	return name
}

// signature returns the header line up to its last code or string byte,
// without a trailing body opener.
func signature(file *source.File, regions []scanner.Region, n int) string {
	line := file.Lines[n-1]
	end := line.StartOffset
	for i := line.StartOffset; i < line.NewlineStart; i++ {
		c := file.Content[i]
		if c == ' ' || c == '\t' || c == '\r' {
			continue
		}
		if scanner.KindAt(regions, i).IsComment() {
			continue
		}
		end = i + 1
	}

	sig := strings.TrimSpace(string(file.Content[line.StartOffset:end]))
	for _, suffix := range []string{"{", ":", ";", " do"} {
		if strings.HasSuffix(sig, suffix) {
			sig = strings.TrimSpace(strings.TrimSuffix(sig, suffix))
			break
		}
	}
	return sig
}

func isBlank(b []byte) bool {
	return len(bytes.TrimSpace(b)) == 0
}

func firstNonBlank(b []byte) int {
	for i, c := range b {
		if c != ' ' && c != '\t' && c != '\r' && c != '\f' && c != '\v' {
			return i
		}
	}
	return 0
}
