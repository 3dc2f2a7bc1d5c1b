// Package refs builds a catalog of the top-level definitions and imports of
// a source file.
package refs

import (
	"path/filepath"
	"strings"

	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/matcher"
	"github.com/yaklabco/srcmine/pkg/scanner"
	"github.com/yaklabco/srcmine/pkg/source"
)

// Entry is one definition. Top-level entries carry their direct children.
type Entry struct {
	Tag       lang.Tag   `json:"tag"`
	Name      string     `json:"name"`
	Signature string     `json:"signature"`
	StartLine int        `json:"start_line"`
	EndLine   int        `json:"end_line"`
	Doc       []DocField `json:"doc,omitempty"`
	Children  []Entry    `json:"children,omitempty"`
}

// File is the catalog of one source file.
type File struct {
	Path        string            `json:"path"`
	Base        string            `json:"base"`
	Language    string            `json:"language"`
	Display     string            `json:"display"`
	Description string            `json:"description,omitempty"`
	Lines       int               `json:"lines"`
	Imports     []string          `json:"imports"`
	Definitions []Entry           `json:"definitions"`
	Failures    []matcher.Failure `json:"failures,omitempty"`
}

// Build catalogs file using the default headline tags.
func Build(file *source.File, p *lang.Profile, set *matcher.Set) *File {
	return BuildWith(file, p, set, lang.HeadlineTags())
}

// BuildWith catalogs file. Definitions are the matches of the headline tags
// the language supports that no other definition contains, each with the
// definitions directly inside it. Imports are the first lines of the IMPORT
// matches. Doxygen comments attach to the entries they document, and an
// @file comment near the top supplies the description.
func BuildWith(file *source.File, p *lang.Profile, set *matcher.Set, headline []lang.Tag) *File {
	out := &File{
		Path:     file.Path,
		Base:     filepath.Base(file.Path),
		Language: p.Name,
		Display:  p.Display,
		Lines:    file.LineCount(),
	}

	var tags []lang.Tag
	for _, tag := range headline {
		if tag != lang.TagImport && p.Supports(tag) {
			tags = append(tags, tag)
		}
	}
	if p.Supports(lang.TagImport) {
		tags = append(tags, lang.TagImport)
	}
	if len(tags) == 0 {
		return out
	}

	regions := scanner.Scan(file.Content, p)
	blocks := docBlocks(file, regions)
	out.Description = fileDescription(blocks)

	matches, failures := set.FindAll(tags, file, regions, p)
	out.Failures = failures

	var defs []matcher.Match
	for _, m := range matches {
		if m.Tag == lang.TagImport {
			out.Imports = append(out.Imports, firstLine(m.Text))
			continue
		}
		defs = append(defs, m)
	}

	children := make(map[int][]Entry)
	for _, m := range defs {
		parent, ok := container(defs, m)
		if !ok {
			continue
		}
		if _, nested := container(defs, parent); !nested {
			children[parent.StartLine] = append(children[parent.StartLine], entry(m, blocks))
		}
	}

	for _, m := range defs {
		if _, nested := container(defs, m); nested {
			continue
		}
		e := entry(m, blocks)
		e.Children = children[m.StartLine]
		out.Definitions = append(out.Definitions, e)
	}

	return out
}

func entry(m matcher.Match, blocks []docBlock) Entry {
	return Entry{
		Tag:       m.Tag,
		Name:      m.Name,
		Signature: m.Signature,
		StartLine: m.StartLine,
		EndLine:   m.EndLine,
		Doc:       docFor(blocks, m.StartLine, m.EndLine),
	}
}

// container returns the innermost definition holding m.
func container(defs []matcher.Match, m matcher.Match) (matcher.Match, bool) {
	var (
		best  matcher.Match
		found bool
	)
	for _, outer := range defs {
		if outer.StartLine == m.StartLine || !outer.Contains(m) {
			continue
		}
		if !found || outer.StartLine > best.StartLine {
			best = outer
			found = true
		}
	}
	return best, found
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}
