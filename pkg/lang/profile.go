// Package lang holds the language registry: lexical profiles for every
// supported language, keyed by file extension, plus the construct tags each
// language supports.
package lang

import "slices"

// BlockStyle selects how the extent of a construct body is resolved.
type BlockStyle int

const (
	// BlockBrace bodies are delimited by balanced curly braces.
	BlockBrace BlockStyle = iota

	// BlockIndent bodies are the lines indented deeper than the header.
	BlockIndent

	// BlockTerminator bodies run until a terminator token such as "end".
	BlockTerminator
)

// String returns a readable name for the block style.
func (b BlockStyle) String() string {
	switch b {
	case BlockBrace:
		return "brace"
	case BlockIndent:
		return "indent"
	case BlockTerminator:
		return "terminator"
	default:
		return "unknown"
	}
}

// CommentPair describes a block comment.
type CommentPair struct {
	Open  string
	Close string

	// Nested block comments count depth instead of closing on the first Close.
	Nested bool

	// LineAnchored markers only count at column 0 (Ruby =begin, Perl =pod).
	LineAnchored bool
}

// StringDelim describes one string or character literal form.
type StringDelim struct {
	Open  string
	Close string

	// Escape is the escape byte, or 0 for raw literals.
	Escape byte

	// Doubled means a doubled Close sequence is an escaped delimiter
	// (C# verbatim strings).
	Doubled bool

	// Multiline literals may span newlines. Others end at an unescaped newline.
	Multiline bool

	// Char literals only open when they close after a single rune or a short
	// escape sequence. Otherwise the quote stays code (Rust lifetimes,
	// Haskell primes, C++ digit separators).
	Char bool
}

// Profile is the immutable lexical ruleset for one language.
type Profile struct {
	// Name is the canonical identifier, e.g. "python".
	Name string

	// Display is the human readable name, e.g. "Python".
	Display string

	// Extensions are lowercase file extensions including the leading dot.
	Extensions []string

	// Aliases are alternative identifiers accepted by Lookup.
	Aliases []string

	// LineComments are line comment markers, e.g. "//", "#".
	LineComments []string

	// WordStartComments means a line comment marker only counts at the start
	// of a word (shell "$#", Perl "$#array").
	WordStartComments bool

	// BlockComments are the block comment forms.
	BlockComments []CommentPair

	// Strings are the string and character literal forms.
	Strings []StringDelim

	// RegexLiterals enables JavaScript-style /regex/ literal detection.
	RegexLiterals bool

	// Block selects the body extent strategy.
	Block BlockStyle

	// Terminator ends a BlockTerminator body, e.g. "end" or "}".
	Terminator string

	// Tags are the supported construct tags in canonical order.
	Tags []Tag
}

// Supports reports whether the language defines the tag.
func (p *Profile) Supports(tag Tag) bool {
	return slices.Contains(p.Tags, tag)
}

// SupportedTags returns a copy of the supported tags.
func (p *Profile) SupportedTags() []Tag {
	return slices.Clone(p.Tags)
}
