package matcher

import "github.com/yaklabco/srcmine/pkg/lang"

// Match is one resolved construct.
type Match struct {
	Tag       lang.Tag `json:"tag"`
	Language  string   `json:"language"`
	Path      string   `json:"path"`
	Name      string   `json:"name"`
	Signature string   `json:"signature"`
	StartLine int      `json:"start_line"`
	EndLine   int      `json:"end_line"`

	// Text holds the verbatim source of lines StartLine..EndLine.
	Text string `json:"text"`
}

// Contains reports whether other lies within the line range of m.
func (m Match) Contains(other Match) bool {
	return m.StartLine <= other.StartLine && other.EndLine <= m.EndLine
}

// Failure is a header whose extent could not be resolved.
type Failure struct {
	Tag    lang.Tag `json:"tag"`
	Path   string   `json:"path"`
	Name   string   `json:"name"`
	Line   int      `json:"line"`
	Reason string   `json:"reason"`
}

// Failure reasons.
const (
	ReasonUnbalancedBraces  = "unbalanced braces at end of file"
	ReasonUnclosedBrackets  = "unclosed brackets at end of file"
	ReasonMissingTerminator = "missing terminator at end of file"
	ReasonMissingBody       = "header has no body"
)
