package matcher

import (
	"bytes"
	"regexp"

	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/scanner"
	"github.com/yaklabco/srcmine/pkg/source"
)

// extentCtx resolves construct extents over one scanned file.
type extentCtx struct {
	file    *source.File
	masked  []byte
	regions []scanner.Region
	profile *lang.Profile
}

// resolve returns the end line of the construct whose header is on line n,
// or a failure reason when the extent cannot be closed.
func (c *extentCtx) resolve(n int, h hit) (int, string) {
	switch h.rule.Extent {
	case ExtentLine:
		return n, ""
	case ExtentStatement:
		return c.statement(n)
	}

	switch c.profile.Block {
	case lang.BlockIndent:
		return c.indent(n, h)
	case lang.BlockTerminator:
		if c.profile.Terminator == "}" {
			return c.shellBody(n, h)
		}
		return c.terminator(n)
	default:
		return c.brace(n)
	}
}

func (c *extentCtx) maskedLine(n int) []byte {
	line := c.file.Lines[n-1]
	return c.masked[line.StartOffset:line.NewlineStart]
}

func (c *extentCtx) codeAt(offset int) bool {
	return scanner.KindAt(c.regions, offset) == scanner.Code
}

// codeBlank reports whether a line holds no code: blank, comment-only or
// string-only.
func (c *extentCtx) codeBlank(n int) bool {
	return isBlank(c.maskedLine(n))
}

// endsInString reports whether the terminator of line n lies inside a
// multi-line string.
func (c *extentCtx) endsInString(n int) bool {
	line := c.file.Lines[n-1]
	if line.NewlineStart >= len(c.file.Content) {
		return false
	}
	return scanner.KindAt(c.regions, line.NewlineStart) == scanner.StringLiteral
}

// startsInString reports whether line n opens inside a string that began on
// an earlier line.
func (c *extentCtx) startsInString(n int) bool {
	if n < 2 {
		return false
	}
	start := c.file.Lines[n-1].StartOffset
	return scanner.KindAt(c.regions, start) == scanner.StringLiteral &&
		scanner.KindAt(c.regions, start-1) == scanner.StringLiteral
}

// continued reports a trailing backslash line continuation.
func (c *extentCtx) continued(n int) bool {
	return bytes.HasSuffix(bytes.TrimSpace(c.maskedLine(n)), []byte(`\`))
}

// trailingOperator reports a line whose last code token cannot end a
// statement.
func (c *extentCtx) trailingOperator(n int) bool {
	trimmed := bytes.TrimSpace(c.maskedLine(n))
	switch c.profile.Block {
	case lang.BlockBrace:
		for _, suffix := range []string{"=", ",", "=>", "|", "&&", "+"} {
			if bytes.HasSuffix(trimmed, []byte(suffix)) {
				return true
			}
		}
	case lang.BlockTerminator:
		return bytes.HasSuffix(trimmed, []byte(","))
	}
	return false
}

// nextCodeLine returns the first line after n holding code, or 0.
func (c *extentCtx) nextCodeLine(n int) int {
	for next := n + 1; next <= c.file.LineCount(); next++ {
		if !c.codeBlank(next) {
			return next
		}
	}
	return 0
}

// statement ends on the first line where brackets balance, the line does
// not end inside a string and the line is not continued.
func (c *extentCtx) statement(n int) (int, string) {
	depth := 0
	last := c.file.LineCount()
	for line := n; line <= last; line++ {
		depth = bracketDepth(c.maskedLine(line), depth)
		if depth > 0 || c.endsInString(line) || c.continued(line) {
			continue
		}
		if c.trailingOperator(line) && c.nextCodeLine(line) != 0 {
			continue
		}
		return line, ""
	}
	if depth > 0 || c.endsInString(last) {
		return 0, ReasonUnclosedBrackets
	}
	return last, ""
}

func bracketDepth(masked []byte, depth int) int {
	for _, ch := range masked {
		switch ch {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		}
	}
	return depth
}

var (
	headerTrailers = []string{"=>", "->", "=", ",", "where"}
	headerLeads    = []string{"{", ":", "->", "=>", "."}
	headerLeadWord = map[string]bool{
		"throws": true, "where": true, "extends": true, "implements": true,
		"with": true, "requires": true, "noexcept": true,
	}
)

// brace walks the header until a body opens at bracket depth 0, then until
// the braces balance again.
func (c *extentCtx) brace(n int) (int, string) {
	var (
		depth  int
		body   int
		inBody bool
	)
	last := c.file.LineCount()

	for line := n; line <= last; line++ {
		for _, ch := range c.maskedLine(line) {
			if inBody {
				switch ch {
				case '{':
					body++
				case '}':
					body--
					if body == 0 {
						return line, ""
					}
				}
				continue
			}

			switch ch {
			case '(', '[':
				depth++
			case ')', ']', '}':
				if depth > 0 {
					depth--
				}
			case '{':
				if depth == 0 {
					inBody = true
					body = 1
				} else {
					depth++
				}
			case ';':
				if depth == 0 {
					return line, ""
				}
			}
		}

		if inBody || depth > 0 || c.endsInString(line) || c.continued(line) {
			continue
		}

		next := c.nextCodeLine(line)
		if next == 0 {
			return line, ""
		}
		if hasAnySuffix(bytes.TrimSpace(c.maskedLine(line)), headerTrailers) {
			continue
		}
		if !leadsHeader(bytes.TrimSpace(c.maskedLine(next))) {
			return line, ""
		}
	}

	if inBody || depth > 0 {
		return 0, ReasonUnbalancedBraces
	}
	return last, ""
}

func hasAnySuffix(b []byte, suffixes []string) bool {
	for _, s := range suffixes {
		if !bytes.HasSuffix(b, []byte(s)) {
			continue
		}
		// A keyword suffix must stand alone.
		if isWordByte(s[0]) && len(b) > len(s) && isWordByte(b[len(b)-len(s)-1]) {
			continue
		}
		return true
	}
	return false
}

// leadsHeader reports whether a line continues a header from the previous
// line rather than starting a new statement.
func leadsHeader(trimmed []byte) bool {
	for _, lead := range headerLeads {
		if bytes.HasPrefix(trimmed, []byte(lead)) {
			return true
		}
	}
	return headerLeadWord[string(firstWord(trimmed))]
}

func firstWord(b []byte) []byte {
	end := 0
	for end < len(b) && isWordByte(b[end]) {
		end++
	}
	return b[:end]
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// indent completes the header, then absorbs deeper lines.
func (c *extentCtx) indent(n int, h hit) (int, string) {
	end, reason := c.statement(n)
	if reason != "" {
		return 0, reason
	}

	base := c.file.Indent(n)
	var name []byte
	if c.profile.Name == "haskell" && h.rule.Tag == lang.TagFunction && h.nameEnd > h.nameStart {
		name = c.maskedLine(n)[h.nameStart:h.nameEnd]
	}

	for line := end + 1; line <= c.file.LineCount(); line++ {
		if c.startsInString(line) {
			end = line
			continue
		}
		if c.codeBlank(line) {
			continue
		}

		indent := c.file.Indent(line)
		deeper := indent > base
		if !deeper && name != nil && indent == base {
			deeper = startsWithWord(bytes.TrimSpace(c.maskedLine(line)), name)
		}
		if !deeper {
			break
		}

		stmtEnd, reason := c.statement(line)
		if reason != "" {
			return 0, reason
		}
		end = stmtEnd
		line = stmtEnd
	}

	return end, ""
}

func startsWithWord(b, word []byte) bool {
	if !bytes.HasPrefix(b, word) {
		return false
	}
	return len(b) == len(word) || !isWordByte(b[len(word)]) && b[len(word)] != '\''
}

var rubyEndlessDef = regexp.MustCompile(`^\s*def\s+[\w.]+[?!]?\s*(?:\([^)]*\))?\s+=(?:\s|$)`)

// terminator resolves keyword-terminated bodies (end).
func (c *extentCtx) terminator(n int) (int, string) {
	headerEnd, reason := c.statement(n)
	if reason != "" {
		return 0, reason
	}

	var header []byte
	for line := n; line <= headerEnd; line++ {
		header = append(header, c.maskedLine(line)...)
		header = append(header, '\n')
	}
	if c.selfClosing(header) {
		return headerEnd, ""
	}

	word := []byte(c.profile.Terminator)
	base := c.file.Indent(n)
	for line := headerEnd + 1; line <= c.file.LineCount(); line++ {
		if c.codeBlank(line) || c.file.Indent(line) > base {
			continue
		}
		if startsWithWord(bytes.TrimSpace(c.maskedLine(line)), word) {
			return line, ""
		}
	}
	return 0, ReasonMissingTerminator
}

func (c *extentCtx) selfClosing(header []byte) bool {
	ends := countWord(header, "end")
	switch c.profile.Name {
	case "ruby":
		if rubyEndlessDef.Match(header) {
			return true
		}
		return ends >= 1+countWord(header, "do")+countWord(header, "begin")
	case "lua":
		opens := countWord(header, "function") + countWord(header, "do") + countWord(header, "then")
		return ends > 0 && ends >= opens
	case "elixir":
		opens := countWord(header, "do")
		return opens == 0 || ends >= opens
	default:
		return ends > 0
	}
}

// countWord counts whole-word occurrences of word that are not method
// calls, symbols or keyword-list keys.
func countWord(b []byte, word string) int {
	count := 0
	for i := 0; i+len(word) <= len(b); i++ {
		if string(b[i:i+len(word)]) != word {
			continue
		}
		if i > 0 {
			prev := b[i-1]
			if isWordByte(prev) || prev == '.' || prev == ':' || prev == '@' || prev == '$' {
				continue
			}
		}
		if j := i + len(word); j < len(b) {
			next := b[j]
			if isWordByte(next) || next == ':' || next == '?' || next == '!' {
				continue
			}
		}
		count++
	}
	return count
}

var shellClosers = map[byte]byte{'{': '}', '(': ')'}

// shellBody resolves a shell function body opened by { or (.
func (c *extentCtx) shellBody(n int, h hit) (int, string) {
	openLine, rest := n, c.maskedLine(n)[h.end:]
	if isBlank(rest) {
		openLine = c.nextCodeLine(n)
		if openLine == 0 {
			return 0, ReasonMissingBody
		}
		rest = c.maskedLine(openLine)
	}

	rest = bytes.TrimSpace(rest)
	closer, ok := shellClosers[rest[0]]
	if !ok {
		return 0, ReasonMissingBody
	}
	opener := rest[0]

	depth := 0
	for _, ch := range rest {
		switch ch {
		case opener:
			depth++
		case closer:
			depth--
		}
	}
	if depth <= 0 {
		return openLine, ""
	}

	base := c.file.Indent(n)
	for line := openLine + 1; line <= c.file.LineCount(); line++ {
		if c.codeBlank(line) || c.file.Indent(line) > base {
			continue
		}
		if trimmed := bytes.TrimSpace(c.maskedLine(line)); trimmed[0] == closer {
			return line, ""
		}
	}
	return 0, ReasonMissingTerminator
}
