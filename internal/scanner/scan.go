package scanner

import (
	"strings"
	"unicode"

	javapyerrors "github.com/cwbudde/go-javapy/pkg/errors"
	"github.com/cwbudde/go-javapy/pkg/token"
)

// scanOne recognizes exactly one token starting at s.pos, which is
// guaranteed not to be end-of-line. It returns ok == false when it only
// consumed trivia (whitespace or a comment) and the caller should loop.
func (s *Scanner) scanOne() (token.Token, bool) {
	s.skipInlineSpace()
	if s.eol() {
		return token.Token{}, false
	}

	start := s.pos0()
	c := s.peekByte()

	switch {
	case c == '/' && s.pos+1 < len(s.line) && s.line[s.pos+1] == '/':
		text := s.line[s.pos:]
		s.skipLineComment()
		return s.tok(token.COMMENT, text, start), true
	case c == '/' && s.pos+1 < len(s.line) && s.line[s.pos+1] == '*':
		return s.readBlockComment(start), true
	case isIdentStart(rune(c)) || c >= 0x80:
		return s.readIdentifierOrPrefixedLiteral(start), true
	case c >= '0' && c <= '9':
		return s.readNumber(start), true
	case c == '\'' || c == '"':
		return s.readStringLiteral(start, false, false), true
	}

	return s.readOperatorOrPunct(start), true
}

func (s *Scanner) skipInlineSpace() {
	for !s.eol() {
		c := s.peekByte()
		if c == ' ' || c == '\t' || c == '\r' {
			s.pos++
			continue
		}
		break
	}
}

func (s *Scanner) skipLineComment() {
	s.pos = len(s.line)
}

// readBlockComment consumes a /* ... */ comment, possibly spanning
// multiple physical lines, and returns it as a single COMMENT token. The
// scanner does not classify doc comments; internal/buffer picks out
// `/** ... */` comments and holds them for the parser's next declaration.
func (s *Scanner) readBlockComment(start token.Position) token.Token {
	var full strings.Builder
	full.WriteString(s.line[s.pos : s.pos+2])
	s.pos += 2 // consume "/*"
	for {
		for s.pos < len(s.line) {
			if s.line[s.pos] == '*' && s.pos+1 < len(s.line) && s.line[s.pos+1] == '/' {
				full.WriteString("*/")
				s.pos += 2
				return s.tok(token.COMMENT, full.String(), start)
			}
			full.WriteByte(s.line[s.pos])
			s.pos++
		}
		full.WriteByte('\n')
		if !s.fetchLine() {
			s.fail(javapyerrors.ScanUnterminatedComment, "unterminated block comment")
			return s.tok(token.COMMENT, full.String(), start)
		}
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// readIdentifierOrPrefixedLiteral reads a bare identifier/keyword, or
// detects a string-literal prefix combination (r/R, b/B, f/F) immediately
// followed by a quote and dispatches to readStringLiteral instead.
func (s *Scanner) readIdentifierOrPrefixedLiteral(start token.Position) token.Token {
	from := s.pos
	for !s.eol() {
		r, size := s.peekRune()
		if !isIdentPart(r) {
			break
		}
		s.pos += size
	}
	word := s.line[from:s.pos]

	if len(word) <= 2 && !s.eol() && (s.peekByte() == '\'' || s.peekByte() == '"') {
		if raw, fstr, ok := prefixLetters(word); ok {
			return s.readStringLiteral(start, raw, fstr)
		}
	}
	tk := s.tok(token.LookupName(word), word, start)
	switch word {
	case "new":
		s.scopes.push(newScope)
	case "switch":
		s.scopes.push(switchScope)
	}
	return tk
}

// prefixLetters classifies a short word as a string-literal prefix
// combination (any order/case of r/R, b/B, f/F).
func prefixLetters(word string) (raw, fstr, ok bool) {
	ok = true
	for _, c := range strings.ToLower(word) {
		switch c {
		case 'r':
			raw = true
		case 'f':
			fstr = true
		case 'b':
			// byte-string prefix: tracked only for round-trip spelling
		default:
			return false, false, false
		}
	}
	return raw, fstr, ok
}
