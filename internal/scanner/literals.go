package scanner

import (
	javapyerrors "github.com/cwbudde/go-javapy/pkg/errors"
	"github.com/cwbudde/go-javapy/pkg/token"
)

// readNumber reads a decimal, hex (0x), binary (0b), or octal (0...)
// literal with underscore separators, an optional float form with
// exponent, and the usual fFdDlL suffixes; hex floats use a p/P exponent.
func (s *Scanner) readNumber(start token.Position) token.Token {
	from := s.pos
	isFloat := false

	if s.peekByte() == '0' && s.pos+1 < len(s.line) && (lower(s.line[s.pos+1]) == 'x') {
		s.pos += 2
		s.consumeDigits(isHexDigit)
		if !s.eol() && s.peekByte() == '.' {
			isFloat = true
			s.pos++
			s.consumeDigits(isHexDigit)
		}
		if !s.eol() && lower(s.peekByte()) == 'p' {
			isFloat = true
			s.consumeExponent()
		}
	} else if s.peekByte() == '0' && s.pos+1 < len(s.line) && lower(s.line[s.pos+1]) == 'b' {
		s.pos += 2
		s.consumeDigits(isBinDigit)
	} else {
		s.consumeDigits(isDecDigit)
		if !s.eol() && s.peekByte() == '.' && s.pos+1 < len(s.line) && isDecDigit(s.line[s.pos+1]) {
			isFloat = true
			s.pos++
			s.consumeDigits(isDecDigit)
		}
		if !s.eol() && lower(s.peekByte()) == 'e' {
			isFloat = true
			s.consumeExponent()
		}
	}

	if !s.eol() {
		switch lower(s.peekByte()) {
		case 'f', 'd':
			isFloat = true
			s.pos++
		case 'l':
			s.pos++
		}
	}
	_ = isFloat
	return s.tok(token.NUMBER, s.line[from:s.pos], start)
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

func isDecDigit(b byte) bool { return b == '_' || (b >= '0' && b <= '9') }
func isHexDigit(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (lower(b) >= 'a' && lower(b) <= 'f')
}
func isBinDigit(b byte) bool { return b == '_' || b == '0' || b == '1' }

func (s *Scanner) consumeDigits(pred func(byte) bool) {
	for !s.eol() && pred(s.peekByte()) {
		s.pos++
	}
}

func (s *Scanner) consumeExponent() {
	s.pos++ // e/p
	if !s.eol() && (s.peekByte() == '+' || s.peekByte() == '-') {
		s.pos++
	}
	s.consumeDigits(isDecDigit)
}

// readStringLiteral reads a single/double-quoted or triple-quoted string,
// dispatching to the f-string segment reader when fstr is set. raw
// suppresses escape processing (tracked only for faithful re-rendering;
// the scanner does not interpret escapes at all, preserving Raw exactly).
func (s *Scanner) readStringLiteral(start token.Position, raw, fstr bool) token.Token {
	quote := rune(s.peekByte())
	triple := s.pos+2 < len(s.line) && rune(s.line[s.pos+1]) == quote && rune(s.line[s.pos+2]) == quote
	width := 1
	if triple {
		width = 3
	}
	from := s.pos
	s.pos += width

	if fstr {
		return s.readFString(start, quote, triple, from)
	}

	for {
		for !s.eol() {
			c := s.peekByte()
			if rune(c) == quote {
				if !triple {
					s.pos++
					return s.tok(token.STRING, s.line[from:s.pos], start)
				}
				if s.pos+2 < len(s.line) && rune(s.line[s.pos+1]) == quote && rune(s.line[s.pos+2]) == quote {
					s.pos += 3
					return s.tok(token.STRING, s.line[from:s.pos], start)
				}
			}
			if c == '\\' && !raw && s.pos+1 < len(s.line) {
				s.pos += 2
				continue
			}
			s.pos++
		}
		if !triple {
			s.fail(javapyerrors.ScanUnterminatedString, "unterminated string literal")
			return s.tok(token.STRING, s.line[from:s.pos], start)
		}
		if !s.fetchLine() {
			s.fail(javapyerrors.ScanUnterminatedString, "unterminated triple-quoted string literal")
			return s.tok(token.STRING, s.line[from:s.pos], start)
		}
	}
}

// readFString lexes an interpolated string as a flat sequence of segment
// tokens: FSTRING_BEGIN up to the first `%{` or the close quote,
// FSTRING_MIDDLE/FSTRING_END for subsequent segments after each `}`.
// Interpolation holes re-enter ordinary token recognition via the
// scanner's normal scopeStack (fstringHoleScope), so NextToken naturally
// parses the embedded expression and returns here on the hole's `}`.
func (s *Scanner) readFString(start token.Position, quote rune, triple bool, from int) token.Token {
	s.scopes.pushFString(fstringDelim{quote: quote, triple: triple})
	return s.readFStringSegment(start, token.FSTRING_BEGIN, from)
}

// readFStringSegment reads one segment of an active f-string, starting
// at the opening quote (kind==FSTRING_BEGIN) or at a hole's closing `}`
// (kind==FSTRING_MIDDLE/FSTRING_END), stopping at the
// next unescaped `%{` (pushing an fstringHoleScope and returning a
// not-yet-END segment) or at the closing quote (returning FSTRING_END and
// popping the fstring scope).
func (s *Scanner) readFStringSegment(start token.Position, kind token.Kind, from int) token.Token {
	d := s.scopes.topFString()
	width := 1
	if d.triple {
		width = 3
	}
	for {
		for !s.eol() {
			c := s.peekByte()
			switch {
			case rune(c) == d.quote && (!d.triple || (s.pos+2 < len(s.line) && rune(s.line[s.pos+1]) == d.quote && rune(s.line[s.pos+2]) == d.quote)):
				s.pos += width
				s.scopes.pop()
				return s.tok(token.FSTRING_END, s.line[from:s.pos], start)
			case c == '%' && s.pos+1 < len(s.line) && s.line[s.pos+1] == '{':
				text := s.line[from:s.pos]
				s.pos += 2
				s.scopes.push(fstringHoleScope)
				return s.tok(fstringSegmentKind(kind), text, start)
			case c == '%' && s.pos+1 < len(s.line) && (s.line[s.pos+1] == '%' || s.line[s.pos+1] == 'n'):
				s.pos += 2
			default:
				s.pos++
			}
		}
		if !s.fetchLine() {
			s.fail(javapyerrors.ScanUnterminatedString, "unterminated f-string literal")
			return s.tok(fstringSegmentKind(kind), s.line[from:s.pos], start)
		}
	}
}

func fstringSegmentKind(openKind token.Kind) token.Kind {
	if openKind == token.FSTRING_BEGIN {
		return token.FSTRING_BEGIN
	}
	return token.FSTRING_MIDDLE
}

// closeFStringHole is invoked by the operator scanner when it sees the `}`
// that ends an active fstringHoleScope; it resumes segment scanning at that
// brace, so the `}` is the first character of the next segment's text.
func (s *Scanner) closeFStringHole(start token.Position) token.Token {
	s.scopes.pop() // fstringHoleScope
	return s.readFStringSegment(start, token.FSTRING_MIDDLE, s.pos)
}
