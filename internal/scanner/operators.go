package scanner

import (
	javapyerrors "github.com/cwbudde/go-javapy/pkg/errors"
	"github.com/cwbudde/go-javapy/pkg/token"
)

// cbrackFrame parallels the CBRACK entries currently on the scope stack;
// hasStatement is true when the matching `{` also pushed a companion
// STATEMENT scope (an indented body nested inside braces, per spec.md §4.1).
type cbrackFrame struct {
	hasStatement bool
	hadConstruct bool // a NEW/SWITCH sat directly below this CBRACK
}

// operatorHandler recognizes one multi-character operator family starting
// at the dispatch byte, mirroring the teacher's tokenHandlers dispatch
// table (internal/lexer/lexer.go).
type operatorHandler func(s *Scanner, start token.Position) token.Token

var operatorHandlers map[byte]operatorHandler

func init() {
	operatorHandlers = map[byte]operatorHandler{
		'(': (*Scanner).handleLParen,
		')': (*Scanner).handleRParen,
		'[': (*Scanner).handleLBracket,
		']': (*Scanner).handleRBracket,
		'{': (*Scanner).handleLBrace,
		'}': (*Scanner).handleRBrace,
		':': (*Scanner).handleColon,
		'+': (*Scanner).handlePlus,
		'-': (*Scanner).handleMinus,
		'*': (*Scanner).handleStar,
		'/': (*Scanner).handleSlash,
		'%': (*Scanner).handlePercent,
		'=': (*Scanner).handleEquals,
		'!': (*Scanner).handleBang,
		'<': (*Scanner).handleLess,
		'>': (*Scanner).handleGreater,
		'&': (*Scanner).handleAmp,
		'|': (*Scanner).handlePipe,
		'^': (*Scanner).handleCaret,
		'~': (*Scanner).handleTilde,
		'.': (*Scanner).handleDot,
		',': simple(token.COMMA),
		';': simple(token.SEMI),
		'@': simple(token.AT),
		'?': simple(token.QUESTION),
	}
}

func (s *Scanner) readOperatorOrPunct(start token.Position) token.Token {
	c := s.peekByte()
	if c == '}' && s.inFStringHole() {
		return s.closeFStringHole(start)
	}
	if h, ok := operatorHandlers[c]; ok {
		return h(s, start)
	}
	s.pos++
	s.fail(javapyerrors.ScanMalformedToken, "unexpected character")
	return s.tok(token.ILLEGAL, string(c), start)
}

func (s *Scanner) inFStringHole() bool { return s.scopes.top() == fstringHoleScope }

func simple(k token.Kind) operatorHandler {
	return func(s *Scanner, start token.Position) token.Token {
		lex := string(s.peekByte())
		s.pos++
		return s.tok(k, lex, start)
	}
}

func (s *Scanner) match(offset int, c byte) bool {
	return s.pos+offset < len(s.line) && s.line[s.pos+offset] == c
}

// --- brackets & scope transitions -----------------------------------------

func (s *Scanner) handleLParen(start token.Position) token.Token {
	s.pos++
	s.scopes.push(parenScope)
	return s.tok(token.LPAREN, "(", start)
}

func (s *Scanner) handleRParen(start token.Position) token.Token {
	s.pos++
	if s.scopes.top() == parenScope {
		s.scopes.pop()
	}
	if s.scopes.top() == newScope {
		if !s.anonymousBodyFollows() {
			s.scopes.pop()
		}
	}
	return s.tok(token.RPAREN, ")", start)
}

// anonymousBodyFollows reports whether, from the current position, the
// remaining input is only spaces/tabs up to a `{` that itself has only
// whitespace/comment before its line's end -- the exact predicate
// spec.md §9 requires for "does a construct introduce a further body".
func (s *Scanner) anonymousBodyFollows() bool {
	i := s.pos
	for i < len(s.line) && (s.line[i] == ' ' || s.line[i] == '\t') {
		i++
	}
	if i >= len(s.line) || s.line[i] != '{' {
		return false
	}
	return s.restOfLineIsBlankOrComment(i + 1)
}

func (s *Scanner) handleLBrace(start token.Position) token.Token {
	s.pos++
	prevWasArrow := s.prevKind == token.ARROW
	belowIsConstruct := s.scopes.top() == newScope || s.scopes.top() == switchScope
	frame := cbrackFrame{hadConstruct: belowIsConstruct}
	s.scopes.push(cbrackScope)
	if (prevWasArrow || belowIsConstruct) && s.restOfLineIsBlankOrComment(s.pos) {
		frame.hasStatement = true
		s.scopes.push(statementScope)
	}
	s.cbrackFrames = append(s.cbrackFrames, frame)
	return s.tok(token.LBRACE, "{", start)
}

func (s *Scanner) handleRBrace(start token.Position) token.Token {
	s.pos++
	var frame cbrackFrame
	if n := len(s.cbrackFrames); n > 0 {
		frame = s.cbrackFrames[n-1]
		s.cbrackFrames = s.cbrackFrames[:n-1]
	}
	if frame.hasStatement && s.scopes.top() == statementScope {
		s.scopes.pop()
	}
	if s.scopes.top() == cbrackScope {
		s.scopes.pop()
	}
	if frame.hadConstruct && (s.scopes.top() == newScope || s.scopes.top() == switchScope) {
		s.scopes.pop()
	}
	return s.tok(token.RBRACE, "}", start)
}

func (s *Scanner) handleLBracket(start token.Position) token.Token {
	s.pos++
	if s.scopes.top() == newScope {
		s.scopes.pop()
	}
	s.scopes.push(sqbrackScope)
	return s.tok(token.LBRACKET, "[", start)
}

func (s *Scanner) handleRBracket(start token.Position) token.Token {
	s.pos++
	if s.scopes.top() == sqbrackScope {
		s.scopes.pop()
	}
	return s.tok(token.RBRACKET, "]", start)
}

func (s *Scanner) handleColon(start token.Position) token.Token {
	if s.match(1, ':') {
		s.pos += 2
		return s.tok(token.COLONCOLON, "::", start)
	}
	s.pos++
	if s.scopes.top() == newScope || s.scopes.top() == switchScope {
		s.scopes.pop()
	}
	return s.tok(token.COLON, ":", start)
}

// --- compound operators, longest match first ------------------------------

func (s *Scanner) handlePlus(start token.Position) token.Token {
	return s.longest(start, "++", token.INC, "+=", token.PLUS_ASSIGN, "+", token.PLUS)
}

func (s *Scanner) handleMinus(start token.Position) token.Token {
	if s.match(1, '>') {
		s.pos += 2
		return s.tok(token.ARROW, "->", start)
	}
	return s.longest(start, "--", token.DEC, "-=", token.MINUS_ASSIGN, "-", token.MINUS)
}

func (s *Scanner) handleStar(start token.Position) token.Token {
	return s.longest(start, "*=", token.STAR_ASSIGN, "*", token.STAR)
}

func (s *Scanner) handleSlash(start token.Position) token.Token {
	return s.longest(start, "/=", token.SLASH_ASSIGN, "/", token.SLASH)
}

func (s *Scanner) handlePercent(start token.Position) token.Token {
	if s.match(1, '{') {
		// A bare `%{` outside an active f-string is a malformed token; in a
		// well-formed program this is only reached from inside
		// readFStringSegment, which consumes `%{` itself.
		s.pos++
		return s.tok(token.PERCENT, "%", start)
	}
	return s.longest(start, "%=", token.PERCENT_ASSIGN, "%", token.PERCENT)
}

func (s *Scanner) handleEquals(start token.Position) token.Token {
	return s.longest(start, "==", token.EQ, "=", token.ASSIGN)
}

func (s *Scanner) handleBang(start token.Position) token.Token {
	return s.longest(start, "!=", token.NE, "!", token.NOT)
}

func (s *Scanner) handleLess(start token.Position) token.Token {
	return s.longest(start, "<<=", token.SHL_ASSIGN, "<<", token.SHL, "<=", token.LE, "<", token.LT)
}

func (s *Scanner) handleGreater(start token.Position) token.Token {
	return s.longest(start, ">>>=", token.USHR_ASSIGN, ">>>", token.USHR, ">>=", token.SHR_ASSIGN, ">>", token.SHR, ">=", token.GE, ">", token.GT)
}

func (s *Scanner) handleAmp(start token.Position) token.Token {
	return s.longest(start, "&&", token.AND, "&=", token.AND_ASSIGN, "&", token.BITAND)
}

func (s *Scanner) handlePipe(start token.Position) token.Token {
	return s.longest(start, "||", token.OR, "|=", token.OR_ASSIGN, "|", token.BITOR)
}

func (s *Scanner) handleCaret(start token.Position) token.Token {
	return s.longest(start, "^=", token.XOR_ASSIGN, "^", token.BITXOR)
}

func (s *Scanner) handleTilde(start token.Position) token.Token {
	s.pos++
	return s.tok(token.BITNOT, "~", start)
}

func (s *Scanner) handleDot(start token.Position) token.Token {
	if s.match(1, '.') && s.match(2, '.') {
		s.pos += 3
		return s.tok(token.ELLIPSIS, "...", start)
	}
	s.pos++
	return s.tok(token.DOT, ".", start)
}

// longest tries each (literal, kind) pair in order (callers must list
// longer alternatives first) and returns the first that matches at s.pos.
func (s *Scanner) longest(start token.Position, pairs ...interface{}) token.Token {
	for i := 0; i+1 < len(pairs); i += 2 {
		lit := pairs[i].(string)
		kind := pairs[i+1].(token.Kind)
		if s.hasPrefixAt(lit) {
			s.pos += len(lit)
			return s.tok(kind, lit, start)
		}
	}
	return token.Token{}
}

func (s *Scanner) hasPrefixAt(lit string) bool {
	if s.pos+len(lit) > len(s.line) {
		return false
	}
	return s.line[s.pos:s.pos+len(lit)] == lit
}
