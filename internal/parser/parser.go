// Package parser implements the recursive-descent parser that turns a
// buffered token stream (internal/buffer.Buffer) into a pkg/ast tree,
// accepting either the brace-delimited or the indented dialect
// interchangeably since both dialects share one token-stream shape per
// spec.md §4.1. Grammar productions follow original_source/javapy/parser.py
// one-for-one; the backtracking/error-chaining machinery follows the
// teacher's internal/parser/cursor.go and structured_error.go in style
// (see DESIGN.md).
package parser

import (
	"fmt"

	"github.com/cwbudde/go-javapy/internal/buffer"
	"github.com/cwbudde/go-javapy/pkg/ast"
	javapyerrors "github.com/cwbudde/go-javapy/pkg/errors"
	"github.com/cwbudde/go-javapy/pkg/token"
	"go.uber.org/multierr"
)

// Parser holds the token buffer and tracks the single deepest speculative
// failure seen so far, per spec.md §7's "deeper position wins" chaining
// policy.
type Parser struct {
	buf      *buffer.Buffer
	deepest  *javapyerrors.ParseError
	phase    string
	warnings error
}

// Warnings returns the non-fatal issues accumulated while parsing, such as
// suspicious module directives that don't prevent a tree from being built.
func (p *Parser) Warnings() []error {
	return multierr.Errors(p.warnings)
}

// warnf records a non-fatal diagnostic without aborting the parse.
func (p *Parser) warnf(pos token.Position, format string, args ...interface{}) {
	p.warnings = multierr.Append(p.warnings, fmt.Errorf("%s: %s", pos, fmt.Sprintf(format, args...)))
}

// New constructs a Parser over buf.
func New(buf *buffer.Buffer) *Parser {
	return &Parser{buf: buf}
}

// Parse consumes the full token stream and returns either a
// *ast.CompilationUnit or a *ast.ModuleCompilationUnit, per spec.md §4.3's
// compilation-unit grammar. Parent back-references are assigned on success.
func (p *Parser) Parse() (ast.Node, error) {
	p.skipEncodingAndBlankLines()

	var root ast.Node
	var err error
	if p.atModuleStart() {
		root, err = p.parseModuleCompilationUnit()
	} else {
		root, err = p.parseCompilationUnit()
	}
	if err != nil {
		return nil, err
	}

	p.skipBlankLines()
	if !p.is(token.ENDMARKER) {
		return nil, p.record(javapyerrors.NewParseError(javapyerrors.ParseDangling).
			WithMessage("unexpected trailing input after compilation unit").
			WithPosition(p.pos()).
			WithActual(p.describe(p.cur())).
			Build())
	}

	ast.SetParents(root)
	return root, nil
}

func (p *Parser) skipEncodingAndBlankLines() {
	if p.is(token.ENCODING) {
		p.buf.Advance()
	}
	p.skipBlankLines()
}

func (p *Parser) skipBlankLines() {
	for p.is(token.NL) || p.is(token.NEWLINE) {
		p.buf.Advance()
	}
}

// atModuleStart reports whether the upcoming tokens begin a `module` or
// `open module` declaration rather than an ordinary compilation unit.
func (p *Parser) atModuleStart() bool {
	if p.at("open") {
		return p.peekIdentAt(1, "module")
	}
	return p.at("module")
}

// --- token helpers ---------------------------------------------------------

func (p *Parser) cur() token.Token       { return p.buf.Current() }
func (p *Parser) peek(i int) token.Token { return p.buf.Peek(i) }
func (p *Parser) pos() token.Position    { return p.cur().Start }

func (p *Parser) is(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) at(lexeme string) bool {
	t := p.cur()
	return (t.Kind == token.KEYWORD || t.Kind == token.NAME) && t.Lexeme == lexeme
}

func (p *Parser) atAny(lexemes ...string) bool {
	for _, l := range lexemes {
		if p.at(l) {
			return true
		}
	}
	return false
}

// peekKeyword reports whether the current token is the reserved word kw.
func (p *Parser) peekKeyword(kw string) bool {
	t := p.cur()
	return t.Kind == token.KEYWORD && t.Lexeme == kw
}

// peekKeywordAt reports whether the token i positions ahead is the reserved
// word kw.
func (p *Parser) peekKeywordAt(i int, kw string) bool {
	t := p.peek(i)
	return t.Kind == token.KEYWORD && t.Lexeme == kw
}

// peekIdentAt reports whether the token i positions ahead is the identifier
// or contextual keyword name (module, yield, var, record are contextual).
func (p *Parser) peekIdentAt(i int, name string) bool {
	t := p.peek(i)
	return (t.Kind == token.NAME || t.Kind == token.KEYWORD) && t.Lexeme == name
}

// eat consumes and returns the current token if it has kind k, else records
// and returns a ParseExpected error.
func (p *Parser) eat(k token.Kind) (token.Token, error) {
	if !p.is(k) {
		return token.Token{}, p.record(javapyerrors.NewParseError(javapyerrors.ParseExpected).
			WithPosition(p.pos()).
			WithExpected(k.String()).
			WithActual(p.describe(p.cur())).
			WithPhase(p.phase).
			Build())
	}
	return p.buf.Advance(), nil
}

// eatKeyword consumes the current token if it is the reserved word kw.
func (p *Parser) eatKeyword(kw string) (token.Token, error) {
	if !p.peekKeyword(kw) {
		return token.Token{}, p.record(javapyerrors.NewParseError(javapyerrors.ParseExpected).
			WithPosition(p.pos()).
			WithExpected(fmt.Sprintf("%q", kw)).
			WithActual(p.describe(p.cur())).
			WithPhase(p.phase).
			Build())
	}
	return p.buf.Advance(), nil
}

// eatIdent consumes the current token if it is a bare NAME, returning its
// lexeme.
func (p *Parser) eatIdent() (string, error) {
	t, err := p.eat(token.NAME)
	if err != nil {
		return "", err
	}
	return t.Lexeme, nil
}

// eatContextualWord consumes the current token if it is NAME or KEYWORD
// with the given lexeme -- for contextual words like "module"/"requires"
// that the scanner does not reserve.
func (p *Parser) eatContextualWord(word string) (token.Token, error) {
	t := p.cur()
	if (t.Kind == token.NAME || t.Kind == token.KEYWORD) && t.Lexeme == word {
		return p.buf.Advance(), nil
	}
	return token.Token{}, p.record(javapyerrors.NewParseError(javapyerrors.ParseExpected).
		WithPosition(p.pos()).
		WithExpected(fmt.Sprintf("%q", word)).
		WithActual(p.describe(t)).
		WithPhase(p.phase).
		Build())
}

// endOfStatement consumes the terminator after a simple statement: `;` in
// the brace dialect, NEWLINE in the indented dialect (both are accepted
// interchangeably, since both dialects share one token stream).
func (p *Parser) endOfStatement() error {
	semi := p.is(token.SEMI)
	if semi {
		p.buf.Advance()
	}
	for p.is(token.NL) {
		p.buf.Advance()
	}
	if p.is(token.NEWLINE) {
		p.buf.Advance()
		return nil
	}
	if semi || p.is(token.ENDMARKER) || p.is(token.RBRACE) || p.is(token.DEDENT) {
		return nil
	}
	return p.record(javapyerrors.NewParseError(javapyerrors.ParseExpected).
		WithPosition(p.pos()).
		WithExpected("end of statement").
		WithActual(p.describe(p.cur())).
		WithPhase(p.phase).
		Build())
}

func (p *Parser) describe(t token.Token) string {
	if t.Lexeme != "" {
		return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
	}
	return t.Kind.String()
}

// record merges e into the deepest error seen so far and returns whichever
// of the two is deeper (which may be an earlier error, not e), per the
// "deeper position wins" speculative-chaining policy (spec.md §7).
func (p *Parser) record(e *javapyerrors.ParseError) error {
	p.deepest = javapyerrors.Deeper(p.deepest, e)
	return p.deepest
}

func (p *Parser) errorf(kind javapyerrors.ParseKind, format string, args ...interface{}) error {
	return p.record(javapyerrors.NewParseError(kind).
		WithMessage(fmt.Sprintf(format, args...)).
		WithPosition(p.pos()).
		WithPhase(p.phase).
		Build())
}

// withPhase runs fn with p.phase temporarily set to name, restoring the
// previous phase afterward -- purely for error messages ("while parsing
// class body").
func withPhase[T any](p *Parser, name string, fn func() (T, error)) (T, error) {
	prev := p.phase
	p.phase = name
	out, err := fn()
	p.phase = prev
	return out, err
}

// speculate runs fn under a fresh checkpoint: on success the buffer keeps
// its new position and the checkpoint is discarded; on failure the buffer
// rewinds to where it started. This is the single call every backtracking
// disambiguation (lambda-vs-paren, cast-vs-paren, generic-call-vs-comparison)
// goes through.
func speculate[T any](p *Parser, fn func() (T, error)) (T, error) {
	p.buf.PushMark()
	out, err := fn()
	p.buf.PopMark(err != nil)
	return out, err
}

// unexpected builds a ParseIllegalStart error describing the current token.
func (p *Parser) unexpected(context string) error {
	return p.record(javapyerrors.NewParseError(javapyerrors.ParseIllegalStart).
		WithMessage(fmt.Sprintf("illegal start of %s", context)).
		WithPosition(p.pos()).
		WithActual(p.describe(p.cur())).
		WithPhase(p.phase).
		Build())
}
