package parser

import (
	"github.com/cwbudde/go-javapy/pkg/ast"
	javapyerrors "github.com/cwbudde/go-javapy/pkg/errors"
	"github.com/cwbudde/go-javapy/pkg/token"
)

// parseStatement dispatches on the current keyword/token to the matching
// statement production, falling through to the variable-declaration-vs
// -expression-statement disambiguation for everything else (spec.md §4.3).
func (p *Parser) parseStatement() (ast.Stmt, error) {
	p.skipBlankLines()
	switch {
	case p.is(token.LBRACE):
		return p.parseBlock()
	case p.is(token.SEMI):
		start := p.pos()
		p.buf.Advance()
		s := &ast.EmptyStatement{}
		s.SetPos(start)
		return s, nil
	case p.peekKeyword("if"):
		return p.parseIfStatement()
	case p.peekKeyword("while"):
		return p.parseWhileLoop()
	case p.peekKeyword("do"):
		return p.parseDoWhileLoop()
	case p.peekKeyword("for"):
		return p.parseForLoop()
	case p.peekKeyword("switch"):
		return p.parseSwitchStatement()
	case p.peekKeyword("try"):
		return p.parseTryStatement()
	case p.peekKeyword("throw"):
		return p.parseThrowStatement()
	case p.peekKeyword("return"):
		return p.parseReturnStatement()
	case p.peekKeyword("break"):
		return p.parseBreakOrYieldValue()
	case p.peekKeyword("continue"):
		return p.parseContinueStatement()
	case p.peekKeyword("yield"):
		return p.parseYieldStatement()
	case p.peekKeyword("assert"):
		return p.parseAssertStatement()
	case p.peekKeyword("synchronized"):
		return p.parseSynchronizedBlock()
	case p.peekKeyword("class"), p.peekKeyword("interface"), p.peekKeyword("enum"),
		(p.is(token.AT) && p.peekKeywordAt(1, "interface")):
		return p.parseLocalTypeDeclaration()
	case p.isModifierStart() && p.followedByTypeDeclKeyword():
		return p.parseLocalTypeDeclaration()
	}

	if p.is(token.NAME) && p.peek(1).Kind == token.COLON {
		return p.parseLabeledStatement()
	}

	if decl, ok, err := p.tryParseVariableDeclarationHeader(); err != nil {
		return nil, err
	} else if ok {
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		return decl, nil
	}

	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() (ast.Stmt, error) {
	start := p.pos()
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	stmt := &ast.ExpressionStatement{Expr: e}
	stmt.SetPos(start)
	return stmt, nil
}

func (p *Parser) parseLabeledStatement() (*ast.LabeledStatement, error) {
	start := p.pos()
	label, err := p.eatIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.COLON); err != nil {
		return nil, err
	}
	inner, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.LabeledStatement{Label: label, Stmt: inner}
	stmt.SetPos(start)
	return stmt, nil
}

// tryParseVariableDeclarationHeader speculatively attempts to parse a local
// variable declaration (`[modifiers] Type name [= init] [, ...];`),
// including the `var` sentinel form. It returns ok == false, having
// consumed nothing, when the speculative parse fails -- the standard
// variable-declaration-vs-expression-statement disambiguation (spec.md
// §4.3), with chained-failure-wins error tracking via speculate.
func (p *Parser) tryParseVariableDeclarationHeader() (*ast.VariableDeclaration, bool, error) {
	decl, err := speculate(p, func() (*ast.VariableDeclaration, error) {
		start := p.pos()
		modifiers, annotations, err := p.parseModifiersAndAnnotations()
		if err != nil {
			return nil, err
		}
		var typ ast.Type
		if p.at("var") {
			p.buf.Advance()
		} else {
			typ, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}
		if !p.is(token.NAME) {
			return nil, p.errorf(javapyerrors.ParseExpected, "expected variable name")
		}
		decl := &ast.VariableDeclaration{Type: typ}
		decl.SetPos(start)
		decl.Modifiers = modifiers
		decl.Annotations = annotations
		for {
			d, err := p.parseVariableDeclarator()
			if err != nil {
				return nil, err
			}
			decl.Declarators = append(decl.Declarators, d)
			if p.is(token.COMMA) {
				p.buf.Advance()
				continue
			}
			break
		}
		if !p.is(token.SEMI) && !p.is(token.NEWLINE) && !p.is(token.ENDMARKER) && !p.is(token.RBRACE) && !p.is(token.DEDENT) {
			return nil, p.errorf(javapyerrors.ParseExpected, "expected end of variable declaration")
		}
		return decl, nil
	})
	if err != nil {
		return nil, false, nil
	}
	return decl, true, nil
}

func (p *Parser) parseVariableDeclarator() (*ast.VariableDeclarator, error) {
	start := p.pos()
	name, err := p.eatIdent()
	if err != nil {
		return nil, err
	}
	dims, err := p.parseTrailingDimensions()
	if err != nil {
		return nil, err
	}
	d := &ast.VariableDeclarator{Name: name, Dimensions: dims}
	d.SetPos(start)
	if p.is(token.ASSIGN) {
		p.buf.Advance()
		init, err := p.parseVariableInitializer()
		if err != nil {
			return nil, err
		}
		d.Init = init
	}
	return d, nil
}

// parseVariableInitializer parses either an array initializer `{...}` or an
// ordinary expression.
func (p *Parser) parseVariableInitializer() (ast.Expr, error) {
	if p.is(token.LBRACE) {
		return p.parseArrayInitializer()
	}
	return p.parseExpression()
}

// parseTrailingDimensions parses C-style trailing `[]` markers written
// after a declarator name instead of after the type (`int a[]`).
func (p *Parser) parseTrailingDimensions() ([]*ast.Dimension, error) {
	var dims []*ast.Dimension
	for p.is(token.LBRACKET) {
		start := p.pos()
		p.buf.Advance()
		if _, err := p.eat(token.RBRACKET); err != nil {
			return nil, err
		}
		d := &ast.Dimension{}
		d.SetPos(start)
		dims = append(dims, d)
	}
	return dims, nil
}

// isModifierStart reports whether the current token could begin a modifier
// list (used to decide whether a bare statement position actually starts a
// local class/interface/enum declaration).
func (p *Parser) isModifierStart() bool {
	return p.is(token.AT) || modifierWords[p.cur().Lexeme] && p.cur().Kind == token.KEYWORD
}

var modifierWords = map[string]bool{
	"public": true, "protected": true, "private": true, "static": true,
	"final": true, "abstract": true, "default": true, "synchronized": true,
	"native": true, "transient": true, "volatile": true, "strictfp": true,
}

// followedByTypeDeclKeyword speculatively scans past a modifier/annotation
// run to see whether class/interface/enum/@interface follows.
func (p *Parser) followedByTypeDeclKeyword() bool {
	_, err := speculate(p, func() (struct{}, error) {
		if _, _, err := p.parseModifiersAndAnnotations(); err != nil {
			return struct{}{}, err
		}
		if p.peekKeyword("class") || p.peekKeyword("interface") || p.peekKeyword("enum") ||
			(p.is(token.AT) && p.peekKeywordAt(1, "interface")) {
			return struct{}{}, nil
		}
		return struct{}{}, p.errorf(javapyerrors.ParseExpected, "not a type declaration")
	})
	return err == nil
}

// parseModifiersAndAnnotations parses an interleaved run of modifier
// keywords and annotations, in source order (spec.md's Modified/Annotated
// embeds preserve source order).
func (p *Parser) parseModifiersAndAnnotations() ([]string, []*ast.Annotation, error) {
	var mods []string
	var annotations []*ast.Annotation
	for {
		if p.is(token.AT) && !p.peekKeywordAt(1, "interface") {
			a, err := p.parseAnnotation()
			if err != nil {
				return nil, nil, err
			}
			annotations = append(annotations, a)
			// A declaration annotation may stand on its own line.
			for p.is(token.NEWLINE) || p.is(token.NL) {
				p.buf.Advance()
			}
			continue
		}
		if p.cur().Kind == token.KEYWORD && modifierWords[p.cur().Lexeme] {
			mods = append(mods, p.cur().Lexeme)
			p.buf.Advance()
			continue
		}
		break
	}
	return mods, annotations, nil
}

// --- throw/return/break/continue/yield/assert -------------------------------

func (p *Parser) parseThrowStatement() (*ast.ThrowStatement, error) {
	start := p.pos()
	if _, err := p.eatKeyword("throw"); err != nil {
		return nil, err
	}
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	s := &ast.ThrowStatement{Error: e}
	s.SetPos(start)
	return s, nil
}

func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	start := p.pos()
	if _, err := p.eatKeyword("return"); err != nil {
		return nil, err
	}
	s := &ast.ReturnStatement{}
	s.SetPos(start)
	if !p.is(token.SEMI) && !p.is(token.NEWLINE) && !p.is(token.ENDMARKER) {
		v, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		s.Value = v
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return s, nil
}

// parseBreakOrYieldValue implements the `break value;` synonym for `yield
// value;` inside switch-expression bodies (one of spec.md's explicit
// "preserve as open questions" ambiguities; see DESIGN.md for the chosen
// normalize-to-YieldStatement resolution). An ordinary `break;` or
// `break label;` still produces a BreakStatement.
func (p *Parser) parseBreakOrYieldValue() (ast.Stmt, error) {
	start := p.pos()
	if _, err := p.eatKeyword("break"); err != nil {
		return nil, err
	}
	if p.is(token.NAME) {
		// Could be `break label;` or `break value;` where value happens to
		// start with an identifier; only a trailing label immediately
		// followed by the statement terminator is unambiguous as a label.
		if p.peek(1).Kind == token.SEMI || p.peek(1).Kind == token.NEWLINE {
			label := p.cur().Lexeme
			p.buf.Advance()
			if err := p.endOfStatement(); err != nil {
				return nil, err
			}
			s := &ast.BreakStatement{Label: label}
			s.SetPos(start)
			return s, nil
		}
	}
	if p.is(token.SEMI) || p.is(token.NEWLINE) || p.is(token.ENDMARKER) {
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		s := &ast.BreakStatement{}
		s.SetPos(start)
		return s, nil
	}
	v, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	s := &ast.YieldStatement{Value: v}
	s.SetPos(start)
	return s, nil
}

func (p *Parser) parseContinueStatement() (*ast.ContinueStatement, error) {
	start := p.pos()
	if _, err := p.eatKeyword("continue"); err != nil {
		return nil, err
	}
	s := &ast.ContinueStatement{}
	s.SetPos(start)
	if p.is(token.NAME) {
		s.Label = p.cur().Lexeme
		p.buf.Advance()
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseYieldStatement() (*ast.YieldStatement, error) {
	start := p.pos()
	if _, err := p.eatContextualWord("yield"); err != nil {
		return nil, err
	}
	v, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	s := &ast.YieldStatement{Value: v}
	s.SetPos(start)
	return s, nil
}

func (p *Parser) parseAssertStatement() (*ast.AssertStatement, error) {
	start := p.pos()
	if _, err := p.eatKeyword("assert"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	s := &ast.AssertStatement{Condition: cond}
	s.SetPos(start)
	if p.is(token.COLON) {
		p.buf.Advance()
		msg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		s.Message = msg
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return s, nil
}

// --- try/catch/finally -------------------------------------------------------

func (p *Parser) parseTryStatement() (*ast.TryStatement, error) {
	start := p.pos()
	if _, err := p.eatKeyword("try"); err != nil {
		return nil, err
	}
	stmt := &ast.TryStatement{}
	stmt.SetPos(start)
	if p.is(token.LPAREN) {
		resources, err := p.parseTryResources()
		if err != nil {
			return nil, err
		}
		stmt.Resources = resources
	}
	body, err := p.parseRequiredBlock()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	p.skipBlankLines()
	for p.peekKeyword("catch") {
		c, err := p.parseCatchClause()
		if err != nil {
			return nil, err
		}
		stmt.Catches = append(stmt.Catches, c)
		p.skipBlankLines()
	}
	if p.peekKeyword("finally") {
		p.buf.Advance()
		fin, err := p.parseRequiredBlock()
		if err != nil {
			return nil, err
		}
		stmt.Finally = fin
	}
	return stmt, nil
}

func (p *Parser) parseTryResources() ([]*ast.TryResource, error) {
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	var out []*ast.TryResource
	for !p.is(token.RPAREN) {
		r, err := p.parseTryResource()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
		if p.is(token.SEMI) {
			p.buf.Advance()
			continue
		}
		break
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Parser) parseTryResource() (*ast.TryResource, error) {
	res, err := speculate(p, func() (*ast.TryResource, error) {
		start := p.pos()
		doc := p.buf.TakeDoc()
		mods, annotations, err := p.parseModifiersAndAnnotations()
		if err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		name, err := p.eatIdent()
		if err != nil {
			return nil, err
		}
		dims, err := p.parseTrailingDimensions()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(token.ASSIGN); err != nil {
			return nil, err
		}
		init, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		r := &ast.TryResource{Type: typ, Name: name, Dimensions: dims, Init: init}
		r.SetPos(start)
		r.Doc = doc
		r.Modifiers = mods
		r.Annotations = annotations
		return r, nil
	})
	if err == nil {
		return res, nil
	}
	start := p.pos()
	e, err2 := p.parseExpression()
	if err2 != nil {
		return nil, err
	}
	r := &ast.TryResource{Init: e}
	r.SetPos(start)
	return r, nil
}

func (p *Parser) parseCatchClause() (*ast.CatchClause, error) {
	start := p.pos()
	if _, err := p.eatKeyword("catch"); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	_, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		return nil, err
	}
	typ, err := p.parseUnionType()
	if err != nil {
		return nil, err
	}
	name, err := p.eatIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseRequiredBlock()
	if err != nil {
		return nil, err
	}
	param := &ast.FormalParameter{Name: name, Type: typ}
	param.SetPos(start)
	param.Annotations = annotations
	c := &ast.CatchClause{Var: param, Body: body}
	c.SetPos(start)
	return c, nil
}

// --- switch statement/expression --------------------------------------------

func (p *Parser) parseSwitchStatement() (*ast.SwitchStatement, error) {
	start := p.pos()
	sw, err := p.parseSwitch()
	if err != nil {
		return nil, err
	}
	stmt := &ast.SwitchStatement{Switch: sw}
	stmt.SetPos(start)
	return stmt, nil
}

// parseSwitch parses the shared `switch (cond) { cases }` grammar used by
// both the statement and expression forms (spec.md's Switch node serves
// both; the wrapping SwitchStatement vs. direct-expression-use distinction
// is purely where the caller plugs the result in).
func (p *Parser) parseSwitch() (*ast.Switch, error) {
	start := p.pos()
	if _, err := p.eatKeyword("switch"); err != nil {
		return nil, err
	}
	cond, err := p.parseParenthesizedExpression()
	if err != nil {
		return nil, err
	}
	sw := &ast.Switch{Condition: cond}
	sw.SetPos(start)

	if _, err := p.eat(token.LBRACE); err != nil {
		return nil, err
	}
	indented := false
	if p.is(token.NEWLINE) {
		p.buf.Advance()
		if _, err := p.eat(token.INDENT); err == nil {
			indented = true
		}
	}
	for !p.is(token.RBRACE) && !(indented && p.is(token.DEDENT)) {
		p.skipBlankLines()
		if p.is(token.RBRACE) || (indented && p.is(token.DEDENT)) {
			break
		}
		c, err := p.parseSwitchCase()
		if err != nil {
			return nil, err
		}
		sw.Cases = append(sw.Cases, c)
		p.skipBlankLines()
	}
	if indented {
		if _, err := p.eat(token.DEDENT); err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.RBRACE); err != nil {
		return nil, err
	}
	return sw, nil
}

// parseSwitchCase parses one classic `case L1, L2: stmts...` (fallthrough)
// or arrow `case L1, L2 -> body` case, or a `default` case of either form.
func (p *Parser) parseSwitchCase() (*ast.SwitchCase, error) {
	start := p.pos()
	c := &ast.SwitchCase{}
	c.SetPos(start)

	if p.peekKeyword("default") {
		p.buf.Advance()
		c.Default = true
	} else {
		if _, err := p.eatKeyword("case"); err != nil {
			return nil, err
		}
		for {
			lbl, err := p.parseConditional()
			if err != nil {
				return nil, err
			}
			c.Labels = append(c.Labels, lbl)
			if p.is(token.COMMA) {
				p.buf.Advance()
				continue
			}
			break
		}
	}

	if p.is(token.ARROW) {
		p.buf.Advance()
		c.Arrow = true
		stmt, err := p.parseArrowCaseBody()
		if err != nil {
			return nil, err
		}
		c.Stmts = []ast.Stmt{stmt}
		return c, nil
	}

	if _, err := p.eat(token.COLON); err != nil {
		return nil, err
	}
	if p.is(token.NEWLINE) {
		p.buf.Advance()
		if _, err := p.eat(token.INDENT); err == nil {
			for !p.is(token.DEDENT) && !p.peekKeyword("case") && !p.peekKeyword("default") && !p.is(token.RBRACE) {
				p.skipBlankLines()
				if p.is(token.DEDENT) || p.peekKeyword("case") || p.peekKeyword("default") || p.is(token.RBRACE) {
					break
				}
				stmt, err := p.parseStatement()
				if err != nil {
					return nil, err
				}
				c.Stmts = append(c.Stmts, stmt)
				p.skipBlankLines()
			}
			if p.is(token.DEDENT) {
				p.buf.Advance()
			}
			return c, nil
		}
	}
	for !p.peekKeyword("case") && !p.peekKeyword("default") && !p.is(token.RBRACE) && !p.is(token.DEDENT) {
		p.skipBlankLines()
		if p.peekKeyword("case") || p.peekKeyword("default") || p.is(token.RBRACE) || p.is(token.DEDENT) {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		c.Stmts = append(c.Stmts, stmt)
	}
	return c, nil
}

// parseArrowCaseBody parses the single element permitted after `->`: an
// expression statement, a block, or a throw statement (the arrow-case
// single-body-element rule from spec.md's Data Model).
func (p *Parser) parseArrowCaseBody() (ast.Stmt, error) {
	switch {
	case p.is(token.LBRACE):
		return p.parseBlock()
	case p.peekKeyword("throw"):
		return p.parseThrowStatement()
	default:
		start := p.pos()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		s := &ast.ExpressionStatement{Expr: e}
		s.SetPos(start)
		return s, nil
	}
}
