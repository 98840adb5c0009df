package parser

import (
	"github.com/cwbudde/go-javapy/pkg/ast"
	"github.com/cwbudde/go-javapy/pkg/token"
)

// parseBlock parses a brace-delimited `{ stmts }` body. Per spec.md §4.1 the
// scanner itself decides (via restOfLineIsBlankOrComment) whether the
// region between the braces is indentation-sensitive; when it is, a
// NEWLINE/INDENT pair appears right after `{` and a matching DEDENT right
// before `}`, so the parser only needs to consume them if present.
func (p *Parser) parseBlock() (*ast.Block, error) {
	start := p.pos()
	if _, err := p.eat(token.LBRACE); err != nil {
		return nil, err
	}
	blk := &ast.Block{}
	blk.SetPos(start)

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
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		blk.Stmts = append(blk.Stmts, stmt)
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
	return blk, nil
}

// parseIndentedBlock parses the braceless indented-dialect body introduced
// by `:`: either `: NEWLINE INDENT stmts DEDENT`, or the inline single
// -statement form `: stmt` on the same line.
func (p *Parser) parseIndentedBlock() (*ast.Block, error) {
	start := p.pos()
	if _, err := p.eat(token.COLON); err != nil {
		return nil, err
	}
	blk := &ast.Block{}
	blk.SetPos(start)
	if p.is(token.NEWLINE) {
		p.buf.Advance()
		if _, err := p.eat(token.INDENT); err != nil {
			return nil, err
		}
		for !p.is(token.DEDENT) {
			p.skipBlankLines()
			if p.is(token.DEDENT) {
				break
			}
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			blk.Stmts = append(blk.Stmts, stmt)
			p.skipBlankLines()
		}
		if _, err := p.eat(token.DEDENT); err != nil {
			return nil, err
		}
		return blk, nil
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	blk.Stmts = append(blk.Stmts, stmt)
	return blk, nil
}

// parseBody parses the body of a control-flow construct (if/while/for/
// synchronized/...): a brace block, an indented block, or (in the
// brace dialect, without either) a single bare statement.
func (p *Parser) parseBody() (ast.Stmt, error) {
	switch {
	case p.is(token.LBRACE):
		return p.parseBlock()
	case p.is(token.COLON):
		return p.parseIndentedBlock()
	default:
		return p.parseStatement()
	}
}

// parseRequiredBlock is like parseBody but always returns a *ast.Block
// (method/constructor/initializer/catch/finally/try bodies, and
// synchronized bodies, require an explicit block in Java; the indented
// dialect's `:`-body satisfies the same requirement).
func (p *Parser) parseRequiredBlock() (*ast.Block, error) {
	switch {
	case p.is(token.LBRACE):
		return p.parseBlock()
	case p.is(token.COLON):
		return p.parseIndentedBlock()
	default:
		return nil, p.unexpected("block")
	}
}

func (p *Parser) parseIfStatement() (*ast.IfStatement, error) {
	start := p.pos()
	if _, err := p.eatKeyword("if"); err != nil {
		return nil, err
	}
	cond, err := p.parseParenthesizedOrBareCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{Condition: cond, Body: body}
	stmt.SetPos(start)
	p.skipBlankLines()
	if p.peekKeyword("else") {
		p.buf.Advance()
		p.skipBlankLines()
		if p.peekKeyword("if") {
			elseIf, err := p.parseIfStatement()
			if err != nil {
				return nil, err
			}
			stmt.ElseBody = elseIf
		} else {
			elseBody, err := p.parseBody()
			if err != nil {
				return nil, err
			}
			stmt.ElseBody = elseBody
		}
	}
	return stmt, nil
}

// parseParenthesizedOrBareCondition accepts `(cond)` or, per the
// if-with/without-parens Open Question decision recorded in DESIGN.md, a
// bare condition expression terminated by `:` (indented dialect) or the
// start of a brace block.
func (p *Parser) parseParenthesizedOrBareCondition() (ast.Expr, error) {
	if p.is(token.LPAREN) {
		return p.parseParenthesizedExpression()
	}
	return p.parseExpression()
}

func (p *Parser) parseWhileLoop() (*ast.WhileLoop, error) {
	start := p.pos()
	if _, err := p.eatKeyword("while"); err != nil {
		return nil, err
	}
	cond, err := p.parseParenthesizedOrBareCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	loop := &ast.WhileLoop{Condition: cond, Body: body}
	loop.SetPos(start)
	return loop, nil
}

func (p *Parser) parseDoWhileLoop() (*ast.DoWhileLoop, error) {
	start := p.pos()
	if _, err := p.eatKeyword("do"); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	p.skipBlankLines()
	if _, err := p.eatKeyword("while"); err != nil {
		return nil, err
	}
	cond, err := p.parseParenthesizedExpression()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	loop := &ast.DoWhileLoop{Condition: cond, Body: body}
	loop.SetPos(start)
	return loop, nil
}

// parseForLoop disambiguates classic `for (init; cond; update)` from
// enhanced `for (Type name : iterable)` by speculatively trying the
// enhanced form first (it is the more constrained grammar; on failure we
// fall back to the classic header without having consumed anything).
func (p *Parser) parseForLoop() (*ast.ForLoop, error) {
	start := p.pos()
	if _, err := p.eatKeyword("for"); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}

	control, err := speculate(p, func() (ast.ForLoopControl, error) {
		return p.parseEnhancedForControl()
	})
	if err != nil {
		control, err = p.parseClassicForControl()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	loop := &ast.ForLoop{Control: control, Body: body}
	loop.SetPos(start)
	return loop, nil
}

// parseEnhancedForControl parses `[Type] name : iterable`. Var always has
// exactly one declarator with no initializer, per the AST invariant.
func (p *Parser) parseEnhancedForControl() (*ast.EnhancedForControl, error) {
	start := p.pos()
	vdStart := p.pos()
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
	name, err := p.eatIdent()
	if err != nil {
		return nil, err
	}
	if !p.is(token.COLON) {
		return nil, p.errorf("expected", "expected ':' in enhanced for-loop header")
	}
	p.buf.Advance()
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	decl := &ast.VariableDeclaration{Type: typ}
	decl.SetPos(vdStart)
	decl.Modifiers = modifiers
	decl.Annotations = annotations
	declr := &ast.VariableDeclarator{Name: name}
	declr.SetPos(vdStart)
	decl.Declarators = []*ast.VariableDeclarator{declr}
	ctl := &ast.EnhancedForControl{Var: decl, Iterable: iterable}
	ctl.SetPos(start)
	return ctl, nil
}

func (p *Parser) parseClassicForControl() (*ast.ForControl, error) {
	start := p.pos()
	ctl := &ast.ForControl{}
	ctl.SetPos(start)
	if !p.is(token.SEMI) {
		init, err := p.parseForInit()
		if err != nil {
			return nil, err
		}
		ctl.Init = init
	}
	if _, err := p.eat(token.SEMI); err != nil {
		return nil, err
	}
	if !p.is(token.SEMI) {
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		ctl.Condition = cond
	}
	if _, err := p.eat(token.SEMI); err != nil {
		return nil, err
	}
	if !p.is(token.RPAREN) {
		for {
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			ctl.Update = append(ctl.Update, e)
			if p.is(token.COMMA) {
				p.buf.Advance()
				continue
			}
			break
		}
	}
	return ctl, nil
}

// parseForInit parses the classic for-loop's init clause: either a
// variable declaration or a comma-separated expression-statement list,
// disambiguated the same way an ordinary statement is (spec.md §4.3).
func (p *Parser) parseForInit() (ast.Stmt, error) {
	if decl, ok, err := p.tryParseVariableDeclarationHeader(); err != nil {
		return nil, err
	} else if ok {
		return decl, nil
	}
	start := p.pos()
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	exprs := []ast.Expr{first}
	for p.is(token.COMMA) {
		p.buf.Advance()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	stmt := &ast.ExpressionStatement{Expr: exprs[0]}
	stmt.SetPos(start)
	if len(exprs) == 1 {
		return stmt, nil
	}
	blk := &ast.Block{}
	blk.SetPos(start)
	for _, e := range exprs {
		es := &ast.ExpressionStatement{Expr: e}
		es.SetPos(e.Pos())
		blk.Stmts = append(blk.Stmts, es)
	}
	return blk, nil
}

func (p *Parser) parseSynchronizedBlock() (*ast.SynchronizedBlock, error) {
	start := p.pos()
	if _, err := p.eatKeyword("synchronized"); err != nil {
		return nil, err
	}
	lock, err := p.parseParenthesizedExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseRequiredBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.SynchronizedBlock{Lock: lock, Body: body}
	stmt.SetPos(start)
	return stmt, nil
}

func (p *Parser) parseParenthesizedExpression() (ast.Expr, error) {
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	return e, nil
}
