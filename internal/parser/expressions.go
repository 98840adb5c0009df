package parser

import (
	"github.com/cwbudde/go-javapy/pkg/ast"
	javapyerrors "github.com/cwbudde/go-javapy/pkg/errors"
	"github.com/cwbudde/go-javapy/pkg/token"
)

// binaryPrecedence gives each binary operator kind its precedence level
// (higher binds tighter), for the precedence-climbing expression grammar
// (spec.md §4.3).
var binaryPrecedence = map[token.Kind]int{
	token.OR:  1,
	token.AND: 2,

	token.BITOR:  3,
	token.BITXOR: 4,
	token.BITAND: 5,

	token.EQ: 6,
	token.NE: 6,

	token.LT: 7,
	token.LE: 7,
	token.GT: 7,
	token.GE: 7,

	token.SHL:  8,
	token.SHR:  8,
	token.USHR: 8,

	token.PLUS:  9,
	token.MINUS: 9,

	token.STAR:    10,
	token.SLASH:   10,
	token.PERCENT: 10,
}

var assignOps = map[token.Kind]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true, token.PERCENT_ASSIGN: true,
	token.AND_ASSIGN: true, token.OR_ASSIGN: true, token.XOR_ASSIGN: true,
	token.SHL_ASSIGN: true, token.SHR_ASSIGN: true, token.USHR_ASSIGN: true,
}

// parseExpression is the grammar's entry point: assignment is the lowest
// -precedence production, then conditional (`?:`), then precedence-climbing
// binary operators, then unary/postfix/primary.
func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (ast.Expr, error) {
	if lam, ok, err := p.tryParseLambda(); err != nil {
		return nil, err
	} else if ok {
		return lam, nil
	}

	lhs, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	if assignOps[p.cur().Kind] {
		op := p.cur().Kind
		start := lhs.Pos()
		p.buf.Advance()
		rhs, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		a := &ast.Assignment{Op: op, Lhs: lhs, Rhs: rhs}
		a.SetPos(start)
		return a, nil
	}
	return lhs, nil
}

func (p *Parser) parseConditional() (ast.Expr, error) {
	cond, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if !p.is(token.QUESTION) {
		return cond, nil
	}
	start := cond.Pos()
	p.buf.Advance()
	truePart, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.COLON); err != nil {
		return nil, err
	}
	falsePart, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	c := &ast.ConditionalExpression{Condition: cond, TruePart: truePart, FalsePart: falsePart}
	c.SetPos(start)
	return c, nil
}

// parseBinary implements precedence climbing down to minPrec, folding in
// the `instanceof` type-test production at the comparison level and
// resolving `>>`/`>>>` as possibly-merged shift tokens.
func (p *Parser) parseBinary(minPrec int) (ast.Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		if p.peekKeyword("instanceof") && minPrec <= binaryPrecedence[token.LT] {
			if lhs, err = p.parseInstanceOf(lhs); err != nil {
				return nil, err
			}
			continue
		}
		prec, ok := binaryPrecedence[p.cur().Kind]
		if !ok || prec < minPrec {
			return lhs, nil
		}
		op := p.cur().Kind
		start := lhs.Pos()
		p.buf.Advance()
		rhs, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		b := &ast.BinaryExpression{Op: op, Lhs: lhs, Rhs: rhs}
		b.SetPos(start)
		lhs = b
	}
}

func (p *Parser) parseInstanceOf(e ast.Expr) (ast.Expr, error) {
	start := e.Pos()
	p.buf.Advance()
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	tt := &ast.TypeTest{Expr: e, Type: typ}
	tt.SetPos(start)
	if p.is(token.NAME) {
		tt.Binding = p.cur().Lexeme
		p.buf.Advance()
	}
	return tt, nil
}

var unaryOps = map[token.Kind]bool{
	token.PLUS: true, token.MINUS: true, token.NOT: true, token.BITNOT: true,
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	start := p.pos()
	if p.is(token.INC) || p.is(token.DEC) {
		op := p.cur().Kind
		p.buf.Advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		e := &ast.IncrementExpression{Op: op, Expr: operand, Prefix: true}
		e.SetPos(start)
		return e, nil
	}
	if unaryOps[p.cur().Kind] {
		op := p.cur().Kind
		p.buf.Advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		e := &ast.UnaryExpression{Op: op, Expr: operand}
		e.SetPos(start)
		return e, nil
	}
	if p.is(token.LPAREN) {
		if cast, ok, err := p.tryParseCast(); err != nil {
			return nil, err
		} else if ok {
			return cast, nil
		}
	}
	return p.parsePostfix()
}

// tryParseCast speculatively parses `(Type) unary` and disambiguates it
// from a parenthesized expression: a cast is only recognized when the
// parenthesized content is a type (primitive, or class type possibly
// followed by `&` bound types for an intersection cast) AND what follows
// the closing paren can itself start a unary expression (spec.md §4.3's
// cast-vs-paren disambiguation).
func (p *Parser) tryParseCast() (ast.Expr, bool, error) {
	cast, err := speculate(p, func() (ast.Expr, error) {
		start := p.pos()
		if _, err := p.eat(token.LPAREN); err != nil {
			return nil, err
		}
		typ, err := p.parseIntersectionBound()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(token.RPAREN); err != nil {
			return nil, err
		}
		if !p.canStartUnary() {
			return nil, p.errorf(javapyerrors.ParseExpected, "expected operand after cast")
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		c := &ast.CastExpression{Type: typ, Expr: operand}
		c.SetPos(start)
		return c, nil
	})
	if err != nil {
		return nil, false, nil
	}
	return cast, true, nil
}

// canStartUnary reports whether the current token can begin a unary
// expression -- used to reject a cast parse when what follows the closing
// paren could only be a binary operator (i.e. it was really a parenthesized
// expression).
func (p *Parser) canStartUnary() bool {
	t := p.cur()
	switch t.Kind {
	case token.PLUS, token.MINUS, token.NOT, token.BITNOT, token.INC, token.DEC,
		token.LPAREN, token.NAME, token.NUMBER, token.STRING,
		token.FSTRING_BEGIN, token.LBRACKET:
		return true
	case token.KEYWORD:
		switch t.Lexeme {
		case "this", "super", "new", "true", "false", "null":
			return true
		}
		return false
	default:
		return false
	}
}

// parsePostfix parses primary expressions followed by any chain of
// `.name`, `(args)`, `[index]`, `::name`, and postfix `++`/`--`.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		start := e.Pos()
		switch {
		case p.is(token.DOT):
			p.buf.Advance()
			if p.peekKeyword("class") {
				p.buf.Advance()
				tl := &ast.TypeLiteral{Type: p.exprAsType(e)}
				tl.SetPos(start)
				e = tl
				continue
			}
			if p.peekKeyword("this") {
				p.buf.Advance()
				t := &ast.This{Object: e}
				t.SetPos(start)
				e = t
				continue
			}
			if p.peekKeyword("super") {
				p.buf.Advance()
				s := &ast.Super{Object: e}
				s.SetPos(start)
				e = s
				continue
			}
			if p.peekKeyword("new") {
				ctor, err := p.parseClassCreator(e)
				if err != nil {
					return nil, err
				}
				e = ctor
				continue
			}
			var typeargs []ast.Type
			if p.is(token.LT) {
				if args, ok, err := p.tryParseCallTypeArgs(); err != nil {
					return nil, err
				} else if ok {
					typeargs = args
				}
			}
			name, err := p.eatIdent()
			if err != nil {
				return nil, err
			}
			if p.is(token.LPAREN) {
				args, err := p.parseArguments()
				if err != nil {
					return nil, err
				}
				call := &ast.FunctionCall{Object: e, Name: name, Args: args, Typeargs: typeargs}
				call.SetPos(start)
				e = call
				continue
			}
			m := &ast.MemberAccess{Object: e, Name: name}
			m.SetPos(start)
			e = m
		case p.is(token.LBRACKET):
			p.buf.Advance()
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.eat(token.RBRACKET); err != nil {
				return nil, err
			}
			ix := &ast.IndexExpression{Indexed: e, Index: idx}
			ix.SetPos(start)
			e = ix
		case p.is(token.LPAREN):
			if id, ok := e.(*ast.Identifier); ok {
				args, err := p.parseArguments()
				if err != nil {
					return nil, err
				}
				call := &ast.FunctionCall{Name: id.Name, Args: args}
				call.SetPos(start)
				e = call
				continue
			}
			return e, nil
		case p.is(token.COLONCOLON):
			p.buf.Advance()
			var typeargs []ast.Type
			if p.is(token.LT) {
				args, err := p.parseTypeArgumentList()
				if err != nil {
					return nil, err
				}
				typeargs = args
			}
			var name string
			if p.peekKeyword("new") {
				p.buf.Advance()
				name = "new"
			} else {
				n, err := p.eatIdent()
				if err != nil {
					return nil, err
				}
				name = n
			}
			mr := &ast.MethodReference{Object: e, Typeargs: typeargs, Name: name}
			mr.SetPos(start)
			e = mr
		case p.is(token.INC) || p.is(token.DEC):
			op := p.cur().Kind
			p.buf.Advance()
			ie := &ast.IncrementExpression{Op: op, Expr: e}
			ie.SetPos(start)
			e = ie
		default:
			return e, nil
		}
	}
}

// tryParseCallTypeArgs speculatively parses `<T1,T2>` immediately before a
// method-call name, resolving the generic-call-vs-comparison ambiguity:
// accepted only when the closing `>` is immediately followed by an
// identifier and `(`.
func (p *Parser) tryParseCallTypeArgs() ([]ast.Type, bool, error) {
	args, err := speculate(p, func() ([]ast.Type, error) {
		args, err := p.parseTypeArgumentList()
		if err != nil {
			return nil, err
		}
		if !p.is(token.NAME) || p.peek(1).Kind != token.LPAREN {
			return nil, p.errorf(javapyerrors.ParseExpected, "expected call after type arguments")
		}
		return args, nil
	})
	if err != nil {
		return nil, false, nil
	}
	return args, true, nil
}

// exprAsType reinterprets a MemberAccess/Identifier chain already parsed as
// an expression (because the parser could not yet know `.class` would
// follow) as a GenericType reference.
func (p *Parser) exprAsType(e ast.Expr) ast.Type {
	switch n := e.(type) {
	case *ast.Identifier:
		gt := &ast.GenericType{Name: token.NewName(n.Name)}
		gt.SetPos(n.Pos())
		return gt
	case *ast.MemberAccess:
		container := p.exprAsType(n.Object)
		gt := &ast.GenericType{Name: token.NewName(n.Name), Container: container}
		gt.SetPos(n.Pos())
		return gt
	default:
		return nil
	}
}

func (p *Parser) parseArguments() ([]ast.Expr, error) {
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for !p.is(token.RPAREN) {
		a, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if p.is(token.COMMA) {
			p.buf.Advance()
			continue
		}
		break
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parsePrimary parses the atomic expression forms: literals, names, `this`/
// `super`, parenthesized expressions, `new` creators, switch expressions,
// and the indented dialect's `[a, b, c]` list-literal sugar.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	start := p.pos()
	t := p.cur()
	switch {
	case t.Kind == token.NUMBER:
		p.buf.Advance()
		lit := &ast.Literal{Kind: numberLiteralKind(t.Lexeme), Raw: t.Lexeme}
		lit.SetPos(start)
		return lit, nil
	case t.Kind == token.STRING:
		p.buf.Advance()
		lit := &ast.Literal{Kind: stringLiteralKind(t.Lexeme), Raw: t.Lexeme}
		lit.SetPos(start)
		return lit, nil
	case t.Kind == token.FSTRING_BEGIN:
		return p.parseFStringLiteral()
	case t.Kind == token.KEYWORD && t.Lexeme == "true":
		p.buf.Advance()
		lit := &ast.Literal{Kind: ast.BoolLit, Raw: "true"}
		lit.SetPos(start)
		return lit, nil
	case t.Kind == token.KEYWORD && t.Lexeme == "false":
		p.buf.Advance()
		lit := &ast.Literal{Kind: ast.BoolLit, Raw: "false"}
		lit.SetPos(start)
		return lit, nil
	case t.Kind == token.KEYWORD && t.Lexeme == "null":
		p.buf.Advance()
		n := &ast.NullLiteral{}
		n.SetPos(start)
		return n, nil
	case t.Kind == token.KEYWORD && t.Lexeme == "this":
		p.buf.Advance()
		if p.is(token.LPAREN) {
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			tc := &ast.ThisCall{Args: args}
			tc.SetPos(start)
			return tc, nil
		}
		th := &ast.This{}
		th.SetPos(start)
		return th, nil
	case t.Kind == token.KEYWORD && t.Lexeme == "super":
		p.buf.Advance()
		if p.is(token.LPAREN) {
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			sc := &ast.SuperCall{Args: args}
			sc.SetPos(start)
			return sc, nil
		}
		s := &ast.Super{}
		s.SetPos(start)
		return s, nil
	case t.Kind == token.KEYWORD && t.Lexeme == "new":
		return p.parseNewExpression()
	case t.Kind == token.KEYWORD && t.Lexeme == "switch":
		sw, err := p.parseSwitch()
		if err != nil {
			return nil, err
		}
		return sw, nil
	case t.Kind == token.NAME:
		p.buf.Advance()
		id := &ast.Identifier{Name: t.Lexeme}
		id.SetPos(start)
		return id, nil
	case t.Kind == token.LPAREN:
		return p.parseParenOrLambdaFallback()
	case t.Kind == token.LBRACKET:
		return p.parseListLiteralSugar()
	}
	return nil, p.unexpected("expression")
}

func (p *Parser) parseParenOrLambdaFallback() (ast.Expr, error) {
	start := p.pos()
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	paren := &ast.Parenthesis{Expr: inner}
	paren.SetPos(start)
	return paren, nil
}

func numberLiteralKind(lexeme string) ast.LiteralKind {
	if lexeme == "" {
		return ast.IntLit
	}
	switch lexeme[len(lexeme)-1] {
	case 'l', 'L':
		return ast.LongLit
	case 'f', 'F':
		return ast.FloatLit
	case 'd', 'D':
		return ast.DoubleLit
	}
	for _, c := range lexeme {
		if c == '.' {
			return ast.DoubleLit
		}
	}
	return ast.IntLit
}

func stringLiteralKind(lexeme string) ast.LiteralKind {
	if len(lexeme) >= 3 && (lexeme[:3] == `"""` || lexeme[:3] == "'''") {
		return ast.TextBlockLit
	}
	if len(lexeme) > 0 && (lexeme[0] == '\'') {
		return ast.CharLit
	}
	return ast.StringLit
}

func (p *Parser) parseFStringLiteral() (*ast.FStringLiteral, error) {
	start := p.pos()
	beginTok, err := p.eat(token.FSTRING_BEGIN)
	if err != nil {
		return nil, err
	}
	f := &ast.FStringLiteral{Quote: beginTok.Lexeme}
	f.SetPos(start)
	f.Segments = append(f.Segments, beginTok.Lexeme)
	for {
		if p.is(token.FSTRING_END) {
			endTok := p.buf.Advance()
			f.Segments = append(f.Segments, endTok.Lexeme)
			return f, nil
		}
		hole, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		f.Holes = append(f.Holes, hole)
		if _, err := p.eat(token.RBRACE); err != nil {
			return nil, err
		}
		mid, err := p.eat(token.FSTRING_MIDDLE)
		if err != nil {
			return nil, err
		}
		f.Segments = append(f.Segments, mid.Lexeme)
	}
}

// parseListLiteralSugar lowers the indented dialect's `[a, b, c]` sugar to
// an equivalent `java.util.List.of(a, b, c)` FunctionCall at parse time
// (spec.md §4.3), matching the original's parser.py which returns the same
// bare FunctionCall with no wrapper node.
func (p *Parser) parseListLiteralSugar() (*ast.FunctionCall, error) {
	start := p.pos()
	if _, err := p.eat(token.LBRACKET); err != nil {
		return nil, err
	}
	var elems []ast.Expr
	for !p.is(token.RBRACKET) {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.is(token.COMMA) {
			p.buf.Advance()
			continue
		}
		break
	}
	if _, err := p.eat(token.RBRACKET); err != nil {
		return nil, err
	}
	listOf := &ast.FunctionCall{Name: "of", Args: elems}
	listOf.SetPos(start)
	utilList := &ast.MemberAccess{Name: "List"}
	utilList.SetPos(start)
	javaUtil := &ast.MemberAccess{Name: "util"}
	javaUtil.SetPos(start)
	javaIdent := &ast.Identifier{Name: "java"}
	javaIdent.SetPos(start)
	javaUtil.Object = javaIdent
	utilList.Object = javaUtil
	listOf.Object = utilList

	return listOf, nil
}

// parseNewExpression disambiguates ClassCreator (with optional anonymous
// body) from ArrayCreator, both introduced by `new`.
func (p *Parser) parseNewExpression() (ast.Expr, error) {
	start := p.pos()
	if _, err := p.eatKeyword("new"); err != nil {
		return nil, err
	}
	var typeargs []ast.Type
	if p.is(token.LT) {
		args, err := p.parseTypeArgumentList()
		if err != nil {
			return nil, err
		}
		typeargs = args
	}
	typ, err := p.parseClassType()
	if err != nil {
		return nil, err
	}
	if p.is(token.LBRACKET) {
		return p.parseArrayCreatorTail(start, typ)
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	cc := &ast.ClassCreator{Type: typ, Args: args, Typeargs: typeargs}
	cc.SetPos(start)
	if p.is(token.LBRACE) {
		members, err := p.parseClassBody()
		if err != nil {
			return nil, err
		}
		cc.Members = members
	}
	return cc, nil
}

// parseClassCreator parses the qualified inner-class creation form
// `outer.new Inner(args)`.
func (p *Parser) parseClassCreator(outer ast.Expr) (ast.Expr, error) {
	start := outer.Pos()
	if _, err := p.eatKeyword("new"); err != nil {
		return nil, err
	}
	typ, err := p.parseClassType()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	cc := &ast.ClassCreator{Type: typ, Object: outer, Args: args}
	cc.SetPos(start)
	if p.is(token.LBRACE) {
		members, err := p.parseClassBody()
		if err != nil {
			return nil, err
		}
		cc.Members = members
	}
	return cc, nil
}

func (p *Parser) parseArrayCreatorTail(start token.Position, base ast.Type) (*ast.ArrayCreator, error) {
	var dims []*ast.DimensionExpr
	for p.is(token.LBRACKET) {
		p.buf.Advance()
		de := &ast.DimensionExpr{}
		de.SetPos(start)
		if !p.is(token.RBRACKET) {
			size, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			de.Size = size
		}
		if _, err := p.eat(token.RBRACKET); err != nil {
			return nil, err
		}
		dims = append(dims, de)
	}
	ac := &ast.ArrayCreator{Type: base, Dimensions: dims}
	ac.SetPos(start)
	if p.is(token.LBRACE) {
		init, err := p.parseArrayInitializer()
		if err != nil {
			return nil, err
		}
		ac.Initializer = init
	}
	return ac, nil
}

// tryParseLambda speculatively parses a lambda's parameter list and `->`,
// resolving the lambda-vs-parenthesized-expression ambiguity by requiring
// the `->` to actually be present (spec.md §4.3).
func (p *Parser) tryParseLambda() (*ast.Lambda, bool, error) {
	lam, err := speculate(p, func() (*ast.Lambda, error) {
		start := p.pos()
		params, err := p.parseLambdaParams()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(token.ARROW); err != nil {
			return nil, err
		}
		var body ast.Node
		if p.is(token.LBRACE) {
			b, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			body = b
		} else {
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			body = e
		}
		lam := &ast.Lambda{Params: params, Body: body}
		lam.SetPos(start)
		return lam, nil
	})
	if err != nil {
		return nil, false, nil
	}
	return lam, true, nil
}

func (p *Parser) parseLambdaParams() ([]*ast.FormalParameter, error) {
	if p.is(token.NAME) {
		start := p.pos()
		name := p.cur().Lexeme
		p.buf.Advance()
		fp := &ast.FormalParameter{Name: name}
		fp.SetPos(start)
		return []*ast.FormalParameter{fp}, nil
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	var params []*ast.FormalParameter
	for !p.is(token.RPAREN) {
		fp, err := p.parseLambdaParam()
		if err != nil {
			return nil, err
		}
		params = append(params, fp)
		if p.is(token.COMMA) {
			p.buf.Advance()
			continue
		}
		break
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseLambdaParam() (*ast.FormalParameter, error) {
	start := p.pos()
	_, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		return nil, err
	}
	// Implicit-typed params are a bare name; explicitly-typed params are a
	// full type followed by a name -- disambiguated by whether a second
	// identifier follows.
	if p.is(token.NAME) && (p.peek(1).Kind == token.COMMA || p.peek(1).Kind == token.RPAREN) {
		name := p.cur().Lexeme
		p.buf.Advance()
		fp := &ast.FormalParameter{Name: name}
		fp.SetPos(start)
		fp.Annotations = annotations
		return fp, nil
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	variadic := false
	if p.is(token.ELLIPSIS) {
		p.buf.Advance()
		variadic = true
	}
	name, err := p.eatIdent()
	if err != nil {
		return nil, err
	}
	fp := &ast.FormalParameter{Name: name, Type: typ, Variadic: variadic}
	fp.SetPos(start)
	fp.Annotations = annotations
	return fp, nil
}
