package parser

import (
	"github.com/cwbudde/go-javapy/pkg/ast"
	"github.com/cwbudde/go-javapy/pkg/token"
)

// parseAnnotations parses zero or more `@Type[(args)]` annotations in
// sequence, as they appear before a modifier list or a type use.
func (p *Parser) parseAnnotations() ([]*ast.Annotation, error) {
	var out []*ast.Annotation
	for p.is(token.AT) && !p.peekKeywordAt(1, "interface") {
		a, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (p *Parser) parseAnnotation() (*ast.Annotation, error) {
	start := p.pos()
	if _, err := p.eat(token.AT); err != nil {
		return nil, err
	}
	typ, err := p.parseClassType()
	if err != nil {
		return nil, err
	}
	a := &ast.Annotation{Type: typ}
	a.SetPos(start)
	if p.is(token.LPAREN) {
		p.buf.Advance()
		a.Args = []*ast.AnnotationArgument{}
		for !p.is(token.RPAREN) {
			arg, err := p.parseAnnotationArgument()
			if err != nil {
				return nil, err
			}
			a.Args = append(a.Args, arg)
			if p.is(token.COMMA) {
				p.buf.Advance()
				continue
			}
			break
		}
		if _, err := p.eat(token.RPAREN); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (p *Parser) parseAnnotationArgument() (*ast.AnnotationArgument, error) {
	start := p.pos()
	if p.is(token.NAME) && p.peek(1).Kind == token.ASSIGN {
		name, _ := p.eatIdent()
		p.buf.Advance() // '='
		val, err := p.parseAnnotationValue()
		if err != nil {
			return nil, err
		}
		arg := &ast.AnnotationArgument{Name: name, Value: val}
		arg.SetPos(start)
		return arg, nil
	}
	val, err := p.parseAnnotationValue()
	if err != nil {
		return nil, err
	}
	arg := &ast.AnnotationArgument{Value: val}
	arg.SetPos(start)
	return arg, nil
}

// parseAnnotationValue parses a nested annotation, an array initializer
// `{v1, v2}`, or an ordinary conditional expression.
func (p *Parser) parseAnnotationValue() (ast.Expr, error) {
	if p.is(token.AT) {
		return p.parseAnnotation()
	}
	if p.is(token.LBRACE) {
		return p.parseArrayInitializer()
	}
	return p.parseExpression()
}

func (p *Parser) parseArrayInitializer() (*ast.ArrayInitializer, error) {
	start := p.pos()
	if _, err := p.eat(token.LBRACE); err != nil {
		return nil, err
	}
	ai := &ast.ArrayInitializer{}
	ai.SetPos(start)
	for !p.is(token.RBRACE) {
		v, err := p.parseAnnotationValue()
		if err != nil {
			return nil, err
		}
		ai.Values = append(ai.Values, v)
		if p.is(token.COMMA) {
			p.buf.Advance()
			continue
		}
		break
	}
	if _, err := p.eat(token.RBRACE); err != nil {
		return nil, err
	}
	return ai, nil
}
