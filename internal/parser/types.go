package parser

import (
	"github.com/cwbudde/go-javapy/pkg/ast"
	javapyerrors "github.com/cwbudde/go-javapy/pkg/errors"
	"github.com/cwbudde/go-javapy/pkg/token"
)

var primitiveNames = map[string]bool{
	"boolean": true, "byte": true, "short": true, "int": true,
	"long": true, "char": true, "float": true, "double": true,
}

// parseType parses a full type reference: primitive or class/interface
// type, optionally array-dimensioned. `var` is never accepted here -- it is
// only valid as a local-variable-declaration sentinel, handled by the
// statement-disambiguation layer instead (spec.md's Data Model invariant).
func (p *Parser) parseType() (ast.Type, error) {
	var base ast.Type
	var err error
	if t := p.cur(); t.Kind == token.KEYWORD && primitiveNames[t.Lexeme] {
		p.buf.Advance()
		pt := &ast.PrimitiveType{Name: t.Lexeme}
		pt.SetPos(t.Start)
		base = pt
	} else if p.peekKeyword("void") {
		t := p.buf.Advance()
		vt := &ast.VoidType{}
		vt.SetPos(t.Start)
		base = vt
	} else {
		base, err = p.parseClassType()
		if err != nil {
			return nil, err
		}
	}
	return p.parseArraySuffix(base)
}

// parseArraySuffix wraps base in an ArrayType for each trailing `[]`.
func (p *Parser) parseArraySuffix(base ast.Type) (ast.Type, error) {
	start := base.Pos()
	var dims []*ast.Dimension
	for p.is(token.LBRACKET) {
		annotations, err := p.parseAnnotations()
		if err != nil {
			return nil, err
		}
		if !p.is(token.LBRACKET) {
			// annotations belonged to whatever follows, not a dimension; put
			// them back conceptually by treating this as "no more dims".
			if len(annotations) > 0 {
				return nil, p.errorf("expected", "expected '[' after annotation in array type")
			}
			break
		}
		p.buf.Advance()
		if _, err := p.eat(token.RBRACKET); err != nil {
			return nil, err
		}
		d := &ast.Dimension{}
		d.SetPos(start)
		d.Annotations = annotations
		dims = append(dims, d)
	}
	if len(dims) == 0 {
		return base, nil
	}
	at := &ast.ArrayType{Base: base, Dimensions: dims}
	at.SetPos(start)
	return at, nil
}

// parseClassType parses a (possibly qualified, possibly generic, possibly
// outer-qualified) class-or-interface type: `Outer<T>.Inner<U>`.
func (p *Parser) parseClassType() (ast.Type, error) {
	start := p.pos()
	var container ast.Type
	for {
		name, err := p.eatIdent()
		if err != nil {
			return nil, err
		}
		if name == "var" {
			return nil, p.errorf(javapyerrors.ParseInvalidType, "'var' cannot be used as a type name")
		}
		var typeargs []ast.Type
		if p.is(token.LT) {
			typeargs, err = p.parseTypeArgumentList()
			if err != nil {
				return nil, err
			}
		}
		gt := &ast.GenericType{Name: token.NewName(name), Typeargs: typeargs, Container: container}
		gt.SetPos(start)
		container = gt
		if p.is(token.DOT) && p.identFollowsDot() {
			p.buf.Advance()
			continue
		}
		break
	}
	return container, nil
}

// identFollowsDot reports whether the token after the current DOT is a bare
// identifier (vs. e.g. `.class` or `.this`, which callers handle themselves
// in expression position -- this helper is only used while still inside a
// type reference).
func (p *Parser) identFollowsDot() bool {
	t := p.peek(1)
	return t.Kind == token.NAME
}

// parseTypeArgumentList parses `<T1, T2, ...>` or the empty diamond `<>`,
// resolving the `>>`/`>>>`-adjacency ambiguity via buffer.SplitShift when
// the closing angle brackets were lexically merged with a following shift
// operator.
func (p *Parser) parseTypeArgumentList() ([]ast.Type, error) {
	if _, err := p.eat(token.LT); err != nil {
		return nil, err
	}
	if p.is(token.GT) {
		p.buf.Advance()
		return []ast.Type{}, nil
	}
	if p.isMergedShift() {
		p.buf.SplitShift()
		p.buf.Advance()
		return []ast.Type{}, nil
	}
	var args []ast.Type
	for {
		arg, err := p.parseTypeArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.is(token.COMMA) {
			p.buf.Advance()
			continue
		}
		break
	}
	if p.isMergedShift() {
		p.buf.SplitShift()
	}
	if _, err := p.eat(token.GT); err != nil {
		return nil, err
	}
	return args, nil
}

// isMergedShift reports whether the current token is one of the
// SHR/USHR/SHR_ASSIGN/USHR_ASSIGN kinds the scanner produces when adjacent
// `>` characters were lexed as a single shift/compound-assignment operator.
func (p *Parser) isMergedShift() bool {
	switch p.cur().Kind {
	case token.SHR, token.USHR, token.SHR_ASSIGN, token.USHR_ASSIGN:
		return true
	default:
		return false
	}
}

func (p *Parser) parseTypeArgument() (*ast.TypeArgument, error) {
	start := p.pos()
	annotations, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}
	if p.is(token.QUESTION) {
		p.buf.Advance()
		ta := &ast.TypeArgument{}
		ta.SetPos(start)
		ta.Annotations = annotations
		if p.atAny("extends", "super") {
			ta.Super = p.at("super")
			p.buf.Advance()
			bound, err := p.parseType()
			if err != nil {
				return nil, err
			}
			ta.Bound = bound
		}
		return ta, nil
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	ta := &ast.TypeArgument{Base: t}
	ta.SetPos(start)
	ta.Annotations = annotations
	return ta, nil
}

// parseTypeParameterList parses `<T1 extends B1, T2>` generic declaration
// parameters.
func (p *Parser) parseTypeParameterList() ([]*ast.TypeParameter, error) {
	if _, err := p.eat(token.LT); err != nil {
		return nil, err
	}
	var out []*ast.TypeParameter
	for {
		start := p.pos()
		annotations, err := p.parseAnnotations()
		if err != nil {
			return nil, err
		}
		name, err := p.eatIdent()
		if err != nil {
			return nil, err
		}
		tp := &ast.TypeParameter{Name: name}
		tp.SetPos(start)
		tp.Annotations = annotations
		if p.peekKeyword("extends") {
			p.buf.Advance()
			bound, err := p.parseIntersectionBound()
			if err != nil {
				return nil, err
			}
			tp.Bound = bound
		}
		out = append(out, tp)
		if p.is(token.COMMA) {
			p.buf.Advance()
			continue
		}
		break
	}
	if p.isMergedShift() {
		p.buf.SplitShift()
	}
	if _, err := p.eat(token.GT); err != nil {
		return nil, err
	}
	return out, nil
}

// parseIntersectionBound parses `Type1 & Type2 & ...`, collapsing to the
// bare type when only one member is written (TypeIntersection's
// never-single-member invariant).
func (p *Parser) parseIntersectionBound() (ast.Type, error) {
	start := p.pos()
	first, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if !p.is(token.BITAND) {
		return first, nil
	}
	members := []ast.Type{first}
	for p.is(token.BITAND) {
		p.buf.Advance()
		m, err := p.parseType()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	ti := &ast.TypeIntersection{Members: members}
	ti.SetPos(start)
	return ti, nil
}

// parseUnionType parses `Type1 | Type2 | ...` (multi-catch), collapsing to
// the bare type when only one member is written.
func (p *Parser) parseUnionType() (ast.Type, error) {
	start := p.pos()
	first, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if !p.is(token.BITOR) {
		return first, nil
	}
	members := []ast.Type{first}
	for p.is(token.BITOR) {
		p.buf.Advance()
		m, err := p.parseType()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	tu := &ast.TypeUnion{Members: members}
	tu.SetPos(start)
	return tu, nil
}
