package parser

import (
	"github.com/cwbudde/go-javapy/pkg/ast"
	"github.com/cwbudde/go-javapy/pkg/token"
)

// parseTypeDeclaration parses a top-level, nested, or local class/interface/
// enum/@interface declaration, including its leading doc comment,
// annotations, and modifiers.
func (p *Parser) parseTypeDeclaration() (ast.Decl, error) {
	start := p.pos()
	doc := p.buf.TakeDoc()
	mods, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		return nil, err
	}
	switch {
	case p.peekKeyword("class"):
		return p.parseClass(start, doc, mods, annotations)
	case p.peekKeyword("interface"):
		return p.parseInterface(start, doc, mods, annotations)
	case p.peekKeyword("enum"):
		return p.parseEnum(start, doc, mods, annotations)
	case p.is(token.AT) && p.peekKeywordAt(1, "interface"):
		return p.parseAnnotationInterface(start, doc, mods, annotations)
	default:
		return nil, p.unexpected("type declaration")
	}
}

func (p *Parser) parseClass(start token.Position, doc string, mods []string, annotations []*ast.Annotation) (*ast.Class, error) {
	return withPhase(p, "class body", func() (*ast.Class, error) {
		if _, err := p.eatKeyword("class"); err != nil {
			return nil, err
		}
		name, err := p.eatIdent()
		if err != nil {
			return nil, err
		}
		c := &ast.Class{}
		c.SetPos(start)
		c.Doc = doc
		c.Modifiers = mods
		c.Annotations = annotations
		c.Name = name

		if p.is(token.LT) {
			tp, err := p.parseTypeParameterList()
			if err != nil {
				return nil, err
			}
			c.TypeParams = tp
		}
		if p.peekKeyword("extends") {
			p.buf.Advance()
			sup, err := p.parseClassType()
			if err != nil {
				return nil, err
			}
			c.Superclass = sup
		}
		if p.peekKeyword("implements") {
			p.buf.Advance()
			ifaces, err := p.parseTypeList()
			if err != nil {
				return nil, err
			}
			c.Interfaces = ifaces
		}
		members, err := p.parseClassBody()
		if err != nil {
			return nil, err
		}
		c.Members = members
		return c, nil
	})
}

func (p *Parser) parseInterface(start token.Position, doc string, mods []string, annotations []*ast.Annotation) (*ast.Interface, error) {
	return withPhase(p, "interface body", func() (*ast.Interface, error) {
		if _, err := p.eatKeyword("interface"); err != nil {
			return nil, err
		}
		name, err := p.eatIdent()
		if err != nil {
			return nil, err
		}
		i := &ast.Interface{}
		i.SetPos(start)
		i.Doc = doc
		i.Modifiers = mods
		i.Annotations = annotations
		i.Name = name
		if p.is(token.LT) {
			tp, err := p.parseTypeParameterList()
			if err != nil {
				return nil, err
			}
			i.TypeParams = tp
		}
		if p.peekKeyword("extends") {
			p.buf.Advance()
			ifaces, err := p.parseTypeList()
			if err != nil {
				return nil, err
			}
			i.Interfaces = ifaces
		}
		members, err := p.parseClassBody()
		if err != nil {
			return nil, err
		}
		i.Members = members
		return i, nil
	})
}

func (p *Parser) parseEnum(start token.Position, doc string, mods []string, annotations []*ast.Annotation) (*ast.Enum, error) {
	return withPhase(p, "enum body", func() (*ast.Enum, error) {
		if _, err := p.eatKeyword("enum"); err != nil {
			return nil, err
		}
		name, err := p.eatIdent()
		if err != nil {
			return nil, err
		}
		e := &ast.Enum{}
		e.SetPos(start)
		e.Doc = doc
		e.Modifiers = mods
		e.Annotations = annotations
		e.Name = name
		if p.peekKeyword("implements") {
			p.buf.Advance()
			ifaces, err := p.parseTypeList()
			if err != nil {
				return nil, err
			}
			e.Interfaces = ifaces
		}

		colon := p.is(token.COLON)
		if colon {
			p.buf.Advance()
		} else if _, err := p.eat(token.LBRACE); err != nil {
			return nil, err
		}
		indented := false
		if p.is(token.NEWLINE) {
			p.buf.Advance()
			if _, err := p.eat(token.INDENT); err == nil {
				indented = true
			}
		}
		for !p.is(token.SEMI) && !p.is(token.RBRACE) && !(indented && p.is(token.DEDENT)) {
			p.skipBlankLines()
			if p.is(token.SEMI) || p.is(token.RBRACE) || (indented && p.is(token.DEDENT)) {
				break
			}
			f, err := p.parseEnumField()
			if err != nil {
				return nil, err
			}
			e.Fields = append(e.Fields, f)
			if p.is(token.COMMA) {
				p.buf.Advance()
				continue
			}
			break
		}
		if p.is(token.SEMI) {
			p.buf.Advance()
			for !p.is(token.RBRACE) && !(indented && p.is(token.DEDENT)) {
				p.skipBlankLines()
				if p.is(token.RBRACE) || (indented && p.is(token.DEDENT)) {
					break
				}
				m, err := p.parseMember()
				if err != nil {
					return nil, err
				}
				e.Members = append(e.Members, m)
				p.skipBlankLines()
			}
		}
		if indented {
			if _, err := p.eat(token.DEDENT); err != nil {
				return nil, err
			}
		}
		if !colon {
			if _, err := p.eat(token.RBRACE); err != nil {
				return nil, err
			}
		}
		return e, nil
	})
}

func (p *Parser) parseEnumField() (*ast.EnumField, error) {
	start := p.pos()
	doc := p.buf.TakeDoc()
	annotations, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}
	name, err := p.eatIdent()
	if err != nil {
		return nil, err
	}
	f := &ast.EnumField{Name: name}
	f.SetPos(start)
	f.Doc = doc
	f.Annotations = annotations
	if p.is(token.LPAREN) {
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		f.Args = args
	}
	if p.is(token.LBRACE) {
		members, err := p.parseClassBody()
		if err != nil {
			return nil, err
		}
		f.Members = members
	}
	return f, nil
}

func (p *Parser) parseAnnotationInterface(start token.Position, doc string, mods []string, annotations []*ast.Annotation) (*ast.AnnotationInterface, error) {
	return withPhase(p, "annotation interface body", func() (*ast.AnnotationInterface, error) {
		if _, err := p.eat(token.AT); err != nil {
			return nil, err
		}
		if _, err := p.eatKeyword("interface"); err != nil {
			return nil, err
		}
		name, err := p.eatIdent()
		if err != nil {
			return nil, err
		}
		ai := &ast.AnnotationInterface{}
		ai.SetPos(start)
		ai.Doc = doc
		ai.Modifiers = mods
		ai.Annotations = annotations
		ai.Name = name
		members, err := p.parseClassBody()
		if err != nil {
			return nil, err
		}
		ai.Members = members
		return ai, nil
	})
}

func (p *Parser) parseTypeList() ([]ast.Type, error) {
	var out []ast.Type
	for {
		t, err := p.parseClassType()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		if p.is(token.COMMA) {
			p.buf.Advance()
			continue
		}
		break
	}
	return out, nil
}

// parseClassBody parses a type body in either dialect: brace-delimited
// `{ members... }` (itself optionally NEWLINE/INDENT/DEDENT-wrapped for
// readability), or the indented dialect's `: NEWLINE INDENT ... DEDENT`
// replacing the braces outright, per spec.md's "type body... may be
// replaced by `: NEWLINE INDENT … DEDENT`".
func (p *Parser) parseClassBody() ([]ast.Member, error) {
	switch {
	case p.is(token.LBRACE):
		return p.parseBracedClassBody()
	case p.is(token.COLON):
		return p.parseIndentedClassBody()
	default:
		return nil, p.unexpected("type body")
	}
}

func (p *Parser) parseBracedClassBody() ([]ast.Member, error) {
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
	var members []ast.Member
	for !p.is(token.RBRACE) && !(indented && p.is(token.DEDENT)) {
		p.skipBlankLines()
		if p.is(token.RBRACE) || (indented && p.is(token.DEDENT)) {
			break
		}
		if p.is(token.SEMI) {
			p.buf.Advance()
			continue
		}
		m, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
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
	return members, nil
}

func (p *Parser) parseIndentedClassBody() ([]ast.Member, error) {
	if _, err := p.eat(token.COLON); err != nil {
		return nil, err
	}
	var members []ast.Member
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
			if p.is(token.SEMI) {
				p.buf.Advance()
				continue
			}
			m, err := p.parseMember()
			if err != nil {
				return nil, err
			}
			members = append(members, m)
			p.skipBlankLines()
		}
		if _, err := p.eat(token.DEDENT); err != nil {
			return nil, err
		}
	}
	return members, nil
}

// parseMember parses a single type-body member: a nested type, an
// initializer block, a constructor, a method, an annotation-interface
// property, or a field (possibly multi-declarator).
func (p *Parser) parseMember() (ast.Member, error) {
	start := p.pos()
	doc := p.buf.TakeDoc()
	mods, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		return nil, err
	}

	if p.peekKeyword("class") || p.peekKeyword("interface") || p.peekKeyword("enum") ||
		(p.is(token.AT) && p.peekKeywordAt(1, "interface")) {
		return p.parseTypeDeclarationAsMember(start, doc, mods, annotations)
	}

	if p.is(token.LBRACE) {
		body, err := p.parseRequiredBlock()
		if err != nil {
			return nil, err
		}
		ib := &ast.InitializerBlock{Static: contains(mods, "static"), Body: body}
		ib.SetPos(start)
		ib.Doc = doc
		return ib, nil
	}

	var typeParams []*ast.TypeParameter
	if p.is(token.LT) {
		tp, err := p.parseTypeParameterList()
		if err != nil {
			return nil, err
		}
		typeParams = tp
	}

	if p.is(token.NAME) && p.peek(1).Kind == token.LPAREN {
		return p.parseConstructor(start, doc, mods, annotations, typeParams)
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.eatIdent()
	if err != nil {
		return nil, err
	}
	if p.is(token.LPAREN) {
		return p.parseFunctionTail(start, doc, mods, annotations, typeParams, typ, name)
	}

	return p.parseFieldTail(start, doc, mods, annotations, typ, name)
}

func contains(xs []string, x string) bool {
	for _, s := range xs {
		if s == x {
			return true
		}
	}
	return false
}

// parseLocalTypeDeclaration parses a local class/interface/enum/@interface
// declaration appearing as a statement. typeDeclBase implements both Decl
// and Stmt, so the assertion below always succeeds.
func (p *Parser) parseLocalTypeDeclaration() (ast.Stmt, error) {
	d, err := p.parseTypeDeclaration()
	if err != nil {
		return nil, err
	}
	return d.(ast.Stmt), nil
}

func (p *Parser) parseTypeDeclarationAsMember(start token.Position, doc string, mods []string, annotations []*ast.Annotation) (ast.Member, error) {
	switch {
	case p.peekKeyword("class"):
		return p.parseClass(start, doc, mods, annotations)
	case p.peekKeyword("interface"):
		return p.parseInterface(start, doc, mods, annotations)
	case p.peekKeyword("enum"):
		return p.parseEnum(start, doc, mods, annotations)
	default:
		return p.parseAnnotationInterface(start, doc, mods, annotations)
	}
}

func (p *Parser) parseConstructor(start token.Position, doc string, mods []string, annotations []*ast.Annotation, typeParams []*ast.TypeParameter) (*ast.Constructor, error) {
	name, err := p.eatIdent()
	if err != nil {
		return nil, err
	}
	params, err := p.parseFormalParameters()
	if err != nil {
		return nil, err
	}
	var throws []ast.Type
	if p.peekKeyword("throws") {
		p.buf.Advance()
		throws, err = p.parseTypeList()
		if err != nil {
			return nil, err
		}
	}
	body, err := p.parseRequiredBlock()
	if err != nil {
		return nil, err
	}
	c := &ast.Constructor{Name: name, Params: params, Throws: throws, Body: body}
	c.SetPos(start)
	c.Doc = doc
	c.Modifiers = mods
	c.Annotations = annotations
	c.TypeParams = typeParams
	return c, nil
}

func (p *Parser) parseFunctionTail(start token.Position, doc string, mods []string, annotations []*ast.Annotation, typeParams []*ast.TypeParameter, returnType ast.Type, name string) (ast.Member, error) {
	params, err := p.parseFormalParameters()
	if err != nil {
		return nil, err
	}
	dims, err := p.parseTrailingDimensions()
	if err != nil {
		return nil, err
	}
	if len(dims) > 0 {
		returnType = &ast.ArrayType{Base: returnType, Dimensions: dims}
	}
	var throws []ast.Type
	if p.peekKeyword("throws") {
		p.buf.Advance()
		throws, err = p.parseTypeList()
		if err != nil {
			return nil, err
		}
	}

	if p.peekKeyword("default") {
		p.buf.Advance()
		def, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		ap := &ast.AnnotationProperty{Type: returnType, Name: name, Default: def}
		ap.SetPos(start)
		ap.Doc = doc
		ap.Modifiers = mods
		ap.Annotations = annotations
		return ap, nil
	}

	var body *ast.Block
	if p.is(token.LBRACE) || p.is(token.COLON) {
		body, err = p.parseRequiredBlock()
		if err != nil {
			return nil, err
		}
	} else {
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
	}

	f := &ast.Function{Name: name, ReturnType: returnType, Params: params, Throws: throws, Body: body}
	f.SetPos(start)
	f.Doc = doc
	f.Modifiers = mods
	f.Annotations = annotations
	f.TypeParams = typeParams
	return f, nil
}

func (p *Parser) parseFieldTail(start token.Position, doc string, mods []string, annotations []*ast.Annotation, typ ast.Type, firstName string) (*ast.Field, error) {
	f := &ast.Field{Type: typ}
	f.SetPos(start)
	f.Doc = doc
	f.Modifiers = mods
	f.Annotations = annotations

	first, err := p.finishDeclarator(firstName)
	if err != nil {
		return nil, err
	}
	f.Declarators = append(f.Declarators, first)
	for p.is(token.COMMA) {
		p.buf.Advance()
		name, err := p.eatIdent()
		if err != nil {
			return nil, err
		}
		d, err := p.finishDeclarator(name)
		if err != nil {
			return nil, err
		}
		f.Declarators = append(f.Declarators, d)
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return f, nil
}

func (p *Parser) finishDeclarator(name string) (*ast.VariableDeclarator, error) {
	start := p.pos()
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

func (p *Parser) parseFormalParameters() ([]*ast.FormalParameter, error) {
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	var params []*ast.FormalParameter
	for !p.is(token.RPAREN) {
		fp, err := p.parseFormalParameter()
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

func (p *Parser) parseFormalParameter() (*ast.FormalParameter, error) {
	start := p.pos()
	mods, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		return nil, err
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
	dims, err := p.parseTrailingDimensions()
	if err != nil {
		return nil, err
	}
	fp := &ast.FormalParameter{Name: name, Type: typ, Dimensions: dims, Variadic: variadic}
	fp.SetPos(start)
	fp.Modifiers = mods
	fp.Annotations = annotations
	return fp, nil
}
