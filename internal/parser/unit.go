package parser

import (
	"strings"

	"github.com/cwbudde/go-javapy/pkg/ast"
	javapyerrors "github.com/cwbudde/go-javapy/pkg/errors"
	"github.com/cwbudde/go-javapy/pkg/token"
)

// parseCompilationUnit implements the ordinary (non-module) compilation
// unit grammar: optional package declaration, imports (including
// `from a.b import (x, y.*)` expansion), and top-level type declarations.
func (p *Parser) parseCompilationUnit() (*ast.CompilationUnit, error) {
	return withPhase(p, "compilation unit", func() (*ast.CompilationUnit, error) {
		cu := &ast.CompilationUnit{}

		// Leading annotations belong to the package declaration if one
		// follows; otherwise rewind so the first type declaration reads them.
		p.buf.PushMark()
		pkgAnnotations, err := p.parseAnnotations()
		if err != nil {
			p.buf.PopMark(true)
			return nil, err
		}
		if p.peekKeyword("package") {
			p.buf.PopMark(false)
			pkg, err := p.parsePackage(pkgAnnotations)
			if err != nil {
				return nil, err
			}
			cu.Package = pkg
		} else {
			p.buf.PopMark(true)
		}

		for p.peekKeyword("import") || p.at("from") {
			imports, err := p.parseImportOrFromImport()
			if err != nil {
				return nil, err
			}
			cu.Imports = append(cu.Imports, imports...)
			p.skipBlankLines()
		}

		for !p.is(token.ENDMARKER) && !p.is(token.RBRACE) && !p.atModuleStart() {
			p.skipBlankLines()
			if p.is(token.ENDMARKER) || p.is(token.RBRACE) {
				break
			}
			decl, err := p.parseTypeDeclaration()
			if err != nil {
				return nil, err
			}
			cu.Types = append(cu.Types, decl)
			p.skipBlankLines()
		}
		return cu, nil
	})
}

func (p *Parser) parsePackage(annotations []*ast.Annotation) (*ast.Package, error) {
	start := p.pos()
	if _, err := p.eatKeyword("package"); err != nil {
		return nil, err
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	pkg := &ast.Package{Name: name}
	pkg.SetPos(start)
	pkg.Annotations = annotations
	return pkg, nil
}

// parseImportOrFromImport handles both `import [static] a.b.Name[.*];` and
// the indented dialect's `from a.b import (x, y.*)` sugar, which expands to
// one *ast.Import per imported name (spec.md §4.3).
func (p *Parser) parseImportOrFromImport() ([]*ast.Import, error) {
	if p.at("from") {
		return p.parseFromImport()
	}
	imp, err := p.parseImport()
	if err != nil {
		return nil, err
	}
	return []*ast.Import{imp}, nil
}

func (p *Parser) parseImport() (*ast.Import, error) {
	start := p.pos()
	if _, err := p.eatKeyword("import"); err != nil {
		return nil, err
	}
	static := false
	if p.peekKeyword("static") {
		p.buf.Advance()
		static = true
	}
	name, wildcard, err := p.parseQualifiedNameWithWildcard()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	imp := &ast.Import{Name: name, Static: static, Wildcard: wildcard}
	imp.SetPos(start)
	return imp, nil
}

// parseFromImport handles `from qualifier import name1, name2.*`, with the
// whole name list optionally parenthesized: `from qualifier import (name1, name2.*)`.
func (p *Parser) parseFromImport() ([]*ast.Import, error) {
	start := p.pos()
	if _, err := p.eatContextualWord("from"); err != nil {
		return nil, err
	}
	qualifier, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	if _, err := p.eatKeyword("import"); err != nil {
		return nil, err
	}

	var names []token.Name
	var wildcards []bool
	parenthesized := false
	if p.is(token.LPAREN) {
		parenthesized = true
		p.buf.Advance()
	}
	for {
		seg, wc, err := p.parseQualifiedNameWithWildcard()
		if err != nil {
			return nil, err
		}
		names = append(names, seg)
		wildcards = append(wildcards, wc)
		if p.is(token.COMMA) {
			p.buf.Advance()
			continue
		}
		break
	}
	if parenthesized {
		if _, err := p.eat(token.RPAREN); err != nil {
			return nil, err
		}
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}

	out := make([]*ast.Import, len(names))
	for i, n := range names {
		imp := &ast.Import{Name: qualifier.Join(n), Wildcard: wildcards[i]}
		imp.SetPos(start)
		out[i] = imp
	}
	return out, nil
}

// rejectVarAsTypeName enforces that `var`, never valid as a type name, is
// not the simple (rightmost) name of a `uses`/`provides` directive target --
// the one other type-name position besides parseType's callers that does
// not route through parseClassType.
func (p *Parser) rejectVarAsTypeName(name token.Name) error {
	parts := strings.Split(string(name), ".")
	if parts[len(parts)-1] == "var" {
		return p.errorf(javapyerrors.ParseInvalidType, "'var' cannot be used as a type name")
	}
	return nil
}

// parseQualifiedName reads a dotted sequence of identifiers (`a.b.c`).
func (p *Parser) parseQualifiedName() (token.Name, error) {
	n, _, err := p.parseQualifiedNameWithWildcard()
	return n, err
}

// parseQualifiedNameWithWildcard additionally accepts a trailing `.*`.
func (p *Parser) parseQualifiedNameWithWildcard() (token.Name, bool, error) {
	first, err := p.eatIdent()
	if err != nil {
		return "", false, err
	}
	parts := []string{first}
	wildcard := false
	for p.is(token.DOT) {
		p.buf.Advance()
		if p.is(token.STAR) {
			p.buf.Advance()
			wildcard = true
			break
		}
		seg, err := p.eatIdent()
		if err != nil {
			return "", false, err
		}
		parts = append(parts, seg)
	}
	return token.NewName(strings.Join(parts, ".")), wildcard, nil
}

// --- module compilation units -----------------------------------------------

func (p *Parser) parseModuleCompilationUnit() (*ast.ModuleCompilationUnit, error) {
	return withPhase(p, "module declaration", func() (*ast.ModuleCompilationUnit, error) {
		mcu := &ast.ModuleCompilationUnit{}
		start := p.pos()

		for p.peekKeyword("import") {
			imp, err := p.parseImport()
			if err != nil {
				return nil, err
			}
			mcu.Imports = append(mcu.Imports, imp)
			p.skipBlankLines()
		}

		doc := p.buf.TakeDoc()
		annotations, err := p.parseAnnotations()
		if err != nil {
			return nil, err
		}
		open := false
		if p.at("open") {
			p.buf.Advance()
			open = true
		}
		if _, err := p.eatContextualWord("module"); err != nil {
			return nil, err
		}
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		body, err := p.parseModuleBody()
		if err != nil {
			return nil, err
		}

		mcu.SetPos(start)
		mcu.Doc = doc
		mcu.Annotations = annotations
		mcu.Name = name
		mcu.Open = open
		mcu.Directives = body
		p.validateModuleDirectives(mcu)
		return mcu, nil
	})
}

// validateModuleDirectives records non-fatal warnings about a parsed module
// declaration: things that are structurally legal but almost certainly not
// what the author meant (self-requires, duplicate requires, redundant
// exports/opens targets).
func (p *Parser) validateModuleDirectives(mcu *ast.ModuleCompilationUnit) {
	seenRequires := map[token.Name]bool{}
	for _, d := range mcu.Directives {
		switch dir := d.(type) {
		case *ast.RequiresDirective:
			if dir.Name == mcu.Name {
				p.warnf(dir.Pos(), "module %s requires itself", mcu.Name)
			}
			if seenRequires[dir.Name] {
				p.warnf(dir.Pos(), "module %s is required more than once", dir.Name)
			}
			seenRequires[dir.Name] = true
		case *ast.ExportsDirective:
			p.checkTargetList(dir.Pos(), "exports", dir.Name, mcu.Name, dir.To)
		case *ast.OpensDirective:
			p.checkTargetList(dir.Pos(), "opens", dir.Name, mcu.Name, dir.To)
		}
	}
}

// checkTargetList warns about a directive's "to" target list naming the
// declaring module itself or the same target twice.
func (p *Parser) checkTargetList(pos token.Position, keyword string, pkg, self token.Name, to []token.Name) {
	seen := map[token.Name]bool{}
	for _, t := range to {
		if t == self {
			p.warnf(pos, "%s %s to %s is a no-op: a module cannot %s a package to itself", keyword, pkg, t, keyword)
		}
		if seen[t] {
			p.warnf(pos, "%s %s names %s more than once in its to-list", keyword, pkg, t)
		}
		seen[t] = true
	}
}

func (p *Parser) parseModuleBody() ([]ast.ModuleDirective, error) {
	switch {
	case p.is(token.LBRACE):
		return p.parseBracedModuleBody()
	case p.is(token.COLON):
		return p.parseIndentedModuleBody()
	default:
		return nil, p.unexpected("module body")
	}
}

func (p *Parser) parseBracedModuleBody() ([]ast.ModuleDirective, error) {
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
	var out []ast.ModuleDirective
	for !p.is(token.RBRACE) && !(indented && p.is(token.DEDENT)) {
		p.skipBlankLines()
		if p.is(token.RBRACE) || (indented && p.is(token.DEDENT)) {
			break
		}
		d, err := p.parseModuleDirective()
		if err != nil {
			return nil, err
		}
		out = append(out, d)
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
	return out, nil
}

func (p *Parser) parseIndentedModuleBody() ([]ast.ModuleDirective, error) {
	if _, err := p.eat(token.COLON); err != nil {
		return nil, err
	}
	var out []ast.ModuleDirective
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
			d, err := p.parseModuleDirective()
			if err != nil {
				return nil, err
			}
			out = append(out, d)
			p.skipBlankLines()
		}
		if _, err := p.eat(token.DEDENT); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (p *Parser) parseModuleDirective() (ast.ModuleDirective, error) {
	start := p.pos()
	doc := p.buf.TakeDoc()
	switch {
	case p.at("requires"):
		p.buf.Advance()
		var mods []string
		for p.atAny("transitive", "static") {
			mods = append(mods, p.cur().Lexeme)
			p.buf.Advance()
		}
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		d := &ast.RequiresDirective{Modifiers: mods}
		d.SetPos(start)
		d.Doc = doc
		d.Name = name
		return d, nil
	case p.at("exports"):
		p.buf.Advance()
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		var to []token.Name
		if p.at("to") {
			p.buf.Advance()
			to, err = p.parseNameList()
			if err != nil {
				return nil, err
			}
		}
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		d := &ast.ExportsDirective{To: to}
		d.SetPos(start)
		d.Doc = doc
		d.Name = name
		return d, nil
	case p.at("opens"):
		p.buf.Advance()
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		var to []token.Name
		if p.at("to") {
			p.buf.Advance()
			to, err = p.parseNameList()
			if err != nil {
				return nil, err
			}
		}
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		d := &ast.OpensDirective{To: to}
		d.SetPos(start)
		d.Doc = doc
		d.Name = name
		return d, nil
	case p.at("uses"):
		p.buf.Advance()
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		if err := p.rejectVarAsTypeName(name); err != nil {
			return nil, err
		}
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		d := &ast.UsesDirective{}
		d.SetPos(start)
		d.Doc = doc
		d.Name = name
		return d, nil
	case p.at("provides"):
		p.buf.Advance()
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		if err := p.rejectVarAsTypeName(name); err != nil {
			return nil, err
		}
		if _, err := p.eatContextualWord("with"); err != nil {
			return nil, err
		}
		impls, err := p.parseNameList()
		if err != nil {
			return nil, err
		}
		for _, impl := range impls {
			if err := p.rejectVarAsTypeName(impl); err != nil {
				return nil, err
			}
		}
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		d := &ast.ProvidesDirective{Provides: impls}
		d.SetPos(start)
		d.Doc = doc
		d.Name = name
		return d, nil
	default:
		return nil, p.unexpected("module directive")
	}
}

func (p *Parser) parseNameList() ([]token.Name, error) {
	var out []token.Name
	for {
		n, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
		if p.is(token.COMMA) {
			p.buf.Advance()
			continue
		}
		break
	}
	return out, nil
}
