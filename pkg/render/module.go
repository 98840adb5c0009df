package render

import (
	"fmt"

	"github.com/cwbudde/go-javapy/pkg/ast"
	"github.com/cwbudde/go-javapy/pkg/token"
)

func (w *writer) moduleCompilationUnit(m *ast.ModuleCompilationUnit) {
	for _, imp := range m.Imports {
		w.importDecl(imp)
	}
	if len(m.Imports) > 0 {
		w.blank()
	}
	w.docComment(m.Doc)
	for _, a := range m.Annotations {
		w.line(w.annotation(a))
	}
	open := ""
	if m.Open {
		open = "open "
	}
	w.writeIndent()
	w.str(open + "module " + string(m.Name))
	w.openMemberBrace()
	for _, d := range m.Directives {
		w.moduleDirective(d)
	}
	w.closeMemberBrace()
}

func (w *writer) moduleDirective(d ast.ModuleDirective) {
	switch v := d.(type) {
	case *ast.RequiresDirective:
		mods := ""
		if len(v.Modifiers) > 0 {
			for _, m := range v.Modifiers {
				mods += m + " "
			}
		}
		w.line("requires " + mods + string(v.Name) + ";")
	case *ast.ExportsDirective:
		s := "exports " + string(v.Name)
		if len(v.To) > 0 {
			s += " to " + joinNames(v.To)
		}
		w.line(s + ";")
	case *ast.OpensDirective:
		s := "opens " + string(v.Name)
		if len(v.To) > 0 {
			s += " to " + joinNames(v.To)
		}
		w.line(s + ";")
	case *ast.UsesDirective:
		w.line("uses " + string(v.Name) + ";")
	case *ast.ProvidesDirective:
		w.line("provides " + string(v.Name) + " with " + joinNames(v.Provides) + ";")
	default:
		w.line(fmt.Sprintf("/* unrenderable module directive %T */", d))
	}
}

func joinNames(ns []token.Name) string {
	s := ""
	for i, n := range ns {
		if i > 0 {
			s += ", "
		}
		s += string(n)
	}
	return s
}
