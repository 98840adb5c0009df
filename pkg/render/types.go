package render

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-javapy/pkg/ast"
)

func (w *writer) typeRef(t ast.Type) string {
	if t == nil {
		return ""
	}
	switch v := t.(type) {
	case *ast.PrimitiveType:
		return v.Name
	case *ast.VoidType:
		return "void"
	case *ast.GenericType:
		var b strings.Builder
		if v.Container != nil {
			b.WriteString(w.typeRef(v.Container))
			b.WriteByte('.')
		}
		b.WriteString(string(v.Name))
		if v.Typeargs != nil {
			if len(v.Typeargs) == 0 {
				b.WriteString("<>")
			} else {
				parts := make([]string, len(v.Typeargs))
				for i, a := range v.Typeargs {
					parts[i] = w.typeRef(a)
				}
				b.WriteByte('<')
				b.WriteString(strings.Join(parts, ", "))
				b.WriteByte('>')
			}
		}
		return b.String()
	case *ast.ArrayType:
		return w.typeRef(v.Base) + strings.Repeat("[]", len(v.Dimensions))
	case *ast.TypeUnion:
		return w.joinTypes(v.Members, " | ")
	case *ast.TypeIntersection:
		return w.joinTypes(v.Members, " & ")
	case *ast.TypeArgument:
		return w.typeArgument(v)
	default:
		return fmt.Sprintf("/* unrenderable type %T */", t)
	}
}

func (w *writer) typeArgument(a *ast.TypeArgument) string {
	if a.Base != nil {
		return w.typeRef(a.Base)
	}
	if a.Bound == nil {
		return "?"
	}
	if a.Super {
		return "? super " + w.typeRef(a.Bound)
	}
	return "? extends " + w.typeRef(a.Bound)
}

func (w *writer) joinTypes(ts []ast.Type, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = w.typeRef(t)
	}
	return strings.Join(parts, sep)
}

func (w *writer) typeParams(ps []*ast.TypeParameter) string {
	if len(ps) == 0 {
		return ""
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		if p.Bound != nil {
			parts[i] = p.Name + " extends " + w.typeRef(p.Bound)
		} else {
			parts[i] = p.Name
		}
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

func (w *writer) annotation(a *ast.Annotation) string {
	s := "@" + w.typeRef(a.Type)
	if a.Args == nil {
		return s
	}
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		if arg.Name != "" {
			parts[i] = arg.Name + " = " + w.annotationValue(arg.Value)
		} else {
			parts[i] = w.annotationValue(arg.Value)
		}
	}
	return s + "(" + strings.Join(parts, ", ") + ")"
}

func (w *writer) annotationValue(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.Annotation:
		return w.annotation(v)
	case *ast.ArrayInitializer:
		parts := make([]string, len(v.Values))
		for i, val := range v.Values {
			parts[i] = w.annotationValue(val)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return w.expr(e)
	}
}

func (w *writer) modifiers(mods []string) string {
	if len(mods) == 0 {
		return ""
	}
	return strings.Join(mods, " ") + " "
}

func (w *writer) annotationsInline(as []*ast.Annotation) string {
	if len(as) == 0 {
		return ""
	}
	parts := make([]string, len(as))
	for i, a := range as {
		parts[i] = w.annotation(a)
	}
	return strings.Join(parts, " ") + " "
}

func (w *writer) formalParam(p *ast.FormalParameter) string {
	s := w.annotationsInline(p.Annotations) + w.modifiers(p.Modifiers) + w.typeRef(p.Type)
	if p.Variadic {
		s += "..."
	}
	s += " " + p.Name
	s += strings.Repeat("[]", len(p.Dimensions))
	return s
}

func (w *writer) formalParams(ps []*ast.FormalParameter) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = w.formalParam(p)
	}
	return strings.Join(parts, ", ")
}
