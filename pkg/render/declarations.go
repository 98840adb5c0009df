package render

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-javapy/pkg/ast"
)

func (w *writer) decl(d ast.Decl) {
	switch v := d.(type) {
	case *ast.Class:
		w.classDecl(v)
	case *ast.Interface:
		w.interfaceDecl(v)
	case *ast.Enum:
		w.enumDecl(v)
	case *ast.AnnotationInterface:
		w.annotationInterfaceDecl(v)
	case *ast.VariableDeclaration:
		w.line(w.variableDeclaration(v) + ";")
	default:
		w.line(fmt.Sprintf("/* unrenderable decl %T */", d))
	}
}

func (w *writer) typeHeader(kind string, mods []string, annotations []*ast.Annotation, name string, typeParams []*ast.TypeParameter) {
	for _, a := range annotations {
		w.line(w.annotation(a))
	}
	w.writeIndent()
	w.str(w.modifiers(mods) + kind + " " + name + w.typeParams(typeParams))
}

func (w *writer) classDecl(c *ast.Class) {
	w.docComment(c.Doc)
	w.typeHeader("class", c.Modifiers, c.Annotations, c.Name, c.TypeParams)
	if c.Superclass != nil {
		w.str(" extends " + w.typeRef(c.Superclass))
	}
	if len(c.Interfaces) > 0 {
		w.str(" implements " + w.joinTypes(c.Interfaces, ", "))
	}
	w.str(w.memberBlock(c.Members))
	w.blank()
}

// interfaceDecl, enumDecl, annotationInterfaceDecl mirror classDecl but
// member bodies (not statement blocks) require their own opener since
// Members is a []Member, not a *ast.Block.
func (w *writer) interfaceDecl(i *ast.Interface) {
	w.docComment(i.Doc)
	w.typeHeader("interface", i.Modifiers, i.Annotations, i.Name, i.TypeParams)
	if len(i.Interfaces) > 0 {
		w.str(" extends " + w.joinTypes(i.Interfaces, ", "))
	}
	w.str(w.memberBlock(i.Members))
	w.blank()
}

func (w *writer) enumDecl(e *ast.Enum) {
	w.docComment(e.Doc)
	w.typeHeader("enum", e.Modifiers, e.Annotations, e.Name, nil)
	if len(e.Interfaces) > 0 {
		w.str(" implements " + w.joinTypes(e.Interfaces, ", "))
	}
	w.openMemberBrace()
	for i, f := range e.Fields {
		if i > 0 {
			w.str(",\n")
		}
		w.writeIndent()
		w.str(w.enumField(f))
	}
	if len(e.Members) > 0 {
		w.str(";\n")
		w.blank()
		for _, m := range e.Members {
			w.member(m)
		}
	} else if len(e.Fields) > 0 {
		w.str(";\n")
	}
	w.closeMemberBrace()
	w.blank()
}

func (w *writer) enumField(f *ast.EnumField) string {
	s := f.Name
	if f.Args != nil {
		s += "(" + w.exprList(f.Args) + ")"
	}
	if f.Members != nil {
		s += " " + w.memberBlock(f.Members)
	}
	return s
}

func (w *writer) annotationInterfaceDecl(ai *ast.AnnotationInterface) {
	w.docComment(ai.Doc)
	w.typeHeader("@interface", ai.Modifiers, ai.Annotations, ai.Name, nil)
	w.str(w.memberBlock(ai.Members))
	w.blank()
}

func (w *writer) openMemberBrace() {
	if w.brace() {
		w.str(" {\n")
	} else {
		w.str(":\n")
	}
	w.level++
}

func (w *writer) closeMemberBrace() {
	// The last member may have written a separating blank line; drop it so
	// a body never ends with a blank line before its close.
	if s := w.buf.String(); strings.HasSuffix(s, "\n\n") {
		w.buf.Reset()
		w.buf.WriteString(s[:len(s)-1])
	}
	w.level--
	if w.brace() {
		w.line("}")
	}
}

// member renders a single type-body member at the current indent level.
func (w *writer) member(m ast.Member) {
	switch v := m.(type) {
	case *ast.Class:
		w.classDecl(v)
	case *ast.Interface:
		w.interfaceDecl(v)
	case *ast.Enum:
		w.enumDecl(v)
	case *ast.AnnotationInterface:
		w.annotationInterfaceDecl(v)
	case *ast.EnumField:
		w.writeIndent()
		w.line(w.enumField(v) + ";")
	case *ast.Field:
		w.field(v)
	case *ast.Function:
		w.function(v)
		w.blank()
	case *ast.Constructor:
		w.constructor(v)
		w.blank()
	case *ast.InitializerBlock:
		w.initializerBlock(v)
		w.blank()
	case *ast.AnnotationProperty:
		w.annotationProperty(v)
	default:
		w.line(fmt.Sprintf("/* unrenderable member %T */", m))
	}
}

// memberBlock renders a `{ members }` body as a standalone string (used by
// anonymous class creators and enum constant bodies, which are embedded
// inline inside an expression rather than at statement level).
func (w *writer) memberBlock(members []ast.Member) string {
	bw := &writer{opts: w.opts, level: w.level}
	bw.openMemberBrace()
	for _, m := range members {
		bw.member(m)
	}
	bw.closeMemberBrace()
	return strings.TrimRight(bw.buf.String(), "\n")
}

func (w *writer) field(f *ast.Field) {
	for _, a := range f.Annotations {
		w.line(w.annotation(a))
	}
	w.writeIndent()
	w.str(w.modifiers(f.Modifiers) + w.typeRef(f.Type) + " ")
	for i, d := range f.Declarators {
		if i > 0 {
			w.str(", ")
		}
		w.str(w.declarator(d))
	}
	w.str(";\n")
}

func (w *writer) function(fn *ast.Function) {
	w.docComment(fn.Doc)
	for _, a := range fn.Annotations {
		w.line(w.annotation(a))
	}
	w.writeIndent()
	w.str(w.modifiers(fn.Modifiers) + w.typeParams(fn.TypeParams))
	if fn.TypeParams != nil {
		w.str(" ")
	}
	w.str(w.typeRef(fn.ReturnType) + " " + fn.Name + "(" + w.formalParams(fn.Params) + ")")
	if len(fn.Throws) > 0 {
		w.str(" throws " + w.joinTypes(fn.Throws, ", "))
	}
	if fn.Body == nil {
		w.str(";\n")
		return
	}
	w.block(fn.Body)
}

func (w *writer) constructor(c *ast.Constructor) {
	w.docComment(c.Doc)
	for _, a := range c.Annotations {
		w.line(w.annotation(a))
	}
	w.writeIndent()
	w.str(w.modifiers(c.Modifiers) + w.typeParams(c.TypeParams))
	if c.TypeParams != nil {
		w.str(" ")
	}
	w.str(c.Name + "(" + w.formalParams(c.Params) + ")")
	if len(c.Throws) > 0 {
		w.str(" throws " + w.joinTypes(c.Throws, ", "))
	}
	w.block(c.Body)
}

func (w *writer) initializerBlock(ib *ast.InitializerBlock) {
	w.docComment(ib.Doc)
	w.writeIndent()
	if ib.Static {
		w.str("static")
	}
	w.block(ib.Body)
}

func (w *writer) annotationProperty(ap *ast.AnnotationProperty) {
	w.docComment(ap.Doc)
	w.writeIndent()
	w.str(w.modifiers(ap.Modifiers) + w.typeRef(ap.Type) + " " + ap.Name + "()" + repeatBrackets(len(ap.Dimensions)))
	if ap.Default != nil {
		w.str(" default " + w.expr(ap.Default))
	}
	w.str(";\n")
}
