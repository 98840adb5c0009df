// Package ast defines the closed algebraic family of AST node types shared
// by the brace-delimited and indented Java dialects. Every node is a plain
// struct; category membership is enforced by small marker-method sets
// (Decl/Stmt/Expr/Type) rather than a Visitor, per the single-match-operator
// design this package follows instead of one visit_* method per variant.
package ast

import "github.com/cwbudde/go-javapy/pkg/token"

// Node is implemented by every AST node. Parent is a non-owning back
// reference assigned after construction by SetParents; it is excluded from
// Equal and never read during rendering (rendering takes parent context as
// an explicit argument instead, per the design notes on avoiding true
// cycles in a systems language).
type Node interface {
	Pos() token.Position
	parent() Node
	setParent(Node)
}

// base is embedded by every concrete node; it carries the position used for
// error reporting and the non-owning parent link.
type base struct {
	P token.Position
	Parent Node
}

func (b *base) Pos() token.Position { return b.P }
func (b *base) parent() Node        { return b.Parent }
func (b *base) setParent(p Node)    { b.Parent = p }

// SetPos assigns a node's source position. Exported (unlike setParent) so
// that parser code outside this package can stamp positions on nodes built
// from a zero value, since the embedded base type itself is unexported.
func (b *base) SetPos(p token.Position) { b.P = p }

// Decl is implemented by every top-level or member declaration.
type Decl interface {
	Node
	decl()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmt()
}

// Expr is implemented by every expression node (including initializer
// forms: array initializers and annotation values).
type Expr interface {
	Node
	expr()
}

// Type is implemented by every type-reference node.
type Type interface {
	Node
	typ()
}

// Member is implemented by class/interface/enum/annotation-interface body
// members: fields, methods, constructors, initializer blocks, nested types,
// annotation properties, and enum constants.
type Member interface {
	Node
	member()
}

// Documented is embedded by any node that may carry an attached doc comment.
type Documented struct {
	Doc string // "" if none attached
}

// Annotated is embedded by any node that may carry annotations.
type Annotated struct {
	Annotations []*Annotation
}

// Modified is embedded by any declaration that may carry modifiers
// (public, static, final, ...), kept in source order.
type Modified struct {
	Modifiers []string
}

// CompilationUnit is the root of an ordinary (non-module) parse: an
// optional package declaration, imports, and top-level type declarations.
type CompilationUnit struct {
	base
	Package *Package
	Imports []*Import
	Types   []Decl
}

func (n *CompilationUnit) Children() []Node {
	var out []Node
	if n.Package != nil {
		out = append(out, n.Package)
	}
	for _, i := range n.Imports {
		out = append(out, i)
	}
	for _, t := range n.Types {
		out = append(out, t)
	}
	return out
}

// ModuleCompilationUnit is the root of a `module` declaration parse.
type ModuleCompilationUnit struct {
	base
	Documented
	Annotated
	Name       token.Name
	Open       bool
	Imports    []*Import
	Directives []ModuleDirective
}

// ModuleDirective is implemented by requires/exports/opens/uses/provides.
type ModuleDirective interface {
	Node
	moduleDirective()
}

type moduleDirectiveBase struct {
	base
	Documented
	Name token.Name
}

func (d *moduleDirectiveBase) moduleDirective() {}

// RequiresDirective is `requires [modifiers] name;`.
type RequiresDirective struct {
	moduleDirectiveBase
	Modifiers []string // "transitive", "static"
}

// ExportsDirective is `exports name [to targets];`.
type ExportsDirective struct {
	moduleDirectiveBase
	To []token.Name
}

// OpensDirective is `opens name [to targets];`.
type OpensDirective struct {
	moduleDirectiveBase
	To []token.Name
}

// UsesDirective is `uses name;`.
type UsesDirective struct {
	moduleDirectiveBase
}

// ProvidesDirective is `provides name with impls;`.
type ProvidesDirective struct {
	moduleDirectiveBase
	Provides []token.Name
}

// Package is the `package name;` declaration.
type Package struct {
	base
	Documented
	Annotated
	Name token.Name
}

// Import is a single `import [static] name[.*];` or the expansion of a
// `from a.b import (x, y.*)` form into one node per imported name.
type Import struct {
	base
	Name     token.Name
	Static   bool
	Wildcard bool
}

// Annotation is `@Type` or `@Type(args)`.
type Annotation struct {
	base
	Type Type
	Args []*AnnotationArgument // nil means no parens; empty means `()`
}

func (n *Annotation) expr() {}

// AnnotationArgument is a single `name = value` pair, or a bare value when
// Name == "" (the single-value shorthand `@T(value)`).
type AnnotationArgument struct {
	base
	Name  string
	Value Expr // Expr, nested *Annotation, or *ArrayInitializer
}

// ArrayInitializer is `{ v1, v2, ... }` used as an annotation value or a
// variable/array-creator initializer.
type ArrayInitializer struct {
	base
	Values []Expr
}

func (n *ArrayInitializer) expr() {}
