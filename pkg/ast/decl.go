package ast

import "github.com/cwbudde/go-javapy/pkg/token"

type declBase struct {
	base
	Documented
	Annotated
	Modified
}

func (d *declBase) decl() {}

// typeDeclBase is embedded by Class/Interface/Enum/AnnotationInterface.
type typeDeclBase struct {
	declBase
	Name       string
	Members    []Member
}

func (d *typeDeclBase) member() {} // a nested type is itself a Member
func (d *typeDeclBase) stmt()   {} // local/nested class declarations are statements too

// GenericDecl is embedded by declarations that may carry type parameters.
type GenericDecl struct {
	TypeParams []*TypeParameter
}

// Class is a `class` declaration.
type Class struct {
	typeDeclBase
	GenericDecl
	Superclass Type   // nil if none (implicit Object)
	Interfaces []Type
}

// Interface is an `interface` declaration.
type Interface struct {
	typeDeclBase
	GenericDecl
	Interfaces []Type // extended interfaces
}

// Enum is an `enum` declaration.
type Enum struct {
	typeDeclBase
	Interfaces []Type
	Fields     []*EnumField
}

// AnnotationInterface is an `@interface` declaration.
type AnnotationInterface struct {
	typeDeclBase
}

// EnumField is a single enum constant, optionally with constructor
// arguments and/or an anonymous constant-specific class body.
type EnumField struct {
	base
	Documented
	Annotated
	Name    string
	Args    []Expr // nil if no parens were written
	Members []Member
}

func (n *EnumField) member() {}

// Field is a field declaration inside a type body.
type Field struct {
	declBase
	Type        Type
	Declarators []*VariableDeclarator
}

func (n *Field) member() {}

// VariableDeclarator names one `name[] [= init]` in a multi-declarator
// variable or field declaration.
type VariableDeclarator struct {
	base
	Name       string
	Dimensions []*Dimension
	Init       Expr // nil if uninitialized
}

// VariableDeclaration is a local variable declaration statement.
type VariableDeclaration struct {
	declBase
	Type        Type
	Declarators []*VariableDeclarator
}

func (n *VariableDeclaration) stmt() {}

// Function is a method declaration (abstract/native methods have Body == nil).
type Function struct {
	declBase
	GenericDecl
	Name       string
	ReturnType Type
	Params     []*FormalParameter
	Throws     []Type
	Body       *Block
}

func (n *Function) member() {}

// Constructor is a constructor declaration.
type Constructor struct {
	declBase
	GenericDecl
	Name   string
	Params []*FormalParameter
	Throws []Type
	Body   *Block
}

func (n *Constructor) member() {}

// InitializerBlock is a `static { ... }` or instance `{ ... }` initializer.
type InitializerBlock struct {
	base
	Documented
	Static bool
	Body   *Block
}

func (n *InitializerBlock) member() {}

// AnnotationProperty is an element declaration inside an `@interface` body.
type AnnotationProperty struct {
	declBase
	Type       Type
	Name       string
	Dimensions []*Dimension
	Default    Expr // nil if no `default` clause
}

func (n *AnnotationProperty) member() {}

// FormalParameter is a single method/constructor parameter.
type FormalParameter struct {
	base
	Annotated
	Modified
	Name       string
	Type       Type
	Dimensions []*Dimension
	Variadic   bool
}

// ThisParameter is an explicit/qualified receiver parameter, e.g.
// `Outer.this` as the first parameter of an inner-class constructor. A
// supplemental feature recovered from original_source/javapy/tree.py.
type ThisParameter struct {
	base
	Annotated
	Type      Type
	Qualifier token.Name // "" unless qualified, e.g. "Outer"
}

// TryResource is one `[type] name = init` entry in a try-with-resources
// header, or a bare existing-variable reference when Type == nil.
type TryResource struct {
	base
	Documented
	Annotated
	Modified
	Type       Type // nil for a bare resource-variable reference
	Name       string
	Dimensions []*Dimension
	Init       Expr
}
