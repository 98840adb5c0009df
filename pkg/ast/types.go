package ast

import "github.com/cwbudde/go-javapy/pkg/token"

type typeBase struct {
	base
	Annotated
}

func (t *typeBase) typ() {}

// PrimitiveType is one of boolean/byte/short/int/long/char/float/double.
type PrimitiveType struct {
	typeBase
	Name string
}

// VoidType is the `void` return type.
type VoidType struct {
	typeBase
}

// GenericType is a (possibly simple, non-generic) named type, optionally
// qualified by an enclosing container type (`Outer.Inner<T>`).
//
// Typeargs == nil means no type-argument list was written at all;
// Typeargs == []Type{} means an explicit empty diamond `<>` was written.
// These are distinct per the spec's GenericType invariant.
type GenericType struct {
	typeBase
	Name      token.Name
	Typeargs  []Type
	Container Type // nil unless qualified by an enclosing generic type
}

// IsSimple reports whether this is a bare name with no type arguments and
// no container qualifier.
func (g *GenericType) IsSimple() bool {
	return g.Typeargs == nil && g.Container == nil
}

// ArrayType is a base type with one or more array dimensions, ordered
// outer to inner.
type ArrayType struct {
	typeBase
	Base       Type
	Dimensions []*Dimension
}

// Dimension is a single `[]` or `[] @Annotated` array dimension marker.
type Dimension struct {
	base
	Annotated
}

// TypeUnion is a multi-catch type `A | B | C`. Never constructed with a
// single member; the lone member is used directly in that case.
type TypeUnion struct {
	typeBase
	Members []Type
}

// TypeIntersection is a bound intersection type `A & B & C`. Never
// constructed with a single member.
type TypeIntersection struct {
	typeBase
	Members []Type
}

// TypeParameter is a generic declaration's `<T extends Bound>` parameter.
type TypeParameter struct {
	base
	Annotated
	Name  string
	Bound Type // nil if unbounded
}

// TypeArgument is a single entry in a type-argument list: a concrete type,
// or a wildcard `?`/`? extends Bound`/`? super Bound`.
type TypeArgument struct {
	base
	Annotated
	Base  Type // nil for a bare `?`
	Bound Type // nil unless Base == nil and a bound wildcard
	Super bool // true for `? super Bound`, false for `? extends Bound`
}

func (t *TypeArgument) typ() {}

func (t *TypeArgument) IsWildcard() bool { return t.Base == nil }
