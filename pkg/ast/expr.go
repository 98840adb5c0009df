package ast

import "github.com/cwbudde/go-javapy/pkg/token"

type exprBase struct{ base }

func (e *exprBase) expr() {}

// LiteralKind classifies a Literal's lexical form.
type LiteralKind int

const (
	IntLit LiteralKind = iota
	LongLit
	FloatLit
	DoubleLit
	BoolLit
	CharLit
	StringLit
	TextBlockLit
)

// Literal is a numeric, string, character, or boolean constant. Raw
// preserves the exact source spelling (base, digit separators, suffix) so
// rendering is lossless.
type Literal struct {
	exprBase
	Kind LiteralKind
	Raw  string
}

// NullLiteral is the `null` literal.
type NullLiteral struct {
	exprBase
}

// TypeLiteral is `Type.class`.
type TypeLiteral struct {
	exprBase
	Type Type
}

// Identifier is a bare name reference.
type Identifier struct {
	exprBase
	Name string
}

// MemberAccess is `object.name`, or a bare qualified field/package
// reference when Object == nil (e.g. `java.util.List`, rendered flat).
type MemberAccess struct {
	exprBase
	Object Expr // nil for a root qualified segment
	Name   string
}

// FunctionCall is `[object.]name(args)` or `[object.]<T1,T2>name(args)`.
type FunctionCall struct {
	exprBase
	Object   Expr // nil for an unqualified call
	Name     string
	Args     []Expr
	Typeargs []Type
}

// ThisCall is `this(args);` or `Outer.this(args);` (explicit constructor
// invocation).
type ThisCall struct {
	exprBase
	Object   Expr
	Args     []Expr
	Typeargs []Type
}

// SuperCall is `super(args);` or `Outer.super(args);`.
type SuperCall struct {
	exprBase
	Object   Expr
	Args     []Expr
	Typeargs []Type
}

// This is a bare `this` or qualified `Outer.this` expression.
type This struct {
	exprBase
	Object Expr // nil for a bare `this`
}

// Super is a bare `super` or qualified `Outer.super` expression.
type Super struct {
	exprBase
	Object Expr
}

// BinaryExpression is `lhs op rhs` for any binary operator including the
// adjacency-sensitive shifts `>>`/`>>>`.
type BinaryExpression struct {
	exprBase
	Op  token.Kind
	Lhs Expr
	Rhs Expr
}

// UnaryExpression is a prefix unary operator applied to an operand
// (`+ - ! ~`, and prefix `++`/`--` are IncrementExpression instead).
type UnaryExpression struct {
	exprBase
	Op   token.Kind
	Expr Expr
}

// IncrementExpression is pre- or post-increment/decrement.
type IncrementExpression struct {
	exprBase
	Op     token.Kind // INC or DEC
	Expr   Expr
	Prefix bool
}

// ConditionalExpression is `cond ? truePart : falsePart`.
type ConditionalExpression struct {
	exprBase
	Condition Expr
	TruePart  Expr
	FalsePart Expr
}

// IndexExpression is `indexed[index]`.
type IndexExpression struct {
	exprBase
	Indexed Expr
	Index   Expr
}

// CastExpression is `(Type) expr`.
type CastExpression struct {
	exprBase
	Type Type
	Expr Expr
}

// Assignment is `lhs op= rhs` for `=` and every compound assignment
// including `>>>=`.
type Assignment struct {
	exprBase
	Op  token.Kind
	Lhs Expr
	Rhs Expr
}

// TypeTest is `expr instanceof Type [name]` (enhanced instanceof with an
// optional pattern-variable binding).
type TypeTest struct {
	exprBase
	Expr    Expr
	Type    Type
	Binding string // "" if no pattern variable was bound
}

// Parenthesis is an explicit `(expr)` grouping, preserved as its own node
// since rendering and some disambiguations are parenthesis-sensitive.
type Parenthesis struct {
	exprBase
	Expr Expr
}

// Lambda is `params -> body`; Body is either an Expr or a *Block.
type Lambda struct {
	exprBase
	Params []*FormalParameter // implicit-typed params have Param.Type == nil
	Body   Node               // Expr or *Block
}

// MethodReference is `object::name` (name == "new" denotes a constructor
// reference `Type::new`).
type MethodReference struct {
	exprBase
	Object   Node // Type or Expr
	Typeargs []Type
	Name     string
}

// ClassCreator is `new Type(args) [{ members }]` for ordinary and
// anonymous-class instantiation (Members != nil signals an anonymous body).
type ClassCreator struct {
	exprBase
	Type     Type
	Object   Expr // non-nil for a qualified inner-class creation `outer.new Inner()`
	Args     []Expr
	Typeargs []Type
	Members  []Member // nil unless an anonymous body was written
}

// DimensionExpr is one `[size]` or bare `[]` entry in an array creator.
type DimensionExpr struct {
	base
	Annotated
	Size Expr // nil for a bare unsized dimension
}

// ArrayCreator is `new Type[dims] [initializer]`.
type ArrayCreator struct {
	exprBase
	Type        Type
	Dimensions  []*DimensionExpr
	Initializer *ArrayInitializer // nil unless an initializer was written
}

// FStringLiteral is an interpolated string literal: literal text segments
// alternating with embedded expression holes, assembled from the scanner's
// FSTRING_BEGIN/MIDDLE/END segment tokens. len(Segments) == len(Holes)+1.
// Raw preserves the quote style (triple vs single, prefix letters) for
// round-trip rendering.
type FStringLiteral struct {
	exprBase
	Quote    string // the opening delimiter as written, e.g. `f"` or `f'''`
	Triple   bool
	Segments []string
	Holes    []Expr
}
