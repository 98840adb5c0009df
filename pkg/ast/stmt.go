package ast

type stmtBase struct{ base }

func (s *stmtBase) stmt() {}

// Block is a brace- or indentation-delimited sequence of statements.
type Block struct {
	stmtBase
	Stmts []Stmt
}

// ExpressionStatement is a bare expression used as a statement.
type ExpressionStatement struct {
	stmtBase
	Expr Expr
}

// EmptyStatement is a lone `;`.
type EmptyStatement struct {
	stmtBase
}

// LabeledStatement is `label: stmt`.
type LabeledStatement struct {
	stmtBase
	Label string
	Stmt  Stmt
}

// IfStatement is `if (cond) body [else elseBody]`.
type IfStatement struct {
	stmtBase
	Condition Expr
	Body      Stmt
	ElseBody  Stmt // nil if no else clause
}

// WhileLoop is `while (cond) body`.
type WhileLoop struct {
	stmtBase
	Condition Expr
	Body      Stmt
}

// DoWhileLoop is `do body while (cond);`.
type DoWhileLoop struct {
	stmtBase
	Condition Expr
	Body      Stmt
}

// ForLoop is `for (control) body`, where control is either a ForControl or
// an EnhancedForControl.
type ForLoop struct {
	stmtBase
	Control ForLoopControl
	Body    Stmt
}

// ForLoopControl is implemented by ForControl and EnhancedForControl.
type ForLoopControl interface {
	Node
	forControl()
}

// ForControl is the classic `init; cond; update` for-loop header.
type ForControl struct {
	base
	Init      Stmt // VariableDeclaration or ExpressionStatement-like init list; nil if absent
	Condition Expr // nil if absent
	Update    []Expr
}

func (c *ForControl) forControl() {}

// EnhancedForControl is the `Type name : iterable` for-each header. Var
// always has exactly one declarator with no initializer.
type EnhancedForControl struct {
	base
	Var      *VariableDeclaration
	Iterable Expr
}

func (c *EnhancedForControl) forControl() {}

// SynchronizedBlock is `synchronized (lock) body`.
type SynchronizedBlock struct {
	stmtBase
	Lock Expr
	Body *Block
}

// TryStatement is `try (resources) body catches [finally]`.
type TryStatement struct {
	stmtBase
	Resources []*TryResource
	Body      *Block
	Catches   []*CatchClause
	Finally   *Block // nil if absent
}

// CatchClause is a single `catch (Type1 | Type2 name) body` clause.
type CatchClause struct {
	base
	Var  *FormalParameter // Var.Type is a TypeUnion when multiple types were written
	Body *Block
}

// ThrowStatement is `throw expr;`.
type ThrowStatement struct {
	stmtBase
	Error Expr
}

// ReturnStatement is `return [value];`.
type ReturnStatement struct {
	stmtBase
	Value Expr // nil for a bare `return;`
}

// BreakStatement is `break [label];`.
type BreakStatement struct {
	stmtBase
	Label string // "" if unlabeled
}

// ContinueStatement is `continue [label];`.
type ContinueStatement struct {
	stmtBase
	Label string
}

// YieldStatement is `yield value;` inside a switch-expression body. Per the
// explicit design choice recorded in DESIGN.md, `break value;` written in
// source is accepted as a synonym but always normalized to this node and
// rendered as `yield value;`.
type YieldStatement struct {
	stmtBase
	Value Expr
}

// AssertStatement is `assert cond [: message];`.
type AssertStatement struct {
	stmtBase
	Condition Expr
	Message   Expr // nil if absent
}

// SwitchCase is one case of a Switch: classic `case L: ...` (fallthrough)
// or arrow `case L1, L2 -> body` (Arrow == true). An arrow case's Stmts has
// exactly one element: an ExpressionStatement, a *Block, or a
// ThrowStatement.
type SwitchCase struct {
	base
	Labels  []Expr // nil/empty labels list denotes the `default` case
	Default bool
	Arrow   bool
	Stmts   []Stmt
}

// Switch serves as both the statement and expression form of `switch`; the
// Rendering layer and the Decl/Stmt/Expr category come from how the parser
// wraps it (SwitchStatement wraps a *Switch as a Stmt; as an Expr it is
// used directly as the condition/value of an enclosing expression).
type Switch struct {
	base
	Condition Expr
	Cases     []*SwitchCase
}

func (s *Switch) expr() {}

// SwitchStatement wraps a Switch used in statement position.
type SwitchStatement struct {
	stmtBase
	Switch *Switch
}
