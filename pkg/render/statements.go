package render

import (
	"fmt"

	"github.com/cwbudde/go-javapy/pkg/ast"
)

// blockBody renders a *ast.Block's statements at the current indent level,
// without writing the enclosing braces/colon itself.
func (w *writer) blockBody(b *ast.Block) {
	for _, s := range b.Stmts {
		w.stmt(s)
	}
}

// block appends a block to whatever header text the caller already wrote
// on the current line (no trailing separator expected from the caller):
// ` { ... }` in the brace dialect, `: \n ...` in the indented dialect. Used
// for contexts that always require a block (method/constructor bodies,
// try/catch/finally, synchronized).
func (w *writer) block(b *ast.Block) {
	if w.brace() {
		w.str(" {\n")
		w.level++
		w.blockBody(b)
		w.level--
		w.line("}")
		return
	}
	w.str(":\n")
	w.level++
	w.blockBody(b)
	w.level--
}

func (w *writer) stmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.Block:
		w.writeIndent()
		w.str("{\n")
		w.level++
		w.blockBody(v)
		w.level--
		w.line("}")
	case *ast.ExpressionStatement:
		w.line(w.expr(v.Expr) + ";")
	case *ast.EmptyStatement:
		w.line(";")
	case *ast.LabeledStatement:
		w.writeIndent()
		w.str(v.Label + ": ")
		w.inlineOrNewline(v.Stmt)
	case *ast.IfStatement:
		w.ifStatement(v)
	case *ast.WhileLoop:
		w.writeIndent()
		w.str("while (" + w.expr(v.Condition) + ")")
		w.bodyHeadless(v.Body)
	case *ast.DoWhileLoop:
		w.writeIndent()
		w.str("do")
		w.bodyHeadless(v.Body)
		w.line("while (" + w.expr(v.Condition) + ");")
	case *ast.ForLoop:
		w.writeIndent()
		w.str("for (" + w.forControl(v.Control) + ")")
		w.bodyHeadless(v.Body)
	case *ast.SynchronizedBlock:
		w.writeIndent()
		w.str("synchronized (" + w.expr(v.Lock) + ")")
		w.block(v.Body)
	case *ast.TryStatement:
		w.tryStatement(v)
	case *ast.ThrowStatement:
		w.line("throw " + w.expr(v.Error) + ";")
	case *ast.ReturnStatement:
		if v.Value == nil {
			w.line("return;")
		} else {
			w.line("return " + w.expr(v.Value) + ";")
		}
	case *ast.BreakStatement:
		if v.Label != "" {
			w.line("break " + v.Label + ";")
		} else {
			w.line("break;")
		}
	case *ast.ContinueStatement:
		if v.Label != "" {
			w.line("continue " + v.Label + ";")
		} else {
			w.line("continue;")
		}
	case *ast.YieldStatement:
		w.line("yield " + w.expr(v.Value) + ";")
	case *ast.AssertStatement:
		if v.Message != nil {
			w.line("assert " + w.expr(v.Condition) + " : " + w.expr(v.Message) + ";")
		} else {
			w.line("assert " + w.expr(v.Condition) + ";")
		}
	case *ast.SwitchStatement:
		w.switchHeaderAndBody(v.Switch)
	case *ast.VariableDeclaration:
		w.line(w.variableDeclaration(v) + ";")
	case ast.Decl:
		w.decl(v)
	default:
		w.line(fmt.Sprintf("/* unrenderable stmt %T */", s))
	}
}

func (w *writer) bodyHeadless(body ast.Stmt) {
	if blk, ok := body.(*ast.Block); ok {
		w.block(blk)
		return
	}
	w.str(":\n")
	w.level++
	w.stmt(body)
	w.level--
}

func (w *writer) inlineOrNewline(s ast.Stmt) {
	w.buf.WriteByte('\n')
	w.stmt(s)
}

func (w *writer) ifStatement(v *ast.IfStatement) {
	w.writeIndent()
	w.str("if (" + w.expr(v.Condition) + ")")
	w.bodyHeadless(v.Body)
	for v.ElseBody != nil {
		if elseIf, ok := v.ElseBody.(*ast.IfStatement); ok {
			w.writeIndent()
			w.str("else if (" + w.expr(elseIf.Condition) + ")")
			w.bodyHeadless(elseIf.Body)
			v = elseIf
			continue
		}
		w.writeIndent()
		w.str("else")
		w.bodyHeadless(v.ElseBody)
		break
	}
}

func (w *writer) forControl(c ast.ForLoopControl) string {
	switch v := c.(type) {
	case *ast.EnhancedForControl:
		decl := v.Var.Declarators[0]
		typ := "var"
		if v.Var.Type != nil {
			typ = w.typeRef(v.Var.Type)
		}
		return typ + " " + decl.Name + " : " + w.expr(v.Iterable)
	case *ast.ForControl:
		init := ""
		if v.Init != nil {
			init = w.forInit(v.Init)
		}
		cond := ""
		if v.Condition != nil {
			cond = w.expr(v.Condition)
		}
		return init + "; " + cond + "; " + w.exprList(v.Update)
	default:
		return fmt.Sprintf("/* unrenderable for-control %T */", c)
	}
}

func (w *writer) forInit(s ast.Stmt) string {
	switch v := s.(type) {
	case *ast.VariableDeclaration:
		return w.variableDeclaration(v)
	case *ast.ExpressionStatement:
		return w.expr(v.Expr)
	default:
		return fmt.Sprintf("/* unrenderable for-init %T */", s)
	}
}

func (w *writer) variableDeclaration(v *ast.VariableDeclaration) string {
	s := w.annotationsInline(v.Annotations) + w.modifiers(v.Modifiers) + w.typeRef(v.Type) + " "
	parts := make([]string, len(v.Declarators))
	for i, d := range v.Declarators {
		parts[i] = w.declarator(d)
	}
	for i, p := range parts {
		if i > 0 {
			s += ", "
		}
		s += p
	}
	return s
}

func (w *writer) declarator(d *ast.VariableDeclarator) string {
	s := d.Name + repeatBrackets(len(d.Dimensions))
	if d.Init != nil {
		s += " = " + w.variableInitializer(d.Init)
	}
	return s
}

func (w *writer) variableInitializer(e ast.Expr) string {
	if v, ok := e.(*ast.ArrayInitializer); ok {
		return w.arrayInitializer(v)
	}
	return w.expr(e)
}

func repeatBrackets(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "[]"
	}
	return s
}

func (w *writer) tryStatement(v *ast.TryStatement) {
	w.writeIndent()
	w.str("try")
	if len(v.Resources) > 0 {
		parts := make([]string, len(v.Resources))
		for i, r := range v.Resources {
			parts[i] = w.tryResource(r)
		}
		w.str(" (")
		for i, p := range parts {
			if i > 0 {
				w.str("; ")
			}
			w.str(p)
		}
		w.str(")")
	}
	w.block(v.Body)
	for _, c := range v.Catches {
		w.writeIndent()
		w.str("catch (" + w.formalParam(c.Var) + ")")
		w.block(c.Body)
	}
	if v.Finally != nil {
		w.writeIndent()
		w.str("finally")
		w.block(v.Finally)
	}
}

func (w *writer) tryResource(r *ast.TryResource) string {
	if r.Type == nil {
		return r.Name
	}
	s := w.annotationsInline(r.Annotations) + w.modifiers(r.Modifiers) + w.typeRef(r.Type) + " " + r.Name + repeatBrackets(len(r.Dimensions))
	if r.Init != nil {
		s += " = " + w.expr(r.Init)
	}
	return s
}

func (w *writer) switchHeaderAndBody(v *ast.Switch) {
	w.writeIndent()
	w.str("switch (" + w.expr(v.Condition) + ") {\n")
	w.level++
	for _, c := range v.Cases {
		w.switchCase(c)
	}
	w.level--
	w.line("}")
}

func (w *writer) switchCase(c *ast.SwitchCase) {
	w.writeIndent()
	if c.Default {
		w.str("default")
	} else {
		labels := make([]string, len(c.Labels))
		for i, l := range c.Labels {
			labels[i] = w.expr(l)
		}
		w.str("case ")
		for i, l := range labels {
			if i > 0 {
				w.str(", ")
			}
			w.str(l)
		}
	}
	if c.Arrow {
		w.str(" -> ")
		w.arrowCaseBody(c.Stmts)
		return
	}
	w.str(":\n")
	w.level++
	for _, s := range c.Stmts {
		w.stmt(s)
	}
	w.level--
}

// arrowCaseBody renders an arrow case's single statement, which is always
// an ExpressionStatement, a *Block, or a ThrowStatement.
func (w *writer) arrowCaseBody(stmts []ast.Stmt) {
	if len(stmts) != 1 {
		w.str("/* malformed arrow case */\n")
		return
	}
	switch v := stmts[0].(type) {
	case *ast.ExpressionStatement:
		w.str(w.expr(v.Expr) + ";\n")
	case *ast.ThrowStatement:
		w.str("throw " + w.expr(v.Error) + ";\n")
	case *ast.Block:
		w.str("{\n")
		w.level++
		w.blockBody(v)
		w.level--
		w.line("}")
	default:
		w.str(fmt.Sprintf("/* unrenderable arrow case %T */\n", v))
	}
}
