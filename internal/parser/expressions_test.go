package parser

import (
	"testing"

	"github.com/cwbudde/go-javapy/pkg/ast"
)

// TestParseListLiteralSugarLowersToFunctionCall pins spec.md §8's literal
// testable scenario: `[a, b, c]` parses to a bare FunctionCall, not a
// wrapper node (see DESIGN.md's "Fix: list-literal sugar no longer wraps a
// node").
func TestParseListLiteralSugarLowersToFunctionCall(t *testing.T) {
	root := mustParse(t, "class A {\n    void m() {\n        x = [a, b, c];\n    }\n}\n")
	call := singleListLiteralCall(t, root)

	if call.Name != "of" {
		t.Errorf("Name = %q, want of", call.Name)
	}
	if len(call.Args) != 3 {
		t.Fatalf("got %d args, want 3", len(call.Args))
	}
	for i, want := range []string{"a", "b", "c"} {
		id, ok := call.Args[i].(*ast.Identifier)
		if !ok || id.Name != want {
			t.Errorf("arg %d = %+v, want identifier %s", i, call.Args[i], want)
		}
	}

	list, ok := call.Object.(*ast.MemberAccess)
	if !ok || list.Name != "List" {
		t.Fatalf("Object = %+v, want MemberAccess(List)", call.Object)
	}
	util, ok := list.Object.(*ast.MemberAccess)
	if !ok || util.Name != "util" {
		t.Fatalf("List.Object = %+v, want MemberAccess(util)", list.Object)
	}
	java, ok := util.Object.(*ast.Identifier)
	if !ok || java.Name != "java" {
		t.Fatalf("util.Object = %+v, want Identifier(java)", util.Object)
	}
}

func singleListLiteralCall(t *testing.T, root ast.Node) *ast.FunctionCall {
	t.Helper()
	cu, ok := root.(*ast.CompilationUnit)
	if !ok || len(cu.Types) != 1 {
		t.Fatalf("root = %T, want a *ast.CompilationUnit with one type", root)
	}
	class, ok := cu.Types[0].(*ast.Class)
	if !ok || len(class.Members) != 1 {
		t.Fatalf("top-level type = %T, want a *ast.Class with one member", cu.Types[0])
	}
	fn, ok := class.Members[0].(*ast.Function)
	if !ok || fn.Body == nil || len(fn.Body.Stmts) != 1 {
		t.Fatalf("member = %T, want a *ast.Function with one body statement", class.Members[0])
	}
	exprStmt, ok := fn.Body.Stmts[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement = %T, want *ast.ExpressionStatement", fn.Body.Stmts[0])
	}
	assign, ok := exprStmt.Expr.(*ast.Assignment)
	if !ok {
		t.Fatalf("expression = %T, want *ast.Assignment", exprStmt.Expr)
	}
	call, ok := assign.Rhs.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("assigned value = %T, want *ast.FunctionCall", assign.Rhs)
	}
	return call
}
