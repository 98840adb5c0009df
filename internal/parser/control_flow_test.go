package parser

import (
	"testing"

	"github.com/cwbudde/go-javapy/pkg/ast"
	"github.com/cwbudde/go-javapy/pkg/render"
)

// TestEnhancedForVarSentinel exercises the same peekKeyword("var") ->
// p.at("var") fix as statements_test.go's local-declaration case, but for
// parseEnhancedForControl's independent copy of the sentinel check.
func TestEnhancedForVarSentinel(t *testing.T) {
	root := mustParse(t, "class A {\n    void m() {\n        for (var s : strs) {\n        }\n    }\n}\n")
	loop := singleForLoop(t, root)
	control, ok := loop.Control.(*ast.EnhancedForControl)
	if !ok {
		t.Fatalf("Control = %T, want *ast.EnhancedForControl", loop.Control)
	}
	if control.Var.Type != nil {
		t.Errorf("Var.Type = %#v, want nil for the var sentinel", control.Var.Type)
	}
	if control.Var.Declarators[0].Name != "s" {
		t.Errorf("declarator name = %q, want s", control.Var.Declarators[0].Name)
	}
}

func TestEnhancedForOrdinaryTypeIsKept(t *testing.T) {
	root := mustParse(t, "class A {\n    void m() {\n        for (String s : strs) {\n        }\n    }\n}\n")
	loop := singleForLoop(t, root)
	control := loop.Control.(*ast.EnhancedForControl)
	gt, ok := control.Var.Type.(*ast.GenericType)
	if !ok || gt.Name != "String" {
		t.Errorf("Var.Type = %+v, want GenericType(String)", control.Var.Type)
	}
}

// TestIfElseBracesAndIndentedColonsRenderTheSame exercises parseBody's
// handling of brace and colon-indented if/else control bodies in both
// dialects.
func TestIfElseBracesAndIndentedColonsRenderTheSame(t *testing.T) {
	brace := mustParse(t, "class A {\n    int m(int x) {\n        if (x < 0) {\n            return 0;\n        } else {\n            return x;\n        }\n    }\n}\n")
	indented := mustParse(t, "class A:\n    int m(int x):\n        if x < 0:\n            return 0;\n        else:\n            return x;\n")

	r := render.New(render.DefaultOptions())
	if got, want := r.Render(indented), r.Render(brace); got != want {
		t.Errorf("indented if/else rendered to:\n%s\nwant the same brace output as:\n%s", got, want)
	}
}

func singleForLoop(t *testing.T, root ast.Node) *ast.ForLoop {
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
	loop, ok := fn.Body.Stmts[0].(*ast.ForLoop)
	if !ok {
		t.Fatalf("statement = %T, want *ast.ForLoop", fn.Body.Stmts[0])
	}
	return loop
}
