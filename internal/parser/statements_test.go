package parser

import (
	"testing"

	"github.com/cwbudde/go-javapy/pkg/ast"
)

// TestVarSentinelInfersLocalVariableType confirms `var` is recognized as
// the local-variable-type-inference sentinel (Type == nil), fixing the
// p.peekKeyword("var") bug: "var" scans as token.NAME (it is absent from
// token.Reserved), so peekKeyword's KEYWORD-only check never matched it.
func TestVarSentinelInfersLocalVariableType(t *testing.T) {
	root := mustParse(t, "class A {\n    void m() {\n        var x = 5;\n    }\n}\n")
	decl := singleLocalDecl(t, root)
	if decl.Type != nil {
		t.Errorf("Type = %#v, want nil for a var-sentinel declaration", decl.Type)
	}
	if len(decl.Declarators) != 1 || decl.Declarators[0].Name != "x" {
		t.Fatalf("declarators = %+v, want one declarator named x", decl.Declarators)
	}
	if decl.Declarators[0].Init == nil {
		t.Error("expected an initializer on the var declarator")
	}
}

func TestOrdinaryLocalDeclarationKeepsItsType(t *testing.T) {
	root := mustParse(t, "class A {\n    void m() {\n        int x = 5;\n    }\n}\n")
	decl := singleLocalDecl(t, root)
	prim, ok := decl.Type.(*ast.PrimitiveType)
	if !ok || prim.Name != "int" {
		t.Errorf("Type = %+v, want primitive int", decl.Type)
	}
}

// singleLocalDecl drills into the single statement of the single method
// body in root and asserts it is a *ast.VariableDeclaration.
func singleLocalDecl(t *testing.T, root ast.Node) *ast.VariableDeclaration {
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
	decl, ok := fn.Body.Stmts[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("statement = %T, want *ast.VariableDeclaration", fn.Body.Stmts[0])
	}
	return decl
}
