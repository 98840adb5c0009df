package render_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-javapy/pkg/ast"
	"github.com/cwbudde/go-javapy/pkg/render"
	"github.com/cwbudde/go-javapy/pkg/token"
)

func renderBrace(n ast.Node) string {
	return render.New(render.DefaultOptions()).Render(n)
}

func TestRenderExpressions(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expr
		expected string
	}{
		{
			name:     "identifier",
			expr:     &ast.Identifier{Name: "count"},
			expected: "count",
		},
		{
			name: "binary expression",
			expr: &ast.BinaryExpression{
				Op:  token.PLUS,
				Lhs: &ast.Identifier{Name: "a"},
				Rhs: &ast.Identifier{Name: "b"},
			},
			expected: "a + b",
		},
		{
			name: "method call with argument",
			expr: &ast.FunctionCall{
				Object: &ast.Identifier{Name: "list"},
				Name:   "add",
				Args:   []ast.Expr{&ast.Literal{Kind: ast.IntLit, Raw: "1"}},
			},
			expected: "list.add(1)",
		},
		{
			name: "null literal",
			expr: &ast.NullLiteral{},
			expected: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderBrace(tt.expr)
			if got != tt.expected {
				t.Errorf("render(%s) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestRenderReturnStatement(t *testing.T) {
	tests := []struct {
		name     string
		stmt     ast.Stmt
		expected string
	}{
		{
			name: "return with value",
			stmt: &ast.ReturnStatement{Value: &ast.Literal{Kind: ast.IntLit, Raw: "42"}},
			expected: "return 42;\n",
		},
		{
			name:     "bare return",
			stmt:     &ast.ReturnStatement{},
			expected: "return;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderBrace(tt.stmt)
			if got != tt.expected {
				t.Errorf("render(%s) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func sampleMethod() *ast.Function {
	ret := &ast.ReturnStatement{Value: &ast.Identifier{Name: "count"}}
	return &ast.Function{
		Name:       "getCount",
		ReturnType: &ast.PrimitiveType{Name: "int"},
		Body:       &ast.Block{Stmts: []ast.Stmt{ret}},
	}
}

func sampleClassDecl() *ast.Class {
	field := &ast.Field{
		Type:        &ast.PrimitiveType{Name: "int"},
		Declarators: []*ast.VariableDeclarator{{Name: "count"}},
	}
	c := &ast.Class{}
	c.Name = "Counter"
	c.Members = []ast.Member{field, sampleMethod()}
	return c
}

func TestRenderClassBraceDialect(t *testing.T) {
	out := renderBrace(sampleClassDecl())
	for _, want := range []string{"class Counter {", "int count;", "int getCount() {", "return count;", "}"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered class missing %q, got:\n%s", want, out)
		}
	}
}

func TestRenderClassIndentedDialect(t *testing.T) {
	opts := render.IndentedOptions()
	out := render.New(opts).Render(sampleClassDecl())
	if strings.Contains(out, "{") {
		t.Errorf("indented-dialect class body should not contain braces, got:\n%s", out)
	}
	for _, want := range []string{"class Counter:", "int count;", "int getCount():", "return count;"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered indented class missing %q, got:\n%s", want, out)
		}
	}
}

func TestRenderCompilationUnitSeparatesTypesWithoutExtraBlankLines(t *testing.T) {
	cu := &ast.CompilationUnit{
		Types: []ast.Decl{sampleClassDecl(), sampleClassDecl()},
	}
	out := renderBrace(cu)
	if strings.Contains(out, "\n\n") {
		t.Errorf("expected no blank line between consecutive types, got:\n%s", out)
	}
	if !strings.Contains(out, "}\nclass Counter") {
		t.Errorf("expected types to be separated by a single newline, got:\n%s", out)
	}
}
