package ast_test

import (
	"testing"

	"github.com/cwbudde/go-javapy/pkg/ast"
)

func TestEqualIgnoresParent(t *testing.T) {
	a := sampleClass()
	b := sampleClass()
	if !ast.Equal(a, b) {
		t.Fatal("two freshly built, structurally identical trees should be Equal")
	}

	ast.SetParents(a)
	if !ast.Equal(a, b) {
		t.Error("assigning Parent back-references should not affect Equal")
	}
}

func TestEqualDetectsStructuralDifference(t *testing.T) {
	tests := []struct {
		name string
		a, b ast.Node
	}{
		{
			name: "different field name",
			a: &ast.Field{
				Type:        &ast.PrimitiveType{Name: "int"},
				Declarators: []*ast.VariableDeclarator{{Name: "x"}},
			},
			b: &ast.Field{
				Type:        &ast.PrimitiveType{Name: "int"},
				Declarators: []*ast.VariableDeclarator{{Name: "y"}},
			},
		},
		{
			name: "different member count",
			a:    sampleClass(),
			b: func() ast.Node {
				c := sampleClass()
				c.Members = c.Members[:1]
				return c
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ast.Equal(tt.a, tt.b) {
				t.Error("Equal reported two structurally different trees as equal")
			}
		})
	}
}
