package parser

import (
	"testing"

	"github.com/cwbudde/go-javapy/pkg/ast"
)

func TestParseAnnotationWithArguments(t *testing.T) {
	root := mustParse(t, "@Deprecated(since = \"1.0\")\nclass A {\n}\n")
	cu := root.(*ast.CompilationUnit)
	class := cu.Types[0].(*ast.Class)
	if len(class.Annotations) != 1 {
		t.Fatalf("got %d annotations, want 1", len(class.Annotations))
	}
	ann := class.Annotations[0]
	gt, ok := ann.Type.(*ast.GenericType)
	if !ok || gt.Name != "Deprecated" {
		t.Fatalf("annotation type = %+v, want GenericType(Deprecated)", ann.Type)
	}
	if len(ann.Args) != 1 || ann.Args[0].Name != "since" {
		t.Fatalf("args = %+v, want one arg named since", ann.Args)
	}
}

func TestParseBareAnnotationHasNoArgs(t *testing.T) {
	root := mustParse(t, "@Override\nclass A {\n    @Override\n    int m() {\n        return 0;\n    }\n}\n")
	cu := root.(*ast.CompilationUnit)
	class := cu.Types[0].(*ast.Class)
	if len(class.Annotations) != 1 {
		t.Fatalf("got %d annotations, want 1", len(class.Annotations))
	}
	if class.Annotations[0].Args != nil {
		t.Errorf("Args = %+v, want nil for a bare annotation", class.Annotations[0].Args)
	}
}
