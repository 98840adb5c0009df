package parser

import (
	"bufio"
	"strings"
	"testing"

	"github.com/cwbudde/go-javapy/internal/buffer"
	"github.com/cwbudde/go-javapy/internal/scanner"
	"github.com/cwbudde/go-javapy/pkg/ast"
)

// parseSource scans and parses src directly through this package's own
// entry points, bypassing pkg/javapy's facade -- white-box, same-package
// tests reaching unexported helpers directly, per the teacher's
// cmd/dwscript/cmd/fmt_test.go style.
func parseSource(t *testing.T, src string) (ast.Node, error) {
	t.Helper()
	sc := bufio.NewScanner(strings.NewReader(src))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	readLine := func() (string, bool) {
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}
	s := scanner.New(scanner.ReadLineFunc(readLine), "UTF-8")
	buf := buffer.New(s)
	p := New(buf)
	root, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if errs := s.Errors(); len(errs) > 0 {
		return nil, errs[0]
	}
	return root, nil
}

func mustParse(t *testing.T, src string) ast.Node {
	t.Helper()
	root, err := parseSource(t, src)
	if err != nil {
		t.Fatalf("parseSource(%q): %v", src, err)
	}
	return root
}

func TestParseRejectsDanglingTrailingInput(t *testing.T) {
	_, err := parseSource(t, "class A {}\n}\n")
	if err == nil {
		t.Fatal("expected an error for trailing input after the compilation unit")
	}
	if !strings.Contains(err.Error(), "unexpected trailing input") {
		t.Errorf("error = %q, want it to mention unexpected trailing input", err.Error())
	}
}

func TestParseDistinguishesModuleFromOrdinaryUnit(t *testing.T) {
	root := mustParse(t, "class A {}\n")
	if _, ok := root.(*ast.CompilationUnit); !ok {
		t.Fatalf("got %T, want *ast.CompilationUnit", root)
	}

	root = mustParse(t, "module foo {\n    requires bar;\n}\n")
	if _, ok := root.(*ast.ModuleCompilationUnit); !ok {
		t.Fatalf("got %T, want *ast.ModuleCompilationUnit", root)
	}
}

func TestParseBuildsClassWithOneField(t *testing.T) {
	root := mustParse(t, "class A {\n    int x;\n}\n")
	cu, ok := root.(*ast.CompilationUnit)
	if !ok {
		t.Fatalf("got %T, want *ast.CompilationUnit", root)
	}
	if len(cu.Types) != 1 {
		t.Fatalf("got %d top-level types, want 1", len(cu.Types))
	}
	class, ok := cu.Types[0].(*ast.Class)
	if !ok {
		t.Fatalf("got %T, want *ast.Class", cu.Types[0])
	}
	if class.Name != "A" {
		t.Errorf("class name = %q, want A", class.Name)
	}
	if len(class.Members) != 1 {
		t.Fatalf("got %d members, want 1", len(class.Members))
	}
	field, ok := class.Members[0].(*ast.Field)
	if !ok {
		t.Fatalf("got %T, want *ast.Field", class.Members[0])
	}
	if len(field.Declarators) != 1 || field.Declarators[0].Name != "x" {
		t.Errorf("field declarators = %+v, want a single declarator named x", field.Declarators)
	}
}
