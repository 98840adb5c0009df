package cmd

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-javapy/pkg/ast"
)

func TestDumpNodeClass(t *testing.T) {
	c := &ast.Class{}
	c.Name = "Counter"

	out := captureStdout(t, func() { dumpNode(c, 0) })
	if !strings.Contains(out, "Class Counter") {
		t.Errorf("dumpNode output = %q, want it to mention the class name", out)
	}
}

func TestDumpNodeIndentsByDepth(t *testing.T) {
	c := &ast.Class{}
	c.Name = "Inner"

	out := captureStdout(t, func() { dumpNode(c, 2) })
	if !strings.HasPrefix(out, "    Class Inner") {
		t.Errorf("dumpNode at depth 2 = %q, want a 4-space indent prefix", out)
	}
}

func TestDumpNodeRecursesIntoBlockStatements(t *testing.T) {
	b := &ast.Block{Stmts: []ast.Stmt{&ast.Block{}}}

	out := captureStdout(t, func() { dumpNode(b, 0) })
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("dumpNode(Block) produced %d line(s), want 2 (outer + nested):\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "  Block") {
		t.Errorf("nested block line = %q, want it indented one level deeper", lines[1])
	}
}

func TestAstValueClass(t *testing.T) {
	c := &ast.Class{}
	c.Name = "Counter"

	v, ok := astValue(c).(map[string]any)
	if !ok {
		t.Fatalf("astValue(class) = %T, want map[string]any", astValue(c))
	}
	if v["kind"] != "Class" {
		t.Errorf("kind = %v, want Class", v["kind"])
	}
	if v["name"] != "Counter" {
		t.Errorf("name = %v, want Counter", v["name"])
	}
}

func TestAstValueFallsBackForUnhandledNodeKind(t *testing.T) {
	v, ok := astValue(&ast.Block{}).(map[string]any)
	if !ok {
		t.Fatalf("astValue(Block) = %T, want map[string]any", astValue(&ast.Block{}))
	}
	kind, _ := v["kind"].(string)
	if !strings.Contains(kind, "Block") {
		t.Errorf("fallback kind = %q, want it to name the Go type since astValue has no Block case", kind)
	}
}
