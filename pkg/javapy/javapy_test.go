package javapy_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-javapy/pkg/javapy"
)

const braceClass = `class Counter {
    int count;

    int getCount() {
        return count;
    }
}
`

const indentedClass = `class Counter:
    int count;

    int getCount():
        return count;
`

func TestParseStringAndRenderRoundTrip(t *testing.T) {
	node, err := javapy.ParseString(braceClass, javapy.Brace)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	out := javapy.Render(node)
	for _, want := range []string{"class Counter {", "int count;", "int getCount() {", "return count;"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q, got:\n%s", want, out)
		}
	}
}

func TestParseIndentedDialectRendersToTheSameBraceOutput(t *testing.T) {
	// ast.Equal compares Pos too, and the two sources lay tokens out on
	// different lines/columns, so the fair comparison is what each tree
	// renders to, not raw structural equality.
	braceNode, err := javapy.ParseString(braceClass, javapy.Brace)
	if err != nil {
		t.Fatalf("ParseString(brace): %v", err)
	}
	indentedNode, err := javapy.ParseString(indentedClass, javapy.Indented)
	if err != nil {
		t.Fatalf("ParseString(indented): %v", err)
	}
	if got, want := javapy.Render(indentedNode), javapy.Render(braceNode); got != want {
		t.Errorf("indented source rendered to:\n%s\nwant the same brace output as:\n%s", got, want)
	}
}

func TestRenderDialectProducesIndentedSyntax(t *testing.T) {
	node, err := javapy.ParseString(braceClass, javapy.Brace)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	out := javapy.RenderDialect(node, javapy.Indented)
	if strings.Contains(out, "{") {
		t.Errorf("indented rendering should contain no braces, got:\n%s", out)
	}
	if !strings.Contains(out, "class Counter:") {
		t.Errorf("expected a colon-headed class, got:\n%s", out)
	}
}

func TestParseWithWarningsFlagsSelfRequire(t *testing.T) {
	src := "module foo {\n    requires foo;\n}\n"
	_, warnings, err := javapy.ParseWithWarnings(strings.NewReader(src), javapy.Brace)
	if err != nil {
		t.Fatalf("ParseWithWarnings: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0].Error(), "requires itself") {
		t.Errorf("warning = %q, want it to mention requiring itself", warnings[0].Error())
	}
}

func TestParseWithWarningsEmptyForOrdinaryUnit(t *testing.T) {
	_, warnings, err := javapy.ParseWithWarnings(strings.NewReader(braceClass), javapy.Brace)
	if err != nil {
		t.Fatalf("ParseWithWarnings: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("got %d warnings for an ordinary compilation unit, want 0: %v", len(warnings), warnings)
	}
}

func TestErrorsNarrowsParseError(t *testing.T) {
	_, err := javapy.ParseString("class {", javapy.Brace)
	if err == nil {
		t.Fatal("expected a parse error for a class with no name")
	}
	scanErr, parseErr, ok := javapy.Errors(err)
	if !ok {
		t.Fatalf("Errors() did not recognize %T as a structured error", err)
	}
	if scanErr != nil {
		t.Errorf("expected a ParseError, got a ScanError: %v", scanErr)
	}
	if parseErr == nil {
		t.Error("expected a non-nil ParseError")
	}
}

func TestErrorsRejectsUnstructuredError(t *testing.T) {
	_, _, ok := javapy.Errors(&notStructured{})
	if ok {
		t.Error("Errors() should not recognize an arbitrary error type")
	}
}

type notStructured struct{}

func (*notStructured) Error() string { return "boom" }
