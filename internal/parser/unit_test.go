package parser

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-javapy/pkg/ast"
)

func TestModuleUsesProvidesRejectVarAsTypeName(t *testing.T) {
	cases := map[string]string{
		"uses target":          "module foo {\n    uses var;\n}\n",
		"provides target":      "module foo {\n    provides var with bar.Impl;\n}\n",
		"provides implementation": "module foo {\n    provides bar.Service with var;\n}\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseSource(t, src)
			if err == nil {
				t.Fatalf("parseSource(%q): expected an error rejecting 'var' as a type name", src)
			}
			if !strings.Contains(err.Error(), "'var' cannot be used as a type name") {
				t.Errorf("error = %q, want it to mention 'var' cannot be used as a type name", err.Error())
			}
		})
	}
}

func TestModuleDirectivesParseRequiresExportsOpens(t *testing.T) {
	src := "module foo {\n    requires transitive bar;\n    exports com.foo.api to consumer;\n    opens com.foo.internal;\n}\n"
	root := mustParse(t, src)
	mcu, ok := root.(*ast.ModuleCompilationUnit)
	if !ok {
		t.Fatalf("got %T, want *ast.ModuleCompilationUnit", root)
	}
	if mcu.Name != "foo" {
		t.Errorf("module name = %q, want foo", mcu.Name)
	}
	if len(mcu.Directives) != 3 {
		t.Fatalf("got %d directives, want 3", len(mcu.Directives))
	}
	if _, ok := mcu.Directives[0].(*ast.RequiresDirective); !ok {
		t.Errorf("directive 0 = %T, want *ast.RequiresDirective", mcu.Directives[0])
	}
	if _, ok := mcu.Directives[1].(*ast.ExportsDirective); !ok {
		t.Errorf("directive 1 = %T, want *ast.ExportsDirective", mcu.Directives[1])
	}
	if _, ok := mcu.Directives[2].(*ast.OpensDirective); !ok {
		t.Errorf("directive 2 = %T, want *ast.OpensDirective", mcu.Directives[2])
	}
}
