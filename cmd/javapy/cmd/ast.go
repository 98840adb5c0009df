package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-javapy/pkg/ast"
	"github.com/cwbudde/go-javapy/pkg/javapy"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var astDumpYAML bool

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a source file and dump its AST structure",
	Long: `Parse a javapy source file (either dialect) and print a tree
dump of its AST, or with --dump-ast a YAML rendering of the same tree.

If no file is provided, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().BoolVar(&astDumpYAML, "dump-ast", false, "emit a YAML structural dump instead of the indented tree view")
}

func runAST(cmd *cobra.Command, args []string) error {
	r, err := openInput(args)
	if err != nil {
		return err
	}
	defer r.Close()

	root, warnings, err := javapy.ParseWithWarnings(r, javapy.Brace)
	if err != nil {
		return reportParseError(err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if astDumpYAML {
		out, err := yaml.Marshal(astValue(root))
		if err != nil {
			return fmt.Errorf("yaml encoding failed: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}

	dumpNode(root, 0)
	return nil
}

func dumpNode(n ast.Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch v := n.(type) {
	case *ast.CompilationUnit:
		fmt.Printf("%sCompilationUnit (%d type(s))\n", indent, len(v.Types))
		if v.Package != nil {
			dumpNode(v.Package, depth+1)
		}
		for _, imp := range v.Imports {
			dumpNode(imp, depth+1)
		}
		for _, t := range v.Types {
			dumpNode(t, depth+1)
		}
	case *ast.ModuleCompilationUnit:
		fmt.Printf("%sModuleCompilationUnit %s (open=%v, %d directive(s))\n", indent, v.Name, v.Open, len(v.Directives))
	case *ast.Package:
		fmt.Printf("%sPackage %s\n", indent, v.Name)
	case *ast.Import:
		fmt.Printf("%sImport %s (static=%v, wildcard=%v)\n", indent, v.Name, v.Static, v.Wildcard)
	case *ast.Class:
		fmt.Printf("%sClass %s (%d member(s))\n", indent, v.Name, len(v.Members))
		dumpMembers(v.Members, depth+1)
	case *ast.Interface:
		fmt.Printf("%sInterface %s (%d member(s))\n", indent, v.Name, len(v.Members))
		dumpMembers(v.Members, depth+1)
	case *ast.Enum:
		fmt.Printf("%sEnum %s (%d constant(s), %d member(s))\n", indent, v.Name, len(v.Fields), len(v.Members))
		dumpMembers(v.Members, depth+1)
	case *ast.AnnotationInterface:
		fmt.Printf("%sAnnotationInterface %s (%d member(s))\n", indent, v.Name, len(v.Members))
		dumpMembers(v.Members, depth+1)
	case *ast.Field:
		fmt.Printf("%sField (%d declarator(s))\n", indent, len(v.Declarators))
	case *ast.Function:
		hasBody := v.Body != nil
		fmt.Printf("%sFunction %s (%d param(s), body=%v)\n", indent, v.Name, len(v.Params), hasBody)
	case *ast.Constructor:
		fmt.Printf("%sConstructor %s (%d param(s))\n", indent, v.Name, len(v.Params))
	case *ast.Block:
		fmt.Printf("%sBlock (%d statement(s))\n", indent, len(v.Stmts))
		for _, s := range v.Stmts {
			dumpNode(s, depth+1)
		}
	default:
		fmt.Printf("%s%T\n", indent, n)
	}
}

func dumpMembers(members []ast.Member, depth int) {
	for _, m := range members {
		dumpNode(m, depth)
	}
}

// astValue converts n into a plain, parent-free value tree safe to pass to
// a YAML encoder: ast.Node carries a cyclic Parent back-reference, so the
// raw struct can never be marshaled directly.
func astValue(n ast.Node) any {
	switch v := n.(type) {
	case *ast.CompilationUnit:
		m := map[string]any{"kind": "CompilationUnit"}
		if v.Package != nil {
			m["package"] = astValue(v.Package)
		}
		m["imports"] = astValueList(importsToNodes(v.Imports))
		m["types"] = astValueList(declsToNodes(v.Types))
		return m
	case *ast.Package:
		return map[string]any{"kind": "Package", "name": string(v.Name)}
	case *ast.Import:
		return map[string]any{"kind": "Import", "name": string(v.Name), "static": v.Static, "wildcard": v.Wildcard}
	case *ast.Class:
		return map[string]any{"kind": "Class", "name": v.Name, "members": astValueList(membersToNodes(v.Members))}
	case *ast.Interface:
		return map[string]any{"kind": "Interface", "name": v.Name, "members": astValueList(membersToNodes(v.Members))}
	case *ast.Enum:
		return map[string]any{"kind": "Enum", "name": v.Name, "constants": len(v.Fields), "members": astValueList(membersToNodes(v.Members))}
	case *ast.AnnotationInterface:
		return map[string]any{"kind": "AnnotationInterface", "name": v.Name, "members": astValueList(membersToNodes(v.Members))}
	case *ast.Field:
		return map[string]any{"kind": "Field", "declarators": len(v.Declarators)}
	case *ast.Function:
		return map[string]any{"kind": "Function", "name": v.Name, "params": len(v.Params), "hasBody": v.Body != nil}
	case *ast.Constructor:
		return map[string]any{"kind": "Constructor", "name": v.Name, "params": len(v.Params)}
	default:
		return map[string]any{"kind": fmt.Sprintf("%T", n)}
	}
}

func astValueList(ns []ast.Node) []any {
	out := make([]any, len(ns))
	for i, n := range ns {
		out[i] = astValue(n)
	}
	return out
}

func importsToNodes(is []*ast.Import) []ast.Node {
	out := make([]ast.Node, len(is))
	for i, n := range is {
		out[i] = n
	}
	return out
}

func declsToNodes(ds []ast.Decl) []ast.Node {
	out := make([]ast.Node, len(ds))
	for i, n := range ds {
		out[i] = n
	}
	return out
}

func membersToNodes(ms []ast.Member) []ast.Node {
	out := make([]ast.Node, len(ms))
	for i, n := range ms {
		out[i] = n
	}
	return out
}
