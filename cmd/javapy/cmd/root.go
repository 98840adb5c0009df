package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "javapy",
	Short: "Bidirectional transpiler between indented and brace-delimited Java",
	Long: `javapy parses either the indentation-based (off-side-rule) javapy
dialect or standard brace-delimited Java into a shared AST, and renders that
AST back as well-formed Java.

The two surfaces share one token stream shape; parsing either yields a
structurally identical AST for equivalent programs, and rendering always
produces brace-delimited Java unless told otherwise.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
