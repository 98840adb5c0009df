// Command javapy converts between the indented and brace-delimited Java
// dialects, and exposes the scanner/parser for debugging.
package main

import (
	"os"

	"github.com/cwbudde/go-javapy/cmd/javapy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
