package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-javapy/internal/scanner"
	"github.com/cwbudde/go-javapy/pkg/token"
	"github.com/spf13/cobra"
)

var (
	tokensShowPos   bool
	tokensOnlyFatal bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a source file and print the resulting tokens",
	Long: `Tokenize a javapy source file (either dialect) and print its token
stream, one token per line. Useful for debugging the scanner.

If no file is provided, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensShowPos, "show-pos", false, "show token positions (line:column)")
	tokensCmd.Flags().BoolVar(&tokensOnlyFatal, "only-errors", false, "exit non-zero and report scanner errors only")
}

func runTokens(cmd *cobra.Command, args []string) error {
	r, err := openInput(args)
	if err != nil {
		return err
	}
	defer r.Close()

	sc := scanner.New(lineReaderFrom(r), "UTF-8")
	count := 0
	for {
		tok := sc.NextToken()
		count++
		if !tokensOnlyFatal {
			printToken(tok)
		}
		if tok.Kind == token.ENDMARKER {
			break
		}
	}

	if errs := sc.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "scan error: %s\n", e.Error())
		}
		return fmt.Errorf("scanning failed with %d error(s)", len(errs))
	}

	if verbose {
		fmt.Printf("Total tokens: %d\n", count)
	}
	return nil
}

func printToken(t token.Token) {
	out := fmt.Sprintf("%-14s %q", t.Kind, t.Lexeme)
	if tokensShowPos {
		out += fmt.Sprintf(" @%d:%d", t.Start.Line, t.Start.Column)
	}
	fmt.Println(out)
}

func lineReaderFrom(r io.Reader) scanner.ReadLineFunc {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return func() (string, bool) {
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}
}
