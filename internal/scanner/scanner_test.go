package scanner_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-javapy/internal/scanner"
	"github.com/cwbudde/go-javapy/pkg/token"
)

// linesOf adapts an in-memory source string into a scanner.ReadLineFunc,
// following the teacher's pattern of feeding a lexer from a plain string
// in tests rather than a file.
func linesOf(src string) scanner.ReadLineFunc {
	lines := strings.Split(src, "\n")
	i := 0
	return func() (string, bool) {
		if i >= len(lines) {
			return "", false
		}
		line := lines[i]
		i++
		return line, true
	}
}

// tokenKinds scans src and returns every kind after the leading ENCODING
// token, up to and including ENDMARKER.
func tokenKinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	sc := scanner.New(linesOf(src), "UTF-8")
	first := sc.NextToken()
	if first.Kind != token.ENCODING {
		t.Fatalf("first token = %s, want ENCODING", first.Kind)
	}
	var kinds []token.Kind
	for {
		tok := sc.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.ENDMARKER {
			break
		}
	}
	if errs := sc.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	return kinds
}

func TestScanLeadingTokenIsEncoding(t *testing.T) {
	sc := scanner.New(linesOf("x"), "UTF-8")
	tok := sc.NextToken()
	if tok.Kind != token.ENCODING {
		t.Fatalf("first token = %s, want ENCODING", tok.Kind)
	}
	if tok.Lexeme != "UTF-8" {
		t.Errorf("ENCODING lexeme = %q, want %q", tok.Lexeme, "UTF-8")
	}
}

func TestScanFlatStatement(t *testing.T) {
	// "x" is a plain identifier; NEWLINE terminates the one
	// logical line since top-level code starts in statement scope.
	kinds := tokenKinds(t, "x = 1;")
	want := []token.Kind{token.NAME, token.ASSIGN, token.NUMBER, token.SEMI, token.NEWLINE, token.ENDMARKER}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(kinds), kinds, len(want), want)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d: got %s, want %s", i, kinds[i], k)
		}
	}
}

func TestScanKeywordVsIdentifier(t *testing.T) {
	kinds := tokenKinds(t, "class Foo")
	if kinds[0] != token.KEYWORD {
		t.Errorf("expected 'class' to scan as KEYWORD, got %s", kinds[0])
	}
	if kinds[1] != token.NAME {
		t.Errorf("expected 'Foo' to scan as NAME, got %s", kinds[1])
	}
}

func TestScanStringLiteral(t *testing.T) {
	sc := scanner.New(linesOf(`"hello"`), "UTF-8")
	sc.NextToken() // ENCODING
	tok := sc.NextToken()
	if tok.Kind != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Kind)
	}
	if tok.Lexeme != `"hello"` {
		t.Errorf("Lexeme = %q, want %q", tok.Lexeme, `"hello"`)
	}
}

func TestScanLineCommentSurfacesAsToken(t *testing.T) {
	sc := scanner.New(linesOf("// a trailing remark"), "UTF-8")
	sc.NextToken() // ENCODING
	// A comment-only line is a blank line for indentation purposes, so
	// handleLineStart emits NL before the comment itself is scanned.
	if tok := sc.NextToken(); tok.Kind != token.NL {
		t.Fatalf("expected NL for the comment-only line, got %s", tok.Kind)
	}
	tok := sc.NextToken()
	if tok.Kind != token.COMMENT {
		t.Fatalf("expected COMMENT, got %s", tok.Kind)
	}
	if tok.Lexeme != "// a trailing remark" {
		t.Errorf("Lexeme = %q, want the full comment text", tok.Lexeme)
	}
}

func TestScanIndentAndDedent(t *testing.T) {
	// No braces or constructs involved: at top level, code always runs in
	// statement scope, so a plain rise then fall in column alone drives
	// INDENT/DEDENT, independent of any keyword.
	kinds := tokenKinds(t, "x = 1\n    y = 2\nz = 3")
	want := []token.Kind{
		token.NAME, token.ASSIGN, token.NUMBER, token.NEWLINE,
		token.INDENT,
		token.NAME, token.ASSIGN, token.NUMBER, token.NEWLINE,
		token.DEDENT,
		token.NAME, token.ASSIGN, token.NUMBER, token.NEWLINE,
		token.ENDMARKER,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(kinds), kinds, len(want), want)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d: got %s, want %s", i, kinds[i], k)
		}
	}
}

func TestScanBraceBodySuppressesLineSensitivity(t *testing.T) {
	// Once inside a brace block, indentation of the lines within it is
	// not significant, and statements inside do not each get their own
	// NEWLINE: only the line that closes the final brace does.
	kinds := tokenKinds(t, "if (x) {\n    y = 1;\n}")
	for _, k := range kinds[:len(kinds)-2] {
		if k == token.NEWLINE || k == token.INDENT || k == token.DEDENT {
			t.Errorf("unexpected %s before the closing brace's line, got %v", k, kinds)
			break
		}
	}
	last := kinds[len(kinds)-2]
	if last != token.NEWLINE {
		t.Errorf("expected the final NEWLINE right before ENDMARKER, got %s in %v", last, kinds)
	}
}

func TestScanEndsWithEndmarker(t *testing.T) {
	kinds := tokenKinds(t, "")
	if kinds[len(kinds)-1] != token.ENDMARKER {
		t.Errorf("last token = %s, want ENDMARKER", kinds[len(kinds)-1])
	}
}

func TestScanRepeatedEndmarkerAfterExhaustion(t *testing.T) {
	sc := scanner.New(linesOf("x = 1;"), "UTF-8")
	sc.NextToken() // ENCODING
	var tok token.Token
	for tok.Kind != token.ENDMARKER {
		tok = sc.NextToken()
	}
	second := sc.NextToken()
	if second.Kind != token.ENDMARKER {
		t.Errorf("NextToken after exhaustion = %s, want ENDMARKER forever", second.Kind)
	}
}
