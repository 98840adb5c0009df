package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/cwbudde/go-javapy/pkg/token"
)

func TestLineReaderFromYieldsEachLine(t *testing.T) {
	read := lineReaderFrom(strings.NewReader("a\nb\nc"))

	var got []string
	for {
		line, ok := read()
		if !ok {
			break
		}
		got = append(got, line)
	}
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPrintTokenWithoutPosition(t *testing.T) {
	oldShowPos := tokensShowPos
	defer func() { tokensShowPos = oldShowPos }()
	tokensShowPos = false

	tok := token.Token{Kind: token.NAME, Lexeme: "Counter"}
	out := captureStdout(t, func() { printToken(tok) })
	if !strings.Contains(out, "NAME") || !strings.Contains(out, `"Counter"`) {
		t.Errorf("printToken output = %q, want it to contain the kind and quoted lexeme", out)
	}
	if strings.Contains(out, "@") {
		t.Errorf("printToken without --show-pos should not print a position, got %q", out)
	}
}

func TestPrintTokenWithPosition(t *testing.T) {
	oldShowPos := tokensShowPos
	defer func() { tokensShowPos = oldShowPos }()
	tokensShowPos = true

	tok := token.Token{Kind: token.NAME, Lexeme: "Counter", Start: token.Position{Line: 3, Column: 7}}
	out := captureStdout(t, func() { printToken(tok) })
	if !strings.Contains(out, "@3:7") {
		t.Errorf("printToken with --show-pos = %q, want it to contain @3:7", out)
	}
}

func TestRunTokensReportsScanErrors(t *testing.T) {
	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	if _, err := w.WriteString("String s = \"unclosed\n"); err != nil {
		t.Fatalf("write to pipe: %v", err)
	}
	w.Close()
	os.Stdin = r

	_ = captureStdout(t, func() {
		if err := runTokens(tokensCmd, nil); err == nil {
			t.Error("expected an error for an unterminated string literal")
		}
	})
}

func TestRunTokensOnlyErrorsSuppressesTokenOutput(t *testing.T) {
	oldOnly := tokensOnlyFatal
	defer func() { tokensOnlyFatal = oldOnly }()
	tokensOnlyFatal = true

	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	if _, err := w.WriteString("x = 1;\n"); err != nil {
		t.Fatalf("write to pipe: %v", err)
	}
	w.Close()
	os.Stdin = r

	out := captureStdout(t, func() {
		if err := runTokens(tokensCmd, nil); err != nil {
			t.Fatalf("runTokens: %v", err)
		}
	})
	if out != "" {
		t.Errorf("--only-errors should print nothing for a clean source, got %q", out)
	}
}
