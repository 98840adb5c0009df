package buffer_test

import (
	"testing"

	"github.com/cwbudde/go-javapy/internal/buffer"
	"github.com/cwbudde/go-javapy/pkg/token"
)

// fakeSource is a TokenSource backed by a fixed slice, repeating an
// ENDMARKER forever once exhausted, mirroring how scanner.Scanner behaves.
type fakeSource struct {
	toks []token.Token
	pos  int
}

func (f *fakeSource) NextToken() token.Token {
	if f.pos >= len(f.toks) {
		return token.Token{Kind: token.ENDMARKER}
	}
	t := f.toks[f.pos]
	f.pos++
	return t
}

func kindTokens(kinds ...token.Kind) []token.Token {
	toks := make([]token.Token, len(kinds))
	for i, k := range kinds {
		toks[i] = token.Token{Kind: k, Lexeme: k.String()}
	}
	return toks
}

func TestPeekDoesNotAdvance(t *testing.T) {
	src := &fakeSource{toks: kindTokens(token.NAME, token.ASSIGN, token.NUMBER)}
	b := buffer.New(src)

	if got := b.Peek(0).Kind; got != token.NAME {
		t.Fatalf("Peek(0) = %s, want NAME", got)
	}
	if got := b.Peek(1).Kind; got != token.ASSIGN {
		t.Fatalf("Peek(1) = %s, want ASSIGN", got)
	}
	if got := b.Current().Kind; got != token.NAME {
		t.Errorf("Current() after Peek(1) = %s, want NAME (Peek must not move the cursor)", got)
	}
}

func TestAdvanceConsumesAndMoves(t *testing.T) {
	src := &fakeSource{toks: kindTokens(token.NAME, token.ASSIGN, token.NUMBER)}
	b := buffer.New(src)

	first := b.Advance()
	if first.Kind != token.NAME {
		t.Fatalf("first Advance() = %s, want NAME", first.Kind)
	}
	if got := b.Current().Kind; got != token.ASSIGN {
		t.Errorf("Current() after one Advance = %s, want ASSIGN", got)
	}
}

func TestAdvancePastEndmarkerStaysPut(t *testing.T) {
	src := &fakeSource{toks: kindTokens(token.NAME)}
	b := buffer.New(src)

	b.Advance() // consumes NAME
	end1 := b.Advance()
	if end1.Kind != token.ENDMARKER {
		t.Fatalf("Advance() at end of stream = %s, want ENDMARKER", end1.Kind)
	}
	end2 := b.Advance()
	if end2.Kind != token.ENDMARKER {
		t.Errorf("Advance() past ENDMARKER = %s, want ENDMARKER forever", end2.Kind)
	}
}

func TestIs(t *testing.T) {
	src := &fakeSource{toks: kindTokens(token.NAME)}
	b := buffer.New(src)

	if !b.Is(token.NAME) {
		t.Error("Is(NAME) = false at the first token, want true")
	}
	if b.Is(token.NUMBER) {
		t.Error("Is(NUMBER) = true at a NAME token, want false")
	}
}

func TestPushMarkAndPopMarkReset(t *testing.T) {
	src := &fakeSource{toks: kindTokens(token.NAME, token.ASSIGN, token.NUMBER)}
	b := buffer.New(src)

	b.Advance() // past NAME
	b.PushMark()
	b.Advance() // past ASSIGN
	if got := b.Current().Kind; got != token.NUMBER {
		t.Fatalf("Current() before reset = %s, want NUMBER", got)
	}
	b.PopMark(true)
	if got := b.Current().Kind; got != token.ASSIGN {
		t.Errorf("Current() after reset = %s, want ASSIGN (cursor should rewind)", got)
	}
}

func TestPopMarkWithoutResetKeepsPosition(t *testing.T) {
	src := &fakeSource{toks: kindTokens(token.NAME, token.ASSIGN, token.NUMBER)}
	b := buffer.New(src)

	b.PushMark()
	b.Advance()
	b.Advance()
	b.PopMark(false)
	if got := b.Current().Kind; got != token.NUMBER {
		t.Errorf("Current() after a committed mark = %s, want NUMBER (cursor should not move)", got)
	}
}

func TestPushMarkNests(t *testing.T) {
	src := &fakeSource{toks: kindTokens(token.NAME, token.ASSIGN, token.NUMBER, token.SEMI)}
	b := buffer.New(src)

	b.PushMark() // outer, at index 0
	b.Advance()  // index 1
	b.PushMark() // inner, at index 1
	b.Advance()  // index 2
	b.PopMark(true) // inner reset -> back to index 1
	if got := b.Current().Kind; got != token.ASSIGN {
		t.Fatalf("after inner reset, Current() = %s, want ASSIGN", got)
	}
	b.PopMark(true) // outer reset -> back to index 0
	if got := b.Current().Kind; got != token.NAME {
		t.Errorf("after outer reset, Current() = %s, want NAME", got)
	}
}

func TestSpeculateCommitsOnSuccess(t *testing.T) {
	src := &fakeSource{toks: kindTokens(token.NAME, token.ASSIGN)}
	b := buffer.New(src)

	err := b.Speculate(func() error {
		b.Advance()
		return nil
	})
	if err != nil {
		t.Fatalf("Speculate returned %v, want nil", err)
	}
	if got := b.Current().Kind; got != token.ASSIGN {
		t.Errorf("Current() after a successful Speculate = %s, want ASSIGN (progress kept)", got)
	}
}

func TestSpeculateResetsOnFailure(t *testing.T) {
	src := &fakeSource{toks: kindTokens(token.NAME, token.ASSIGN)}
	b := buffer.New(src)

	sentinel := errTest("nope")
	err := b.Speculate(func() error {
		b.Advance()
		return sentinel
	})
	if err != sentinel {
		t.Fatalf("Speculate returned %v, want the sentinel error", err)
	}
	if got := b.Current().Kind; got != token.NAME {
		t.Errorf("Current() after a failed Speculate = %s, want NAME (cursor rewound)", got)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }

func TestDocCommentLookbackAndTakeOnce(t *testing.T) {
	src := &fakeSource{toks: []token.Token{
		{Kind: token.COMMENT, Lexeme: "/** counts things */"},
		{Kind: token.NAME, Lexeme: "Counter"},
	}}
	b := buffer.New(src)

	if got := b.Current().Kind; got != token.NAME {
		t.Fatalf("Current() = %s, want NAME (COMMENT tokens should be filtered out)", got)
	}
	if got := b.TakeDoc(); got != " counts things " {
		t.Errorf("TakeDoc() = %q, want %q", got, " counts things ")
	}
	if got := b.TakeDoc(); got != "" {
		t.Errorf("second TakeDoc() = %q, want empty (attach-once rule)", got)
	}
}

func TestDocCommentTripleStarIsNotADocComment(t *testing.T) {
	src := &fakeSource{toks: []token.Token{
		{Kind: token.COMMENT, Lexeme: "/*** not a doc comment ***/"},
		{Kind: token.NAME, Lexeme: "Counter"},
	}}
	b := buffer.New(src)
	b.Current()

	if got := b.TakeDoc(); got != "" {
		t.Errorf("TakeDoc() = %q, want empty for a /*** ... */ comment", got)
	}
}

func TestSplitShiftRewritesShrIntoTwoGts(t *testing.T) {
	src := &fakeSource{toks: []token.Token{
		{Kind: token.SHR, Lexeme: ">>", Start: token.Position{Line: 1, Column: 10}},
		{Kind: token.SEMI},
	}}
	b := buffer.New(src)

	b.SplitShift()
	first := b.Advance()
	if first.Kind != token.GT {
		t.Fatalf("first token after SplitShift = %s, want GT", first.Kind)
	}
	second := b.Advance()
	if second.Kind != token.GT {
		t.Fatalf("second token after SplitShift = %s, want GT", second.Kind)
	}
	third := b.Advance()
	if third.Kind != token.SEMI {
		t.Errorf("token after the split shift = %s, want SEMI (untouched tail)", third.Kind)
	}
}

func TestSplitShiftRewritesUshrIntoThreeGts(t *testing.T) {
	src := &fakeSource{toks: []token.Token{
		{Kind: token.USHR, Lexeme: ">>>"},
	}}
	b := buffer.New(src)

	b.SplitShift()
	for i := 0; i < 3; i++ {
		tok := b.Advance()
		if tok.Kind != token.GT {
			t.Fatalf("token %d after SplitShift(USHR) = %s, want GT", i, tok.Kind)
		}
	}
}

func TestSplitShiftOnNonShiftTokenIsNoOp(t *testing.T) {
	src := &fakeSource{toks: kindTokens(token.SEMI)}
	b := buffer.New(src)

	b.SplitShift()
	if got := b.Current().Kind; got != token.SEMI {
		t.Errorf("Current() after a no-op SplitShift = %s, want SEMI unchanged", got)
	}
}
