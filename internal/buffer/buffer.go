// Package buffer materializes the scanner's token stream into a
// random-access, markable sequence: spec.md §4.2's "Token Buffer".
package buffer

import (
	"strings"

	"github.com/cwbudde/go-javapy/pkg/token"
)

// TokenSource is anything that can produce the next token in a stream,
// forever returning ENDMARKER once exhausted. *scanner.Scanner satisfies
// this.
type TokenSource interface {
	NextToken() token.Token
}

// Buffer is a mutable, rewindable cursor over a lazily-pulled token
// sequence. It offers peek(i), advance(), and a nestable
// push_mark()/pop_mark(reset) transactional checkpoint stack, per
// spec.md's literal "index stack over a flat vector" design note -- unlike
// the teacher's internal/parser.TokenCursor, which is an immutable,
// return-a-new-cursor design; this type is deliberately mutable to match
// the spec's own wording.
type Buffer struct {
	source TokenSource
	tokens []token.Token // materialized prefix of the stream
	index  int           // current cursor position into tokens
	marks  []int         // nestable checkpoint stack

	lastDoc    string // most recent unconsumed doc comment
	docAttached bool
}

// New wraps source in a Buffer, positioned before the first token.
func New(source TokenSource) *Buffer {
	return &Buffer{source: source}
}

// fill ensures tokens[0:n+1] exist, pulling from source (and skipping
// COMMENT tokens, tracking doc-comment lookback) as needed.
func (b *Buffer) fill(n int) {
	for len(b.tokens) <= n {
		t := b.source.NextToken()
		for t.Kind == token.COMMENT {
			if doc, ok := docBody(t.Lexeme); ok {
				b.SetDoc(doc)
			}
			t = b.source.NextToken()
		}
		b.tokens = append(b.tokens, t)
	}
}

// docBody reports whether lexeme is a `/** ... */` doc comment (but not
// `/*** ... */`) and returns its inner text.
func docBody(lexeme string) (string, bool) {
	if !strings.HasPrefix(lexeme, "/**") || strings.HasPrefix(lexeme, "/***") {
		return "", false
	}
	body := strings.TrimPrefix(lexeme, "/**")
	body = strings.TrimSuffix(body, "*/")
	return body, true
}

// Peek returns the token i positions ahead of the cursor (Peek(0) ==
// Current()).
func (b *Buffer) Peek(i int) token.Token {
	idx := b.index + i
	b.fill(idx)
	if idx >= len(b.tokens) {
		return b.tokens[len(b.tokens)-1]
	}
	return b.tokens[idx]
}

// Current returns the token at the cursor without moving it.
func (b *Buffer) Current() token.Token { return b.Peek(0) }

// Advance consumes and returns the current token, moving the cursor
// forward by one. Per spec.md §4.2, COMMENT tokens are already filtered
// out by fill, and the most recently seen doc comment is made available
// for attachment via TakeDoc.
func (b *Buffer) Advance() token.Token {
	t := b.Current()
	if t.Kind != token.ENDMARKER {
		b.index++
	}
	return t
}

// Is reports whether the current token has kind k.
func (b *Buffer) Is(k token.Kind) bool { return b.Current().Kind == k }

// PushMark opens a new, nestable checkpoint at the current cursor
// position.
func (b *Buffer) PushMark() {
	b.marks = append(b.marks, b.index)
}

// PopMark closes the innermost checkpoint. If reset is true the cursor is
// rewound to the position it held when that checkpoint was opened
// (speculative failure); otherwise the cursor keeps its current position
// and the checkpoint is simply discarded (speculative success).
func (b *Buffer) PopMark(reset bool) {
	n := len(b.marks)
	if n == 0 {
		return
	}
	mark := b.marks[n-1]
	b.marks = b.marks[:n-1]
	if reset {
		b.index = mark
	}
}

// Speculate runs fn under a fresh checkpoint, automatically resetting on a
// non-nil error and committing otherwise. This is the idiomatic call
// pattern every backtracking parser production uses instead of manual
// PushMark/PopMark pairs.
func (b *Buffer) Speculate(fn func() error) error {
	b.PushMark()
	err := fn()
	b.PopMark(err != nil)
	return err
}

// SetDoc records the scanner's most recent doc-comment lookback. Called by
// the scanner-to-buffer adapter whenever a new `/**...*/` comment is seen.
func (b *Buffer) SetDoc(doc string) {
	b.lastDoc = doc
	b.docAttached = false
}

// TakeDoc returns the most recent unconsumed doc comment and marks it
// consumed, implementing the "attach once, consume-on-use" rule.
func (b *Buffer) TakeDoc() string {
	if b.docAttached {
		return ""
	}
	b.docAttached = true
	return b.lastDoc
}

// SplitShift rewrites the current SHR/USHR/SHR_ASSIGN/USHR_ASSIGN token
// into its first constituent `>` (or `>=`), and inserts the remaining
// `>`-tokens immediately after the cursor so they are reconsumed on the
// next Advance. This is how the parser resolves the shift-vs-nested
// -generics ambiguity (spec.md §4.3, "`>>`/`>>>`") without the scanner
// needing to know it is inside a type-argument list.
func (b *Buffer) SplitShift() {
	idx := b.index
	b.fill(idx)
	cur := b.tokens[idx]
	var parts []token.Kind
	switch cur.Kind {
	case token.SHR:
		parts = []token.Kind{token.GT, token.GT}
	case token.USHR:
		parts = []token.Kind{token.GT, token.GT, token.GT}
	case token.SHR_ASSIGN:
		parts = []token.Kind{token.GT, token.GE}
	case token.USHR_ASSIGN:
		parts = []token.Kind{token.GT, token.GT, token.GE}
	default:
		return
	}
	replacement := make([]token.Token, len(parts))
	for i, k := range parts {
		replacement[i] = token.Token{Kind: k, Lexeme: kindLexeme(k), Start: cur.Start, End: cur.End, LineText: cur.LineText}
	}
	rest := append([]token.Token{}, b.tokens[idx+1:]...)
	b.tokens = append(append(b.tokens[:idx], replacement...), rest...)
}

func kindLexeme(k token.Kind) string { return k.String() }
