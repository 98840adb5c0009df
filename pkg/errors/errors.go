// Package errors implements the two structured error families used across
// the scanner and parser: fatal ScanErrors and recoverable, chainable
// ParseErrors. The builder pattern here follows the teacher's
// internal/parser/structured_error.go.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-javapy/pkg/token"
)

// ScanKind categorizes a scanner failure.
type ScanKind string

const (
	ScanUnterminatedString  ScanKind = "unterminated-string"
	ScanUnterminatedComment ScanKind = "unterminated-comment"
	ScanInconsistentDedent  ScanKind = "inconsistent-dedent"
	ScanUnbalancedBracket   ScanKind = "unbalanced-bracket"
	ScanOpenScopeAtEOF      ScanKind = "open-scope-at-eof"
	ScanMalformedToken      ScanKind = "malformed-token"
)

// ScanError is a fatal, position-carrying scanner failure.
type ScanError struct {
	Kind    ScanKind
	Message string
	Pos     token.Position
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// NewScanError builds a ScanError.
func NewScanError(kind ScanKind, message string, pos token.Position) *ScanError {
	return &ScanError{Kind: kind, Message: message, Pos: pos}
}

// ParseKind categorizes a parser failure.
type ParseKind string

const (
	ParseExpected     ParseKind = "expected"
	ParseInvalidType  ParseKind = "invalid-type"
	ParseDangling     ParseKind = "dangling"
	ParseMisplaced    ParseKind = "misplaced"
	ParseIllegalStart ParseKind = "illegal-start"
	ParseEOF          ParseKind = "eof"
)

// ParseError is a structured, position-carrying parser failure. Two
// ParseErrors observed within a speculative attempt chain via Chain so that
// whichever carries the deeper (later) position is surfaced to the user.
type ParseError struct {
	Kind     ParseKind
	Message  string
	Pos      token.Position
	Expected []string
	Actual   string
	Phase    string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if len(e.Expected) > 0 {
		if e.Message != "" {
			b.WriteString(": ")
		}
		if len(e.Expected) == 1 {
			fmt.Fprintf(&b, "expected %s", e.Expected[0])
		} else {
			fmt.Fprintf(&b, "expected one of [%s]", strings.Join(e.Expected, ", "))
		}
	}
	if e.Actual != "" {
		fmt.Fprintf(&b, ", got %s", e.Actual)
	}
	fmt.Fprintf(&b, " at %s", e.Pos)
	if e.Phase != "" {
		fmt.Fprintf(&b, " [while parsing %s]", e.Phase)
	}
	return b.String()
}

// ParseErrorBuilder accumulates fields for Build, mirroring the teacher's
// NewStructuredError(...).With...().Build() chain.
type ParseErrorBuilder struct {
	err ParseError
}

// NewParseError starts a ParseErrorBuilder for the given kind.
func NewParseError(kind ParseKind) *ParseErrorBuilder {
	return &ParseErrorBuilder{err: ParseError{Kind: kind}}
}

func (b *ParseErrorBuilder) WithMessage(msg string) *ParseErrorBuilder {
	b.err.Message = msg
	return b
}

func (b *ParseErrorBuilder) WithPosition(pos token.Position) *ParseErrorBuilder {
	b.err.Pos = pos
	return b
}

func (b *ParseErrorBuilder) WithExpected(expected ...string) *ParseErrorBuilder {
	b.err.Expected = expected
	return b
}

func (b *ParseErrorBuilder) WithActual(actual string) *ParseErrorBuilder {
	b.err.Actual = actual
	return b
}

func (b *ParseErrorBuilder) WithPhase(phase string) *ParseErrorBuilder {
	b.err.Phase = phase
	return b
}

func (b *ParseErrorBuilder) Build() *ParseError {
	e := b.err
	if e.Message == "" {
		e.Message = autoMessage(e)
	}
	return &e
}

func autoMessage(e ParseError) string {
	switch e.Kind {
	case ParseExpected:
		if len(e.Expected) > 0 {
			return "" // Error() spells out the expected list itself
		}
		return "expected one of several constructs"
	case ParseIllegalStart:
		return "illegal start of expression"
	case ParseEOF:
		return "reached end of file while parsing"
	default:
		return "syntax error"
	}
}

// Deeper returns whichever of a, b carries the later source position,
// implementing the "best message wins" speculative-failure-chaining policy.
// A nil argument loses to a non-nil one; both nil returns nil.
func Deeper(a, b *ParseError) *ParseError {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Pos.Less(a.Pos):
		return a
	default:
		return b
	}
}
