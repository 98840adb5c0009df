package errors_test

import (
	"strings"
	"testing"

	javapyerrors "github.com/cwbudde/go-javapy/pkg/errors"
	"github.com/cwbudde/go-javapy/pkg/token"
)

func TestScanErrorMessage(t *testing.T) {
	err := javapyerrors.NewScanError(javapyerrors.ScanUnterminatedString, "unterminated string literal", token.Position{Line: 4, Column: 9})
	want := "unterminated string literal at 4:9"
	if got := err.Error(); got != want {
		t.Errorf("ScanError.Error() = %q, want %q", got, want)
	}
}

func TestParseErrorMessageVariants(t *testing.T) {
	tests := []struct {
		name string
		err  *javapyerrors.ParseError
		want string
	}{
		{
			name: "bare message and position",
			err: &javapyerrors.ParseError{
				Message: "unexpected token",
				Pos:     token.Position{Line: 1, Column: 1},
			},
			want: "unexpected token at 1:1",
		},
		{
			name: "single expected",
			err: &javapyerrors.ParseError{
				Message:  "bad token",
				Expected: []string{"';'"},
				Pos:      token.Position{Line: 2, Column: 5},
			},
			want: "bad token: expected ';' at 2:5",
		},
		{
			name: "multiple expected",
			err: &javapyerrors.ParseError{
				Message:  "bad token",
				Expected: []string{"';'", "','"},
				Pos:      token.Position{Line: 2, Column: 5},
			},
			want: "bad token: expected one of [';', ','] at 2:5",
		},
		{
			name: "with actual and phase",
			err: &javapyerrors.ParseError{
				Message:  "bad token",
				Expected: []string{"';'"},
				Actual:   "'}'",
				Phase:    "statement",
				Pos:      token.Position{Line: 2, Column: 5},
			},
			want: "bad token: expected ';', got '}' at 2:5 [while parsing statement]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseErrorBuilderAutoMessage(t *testing.T) {
	tests := []struct {
		kind        javapyerrors.ParseKind
		wantContain string
	}{
		{javapyerrors.ParseExpected, "expected one of several constructs"}, // no Expected set
		{javapyerrors.ParseIllegalStart, "illegal start of expression"},
		{javapyerrors.ParseEOF, "reached end of file"},
		{javapyerrors.ParseDangling, "syntax error"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := javapyerrors.NewParseError(tt.kind).WithPosition(token.Position{Line: 1, Column: 1}).Build()
			if !strings.Contains(err.Error(), tt.wantContain) {
				t.Errorf("auto message for %s = %q, want it to contain %q", tt.kind, err.Error(), tt.wantContain)
			}
		})
	}
}

func TestParseErrorBuilderAutoMessageWithExpected(t *testing.T) {
	err := javapyerrors.NewParseError(javapyerrors.ParseExpected).
		WithExpected("identifier").
		WithPosition(token.Position{Line: 3, Column: 1}).
		Build()
	want := "expected identifier at 3:1"
	if got := err.Error(); got != want {
		t.Errorf("ParseError.Error() = %q, want %q", got, want)
	}
}

func TestParseErrorBuilderExplicitMessageWins(t *testing.T) {
	err := javapyerrors.NewParseError(javapyerrors.ParseIllegalStart).
		WithMessage("custom message").
		Build()
	if err.Message != "custom message" {
		t.Errorf("explicit WithMessage should not be overridden by the auto message, got %q", err.Message)
	}
}

func TestDeeperPrefersLaterPosition(t *testing.T) {
	early := &javapyerrors.ParseError{Message: "early", Pos: token.Position{Line: 1, Column: 1}}
	later := &javapyerrors.ParseError{Message: "later", Pos: token.Position{Line: 5, Column: 1}}

	if got := javapyerrors.Deeper(early, later); got != later {
		t.Errorf("Deeper(early, later) = %v, want later", got)
	}
	if got := javapyerrors.Deeper(later, early); got != later {
		t.Errorf("Deeper(later, early) = %v, want later", got)
	}
}

func TestDeeperHandlesNil(t *testing.T) {
	e := &javapyerrors.ParseError{Message: "only one", Pos: token.Position{Line: 1, Column: 1}}

	if got := javapyerrors.Deeper(nil, e); got != e {
		t.Errorf("Deeper(nil, e) = %v, want e", got)
	}
	if got := javapyerrors.Deeper(e, nil); got != e {
		t.Errorf("Deeper(e, nil) = %v, want e", got)
	}
	if got := javapyerrors.Deeper(nil, nil); got != nil {
		t.Errorf("Deeper(nil, nil) = %v, want nil", got)
	}
}

func TestDeeperTieGoesToSecondArgument(t *testing.T) {
	a := &javapyerrors.ParseError{Message: "a", Pos: token.Position{Line: 2, Column: 2}}
	b := &javapyerrors.ParseError{Message: "b", Pos: token.Position{Line: 2, Column: 2}}

	if got := javapyerrors.Deeper(a, b); got != b {
		t.Errorf("Deeper with a tied position = %v, want b (second argument wins ties)", got)
	}
}
