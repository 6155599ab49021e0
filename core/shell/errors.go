package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedQuote is matched by lex errors for quotes or escapes that
	// never close.
	ErrUnterminatedQuote = errors.New("unterminated quote")
	// ErrUnsupportedOperator is matched by lex errors for a lone "&".
	ErrUnsupportedOperator = errors.New("unsupported operator")

	ErrUnmatchedCloseParen = errors.New("unmatched )")
	ErrStackUnderflow      = errors.New("missing operand")
	ErrUnclosedParen       = errors.New("unclosed (")
	ErrMissingOperator     = errors.New("missing operator")
)

// LexErrorKind identifies why tokenizing failed.
type LexErrorKind int

const (
	UnterminatedQuote LexErrorKind = iota
	TrailingEscape
	UnsupportedOperator
)

func (k LexErrorKind) String() string {
	switch k {
	case UnterminatedQuote:
		return "unterminated quote"
	case TrailingEscape:
		return "no escaped character"
	case UnsupportedOperator:
		return "unsupported operator &"
	default:
		return fmt.Sprintf("LexErrorKind(%d)", int(k))
	}
}

// LexError is returned by the lexer. No tokens are returned alongside it.
type LexError struct {
	Kind LexErrorKind
	// Pos is the byte offset of the opening quote, the escape or the operator.
	Pos int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d: %s", e.Pos, e.Kind)
}

func (e *LexError) Unwrap() error {
	switch e.Kind {
	case UnterminatedQuote, TrailingEscape:
		return ErrUnterminatedQuote
	case UnsupportedOperator:
		return ErrUnsupportedOperator
	default:
		return nil
	}
}

// ParseErrorKind identifies the structural problem found by the parser.
type ParseErrorKind int

const (
	// UnmatchedCloseParen is a ")" with no "(" left to close.
	UnmatchedCloseParen ParseErrorKind = iota
	// StackUnderflow is an operator missing one or both operands.
	StackUnderflow
	// UnclosedParen is a "(" still open at the end of input.
	UnclosedParen
	// MissingOperator is two operands with nothing joining them, e.g. "a (b)".
	MissingOperator
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnmatchedCloseParen:
		return "unmatched close paren"
	case StackUnderflow:
		return "stack underflow"
	case UnclosedParen:
		return "unclosed paren"
	case MissingOperator:
		return "missing operator"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

func (k ParseErrorKind) sentinel() error {
	switch k {
	case UnmatchedCloseParen:
		return ErrUnmatchedCloseParen
	case StackUnderflow:
		return ErrStackUnderflow
	case UnclosedParen:
		return ErrUnclosedParen
	case MissingOperator:
		return ErrMissingOperator
	default:
		return nil
	}
}

// ParseError is returned by the parser. No partial tree is returned alongside
// it.
type ParseError struct {
	Kind ParseErrorKind
	// Pos is the byte offset of the offending token.
	Pos int
	// Token is the source text of the offending token.
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d: syntax error near %q: %s", e.Pos, e.Token, e.Kind.sentinel())
}

func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}
