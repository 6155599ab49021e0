package shell

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"mvdan.cc/sh/v3/syntax"
)

func (Empty) String() string {
	return "Empty"
}

func (p *Program) String() string {
	return fmt.Sprintf("Program%q", p.Args)
}

func (o *Operator) String() string {
	return fmt.Sprintf("Operator(%q, %v, %v)", o.Op.String(), o.Left, o.Right)
}

// Style decorates the labels written by FprintAST. Nil fields print plain
// text; the signature matches (*color.Color).SprintfFunc.
type Style struct {
	Operator func(format string, a ...interface{}) string
	Program  func(format string, a ...interface{}) string
}

func (s Style) operator(format string, a ...interface{}) string {
	if s.Operator == nil {
		return fmt.Sprintf(format, a...)
	}
	return s.Operator(format, a...)
}

func (s Style) program(format string, a ...interface{}) string {
	if s.Program == nil {
		return fmt.Sprintf(format, a...)
	}
	return s.Program(format, a...)
}

// PprintAST renders n as an indented tree, one node per line.
func PprintAST(n Node) string {
	var b strings.Builder
	// Writes to a strings.Builder never fail.
	_ = FprintAST(&b, n, Style{})
	return b.String()
}

// FprintAST writes the indented tree for n to w.
func FprintAST(w io.Writer, n Node, style Style) error {
	return fprintAST(w, "", n, style)
}

func fprintAST(w io.Writer, indent string, n Node, style Style) error {
	switch n := n.(type) {
	case *Operator:
		if _, err := fmt.Fprintf(w, "%s%s %q\n", indent, style.operator("Operator"), n.Op.String()); err != nil {
			return err
		}
		if err := fprintAST(w, indent+"  ", n.Left, style); err != nil {
			return err
		}
		return fprintAST(w, indent+"  ", n.Right, style)
	case *Program:
		_, err := fmt.Fprintf(w, "%s%s %q\n", indent, style.program("Program"), n.Args)
		return err
	case Empty:
		_, err := fmt.Fprintf(w, "%sEmpty\n", indent)
		return err
	default:
		_, err := fmt.Fprintf(w, "%snil\n", indent)
		return err
	}
}

// Format renders n as a command line that parses back to an equal tree.
// Parentheses are only added where precedence or associativity need them.
func Format(n Node) string {
	var b strings.Builder
	format(&b, n)
	return b.String()
}

func format(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Operator:
		formatOperand(b, n.Left, func(child Op) bool { return child.Precedence() < n.Op.Precedence() })
		if n.Op == Seq {
			b.WriteString("; ")
		} else {
			fmt.Fprintf(b, " %s ", n.Op)
		}
		// Operators are left associative so an equal right child needs grouping.
		formatOperand(b, n.Right, func(child Op) bool { return child.Precedence() <= n.Op.Precedence() })
	case *Program:
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(QuoteArg(arg))
		}
	default:
		b.WriteString("()")
	}
}

func formatOperand(b *strings.Builder, n Node, needsParens func(Op) bool) {
	if op, ok := n.(*Operator); ok && needsParens(op.Op) {
		b.WriteByte('(')
		format(b, n)
		b.WriteByte(')')
		return
	}
	format(b, n)
}

// QuoteArg quotes arg so the lexer reads it back as a single word.
func QuoteArg(arg string) string {
	if isBareWord(arg) {
		return arg
	}

	if quoted, err := syntax.Quote(arg, syntax.LangPOSIX); err == nil && strings.HasPrefix(quoted, "'") {
		return quoted
	}

	// The POSIX quoter refuses non-printable characters and passes through
	// characters it doesn't consider special; single quotes keep both literal.
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

func isBareWord(arg string) bool {
	if arg == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(arg)
	if !isWordRune(first) {
		return false
	}
	for _, r := range arg {
		if r == utf8.RuneError || !continuesWord(r) {
			return false
		}
	}
	return true
}
