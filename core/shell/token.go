package shell

import "fmt"

// TokenKind classifies a Token.
type TokenKind int

const (
	WordToken TokenKind = iota
	OperatorToken
	LParenToken
	RParenToken
)

func (k TokenKind) String() string {
	switch k {
	case WordToken:
		return "word"
	case OperatorToken:
		return "operator"
	case LParenToken:
		return "lparen"
	case RParenToken:
		return "rparen"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Op is a control or redirection operator.
type Op int

const (
	Seq      Op = iota // ;
	Or                 // ||
	And                // &&
	Pipe               // |
	RedirIn            // <
	RedirOut           // >
)

// Ops holds every operator, two character symbols before their one character
// prefixes so a greedy scan can use it in order.
var Ops = []Op{Or, And, Seq, Pipe, RedirIn, RedirOut}

var opSymbols = map[Op]string{
	Seq:      ";",
	Or:       "||",
	And:      "&&",
	Pipe:     "|",
	RedirIn:  "<",
	RedirOut: ">",
}

var opPrecedence = map[Op]int{
	Seq:      0,
	Or:       1,
	And:      1,
	Pipe:     2,
	RedirIn:  3,
	RedirOut: 3,
}

// String returns the operator as it's written in source.
func (o Op) String() string {
	if sym, ok := opSymbols[o]; ok {
		return sym
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Precedence ranks the operator, higher values bind tighter. All operators are
// left associative.
func (o Op) Precedence() int {
	return opPrecedence[o]
}

// LookupOp finds the operator written as sym.
func LookupOp(sym string) (Op, bool) {
	for _, op := range Ops {
		if opSymbols[op] == sym {
			return op, true
		}
	}
	return 0, false
}

// Token is a single lexical unit of a command line.
type Token struct {
	Kind TokenKind
	// Op is only set for OperatorToken.
	Op Op
	// Value holds the unquoted text of a word, or the source symbol otherwise.
	Value string
	// Pos is the byte offset of the token's first character in the input.
	Pos int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Value, t.Pos)
}
