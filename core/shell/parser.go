package shell

import "fmt"

// pending is an entry on the operator stack, either an open paren or an
// operator waiting for its right operand.
type pending struct {
	paren bool
	op    Op
	pos   int

	// height is the operand stack size when a paren was opened.
	height int
}

func (p pending) String() string {
	if p.paren {
		return "("
	}
	return p.op.String()
}

type operand struct {
	node Node
	pos  int
}

type parser struct {
	tokens []Token
	next   int

	operators []pending
	operands  []operand
}

// Parse tokenizes and parses a single command line.
func Parse(line string) (Node, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// MustParse is like Parse but panics on error.
func MustParse(line string) Node {
	n, err := Parse(line)
	if err != nil {
		panic(fmt.Sprintf("shell: Parse(%q): %v", line, err))
	}
	return n
}

// ParseTokens builds a tree from tokens using operator precedence. The tokens
// are not modified.
func ParseTokens(tokens []Token) (Node, error) {
	p := &parser{tokens: tokens}
	return p.parse()
}

func (p *parser) parse() (Node, error) {
	for p.next < len(p.tokens) {
		tok := p.tokens[p.next]

		switch tok.Kind {
		case LParenToken:
			p.operators = append(p.operators, pending{paren: true, pos: tok.Pos, height: len(p.operands)})
			p.next++

		case RParenToken:
			if err := p.fold(Seq.Precedence()); err != nil {
				return nil, err
			}
			if top, ok := p.topOperator(); !ok || !top.paren {
				return nil, &ParseError{Kind: UnmatchedCloseParen, Pos: tok.Pos, Token: tok.Value}
			}
			p.operators = p.operators[:len(p.operators)-1]
			p.next++

		case OperatorToken:
			if err := p.fold(tok.Op.Precedence()); err != nil {
				return nil, err
			}
			p.operators = append(p.operators, pending{op: tok.Op, pos: tok.Pos})
			p.next++

		case WordToken:
			p.program()

		default:
			return nil, fmt.Errorf("%d: unknown token kind %v", tok.Pos, tok.Kind)
		}
	}

	if err := p.fold(Seq.Precedence()); err != nil {
		return nil, err
	}

	// fold stops at parens, so anything left over is an unclosed one.
	if top, ok := p.topOperator(); ok {
		return nil, &ParseError{Kind: UnclosedParen, Pos: top.pos, Token: top.String()}
	}

	switch len(p.operands) {
	case 0:
		return Empty{}, nil
	case 1:
		return p.operands[0].node, nil
	default:
		extra := p.operands[1]
		return nil, &ParseError{Kind: MissingOperator, Pos: extra.pos, Token: p.sourceAt(extra.pos)}
	}
}

// program consumes a run of words starting at the cursor.
func (p *parser) program() {
	start := p.next
	var args []string
	for p.next < len(p.tokens) && p.tokens[p.next].Kind == WordToken {
		args = append(args, p.tokens[p.next].Value)
		p.next++
	}

	p.operands = append(p.operands, operand{node: &Program{Args: args}, pos: p.tokens[start].Pos})
}

// fold collapses pending operators with a precedence of at least threshold
// into Operator nodes. It never crosses an open paren, neither for operators
// nor for their operands.
func (p *parser) fold(threshold int) error {
	for {
		top, ok := p.topOperator()
		if !ok || top.paren || top.op.Precedence() < threshold {
			return nil
		}
		p.operators = p.operators[:len(p.operators)-1]

		if len(p.operands)-p.floor() < 2 {
			return &ParseError{Kind: StackUnderflow, Pos: top.pos, Token: top.String()}
		}

		// The right operand was pushed last.
		right := p.operands[len(p.operands)-1]
		left := p.operands[len(p.operands)-2]
		p.operands = p.operands[:len(p.operands)-2]

		p.operands = append(p.operands, operand{
			node: &Operator{Op: top.op, Left: left.node, Right: right.node},
			pos:  left.pos,
		})
	}
}

// floor returns the operand stack height at the innermost open paren, or 0
// outside of any group.
func (p *parser) floor() int {
	for i := len(p.operators) - 1; i >= 0; i-- {
		if p.operators[i].paren {
			return p.operators[i].height
		}
	}
	return 0
}

func (p *parser) topOperator() (pending, bool) {
	if len(p.operators) == 0 {
		return pending{}, false
	}
	return p.operators[len(p.operators)-1], true
}

// sourceAt returns the value of the token at pos for error messages.
func (p *parser) sourceAt(pos int) string {
	for _, tok := range p.tokens {
		if tok.Pos == pos {
			return tok.Value
		}
	}
	return ""
}
