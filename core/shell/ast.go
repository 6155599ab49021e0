package shell

import "fmt"

// Node is the result of parsing, it is one of Empty, *Program or *Operator.
type Node interface {
	fmt.Stringer

	node()
}

// Empty is a command line with no commands in it, e.g. "" or "()".
type Empty struct{}

// Program is a single command, Args[0] is the command name. Args is never
// empty.
type Program struct {
	Args []string
}

// Operator joins exactly two commands.
type Operator struct {
	Op    Op
	Left  Node
	Right Node
}

func (Empty) node()     {}
func (*Program) node()  {}
func (*Operator) node() {}

var (
	_ Node = Empty{}
	_ Node = (*Program)(nil)
	_ Node = (*Operator)(nil)
)

// NewProgram creates a Program from a command name and its arguments.
func NewProgram(name string, args ...string) *Program {
	return &Program{Args: append([]string{name}, args...)}
}

// NewOperator creates an Operator joining left and right.
func NewOperator(op Op, left, right Node) *Operator {
	return &Operator{Op: op, Left: left, Right: right}
}

// Name returns the command name.
func (p *Program) Name() string {
	return p.Args[0]
}

// Walk traverses the tree rooted at n in pre-order. Children of a node are
// skipped if fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	if op, ok := n.(*Operator); ok {
		Walk(op.Left, fn)
		Walk(op.Right, fn)
	}
}

// Programs lists the programs in n in source order.
func Programs(n Node) []*Program {
	var out []*Program
	Walk(n, func(n Node) bool {
		if p, ok := n.(*Program); ok {
			out = append(out, p)
		}
		return true
	})
	return out
}

// Operators counts the operator nodes in n.
func Operators(n Node) int {
	count := 0
	Walk(n, func(n Node) bool {
		if _, ok := n.(*Operator); ok {
			count++
		}
		return true
	})
	return count
}

// Depth returns the number of operators on the longest path from n to a leaf.
func Depth(n Node) int {
	op, ok := n.(*Operator)
	if !ok {
		return 0
	}

	left, right := Depth(op.Left), Depth(op.Right)
	if left > right {
		return left + 1
	}
	return right + 1
}
