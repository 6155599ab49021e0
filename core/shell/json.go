package shell

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	jsonTypeEmpty    = "empty"
	jsonTypeProgram  = "program"
	jsonTypeOperator = "operator"
)

// jsonNode is the wire shape of a Node.
type jsonNode struct {
	Type  string    `json:"type"`
	Op    string    `json:"op,omitempty"`
	Args  []string  `json:"args,omitempty"`
	Left  *jsonNode `json:"left,omitempty"`
	Right *jsonNode `json:"right,omitempty"`
}

func toJSONNode(n Node) (*jsonNode, error) {
	switch n := n.(type) {
	case Empty:
		return &jsonNode{Type: jsonTypeEmpty}, nil
	case *Program:
		return &jsonNode{Type: jsonTypeProgram, Args: n.Args}, nil
	case *Operator:
		left, err := toJSONNode(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := toJSONNode(n.Right)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Type: jsonTypeOperator, Op: n.Op.String(), Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("unknown node %T", n)
	}
}

func (j *jsonNode) toNode() (Node, error) {
	if j == nil {
		return nil, fmt.Errorf("missing node")
	}

	switch j.Type {
	case jsonTypeEmpty:
		return Empty{}, nil
	case jsonTypeProgram:
		if len(j.Args) == 0 {
			return nil, fmt.Errorf("program without args")
		}
		return &Program{Args: j.Args}, nil
	case jsonTypeOperator:
		op, ok := LookupOp(j.Op)
		if !ok {
			return nil, fmt.Errorf("unknown operator %q", j.Op)
		}
		left, err := j.Left.toNode()
		if err != nil {
			return nil, fmt.Errorf("%s left: %w", j.Op, err)
		}
		right, err := j.Right.toNode()
		if err != nil {
			return nil, fmt.Errorf("%s right: %w", j.Op, err)
		}
		return &Operator{Op: op, Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("unknown node type %q", j.Type)
	}
}

// MarshalNode encodes n as JSON. Operators like "&&" and ">" are written as
// is rather than HTML escaped.
func MarshalNode(n Node) ([]byte, error) {
	j, err := toJSONNode(n)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(j); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalNode decodes a tree written by MarshalNode.
func UnmarshalNode(data []byte) (Node, error) {
	var j jsonNode
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	return j.toNode()
}
