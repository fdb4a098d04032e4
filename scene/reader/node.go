package reader

import "fmt"

type nodeKind uint8

const (
	nullNode nodeKind = iota
	boolNode
	numberNode
	stringNode
	arrayNode
	objectNode
)

var nodeKindNames = []string{"null", "boolean", "number", "string", "array", "object"}

func (k nodeKind) String() string { return nodeKindNames[k] }

// A node is a format-neutral view of a parsed document value. Object keys keep
// their document order and duplicates are preserved so that the decoder can
// report them.
type node struct {
	kind nodeKind

	// 1-based source line; 0 when unknown.
	line int

	str   string
	num   float64
	isInt bool
	b     bool

	keys   []string
	values []*node
	items  []*node
}

// A frontend parses raw document bytes into a node tree.
type frontend func(data []byte) (*node, error)

// Describe the node value for error messages.
func (n *node) describe() string {
	switch n.kind {
	case stringNode:
		return fmt.Sprintf("string %q", n.str)
	case numberNode:
		return fmt.Sprintf("number %v", n.num)
	case arrayNode:
		return fmt.Sprintf("array with %d elements", len(n.items))
	}
	return n.kind.String()
}
