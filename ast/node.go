// Package ast defines the generic syntax tree the semantic checker walks.
//
// Nodes come in exactly two shapes: a Leaf carrying one atomic token value,
// and an Interior carrying an ordered child sequence. There are no further
// type tags; classifying a leaf (is it an identifier?) is done externally by
// looking its value up in a token-kind table.
package ast

// Node is either a *Leaf or an *Interior.
type Node interface {
	node()
}

// Leaf is an atomic node holding a token value.
type Leaf struct {
	Value string
}

func (*Leaf) node() {}

// Interior is a node with an ordered sequence of children, each of which may
// itself be a leaf or an interior node.
type Interior struct {
	Children []Node
}

func (*Interior) node() {}

// L is a convenience constructor for a leaf.
func L(value string) *Leaf {
	return &Leaf{Value: value}
}

// N is a convenience constructor for an interior node.
func N(children ...Node) *Interior {
	return &Interior{Children: children}
}

// Walk calls fn for every node in depth-first pre-order, starting at root.
func Walk(root Node, fn func(Node)) {
	if root == nil {
		return
	}
	fn(root)
	if n, ok := root.(*Interior); ok {
		for _, c := range n.Children {
			Walk(c, fn)
		}
	}
}

// CountLeaves returns the number of leaf nodes under root.
func CountLeaves(root Node) int {
	count := 0
	Walk(root, func(n Node) {
		if _, ok := n.(*Leaf); ok {
			count++
		}
	})
	return count
}
