package digitsplit

import (
	"strconv"
	"strings"
)

// Tree is a view of the expression tree a search is currently visiting. The
// root is always node 0. A Tree is only valid during the callback it is
// passed to; the search reuses its storage for the next tree.
type Tree struct {
	digits string
	a      *arena
}

// Digits returns the full digit string the tree is built over.
func (t *Tree) Digits() string {
	return t.digits
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return t.Node(0)
}

// Node returns the node at arena index i.
func (t *Tree) Node(i int) Node {
	if i < 0 || i >= t.a.used {
		panic("digitsplit: node " + strconv.Itoa(i) + " not in use (" + strconv.Itoa(t.a.used) + " nodes)")
	}
	return t.a.nodes[i]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return t.a.used
}

// Splits returns the number of branches in the tree.
func (t *Tree) Splits() int {
	return (t.a.used - 1) / 2
}

// Leaves returns the leaves of the tree from left to right.
func (t *Tree) Leaves() []Leaf {
	leaves := make([]Leaf, 0, t.Splits()+1)
	var walk func(i int)
	walk = func(i int) {
		switch n := t.a.nodes[i].(type) {
		case *Leaf:
			leaves = append(leaves, *n)
		case *Branch:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(0)
	return leaves
}

// Value evaluates the tree.
func (t *Tree) Value() float64 {
	return t.eval(0)
}

func (t *Tree) String() string {
	var b strings.Builder
	t.fmt(&b, 0)
	return b.String()
}

// eval computes the value of the subtree at i.
func (t *Tree) eval(i int) float64 {
	switch n := t.a.nodes[i].(type) {
	case *Leaf:
		return n.Value
	case *Branch:
		return n.Op.Apply(t.eval(n.Left), t.eval(n.Right))
	default:
		panic("digitsplit: eval of empty node " + strconv.Itoa(i))
	}
}

// fmt writes the subtree at i fully parenthesized. Leaves are written as
// their digits, not their values, so "007" stays "007".
func (t *Tree) fmt(b *strings.Builder, i int) {
	switch n := t.a.nodes[i].(type) {
	case *Leaf:
		b.WriteString(n.Digits)
	case *Branch:
		b.WriteByte('(')
		t.fmt(b, n.Left)
		b.WriteByte(n.Op.Symbol())
		t.fmt(b, n.Right)
		b.WriteByte(')')
	default:
		panic("digitsplit: fmt of empty node " + strconv.Itoa(i) + " after writing " + b.String())
	}
}
