package digitsplit

// Run is a contiguous, non-empty piece of the searched digit string.
type Run struct {
	// Digits is the literal text of the run.
	Digits string
	// Offset is the index of the first digit in the full digit string.
	Offset int
}

// End returns the offset just past the run.
func (r Run) End() int {
	return r.Offset + len(r.Digits)
}

// Node is a node of an expression tree. It is either a *Leaf or a *Branch.
type Node interface {
	isNode()
}

// Leaf is a number read directly from the digit string.
type Leaf struct {
	Run
	// Value is Digits parsed as a decimal literal. Leading zeros are allowed.
	Value float64
}

// Branch joins two subtrees with an operator. Left and Right are arena
// indices, valid only while the branch is part of the current tree.
type Branch struct {
	Op          Op
	Left, Right int
}

func (*Leaf) isNode()   {}
func (*Branch) isNode() {}
