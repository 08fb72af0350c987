package digitsplit

import (
	"errors"
	"strconv"
)

// arena is fixed storage for the nodes of one tree. Nodes are allocated and
// released in stack order; an index stays valid until it is released, after
// which its contents are undefined and the slot is reused.
type arena struct {
	// slots holds the storage for each node. Each slot can be either kind,
	// and nodes points at whichever one is current.
	slots []slot
	nodes []Node
	used  int
}

type slot struct {
	leaf   Leaf
	branch Branch
}

// newArena creates an arena large enough for any tree over n digits: each
// split turns one leaf into a branch with two new leaves, and at most n-1
// splits are possible.
func newArena(n int) *arena {
	size := 2*n - 1
	return &arena{
		slots: make([]slot, size),
		nodes: make([]Node, size),
	}
}

// reset releases every node.
func (a *arena) reset() {
	a.used = 0
	for i := range a.nodes {
		a.nodes[i] = nil
	}
}

// allocate reserves the next slot and returns its index.
func (a *arena) allocate() int {
	if a.used >= len(a.slots) {
		panic("digitsplit: node arena exhausted at " + strconv.Itoa(a.used) + " nodes")
	}
	i := a.used
	a.used++
	return i
}

// release frees the n most recently allocated slots.
func (a *arena) release(n int) {
	if n < 0 || n > a.used {
		panic("digitsplit: release of " + strconv.Itoa(n) + " nodes with " + strconv.Itoa(a.used) + " in use")
	}
	a.used -= n
}

// setLeaf makes slot i a leaf holding run.
func (a *arena) setLeaf(i int, run Run) *Leaf {
	l := &a.slots[i].leaf
	l.Run = run
	l.Value = parseRun(run.Digits)
	a.nodes[i] = l
	return l
}

// setBranch makes slot i a branch. The slot's leaf is left intact so that
// unsplit can restore it.
func (a *arena) setBranch(i int, op Op, left, right int) *Branch {
	b := &a.slots[i].branch
	b.Op, b.Left, b.Right = op, left, right
	a.nodes[i] = b
	return b
}

// unsplit turns slot i back into the leaf it was before setBranch.
func (a *arena) unsplit(i int) {
	a.nodes[i] = &a.slots[i].leaf
}

// parseRun reads a run of digits as a float. Runs too long to fit in a float
// become +Inf.
func parseRun(digits string) float64 {
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		panic("digitsplit: invalid digit run " + strconv.Quote(digits) + " (" + err.Error() + ")")
	}
	return v
}
