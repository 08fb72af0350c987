package digitsplit

import (
	"math"
	"strconv"
)

// Op is a binary operator joining two subtrees.
type Op int8

const (
	OpAdd Op = iota // l + r
	OpSub           // l - r
	OpMul           // l * r
	OpDiv           // l / r
	OpPow           // l ^ r

	numOps
)

// AllOps is every operator in the order the search tries them.
var AllOps = []Op{OpAdd, OpSub, OpMul, OpDiv, OpPow}

var opSymbols = [numOps]byte{'+', '-', '*', '/', '^'}

var opNames = [numOps]string{"Add", "Sub", "Mul", "Div", "Pow"}

// Symbol returns the character used to render op.
func (op Op) Symbol() byte {
	if !op.valid() {
		panic("digitsplit: invalid operator " + strconv.Itoa(int(op)))
	}
	return opSymbols[op]
}

func (op Op) String() string {
	if !op.valid() {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return opNames[op]
}

// Apply computes l op r with IEEE-754 double semantics. Division by zero and
// powers of negative bases produce infinities and NaNs rather than errors.
func (op Op) Apply(l, r float64) float64 {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	case OpPow:
		return math.Pow(l, r)
	default:
		panic("digitsplit: invalid operator " + op.String())
	}
}

func (op Op) valid() bool {
	return op >= 0 && op < numOps
}

// ParseOps converts a string of operator symbols such as "+-*/^" into ops.
// The result is in search order regardless of the order of s. Each symbol may
// appear at most once.
func ParseOps(s string) ([]Op, error) {
	ops := make([]Op, 0, len(s))
	for i := 0; i < len(s); i++ {
		op, ok := opFor(s[i])
		if !ok {
			return nil, &OpError{Op: s[i : i+1]}
		}
		ops = append(ops, op)
	}
	return canonicalOps(ops)
}

func opFor(c byte) (Op, bool) {
	for op, sym := range opSymbols {
		if sym == c {
			return Op(op), true
		}
	}
	return 0, false
}
