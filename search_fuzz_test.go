package digitsplit_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/digitsplit"
)

func FuzzSolve(f *testing.F) {
	f.Add("123", uint8(2), 6.0)
	f.Add("0", uint8(0), 0.0)
	f.Add("9x", uint8(1), 1.0)
	f.Fuzz(func(t *testing.T, digits string, splits uint8, goal float64) {
		if len(digits) > 5 {
			digits = digits[:5]
		}
		r, err := digitsplit.Solve(digits, int(splits%4), goal)
		if err != nil {
			var de *digitsplit.DigitsError
			if !errors.As(err, &de) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}
		for i := 1; i < len(r); i++ {
			if r[i].Error > r[i-1].Error {
				t.Errorf("report %d (%v) worse than %v", i, r[i], r[i-1])
			}
		}
	})
}
