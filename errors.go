package digitsplit

import (
	"strconv"
)

// DigitsError is an error returned when the digit string to search is empty
// or contains something other than decimal digits.
type DigitsError struct {
	// Digits is the rejected input.
	Digits string
	// Pos is the byte offset of the first non-digit, or -1 if Digits is empty.
	Pos int
}

func (err *DigitsError) Error() string {
	if err.Pos < 0 {
		return "empty digit string"
	}
	return "invalid digit " + strconv.QuoteRuneToASCII(rune(err.Digits[err.Pos])) + " at position " + strconv.Itoa(err.Pos) + " of " + strconv.Quote(err.Digits)
}

// SplitsError is an error returned for a negative split budget.
type SplitsError struct {
	Splits int
}

func (err *SplitsError) Error() string {
	return "split budget " + strconv.Itoa(err.Splits) + " must not be negative"
}

// OpError is an error indicating an unusable operator set.
type OpError struct {
	// Op is the operator that was not understood or was repeated. It is empty
	// if the set contained no operators at all.
	Op string
	// Duplicate is whether Op is a valid operator that appeared twice.
	Duplicate bool
}

func (err *OpError) Error() string {
	switch {
	case err.Op == "":
		return "no operators to search with"
	case err.Duplicate:
		return "duplicate operator " + strconv.Quote(err.Op)
	default:
		return "unknown operator " + strconv.Quote(err.Op)
	}
}

// checkDigits returns a *DigitsError if s is not a non-empty digit string.
func checkDigits(s string) error {
	if s == "" {
		return &DigitsError{Digits: s, Pos: -1}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return &DigitsError{Digits: s, Pos: i}
		}
	}
	return nil
}
