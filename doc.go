// Package digitsplit searches for arithmetic expressions built from a fixed
// string of digits.
//
// The digits are cut into contiguous numbers which are joined by the binary
// operators +, -, *, / and ^ into a fully parenthesized expression tree. The
// digits "12345" with three splits give trees like "((1+2)*(34-5))". The
// search walks every tree using at most the allowed number of splits and
// reports each tree whose value is at least as close to a goal as anything
// reported before it.
//
// The search is exhaustive and deterministic. Trees live in a fixed arena
// sized for the digit string, so a search allocates almost nothing after it
// starts.
package digitsplit
