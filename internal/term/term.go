// Package term detects terminals.
package term

import (
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether v is a file attached to a terminal. Anything
// without a file descriptor is not a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
