// Package term reports whether an output destination is an interactive
// terminal.
package term

import (
	"io"
	"os"

	xterm "golang.org/x/term"
)

// IsTerminal reports whether w is connected to a terminal. Anything
// that is not an *os.File, such as a buffer in tests or a pipe, is not.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
