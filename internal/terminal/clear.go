// Package terminal provides small helpers for cleaning up interactive prompts.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is assumed when the terminal size cannot be read.
const DefaultWidth = 80

// Width returns the width of the terminal attached to f, or DefaultWidth.
func Width(f *os.File) int {
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		return width
	}
	return DefaultWidth
}

// LinesFor returns how many terminal rows a text of textLength characters
// occupies at the given width. Empty text still occupies one row.
func LinesFor(textLength, width int) int {
	if width <= 0 {
		width = DefaultWidth
	}
	if textLength <= 0 {
		return 1
	}
	return (textLength + width - 1) / width
}

// ClearLines erases the line the cursor is on plus the n-1 rows above it,
// leaving the cursor at the start of the topmost cleared row.
func ClearLines(w io.Writer, n int) {
	for i := 0; i < n; i++ {
		fmt.Fprint(w, "\r\x1b[2K") // start of line, clear it
		if i < n-1 {
			fmt.Fprint(w, "\x1b[1A") // up one row
		}
	}
}

// ClearPreviousLines removes a prompt of textLength characters (prompt plus
// echoed input) from stdout after the user pressed Enter. The extra row is the
// empty line the cursor moved to.
func ClearPreviousLines(textLength int) {
	ClearLines(os.Stdout, LinesFor(textLength, Width(os.Stdout))+1)
}
