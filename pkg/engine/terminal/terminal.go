// Package terminal queries and drives the controlling terminal.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether stdin and stdout are both terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// BoardSize returns the characters needed to draw a board of the given side
// with one column per lattice point and one per cell
func BoardSize(side int) (width, height int) {
	return 2*side + 1, 2*side + 1
}

// Fits reports whether a board plus the given number of extra lines fits
// in a terminal of width by height
func Fits(side, extraLines, width, height int) bool {
	w, h := BoardSize(side)
	return w <= width && h+extraLines <= height
}

// Clear erases the screen and homes the cursor
func Clear(w io.Writer) {
	fmt.Fprint(w, "\033[2J\033[H")
}
