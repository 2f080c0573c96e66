package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// rows the TUI needs around the maze window (title, status, messages, help)
	chromeRows = 12
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

// FitRadius shrinks a view radius until the (2r+1)-square window, drawn two
// columns per cell, fits a width x height terminal. Never returns less than 1.
func FitRadius(radius, width, height int) int {
	for radius > 1 {
		side := 2*radius + 1
		if side*2 <= width && side+chromeRows <= height {
			break
		}
		radius--
	}
	if radius < 1 {
		radius = 1
	}
	return radius
}

// IsTerminal reports whether stdin is attached to a terminal, which raw
// single-key input needs.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
