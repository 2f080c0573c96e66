package input

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readByte reads a single byte from r
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	_, err := io.ReadFull(r, buf)
	return buf[0], err
}

// readEscape decodes the rest of an escape sequence after ESC.
// Arrow keys come as CSI (ESC [) or SS3 (ESC O) followed by A-D.
// A blocking read cannot tell a lone Esc from the start of a sequence, so
// Esc only counts once the next byte arrives: Esc Esc is "escape", and Esc
// followed by any other key is that key.
func readEscape(r io.Reader) (string, error) {
	b2, err := readByte(r)
	if err != nil {
		return "", err
	}
	switch b2 {
	case 0x1b:
		return "escape", nil
	case '[', 'O':
	default:
		return decodeByte(b2), nil
	}

	b3, err := readByte(r)
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence, discard it
	return "", nil
}

// ReadKey decodes one keypress from r and returns its binding code:
// "arrow_up" and friends for arrows, "enter", "quit" for Ctrl+C, or the
// lower-cased character. Unknown sequences return "".
func ReadKey(r io.Reader) (string, error) {
	b, err := readByte(r)
	if err != nil {
		return "", err
	}

	if b == 0x1b {
		return readEscape(r)
	}
	return decodeByte(b), nil
}

// decodeByte maps a single non-escape byte to its binding code
func decodeByte(b byte) string {
	switch {
	case b == 3:
		return "quit"
	case b == '\n' || b == '\r':
		return "enter"
	case b >= 32 && b < 127:
		return strings.ToLower(string(b))
	}
	return ""
}

// GetKey reads a single keypress from stdin in raw mode, so arrows and
// letters act without Enter.
func GetKey() (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return ReadKey(os.Stdin)
}
