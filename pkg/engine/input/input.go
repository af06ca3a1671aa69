package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned when Ctrl+C is read in raw mode
var ErrInterrupted = errors.New("interrupted")

// readByte reads a single byte
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	_, err := io.ReadFull(r, buf)
	return buf[0], err
}

// ReadKey decodes one key press from r. Arrow escape sequences become
// "arrow_up" and friends, Enter becomes "enter", Tab "tab", a lone Escape
// "escape", and printable characters are returned as themselves.
func ReadKey(r io.Reader) (string, error) {
	b1, err := readByte(r)
	if err != nil {
		return "", err
	}

	switch b1 {
	case 3:
		return "", ErrInterrupted
	case '\n', '\r':
		return "enter", nil
	case '\t':
		return "tab", nil
	case 0x1b:
		return readEscape(r)
	}

	if b1 >= 32 && b1 < 127 {
		return string(rune(b1)), nil
	}
	return "", nil
}

// readEscape handles both CSI sequences (ESC [) and SS3 sequences (ESC O)
func readEscape(r io.Reader) (string, error) {
	b2, err := readByte(r)
	if err == io.EOF {
		return "escape", nil
	}
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
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
	// Unknown escape sequence - discard it
	return "", nil
}

// ReadTerminalKey puts stdin into raw mode, reads one key and restores the
// terminal
func ReadTerminalKey() (RawInput, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	code, err := ReadKey(os.Stdin)
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: code}, nil
}
